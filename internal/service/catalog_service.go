package service

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/mindful/internal/error_values"
	"github.com/limbo/mindful/internal/repository"
	"github.com/limbo/mindful/pkg/clock"
	"github.com/limbo/mindful/pkg/entity"
	"github.com/limbo/mindful/pkg/logger"
)

type CatalogService struct {
	saver SlotSaver
	clock clock.Clock
	log   *logger.Logger

	mu      sync.Mutex
	entries []entity.MeditationEntry
}

func NewCatalogService(entries []entity.MeditationEntry, saver SlotSaver, clk clock.Clock, lg *logger.Logger) *CatalogService {
	if saver == nil {
		log.Fatal("on catalog service provided nil saver")
	}
	if clk == nil {
		clk = clock.SystemClock{}
	}
	cs := &CatalogService{
		saver:   saver,
		clock:   clk,
		log:     logger.OrNop(lg).With("component", "catalog"),
		entries: append([]entity.MeditationEntry(nil), entries...),
	}
	if tracker, ok := saver.(SnapshotTracker); ok {
		tracker.Track(repository.SlotCatalog, func() any { return cs.List() })
	}
	return cs
}

func (cs *CatalogService) List() []entity.MeditationEntry {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cloneEntries(cs.entries)
}

func (cs *CatalogService) Get(id uuid.UUID) (entity.MeditationEntry, error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	idx := cs.indexOf(id)
	if idx < 0 {
		return entity.MeditationEntry{}, errorvalues.ErrEntryNotFound
	}
	return cloneEntry(cs.entries[idx]), nil
}

func (cs *CatalogService) Add(ctx context.Context, req EntryRequest) (entity.MeditationEntry, error) {
	if err := validateStruct(req); err != nil {
		return entity.MeditationEntry{}, err
	}
	sound := req.AmbientSound
	if sound == "" {
		sound = entity.SoundNone
	}
	entry := entity.MeditationEntry{
		ID:           uuid.New(),
		Title:        req.Title,
		Duration:     req.Duration,
		Description:  req.Description,
		Category:     req.Category,
		AmbientSound: sound,
		CreatedAt:    cs.clock.Now(),
	}
	cs.mu.Lock()
	defer cs.mu.Unlock()
	next := append(cloneEntries(cs.entries), entry)
	if err := cs.commit(ctx, next); err != nil {
		return entity.MeditationEntry{}, err
	}
	cs.log.Info("entry added", "entry_id", entry.ID.String(), "title", entry.Title)
	return entry, nil
}

// Update replaces the entry with the same id. Creation time and usage counters are kept from the stored entry.
func (cs *CatalogService) Update(ctx context.Context, entry entity.MeditationEntry) error {
	err := validateStruct(EntryRequest{
		Title:        entry.Title,
		Duration:     entry.Duration,
		Description:  entry.Description,
		Category:     entry.Category,
		AmbientSound: entry.AmbientSound,
	})
	if err != nil {
		return err
	}
	cs.mu.Lock()
	defer cs.mu.Unlock()
	idx := cs.indexOf(entry.ID)
	if idx < 0 {
		return errorvalues.ErrEntryNotFound
	}
	stored := cs.entries[idx]
	stored.Title = entry.Title
	stored.Duration = entry.Duration
	stored.Description = entry.Description
	stored.Category = entry.Category
	stored.AmbientSound = entry.AmbientSound
	if stored.AmbientSound == "" {
		stored.AmbientSound = entity.SoundNone
	}
	stored.Favorite = entry.Favorite
	next := cloneEntries(cs.entries)
	next[idx] = stored
	return cs.commit(ctx, next)
}

func (cs *CatalogService) Delete(ctx context.Context, id uuid.UUID) error {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	idx := cs.indexOf(id)
	if idx < 0 {
		return errorvalues.ErrEntryNotFound
	}
	next := append(cloneEntries(cs.entries[:idx]), cloneEntries(cs.entries[idx+1:])...)
	return cs.commit(ctx, next)
}

func (cs *CatalogService) ToggleFavorite(ctx context.Context, id uuid.UUID) (bool, error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	idx := cs.indexOf(id)
	if idx < 0 {
		return false, errorvalues.ErrEntryNotFound
	}
	next := cloneEntries(cs.entries)
	next[idx].Favorite = !next[idx].Favorite
	if err := cs.commit(ctx, next); err != nil {
		return false, err
	}
	return next[idx].Favorite, nil
}

func (cs *CatalogService) ListByCategory(category entity.Category) []entity.MeditationEntry {
	return cs.filter(func(e entity.MeditationEntry) bool { return e.Category == category })
}

func (cs *CatalogService) Favorites() []entity.MeditationEntry {
	return cs.filter(func(e entity.MeditationEntry) bool { return e.Favorite })
}

func (cs *CatalogService) RecordCompletion(ctx context.Context, id uuid.UUID, duration int, at time.Time) error {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	idx := cs.indexOf(id)
	if idx < 0 {
		return errorvalues.ErrEntryNotFound
	}
	usedAt := at
	next := cloneEntries(cs.entries)
	next[idx].CompletedSessions++
	next[idx].TotalTimeSpent += duration
	next[idx].LastUsedAt = &usedAt
	return cs.commit(ctx, next)
}

func (cs *CatalogService) filter(keep func(entity.MeditationEntry) bool) []entity.MeditationEntry {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	result := make([]entity.MeditationEntry, 0)
	for _, e := range cs.entries {
		if keep(e) {
			result = append(result, cloneEntry(e))
		}
	}
	return result
}

// must be called with cs.mu held
func (cs *CatalogService) indexOf(id uuid.UUID) int {
	for i := range cs.entries {
		if cs.entries[i].ID == id {
			return i
		}
	}
	return -1
}

// commit saves next and makes it the catalog only when the save succeeds.
// must be called with cs.mu held
func (cs *CatalogService) commit(ctx context.Context, next []entity.MeditationEntry) error {
	if err := cs.saver.Save(ctx, repository.SlotCatalog, cloneEntries(next)); err != nil {
		return err
	}
	cs.entries = next
	return nil
}

func cloneEntry(e entity.MeditationEntry) entity.MeditationEntry {
	if e.LastUsedAt != nil {
		t := *e.LastUsedAt
		e.LastUsedAt = &t
	}
	return e
}

func cloneEntries(entries []entity.MeditationEntry) []entity.MeditationEntry {
	result := make([]entity.MeditationEntry, len(entries))
	for i, e := range entries {
		result[i] = cloneEntry(e)
	}
	return result
}
