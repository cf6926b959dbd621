package service

import (
	"context"
	"errors"
	"log"
	"sync"

	errorvalues "github.com/limbo/mindful/internal/error_values"
	"github.com/limbo/mindful/internal/repository"
	"github.com/limbo/mindful/pkg/clock"
	"github.com/limbo/mindful/pkg/codec"
	"github.com/limbo/mindful/pkg/entity"
	"github.com/limbo/mindful/pkg/logger"
)

var slotOrder = []string{repository.SlotCatalog, repository.SlotStatistics, repository.SlotPreferences}

// PersistenceGateway encodes the three stores into independent blobs.
// A broken or missing blob only ever resets its own store.
type PersistenceGateway struct {
	repo  repository.BlobsRepositoryI
	clock clock.Clock
	log   *logger.Logger

	mu      sync.Mutex
	sources map[string]func() any
}

func NewPersistenceGateway(repo repository.BlobsRepositoryI, clk clock.Clock, lg *logger.Logger) *PersistenceGateway {
	if repo == nil {
		log.Fatal("provided nil blobs repository")
	}
	if clk == nil {
		clk = clock.SystemClock{}
	}
	return &PersistenceGateway{
		repo:    repo,
		clock:   clk,
		log:     logger.OrNop(lg).With("component", "persistence"),
		sources: make(map[string]func() any),
	}
}

// Track registers the snapshot function SaveAll uses for slot.
func (g *PersistenceGateway) Track(slot string, snapshot func() any) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sources[slot] = snapshot
}

func (g *PersistenceGateway) Save(ctx context.Context, slot string, v any) error {
	payload, err := codec.Encode(v)
	if err != nil {
		g.log.Error("encoding slot failed", "slot", slot, "error", err)
		return err
	}
	if err := g.repo.Put(ctx, slot, payload); err != nil {
		g.log.Error("saving slot failed", "slot", slot, "error", err)
		return errors.New("persisting " + slot + " error: " + err.Error())
	}
	return nil
}

// SaveAll writes every tracked slot. A failing slot does not stop the others.
func (g *PersistenceGateway) SaveAll(ctx context.Context) error {
	g.mu.Lock()
	snapshots := make(map[string]func() any, len(g.sources))
	for slot, fn := range g.sources {
		snapshots[slot] = fn
	}
	g.mu.Unlock()

	var errs []error
	for _, slot := range slotOrder {
		fn, ok := snapshots[slot]
		if !ok {
			continue
		}
		if err := g.Save(ctx, slot, fn()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// load reads slot into v. It reports false when the caller should fall back to defaults.
// A blob that cannot be decoded is removed.
func (g *PersistenceGateway) load(ctx context.Context, slot string, v any) bool {
	payload, err := g.repo.Get(ctx, slot)
	if err != nil {
		if errors.Is(err, errorvalues.ErrBlobNotFound) {
			g.log.Info("slot is empty, using defaults", "slot", slot)
			return false
		}
		g.log.Warn("reading slot failed, using defaults", "slot", slot, "error", err)
		return false
	}
	if err := codec.Decode(payload, v); err != nil {
		g.log.Warn("slot is corrupted, using defaults", "slot", slot, "error", err)
		if err := g.repo.Delete(ctx, slot); err != nil && !errors.Is(err, errorvalues.ErrBlobNotFound) {
			g.log.Warn("removing corrupted slot failed", "slot", slot, "error", err)
		}
		return false
	}
	return true
}

func (g *PersistenceGateway) LoadCatalog(ctx context.Context) []entity.MeditationEntry {
	var entries []entity.MeditationEntry
	if !g.load(ctx, repository.SlotCatalog, &entries) || entries == nil {
		return SeedCatalog(g.clock.Now())
	}
	return entries
}

func (g *PersistenceGateway) LoadStatistics(ctx context.Context) entity.UserStatistics {
	stats := entity.DefaultStatistics()
	if !g.load(ctx, repository.SlotStatistics, &stats) {
		return entity.DefaultStatistics()
	}
	if stats.SessionHistory == nil {
		stats.SessionHistory = []entity.SessionRecord{}
	}
	if stats.Achievements == nil {
		stats.Achievements = []entity.Achievement{}
	}
	if stats.PerEntrySessionCount == nil {
		stats.PerEntrySessionCount = map[string]int{}
	}
	return stats
}

func (g *PersistenceGateway) LoadPreferences(ctx context.Context) entity.UserPreferences {
	prefs := entity.DefaultPreferences()
	if !g.load(ctx, repository.SlotPreferences, &prefs) {
		return entity.DefaultPreferences()
	}
	return NormalizePreferences(prefs)
}

type Stores struct {
	Catalog     []entity.MeditationEntry
	Statistics  entity.UserStatistics
	Preferences entity.UserPreferences
}

// LoadAll reads every slot. Each slot falls back to its own default.
func (g *PersistenceGateway) LoadAll(ctx context.Context) Stores {
	return Stores{
		Catalog:     g.LoadCatalog(ctx),
		Statistics:  g.LoadStatistics(ctx),
		Preferences: g.LoadPreferences(ctx),
	}
}
