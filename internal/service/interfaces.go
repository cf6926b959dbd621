package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/mindful/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_service.go -package=mocks

type EntryRequest struct {
	Title        string              `validate:"required,min=1,max=100"`
	Duration     int                 `validate:"required,gt=0"`
	Description  string              `validate:"max=500"`
	Category     entity.Category     `validate:"required,category"`
	AmbientSound entity.AmbientSound `validate:"omitempty,ambient_sound"`
}

type CatalogServiceI interface {
	// Lists all entries in insertion order
	List() []entity.MeditationEntry
	// Looks up entry by id
	Get(id uuid.UUID) (entity.MeditationEntry, error)
	// Validates request, creates new entry with fresh id and creation time
	Add(ctx context.Context, req EntryRequest) (entity.MeditationEntry, error)
	// Replaces editable fields of the entry with the same id
	Update(ctx context.Context, entry entity.MeditationEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
	ToggleFavorite(ctx context.Context, id uuid.UUID) (bool, error)
	ListByCategory(category entity.Category) []entity.MeditationEntry
	Favorites() []entity.MeditationEntry
	// Bumps usage counters of the entry after a completed session
	RecordCompletion(ctx context.Context, id uuid.UUID, duration int, at time.Time) error
}

type StatisticsServiceI interface {
	RecordSession(ctx context.Context, entryID uuid.UUID, duration int) (entity.SessionRecord, error)
	RecordBreathingSession(ctx context.Context, duration int) error
	IncrementUsageCount(ctx context.Context, entry entity.MeditationEntry) error
	CheckAchievements(ctx context.Context) ([]entity.Achievement, error)
	ResetAll(ctx context.Context) error
	Statistics() entity.UserStatistics
}

// NotificationReconciler aligns the daily reminder with preferences. It returns the preferences that
// should be in effect afterwards (notifications switched off when permission is denied).
type NotificationReconciler interface {
	Reconcile(ctx context.Context, prefs entity.UserPreferences) (entity.UserPreferences, error)
}

// MusicController applies music related preferences to the background music layer.
type MusicController interface {
	UpdatePlayback(prefs entity.UserPreferences)
}

// CatalogUsageRecorder is the part of the catalog the statistics engine writes to.
type CatalogUsageRecorder interface {
	RecordCompletion(ctx context.Context, id uuid.UUID, duration int, at time.Time) error
}

type SlotSaver interface {
	Save(ctx context.Context, slot string, v any) error
}

type Persister interface {
	SlotSaver
	SaveAll(ctx context.Context) error
}

// SnapshotTracker is implemented by savers that can write every store at once.
type SnapshotTracker interface {
	Track(slot string, snapshot func() any)
}
