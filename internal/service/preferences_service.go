package service

import (
	"context"
	"errors"
	"log"
	"math"
	"sync"

	errorvalues "github.com/limbo/mindful/internal/error_values"
	"github.com/limbo/mindful/internal/repository"
	"github.com/limbo/mindful/pkg/entity"
	"github.com/limbo/mindful/pkg/logger"
)

// PreferencesService holds the single UserPreferences value. Every change replaces the whole
// value and runs the side effects in a fixed order: persist, reconcile the reminder, update music.
type PreferencesService struct {
	saver    Persister
	notifier NotificationReconciler
	music    MusicController
	log      *logger.Logger

	mu       sync.Mutex
	prefs    entity.UserPreferences
	updating bool
}

func NewPreferencesService(initial entity.UserPreferences, saver Persister, notifier NotificationReconciler, music MusicController, lg *logger.Logger) *PreferencesService {
	if saver == nil {
		log.Fatal("on preferences service provided nil saver")
	}
	ps := &PreferencesService{
		saver:    saver,
		notifier: notifier,
		music:    music,
		log:      logger.OrNop(lg).With("component", "preferences"),
		prefs:    NormalizePreferences(initial),
	}
	if tracker, ok := saver.(SnapshotTracker); ok {
		tracker.Track(repository.SlotPreferences, func() any { return ps.Get() })
	}
	return ps
}

func (ps *PreferencesService) Get() entity.UserPreferences {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	return ps.prefs
}

// Update replaces the preferences. A value equal to the current one changes nothing.
// When the reminder cannot be scheduled because permission is denied, notifications are
// switched off, the corrected value is stored and ErrPermissionDenied is returned as a notice.
func (ps *PreferencesService) Update(ctx context.Context, prefs entity.UserPreferences) error {
	prefs = NormalizePreferences(prefs)

	ps.mu.Lock()
	if ps.updating || prefs == ps.prefs {
		ps.mu.Unlock()
		return nil
	}
	ps.updating = true
	prev := ps.prefs
	ps.prefs = prefs
	ps.mu.Unlock()

	defer func() {
		ps.mu.Lock()
		ps.updating = false
		ps.mu.Unlock()
	}()

	return ps.apply(ctx, prev, prefs)
}

func (ps *PreferencesService) ResetToDefaults(ctx context.Context) error {
	return ps.Update(ctx, entity.DefaultPreferences())
}

// Reconcile re-runs the reminder and music side effects for the stored value, used at startup.
func (ps *PreferencesService) Reconcile(ctx context.Context) error {
	ps.mu.Lock()
	if ps.updating {
		ps.mu.Unlock()
		return nil
	}
	ps.updating = true
	prefs := ps.prefs
	ps.mu.Unlock()

	defer func() {
		ps.mu.Lock()
		ps.updating = false
		ps.mu.Unlock()
	}()

	corrected, notice := ps.reconcileReminder(ctx, prefs)
	if corrected != prefs {
		if err := ps.saver.SaveAll(ctx); err != nil {
			return err
		}
	}
	if ps.music != nil {
		ps.music.UpdatePlayback(corrected)
	}
	return notice
}

// apply runs the side effects of an update. A failed first save puts prev back and stops.
func (ps *PreferencesService) apply(ctx context.Context, prev, prefs entity.UserPreferences) error {
	if err := ps.saver.SaveAll(ctx); err != nil {
		ps.mu.Lock()
		ps.prefs = prev
		ps.mu.Unlock()
		ps.log.Error("saving preferences failed", "error", err)
		return err
	}

	corrected, notice := ps.reconcileReminder(ctx, prefs)
	if corrected != prefs {
		if err := ps.saver.SaveAll(ctx); err != nil {
			ps.log.Error("saving corrected preferences failed", "error", err)
			return err
		}
	}

	if ps.music != nil {
		ps.music.UpdatePlayback(corrected)
	}
	ps.log.Debug("preferences updated", "notifications", corrected.NotificationsEnabled, "music", corrected.BackgroundMusicEnabled)
	return notice
}

// reconcileReminder asks the notifier to follow prefs and stores its correction, if any,
// directly so the update path is not entered again.
func (ps *PreferencesService) reconcileReminder(ctx context.Context, prefs entity.UserPreferences) (entity.UserPreferences, error) {
	if ps.notifier == nil {
		return prefs, nil
	}
	corrected, err := ps.notifier.Reconcile(ctx, prefs)
	corrected = NormalizePreferences(corrected)
	if err != nil && !errors.Is(err, errorvalues.ErrPermissionDenied) {
		ps.log.Warn("reminder reconciliation failed", "error", err)
		return prefs, nil
	}
	if corrected != prefs {
		ps.mu.Lock()
		ps.prefs = corrected
		ps.mu.Unlock()
		ps.log.Info("notifications switched off, permission denied")
	}
	return corrected, err
}

// NormalizePreferences clamps values that have a fixed range. Everything else is accepted as is.
// A volume that is not a number falls back to the default.
func NormalizePreferences(p entity.UserPreferences) entity.UserPreferences {
	switch {
	case math.IsNaN(p.BackgroundMusicVolume):
		p.BackgroundMusicVolume = entity.DefaultPreferences().BackgroundMusicVolume
	case p.BackgroundMusicVolume < 0:
		p.BackgroundMusicVolume = 0
	case p.BackgroundMusicVolume > 1:
		p.BackgroundMusicVolume = 1
	}
	p.DailyReminderTime.Hour = clampInt(p.DailyReminderTime.Hour, 0, 23)
	p.DailyReminderTime.Minute = clampInt(p.DailyReminderTime.Minute, 0, 59)
	return p
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
