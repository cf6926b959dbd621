package notification

import (
	"context"
	"errors"
	"log"

	errorvalues "github.com/limbo/mindful/internal/error_values"
	"github.com/limbo/mindful/pkg/entity"
	"github.com/limbo/mindful/pkg/logger"
)

const (
	ReminderID    = "MindfulMomentsDailyReminder"
	ReminderTitle = "Zeit für deine tägliche Achtsamkeit!"
	ReminderBody  = "Nimm dir einen Moment für dich mit Mindful Moments."
)

// Scheduler keeps the single daily reminder in line with the user's preferences.
type Scheduler struct {
	center Center
	log    *logger.Logger
}

func NewScheduler(center Center, lg *logger.Logger) *Scheduler {
	if center == nil {
		log.Fatal("on notification scheduler provided nil center")
	}
	return &Scheduler{
		center: center,
		log:    logger.OrNop(lg).With("component", "notification"),
	}
}

func ReminderRequest(at entity.TimeOfDay) Request {
	return Request{
		ID:      ReminderID,
		Title:   ReminderTitle,
		Body:    ReminderBody,
		Trigger: DailyTrigger(at),
	}
}

// Schedule registers the reminder for prefs.DailyReminderTime. Without permission nothing is scheduled.
func (s *Scheduler) Schedule(ctx context.Context, prefs entity.UserPreferences) error {
	if !prefs.NotificationsEnabled {
		return s.Cancel(ctx)
	}
	status, err := s.center.AuthorizationStatus(ctx)
	if err != nil {
		return errors.New("reading authorization status error: " + err.Error())
	}
	if status != Authorized {
		s.log.Warn("reminder not scheduled, permission missing")
		return errorvalues.ErrPermissionDenied
	}
	if err := s.center.Add(ctx, ReminderRequest(prefs.DailyReminderTime)); err != nil {
		s.log.Error("scheduling reminder failed", "error", err)
		return errors.New("scheduling reminder error: " + err.Error())
	}
	s.log.Info("daily reminder scheduled", "hour", prefs.DailyReminderTime.Hour, "minute", prefs.DailyReminderTime.Minute)
	return nil
}

func (s *Scheduler) Cancel(ctx context.Context) error {
	if err := s.center.RemovePending(ctx, ReminderID); err != nil {
		return errors.New("cancelling reminder error: " + err.Error())
	}
	s.log.Debug("daily reminder cancelled")
	return nil
}

// Reconcile brings the reminder in line with prefs and returns the preferences that hold afterwards.
// When permission is denied the returned value has notifications switched off and the error is
// ErrPermissionDenied. The caller stores that value without reconciling again.
func (s *Scheduler) Reconcile(ctx context.Context, prefs entity.UserPreferences) (entity.UserPreferences, error) {
	if !prefs.NotificationsEnabled {
		return prefs, s.Cancel(ctx)
	}
	granted, err := s.center.RequestAuthorization(ctx)
	if err != nil {
		return prefs, errors.New("requesting authorization error: " + err.Error())
	}
	if !granted {
		if err := s.Cancel(ctx); err != nil {
			s.log.Warn("removing stale reminder failed", "error", err)
		}
		prefs.NotificationsEnabled = false
		s.log.Info("notification permission denied, reminders disabled")
		return prefs, errorvalues.ErrPermissionDenied
	}
	return prefs, s.Schedule(ctx, prefs)
}
