package service

import (
	"context"
	"errors"
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

type StatisticsOption func(*StatisticsService)

func WithAchievementRules(rules ...AchievementRule) StatisticsOption {
	return func(ss *StatisticsService) {
		ss.rules = rules
	}
}

// StatisticsService owns UserStatistics. It is the only writer of session history,
// streaks and achievements, and the only caller of the catalog usage counters.
type StatisticsService struct {
	catalog CatalogUsageRecorder
	saver   SlotSaver
	clock   clock.Clock
	log     *logger.Logger
	rules   []AchievementRule

	mu    sync.Mutex
	stats entity.UserStatistics
}

func NewStatisticsService(initial entity.UserStatistics, catalog CatalogUsageRecorder, saver SlotSaver, clk clock.Clock, lg *logger.Logger, opts ...StatisticsOption) *StatisticsService {
	if catalog == nil || saver == nil {
		log.Fatal("on statistics service provided nil dependencies")
	}
	if clk == nil {
		clk = clock.SystemClock{}
	}
	if initial.PerEntrySessionCount == nil {
		initial.PerEntrySessionCount = map[string]int{}
	}
	ss := &StatisticsService{
		catalog: catalog,
		saver:   saver,
		clock:   clk,
		log:     logger.OrNop(lg).With("component", "statistics"),
		rules:   DefaultAchievementRules(),
		stats:   initial,
	}
	for _, opt := range opts {
		opt(ss)
	}
	if tracker, ok := saver.(SnapshotTracker); ok {
		tracker.Track(repository.SlotStatistics, func() any { return ss.Statistics() })
	}
	return ss
}

// RecordSession logs a completed session of entryID lasting duration seconds.
// An entry that has been deleted from the catalog in the meantime is still logged.
func (ss *StatisticsService) RecordSession(ctx context.Context, entryID uuid.UUID, duration int) (entity.SessionRecord, error) {
	if duration < 0 {
		duration = 0
	}
	now := ss.clock.Now()
	record := entity.SessionRecord{
		ID:        uuid.New(),
		EntryID:   entryID,
		StartedAt: now.Add(-time.Duration(duration) * time.Second),
		Duration:  duration,
		Completed: true,
	}

	err := ss.catalog.RecordCompletion(ctx, entryID, duration, now)
	if err != nil {
		if !errors.Is(err, errorvalues.ErrEntryNotFound) {
			return entity.SessionRecord{}, errors.New("catalog error: " + err.Error())
		}
		ss.log.Warn("session recorded for unknown entry", "entry_id", entryID.String())
	}

	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.stats.SessionHistory = append(ss.stats.SessionHistory, record)
	ss.stats.PerEntrySessionCount[entryID.String()]++
	ss.stats.TotalMindfulSeconds += duration
	ss.updateStreak(now)
	ss.unlockAchievements(now)
	if err := ss.persist(ctx); err != nil {
		return record, err
	}
	ss.log.Info("session recorded", "entry_id", entryID.String(), "duration", duration, "streak", ss.stats.CurrentStreakDays)
	return record, nil
}

func (ss *StatisticsService) RecordBreathingSession(ctx context.Context, duration int) error {
	if duration <= 0 {
		return nil
	}
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.stats.TotalMindfulSeconds += duration
	ss.unlockAchievements(ss.clock.Now())
	ss.log.Info("breathing session recorded", "duration", duration)
	return ss.persist(ctx)
}

// IncrementUsageCount counts a full run of entry. It goes through RecordSession so that the
// per-entry counter always matches the session history.
func (ss *StatisticsService) IncrementUsageCount(ctx context.Context, entry entity.MeditationEntry) error {
	_, err := ss.RecordSession(ctx, entry.ID, entry.Duration)
	return err
}

// CheckAchievements unlocks every rule satisfied by the current statistics and returns the new ones.
func (ss *StatisticsService) CheckAchievements(ctx context.Context) ([]entity.Achievement, error) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	unlocked := ss.unlockAchievements(ss.clock.Now())
	if len(unlocked) == 0 {
		return unlocked, nil
	}
	return unlocked, ss.persist(ctx)
}

func (ss *StatisticsService) ResetAll(ctx context.Context) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.stats = entity.DefaultStatistics()
	ss.log.Info("statistics reset")
	return ss.persist(ctx)
}

func (ss *StatisticsService) SetDailyGoal(ctx context.Context, seconds int) error {
	if seconds <= 0 {
		return errors.Join(errorvalues.ErrValidation, errors.New("daily goal must be positive"))
	}
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.stats.DailyGoalSeconds = seconds
	ss.unlockAchievements(ss.clock.Now())
	return ss.persist(ctx)
}

// TodaySeconds sums the sessions started on the current calendar day.
func (ss *StatisticsService) TodaySeconds() int {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.todaySeconds(ss.clock.Now())
}

func (ss *StatisticsService) Statistics() entity.UserStatistics {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return cloneStatistics(ss.stats)
}

// must be called with ss.mu held
func (ss *StatisticsService) updateStreak(now time.Time) {
	today := clock.StartOfDay(now)
	switch {
	case ss.stats.LastSessionDate == nil:
		ss.stats.CurrentStreakDays = 1
	default:
		last := clock.StartOfDay(ss.stats.LastSessionDate.In(now.Location()))
		switch {
		case last.Equal(today):
		case last.Equal(today.AddDate(0, 0, -1)):
			ss.stats.CurrentStreakDays++
		default:
			ss.stats.CurrentStreakDays = 1
		}
	}
	ss.stats.LastSessionDate = &today
	if ss.stats.CurrentStreakDays > ss.stats.LongestStreakDays {
		ss.stats.LongestStreakDays = ss.stats.CurrentStreakDays
	}
}

// must be called with ss.mu held
func (ss *StatisticsService) unlockAchievements(now time.Time) []entity.Achievement {
	unlocked := make([]entity.Achievement, 0)
	have := make(map[string]bool, len(ss.stats.Achievements))
	for _, a := range ss.stats.Achievements {
		if a.Unlocked {
			have[a.Key] = true
		}
	}
	state := AchievementState{Stats: ss.stats, TodaySeconds: ss.todaySeconds(now)}
	for _, rule := range ss.rules {
		if have[rule.Key] || rule.Unlocked == nil || !rule.Unlocked(state) {
			continue
		}
		a := rule.achievement(now)
		ss.stats.Achievements = append(ss.stats.Achievements, a)
		unlocked = append(unlocked, a)
		ss.log.Info("achievement unlocked", "key", rule.Key)
	}
	return unlocked
}

// must be called with ss.mu held
func (ss *StatisticsService) todaySeconds(now time.Time) int {
	total := 0
	for _, s := range ss.stats.SessionHistory {
		if s.Completed && clock.SameDay(now, s.StartedAt.Add(time.Duration(s.Duration)*time.Second)) {
			total += s.Duration
		}
	}
	return total
}

// must be called with ss.mu held
func (ss *StatisticsService) persist(ctx context.Context) error {
	return ss.saver.Save(ctx, repository.SlotStatistics, cloneStatistics(ss.stats))
}

func cloneStatistics(s entity.UserStatistics) entity.UserStatistics {
	out := s
	out.SessionHistory = append([]entity.SessionRecord{}, s.SessionHistory...)
	out.Achievements = make([]entity.Achievement, len(s.Achievements))
	for i, a := range s.Achievements {
		if a.UnlockedAt != nil {
			t := *a.UnlockedAt
			a.UnlockedAt = &t
		}
		out.Achievements[i] = a
	}
	if s.LastSessionDate != nil {
		t := *s.LastSessionDate
		out.LastSessionDate = &t
	}
	out.PerEntrySessionCount = make(map[string]int, len(s.PerEntrySessionCount))
	for k, v := range s.PerEntrySessionCount {
		out.PerEntrySessionCount[k] = v
	}
	return out
}
