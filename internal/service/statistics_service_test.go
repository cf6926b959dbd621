package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/mindful/internal/error_values"
	"github.com/limbo/mindful/internal/repository"
	"github.com/limbo/mindful/internal/service"
	"github.com/limbo/mindful/internal/service/mocks"
	"github.com/limbo/mindful/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStatsFixture(t *testing.T, initial entity.UserStatistics) (*service.StatisticsService, *service.CatalogService, *fakeClock) {
	t.Helper()
	clk := newFakeClock(testDay)
	gw := service.NewPersistenceGateway(newMemoryBlobs(), clk, nil)
	catalog := service.NewCatalogService(service.SeedCatalog(testDay), gw, clk, nil)
	return service.NewStatisticsService(initial, catalog, gw, clk, nil), catalog, clk
}

func TestStreakRule(t *testing.T) {
	t.Parallel()
	day := func(offset int) *time.Time {
		d := time.Date(testDay.Year(), testDay.Month(), testDay.Day()+offset, 0, 0, 0, 0, time.UTC)
		return &d
	}
	testCases := []struct {
		Desc        string
		LastSession *time.Time
		Current     int
		Longest     int
		WantCurrent int
		WantLongest int
	}{
		{Desc: "first session", LastSession: nil, Current: 0, Longest: 0, WantCurrent: 1, WantLongest: 1},
		{Desc: "yesterday", LastSession: day(-1), Current: 4, Longest: 4, WantCurrent: 5, WantLongest: 5},
		{Desc: "today", LastSession: day(0), Current: 4, Longest: 6, WantCurrent: 4, WantLongest: 6},
		{Desc: "three days ago", LastSession: day(-3), Current: 9, Longest: 9, WantCurrent: 1, WantLongest: 9},
	}
	for _, tc := range testCases {
		initial := entity.DefaultStatistics()
		initial.LastSessionDate = tc.LastSession
		initial.CurrentStreakDays = tc.Current
		initial.LongestStreakDays = tc.Longest
		stats, catalog, _ := newStatsFixture(t, initial)

		_, err := stats.RecordSession(context.Background(), catalog.List()[0].ID, 60)
		require.NoError(t, err, tc.Desc)

		got := stats.Statistics()
		assert.Equal(t, tc.WantCurrent, got.CurrentStreakDays, tc.Desc)
		assert.Equal(t, tc.WantLongest, got.LongestStreakDays, tc.Desc)
		require.NotNil(t, got.LastSessionDate, tc.Desc)
		assert.Equal(t, *day(0), *got.LastSessionDate, tc.Desc)
	}
}

func TestStreakAcrossDays(t *testing.T) {
	t.Parallel()
	stats, catalog, clk := newStatsFixture(t, entity.DefaultStatistics())
	ctx := context.Background()
	id := catalog.List()[0].ID

	for i := 0; i < 3; i++ {
		clk.Set(testDay.AddDate(0, 0, i))
		_, err := stats.RecordSession(ctx, id, 60)
		require.NoError(t, err)
	}
	clk.Set(testDay.AddDate(0, 0, 2).Add(3 * time.Hour))
	_, err := stats.RecordSession(ctx, id, 60)
	require.NoError(t, err)

	got := stats.Statistics()
	assert.Equal(t, 3, got.CurrentStreakDays)
	assert.Equal(t, 3, got.LongestStreakDays)

	clk.Set(testDay.AddDate(0, 0, 6))
	_, err = stats.RecordSession(ctx, id, 60)
	require.NoError(t, err)
	got = stats.Statistics()
	assert.Equal(t, 1, got.CurrentStreakDays)
	assert.Equal(t, 3, got.LongestStreakDays)
}

func TestRecordSessionUpdatesCatalog(t *testing.T) {
	t.Parallel()
	stats, catalog, _ := newStatsFixture(t, entity.DefaultStatistics())
	ctx := context.Background()
	entry := catalog.List()[1]

	record, err := stats.RecordSession(ctx, entry.ID, 180)
	require.NoError(t, err)
	assert.True(t, record.Completed)
	assert.Equal(t, 180, record.Duration)
	assert.Equal(t, entry.ID, record.EntryID)
	assert.Equal(t, testDay.Add(-180*time.Second), record.StartedAt)

	updated, err := catalog.Get(entry.ID)
	require.NoError(t, err)
	assert.Equal(t, entry.CompletedSessions+1, updated.CompletedSessions)
	assert.Equal(t, entry.TotalTimeSpent+180, updated.TotalTimeSpent)
	require.NotNil(t, updated.LastUsedAt)
	assert.Equal(t, testDay, *updated.LastUsedAt)

	got := stats.Statistics()
	assert.Len(t, got.SessionHistory, 1)
	assert.Equal(t, 180, got.TotalMindfulSeconds)
	assert.Equal(t, 1, got.PerEntrySessionCount[entry.ID.String()])
}

func TestUsageCounterMatchesHistory(t *testing.T) {
	t.Parallel()
	stats, catalog, _ := newStatsFixture(t, entity.DefaultStatistics())
	ctx := context.Background()
	entries := catalog.List()

	_, err := stats.RecordSession(ctx, entries[0].ID, 60)
	require.NoError(t, err)
	require.NoError(t, stats.IncrementUsageCount(ctx, entries[0]))
	require.NoError(t, stats.IncrementUsageCount(ctx, entries[2]))

	got := stats.Statistics()
	counts := map[string]int{}
	for _, r := range got.SessionHistory {
		counts[r.EntryID.String()]++
	}
	assert.Equal(t, counts, got.PerEntrySessionCount)
	assert.Equal(t, 60+entries[0].Duration+entries[2].Duration, got.TotalMindfulSeconds)
}

func TestRecordSessionForDeletedEntry(t *testing.T) {
	t.Parallel()
	stats, _, _ := newStatsFixture(t, entity.DefaultStatistics())
	ghost := uuid.New()

	_, err := stats.RecordSession(context.Background(), ghost, 30)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Statistics().PerEntrySessionCount[ghost.String()])
}

func TestRecordSessionCatalogError(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	catalog := mocks.NewMockCatalogUsageRecorder(ctrl)
	saver := mocks.NewMockSlotSaver(ctrl)
	stats := service.NewStatisticsService(entity.DefaultStatistics(), catalog, saver, newFakeClock(testDay), nil)
	id := uuid.New()

	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:  "catalog store failure",
			Error: errors.New("catalog error: write failed"),
			MockPrepFunc: func() {
				catalog.EXPECT().RecordCompletion(gomock.Any(), id, 60, testDay).Return(errors.New("write failed"))
			},
		},
		{
			Desc:  "success",
			Error: nil,
			MockPrepFunc: func() {
				catalog.EXPECT().RecordCompletion(gomock.Any(), id, 60, testDay).Return(nil)
				saver.EXPECT().Save(gomock.Any(), repository.SlotStatistics, gomock.Any()).Return(nil)
			},
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		_, err := stats.RecordSession(context.Background(), id, 60)
		assert.Equal(t, tc.Error, err, tc.Desc)
	}
	assert.Len(t, stats.Statistics().SessionHistory, 1)
}

func TestBreathingSession(t *testing.T) {
	t.Parallel()
	stats, _, _ := newStatsFixture(t, entity.DefaultStatistics())
	ctx := context.Background()

	require.NoError(t, stats.RecordBreathingSession(ctx, 120))
	require.NoError(t, stats.RecordBreathingSession(ctx, 0))

	got := stats.Statistics()
	assert.Equal(t, 120, got.TotalMindfulSeconds)
	assert.Empty(t, got.SessionHistory)
	assert.Zero(t, got.CurrentStreakDays)
}

func TestAchievements(t *testing.T) {
	t.Parallel()
	stats, catalog, clk := newStatsFixture(t, entity.DefaultStatistics())
	ctx := context.Background()
	id := catalog.List()[0].ID

	_, err := stats.RecordSession(ctx, id, 300)
	require.NoError(t, err)
	keys := func() []string {
		var out []string
		for _, a := range stats.Statistics().Achievements {
			assert.True(t, a.Unlocked)
			require.NotNil(t, a.UnlockedAt)
			out = append(out, a.Key)
		}
		return out
	}
	assert.Equal(t, []string{"first_session"}, keys())

	_, err = stats.RecordSession(ctx, id, 300)
	require.NoError(t, err)
	assert.Equal(t, []string{"first_session", "daily_goal"}, keys())

	for i := 1; i < 7; i++ {
		clk.Set(testDay.AddDate(0, 0, i))
		_, err = stats.RecordSession(ctx, id, 600)
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"first_session", "daily_goal", "streak_3", "mindful_1h", "streak_7"}, keys())

	newly, err := stats.CheckAchievements(ctx)
	require.NoError(t, err)
	assert.Empty(t, newly)
	first := stats.Statistics().Achievements[0]
	assert.Equal(t, testDay, *first.UnlockedAt)
}

func TestCustomAchievementRules(t *testing.T) {
	t.Parallel()
	clk := newFakeClock(testDay)
	gw := service.NewPersistenceGateway(newMemoryBlobs(), clk, nil)
	catalog := service.NewCatalogService(service.SeedCatalog(testDay), gw, clk, nil)
	rule := service.MindfulTimeRule(100, "hundred", "Hundert", "100 Sekunden")
	stats := service.NewStatisticsService(entity.DefaultStatistics(), catalog, gw, clk, nil, service.WithAchievementRules(rule))
	ctx := context.Background()

	require.NoError(t, stats.RecordBreathingSession(ctx, 50))
	assert.Empty(t, stats.Statistics().Achievements)

	initial := stats.Statistics()
	initial.TotalMindfulSeconds = 150
	stats = service.NewStatisticsService(initial, catalog, gw, clk, nil, service.WithAchievementRules(rule))
	newly, err := stats.CheckAchievements(ctx)
	require.NoError(t, err)
	require.Len(t, newly, 1)
	assert.Equal(t, rule.ID(), newly[0].ID)
	assert.Equal(t, "hundred", newly[0].Key)
}

func TestResetAll(t *testing.T) {
	t.Parallel()
	stats, catalog, _ := newStatsFixture(t, entity.DefaultStatistics())
	ctx := context.Background()
	for _, e := range catalog.List()[:3] {
		require.NoError(t, stats.IncrementUsageCount(ctx, e))
	}
	require.NotEmpty(t, stats.Statistics().Achievements)

	require.NoError(t, stats.ResetAll(ctx))
	assert.Equal(t, entity.DefaultStatistics(), stats.Statistics())
}

func TestSetDailyGoal(t *testing.T) {
	t.Parallel()
	stats, catalog, _ := newStatsFixture(t, entity.DefaultStatistics())
	ctx := context.Background()

	assert.ErrorIs(t, stats.SetDailyGoal(ctx, 0), errorvalues.ErrValidation)
	_, err := stats.RecordSession(ctx, catalog.List()[0].ID, 120)
	require.NoError(t, err)
	assert.Equal(t, 120, stats.TodaySeconds())

	require.NoError(t, stats.SetDailyGoal(ctx, 120))
	assert.Equal(t, 120, stats.Statistics().DailyGoalSeconds)
	var unlocked bool
	for _, a := range stats.Statistics().Achievements {
		if a.Key == "daily_goal" {
			unlocked = true
		}
	}
	assert.True(t, unlocked)
}
