package service_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/golang/mock/gomock"
	errorvalues "github.com/limbo/mindful/internal/error_values"
	"github.com/limbo/mindful/internal/service"
	"github.com/limbo/mindful/internal/service/mocks"
	"github.com/limbo/mindful/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdatePreferences(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	saver := mocks.NewMockPersister(ctrl)
	notifier := mocks.NewMockNotificationReconciler(ctrl)
	music := mocks.NewMockMusicController(ctrl)
	ps := service.NewPreferencesService(entity.DefaultPreferences(), saver, notifier, music, nil)

	evening := entity.DefaultPreferences()
	evening.DailyReminderTime = entity.TimeOfDay{Hour: 21, Minute: 15}
	denied := evening
	denied.DailyReminderTime.Minute = 30
	corrected := denied
	corrected.NotificationsEnabled = false
	loud := corrected
	loud.BackgroundMusicVolume = 7

	testCases := []struct {
		Desc         string
		Error        error
		Prefs        entity.UserPreferences
		Want         entity.UserPreferences
		MockPrepFunc func()
	}{
		{
			Desc:  "persist then reconcile then music",
			Error: nil,
			Prefs: evening,
			Want:  evening,
			MockPrepFunc: func() {
				gomock.InOrder(
					saver.EXPECT().SaveAll(gomock.Any()).Return(nil),
					notifier.EXPECT().Reconcile(gomock.Any(), evening).Return(evening, nil),
					music.EXPECT().UpdatePlayback(evening),
				)
			},
		},
		{
			Desc:         "same value is a no-op",
			Error:        nil,
			Prefs:        evening,
			Want:         evening,
			MockPrepFunc: func() {},
		},
		{
			Desc:  "permission denied switches notifications off",
			Error: errorvalues.ErrPermissionDenied,
			Prefs: denied,
			Want:  corrected,
			MockPrepFunc: func() {
				gomock.InOrder(
					saver.EXPECT().SaveAll(gomock.Any()).Return(nil),
					notifier.EXPECT().Reconcile(gomock.Any(), denied).Return(corrected, errorvalues.ErrPermissionDenied),
					saver.EXPECT().SaveAll(gomock.Any()).Return(nil),
					music.EXPECT().UpdatePlayback(corrected),
				)
			},
		},
		{
			Desc:  "volume is clamped",
			Error: nil,
			Prefs: loud,
			Want: func() entity.UserPreferences {
				p := loud
				p.BackgroundMusicVolume = 1
				return p
			}(),
			MockPrepFunc: func() {
				want := loud
				want.BackgroundMusicVolume = 1
				gomock.InOrder(
					saver.EXPECT().SaveAll(gomock.Any()).Return(nil),
					notifier.EXPECT().Reconcile(gomock.Any(), want).Return(want, nil),
					music.EXPECT().UpdatePlayback(want),
				)
			},
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		err := ps.Update(context.Background(), tc.Prefs)
		if tc.Error != nil {
			assert.ErrorIs(t, err, tc.Error, tc.Desc)
		} else {
			assert.NoError(t, err, tc.Desc)
		}
		assert.Equal(t, tc.Want, ps.Get(), tc.Desc)
	}
}

func TestUpdatePreferencesSaveError(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	saver := mocks.NewMockPersister(ctrl)
	notifier := mocks.NewMockNotificationReconciler(ctrl)
	ps := service.NewPreferencesService(entity.DefaultPreferences(), saver, notifier, nil, nil)

	prefs := entity.DefaultPreferences()
	prefs.Theme = entity.ThemeDark
	saver.EXPECT().SaveAll(gomock.Any()).Return(errors.New("disk full"))

	assert.EqualError(t, ps.Update(context.Background(), prefs), "disk full")
	assert.Equal(t, entity.DefaultPreferences(), ps.Get())

	saver.EXPECT().SaveAll(gomock.Any()).Return(nil)
	notifier.EXPECT().Reconcile(gomock.Any(), prefs).Return(prefs, nil)
	require.NoError(t, ps.Update(context.Background(), prefs))
	assert.Equal(t, prefs, ps.Get())
}

func TestUpdatePreferencesNaNVolume(t *testing.T) {
	t.Parallel()
	gw := service.NewPersistenceGateway(newMemoryBlobs(), newFakeClock(testDay), nil)
	ps := service.NewPreferencesService(entity.DefaultPreferences(), gw, nil, nil, nil)
	ctx := context.Background()

	prefs := entity.DefaultPreferences()
	prefs.Theme = entity.ThemeDark
	prefs.BackgroundMusicVolume = math.NaN()
	require.NoError(t, ps.Update(ctx, prefs))

	want := entity.DefaultPreferences()
	want.Theme = entity.ThemeDark
	assert.Equal(t, want, ps.Get())
	assert.Equal(t, want, gw.LoadPreferences(ctx))
	assert.NoError(t, gw.SaveAll(ctx))
	assert.NoError(t, ps.Update(ctx, prefs))
}

func TestReconcilerFailureKeepsPreferences(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	saver := mocks.NewMockPersister(ctrl)
	notifier := mocks.NewMockNotificationReconciler(ctrl)
	music := mocks.NewMockMusicController(ctrl)
	ps := service.NewPreferencesService(entity.DefaultPreferences(), saver, notifier, music, nil)

	prefs := entity.DefaultPreferences()
	prefs.HapticFeedback = false
	saver.EXPECT().SaveAll(gomock.Any()).Return(nil)
	notifier.EXPECT().Reconcile(gomock.Any(), prefs).Return(entity.UserPreferences{}, errors.New("center unavailable"))
	music.EXPECT().UpdatePlayback(prefs)

	assert.NoError(t, ps.Update(context.Background(), prefs))
	assert.Equal(t, prefs, ps.Get())
}

// reentrantReconciler calls back into the store from within Reconcile.
type reentrantReconciler struct {
	ps    *service.PreferencesService
	calls int
}

func (r *reentrantReconciler) Reconcile(ctx context.Context, prefs entity.UserPreferences) (entity.UserPreferences, error) {
	r.calls++
	prefs.NotificationsEnabled = false
	if err := r.ps.Update(ctx, prefs); err != nil {
		return prefs, err
	}
	return prefs, errorvalues.ErrPermissionDenied
}

func TestPermissionCorrectionDoesNotLoop(t *testing.T) {
	t.Parallel()
	gw := service.NewPersistenceGateway(newMemoryBlobs(), newFakeClock(testDay), nil)
	notifier := &reentrantReconciler{}
	ps := service.NewPreferencesService(entity.DefaultPreferences(), gw, notifier, nil, nil)
	notifier.ps = ps

	prefs := entity.DefaultPreferences()
	prefs.DailyReminderTime = entity.TimeOfDay{Hour: 7, Minute: 45}
	err := ps.Update(context.Background(), prefs)

	assert.ErrorIs(t, err, errorvalues.ErrPermissionDenied)
	assert.Equal(t, 1, notifier.calls)
	assert.False(t, ps.Get().NotificationsEnabled)
	assert.False(t, gw.LoadPreferences(context.Background()).NotificationsEnabled)
}

func TestResetAndReconcileOnStartup(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	blobs := newMemoryBlobs()
	gw := service.NewPersistenceGateway(blobs, newFakeClock(testDay), nil)
	notifier := mocks.NewMockNotificationReconciler(ctrl)
	music := mocks.NewMockMusicController(ctrl)

	stored := entity.DefaultPreferences()
	stored.SelectedTrack = entity.TrackSingingBowl
	ps := service.NewPreferencesService(stored, gw, notifier, music, nil)

	corrected := stored
	corrected.NotificationsEnabled = false
	notifier.EXPECT().Reconcile(gomock.Any(), stored).Return(corrected, errorvalues.ErrPermissionDenied)
	music.EXPECT().UpdatePlayback(corrected)
	assert.ErrorIs(t, ps.Reconcile(context.Background()), errorvalues.ErrPermissionDenied)
	assert.Equal(t, corrected, gw.LoadPreferences(context.Background()))

	defaults := entity.DefaultPreferences()
	notifier.EXPECT().Reconcile(gomock.Any(), defaults).Return(defaults, nil)
	music.EXPECT().UpdatePlayback(defaults)
	require.NoError(t, ps.ResetToDefaults(context.Background()))
	assert.Equal(t, defaults, ps.Get())
}

func TestNormalizePreferences(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		Desc       string
		Volume     float64
		WantVolume float64
		Hour       int
		Minute     int
	}{
		{Desc: "in range", Volume: 0.25, WantVolume: 0.25, Hour: 6, Minute: 5},
		{Desc: "lower bound", Volume: 0, WantVolume: 0, Hour: 0, Minute: 0},
		{Desc: "upper bound", Volume: 1, WantVolume: 1, Hour: 23, Minute: 59},
		{Desc: "below range", Volume: -0.5, WantVolume: 0, Hour: -1, Minute: -10},
		{Desc: "above range", Volume: 1.5, WantVolume: 1, Hour: 24, Minute: 75},
		{Desc: "not a number", Volume: math.NaN(), WantVolume: 0.5, Hour: 8, Minute: 0},
		{Desc: "positive infinity", Volume: math.Inf(1), WantVolume: 1, Hour: 8, Minute: 0},
		{Desc: "negative infinity", Volume: math.Inf(-1), WantVolume: 0, Hour: 8, Minute: 0},
	}
	for _, tc := range testCases {
		p := entity.DefaultPreferences()
		p.BackgroundMusicVolume = tc.Volume
		p.DailyReminderTime = entity.TimeOfDay{Hour: tc.Hour, Minute: tc.Minute}
		got := service.NormalizePreferences(p)
		assert.GreaterOrEqual(t, got.BackgroundMusicVolume, 0.0, tc.Desc)
		assert.LessOrEqual(t, got.BackgroundMusicVolume, 1.0, tc.Desc)
		assert.GreaterOrEqual(t, got.DailyReminderTime.Hour, 0, tc.Desc)
		assert.LessOrEqual(t, got.DailyReminderTime.Hour, 23, tc.Desc)
		assert.GreaterOrEqual(t, got.DailyReminderTime.Minute, 0, tc.Desc)
		assert.LessOrEqual(t, got.DailyReminderTime.Minute, 59, tc.Desc)
		assert.Equal(t, tc.WantVolume, got.BackgroundMusicVolume, tc.Desc)
	}
}
