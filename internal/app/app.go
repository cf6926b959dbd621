package app

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/mindful/internal/audio"
	"github.com/limbo/mindful/internal/breathing"
	errorvalues "github.com/limbo/mindful/internal/error_values"
	"github.com/limbo/mindful/internal/notification"
	"github.com/limbo/mindful/internal/player"
	"github.com/limbo/mindful/internal/repository"
	"github.com/limbo/mindful/internal/service"
	"github.com/limbo/mindful/pkg/clock"
	"github.com/limbo/mindful/pkg/logger"
)

var (
	_ player.MusicLayer              = (*audio.MusicPlayer)(nil)
	_ player.AmbientOutput           = (*audio.AmbientPlayer)(nil)
	_ player.PreferencesSource       = (*service.PreferencesService)(nil)
	_ player.SessionRecorder         = (*service.StatisticsService)(nil)
	_ breathing.Recorder             = (*service.StatisticsService)(nil)
	_ service.NotificationReconciler = (*notification.Scheduler)(nil)
	_ service.MusicController        = (*audio.MusicPlayer)(nil)
	_ service.Persister              = (*service.PersistenceGateway)(nil)
	_ service.CatalogServiceI        = (*service.CatalogService)(nil)
	_ service.StatisticsServiceI     = (*service.StatisticsService)(nil)
)

type Deps struct {
	Blobs  repository.BlobsRepositoryI
	Center notification.Center
	Device audio.Device
	Assets *audio.Assets
	Clock  clock.Clock
	Log    *logger.Logger
}

type Options struct {
	// Period of the session and breathing tickers, zero leaves ticking to the caller
	TickInterval time.Duration
	Breathing    breathing.Pattern
}

func DefaultOptions() Options {
	return Options{
		TickInterval: time.Second,
		Breathing:    breathing.DefaultPattern(),
	}
}

// App owns every store and component of one user and drives the lifecycle events.
type App struct {
	Gateway     *service.PersistenceGateway
	Catalog     *service.CatalogService
	Statistics  *service.StatisticsService
	Preferences *service.PreferencesService
	Scheduler   *notification.Scheduler
	Music       *audio.MusicPlayer
	Ambient     *audio.AmbientPlayer
	Player      *player.Player
	Breathing   *breathing.Exercise

	log *logger.Logger
}

// New loads the three stores and wires the components. Missing or broken blobs fall back to defaults.
func New(ctx context.Context, deps Deps, opts Options) (*App, error) {
	if deps.Blobs == nil || deps.Center == nil || deps.Device == nil || deps.Assets == nil {
		log.Fatal("on app provided nil dependencies")
	}
	if deps.Clock == nil {
		deps.Clock = clock.SystemClock{}
	}
	lg := logger.OrNop(deps.Log)

	gw := service.NewPersistenceGateway(deps.Blobs, deps.Clock, lg)
	stores := gw.LoadAll(ctx)
	catalog := service.NewCatalogService(stores.Catalog, gw, deps.Clock, lg)
	stats := service.NewStatisticsService(stores.Statistics, catalog, gw, deps.Clock, lg)
	scheduler := notification.NewScheduler(deps.Center, lg)
	music := audio.NewMusicPlayer(deps.Assets, deps.Device, lg)
	ambient := audio.NewAmbientPlayer(deps.Assets, deps.Device, lg)
	prefs := service.NewPreferencesService(stores.Preferences, gw, scheduler, music, lg)

	pl := player.New(ambient, music, prefs, stats, lg,
		player.WithTickInterval(opts.TickInterval),
		player.WithClock(deps.Clock),
	)
	ex, err := breathing.New(opts.Breathing, stats, lg, breathing.WithTickInterval(opts.TickInterval))
	if err != nil {
		return nil, errors.New("breathing pattern error: " + err.Error())
	}

	return &App{
		Gateway:     gw,
		Catalog:     catalog,
		Statistics:  stats,
		Preferences: prefs,
		Scheduler:   scheduler,
		Music:       music,
		Ambient:     ambient,
		Player:      pl,
		Breathing:   ex,
		log:         lg.With("component", "app"),
	}, nil
}

// Start reconciles the daily reminder and background music with the stored preferences.
// A denied notification permission is only logged.
func (a *App) Start(ctx context.Context) error {
	err := a.Preferences.Reconcile(ctx)
	switch {
	case errors.Is(err, errorvalues.ErrPermissionDenied):
		a.log.Info("daily reminder disabled, notification permission denied")
	case err != nil:
		return err
	}
	a.log.Info("app started", "entries", len(a.Catalog.List()))
	return nil
}

// StartSession looks up the entry and starts the player on it.
func (a *App) StartSession(ctx context.Context, entryID uuid.UUID) error {
	entry, err := a.Catalog.Get(entryID)
	if err != nil {
		return err
	}
	return a.Player.Start(ctx, entry)
}

// Background persists every store, as when the app loses focus.
func (a *App) Background(ctx context.Context) error {
	if err := a.Gateway.SaveAll(ctx); err != nil {
		a.log.Error("saving on background failed", "error", err)
		return err
	}
	a.log.Debug("stores saved on background")
	return nil
}

// Shutdown abandons a running session, stops the exercise and audio and saves everything.
func (a *App) Shutdown(ctx context.Context) error {
	if a.Player.State().Active() {
		if err := a.Player.End(false); err != nil && !errors.Is(err, errorvalues.ErrNoActiveSession) {
			a.log.Warn("ending session on shutdown failed", "error", err)
		}
	}
	a.Breathing.Stop()
	a.Ambient.Stop()
	a.Music.Stop()
	return a.Background(ctx)
}
