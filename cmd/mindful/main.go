package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/limbo/mindful/internal/app"
	"github.com/limbo/mindful/internal/audio"
	"github.com/limbo/mindful/internal/notification"
	"github.com/limbo/mindful/internal/repository"
	"github.com/limbo/mindful/internal/service"
	"github.com/limbo/mindful/pkg/cleanup"
	"github.com/limbo/mindful/pkg/config"
	"github.com/limbo/mindful/pkg/logger"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	lg, err := logger.New(cfg.GetStringOr("MINDFUL_LOG_MODE", "dev"))
	if err != nil {
		log.Fatal("creating logger error: " + err.Error())
	}
	defer lg.Sync()
	defer cleanup.CleanUp()

	blobs := openBlobs(cfg, lg)
	opts := app.DefaultOptions()
	opts.TickInterval = cfg.GetDuration("MINDFUL_TICK_INTERVAL", time.Second)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a, err := app.New(ctx, app.Deps{
		Blobs:  blobs,
		Center: notification.NewLocalCenter(cfg.GetBool("MINDFUL_NOTIFICATIONS_GRANTED", true)),
		Device: audio.NewSilentDevice(lg),
		Assets: audio.NewAssets(cfg.GetStringOr("MINDFUL_ASSETS_DIR", "./assets")),
		Log:    lg,
	}, opts)
	if err != nil {
		lg.Error("building app failed", "error", err)
		return
	}
	if err := a.Start(ctx); err != nil {
		lg.Error("starting app failed", "error", err)
	}

	background := make(chan os.Signal, 1)
	signal.Notify(background, syscall.SIGHUP)
	defer signal.Stop(background)

	for {
		select {
		case <-background:
			_ = a.Background(context.Background())
		case <-ctx.Done():
			shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
			if err := a.Shutdown(shutdownCtx); err != nil {
				lg.Error("shutdown failed", "error", err)
			}
			stop()
			lg.Info("bye")
			return
		}
	}
}

func openBlobs(cfg *config.Config, lg *logger.Logger) repository.BlobsRepositoryI {
	switch store := cfg.GetStringOr("MINDFUL_STORE", "sqlite"); store {
	case "postgres":
		return repository.NewBlobsRepo(&repository.PGCfg{
			Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
			Username: cfg.GetString("POSTGRES_USER"),
			Password: cfg.GetString("POSTGRES_PASSWORD"),
			DB:       cfg.GetString("POSTGRES_DB"),
		})
	case "sqlite":
		home, _ := os.UserHomeDir()
		path := cfg.GetStringOr("MINDFUL_SQLITE_PATH", filepath.Join(home, ".mindful", "mindful.db"))
		repo, err := repository.NewSQLiteBlobsRepo(path)
		if err != nil {
			lg.Fatal("opening sqlite store failed", "path", path, "error", err)
		}
		return repo
	default:
		lg.Fatal("unknown store", "store", store)
		return nil
	}
}
