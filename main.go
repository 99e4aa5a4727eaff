package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/zerpitt/CrimeGameIdleRPG/crimegame"
	"github.com/zerpitt/CrimeGameIdleRPG/crimegame/driver"
	"github.com/zerpitt/CrimeGameIdleRPG/crimegame/engine"
	"github.com/zerpitt/CrimeGameIdleRPG/crimegame/logger"
	"github.com/zerpitt/CrimeGameIdleRPG/crimegame/storage"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	path := flag.String("config", "config.toml", "path to config")
	reset := flag.Bool("reset", false, "discard the existing save and start fresh")
	flag.Parse()

	cfg, err := crimegame.LoadConfig(*path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			slog.Error("Failed to load configuration", slog.Any("error", err))
			os.Exit(-1)
		}
		cfg = crimegame.DefaultConfig()
	}

	customHandler := logger.NewHandler(cfg.Log.Level)
	slog.SetDefault(slog.New(customHandler))

	slog.Info("Starting crime empire simulation",
		slog.String("version", version),
		slog.String("commit", commit))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := storage.Open(ctx, cfg.Save.Path, cfg.Save.FallbackPath, cfg.Save.Key)
	defer store.Close()

	eng := engine.New(engine.Options{})

	if *reset {
		logger.LogSystem("Reset requested, discarding save")
		eng.ResetGame()
	} else {
		saved, err := store.Load(ctx)
		switch {
		case err == nil:
			eng.Restore(*saved)
			if gains := eng.ReconcileOffline(); gains != nil {
				logger.LogSystem("Welcome back",
					slog.Duration("away", gains.Time),
					slog.Float64("earned", gains.Money))
			}
		case errors.Is(err, storage.ErrNoSave):
			logger.LogSystem("No save found, starting a new empire")
		default:
			slog.Error("Failed to load save", slog.Any("error", err))
			os.Exit(-1)
		}
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return driver.New(eng, cfg.Sim.TickRate()).Run(gctx)
	})

	g.Go(func() error {
		ticker := time.NewTicker(cfg.Save.AutosaveInterval())
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case <-ticker.C:
				saveSnapshot(gctx, store, eng)
			}
		}
	})

	slog.Info("Simulation running",
		slog.Duration("tick_rate", cfg.Sim.TickRate()),
		slog.Duration("autosave", cfg.Save.AutosaveInterval()))

	s := make(chan os.Signal, 1)
	signal.Notify(s, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-s

	slog.Info("Shutting down, saving progress")
	cancel()
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("Worker exited abnormally", slog.Any("error", err))
	}

	saveCtx, saveCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer saveCancel()
	saveSnapshot(saveCtx, store, eng)
}

func saveSnapshot(ctx context.Context, store storage.Store, eng *engine.Engine) {
	start := time.Now()
	snap := eng.Snapshot()
	err := store.Save(ctx, &snap)
	logger.LogSave(backendName(store), time.Since(start), err)
}

func backendName(store storage.Store) string {
	switch store.(type) {
	case *storage.SQLiteStore:
		return "sqlite"
	case *storage.FileStore:
		return "file"
	default:
		return "memory"
	}
}
