package main

import (
	"context"
	"errors"
	"log"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GEON1999/PomoFarm/internal/bootstrap"
	"github.com/GEON1999/PomoFarm/internal/config"
	"github.com/GEON1999/PomoFarm/internal/game"
	"github.com/GEON1999/PomoFarm/internal/logger"
	"github.com/GEON1999/PomoFarm/internal/scheduler"
	"github.com/GEON1999/PomoFarm/internal/server"
	"github.com/GEON1999/PomoFarm/internal/sse"
	"github.com/GEON1999/PomoFarm/internal/worker"
)

const shutdownTimeout = 15 * time.Second

// @title PomoFarm API
// @version 1.0
// @description Pomodoro timer driving an idle farm and a gacha shop.
// @description Declined farm and timer commands answer 200 with applied=false.
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		log.Fatalf("Invalid environment: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to setup logger: %v", err)
	}
	defer logFile.Close()

	for _, w := range warnings {
		logger.Warn("Environment warning", "warning", w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logger.Error("PomoFarm exited with error", "error", err)
		logFile.Close()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	cat, err := bootstrap.LoadCatalog(cfg)
	if err != nil {
		return err
	}

	store, err := bootstrap.InitializeStore(ctx, cfg)
	if err != nil {
		return err
	}

	bus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		store.Close()
		return err
	}

	pool := worker.NewPool(cfg.WorkerCount, worker.DefaultQueueSize)
	pool.Start()
	persister := worker.NewPersister(store.Snapshots)

	deps := game.Deps{
		Publisher: publisher,
		Saver:     worker.NewSaveDispatcher(pool, persister),
	}
	if cfg.RNGSeed != 0 {
		deps.Rand = rand.New(rand.NewPCG(cfg.RNGSeed, cfg.RNGSeed))
	}
	g := game.New(cat, deps)

	hub := sse.NewHub()
	hub.Start()

	components := bootstrap.ShutdownComponents{
		WorkerPool:         pool,
		Game:               g,
		Persister:          persister,
		ResilientPublisher: publisher,
		Hub:                hub,
		Storage:            store,
	}

	if err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus: bus,
		Hub:      hub,
		State:    g,
	}); err != nil {
		bootstrap.GracefulShutdown(context.Background(), components)
		return err
	}

	if err := bootstrap.RestoreGame(ctx, cfg, store.Snapshots, g); err != nil {
		// Nothing was loaded, so the final save must not overwrite the stored game
		components.Game = nil
		bootstrap.GracefulShutdown(context.Background(), components)
		return err
	}

	sched := scheduler.New(pool)
	sched.Schedule("tick", cfg.TickInterval, worker.NewTickJob(g))
	sched.Schedule("autosave", cfg.AutosaveInterval, worker.NewAutosaveJob(g))
	components.Scheduler = sched

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		Version:        cfg.Version,
	}, server.Deps{
		Game:    g,
		Catalog: cat,
		Storage: store,
		Saves:   store.Snapshots,
		Hub:     hub,
	})
	components.Server = srv

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
		err = nil
	case err = <-serverErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, components)
	return err
}
