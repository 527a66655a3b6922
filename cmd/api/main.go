package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kabarettimpro/theater-api/internal/config"
	"github.com/kabarettimpro/theater-api/internal/logger"
	"github.com/kabarettimpro/theater-api/internal/server"
	"github.com/kabarettimpro/theater-api/internal/storage/mongodb"
	"github.com/kabarettimpro/theater-api/internal/storage/seed"
)

func main() {
	cfg := config.Load()

	logger.Initialize(cfg.Server.LogLevel)
	log := logger.Server()

	// A missing store must never prevent the server from starting: the
	// content endpoints report unavailability until the next restart.
	store, err := mongodb.NewContainer(cfg)
	if err != nil {
		log.Error("Failed to initialize store, serving without it", "error", err)
		store = nil
	}

	if store != nil {
		seedCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := seed.New(store).Run(seedCtx); err != nil {
			// Seeding is best-effort; a running-but-unseeded API beats
			// a crashed process.
			log.Error("Seeding failed, starting anyway", "error", err)
		}
		cancel()
	}

	srv := server.New(cfg, store)

	go func() {
		if err := srv.Start(); err != nil {
			log.Fatal("Server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		log.Error("Forced shutdown", "error", err)
	}

	if store != nil {
		if err := store.Close(ctx); err != nil {
			log.Error("Failed to close store", "error", err)
		}
	}
}
