package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/kabarettimpro/theater-api/internal/config"
	"github.com/kabarettimpro/theater-api/internal/domain/content"
	"github.com/kabarettimpro/theater-api/internal/logger"
	"github.com/kabarettimpro/theater-api/internal/storage/mongodb"
	"github.com/kabarettimpro/theater-api/internal/storage/seed"
)

// Unlike the API process, this command treats every failure as fatal.
func main() {
	cfg := config.Load()

	logger.Initialize("info")
	log := logger.Seed()

	dryRun := flag.Bool("dry-run", false, "Report collection counts without inserting")
	flag.Parse()

	log.Info("Starting seed process", "dry_run", *dryRun)

	store, err := mongodb.NewContainer(cfg)
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	seeder := seed.New(store)

	if *dryRun {
		counts, err := seeder.Counts(ctx)
		if err != nil {
			log.Error("Failed to count documents", "error", err)
			os.Exit(1)
		}

		for _, name := range []string{
			content.Info{}.CollectionName(),
			content.Owner{}.CollectionName(),
			content.Event{}.CollectionName(),
		} {
			log.Info("Collection state", "collection", name, "documents", counts[name])
		}
	} else {
		if err := seeder.Run(ctx); err != nil {
			log.Error("Seeding failed", "error", err)
			os.Exit(1)
		}
		log.Info("Seeding completed successfully")
	}

	if err := store.Close(ctx); err != nil {
		log.Error("Failed to close store", "error", err)
	}

	fmt.Println("Seed process completed!")
}
