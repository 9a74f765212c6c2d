package main

import (
	"context"
	"log"

	"github.com/GEON1999/PomoFarm/internal/bootstrap"
	"github.com/GEON1999/PomoFarm/internal/config"
)

// reset deletes the saved game from the configured storage backend.
// The next start of cmd/app begins a fresh game.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()
	store, err := bootstrap.InitializeStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer store.Close()

	log.Printf("Clearing saved game from %s storage...\n", cfg.StorageDriver)
	if err := store.Snapshots.Clear(ctx); err != nil {
		log.Fatalf("Failed to clear saved game: %v", err)
	}

	log.Println("\n✅ Saved game cleared!")
	log.Println("Next step: start the app to begin a new game")
}
