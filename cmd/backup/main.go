package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/GEON1999/PomoFarm/internal/bootstrap"
	"github.com/GEON1999/PomoFarm/internal/config"
	"github.com/GEON1999/PomoFarm/internal/storage/backup"
	"github.com/GEON1999/PomoFarm/internal/utils"
)

const usage = `Usage: backup <command> <file>

Commands:
  export <file>   Write the saved game to a backup file
  import <file>   Replace the saved game with a backup file

Stop the app before importing; a running app overwrites the save on its next autosave.`

func main() {
	if len(os.Args) != 3 {
		fmt.Println(usage)
		os.Exit(2)
	}

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

	command, path := os.Args[1], os.Args[2]
	switch command {
	case "export":
		err = exportBackup(ctx, store, path)
	case "import":
		err = importBackup(ctx, store, path)
	default:
		fmt.Println(usage)
		store.Close()
		os.Exit(2)
	}
	if err != nil {
		store.Close()
		log.Fatalf("%s failed: %v", command, err)
	}
}

func exportBackup(ctx context.Context, store *bootstrap.Storage, path string) error {
	snapshot, err := store.Snapshots.Load(ctx)
	if err != nil {
		return err
	}
	if snapshot == nil {
		return fmt.Errorf("no saved game in %s storage", store.Driver)
	}

	data, err := backup.Export(*snapshot, time.Now())
	if err != nil {
		return err
	}
	if err := utils.WriteFileAtomic(path, data); err != nil {
		return err
	}

	log.Printf("✅ Exported saved game to %s (%d bytes)\n", path, len(data))
	return nil
}

func importBackup(ctx context.Context, store *bootstrap.Storage, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	snapshot, err := backup.Import(data)
	if err != nil {
		return err
	}
	if err := store.Snapshots.Save(ctx, snapshot); err != nil {
		return err
	}

	log.Printf("✅ Imported %s into %s storage\n", path, store.Driver)
	return nil
}
