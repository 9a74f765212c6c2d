package bootstrap

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/GEON1999/PomoFarm/internal/config"
	"github.com/GEON1999/PomoFarm/internal/database"
	"github.com/GEON1999/PomoFarm/internal/logger"
	"github.com/GEON1999/PomoFarm/internal/storage"
	"github.com/GEON1999/PomoFarm/internal/storage/filestore"
	"github.com/GEON1999/PomoFarm/internal/storage/postgres"
)

// Storage is the persistence backend selected by configuration
type Storage struct {
	Driver    string
	Snapshots *storage.SnapshotStore
	pool      *pgxpool.Pool
}

// Ping checks connectivity. Backends without a connection always succeed.
func (s *Storage) Ping(ctx context.Context) error {
	if s.pool == nil {
		return nil
	}
	return s.pool.Ping(ctx)
}

// Close releases the database pool, if any
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// InitializeStore opens the configured backend. The postgres driver connects,
// applies pending migrations and puts a read-through cache in front of the table.
func InitializeStore(ctx context.Context, cfg *config.Config) (*Storage, error) {
	s := &Storage{Driver: cfg.StorageDriver}

	var records storage.RecordStore
	switch cfg.StorageDriver {
	case config.StorageDriverFile:
		records = filestore.New(cfg.DataDir)
	case config.StorageDriverMemory:
		records = storage.NewMemoryRecordStore()
	case config.StorageDriverPostgres:
		pool, err := database.NewPool(ctx, database.PoolConfig{
			ConnString:  cfg.GetDBConnString(),
			MaxConns:    cfg.DBMaxConns,
			MaxIdle:     cfg.DBMaxConnIdleTime,
			MaxLifetime: cfg.DBMaxConnLifetime,
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", LogMsgConnectFailed, err)
		}
		if _, err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", LogMsgMigrationsFailed, err)
		}
		s.pool = pool
		records = storage.NewCachedRecordStore(postgres.NewStore(pool), cfg.CacheSize, cfg.CacheTTL)
	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownDriver, cfg.StorageDriver)
	}

	s.Snapshots = storage.New(records)
	logger.Info(LogMsgStorageInitialized, "driver", cfg.StorageDriver)
	return s, nil
}
