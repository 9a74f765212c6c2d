package database

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/GEON1999/PomoFarm/internal/logger"
)

// PoolConfig sizes the save table's connection pool
type PoolConfig struct {
	ConnString  string
	MaxConns    int
	MaxIdle     time.Duration
	MaxLifetime time.Duration
}

// NewPool connects to PostgreSQL and verifies the connection with a ping.
// The pool is closed again when the ping fails.
func NewPool(ctx context.Context, cfg PoolConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.ConnString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}

	maxConns := cfg.MaxConns
	if maxConns > math.MaxInt32 {
		maxConns = math.MaxInt32
	}
	if maxConns > 0 {
		poolCfg.MaxConns = int32(maxConns)
	}
	// pgx rejects a minimum above the maximum
	poolCfg.MinConns = min(DefaultMinConnections, poolCfg.MaxConns)
	poolCfg.MaxConnLifetime = cfg.MaxLifetime
	poolCfg.MaxConnIdleTime = cfg.MaxIdle

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	logger.FromContext(ctx).Info(LogMsgSuccessfullyConnectedToDatabase, "max_conns", poolCfg.MaxConns)
	return pool, nil
}
