// Package postgres stores save records in a JSONB table.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/GEON1999/PomoFarm/internal/database"
)

const (
	selectRecordSQL = `SELECT record_data FROM save_records WHERE record_key = $1`

	upsertRecordSQL = `
		INSERT INTO save_records (record_key, record_data, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (record_key)
		DO UPDATE SET record_data = EXCLUDED.record_data, updated_at = EXCLUDED.updated_at`

	deleteRecordsSQL = `DELETE FROM save_records WHERE record_key = ANY($1)`
)

// Store implements storage.RecordStore on the save_records table
type Store struct {
	db *pgxpool.Pool
}

// NewStore creates a record store. The schema must already be migrated.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var data []byte
	err := s.db.QueryRow(ctx, selectRecordSQL, key).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get record %s: %w", key, err)
	}
	return data, true, nil
}

// PutAll upserts every record in one transaction
func (s *Store) PutAll(ctx context.Context, records map[string][]byte) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", database.ErrMsgFailedToBeginTransaction, err)
	}
	defer database.SafeRollback(ctx, tx)

	batch := &pgx.Batch{}
	for key, data := range records {
		batch.Queue(upsertRecordSQL, key, data)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to upsert records: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit records: %w", err)
	}
	return nil
}

func (s *Store) DeleteAll(ctx context.Context, keys []string) error {
	if _, err := s.db.Exec(ctx, deleteRecordsSQL, keys); err != nil {
		return fmt.Errorf("failed to delete records: %w", err)
	}
	return nil
}
