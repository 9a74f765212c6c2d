package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/GEON1999/PomoFarm/internal/domain"
	"github.com/GEON1999/PomoFarm/internal/logger"
)

// Store persists the full game snapshot
type Store interface {
	// Load returns nil when nothing has been saved yet
	Load(ctx context.Context) (*domain.Snapshot, error)
	Save(ctx context.Context, snapshot *domain.Snapshot) error
	Clear(ctx context.Context) error
}

// RecordStore is a flat key/value backend holding one JSON document per key
type RecordStore interface {
	// Get reports found=false when the key has never been written
	Get(ctx context.Context, key string) (data []byte, found bool, err error)
	// PutAll writes every record or none of them
	PutAll(ctx context.Context, records map[string][]byte) error
	DeleteAll(ctx context.Context, keys []string) error
}

// SnapshotStore splits a snapshot into per-aggregate records
type SnapshotStore struct {
	records RecordStore
}

// New creates a Store on top of a record backend
func New(records RecordStore) *SnapshotStore {
	return &SnapshotStore{records: records}
}

// Load reads every aggregate record. A record that fails to decode is
// replaced by that aggregate's defaults instead of failing the load.
func (s *SnapshotStore) Load(ctx context.Context) (*domain.Snapshot, error) {
	log := logger.FromContext(ctx)

	raw := make(map[string][]byte, len(AllKeys))
	for _, key := range AllKeys {
		data, found, err := s.records.Get(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("%w: "+ErrMsgReadRecordFmt+": %v", domain.ErrStorageError, key, err)
		}
		if found {
			raw[key] = data
		}
	}

	if len(raw) == 0 {
		log.Info(LogMsgNoSnapshot)
		return nil, nil
	}

	snapshot := domain.DefaultSnapshot()
	decodeRecord(ctx, raw, KeyUser, &snapshot.User, domain.DefaultUserState)
	decodeRecord(ctx, raw, KeyFarm, &snapshot.Farm, domain.DefaultFarmState)
	decodeRecord(ctx, raw, KeyTimer, &snapshot.Timer, domain.DefaultTimerState)
	decodeRecord(ctx, raw, KeyShop, &snapshot.Shop, domain.DefaultShopState)
	decodeRecord(ctx, raw, KeyLastSave, &snapshot.LastSave, func() time.Time { return time.Time{} })
	snapshot.Normalize()

	log.Info(LogMsgSnapshotLoaded, "records", len(raw), "last_save", snapshot.LastSave)
	return &snapshot, nil
}

// decodeRecord unmarshals raw[key] over fallback() into target. Fields absent from
// the record keep their defaults. A missing record leaves target untouched.
func decodeRecord[T any](ctx context.Context, raw map[string][]byte, key string, target *T, fallback func() T) {
	data, ok := raw[key]
	if !ok {
		return
	}

	decoded := fallback()
	if err := json.Unmarshal(data, &decoded); err != nil {
		logger.FromContext(ctx).Warn(LogMsgRecordCorrupt, "key", key, "error", err)
		*target = fallback()
		return
	}
	*target = decoded
}

// Save writes all aggregates in one batch
func (s *SnapshotStore) Save(ctx context.Context, snapshot *domain.Snapshot) error {
	if snapshot == nil {
		return fmt.Errorf("%w: nil snapshot", domain.ErrInvalidInput)
	}

	values := map[string]interface{}{
		KeyUser:     snapshot.User,
		KeyFarm:     snapshot.Farm,
		KeyTimer:    snapshot.Timer,
		KeyShop:     snapshot.Shop,
		KeyLastSave: snapshot.LastSave,
	}

	records := make(map[string][]byte, len(values))
	for key, value := range values {
		data, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf(ErrMsgEncodeRecordFmt+": %w", key, err)
		}
		records[key] = data
	}

	if err := s.records.PutAll(ctx, records); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrStorageError, ErrMsgWriteRecords, err)
	}

	logger.FromContext(ctx).Debug(LogMsgSnapshotSaved, "last_save", snapshot.LastSave)
	return nil
}

// Clear deletes every record
func (s *SnapshotStore) Clear(ctx context.Context) error {
	if err := s.records.DeleteAll(ctx, AllKeys); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrStorageError, ErrMsgDeleteRecords, err)
	}
	logger.FromContext(ctx).Info(LogMsgSnapshotCleared)
	return nil
}
