package storage

import (
	"context"
	"sync"
)

// MemoryRecordStore keeps records in process memory. Nothing survives a restart.
type MemoryRecordStore struct {
	mu      sync.RWMutex
	records map[string][]byte
}

// NewMemoryRecordStore returns an empty in-memory backend
func NewMemoryRecordStore() *MemoryRecordStore {
	return &MemoryRecordStore{records: make(map[string][]byte)}
}

func (m *MemoryRecordStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.records[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), data...), true, nil
}

func (m *MemoryRecordStore) PutAll(_ context.Context, records map[string][]byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for key, data := range records {
		m.records[key] = append([]byte(nil), data...)
	}
	return nil
}

func (m *MemoryRecordStore) DeleteAll(_ context.Context, keys []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, key := range keys {
		delete(m.records, key)
	}
	return nil
}
