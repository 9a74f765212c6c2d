package worker

import (
	"context"
	"sync"
	"time"

	"github.com/GEON1999/PomoFarm/internal/domain"
	"github.com/GEON1999/PomoFarm/internal/logger"
	"github.com/GEON1999/PomoFarm/internal/metrics"
)

// SnapshotStore is the persistence target of save jobs
type SnapshotStore interface {
	Save(ctx context.Context, snapshot *domain.Snapshot) error
}

// Persister writes snapshots in revision order. Several workers may run save jobs
// concurrently; a snapshot older than the last one written is dropped.
type Persister struct {
	store        SnapshotStore
	mu           sync.Mutex
	lastRevision uint64
}

// NewPersister creates a persister writing to store
func NewPersister(store SnapshotStore) *Persister {
	return &Persister{store: store}
}

// Persist saves snapshot unless a newer revision was already written
func (p *Persister) Persist(ctx context.Context, revision uint64, snapshot *domain.Snapshot) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	log := logger.FromContext(ctx)
	if revision != 0 && revision <= p.lastRevision {
		log.Debug(LogMsgStaleSnapshotSkipped, "revision", revision, "last_revision", p.lastRevision)
		metrics.SavesTotal.WithLabelValues(metrics.SaveResultSkipped).Inc()
		return nil
	}

	start := time.Now()
	err := p.store.Save(ctx, snapshot)
	metrics.SaveDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.SavesTotal.WithLabelValues(metrics.SaveResultError).Inc()
		return err
	}
	metrics.SavesTotal.WithLabelValues(metrics.SaveResultOK).Inc()
	if revision > p.lastRevision {
		p.lastRevision = revision
	}
	log.Debug(LogMsgSnapshotSaved, "revision", revision)
	return nil
}

// SaveJob persists one snapshot
type SaveJob struct {
	persister *Persister
	revision  uint64
	snapshot  domain.Snapshot
}

// NewSaveJob creates a save job for a snapshot taken at revision
func NewSaveJob(persister *Persister, revision uint64, snapshot domain.Snapshot) *SaveJob {
	return &SaveJob{persister: persister, revision: revision, snapshot: snapshot}
}

// Process writes the snapshot
func (j *SaveJob) Process(ctx context.Context) error {
	return j.persister.Persist(ctx, j.revision, &j.snapshot)
}

// SaveDispatcher turns save requests into fire-and-forget jobs on a pool
type SaveDispatcher struct {
	pool      *Pool
	persister *Persister
}

// NewSaveDispatcher creates a dispatcher enqueueing on pool
func NewSaveDispatcher(pool *Pool, persister *Persister) *SaveDispatcher {
	return &SaveDispatcher{pool: pool, persister: persister}
}

// RequestSave enqueues a save without waiting for it. A full queue drops the
// request; the next command or autosave writes a newer snapshot anyway.
func (d *SaveDispatcher) RequestSave(ctx context.Context, revision uint64, snapshot domain.Snapshot) {
	if !d.pool.TryEnqueue(NewSaveJob(d.persister, revision, snapshot)) {
		logger.FromContext(ctx).Warn(LogMsgSaveRequestDropped, "revision", revision)
	}
}
