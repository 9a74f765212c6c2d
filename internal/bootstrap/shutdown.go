package bootstrap

import (
	"context"

	"github.com/GEON1999/PomoFarm/internal/domain"
	"github.com/GEON1999/PomoFarm/internal/event"
	"github.com/GEON1999/PomoFarm/internal/logger"
	"github.com/GEON1999/PomoFarm/internal/scheduler"
	"github.com/GEON1999/PomoFarm/internal/server"
	"github.com/GEON1999/PomoFarm/internal/sse"
	"github.com/GEON1999/PomoFarm/internal/worker"
)

// SnapshotSource provides the state written by the final save
type SnapshotSource interface {
	Snapshot() domain.Snapshot
}

// ShutdownComponents holds all components that need graceful shutdown.
// Nil fields are skipped.
type ShutdownComponents struct {
	Server             *server.Server
	Scheduler          *scheduler.Scheduler
	WorkerPool         *worker.Pool
	Game               SnapshotSource
	Persister          *worker.Persister
	ResilientPublisher *event.ResilientPublisher
	Hub                *sse.Hub
	Storage            *Storage
}

// GracefulShutdown stops components in dependency order:
// 1. HTTP server (stop accepting commands)
// 2. Scheduler, then worker pool (pending saves drain)
// 3. Final save of the current state
// 4. Event publisher, SSE hub, storage
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgShuttingDownServer)

	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			log.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.Scheduler != nil {
		c.Scheduler.Stop()
	}
	if c.WorkerPool != nil {
		c.WorkerPool.Stop()
	}

	if c.Game != nil && c.Persister != nil {
		snapshot := c.Game.Snapshot()
		// Revision 0 bypasses the stale-revision check
		if err := c.Persister.Persist(ctx, 0, &snapshot); err != nil {
			log.Error(LogMsgFinalSaveFailed, "error", err)
		} else {
			log.Info(LogMsgFinalSaveWritten)
		}
	}

	if c.ResilientPublisher != nil {
		log.Info(LogMsgShuttingDownEventPublisher)
		if err := c.ResilientPublisher.Shutdown(ctx); err != nil {
			log.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	if c.Hub != nil {
		c.Hub.Stop()
	}
	if c.Storage != nil {
		c.Storage.Close()
	}

	log.Info(LogMsgServerStopped)
}
