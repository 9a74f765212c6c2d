package bootstrap

import (
	"context"
	"fmt"

	"github.com/GEON1999/PomoFarm/internal/config"
	"github.com/GEON1999/PomoFarm/internal/domain"
	"github.com/GEON1999/PomoFarm/internal/logger"
)

// SnapshotLoader reads the persisted game
type SnapshotLoader interface {
	Load(ctx context.Context) (*domain.Snapshot, error)
}

// Restorer is the part of the game touched at startup
type Restorer interface {
	Restore(ctx context.Context, snapshot *domain.Snapshot)
	SyncOnResume(ctx context.Context)
}

// RestoreGame loads the saved game into g and catches up with the time spent
// offline. A first run starts from defaults with the configured break and
// overtime settings; afterwards the saved settings win.
func RestoreGame(ctx context.Context, cfg *config.Config, store SnapshotLoader, g Restorer) error {
	snapshot, err := store.Load(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedLoadSave, err)
	}

	if snapshot == nil {
		logger.FromContext(ctx).Info(LogMsgNoSaveFound,
			"auto_start_breaks", cfg.AutoStartBreaks,
			"accumulate_overtime", cfg.AccumulateOvertime)
		fresh := domain.DefaultSnapshot()
		fresh.User.Settings.AutoStartBreaks = cfg.AutoStartBreaks
		fresh.User.Settings.AccumulateOvertime = cfg.AccumulateOvertime
		snapshot = &fresh
	}

	g.Restore(ctx, snapshot)
	g.SyncOnResume(ctx)
	return nil
}
