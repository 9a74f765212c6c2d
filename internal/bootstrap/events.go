package bootstrap

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/GEON1999/PomoFarm/internal/config"
	"github.com/GEON1999/PomoFarm/internal/event"
	"github.com/GEON1999/PomoFarm/internal/logger"
)

// InitializeEventSystem creates the event bus and the resilient publisher the
// game publishes through. Events that still fail after the retries are appended
// to a dead-letter file in the log directory.
func InitializeEventSystem(cfg *config.Config) (*event.MemoryBus, *event.ResilientPublisher, error) {
	eventBus := event.NewMemoryBus()

	deadLetterPath := filepath.Join(cfg.LogDir, event.DeadLetterFileName)
	if err := os.MkdirAll(filepath.Dir(deadLetterPath), DirPermission); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateDeadLetterDir, err)
	}

	resilientPublisher, err := event.NewResilientPublisher(eventBus, EventDefaultMaxRetries, EventDefaultRetryDelay, deadLetterPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateResilientPublisher, err)
	}

	logger.Info(LogMsgEventSystemInitialized,
		"max_retries", EventDefaultMaxRetries,
		"retry_delay", EventDefaultRetryDelay,
		"deadletter_path", deadLetterPath)

	return eventBus, resilientPublisher, nil
}
