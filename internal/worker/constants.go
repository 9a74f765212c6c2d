package worker

import "time"

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// LogMsgQueueFull is logged when a non-blocking enqueue drops a job
const LogMsgQueueFull = "Worker queue full, job dropped"

// ============================================================================
// Log Messages - Persistence
// ============================================================================

const (
	LogMsgSnapshotSaved        = "Snapshot saved"
	LogMsgStaleSnapshotSkipped = "Skipping stale snapshot"
	LogMsgSaveRequestDropped   = "Save request dropped, a newer save will follow"
)

// ============================================================================
// Defaults
// ============================================================================

const (
	// DefaultWorkerCount is the number of workers started by cmd/app
	DefaultWorkerCount = 2

	// DefaultQueueSize bounds pending jobs
	DefaultQueueSize = 64

	// DefaultJobTimeout bounds a single job
	DefaultJobTimeout = 10 * time.Second
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount      = 2
	TestQueueSize        = 10
	TestExpectedJobCount = 2
)
