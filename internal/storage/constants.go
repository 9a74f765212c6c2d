package storage

import "time"

// Record keys, one per persisted aggregate
const (
	KeyUser     = "pomofarm_user"
	KeyFarm     = "pomofarm_farm"
	KeyTimer    = "pomofarm_timer"
	KeyShop     = "pomofarm_shop"
	KeyLastSave = "pomofarm_last_save"
)

// AllKeys lists every record the store reads and writes
var AllKeys = []string{KeyUser, KeyFarm, KeyTimer, KeyShop, KeyLastSave}

// Cache defaults
const (
	DefaultCacheSize = 16
	DefaultCacheTTL  = 5 * time.Minute
)

// Error Messages
const (
	ErrMsgReadRecordFmt   = "failed to read record %s"
	ErrMsgEncodeRecordFmt = "failed to encode record %s"
	ErrMsgWriteRecords    = "failed to write records"
	ErrMsgDeleteRecords   = "failed to delete records"
)

// Log Messages
const (
	LogMsgRecordCorrupt   = "Saved record is corrupt, using defaults"
	LogMsgSnapshotLoaded  = "Snapshot loaded"
	LogMsgNoSnapshot      = "No saved snapshot found"
	LogMsgSnapshotSaved   = "Snapshot saved"
	LogMsgSnapshotCleared = "Saved snapshot cleared"
)
