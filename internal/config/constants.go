package config

import "time"

// Storage drivers
const (
	StorageDriverFile     = "file"
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// Defaults
const (
	DefaultPort              = 8080
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultLogDir            = "logs"
	DefaultEnvironment       = "dev"
	DefaultVersion           = "dev"
	DefaultDataDir           = "data"
	DefaultDBName            = "pomofarm"
	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute
	DefaultTickInterval      = time.Second
	DefaultAutosaveInterval  = 30 * time.Second
	DefaultCacheSize         = 16
	DefaultCacheTTL          = 5 * time.Minute
	DefaultWorkerCount       = 2
	DefaultDeadLetterDir     = "logs"
)
