package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// Backup error messages
	ErrMsgExportFailed        = "Failed to export save"
	ErrMsgNoSavedGame         = "No saved game yet"
	ErrMsgInvalidBackupSource = "source must be live or saved"
	ErrMsgReadBackupFailed    = "Failed to read backup"
	ErrMsgBackupTooLarge      = "Backup is too large"
	ErrMsgEmptyDurationList   = "At least one duration is required"
)

// Declined-command messages. A declined command leaves the state untouched.
const (
	MsgTimerAlreadyRunning = "Timer is already running"
	MsgTimerNotRunning     = "Timer is not running"
	MsgPlantDeclined       = "Plot is not free or seed is not in the inventory"
	MsgHarvestDeclined     = "Nothing ready to harvest on that plot"
	MsgCollectDeclined     = "No product ready for that animal"
	MsgFeedDeclined        = "Animal cannot be fed right now"
)

// Success messages for API responses
const (
	MsgTimerReset       = "Timer reset"
	MsgAccumulatedReset = "Accumulated focus time reset"
	MsgGameReset        = "Game reset to defaults"
	MsgBackupImported   = "Backup imported"
)

// Backup download settings
const (
	BackupFilenameFmt        = "pomofarm-backup-%s.json"
	BackupFilenameDateFmt    = "2006-01-02"
	MaxBackupBodyBytes       = 1 << 20
	HeaderContentDisposition = "Content-Disposition"

	QueryParamSource  = "source"
	BackupSourceLive  = "live"
	BackupSourceSaved = "saved"
)
