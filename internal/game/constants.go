package game

// Command names, used in logs, events and metrics
const (
	CmdTimerStart            = "timer.start"
	CmdTimerPause            = "timer.pause"
	CmdTimerReset            = "timer.reset"
	CmdTimerSetMode          = "timer.setMode"
	CmdTimerUpdateDurations  = "timer.updateDurations"
	CmdTimerResetAccumulated = "timer.resetAccumulated"
	CmdTimerSyncOnResume     = "timer.syncOnResume"
	CmdTick                  = "game.tick"
	CmdFarmPlant             = "farm.plant"
	CmdFarmHarvest           = "farm.harvest"
	CmdFarmCollect           = "farm.collectProduct"
	CmdFarmFeed              = "farm.feed"
	CmdFarmUpdate            = "farm.updateFarmState"
	CmdLedgerSell            = "ledger.sell"
	CmdShopBuy               = "shop.buy"
	CmdShopRefresh           = "shop.refresh"
	CmdGachaPull             = "gacha.pull"
	CmdUpdateSettings        = "user.updateSettings"
	CmdResetAll              = "game.resetAll"
	CmdRestore               = "game.restore"
)

// Log messages
const (
	LogMsgCommandDeclined  = "Command declined"
	LogMsgCommandFailed    = "Command failed"
	LogMsgSessionCompleted = "Focus session completed"
	LogMsgLevelUp          = "Level up"
	LogMsgPublishFailed    = "Failed to publish event"
	LogMsgGameRestored     = "Game restored"
	LogMsgGameReset        = "Game reset to defaults"
)

// Error formats
const (
	ErrMsgDurationOutOfRangeFmt = "%w: %s duration %d outside %d-%d minutes"
	ErrMsgUnknownModeFmt        = "%w: unknown timer mode %q"
)
