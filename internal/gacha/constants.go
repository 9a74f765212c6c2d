package gacha

// ============================================================================
// Rarity Thresholds
// ============================================================================

// Rolls are uniform in [0, 100). A roll strictly above a threshold earns that tier.
const (
	LegendaryThreshold = 95.0
	EpicThreshold      = 85.0
	RareThreshold      = 70.0
	UncommonThreshold  = 40.0
)

// RollScale maps a unit random value onto the threshold range
const RollScale = 100.0

// ============================================================================
// Pull Costs
// ============================================================================

const (
	SingleGoldCost    = 500
	MultiGoldCost     = 4500
	SingleDiamondCost = 100
	MultiDiamondCost  = 900
)

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrMsgUnknownPoolFmt       = "%w: %q"
	ErrMsgUnknownPullTypeFmt   = "%w: %q"
	ErrMsgUnknownCurrencyFmt   = "%w: %q"
	ErrMsgEmptyPoolFmt         = "%w: %s"
	ErrMsgInsufficientFundsFmt = "%w: %s pull costs %d %s, balance %d"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgPullCalled   = "Gacha pull called"
	LogMsgPullDeclined = "Gacha pull declined"
	LogMsgPullResolved = "Gacha pull resolved"
	LogMsgRarityMissed = "No item of rolled rarity in pool, falling back to full pool"
)
