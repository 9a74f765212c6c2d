package domain

// Farm layout
const (
	PlotCount      = 9
	PlotIDPrefix   = "plot_"
	AnimalIDPrefix = "animal_"
)

// Starting balances for a fresh save
const (
	StartingDiamonds = 4000
	StartingGold     = 1000
	StartingLevel    = 1
)

// Timer defaults, in minutes
const (
	DefaultFocusMinutes      = 25
	DefaultShortBreakMinutes = 5
	DefaultLongBreakMinutes  = 15

	MinDurationMinutes = 1
	MaxDurationMinutes = 120

	// SessionsPerLongBreak is how many completed focus sessions earn a long break.
	SessionsPerLongBreak = 4
)

// Leveling
const (
	// XPPerLevel scales the level-up threshold: level N needs N*XPPerLevel experience.
	XPPerLevel = 100
)

// Focus session rewards
const (
	SessionDiamondReward = 5
	SessionXPReward      = 10
	StreakDiamondBonus   = 2
	StreakXPBonus        = 5
	StreakWindowHours    = 48
)

// Shop rotation
const (
	FeaturedItemCount = 2
)
