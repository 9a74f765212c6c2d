package domain

// SessionCompletedPayload is the payload for EventTypeSessionCompleted
type SessionCompletedPayload struct {
	CompletedSessions int   `json:"completedSessions"`
	DiamondsAwarded   int   `json:"diamondsAwarded"`
	XPAwarded         int   `json:"xpAwarded"`
	StreakBonus       bool  `json:"streakBonus"`
	Timestamp         int64 `json:"timestamp"`
}

// ModeChangedPayload is the payload for EventTypeModeChanged
type ModeChangedPayload struct {
	From      TimerMode `json:"from"`
	To        TimerMode `json:"to"`
	Timestamp int64     `json:"timestamp"`
}

// CropReadyPayload is the payload for EventTypeCropReady
type CropReadyPayload struct {
	PlotID string `json:"plotId"`
	CropID string `json:"cropId"`
}

// ProductReadyPayload is the payload for EventTypeProductReady
type ProductReadyPayload struct {
	AnimalID   string `json:"animalId"`
	AnimalType string `json:"animalType"`
}

// HarvestedPayload is the payload for EventTypeHarvested
type HarvestedPayload struct {
	SourceID string `json:"sourceId"`
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

// LevelUpPayload is the payload for EventTypeLevelUp
type LevelUpPayload struct {
	OldLevel int `json:"oldLevel"`
	NewLevel int `json:"newLevel"`
}

// ItemSoldPayload is the payload for EventTypeItemSold
type ItemSoldPayload struct {
	ItemID     string `json:"itemId"`
	Quantity   int    `json:"quantity"`
	TotalValue int    `json:"totalValue"`
	Timestamp  int64  `json:"timestamp"`
}

// ItemBoughtPayload is the payload for EventTypeItemBought
type ItemBoughtPayload struct {
	ItemID    string `json:"itemId"`
	Quantity  int    `json:"quantity"`
	TotalCost int    `json:"totalCost"`
	Timestamp int64  `json:"timestamp"`
}

// GachaPulledPayload is the payload for EventTypeGachaPulled
type GachaPulledPayload struct {
	Pool     GachaPool  `json:"pool"`
	PullType PullType   `json:"pullType"`
	Currency Currency   `json:"currency"`
	Cost     int        `json:"cost"`
	Items    []ShopItem `json:"items"`
}

// StateChangedPayload is the payload for EventTypeStateChanged
type StateChangedPayload struct {
	Command string `json:"command"`
}
