package domain

import "time"

// Snapshot is the full persisted game state
type Snapshot struct {
	User     UserState  `json:"user"`
	Farm     FarmState  `json:"farm"`
	Timer    TimerState `json:"timer"`
	Shop     ShopState  `json:"shop"`
	LastSave time.Time  `json:"lastSave"`
}

// DefaultSnapshot returns the state of a brand new game
func DefaultSnapshot() Snapshot {
	return Snapshot{
		User:  DefaultUserState(),
		Farm:  DefaultFarmState(),
		Timer: DefaultTimerState(),
		Shop:  DefaultShopState(),
	}
}

// Clone returns a deep copy of the snapshot
func (s Snapshot) Clone() Snapshot {
	return Snapshot{
		User:     s.User.Clone(),
		Farm:     s.Farm.Clone(),
		Timer:    s.Timer.Clone(),
		Shop:     s.Shop.Clone(),
		LastSave: s.LastSave,
	}
}

// Normalize repairs every aggregate after decoding
func (s *Snapshot) Normalize() {
	s.User.Normalize()
	s.Farm.Normalize()
	s.Timer.Normalize()
	if s.Shop.FeaturedItemIDs == nil {
		s.Shop.FeaturedItemIDs = []string{}
	}
}
