package domain

import "time"

// Currency identifies one of the two balances held by the ledger
type Currency string

const (
	CurrencyGold    Currency = "gold"
	CurrencyDiamond Currency = "diamond"
)

// UserLedger holds balances and progression. Balances never go negative and
// Experience stays below Level*XPPerLevel after every update.
type UserLedger struct {
	Diamonds               int        `json:"diamonds"`
	Gold                   int        `json:"gold"`
	Experience             int        `json:"xp"`
	Level                  int        `json:"level"`
	LastSessionCompletedAt *time.Time `json:"lastSessionCompletedAt,omitempty"`
}

// Settings are player preferences that influence the simulation
type Settings struct {
	AutoStartBreaks      bool    `json:"autoStartBreaks"`
	AccumulateOvertime   bool    `json:"accumulateOvertime"`
	SoundEnabled         bool    `json:"soundEnabled"`
	MusicEnabled         bool    `json:"musicEnabled"`
	SoundVolume          float64 `json:"soundVolume"`
	MusicVolume          float64 `json:"musicVolume"`
	NotificationsEnabled bool    `json:"notificationsEnabled"`
	Theme                string  `json:"theme"`
	Language             string  `json:"language"`
}

// SettingsUpdate carries a partial settings change; nil fields are left untouched
type SettingsUpdate struct {
	AutoStartBreaks      *bool    `json:"autoStartBreaks,omitempty"`
	AccumulateOvertime   *bool    `json:"accumulateOvertime,omitempty"`
	SoundEnabled         *bool    `json:"soundEnabled,omitempty"`
	MusicEnabled         *bool    `json:"musicEnabled,omitempty"`
	SoundVolume          *float64 `json:"soundVolume,omitempty" validate:"omitempty,min=0,max=1"`
	MusicVolume          *float64 `json:"musicVolume,omitempty" validate:"omitempty,min=0,max=1"`
	NotificationsEnabled *bool    `json:"notificationsEnabled,omitempty"`
	Theme                *string  `json:"theme,omitempty" validate:"omitempty,oneof=light dark system"`
	Language             *string  `json:"language,omitempty" validate:"omitempty,min=2,max=10"`
}

// Apply merges the non-nil fields of u into s
func (u SettingsUpdate) Apply(s *Settings) {
	if u.AutoStartBreaks != nil {
		s.AutoStartBreaks = *u.AutoStartBreaks
	}
	if u.AccumulateOvertime != nil {
		s.AccumulateOvertime = *u.AccumulateOvertime
	}
	if u.SoundEnabled != nil {
		s.SoundEnabled = *u.SoundEnabled
	}
	if u.MusicEnabled != nil {
		s.MusicEnabled = *u.MusicEnabled
	}
	if u.SoundVolume != nil {
		s.SoundVolume = *u.SoundVolume
	}
	if u.MusicVolume != nil {
		s.MusicVolume = *u.MusicVolume
	}
	if u.NotificationsEnabled != nil {
		s.NotificationsEnabled = *u.NotificationsEnabled
	}
	if u.Theme != nil {
		s.Theme = *u.Theme
	}
	if u.Language != nil {
		s.Language = *u.Language
	}
}

// UserState is the persisted user record: ledger plus settings
type UserState struct {
	Ledger   UserLedger `json:"ledger"`
	Settings Settings   `json:"settings"`
}

// DefaultSettings returns the settings of a fresh install
func DefaultSettings() Settings {
	return Settings{
		SoundEnabled:         true,
		MusicEnabled:         true,
		SoundVolume:          0.7,
		MusicVolume:          0.5,
		NotificationsEnabled: true,
		Theme:                "light",
		Language:             "en",
	}
}

// DefaultUserState returns starting balances at level 1
func DefaultUserState() UserState {
	return UserState{
		Ledger: UserLedger{
			Diamonds: StartingDiamonds,
			Gold:     StartingGold,
			Level:    StartingLevel,
		},
		Settings: DefaultSettings(),
	}
}

// Clone returns a copy that shares no pointers with u
func (u UserState) Clone() UserState {
	u.Ledger.LastSessionCompletedAt = cloneTime(u.Ledger.LastSessionCompletedAt)
	return u
}

// Normalize clamps a decoded ledger back into its invariants
func (u *UserState) Normalize() {
	l := &u.Ledger
	if l.Diamonds < 0 {
		l.Diamonds = 0
	}
	if l.Gold < 0 {
		l.Gold = 0
	}
	if l.Experience < 0 {
		l.Experience = 0
	}
	if l.Level < StartingLevel {
		l.Level = StartingLevel
	}
	if u.Settings.Language == "" {
		u.Settings.Language = DefaultSettings().Language
	}
	if u.Settings.Theme == "" {
		u.Settings.Theme = DefaultSettings().Theme
	}
}
