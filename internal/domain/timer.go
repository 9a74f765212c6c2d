package domain

import "time"

// TimerMode is the active phase of the pomodoro cycle
type TimerMode string

const (
	ModeFocus      TimerMode = "focus"
	ModeShortBreak TimerMode = "shortBreak"
	ModeLongBreak  TimerMode = "longBreak"
)

// Valid reports whether m is one of the known timer modes
func (m TimerMode) Valid() bool {
	switch m {
	case ModeFocus, ModeShortBreak, ModeLongBreak:
		return true
	default:
		return false
	}
}

// TimerState is the persisted state of the pomodoro timer.
// ScheduledEnd is set only while the timer is running outside of overtime.
type TimerState struct {
	IsRunning               bool       `json:"isRunning"`
	Mode                    TimerMode  `json:"mode"`
	TimeLeftSeconds         int        `json:"timeLeft"`
	FocusDurationMin        int        `json:"focusDuration"`
	ShortBreakDurationMin   int        `json:"shortBreakDuration"`
	LongBreakDurationMin    int        `json:"longBreakDuration"`
	CompletedSessions       int        `json:"completedSessions"`
	ScheduledEnd            *time.Time `json:"endTime,omitempty"`
	AccumulatedFocusSeconds int        `json:"accumulatedFocusSeconds"`
	IsOvertime              bool       `json:"isOvertime"`
}

// DurationMinutes returns the configured length of mode m
func (t *TimerState) DurationMinutes(m TimerMode) int {
	switch m {
	case ModeShortBreak:
		return t.ShortBreakDurationMin
	case ModeLongBreak:
		return t.LongBreakDurationMin
	default:
		return t.FocusDurationMin
	}
}

// DefaultTimerState returns a paused 25/5/15 timer in focus mode
func DefaultTimerState() TimerState {
	return TimerState{
		Mode:                  ModeFocus,
		TimeLeftSeconds:       DefaultFocusMinutes * 60,
		FocusDurationMin:      DefaultFocusMinutes,
		ShortBreakDurationMin: DefaultShortBreakMinutes,
		LongBreakDurationMin:  DefaultLongBreakMinutes,
	}
}

// Normalize repairs a decoded timer so that it satisfies the state invariants.
func (t *TimerState) Normalize() {
	if !t.Mode.Valid() {
		t.Mode = ModeFocus
	}
	t.FocusDurationMin = clampDuration(t.FocusDurationMin, DefaultFocusMinutes)
	t.ShortBreakDurationMin = clampDuration(t.ShortBreakDurationMin, DefaultShortBreakMinutes)
	t.LongBreakDurationMin = clampDuration(t.LongBreakDurationMin, DefaultLongBreakMinutes)
	if t.TimeLeftSeconds < 0 {
		t.TimeLeftSeconds = 0
	}
	if t.CompletedSessions < 0 {
		t.CompletedSessions = 0
	}
	if t.AccumulatedFocusSeconds < 0 {
		t.AccumulatedFocusSeconds = 0
	}
	if t.IsOvertime && t.Mode != ModeFocus {
		t.IsOvertime = false
	}
	if !t.IsRunning || t.IsOvertime {
		t.ScheduledEnd = nil
	}
	if t.IsRunning && !t.IsOvertime && t.ScheduledEnd == nil {
		t.IsRunning = false
	}
}

func clampDuration(v, fallback int) int {
	if v < MinDurationMinutes || v > MaxDurationMinutes {
		return fallback
	}
	return v
}

// Clone returns a copy that shares no pointers with t
func (t TimerState) Clone() TimerState {
	t.ScheduledEnd = cloneTime(t.ScheduledEnd)
	return t
}
