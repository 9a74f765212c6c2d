package timer

import (
	"time"

	"github.com/GEON1999/PomoFarm/internal/clock"
	"github.com/GEON1999/PomoFarm/internal/domain"
)

// Options are the player settings that change how a tick behaves
type Options struct {
	AutoStartBreaks    bool
	AccumulateOvertime bool
}

// DurationUpdate is a partial change of the configured durations, in minutes.
// Values must already be validated against the configured bounds.
type DurationUpdate struct {
	FocusMin      *int
	ShortBreakMin *int
	LongBreakMin  *int
}

// TickResult reports the transitions a tick caused
type TickResult struct {
	SessionCompleted bool
	BreakCompleted   bool
	ModeChanged      bool
	PreviousMode     domain.TimerMode
}

// Engine is the pomodoro state machine. Every transition is total: invalid or
// stale commands leave the state unchanged instead of failing.
type Engine struct {
	state domain.TimerState
}

// NewEngine wraps a timer state, normally loaded from storage
func NewEngine(state domain.TimerState) *Engine {
	state.Normalize()
	return &Engine{state: state}
}

// State returns a copy of the current timer state
func (e *Engine) State() domain.TimerState {
	return e.state.Clone()
}

// Start resumes the countdown. The scheduled end is derived from the remaining time
// unless the session is already in overtime.
func (e *Engine) Start(now time.Time) bool {
	s := &e.state
	if s.IsRunning {
		return false
	}
	s.IsRunning = true
	if !s.IsOvertime {
		s.ScheduledEnd = endAt(now, s.TimeLeftSeconds)
	}
	return true
}

// Pause stops the countdown, folding the time still owed into TimeLeftSeconds.
func (e *Engine) Pause(now time.Time) bool {
	s := &e.state
	if !s.IsRunning {
		return false
	}
	if s.ScheduledEnd != nil {
		s.TimeLeftSeconds = clock.ResyncCountdown(*s.ScheduledEnd, now)
	}
	s.IsRunning = false
	s.ScheduledEnd = nil
	return true
}

// Reset stops the timer and returns it to a fresh focus session.
// Completed and accumulated counters are kept.
func (e *Engine) Reset() {
	s := &e.state
	s.IsRunning = false
	s.IsOvertime = false
	s.ScheduledEnd = nil
	s.Mode = domain.ModeFocus
	s.TimeLeftSeconds = s.FocusDurationMin * 60
}

// SetMode force-switches to m, stopping the timer and clearing overtime
func (e *Engine) SetMode(m domain.TimerMode) bool {
	if !m.Valid() {
		return false
	}
	s := &e.state
	s.Mode = m
	s.IsRunning = false
	s.IsOvertime = false
	s.ScheduledEnd = nil
	s.TimeLeftSeconds = s.DurationMinutes(m) * 60
	return true
}

// UpdateDurations applies a partial duration change. A paused timer whose active
// mode was edited picks up the new length immediately; paused overtime ends and
// the countdown restarts from the new length.
func (e *Engine) UpdateDurations(u DurationUpdate) {
	s := &e.state
	edited := map[domain.TimerMode]bool{}
	if u.FocusMin != nil && *u.FocusMin > 0 {
		s.FocusDurationMin = *u.FocusMin
		edited[domain.ModeFocus] = true
	}
	if u.ShortBreakMin != nil && *u.ShortBreakMin > 0 {
		s.ShortBreakDurationMin = *u.ShortBreakMin
		edited[domain.ModeShortBreak] = true
	}
	if u.LongBreakMin != nil && *u.LongBreakMin > 0 {
		s.LongBreakDurationMin = *u.LongBreakMin
		edited[domain.ModeLongBreak] = true
	}
	if !s.IsRunning && edited[s.Mode] {
		s.IsOvertime = false
		s.TimeLeftSeconds = s.DurationMinutes(s.Mode) * 60
	}
}

// SyncOnResume recomputes the remaining time from the scheduled end instead of
// trusting the cached countdown. Calling it repeatedly with the same now is idempotent.
func (e *Engine) SyncOnResume(now time.Time) {
	s := &e.state
	if !s.IsRunning || s.IsOvertime || s.ScheduledEnd == nil {
		return
	}
	s.TimeLeftSeconds = clock.ResyncCountdown(*s.ScheduledEnd, now)
}

// ResetAccumulated zeroes the lifetime focus counter
func (e *Engine) ResetAccumulated() {
	e.state.AccumulatedFocusSeconds = 0
}

// Tick advances a running timer. With a scheduled end the countdown follows the
// wall clock: delayed ticks catch up and bunched ticks at the same instant change
// nothing. Without one it moves by one second per tick.
// Overtime is only counted by ticks that actually run.
func (e *Engine) Tick(now time.Time, opts Options) TickResult {
	s := &e.state
	result := TickResult{PreviousMode: s.Mode}
	if !s.IsRunning {
		return result
	}

	if s.IsOvertime {
		s.TimeLeftSeconds++
		if opts.AccumulateOvertime {
			s.AccumulatedFocusSeconds++
		}
		return result
	}

	remaining := s.TimeLeftSeconds - 1
	if s.ScheduledEnd != nil {
		remaining = clock.ResyncCountdown(*s.ScheduledEnd, now)
		// A clock moved backwards never gives time back
		if remaining > s.TimeLeftSeconds {
			remaining = s.TimeLeftSeconds
		}
	}
	if remaining < 0 {
		remaining = 0
	}
	if s.Mode == domain.ModeFocus {
		s.AccumulatedFocusSeconds += s.TimeLeftSeconds - remaining
	}
	s.TimeLeftSeconds = remaining
	if remaining > 0 {
		return result
	}

	if s.Mode == domain.ModeFocus {
		e.completeFocus(now, opts, &result)
	} else {
		e.completeBreak(now, &result)
	}
	return result
}

func (e *Engine) completeFocus(now time.Time, opts Options, result *TickResult) {
	s := &e.state
	s.CompletedSessions++
	result.SessionCompleted = true

	if !opts.AutoStartBreaks {
		s.IsOvertime = true
		s.TimeLeftSeconds = 0
		s.ScheduledEnd = nil
		return
	}

	next := domain.ModeShortBreak
	if s.CompletedSessions%domain.SessionsPerLongBreak == 0 {
		next = domain.ModeLongBreak
	}
	s.Mode = next
	s.TimeLeftSeconds = s.DurationMinutes(next) * 60
	s.ScheduledEnd = endAt(now, s.TimeLeftSeconds)
	result.ModeChanged = true
}

func (e *Engine) completeBreak(now time.Time, result *TickResult) {
	s := &e.state
	s.Mode = domain.ModeFocus
	s.TimeLeftSeconds = s.FocusDurationMin * 60
	s.ScheduledEnd = endAt(now, s.TimeLeftSeconds)
	result.BreakCompleted = true
	result.ModeChanged = true
}

func endAt(now time.Time, seconds int) *time.Time {
	end := now.Add(time.Duration(seconds) * time.Second)
	return &end
}
