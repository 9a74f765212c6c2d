package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GEON1999/PomoFarm/internal/domain"
)

var start = time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)

func intPtr(v int) *int { return &v }

func runningEngine(t *testing.T, state domain.TimerState) *Engine {
	t.Helper()
	e := NewEngine(state)
	require.True(t, e.Start(start))
	return e
}

func TestStart_SchedulesEnd(t *testing.T) {
	e := NewEngine(domain.DefaultTimerState())

	assert.True(t, e.Start(start))

	s := e.State()
	assert.True(t, s.IsRunning)
	require.NotNil(t, s.ScheduledEnd)
	assert.Equal(t, start.Add(25*time.Minute), *s.ScheduledEnd)
	assert.False(t, e.Start(start.Add(time.Second)), "second start is a no-op")
}

func TestStart_InOvertimeLeavesEndUnset(t *testing.T) {
	state := domain.DefaultTimerState()
	state.IsOvertime = true
	state.TimeLeftSeconds = 42
	e := NewEngine(state)

	e.Start(start)

	s := e.State()
	assert.True(t, s.IsRunning)
	assert.Nil(t, s.ScheduledEnd)
}

func TestPause_FoldsRemainingTime(t *testing.T) {
	e := runningEngine(t, domain.DefaultTimerState())

	assert.True(t, e.Pause(start.Add(10*time.Minute)))

	s := e.State()
	assert.False(t, s.IsRunning)
	assert.Nil(t, s.ScheduledEnd)
	assert.Equal(t, 15*60, s.TimeLeftSeconds)

	// resuming continues from the remaining time
	resumeAt := start.Add(time.Hour)
	e.Start(resumeAt)
	assert.Equal(t, resumeAt.Add(15*time.Minute), *e.State().ScheduledEnd)
}

func TestTick_DecrementsAndAccumulates(t *testing.T) {
	e := runningEngine(t, domain.DefaultTimerState())

	res := e.Tick(start.Add(time.Second), Options{})

	s := e.State()
	assert.False(t, res.SessionCompleted)
	assert.Equal(t, 1499, s.TimeLeftSeconds)
	assert.Equal(t, 1, s.AccumulatedFocusSeconds)
}

func TestTick_PausedIsNoop(t *testing.T) {
	e := NewEngine(domain.DefaultTimerState())

	e.Tick(start.Add(time.Second), Options{})

	assert.Equal(t, 1500, e.State().TimeLeftSeconds)
}

func TestTick_CatchesUpAfterDelay(t *testing.T) {
	e := runningEngine(t, domain.DefaultTimerState())

	e.Tick(start.Add(5*time.Minute), Options{})

	s := e.State()
	assert.Equal(t, 20*60, s.TimeLeftSeconds)
	assert.Equal(t, 5*60, s.AccumulatedFocusSeconds)
}

func TestTick_BunchedTicksFollowWallClock(t *testing.T) {
	e := runningEngine(t, domain.DefaultTimerState())
	now := start.Add(time.Second)

	for i := 0; i < 3; i++ {
		e.Tick(now, Options{})
	}

	s := e.State()
	assert.Equal(t, 1499, s.TimeLeftSeconds)
	assert.Equal(t, 1, s.AccumulatedFocusSeconds)

	require.True(t, e.Pause(now))
	assert.Equal(t, 1499, e.State().TimeLeftSeconds, "pause agrees with the ticks")
}

func TestTick_NoCompletionBeforeScheduledEnd(t *testing.T) {
	e := runningEngine(t, domain.DefaultTimerState())
	beforeEnd := start.Add(1499 * time.Second)

	for i := 0; i < 3; i++ {
		res := e.Tick(beforeEnd, Options{})
		assert.False(t, res.SessionCompleted)
	}
	assert.Equal(t, 1, e.State().TimeLeftSeconds)
	assert.Equal(t, 1499, e.State().AccumulatedFocusSeconds)

	res := e.Tick(start.Add(25*time.Minute), Options{})
	assert.True(t, res.SessionCompleted)
	assert.Equal(t, 1500, e.State().AccumulatedFocusSeconds)
}

func TestTick_ClockMovedBackwardsDoesNotRewind(t *testing.T) {
	e := runningEngine(t, domain.DefaultTimerState())
	e.Tick(start.Add(time.Minute), Options{})

	e.Tick(start.Add(-time.Minute), Options{})

	s := e.State()
	assert.Equal(t, 24*60, s.TimeLeftSeconds)
	assert.Equal(t, 60, s.AccumulatedFocusSeconds)
}

// Focus with one second left and auto-start disabled enters overtime
func TestTick_FocusCompletionEntersOvertime(t *testing.T) {
	state := domain.DefaultTimerState()
	state.TimeLeftSeconds = 1
	e := runningEngine(t, state)

	res := e.Tick(start.Add(time.Second), Options{AutoStartBreaks: false})

	s := e.State()
	assert.True(t, res.SessionCompleted)
	assert.True(t, s.IsOvertime)
	assert.True(t, s.IsRunning)
	assert.Equal(t, 1, s.CompletedSessions)
	assert.Equal(t, 0, s.TimeLeftSeconds)
	assert.Nil(t, s.ScheduledEnd)

	e.Tick(start.Add(2*time.Second), Options{})
	e.Tick(start.Add(3*time.Second), Options{})
	assert.Equal(t, 2, e.State().TimeLeftSeconds, "overtime counts upward")
}

func TestTick_OvertimeAccumulationOption(t *testing.T) {
	state := domain.DefaultTimerState()
	state.TimeLeftSeconds = 1
	e := runningEngine(t, state)
	e.Tick(start.Add(time.Second), Options{})
	base := e.State().AccumulatedFocusSeconds

	e.Tick(start.Add(2*time.Second), Options{AccumulateOvertime: false})
	assert.Equal(t, base, e.State().AccumulatedFocusSeconds)

	e.Tick(start.Add(3*time.Second), Options{AccumulateOvertime: true})
	assert.Equal(t, base+1, e.State().AccumulatedFocusSeconds)
}

func TestTick_AutoStartBreaks(t *testing.T) {
	tests := []struct {
		name         string
		completed    int
		wantMode     domain.TimerMode
		wantTimeLeft int
	}{
		{"first session earns short break", 0, domain.ModeShortBreak, 5 * 60},
		{"fourth session earns long break", 3, domain.ModeLongBreak, 15 * 60},
		{"fifth session earns short break", 4, domain.ModeShortBreak, 5 * 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := domain.DefaultTimerState()
			state.TimeLeftSeconds = 1
			state.CompletedSessions = tt.completed
			e := runningEngine(t, state)
			now := start.Add(time.Second)

			res := e.Tick(now, Options{AutoStartBreaks: true})

			s := e.State()
			assert.True(t, res.SessionCompleted)
			assert.True(t, res.ModeChanged)
			assert.Equal(t, tt.wantMode, s.Mode)
			assert.Equal(t, tt.wantTimeLeft, s.TimeLeftSeconds)
			assert.True(t, s.IsRunning)
			assert.False(t, s.IsOvertime)
			require.NotNil(t, s.ScheduledEnd)
			assert.Equal(t, now.Add(time.Duration(tt.wantTimeLeft)*time.Second), *s.ScheduledEnd)
		})
	}
}

func TestTick_BreakCompletionReturnsToFocus(t *testing.T) {
	state := domain.DefaultTimerState()
	state.Mode = domain.ModeShortBreak
	state.TimeLeftSeconds = 1
	e := runningEngine(t, state)

	res := e.Tick(start.Add(time.Second), Options{})

	s := e.State()
	assert.True(t, res.BreakCompleted)
	assert.False(t, res.SessionCompleted)
	assert.Equal(t, domain.ModeFocus, s.Mode)
	assert.Equal(t, 25*60, s.TimeLeftSeconds)
	assert.Equal(t, 0, s.AccumulatedFocusSeconds, "break time is not focus time")
}

func TestSetMode(t *testing.T) {
	state := domain.DefaultTimerState()
	state.TimeLeftSeconds = 1
	e := runningEngine(t, state)
	e.Tick(start.Add(time.Second), Options{})
	require.True(t, e.State().IsOvertime)

	assert.True(t, e.SetMode(domain.ModeLongBreak))

	s := e.State()
	assert.Equal(t, domain.ModeLongBreak, s.Mode)
	assert.False(t, s.IsRunning)
	assert.False(t, s.IsOvertime)
	assert.Nil(t, s.ScheduledEnd)
	assert.Equal(t, 15*60, s.TimeLeftSeconds)

	assert.False(t, e.SetMode("nap"))
}

func TestUpdateDurations(t *testing.T) {
	t.Run("paused active mode picks up new length", func(t *testing.T) {
		e := NewEngine(domain.DefaultTimerState())

		e.UpdateDurations(DurationUpdate{FocusMin: intPtr(50)})

		assert.Equal(t, 50, e.State().FocusDurationMin)
		assert.Equal(t, 50*60, e.State().TimeLeftSeconds)
	})

	t.Run("other mode does not touch countdown", func(t *testing.T) {
		e := NewEngine(domain.DefaultTimerState())

		e.UpdateDurations(DurationUpdate{ShortBreakMin: intPtr(10), LongBreakMin: intPtr(30)})

		s := e.State()
		assert.Equal(t, 10, s.ShortBreakDurationMin)
		assert.Equal(t, 30, s.LongBreakDurationMin)
		assert.Equal(t, 25*60, s.TimeLeftSeconds)
	})

	t.Run("paused overtime restarts with new focus length", func(t *testing.T) {
		state := domain.DefaultTimerState()
		state.TimeLeftSeconds = 1
		e := runningEngine(t, state)
		e.Tick(start.Add(time.Second), Options{})
		e.Tick(start.Add(2*time.Second), Options{})
		require.True(t, e.State().IsOvertime)
		require.True(t, e.Pause(start.Add(2*time.Second)))

		e.UpdateDurations(DurationUpdate{FocusMin: intPtr(40)})

		s := e.State()
		assert.False(t, s.IsOvertime)
		assert.Equal(t, 40*60, s.TimeLeftSeconds)

		e.Start(start.Add(time.Minute))
		require.NotNil(t, e.State().ScheduledEnd)
		assert.Equal(t, start.Add(time.Minute+40*time.Minute), *e.State().ScheduledEnd)
	})

	t.Run("running overtime is untouched", func(t *testing.T) {
		state := domain.DefaultTimerState()
		state.TimeLeftSeconds = 1
		e := runningEngine(t, state)
		e.Tick(start.Add(time.Second), Options{})

		e.UpdateDurations(DurationUpdate{FocusMin: intPtr(40)})

		s := e.State()
		assert.True(t, s.IsOvertime)
		assert.Equal(t, 0, s.TimeLeftSeconds)
	})

	t.Run("running timer keeps countdown", func(t *testing.T) {
		e := runningEngine(t, domain.DefaultTimerState())

		e.UpdateDurations(DurationUpdate{FocusMin: intPtr(45)})

		assert.Equal(t, 45, e.State().FocusDurationMin)
		assert.Equal(t, 25*60, e.State().TimeLeftSeconds)
	})
}

func TestSyncOnResume(t *testing.T) {
	e := runningEngine(t, domain.DefaultTimerState())
	now := start.Add(7*time.Minute + 30*time.Second)

	e.SyncOnResume(now)
	first := e.State().TimeLeftSeconds
	e.SyncOnResume(now)
	second := e.State().TimeLeftSeconds

	assert.Equal(t, 17*60+30, first)
	assert.Equal(t, first, second)
}

func TestSyncOnResume_PastEndClampsToZero(t *testing.T) {
	e := runningEngine(t, domain.DefaultTimerState())

	e.SyncOnResume(start.Add(3 * time.Hour))
	assert.Equal(t, 0, e.State().TimeLeftSeconds)

	res := e.Tick(start.Add(3*time.Hour+time.Second), Options{})
	assert.True(t, res.SessionCompleted, "next tick completes the session")
}

func TestReset(t *testing.T) {
	state := domain.DefaultTimerState()
	state.Mode = domain.ModeLongBreak
	state.TimeLeftSeconds = 33
	state.CompletedSessions = 3
	e := runningEngine(t, state)

	e.Reset()

	s := e.State()
	assert.False(t, s.IsRunning)
	assert.Equal(t, domain.ModeFocus, s.Mode)
	assert.Equal(t, 25*60, s.TimeLeftSeconds)
	assert.Nil(t, s.ScheduledEnd)
	assert.Equal(t, 3, s.CompletedSessions)
}

func TestResetAccumulated(t *testing.T) {
	e := runningEngine(t, domain.DefaultTimerState())
	e.Tick(start.Add(time.Minute), Options{})
	require.Positive(t, e.State().AccumulatedFocusSeconds)

	e.ResetAccumulated()

	assert.Zero(t, e.State().AccumulatedFocusSeconds)
}

func TestAccumulatedNeverDecreases(t *testing.T) {
	e := runningEngine(t, domain.DefaultTimerState())
	prev := 0
	for i := 1; i <= 120; i++ {
		e.Tick(start.Add(time.Duration(i)*time.Second), Options{AutoStartBreaks: true})
		cur := e.State().AccumulatedFocusSeconds
		assert.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
}
