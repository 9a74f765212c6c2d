package game

import (
	"context"
	"fmt"
	"time"

	"github.com/GEON1999/PomoFarm/internal/domain"
	"github.com/GEON1999/PomoFarm/internal/logger"
	"github.com/GEON1999/PomoFarm/internal/timer"
)

// StartTimer starts or resumes the countdown
func (g *Game) StartTimer(ctx context.Context) bool {
	var ok bool
	_ = g.apply(ctx, CmdTimerStart, func(st *step) error {
		ok = g.timer.Start(st.now)
		st.changed = ok
		return nil
	})
	return ok
}

// PauseTimer pauses the countdown
func (g *Game) PauseTimer(ctx context.Context) bool {
	var ok bool
	_ = g.apply(ctx, CmdTimerPause, func(st *step) error {
		ok = g.timer.Pause(st.now)
		st.changed = ok
		return nil
	})
	return ok
}

// ResetTimer stops the timer and starts a fresh focus session
func (g *Game) ResetTimer(ctx context.Context) {
	_ = g.apply(ctx, CmdTimerReset, func(st *step) error {
		from := g.timer.State().Mode
		g.timer.Reset()
		if from != domain.ModeFocus {
			st.emit(domain.EventTypeModeChanged, domain.ModeChangedPayload{From: from, To: domain.ModeFocus, Timestamp: st.now.Unix()})
		}
		st.changed = true
		return nil
	})
}

// SetTimerMode force-switches the timer mode
func (g *Game) SetTimerMode(ctx context.Context, mode domain.TimerMode) error {
	return g.apply(ctx, CmdTimerSetMode, func(st *step) error {
		if !mode.Valid() {
			return fmt.Errorf(ErrMsgUnknownModeFmt, domain.ErrInvalidInput, mode)
		}
		from := g.timer.State().Mode
		g.timer.SetMode(mode)
		st.emit(domain.EventTypeModeChanged, domain.ModeChangedPayload{From: from, To: mode, Timestamp: st.now.Unix()})
		st.changed = true
		return nil
	})
}

// UpdateDurations changes the configured durations. Every provided value must lie
// within the configured bounds or nothing is changed.
func (g *Game) UpdateDurations(ctx context.Context, u timer.DurationUpdate) error {
	return g.apply(ctx, CmdTimerUpdateDurations, func(st *step) error {
		for _, d := range []struct {
			name  string
			value *int
		}{
			{"focus", u.FocusMin},
			{"short break", u.ShortBreakMin},
			{"long break", u.LongBreakMin},
		} {
			if d.value == nil {
				continue
			}
			if *d.value < domain.MinDurationMinutes || *d.value > domain.MaxDurationMinutes {
				return fmt.Errorf(ErrMsgDurationOutOfRangeFmt, domain.ErrInvalidInput, d.name, *d.value, domain.MinDurationMinutes, domain.MaxDurationMinutes)
			}
		}
		g.timer.UpdateDurations(u)
		st.changed = true
		return nil
	})
}

// ResetAccumulated zeroes the lifetime focus counter
func (g *Game) ResetAccumulated(ctx context.Context) {
	_ = g.apply(ctx, CmdTimerResetAccumulated, func(st *step) error {
		g.timer.ResetAccumulated()
		st.changed = true
		return nil
	})
}

// SyncOnResume recomputes the countdown and the farm from wall-clock time after
// the process was suspended or restarted.
func (g *Game) SyncOnResume(ctx context.Context) {
	_ = g.apply(ctx, CmdTimerSyncOnResume, func(st *step) error {
		g.timer.SyncOnResume(st.now)
		g.recomputeFarm(st)
		st.changed = true
		return nil
	})
}

// Tick advances the timer and recomputes the farm. It never fails; a save is only
// requested when something observable happened (a session ended, a mode switched,
// a crop or product became ready).
func (g *Game) Tick(ctx context.Context) {
	_ = g.apply(ctx, CmdTick, func(st *step) error {
		settings := g.user.Settings
		result := g.timer.Tick(st.now, timer.Options{
			AutoStartBreaks:    settings.AutoStartBreaks,
			AccumulateOvertime: settings.AccumulateOvertime,
		})

		if result.SessionCompleted {
			g.awardSession(ctx, st)
			st.changed = true
		}
		if result.ModeChanged {
			st.emit(domain.EventTypeModeChanged, domain.ModeChangedPayload{
				From:      result.PreviousMode,
				To:        g.timer.State().Mode,
				Timestamp: st.now.Unix(),
			})
			st.changed = true
		}
		if g.recomputeFarm(st) {
			st.changed = true
		}
		return nil
	})
}

// awardSession credits the focus-session reward, with a streak bonus when the
// previous session ended within the streak window.
func (g *Game) awardSession(ctx context.Context, st *step) {
	l := &g.user.Ledger
	diamonds := domain.SessionDiamondReward
	xp := domain.SessionXPReward
	streak := l.LastSessionCompletedAt != nil &&
		st.now.Sub(*l.LastSessionCompletedAt) < domain.StreakWindowHours*time.Hour
	if streak {
		diamonds += domain.StreakDiamondBonus
		xp += domain.StreakXPBonus
	}

	ledger := g.ledger()
	_ = ledger.Credit(domain.CurrencyDiamond, diamonds)
	oldLevel, newLevel := ledger.AwardExperience(xp)
	completedAt := st.now
	l.LastSessionCompletedAt = &completedAt

	completed := g.timer.State().CompletedSessions
	logger.FromContext(ctx).Info(LogMsgSessionCompleted, "sessions", completed, "diamonds", diamonds, "xp", xp, "streak", streak)
	st.emit(domain.EventTypeSessionCompleted, domain.SessionCompletedPayload{
		CompletedSessions: completed,
		DiamondsAwarded:   diamonds,
		XPAwarded:         xp,
		StreakBonus:       streak,
		Timestamp:         st.now.Unix(),
	})
	g.emitLevelUp(ctx, st, oldLevel, newLevel)
}

func (g *Game) emitLevelUp(ctx context.Context, st *step, oldLevel, newLevel int) {
	if newLevel <= oldLevel {
		return
	}
	logger.FromContext(ctx).Info(LogMsgLevelUp, "old_level", oldLevel, "new_level", newLevel)
	st.emit(domain.EventTypeLevelUp, domain.LevelUpPayload{OldLevel: oldLevel, NewLevel: newLevel})
}
