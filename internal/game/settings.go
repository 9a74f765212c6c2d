package game

import (
	"context"

	"github.com/GEON1999/PomoFarm/internal/domain"
	"github.com/GEON1999/PomoFarm/internal/logger"
	"github.com/GEON1999/PomoFarm/internal/timer"
)

// UpdateSettings merges a partial settings change and returns the result
func (g *Game) UpdateSettings(ctx context.Context, u domain.SettingsUpdate) domain.Settings {
	var settings domain.Settings
	_ = g.apply(ctx, CmdUpdateSettings, func(st *step) error {
		u.Apply(&g.user.Settings)
		settings = g.user.Settings
		st.changed = true
		return nil
	})
	return settings
}

// ResetAll returns every aggregate to its default. Settings survive the reset.
func (g *Game) ResetAll(ctx context.Context) {
	_ = g.apply(ctx, CmdResetAll, func(st *step) error {
		defaults := domain.DefaultSnapshot()
		settings := g.user.Settings
		g.timer = timer.NewEngine(defaults.Timer)
		g.farm.Restore(defaults.Farm)
		g.user = defaults.User
		g.user.Settings = settings
		g.shop = defaults.Shop
		st.changed = true
		return nil
	})
	logger.FromContext(ctx).Info(LogMsgGameReset)
}
