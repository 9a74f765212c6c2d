package game

import (
	"context"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GEON1999/PomoFarm/internal/catalog"
	"github.com/GEON1999/PomoFarm/internal/clock"
	"github.com/GEON1999/PomoFarm/internal/domain"
	"github.com/GEON1999/PomoFarm/internal/event"
	"github.com/GEON1999/PomoFarm/internal/gacha"
	"github.com/GEON1999/PomoFarm/internal/timer"
	"github.com/GEON1999/PomoFarm/internal/utils"
)

var start = time.Date(2026, 4, 6, 9, 0, 0, 0, time.UTC)

type recordingPublisher struct {
	mu     sync.Mutex
	events []event.Event
}

func (p *recordingPublisher) Publish(ctx context.Context, e event.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = string(e.Type)
	}
	return out
}

func (p *recordingPublisher) reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = nil
}

type recordingSaver struct {
	mu        sync.Mutex
	revisions []uint64
	snapshots []domain.Snapshot
}

func (s *recordingSaver) RequestSave(ctx context.Context, revision uint64, snapshot domain.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revisions = append(s.revisions, revision)
	s.snapshots = append(s.snapshots, snapshot)
}

func (s *recordingSaver) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.revisions)
}

type harness struct {
	game  *Game
	clock *clock.SimulatedClock
	pub   *recordingPublisher
	saver *recordingSaver
	ctx   context.Context
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	h := &harness{
		clock: clock.NewSimulatedClock(start),
		pub:   &recordingPublisher{},
		saver: &recordingSaver{},
		ctx:   context.Background(),
	}
	h.game = New(cat, Deps{
		Clock:     h.clock,
		Rand:      rand.New(rand.NewPCG(3, 5)),
		Publisher: h.pub,
		Saver:     h.saver,
	})
	return h
}

func (h *harness) tickFor(d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += time.Second {
		h.clock.Advance(time.Second)
		h.game.Tick(h.ctx)
	}
}

func TestNew_DefaultState(t *testing.T) {
	h := newHarness(t)

	s := h.game.Snapshot()

	assert.Len(t, s.Farm.Plots, domain.PlotCount)
	assert.Equal(t, domain.StartingDiamonds, s.User.Ledger.Diamonds)
	assert.Equal(t, domain.StartingGold, s.User.Ledger.Gold)
	assert.Equal(t, 1, s.User.Ledger.Level)
	assert.Equal(t, 25*60, s.Timer.TimeLeftSeconds)
	assert.Equal(t, 5, s.Timer.ShortBreakDurationMin)
	assert.Equal(t, 15, s.Timer.LongBreakDurationMin)
}

func TestFocusSession_RewardsAndOvertime(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.game.UpdateDurations(h.ctx, timer.DurationUpdate{FocusMin: ptr(1)}))
	require.True(t, h.game.StartTimer(h.ctx))
	h.pub.reset()

	h.tickFor(time.Minute)

	s := h.game.Snapshot()
	assert.True(t, s.Timer.IsOvertime)
	assert.True(t, s.Timer.IsRunning)
	assert.Nil(t, s.Timer.ScheduledEnd)
	assert.Equal(t, 1, s.Timer.CompletedSessions)
	assert.Equal(t, 60, s.Timer.AccumulatedFocusSeconds)
	assert.Equal(t, domain.StartingDiamonds+domain.SessionDiamondReward, s.User.Ledger.Diamonds)
	assert.Equal(t, domain.SessionXPReward, s.User.Ledger.Experience)
	require.NotNil(t, s.User.Ledger.LastSessionCompletedAt)
	assert.Equal(t, start.Add(time.Minute), *s.User.Ledger.LastSessionCompletedAt)
	assert.Contains(t, h.pub.types(), domain.EventTypeSessionCompleted)

	h.tickFor(3 * time.Second)
	s = h.game.Snapshot()
	assert.Equal(t, 3, s.Timer.TimeLeftSeconds, "overtime counts upward")
	assert.Equal(t, 60, s.Timer.AccumulatedFocusSeconds, "overtime is not accumulated by default")
}

func TestFocusSession_BunchedTicksDoNotCompleteEarly(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.game.UpdateDurations(h.ctx, timer.DurationUpdate{FocusMin: ptr(1)}))
	require.True(t, h.game.StartTimer(h.ctx))

	h.clock.Advance(59 * time.Second)
	for i := 0; i < 5; i++ {
		h.game.Tick(h.ctx)
	}

	s := h.game.Snapshot()
	assert.Equal(t, 0, s.Timer.CompletedSessions)
	assert.Equal(t, 1, s.Timer.TimeLeftSeconds)
	assert.Equal(t, domain.StartingDiamonds, s.User.Ledger.Diamonds)

	h.tickFor(time.Second)
	assert.Equal(t, 1, h.game.Snapshot().Timer.CompletedSessions)
}

func TestFocusSession_StreakBonus(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.game.UpdateDurations(h.ctx, timer.DurationUpdate{FocusMin: ptr(1)}))

	h.game.StartTimer(h.ctx)
	h.tickFor(time.Minute)
	h.game.ResetTimer(h.ctx)
	h.clock.Advance(47 * time.Hour)
	h.game.StartTimer(h.ctx)
	h.tickFor(time.Minute)

	ledger := h.game.Snapshot().User.Ledger
	wantDiamonds := domain.StartingDiamonds + 2*domain.SessionDiamondReward + domain.StreakDiamondBonus
	assert.Equal(t, wantDiamonds, ledger.Diamonds)
	assert.Equal(t, 2*domain.SessionXPReward+domain.StreakXPBonus, ledger.Experience)
}

func TestFocusSession_AutoStartBreaks(t *testing.T) {
	h := newHarness(t)
	enabled := true
	h.game.UpdateSettings(h.ctx, domain.SettingsUpdate{AutoStartBreaks: &enabled})
	require.NoError(t, h.game.UpdateDurations(h.ctx, timer.DurationUpdate{FocusMin: ptr(1), ShortBreakMin: ptr(1)}))
	h.game.StartTimer(h.ctx)
	h.pub.reset()

	h.tickFor(time.Minute)

	s := h.game.Snapshot()
	assert.Equal(t, domain.ModeShortBreak, s.Timer.Mode)
	assert.False(t, s.Timer.IsOvertime)
	assert.Equal(t, 60, s.Timer.TimeLeftSeconds)
	assert.Contains(t, h.pub.types(), domain.EventTypeModeChanged)

	h.tickFor(time.Minute)
	assert.Equal(t, domain.ModeFocus, h.game.Snapshot().Timer.Mode)
}

func TestTick_IdleDoesNotRequestSaves(t *testing.T) {
	h := newHarness(t)

	h.tickFor(10 * time.Second)

	assert.Equal(t, 0, h.saver.count())
	assert.Empty(t, h.pub.types())
}

func TestUpdateDurations_RejectsOutOfRange(t *testing.T) {
	h := newHarness(t)

	err := h.game.UpdateDurations(h.ctx, timer.DurationUpdate{FocusMin: ptr(30), LongBreakMin: ptr(121)})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 25, h.game.Snapshot().Timer.FocusDurationMin, "nothing applied on rejection")
	assert.Equal(t, 0, h.saver.count())
}

func TestSetTimerMode(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.game.SetTimerMode(h.ctx, domain.ModeLongBreak))
	assert.Equal(t, 15*60, h.game.Snapshot().Timer.TimeLeftSeconds)

	assert.ErrorIs(t, h.game.SetTimerMode(h.ctx, "nap"), domain.ErrInvalidInput)
}

func TestSyncOnResume_AfterSuspension(t *testing.T) {
	h := newHarness(t)
	h.game.StartTimer(h.ctx)

	h.clock.Advance(10*time.Minute + 400*time.Millisecond)
	h.game.SyncOnResume(h.ctx)
	first := h.game.Snapshot().Timer.TimeLeftSeconds
	h.game.SyncOnResume(h.ctx)

	assert.Equal(t, 15*60, first)
	assert.Equal(t, first, h.game.Snapshot().Timer.TimeLeftSeconds)
}

func TestFarmLoop(t *testing.T) {
	h := newHarness(t)

	_, err := h.game.Buy(h.ctx, "tomato_seed", 2)
	require.NoError(t, err)
	require.True(t, h.game.Plant(h.ctx, "plot_0", "tomato_seed"))
	assert.False(t, h.game.Plant(h.ctx, "plot_0", "tomato_seed"), "occupied plot")

	h.clock.Advance(49 * time.Minute)
	assert.False(t, h.game.Harvest(h.ctx, "plot_0"))

	h.pub.reset()
	h.clock.Advance(time.Minute)
	require.True(t, h.game.Harvest(h.ctx, "plot_0"))
	assert.Contains(t, h.pub.types(), domain.EventTypeCropReady)
	assert.Contains(t, h.pub.types(), domain.EventTypeHarvested)

	result, err := h.game.Sell(h.ctx, "tomato", 1)
	require.NoError(t, err)
	assert.Equal(t, 25, result.TotalValue)

	s := h.game.Snapshot()
	assert.Equal(t, domain.StartingGold-40+25, s.User.Ledger.Gold)
	assert.Equal(t, 1, utils.QuantityOf(&s.Farm.Inventory, "tomato_seed"))
	assert.Equal(t, 0, utils.QuantityOf(&s.Farm.Inventory, "tomato"))
}

func TestAnimalLoop(t *testing.T) {
	h := newHarness(t)

	bought, err := h.game.Buy(h.ctx, "chicken", 1)
	require.NoError(t, err)
	require.Len(t, bought.Animals, 1)
	id := bought.Animals[0].ID

	h.clock.Advance(2 * time.Hour)
	h.game.UpdateFarmState(h.ctx)
	assert.False(t, h.game.Feed(h.ctx, id), "product must be collected first")
	require.True(t, h.game.CollectProduct(h.ctx, id))

	s := h.game.Snapshot()
	assert.Equal(t, 1, utils.QuantityOf(&s.Farm.Inventory, "egg"))
	assert.Equal(t, start.Add(2*time.Hour), s.Farm.Animals[0].LastFedAt)
}

func TestSell_FailureIsReportedAndChangesNothing(t *testing.T) {
	h := newHarness(t)
	before := h.game.Snapshot()

	_, err := h.game.Sell(h.ctx, "egg", 1)

	assert.ErrorIs(t, err, domain.ErrInsufficientQuantity)
	assert.Equal(t, before, h.game.Snapshot())
	assert.Equal(t, 0, h.saver.count())
}

func TestPull(t *testing.T) {
	h := newHarness(t)

	result, err := h.game.Pull(h.ctx, gacha.Request{Pool: domain.PoolAnimal, PullType: domain.PullMulti, Currency: domain.CurrencyDiamond})

	require.NoError(t, err)
	require.Len(t, result.Items, 10)
	s := h.game.Snapshot()
	assert.Equal(t, domain.StartingDiamonds-900, s.User.Ledger.Diamonds)
	assert.Len(t, s.Farm.Animals, 10)
	assert.Contains(t, h.pub.types(), domain.EventTypeGachaPulled)
}

func TestPull_InsufficientFunds(t *testing.T) {
	h := newHarness(t)
	before := h.game.Snapshot()

	_, err := h.game.Pull(h.ctx, gacha.Request{Pool: domain.PoolPlant, PullType: domain.PullMulti, Currency: domain.CurrencyGold})

	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Equal(t, before, h.game.Snapshot())
	assert.NotContains(t, h.pub.types(), domain.EventTypeGachaPulled)
}

func TestRefreshShop(t *testing.T) {
	h := newHarness(t)
	h.clock.Advance(time.Hour)

	shop := h.game.RefreshShop(h.ctx)

	require.Len(t, shop.FeaturedItemIDs, domain.FeaturedItemCount)
	assert.NotEqual(t, shop.FeaturedItemIDs[0], shop.FeaturedItemIDs[1])
	assert.Equal(t, start.Add(time.Hour), shop.LastRefresh)
	for _, id := range shop.FeaturedItemIDs {
		_, ok := h.game.Catalog().ShopItem(id)
		assert.True(t, ok, id)
	}
}

func TestPickFeatured_SmallCatalog(t *testing.T) {
	items := []domain.ShopItem{{ID: "only"}}
	assert.Equal(t, []string{"only"}, pickFeatured(items, 2, rand.New(rand.NewPCG(1, 1))))
	assert.Empty(t, pickFeatured(nil, 2, rand.New(rand.NewPCG(1, 1))))
}

func TestResetAll_KeepsSettings(t *testing.T) {
	h := newHarness(t)
	theme := "dark"
	h.game.UpdateSettings(h.ctx, domain.SettingsUpdate{Theme: &theme})
	_, err := h.game.Buy(h.ctx, "cow", 1)
	require.NoError(t, err)
	h.game.StartTimer(h.ctx)

	h.game.ResetAll(h.ctx)

	s := h.game.Snapshot()
	assert.Equal(t, domain.StartingGold, s.User.Ledger.Gold)
	assert.Empty(t, s.Farm.Animals)
	assert.False(t, s.Timer.IsRunning)
	assert.Equal(t, "dark", s.User.Settings.Theme)
}

func TestRestore(t *testing.T) {
	h := newHarness(t)
	saved := domain.DefaultSnapshot()
	saved.User.Ledger.Gold = 7
	saved.Farm.Plots = saved.Farm.Plots[:3]

	h.game.Restore(h.ctx, &saved)

	s := h.game.Snapshot()
	assert.Equal(t, 7, s.User.Ledger.Gold)
	assert.Len(t, s.Farm.Plots, domain.PlotCount, "restored state is normalized")
	assert.Len(t, saved.Farm.Plots, 3, "caller's snapshot is not modified")

	h.game.Restore(h.ctx, nil)
	assert.Equal(t, domain.StartingGold, h.game.Snapshot().User.Ledger.Gold)
}

func TestSaves_AreRequestedWithIncreasingRevisions(t *testing.T) {
	h := newHarness(t)

	h.game.StartTimer(h.ctx)
	h.game.PauseTimer(h.ctx)
	h.game.PauseTimer(h.ctx)
	h.game.Autosave(h.ctx)

	require.Equal(t, []uint64{1, 2, 3}, h.saver.revisions)
	assert.False(t, h.saver.snapshots[2].Timer.IsRunning)
}

func TestEvents_CarryCommandMetadata(t *testing.T) {
	h := newHarness(t)

	h.game.StartTimer(h.ctx)

	require.Len(t, h.pub.events, 1)
	e := h.pub.events[0]
	assert.Equal(t, event.Type(domain.EventTypeStateChanged), e.Type)
	assert.Equal(t, CmdTimerStart, e.GetMetadataValue(event.MetadataKeyCommand))
}

func TestConcurrentCommands(t *testing.T) {
	h := newHarness(t)
	_, err := h.game.Buy(h.ctx, "carrot_seed", 50)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				h.game.Tick(h.ctx)
				_, _ = h.game.Sell(h.ctx, "carrot_seed", 1)
				_ = h.game.Snapshot()
			}
		}()
	}
	wg.Wait()

	s := h.game.Snapshot()
	assert.Equal(t, 0, utils.QuantityOf(&s.Farm.Inventory, "carrot_seed"))
	assert.Equal(t, domain.StartingGold-500+50*5, s.User.Ledger.Gold)
}

func ptr(v int) *int { return &v }
