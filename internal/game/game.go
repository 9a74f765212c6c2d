// Package game is the single entry point for player commands and the periodic tick.
//
// It owns the timer, farm, ledger and shop aggregates. Every command and every
// tick runs as one step under a mutex, so a composite operation such as a sale
// or a gacha pull is never observed half-applied. Events are published and saves
// requested after the step completes; neither is waited on.
package game

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/GEON1999/PomoFarm/internal/clock"
	"github.com/GEON1999/PomoFarm/internal/domain"
	"github.com/GEON1999/PomoFarm/internal/economy"
	"github.com/GEON1999/PomoFarm/internal/event"
	"github.com/GEON1999/PomoFarm/internal/farm"
	"github.com/GEON1999/PomoFarm/internal/gacha"
	"github.com/GEON1999/PomoFarm/internal/logger"
	"github.com/GEON1999/PomoFarm/internal/timer"
)

// Catalog is the reference data used by every engine
type Catalog interface {
	farm.Catalog
	economy.Catalog
	gacha.Catalog
	ShopItems() []domain.ShopItem
}

// Publisher receives the events produced by commands
type Publisher interface {
	Publish(ctx context.Context, e event.Event) error
}

// SaveRequester persists snapshots without blocking the caller
type SaveRequester interface {
	RequestSave(ctx context.Context, revision uint64, snapshot domain.Snapshot)
}

// Deps are the collaborators of a Game. Nil fields get working defaults.
type Deps struct {
	Clock     clock.Clock
	Rand      gacha.Source
	Publisher Publisher
	Saver     SaveRequester
}

// Game serializes all access to the game state
type Game struct {
	mu sync.Mutex

	clock     clock.Clock
	rng       gacha.Source
	publisher Publisher
	saver     SaveRequester
	catalog   Catalog

	economy *economy.Service
	gacha   *gacha.Resolver

	timer    *timer.Engine
	farm     *farm.Engine
	user     domain.UserState
	shop     domain.ShopState
	lastSave time.Time
	revision uint64
}

// New creates a game in its default state. Call Restore to load a saved game.
func New(catalog Catalog, deps Deps) *Game {
	if deps.Clock == nil {
		deps.Clock = clock.NewRealClock()
	}
	if deps.Rand == nil {
		deps.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if deps.Publisher == nil {
		deps.Publisher = nopPublisher{}
	}
	if deps.Saver == nil {
		deps.Saver = nopSaver{}
	}

	defaults := domain.DefaultSnapshot()
	return &Game{
		clock:     deps.Clock,
		rng:       deps.Rand,
		publisher: deps.Publisher,
		saver:     deps.Saver,
		catalog:   catalog,
		economy:   economy.NewService(catalog),
		gacha:     gacha.NewResolver(catalog, deps.Rand),
		timer:     timer.NewEngine(defaults.Timer),
		farm:      farm.NewEngine(catalog, defaults.Farm),
		user:      defaults.User,
		shop:      defaults.Shop,
	}
}

// Restore replaces the whole state with snapshot. A nil snapshot starts a new game.
// No save is requested: the state came from storage.
func (g *Game) Restore(ctx context.Context, snapshot *domain.Snapshot) {
	s := domain.DefaultSnapshot()
	if snapshot != nil {
		s = snapshot.Clone()
	}
	s.Normalize()

	g.mu.Lock()
	g.timer = timer.NewEngine(s.Timer)
	g.farm.Restore(s.Farm)
	g.user = s.User
	g.shop = s.Shop
	g.lastSave = s.LastSave
	g.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgGameRestored, "fresh", snapshot == nil, "last_save", s.LastSave)
	g.publish(ctx, []event.Event{event.New(domain.EventTypeStateChanged, domain.StateChangedPayload{Command: CmdRestore})})
}

// Snapshot returns a deep copy of the current state
func (g *Game) Snapshot() domain.Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshotLocked(g.lastSave)
}

// Catalog returns the reference data the game runs on
func (g *Game) Catalog() Catalog {
	return g.catalog
}

// Autosave requests a save of the current state
func (g *Game) Autosave(ctx context.Context) {
	g.mu.Lock()
	now := g.clock.Now()
	g.revision++
	rev := g.revision
	g.lastSave = now
	snap := g.snapshotLocked(now)
	g.mu.Unlock()

	g.saver.RequestSave(ctx, rev, snap)
}

func (g *Game) snapshotLocked(lastSave time.Time) domain.Snapshot {
	return domain.Snapshot{
		User:     g.user.Clone(),
		Farm:     g.farm.State(),
		Timer:    g.timer.State(),
		Shop:     g.shop.Clone(),
		LastSave: lastSave,
	}
}

// step collects the side effects of one command
type step struct {
	now     time.Time
	changed bool
	events  []event.Event
}

func (s *step) emit(eventType string, payload interface{}) {
	s.events = append(s.events, event.New(eventType, payload))
}

// apply runs fn as one serialized step. When fn reports a change, the state
// revision advances, a save is requested and a state-changed event follows
// the events fn emitted.
func (g *Game) apply(ctx context.Context, command string, fn func(st *step) error) error {
	g.mu.Lock()
	st := &step{now: g.clock.Now()}
	err := fn(st)

	var (
		rev  uint64
		snap domain.Snapshot
	)
	if st.changed {
		g.revision++
		rev = g.revision
		g.lastSave = st.now
		snap = g.snapshotLocked(st.now)
	}
	g.mu.Unlock()

	log := logger.FromContext(ctx)
	if err != nil {
		log.Info(LogMsgCommandFailed, "command", command, "error", err)
	} else if !st.changed && command != CmdTick {
		log.Debug(LogMsgCommandDeclined, "command", command)
	}

	if st.changed {
		st.emit(domain.EventTypeStateChanged, domain.StateChangedPayload{Command: command})
		g.saver.RequestSave(ctx, rev, snap)
	}
	for i := range st.events {
		st.events[i] = st.events[i].WithCommand(command)
	}
	g.publish(ctx, st.events)
	return err
}

func (g *Game) publish(ctx context.Context, events []event.Event) {
	for _, e := range events {
		if err := g.publisher.Publish(ctx, e); err != nil {
			logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", e.Type, "error", err)
		}
	}
}

func (g *Game) ledger() *economy.Ledger {
	return economy.NewLedger(&g.user.Ledger)
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, event.Event) error { return nil }

type nopSaver struct{}

func (nopSaver) RequestSave(context.Context, uint64, domain.Snapshot) {}
