package game

import (
	"context"

	"github.com/GEON1999/PomoFarm/internal/domain"
)

// Plant puts a seed from the inventory into a free plot
func (g *Game) Plant(ctx context.Context, plotID, seedID string) bool {
	var ok bool
	_ = g.apply(ctx, CmdFarmPlant, func(st *step) error {
		ok = g.farm.Plant(plotID, seedID, st.now)
		st.changed = ok
		return nil
	})
	return ok
}

// Harvest collects a fully grown crop
func (g *Game) Harvest(ctx context.Context, plotID string) bool {
	var ok bool
	_ = g.apply(ctx, CmdFarmHarvest, func(st *step) error {
		st.changed = g.recomputeFarm(st)
		var cropID string
		cropID, ok = g.farm.Harvest(plotID)
		if ok {
			st.emit(domain.EventTypeHarvested, domain.HarvestedPayload{SourceID: plotID, ItemID: cropID, Quantity: 1})
			st.changed = true
		}
		return nil
	})
	return ok
}

// CollectProduct collects an animal's pending product
func (g *Game) CollectProduct(ctx context.Context, animalID string) bool {
	var ok bool
	_ = g.apply(ctx, CmdFarmCollect, func(st *step) error {
		st.changed = g.recomputeFarm(st)
		var productID string
		productID, ok = g.farm.CollectProduct(animalID, st.now)
		if ok {
			st.emit(domain.EventTypeHarvested, domain.HarvestedPayload{SourceID: animalID, ItemID: productID, Quantity: 1})
			st.changed = true
		}
		return nil
	})
	return ok
}

// Feed restarts an animal's production clock
func (g *Game) Feed(ctx context.Context, animalID string) bool {
	var ok bool
	_ = g.apply(ctx, CmdFarmFeed, func(st *step) error {
		ok = g.farm.Feed(animalID, st.now)
		st.changed = ok
		return nil
	})
	return ok
}

// UpdateFarmState recomputes growth and production outside the regular tick
func (g *Game) UpdateFarmState(ctx context.Context) {
	_ = g.apply(ctx, CmdFarmUpdate, func(st *step) error {
		st.changed = g.recomputeFarm(st)
		return nil
	})
}

// recomputeFarm brings the farm up to st.now and emits readiness events.
// It reports whether anything became ready.
func (g *Game) recomputeFarm(st *step) bool {
	ready := g.farm.RecomputeAll(st.now)
	for _, c := range ready.Crops {
		st.emit(domain.EventTypeCropReady, c)
	}
	for _, p := range ready.Products {
		st.emit(domain.EventTypeProductReady, p)
	}
	return !ready.Empty()
}
