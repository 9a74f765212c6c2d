// Package farm simulates crop growth and animal production as a function of
// wall-clock time. Progress is always recomputed from the stored timestamps, so a
// farm left alone for a day catches up on the next recompute.
//
// Commands that cannot apply (occupied plot, missing seed, unknown id, product
// not ready) are declined by returning false and leave the state untouched.
package farm

import (
	"time"

	"github.com/google/uuid"

	"github.com/GEON1999/PomoFarm/internal/clock"
	"github.com/GEON1999/PomoFarm/internal/domain"
	"github.com/GEON1999/PomoFarm/internal/utils"
)

// Catalog is the reference data the farm needs
type Catalog interface {
	Crop(id string) (domain.CropDefinition, bool)
	CropBySeed(seedID string) (domain.CropDefinition, bool)
	Animal(animalType string) (domain.AnimalDefinition, bool)
}

// Readiness lists what became ready during a recompute
type Readiness struct {
	Crops    []domain.CropReadyPayload
	Products []domain.ProductReadyPayload
}

// Empty reports whether nothing became ready
func (r Readiness) Empty() bool {
	return len(r.Crops) == 0 && len(r.Products) == 0
}

// Engine owns the farm aggregate
type Engine struct {
	catalog Catalog
	state   domain.FarmState
	newID   func() string
}

// NewEngine wraps a farm state, normally loaded from storage
func NewEngine(catalog Catalog, state domain.FarmState) *Engine {
	state.Normalize()
	return &Engine{
		catalog: catalog,
		state:   state,
		newID:   newAnimalID,
	}
}

func newAnimalID() string {
	return domain.AnimalIDPrefix + uuid.NewString()
}

// State returns a copy of the farm state
func (e *Engine) State() domain.FarmState {
	return e.state.Clone()
}

// Inventory exposes the live inventory to composite operations (sell, buy, gacha)
// that must update it in the same step as the ledger.
func (e *Engine) Inventory() *domain.Inventory {
	return &e.state.Inventory
}

// RecomputeAll brings every plot and animal up to date with now and reports
// which ones crossed into the ready state.
func (e *Engine) RecomputeAll(now time.Time) Readiness {
	var ready Readiness

	for i := range e.state.Plots {
		p := &e.state.Plots[i]
		if !p.Occupied() || p.PlantedAt == nil || p.GrowthProgress >= 100 {
			continue
		}
		crop, ok := e.catalog.Crop(p.CropID)
		if !ok {
			continue
		}
		progress := GrowthProgress(*p.PlantedAt, now, crop.GrowthSeconds)
		if progress > p.GrowthProgress {
			p.GrowthProgress = progress
		}
		if p.GrowthProgress >= 100 {
			ready.Crops = append(ready.Crops, domain.CropReadyPayload{PlotID: p.ID, CropID: p.CropID})
		}
	}

	for i := range e.state.Animals {
		a := &e.state.Animals[i]
		if a.HasProduct() {
			continue
		}
		def, ok := e.catalog.Animal(a.Type)
		if !ok {
			continue
		}
		if clock.ElapsedSeconds(a.LastFedAt, now) >= def.ProductionSeconds {
			readyAt := now
			a.ProductReadyAt = &readyAt
			ready.Products = append(ready.Products, domain.ProductReadyPayload{AnimalID: a.ID, AnimalType: a.Type})
		}
	}

	return ready
}

// GrowthProgress returns the growth percentage of a crop planted at plantedAt,
// proportional to elapsed time and clamped to [0, 100].
func GrowthProgress(plantedAt, now time.Time, growthSeconds int) float64 {
	if growthSeconds <= 0 {
		return 100
	}
	total := time.Duration(growthSeconds) * time.Second
	progress := float64(clock.Elapsed(plantedAt, now)) / float64(total) * 100
	return utils.ClampFloat(progress, 0, 100)
}

// Plant puts one seed from the inventory into a free plot
func (e *Engine) Plant(plotID, seedID string, now time.Time) bool {
	p := e.plot(plotID)
	if p == nil || p.Occupied() {
		return false
	}
	crop, ok := e.catalog.CropBySeed(seedID)
	if !ok {
		return false
	}
	if !utils.RemoveItem(&e.state.Inventory, seedID, 1) {
		return false
	}
	plantedAt := now
	p.CropID = crop.ID
	p.PlantedAt = &plantedAt
	p.GrowthProgress = 0
	return true
}

// Harvest moves a fully grown crop into the inventory and frees the plot.
// It returns the harvested crop id.
func (e *Engine) Harvest(plotID string) (string, bool) {
	p := e.plot(plotID)
	if p == nil || !p.Occupied() || p.GrowthProgress < 100 {
		return "", false
	}
	cropID := p.CropID
	utils.AddItem(&e.state.Inventory, cropID, 1)
	p.Clear()
	return cropID, true
}

// CollectProduct moves an animal's pending product into the inventory and restarts
// its production clock. It returns the collected product id.
func (e *Engine) CollectProduct(animalID string, now time.Time) (string, bool) {
	a := e.animal(animalID)
	if a == nil || !a.HasProduct() {
		return "", false
	}
	def, ok := e.catalog.Animal(a.Type)
	if !ok {
		return "", false
	}
	utils.AddItem(&e.state.Inventory, def.ProductID, 1)
	a.ProductReadyAt = nil
	a.LastFedAt = now
	return def.ProductID, true
}

// Feed restarts an animal's production clock. An animal with a product waiting
// must be collected first.
func (e *Engine) Feed(animalID string, now time.Time) bool {
	a := e.animal(animalID)
	if a == nil || a.HasProduct() {
		return false
	}
	a.LastFedAt = now
	return true
}

// AcquireAnimal adds a new animal of the given type. Cost checks belong to the caller.
func (e *Engine) AcquireAnimal(animalType string, now time.Time) (domain.Animal, bool) {
	if _, ok := e.catalog.Animal(animalType); !ok {
		return domain.Animal{}, false
	}
	a := domain.Animal{
		ID:        e.newID(),
		Type:      animalType,
		LastFedAt: now,
	}
	e.state.Animals = append(e.state.Animals, a)
	return a, true
}

// AddItems credits quantity units of itemID to the inventory. Cost checks belong to the caller.
func (e *Engine) AddItems(itemID string, quantity int) {
	utils.AddItem(&e.state.Inventory, itemID, quantity)
}

// Restore replaces the whole farm state
func (e *Engine) Restore(state domain.FarmState) {
	state.Normalize()
	e.state = state
}

func (e *Engine) plot(id string) *domain.FarmPlot {
	for i := range e.state.Plots {
		if e.state.Plots[i].ID == id {
			return &e.state.Plots[i]
		}
	}
	return nil
}

func (e *Engine) animal(id string) *domain.Animal {
	for i := range e.state.Animals {
		if e.state.Animals[i].ID == id {
			return &e.state.Animals[i]
		}
	}
	return nil
}
