package domain

import (
	"fmt"
	"time"
)

// FarmPlot is one of the fixed farming slots. CropID is empty when the plot is free.
type FarmPlot struct {
	ID             string     `json:"id"`
	CropID         string     `json:"cropId,omitempty"`
	PlantedAt      *time.Time `json:"plantedAt,omitempty"`
	GrowthProgress float64    `json:"growthProgress"`
}

// Occupied reports whether a crop is planted in the plot
func (p *FarmPlot) Occupied() bool {
	return p.CropID != ""
}

// Clear empties the plot
func (p *FarmPlot) Clear() {
	p.CropID = ""
	p.PlantedAt = nil
	p.GrowthProgress = 0
}

// Animal is an owned animal producing goods over time
type Animal struct {
	ID             string     `json:"id"`
	Type           string     `json:"type"`
	LastFedAt      time.Time  `json:"lastFed"`
	ProductReadyAt *time.Time `json:"productReadyAt,omitempty"`
}

// HasProduct reports whether a product is waiting to be collected
func (a *Animal) HasProduct() bool {
	return a.ProductReadyAt != nil
}

// FarmState is the persisted farm aggregate
type FarmState struct {
	Plots     []FarmPlot `json:"plots"`
	Animals   []Animal   `json:"animals"`
	Inventory Inventory  `json:"inventory"`
}

// PlotID returns the identifier of the i-th plot
func PlotID(i int) string {
	return fmt.Sprintf("%s%d", PlotIDPrefix, i)
}

// DefaultFarmState returns a farm with empty plots, no animals and an empty inventory
func DefaultFarmState() FarmState {
	plots := make([]FarmPlot, PlotCount)
	for i := range plots {
		plots[i] = FarmPlot{ID: PlotID(i)}
	}
	return FarmState{
		Plots:     plots,
		Animals:   []Animal{},
		Inventory: Inventory{Slots: []InventorySlot{}},
	}
}

// Clone returns a deep copy of the farm state
func (f FarmState) Clone() FarmState {
	out := FarmState{
		Plots:     make([]FarmPlot, len(f.Plots)),
		Animals:   make([]Animal, len(f.Animals)),
		Inventory: f.Inventory.Clone(),
	}
	for i, p := range f.Plots {
		out.Plots[i] = p
		out.Plots[i].PlantedAt = cloneTime(p.PlantedAt)
	}
	for i, a := range f.Animals {
		out.Animals[i] = a
		out.Animals[i].ProductReadyAt = cloneTime(a.ProductReadyAt)
	}
	return out
}

// Normalize repairs a decoded farm: the plot set is restored to the fixed layout,
// keeping any planted crops whose plot id is still valid.
func (f *FarmState) Normalize() {
	byID := make(map[string]FarmPlot, len(f.Plots))
	for _, p := range f.Plots {
		byID[p.ID] = p
	}
	plots := make([]FarmPlot, PlotCount)
	for i := range plots {
		id := PlotID(i)
		p, ok := byID[id]
		if !ok {
			p = FarmPlot{ID: id}
		}
		if p.CropID == "" || p.PlantedAt == nil {
			p.Clear()
		}
		if p.GrowthProgress < 0 {
			p.GrowthProgress = 0
		}
		if p.GrowthProgress > 100 {
			p.GrowthProgress = 100
		}
		plots[i] = p
	}
	f.Plots = plots

	if f.Animals == nil {
		f.Animals = []Animal{}
	}

	slots := make([]InventorySlot, 0, len(f.Inventory.Slots))
	seen := make(map[string]int, len(f.Inventory.Slots))
	for _, s := range f.Inventory.Slots {
		if s.ItemID == "" || s.Quantity <= 0 {
			continue
		}
		if idx, ok := seen[s.ItemID]; ok {
			slots[idx].Quantity += s.Quantity
			continue
		}
		seen[s.ItemID] = len(slots)
		slots = append(slots, s)
	}
	f.Inventory.Slots = slots
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
