package catalog

import "github.com/GEON1999/PomoFarm/internal/domain"

// Catalog is the immutable reference data for crops, animals and shop items.
// It is safe for concurrent use once built.
type Catalog struct {
	crops            map[string]domain.CropDefinition
	cropsBySeed      map[string]domain.CropDefinition
	animals          map[string]domain.AnimalDefinition
	animalsByProduct map[string]domain.AnimalDefinition
	shopItems        []domain.ShopItem
	shopIndex        map[string]int
	cropOrder        []string
	animalOrder      []string
}

func newCatalog() *Catalog {
	return &Catalog{
		crops:            make(map[string]domain.CropDefinition),
		cropsBySeed:      make(map[string]domain.CropDefinition),
		animals:          make(map[string]domain.AnimalDefinition),
		animalsByProduct: make(map[string]domain.AnimalDefinition),
		shopIndex:        make(map[string]int),
	}
}

// Crop looks up a crop by its id
func (c *Catalog) Crop(id string) (domain.CropDefinition, bool) {
	crop, ok := c.crops[id]
	return crop, ok
}

// CropBySeed looks up the crop a seed grows into
func (c *Catalog) CropBySeed(seedID string) (domain.CropDefinition, bool) {
	crop, ok := c.cropsBySeed[seedID]
	return crop, ok
}

// Animal looks up an animal definition by type
func (c *Catalog) Animal(animalType string) (domain.AnimalDefinition, bool) {
	a, ok := c.animals[animalType]
	return a, ok
}

// AnimalByProduct looks up the animal that yields productID
func (c *Catalog) AnimalByProduct(productID string) (domain.AnimalDefinition, bool) {
	a, ok := c.animalsByProduct[productID]
	return a, ok
}

// ShopItem looks up a shop item by id
func (c *Catalog) ShopItem(id string) (domain.ShopItem, bool) {
	idx, ok := c.shopIndex[id]
	if !ok {
		return domain.ShopItem{}, false
	}
	return c.shopItems[idx], true
}

// ShopItems returns every shop item in catalog order
func (c *Catalog) ShopItems() []domain.ShopItem {
	out := make([]domain.ShopItem, len(c.shopItems))
	copy(out, c.shopItems)
	return out
}

// ItemsByCategory returns the shop items of one category in catalog order
func (c *Catalog) ItemsByCategory(category domain.Category) []domain.ShopItem {
	var out []domain.ShopItem
	for _, item := range c.shopItems {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

// Crops returns every crop definition in catalog order
func (c *Catalog) Crops() []domain.CropDefinition {
	out := make([]domain.CropDefinition, 0, len(c.cropOrder))
	for _, id := range c.cropOrder {
		out = append(out, c.crops[id])
	}
	return out
}

// Animals returns every animal definition in catalog order
func (c *Catalog) Animals() []domain.AnimalDefinition {
	out := make([]domain.AnimalDefinition, 0, len(c.animalOrder))
	for _, t := range c.animalOrder {
		out = append(out, c.animals[t])
	}
	return out
}
