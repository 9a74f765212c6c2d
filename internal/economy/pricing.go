package economy

import "github.com/GEON1999/PomoFarm/internal/domain"

// Catalog is the reference data the economy prices against
type Catalog interface {
	Crop(id string) (domain.CropDefinition, bool)
	AnimalByProduct(productID string) (domain.AnimalDefinition, bool)
	Animal(animalType string) (domain.AnimalDefinition, bool)
	ShopItem(id string) (domain.ShopItem, bool)
}

// SellPrice resolves the unit sell price of an item. Crop prices win over animal
// products, which win over half the shop price.
func SellPrice(catalog Catalog, itemID string) (int, bool) {
	if crop, ok := catalog.Crop(itemID); ok {
		return crop.SellPrice, true
	}
	if animal, ok := catalog.AnimalByProduct(itemID); ok {
		return animal.ProductSellPrice, true
	}
	if item, ok := catalog.ShopItem(itemID); ok {
		return item.Price / ShopResaleDivisor, true
	}
	return 0, false
}
