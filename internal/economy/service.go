// Package economy implements the currency ledger and the composite shop
// transactions that move value between the ledger and the farm inventory.
package economy

import (
	"time"

	"github.com/GEON1999/PomoFarm/internal/domain"
)

// Grantor receives the goods of a purchase. The farm engine implements it.
type Grantor interface {
	Inventory() *domain.Inventory
	AddItems(itemID string, quantity int)
	AcquireAnimal(animalType string, now time.Time) (domain.Animal, bool)
}

// SellResult contains the result of a sell operation
type SellResult struct {
	ItemID     string `json:"itemId"`
	Quantity   int    `json:"quantity"`
	UnitPrice  int    `json:"unitPrice"`
	TotalValue int    `json:"totalValue"`
}

// BuyResult contains the result of a buy operation
type BuyResult struct {
	ItemID    string          `json:"itemId"`
	Quantity  int             `json:"quantity"`
	TotalCost int             `json:"totalCost"`
	Animals   []domain.Animal `json:"animals,omitempty"`
}

// Service prices and executes shop transactions against a catalog
type Service struct {
	catalog Catalog
}

// NewService creates a new economy service
func NewService(catalog Catalog) *Service {
	return &Service{catalog: catalog}
}

// SellPrice resolves the unit sell price of itemID
func (s *Service) SellPrice(itemID string) (int, bool) {
	return SellPrice(s.catalog, itemID)
}
