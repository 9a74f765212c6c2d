package economy

import (
	"context"
	"fmt"
	"time"

	"github.com/GEON1999/PomoFarm/internal/domain"
	"github.com/GEON1999/PomoFarm/internal/logger"
)

// Buy purchases quantity units of a shop item with gold and hands them to the
// grantor. Nothing is granted when the debit fails.
func (s *Service) Buy(ctx context.Context, ledger *Ledger, grantor Grantor, itemID string, quantity int, now time.Time) (*BuyResult, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgBuyItemCalled, "item", itemID, "quantity", quantity)

	if err := validatePurchaseQuantity(quantity); err != nil {
		return nil, err
	}

	item, ok := s.catalog.ShopItem(itemID)
	if !ok {
		return nil, fmt.Errorf(ErrMsgItemNotBuyableFmt, domain.ErrNotBuyable, itemID)
	}
	if item.Category == domain.CategoryAnimal {
		if _, known := s.catalog.Animal(item.ID); !known {
			return nil, fmt.Errorf(ErrMsgAnimalGrantFailedFmt, domain.ErrNotBuyable, item.ID)
		}
	}

	total := item.Price * quantity
	if !ledger.Debit(domain.CurrencyGold, total) {
		balance, _ := ledger.Balance(domain.CurrencyGold)
		log.Info(LogMsgBuyDeclined, "item", itemID, "cost", total, "balance", balance)
		return nil, fmt.Errorf(ErrMsgInsufficientFundsFmt, domain.ErrInsufficientFunds, itemID, total, domain.CurrencyGold, balance)
	}

	result := &BuyResult{ItemID: item.ID, Quantity: quantity, TotalCost: total}
	switch item.Category {
	case domain.CategoryAnimal:
		for i := 0; i < quantity; i++ {
			animal, _ := grantor.AcquireAnimal(item.ID, now)
			result.Animals = append(result.Animals, animal)
		}
	case domain.CategorySeed, domain.CategoryBooster, domain.CategoryDecoration:
		grantor.AddItems(item.ID, quantity)
	}

	log.Info(LogMsgItemPurchased, "item", itemID, "quantity", quantity, "gold", total)
	return result, nil
}
