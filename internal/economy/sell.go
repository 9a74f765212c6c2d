package economy

import (
	"context"
	"fmt"

	"github.com/GEON1999/PomoFarm/internal/domain"
	"github.com/GEON1999/PomoFarm/internal/logger"
	"github.com/GEON1999/PomoFarm/internal/utils"
)

// Sell converts quantity units of itemID into gold. The inventory decrement and the
// gold credit happen together or not at all.
func (s *Service) Sell(ctx context.Context, ledger *Ledger, inventory *domain.Inventory, itemID string, quantity int) (*SellResult, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgSellItemCalled, "item", itemID, "quantity", quantity)

	if err := validateQuantity(quantity); err != nil {
		return nil, err
	}

	price, ok := s.SellPrice(itemID)
	if !ok {
		log.Info(LogMsgSellDeclined, "item", itemID, "reason", domain.ErrMsgNotSellable)
		return nil, fmt.Errorf(ErrMsgItemNotSellableFmt, domain.ErrNotSellable, itemID)
	}

	held := utils.QuantityOf(inventory, itemID)
	if held < quantity {
		log.Info(LogMsgSellDeclined, "item", itemID, "reason", domain.ErrMsgInsufficientQuantity, "held", held)
		return nil, fmt.Errorf(ErrMsgItemNotInInventoryFmt, domain.ErrInsufficientQuantity, itemID, held, quantity)
	}

	total := price * quantity
	utils.RemoveItem(inventory, itemID, quantity)
	if err := ledger.Credit(domain.CurrencyGold, total); err != nil {
		utils.AddItem(inventory, itemID, quantity)
		return nil, err
	}

	log.Info(LogMsgItemSold, "item", itemID, "quantity", quantity, "gold", total)
	return &SellResult{
		ItemID:     itemID,
		Quantity:   quantity,
		UnitPrice:  price,
		TotalValue: total,
	}, nil
}
