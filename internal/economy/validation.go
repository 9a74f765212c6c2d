package economy

import (
	"fmt"

	"github.com/GEON1999/PomoFarm/internal/domain"
)

// validateQuantity rejects non-positive quantities. Sales are otherwise
// bounded only by what the player holds.
func validateQuantity(quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf(ErrMsgInvalidQuantityFmt, domain.ErrInvalidQuantity, quantity)
	}
	return nil
}

// validatePurchaseQuantity also applies the per-purchase cap
func validatePurchaseQuantity(quantity int) error {
	if err := validateQuantity(quantity); err != nil {
		return err
	}
	if quantity > MaxPurchaseQuantity {
		return fmt.Errorf(ErrMsgQuantityExceedsMaxFmt, domain.ErrInvalidQuantity, quantity, MaxPurchaseQuantity)
	}
	return nil
}
