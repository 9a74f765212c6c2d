package economy

// MaxPurchaseQuantity caps a single buy
const MaxPurchaseQuantity = 99

// ShopResaleDivisor halves the shop price of items that have no dedicated sell price
const ShopResaleDivisor = 2

// ==================== Error Messages ====================

// Formatted error messages for items
const (
	ErrMsgItemNotSellableFmt      = "%w: %s"
	ErrMsgItemNotBuyableFmt       = "%w: %s"
	ErrMsgItemNotInInventoryFmt   = "%w: %s (have %d, want %d)"
	ErrMsgInsufficientFundsFmt    = "%w: %s costs %d %s, balance %d"
	ErrMsgUnknownCurrencyFmt      = "%w: %q"
	ErrMsgInvalidQuantityFmt      = "%w: %d"
	ErrMsgQuantityExceedsMaxFmt   = "%w: quantity %d exceeds maximum allowed (%d)"
	ErrMsgAnimalGrantFailedFmt    = "%w: no animal definition for %s"
	ErrMsgNegativeCreditAmountFmt = "%w: credit amount %d"
)

// ==================== Log Messages ====================

// Service operation log messages
const (
	LogMsgSellItemCalled = "SellItem called"
	LogMsgItemSold       = "Item sold"
	LogMsgSellDeclined   = "Sell declined"
	LogMsgBuyItemCalled  = "BuyItem called"
	LogMsgItemPurchased  = "Item purchased"
	LogMsgBuyDeclined    = "Buy declined"
	LogMsgLevelUp        = "Level up"
)
