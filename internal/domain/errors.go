package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Item errors
	ErrMsgItemNotFound = "item not found"

	// Inventory errors
	ErrMsgInsufficientQuantity = "insufficient quantity"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgNotSellable       = "item is not sellable"
	ErrMsgNotBuyable        = "item is not buyable"
	ErrMsgInvalidQuantity   = "invalid quantity"
	ErrMsgUnknownCurrency   = "unknown currency"

	// Gacha errors
	ErrMsgUnknownPool     = "unknown gacha pool"
	ErrMsgUnknownPullType = "unknown pull type"
	ErrMsgEmptyPool       = "gacha pool is empty"

	// Persistence errors
	ErrMsgInvalidBackup = "invalid backup"
	ErrMsgStorageError  = "storage error"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrItemNotFound = errors.New(ErrMsgItemNotFound)

	ErrInsufficientQuantity = errors.New(ErrMsgInsufficientQuantity)

	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrNotSellable       = errors.New(ErrMsgNotSellable)
	ErrNotBuyable        = errors.New(ErrMsgNotBuyable)
	ErrInvalidQuantity   = errors.New(ErrMsgInvalidQuantity)
	ErrUnknownCurrency   = errors.New(ErrMsgUnknownCurrency)

	ErrUnknownPool     = errors.New(ErrMsgUnknownPool)
	ErrUnknownPullType = errors.New(ErrMsgUnknownPullType)
	ErrEmptyPool       = errors.New(ErrMsgEmptyPool)

	ErrInvalidBackup = errors.New(ErrMsgInvalidBackup)
	ErrStorageError  = errors.New(ErrMsgStorageError)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
