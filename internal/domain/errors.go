package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Item errors
	ErrMsgItemNotFound    = "item not found"
	ErrMsgInvalidCategory = "invalid category"
	ErrMsgInvalidCatalog  = "invalid item catalog"

	// Inventory errors
	ErrMsgInvalidQuantity = "invalid quantity"
	ErrMsgInventoryFull   = "inventory is full"

	// Shop errors
	ErrMsgInsufficientStock = "insufficient stock"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgNoSelection       = "no item selected"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("...: %w", domain.ErrXxx) for additional context.
var (
	// Item errors
	ErrItemNotFound    = errors.New(ErrMsgItemNotFound)
	ErrInvalidCategory = errors.New(ErrMsgInvalidCategory)
	ErrInvalidCatalog  = errors.New(ErrMsgInvalidCatalog)

	// Inventory errors
	ErrInvalidQuantity = errors.New(ErrMsgInvalidQuantity)
	ErrInventoryFull   = errors.New(ErrMsgInventoryFull)

	// Shop errors
	ErrInsufficientStock = errors.New(ErrMsgInsufficientStock)

	// Economy errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrNoSelection       = errors.New(ErrMsgNoSelection)
)
