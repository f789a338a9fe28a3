package economy

// ==================== Error Messages ====================

// Formatted error messages for validation
const (
	ErrMsgInvalidQuantityFmt     = "invalid quantity: %d: %w"
	ErrMsgQuantityExceedsHeldFmt = "cannot sell %d %s, only %d held: %w"
	ErrMsgNotEnoughStockFmt      = "shop has %d %s, requested %d: %w"
	ErrMsgNotEnoughFundsFmt      = "buying %d %s costs %d, balance is %d: %w"
	ErrMsgNoFreeSlotFmt          = "no free slot for %s (%d/%d used): %w"
	ErrMsgResolveItemFailedFmt   = "failed to resolve item %q: %w"
	ErrMsgCategoryFilterFmt      = "failed to filter by category %q: %w"
)

// Formatted error messages for ledger mutations
const (
	ErrMsgRemoveFromInventoryFmt = "failed to remove %s from inventory: %w"
	ErrMsgAddToInventoryFmt      = "failed to add %s to inventory: %w"
	ErrMsgAdjustShopFmt          = "failed to adjust shop stock of %s: %w"
	ErrMsgGatherFailed           = "gather pass failed: %w"
	ErrMsgRestockFailed          = "failed to restock shop: %w"
	ErrMsgNilCatalog             = "economy service requires a catalog"
)

// ==================== Log Messages ====================

// Service operation log messages
const (
	LogMsgServiceReady     = "Economy session started"
	LogMsgSellCalled       = "Sell called"
	LogMsgItemSold         = "Item sold"
	LogMsgBuyCalled        = "Buy called"
	LogMsgItemPurchased    = "Item purchased"
	LogMsgGatherCalled     = "Gather called"
	LogMsgGatherFinished   = "Gather finished"
	LogMsgGatherRolledBack = "Gather failed, inventory restored"
	LogMsgItemSelected     = "Item selected"
	LogMsgSelectionCleared = "Selection cleared"
	LogMsgPublishFailed    = "Failed to publish economy event"
)
