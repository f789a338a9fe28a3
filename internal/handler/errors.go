package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidCategoryParam  = "Unknown category"
)

// Operation names used in logs and rejection metrics
const (
	OpGather      = "gather"
	OpBuy         = "buy"
	OpSell        = "sell"
	OpSelect      = "select"
	OpItemDetails = "item details"
	OpShopList    = "shop list"
	OpCatalogList = "catalog list"
)

// Request parameter names
const (
	URLParamItemID     = "itemID"
	QueryParamCategory = "category"
	FieldQuantity      = "quantity"
)

// Rejection reasons recorded per failed buy or sell
const (
	ReasonInvalidQuantity   = "invalid_quantity"
	ReasonItemNotFound      = "item_not_found"
	ReasonNoSelection       = "no_selection"
	ReasonInsufficientStock = "insufficient_stock"
	ReasonInsufficientFunds = "insufficient_funds"
	ReasonInventoryFull     = "inventory_full"
	ReasonInvalidRequest    = "invalid_request"
	ReasonInternal          = "internal"
)

// Log messages
const (
	LogMsgEncodeFailed      = "Failed to encode JSON response"
	LogMsgWriteFailed       = "Failed to write response buffer"
	LogMsgServiceError      = "Service call failed"
	LogMsgRequestRejected   = "Request rejected"
	LogMsgDecodeFailedFmt   = "Failed to decode %s request"
	LogMsgRequestDecodedFmt = "%s request decoded"
	LogMsgValidationFailed  = "Request validation failed"
	LogMsgGatherCompleted   = "Gather completed"
	LogMsgBuyCompleted      = "Buy completed"
	LogMsgSellCompleted     = "Sell completed"
	LogMsgSelectionUpdated  = "Selection updated"
	LogMsgSelectionCleared  = "Selection cleared"
)
