package shop

// Error format strings
const (
	ErrFmtUnknownItem     = "shop has no row for '%s': %w"
	ErrFmtRestockNegative = "restock %d of '%s': %w"
	ErrFmtRestockRoll     = "restock '%s': %w"
)

// Log messages
const (
	LogMsgShopRestocked = "Shop restocked"
)
