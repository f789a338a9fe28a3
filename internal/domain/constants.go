package domain

// Inventory limits
const (
	// MaxInventorySlots is the hard cap on distinct inventory entries
	MaxInventorySlots = 25

	// DefaultMaxInventoryWeight is the carry ceiling when none is configured
	DefaultMaxInventoryWeight = 100.0
)

// Currency
const (
	DefaultInitialCurrency = 0
)

// Quantity ranges for random draws (inclusive)
const (
	MinGatherQuantity = 1
	MaxGatherQuantity = 10

	MinInitialShopStock = 0
	MaxInitialShopStock = 10
)

// Gather halt reasons
const (
	HaltReasonWeight = "weight"
	HaltReasonSlots  = "slots"
)
