package loot

// ============================================================================
// Drop Probability
// ============================================================================

// BaseProbability is the chance before any multiplier is applied
const BaseProbability = 0.5

// Rarity multipliers
const (
	RarityMultiplierVeryCommon = 1.0
	RarityMultiplierCommon     = 1.2
	RarityMultiplierRare       = 1.5
	RarityMultiplierEpic       = 2.0
	RarityMultiplierLegendary  = 3.0
)

// Cumulative value tiers (inclusive upper bounds) and their multipliers
const (
	ValueTierLow = 500
	ValueTierMid = 1000

	ValueMultiplierLow  = 1.0
	ValueMultiplierMid  = 1.5
	ValueMultiplierHigh = 2.0
)

// ============================================================================
// Messages
// ============================================================================

const (
	ErrFmtRollQuantity = "roll quantity for '%s': %w"
	ErrFmtMerge        = "merge '%s': %w"
)

const (
	LogMsgGatherHalted    = "Gather halted at capacity"
	LogMsgGatherCompleted = "Gather completed"
	LogMsgItemSkipped     = "Item skipped by probability gate"
)
