package loot

import "github.com/osse101/LootLedger_Go/internal/domain"

// RarityMultiplier scales the base chance by item rarity
func RarityMultiplier(r domain.Rarity) float64 {
	switch r {
	case domain.RarityCommon:
		return RarityMultiplierCommon
	case domain.RarityRare:
		return RarityMultiplierRare
	case domain.RarityEpic:
		return RarityMultiplierEpic
	case domain.RarityLegendary:
		return RarityMultiplierLegendary
	default:
		return RarityMultiplierVeryCommon
	}
}

// ValueMultiplier scales the base chance by the inventory's cumulative value
func ValueMultiplier(cumulativeValue int) float64 {
	switch {
	case cumulativeValue <= ValueTierLow:
		return ValueMultiplierLow
	case cumulativeValue <= ValueTierMid:
		return ValueMultiplierMid
	default:
		return ValueMultiplierHigh
	}
}

// Probability is BaseProbability x rarity multiplier x value multiplier.
// The result is not clamped and may exceed 1.
func Probability(r domain.Rarity, cumulativeValue int) float64 {
	return BaseProbability * RarityMultiplier(r) * ValueMultiplier(cumulativeValue)
}
