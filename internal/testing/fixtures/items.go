// Package fixtures holds catalog items shared by package tests.
package fixtures

import (
	"fmt"

	"github.com/osse101/LootLedger_Go/internal/domain"
)

var (
	Ore = domain.Item{
		ID: "ore_iron", Name: "Iron Ore", Description: "Raw ore",
		Category: domain.CategoryMaterials, Rarity: domain.RarityVeryCommon,
		BuyingPrice: 10, SellingPrice: 5, Weight: 1,
	}
	Wood = domain.Item{
		ID: "wood_oak", Name: "Oak Log", Description: "Timber",
		Category: domain.CategoryMaterials, Rarity: domain.RarityVeryCommon,
		BuyingPrice: 6, SellingPrice: 3, Weight: 2,
	}
	Sword = domain.Item{
		ID: "sword_short", Name: "Short Sword", Description: "A plain blade",
		Category: domain.CategoryWeapons, Rarity: domain.RarityCommon,
		BuyingPrice: 60, SellingPrice: 30, Weight: 3,
	}
	Potion = domain.Item{
		ID: "potion_health", Name: "Health Potion", Description: "Heals",
		Category: domain.CategoryConsumables, Rarity: domain.RarityRare,
		BuyingPrice: 12, SellingPrice: 6, Weight: 0.3,
	}
	Crown = domain.Item{
		ID: "crown_sunken", Name: "Sunken Crown", Description: "Drowned gold",
		Category: domain.CategoryTreasure, Rarity: domain.RarityLegendary,
		BuyingPrice: 2000, SellingPrice: 1500, Weight: 3,
	}
)

// Items returns a small mixed catalog in a fixed order
func Items() []domain.Item {
	return []domain.Item{Ore, Wood, Sword, Potion, Crown}
}

// Uniform returns n distinct Materials items of the given weight
func Uniform(n int, weight float64) []domain.Item {
	out := make([]domain.Item, n)
	for i := range out {
		out[i] = domain.Item{
			ID:           fmt.Sprintf("item_%02d", i),
			Name:         fmt.Sprintf("Item %02d", i),
			Category:     domain.CategoryMaterials,
			Rarity:       domain.RarityVeryCommon,
			BuyingPrice:  2,
			SellingPrice: 1,
			Weight:       weight,
		}
	}
	return out
}
