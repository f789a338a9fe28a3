package domain

import "strings"

// Category groups items into shop tabs
type Category string

const (
	CategoryMaterials   Category = "Materials"
	CategoryWeapons     Category = "Weapons"
	CategoryConsumables Category = "Consumables"
	CategoryTreasure    Category = "Treasure"
)

// Categories lists every category in tab order
var Categories = []Category{
	CategoryMaterials,
	CategoryWeapons,
	CategoryConsumables,
	CategoryTreasure,
}

// IsValid reports whether c is a known category
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory matches s against the known categories ignoring case
func ParseCategory(s string) (Category, error) {
	for _, known := range Categories {
		if strings.EqualFold(string(known), strings.TrimSpace(s)) {
			return known, nil
		}
	}
	return "", ErrInvalidCategory
}

// Rarity drives the loot probability multiplier
type Rarity string

const (
	RarityVeryCommon Rarity = "VeryCommon"
	RarityCommon     Rarity = "Common"
	RarityRare       Rarity = "Rare"
	RarityEpic       Rarity = "Epic"
	RarityLegendary  Rarity = "Legendary"
)

// Rarities lists every rarity from most to least common
var Rarities = []Rarity{
	RarityVeryCommon,
	RarityCommon,
	RarityRare,
	RarityEpic,
	RarityLegendary,
}

// IsValid reports whether r is a known rarity
func (r Rarity) IsValid() bool {
	for _, known := range Rarities {
		if r == known {
			return true
		}
	}
	return false
}

// Item is an immutable catalog definition.
// Items are compared by ID, never by identity.
type Item struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Category     Category `json:"category"`
	Rarity       Rarity   `json:"rarity"`
	BuyingPrice  int      `json:"buying_price"`
	SellingPrice int      `json:"selling_price"`
	Weight       float64  `json:"weight"`
}
