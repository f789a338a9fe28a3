package domain

// InventoryEntry is one occupied inventory slot.
// Quantity is always positive; entries reaching zero are removed.
type InventoryEntry struct {
	Item     Item `json:"item"`
	Quantity int  `json:"quantity"`
}

// TotalWeight returns quantity x item weight
func (e InventoryEntry) TotalWeight() float64 {
	return float64(e.Quantity) * e.Item.Weight
}

// Value returns the entry's worth at the selling price
func (e InventoryEntry) Value() int {
	return e.Quantity * e.Item.SellingPrice
}

// ShopEntry is the stock of one catalog item. Zero stock rows are kept.
type ShopEntry struct {
	Item     Item `json:"item"`
	Quantity int  `json:"quantity"`
}

// ItemDetails is the selection view of an item: its definition plus
// how many the player holds and how many the shop has.
type ItemDetails struct {
	Item              Item `json:"item"`
	InventoryQuantity int  `json:"inventory_quantity"`
	ShopQuantity      int  `json:"shop_quantity"`
}
