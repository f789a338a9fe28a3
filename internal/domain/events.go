package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "item.sold")
const (
	// EventTypeItemSold is published after a committed sell
	EventTypeItemSold = "item.sold"

	// EventTypeItemBought is published after a committed buy
	EventTypeItemBought = "item.bought"

	// EventTypeItemsGathered is published after every gather pass, including empty ones
	EventTypeItemsGathered = "items.gathered"

	// EventTypeInventoryEntryRemoved is published when an item leaves the inventory entirely
	EventTypeInventoryEntryRemoved = "inventory.entry_removed"
)

// ItemSoldPayload is the payload of EventTypeItemSold
type ItemSoldPayload struct {
	ItemID      string `json:"item_id"`
	Quantity    int    `json:"quantity"`
	MoneyGained int    `json:"money_gained"`
	Balance     int    `json:"balance"`
}

// ItemBoughtPayload is the payload of EventTypeItemBought
type ItemBoughtPayload struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
	Cost     int    `json:"cost"`
	Balance  int    `json:"balance"`
}

// GatheredItem is one merge performed by a gather pass
type GatheredItem struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// ItemsGatheredPayload is the payload of EventTypeItemsGathered
type ItemsGatheredPayload struct {
	Items      []GatheredItem `json:"items"`
	Halted     bool           `json:"halted"`
	HaltReason string         `json:"halt_reason,omitempty"`
}

// InventoryEntryRemovedPayload is the payload of EventTypeInventoryEntryRemoved
type InventoryEntryRemovedPayload struct {
	ItemID string `json:"item_id"`
}
