package event

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/LootLedger_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version    string    `json:"version"`
	Type       Type      `json:"type"`
	Payload    any       `json:"payload"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Economy event types
const (
	ItemSold              Type = domain.EventTypeItemSold
	ItemBought            Type = domain.EventTypeItemBought
	ItemsGathered         Type = domain.EventTypeItemsGathered
	InventoryEntryRemoved Type = domain.EventTypeInventoryEntryRemoved
)

// NewItemSoldEvent creates an item sold event
func NewItemSoldEvent(itemID string, qty, moneyGained, balance int) Event {
	return newEvent(ItemSold, domain.ItemSoldPayload{
		ItemID:      itemID,
		Quantity:    qty,
		MoneyGained: moneyGained,
		Balance:     balance,
	})
}

// NewItemBoughtEvent creates an item bought event
func NewItemBoughtEvent(itemID string, qty, cost, balance int) Event {
	return newEvent(ItemBought, domain.ItemBoughtPayload{
		ItemID:   itemID,
		Quantity: qty,
		Cost:     cost,
		Balance:  balance,
	})
}

// NewItemsGatheredEvent creates a gather pass event
func NewItemsGatheredEvent(items []domain.GatheredItem, halted bool, haltReason string) Event {
	return newEvent(ItemsGathered, domain.ItemsGatheredPayload{
		Items:      items,
		Halted:     halted,
		HaltReason: haltReason,
	})
}

// NewInventoryEntryRemovedEvent creates the event signalling an item left the inventory
func NewInventoryEntryRemovedEvent(itemID string) Event {
	return newEvent(InventoryEntryRemoved, domain.InventoryEntryRemovedPayload{ItemID: itemID})
}

func newEvent(t Type, payload any) Event {
	return Event{
		Version:    EventSchemaVersion,
		Type:       t,
		Payload:    payload,
		OccurredAt: time.Now().UTC(),
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory, synchronous Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every handler subscribed to the event's type, in
// subscription order. All handlers run even if some fail; their errors
// are joined.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(ErrMsgHandlerErrorsFmt, len(errs), event.Type, errors.Join(errs...))
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
