package event

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LootLedger_Go/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	var got Event

	bus.Subscribe(ItemSold, func(ctx context.Context, e Event) error {
		got = e
		return nil
	})

	err := bus.Publish(context.Background(), NewItemSoldEvent("ore_iron", 3, 15, 85))

	require.NoError(t, err)
	assert.Equal(t, ItemSold, got.Type)
	assert.Equal(t, EventSchemaVersion, got.Version)
	assert.False(t, got.OccurredAt.IsZero())

	payload, ok := got.Payload.(domain.ItemSoldPayload)
	require.True(t, ok)
	assert.Equal(t, "ore_iron", payload.ItemID)
	assert.Equal(t, 15, payload.MoneyGained)
}

func TestMemoryBus_HandlersRunInOrder(t *testing.T) {
	bus := NewMemoryBus()
	var order []int

	for i := 1; i <= 3; i++ {
		n := i
		bus.Subscribe(ItemBought, func(context.Context, Event) error {
			order = append(order, n)
			return nil
		})
	}

	require.NoError(t, bus.Publish(context.Background(), NewItemBoughtEvent("ore_iron", 1, 10, 90)))
	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	assert.NoError(t, bus.Publish(context.Background(), NewInventoryEntryRemovedEvent("ore_iron")))
}

func TestMemoryBus_PublishErrorStillRunsAllHandlers(t *testing.T) {
	bus := NewMemoryBus()
	boom := errors.New("handler error")
	calls := 0

	bus.Subscribe(ItemsGathered, func(context.Context, Event) error {
		calls++
		return boom
	})
	bus.Subscribe(ItemsGathered, func(context.Context, Event) error {
		calls++
		return nil
	})

	err := bus.Publish(context.Background(), NewItemsGatheredEvent(nil, false, ""))

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, calls)
}

func TestDecodePayload(t *testing.T) {
	t.Run("typed payload", func(t *testing.T) {
		p, err := DecodePayload[domain.ItemBoughtPayload](domain.ItemBoughtPayload{ItemID: "a", Cost: 30})
		require.NoError(t, err)
		assert.Equal(t, 30, p.Cost)
	})

	t.Run("map payload", func(t *testing.T) {
		in := map[string]any{"item_id": "gem_ruby", "quantity": 2, "money_gained": 360, "balance": 400}
		p, err := DecodePayload[domain.ItemSoldPayload](in)
		require.NoError(t, err)
		assert.Equal(t, "gem_ruby", p.ItemID)
		assert.Equal(t, 360, p.MoneyGained)
	})

	t.Run("pointer payload", func(t *testing.T) {
		p, err := DecodePayload[domain.InventoryEntryRemovedPayload](&domain.InventoryEntryRemovedPayload{ItemID: "x"})
		require.NoError(t, err)
		assert.Equal(t, "x", p.ItemID)
	})
}
