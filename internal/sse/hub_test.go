package sse

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LootLedger_Go/internal/domain"
	"github.com/osse101/LootLedger_Go/internal/event"
)

func newStartedHub(t *testing.T) *Hub {
	t.Helper()
	h := NewHub()
	h.Start()
	t.Cleanup(h.Stop)
	return h
}

func receive(t *testing.T, c *Client) Event {
	t.Helper()
	select {
	case e := <-c.EventChannel:
		return e
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestHub_Broadcast(t *testing.T) {
	t.Run("Best Case: unfiltered client receives everything", func(t *testing.T) {
		h := newStartedHub(t)
		c := h.Register(nil)
		require.NotNil(t, c)

		h.Broadcast("item.sold", time.Unix(1700000000, 0), map[string]int{"quantity": 2})

		e := receive(t, c)
		assert.Equal(t, "item.sold", e.Type)
		assert.Equal(t, int64(1700000000), e.Timestamp)
		assert.NotEmpty(t, e.ID)
	})

	t.Run("Edge Case: filtered client skips other types", func(t *testing.T) {
		h := newStartedHub(t)
		c := h.Register([]string{"item.bought"})

		h.Broadcast("item.sold", time.Now(), nil)
		h.Broadcast("item.bought", time.Now(), nil)

		assert.Equal(t, "item.bought", receive(t, c).Type)
	})
}

func TestHub_Lifecycle(t *testing.T) {
	h := NewHub()
	h.Start()

	a := h.Register(nil)
	b := h.Register(nil)
	assert.Equal(t, 2, h.ClientCount())

	h.Unregister(a.ID)
	_, open := <-a.EventChannel
	assert.False(t, open, "unregister closes the channel")
	assert.Equal(t, 1, h.ClientCount())

	h.Stop()
	_, open = <-b.EventChannel
	assert.False(t, open, "stop closes remaining channels")
	assert.Zero(t, h.ClientCount())

	assert.Nil(t, h.Register(nil), "no registration after stop")
	assert.NotPanics(t, h.Stop)
	assert.NotPanics(t, func() { h.Unregister("gone") })
}

func TestFormatSSEMessage(t *testing.T) {
	msg, err := FormatSSEMessage(Event{ID: "abc", Type: "item.sold", Timestamp: 1, Payload: map[string]string{"item_id": "ore_iron"}})
	require.NoError(t, err)

	s := string(msg)
	assert.True(t, strings.HasPrefix(s, "id: abc\nevent: item.sold\ndata: "))
	assert.True(t, strings.HasSuffix(s, "\n\n"))

	data := strings.TrimSuffix(strings.SplitN(s, "data: ", 2)[1], "\n\n")
	var decoded Event
	require.NoError(t, json.Unmarshal([]byte(data), &decoded))
	assert.Equal(t, "item.sold", decoded.Type)
}

func TestSubscriber_ForwardsEconomyEvents(t *testing.T) {
	h := newStartedHub(t)
	bus := event.NewMemoryBus()
	NewSubscriber(h, bus).Subscribe()
	c := h.Register(nil)

	require.NoError(t, bus.Publish(context.Background(), event.NewItemSoldEvent("ore_iron", 3, 30, 130)))
	require.NoError(t, bus.Publish(context.Background(), event.NewInventoryEntryRemovedEvent("ore_iron")))

	sold := receive(t, c)
	assert.Equal(t, string(event.ItemSold), sold.Type)
	assert.Equal(t, domain.ItemSoldPayload{ItemID: "ore_iron", Quantity: 3, MoneyGained: 30, Balance: 130}, sold.Payload)

	removed := receive(t, c)
	assert.Equal(t, string(event.InventoryEntryRemoved), removed.Type)
}
