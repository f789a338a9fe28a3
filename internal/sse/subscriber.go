package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/LootLedger_Go/internal/event"
)

// StreamedEventTypes are the bus events forwarded to stream clients
var StreamedEventTypes = []event.Type{
	event.ItemSold,
	event.ItemBought,
	event.ItemsGathered,
	event.InventoryEntryRemoved,
}

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers the forwarding handler for every streamed type
func (s *Subscriber) Subscribe() {
	names := make([]string, 0, len(StreamedEventTypes))
	for _, t := range StreamedEventTypes {
		s.bus.Subscribe(t, s.forward)
		names = append(names, string(t))
	}
	slog.Info(LogMsgSubscriberRegistered, "types", names)
}

// forward rebroadcasts the bus payload unchanged; the domain payload
// types already carry their JSON shape.
func (s *Subscriber) forward(ctx context.Context, evt event.Event) error {
	s.hub.Broadcast(string(evt.Type), evt.OccurredAt, evt.Payload)
	slog.DebugContext(ctx, LogMsgEventBroadcast, "event_type", evt.Type)
	return nil
}
