package metrics

import (
	"context"

	"github.com/osse101/LootLedger_Go/internal/domain"
	"github.com/osse101/LootLedger_Go/internal/event"
	"github.com/osse101/LootLedger_Go/internal/logger"
)

// EventMetricsCollector subscribes to economy events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to every economy event type
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, t := range []event.Type{
		event.ItemSold,
		event.ItemBought,
		event.ItemsGathered,
		event.InventoryEntryRemoved,
	} {
		bus.Subscribe(t, e.HandleEvent)
	}
}

// HandleEvent updates metrics for one event. Undecodable payloads are
// logged and skipped; metrics never fail a command.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.ItemSold:
		p, err := event.DecodePayload[domain.ItemSoldPayload](evt.Payload)
		if err != nil {
			log.Warn(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		ItemsSold.WithLabelValues(p.ItemID).Add(float64(p.Quantity))
		MoneyEarned.Add(float64(p.MoneyGained))

	case event.ItemBought:
		p, err := event.DecodePayload[domain.ItemBoughtPayload](evt.Payload)
		if err != nil {
			log.Warn(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		ItemsBought.WithLabelValues(p.ItemID).Add(float64(p.Quantity))
		MoneySpent.Add(float64(p.Cost))

	case event.ItemsGathered:
		p, err := event.DecodePayload[domain.ItemsGatheredPayload](evt.Payload)
		if err != nil {
			log.Warn(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		for _, it := range p.Items {
			ItemsGathered.WithLabelValues(it.ItemID).Add(float64(it.Quantity))
		}
		outcome := OutcomeCompleted
		if p.Halted {
			outcome = p.HaltReason
		}
		GatherPasses.WithLabelValues(outcome).Inc()

	case event.InventoryEntryRemoved:
		InventoryEntryRemovals.Inc()
	}

	return nil
}
