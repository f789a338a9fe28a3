package bootstrap

import (
	"log/slog"

	"github.com/osse101/LootLedger_Go/internal/event"
	"github.com/osse101/LootLedger_Go/internal/metrics"
	"github.com/osse101/LootLedger_Go/internal/sse"
)

// InitializeEventSystem creates the in-memory event bus and subscribes the
// metrics collector to every economy event.
func InitializeEventSystem() event.Bus {
	bus := event.NewMemoryBus()

	metrics.NewEventMetricsCollector().Register(bus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	slog.Info(LogMsgEventSystemInitialized)
	return bus
}

// InitializeEventStream starts the SSE hub and forwards bus events to it.
// The caller stops the hub during shutdown.
func InitializeEventStream(bus event.Bus) *sse.Hub {
	hub := sse.NewHub()
	hub.Start()
	sse.NewSubscriber(hub, bus).Subscribe()

	slog.Info(LogMsgEventStreamStarted)
	return hub
}
