package economy

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/LootLedger_Go/internal/event"
)

// MockBus implements event.Bus for testing
type MockBus struct {
	mock.Mock
}

func (m *MockBus) Publish(ctx context.Context, evt event.Event) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

func (m *MockBus) Subscribe(eventType event.Type, handler event.Handler) {
	m.Called(eventType, handler)
}

// recordingBus is a MemoryBus that remembers every event type it saw
type recordingBus struct {
	*event.MemoryBus
	mu    sync.Mutex
	types []event.Type
}

func newRecordingBus() *recordingBus {
	b := &recordingBus{MemoryBus: event.NewMemoryBus()}
	record := func(_ context.Context, evt event.Event) error {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.types = append(b.types, evt.Type)
		return nil
	}
	for _, t := range []event.Type{event.ItemSold, event.ItemBought, event.ItemsGathered, event.InventoryEntryRemoved} {
		b.Subscribe(t, record)
	}
	return b
}

func (b *recordingBus) Types() []event.Type {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]event.Type(nil), b.types...)
}
