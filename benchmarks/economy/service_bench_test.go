package economy_bench

import (
	"context"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/osse101/LootLedger_Go/internal/economy"
	"github.com/osse101/LootLedger_Go/internal/item"
	"github.com/osse101/LootLedger_Go/internal/testing/dicetest"
	"github.com/osse101/LootLedger_Go/internal/testing/fixtures"
)

// --- Helpers ---

func newService(b *testing.B, items int, roller dice.Roller, currency int) economy.Service {
	b.Helper()
	catalog, err := item.NewCatalog(fixtures.Uniform(items, 0.5))
	if err != nil {
		b.Fatalf("NewCatalog failed: %v", err)
	}
	svc, err := economy.NewService(context.Background(), catalog, economy.Config{
		MaxInventoryWeight: 1e9,
		InitialCurrency:    currency,
	}, roller, nil)
	if err != nil {
		b.Fatalf("NewService failed: %v", err)
	}
	return svc
}

// --- Benchmarks ---

// BenchmarkGather_LargeCatalog measures one full gather pass over a
// 500 item catalog starting from an empty inventory.
func BenchmarkGather_LargeCatalog(b *testing.B) {
	ctx := context.Background()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		b.StopTimer()
		svc := newService(b, 500, dice.DefaultRoller, 0)
		b.StartTimer()

		if _, err := svc.Gather(ctx); err != nil {
			b.Fatalf("Gather failed: %v", err)
		}
	}
}

// BenchmarkBuySellRoundTrip measures a buy of one unit followed by
// selling it back, which leaves stock unchanged.
func BenchmarkBuySellRoundTrip(b *testing.B) {
	ctx := context.Background()
	svc := newService(b, 50, dicetest.Constant(6), 1<<50)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.Buy(ctx, "item_07", 1); err != nil {
			b.Fatalf("Buy failed: %v", err)
		}
		if _, err := svc.Sell(ctx, "item_07", 1); err != nil {
			b.Fatalf("Sell failed: %v", err)
		}
	}
}

// BenchmarkSnapshot measures the full session read used by the UI
func BenchmarkSnapshot(b *testing.B) {
	ctx := context.Background()
	svc := newService(b, 200, dice.DefaultRoller, 1000)
	if _, err := svc.Gather(ctx); err != nil {
		b.Fatalf("Gather failed: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = svc.Snapshot(ctx)
	}
}
