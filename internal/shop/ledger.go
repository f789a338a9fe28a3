package shop

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/osse101/LootLedger_Go/internal/domain"
	"github.com/osse101/LootLedger_Go/internal/logger"
	"github.com/osse101/LootLedger_Go/internal/utils"
)

// Ledger holds one stock row per catalog item, in catalog order.
// Rows are never deleted; a sold-out item stays listed at zero.
//
// A Ledger is not safe for concurrent use.
type Ledger struct {
	entries []domain.ShopEntry
	index   map[string]int
}

// NewLedger creates a zero-stock row for every item
func NewLedger(items []domain.Item) *Ledger {
	l := &Ledger{
		entries: make([]domain.ShopEntry, 0, len(items)),
		index:   make(map[string]int, len(items)),
	}
	for _, it := range items {
		if _, dup := l.index[it.ID]; dup {
			continue
		}
		l.index[it.ID] = len(l.entries)
		l.entries = append(l.entries, domain.ShopEntry{Item: it})
	}
	return l
}

// Restock sets the stock of itemID to qty
func (l *Ledger) Restock(itemID string, qty int) error {
	if qty < 0 {
		return fmt.Errorf(ErrFmtRestockNegative, qty, itemID, domain.ErrInvalidQuantity)
	}
	idx, ok := l.index[itemID]
	if !ok {
		return fmt.Errorf(ErrFmtUnknownItem, itemID, domain.ErrItemNotFound)
	}
	l.entries[idx].Quantity = qty
	return nil
}

// RestockAll draws an initial stock for every row uniformly from
// [MinInitialShopStock, MaxInitialShopStock], independent of category.
func (l *Ledger) RestockAll(ctx context.Context, roller dice.Roller) error {
	log := logger.FromContext(ctx)

	total := 0
	for i := range l.entries {
		qty, err := utils.RollBetween(roller, domain.MinInitialShopStock, domain.MaxInitialShopStock)
		if err != nil {
			return fmt.Errorf(ErrFmtRestockRoll, l.entries[i].Item.ID, err)
		}
		l.entries[i].Quantity = qty
		total += qty
	}

	log.Info(LogMsgShopRestocked, "items", len(l.entries), "total_stock", total)
	return nil
}

// Adjust adds delta to the stock of itemID. There is no floor here;
// the transaction engine checks stock before taking from it.
func (l *Ledger) Adjust(itemID string, delta int) error {
	idx, ok := l.index[itemID]
	if !ok {
		return fmt.Errorf(ErrFmtUnknownItem, itemID, domain.ErrItemNotFound)
	}
	l.entries[idx].Quantity += delta
	return nil
}

// QuantityOf returns the stock of itemID, zero for unknown ids
func (l *Ledger) QuantityOf(itemID string) int {
	idx, ok := l.index[itemID]
	if !ok {
		return 0
	}
	return l.entries[idx].Quantity
}

// List returns every row in catalog order
func (l *Ledger) List() []domain.ShopEntry {
	out := make([]domain.ShopEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// ListByCategory returns the rows of one category in catalog order,
// zero-stock rows included.
func (l *Ledger) ListByCategory(category domain.Category) []domain.ShopEntry {
	out := make([]domain.ShopEntry, 0)
	for _, e := range l.entries {
		if e.Item.Category == category {
			out = append(out, e)
		}
	}
	return out
}
