package inventory

import (
	"fmt"

	"github.com/osse101/LootLedger_Go/internal/domain"
)

// Ledger holds the player's inventory entries in insertion order.
//
// A Ledger is not safe for concurrent use; the economy service serializes
// access to it together with the shop and currency.
type Ledger struct {
	entries   []domain.InventoryEntry
	maxWeight float64
	weight    float64
}

// NewLedger creates an empty ledger with the given carry ceiling.
// Non-positive ceilings fall back to domain.DefaultMaxInventoryWeight.
func NewLedger(maxWeight float64) *Ledger {
	if maxWeight <= 0 {
		maxWeight = domain.DefaultMaxInventoryWeight
	}
	return &Ledger{maxWeight: maxWeight}
}

// AddOrMerge adds qty of item, merging into an existing entry when one
// exists. It reports the resulting entry and whether it was newly created.
// Capacity is not checked here; callers decide whether a merge is allowed.
func (l *Ledger) AddOrMerge(item domain.Item, qty int) (domain.InventoryEntry, bool, error) {
	if qty <= 0 {
		return domain.InventoryEntry{}, false, fmt.Errorf(ErrFmtAddQuantity, qty, item.ID, domain.ErrInvalidQuantity)
	}

	created := false
	idx := l.find(item.ID)
	if idx >= 0 {
		l.entries[idx].Quantity += qty
	} else {
		l.entries = append(l.entries, domain.InventoryEntry{Item: item, Quantity: qty})
		idx = len(l.entries) - 1
		created = true
	}

	l.recomputeWeight()
	return l.entries[idx], created, nil
}

// Remove takes qty of the item out of the inventory. When the remaining
// quantity reaches zero or below the entry is deleted and removed is true.
func (l *Ledger) Remove(itemID string, qty int) (bool, error) {
	if qty <= 0 {
		return false, fmt.Errorf(ErrFmtRemoveQuantity, qty, itemID, domain.ErrInvalidQuantity)
	}

	idx := l.find(itemID)
	if idx < 0 {
		return false, fmt.Errorf(ErrFmtRemoveMissing, itemID, domain.ErrItemNotFound)
	}

	removed := false
	l.entries[idx].Quantity -= qty
	if l.entries[idx].Quantity <= 0 {
		l.entries = append(l.entries[:idx], l.entries[idx+1:]...)
		removed = true
	}

	l.recomputeWeight()
	return removed, nil
}

// Get returns the entry for itemID
func (l *Ledger) Get(itemID string) (domain.InventoryEntry, bool) {
	idx := l.find(itemID)
	if idx < 0 {
		return domain.InventoryEntry{}, false
	}
	return l.entries[idx], true
}

// QuantityOf returns how many of itemID are held, zero when absent
func (l *Ledger) QuantityOf(itemID string) int {
	e, _ := l.Get(itemID)
	return e.Quantity
}

// List returns a copy of all entries in insertion order
func (l *Ledger) List() []domain.InventoryEntry {
	out := make([]domain.InventoryEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// CurrentWeight is the sum of quantity x weight over all entries
func (l *Ledger) CurrentWeight() float64 {
	return l.weight
}

// MaxWeight is the configured carry ceiling
func (l *Ledger) MaxWeight() float64 {
	return l.maxWeight
}

// SlotCount is the number of distinct entries
func (l *Ledger) SlotCount() int {
	return len(l.entries)
}

// HasCapacity reports whether the inventory is below both the weight
// ceiling and the slot cap.
func (l *Ledger) HasCapacity() bool {
	return l.weight < l.maxWeight && len(l.entries) < domain.MaxInventorySlots
}

// CumulativeValue is the sum of quantity x selling price over all entries
func (l *Ledger) CumulativeValue() int {
	total := 0
	for _, e := range l.entries {
		total += e.Value()
	}
	return total
}

// Checkpoint is a saved copy of a ledger's entries
type Checkpoint struct {
	entries []domain.InventoryEntry
}

// Checkpoint captures the current entries for a later Restore
func (l *Ledger) Checkpoint() Checkpoint {
	return Checkpoint{entries: l.List()}
}

// Restore puts the entries back to cp and recomputes weight
func (l *Ledger) Restore(cp Checkpoint) {
	l.entries = make([]domain.InventoryEntry, len(cp.entries))
	copy(l.entries, cp.entries)
	l.recomputeWeight()
}

// recomputeWeight rebuilds the weight from entries so it never drifts
// from repeated float additions and subtractions.
func (l *Ledger) recomputeWeight() {
	total := 0.0
	for _, e := range l.entries {
		total += e.TotalWeight()
	}
	l.weight = total
}

// find scans linearly; the slot cap keeps the ledger small.
func (l *Ledger) find(itemID string) int {
	for i := range l.entries {
		if l.entries[i].Item.ID == itemID {
			return i
		}
	}
	return -1
}
