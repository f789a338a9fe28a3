package item

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/osse101/LootLedger_Go/internal/domain"
)

// Catalog is the immutable registry of item definitions.
// It is safe for concurrent use since nothing mutates it after construction.
type Catalog struct {
	items []domain.Item
	index map[string]int
}

// NewCatalog indexes items in the given order. Ids must be unique
// ignoring case and the set must not be empty.
func NewCatalog(items []domain.Item) (*Catalog, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidCatalog, ErrMsgNoItemsDefined)
	}

	c := &Catalog{
		items: make([]domain.Item, len(items)),
		index: make(map[string]int, len(items)),
	}
	copy(c.items, items)

	for i, it := range c.items {
		key := normalizeID(it.ID)
		if key == "" {
			return nil, fmt.Errorf(ErrFmtItemAtIndexInvalid, domain.ErrInvalidCatalog, i, "empty id")
		}
		if _, dup := c.index[key]; dup {
			return nil, fmt.Errorf(ErrFmtDuplicateID, domain.ErrInvalidCatalog, it.ID)
		}
		c.index[key] = i
	}

	return c, nil
}

// All returns every item in catalog order
func (c *Catalog) All() []domain.Item {
	out := make([]domain.Item, len(c.items))
	copy(out, c.items)
	return out
}

// ByCategory returns the items of one category in catalog order
func (c *Catalog) ByCategory(category domain.Category) []domain.Item {
	out := make([]domain.Item, 0)
	for _, it := range c.items {
		if it.Category == category {
			out = append(out, it)
		}
	}
	return out
}

// Get looks an item up by id, ignoring case
func (c *Catalog) Get(id string) (domain.Item, bool) {
	i, ok := c.index[normalizeID(id)]
	if !ok {
		return domain.Item{}, false
	}
	return c.items[i], true
}

// Resolve is Get returning domain.ErrItemNotFound for unknown ids
func (c *Catalog) Resolve(id string) (domain.Item, error) {
	it, ok := c.Get(id)
	if !ok {
		return domain.Item{}, fmt.Errorf(ErrFmtLookupFailed, id, domain.ErrItemNotFound)
	}
	return it, nil
}

// Len returns the number of items
func (c *Catalog) Len() int {
	return len(c.items)
}

// normalizeID folds case so "Ore_Iron" and "ore_iron" are the same item.
// A fresh Caser per call; Casers are not safe for concurrent use.
func normalizeID(id string) string {
	return cases.Fold().String(strings.TrimSpace(id))
}
