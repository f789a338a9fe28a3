package economy

import (
	"context"
	"fmt"

	"github.com/osse101/LootLedger_Go/internal/domain"
	"github.com/osse101/LootLedger_Go/internal/logger"
)

// SelectItem makes itemID the target for Buy and Sell calls without an id
func (s *service) SelectItem(ctx context.Context, itemID string) (*domain.ItemDetails, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, err := s.catalog.Resolve(itemID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgResolveItemFailedFmt, itemID, err)
	}
	s.selection = it.ID

	logger.FromContext(ctx).Debug(LogMsgItemSelected, "item", it.ID)
	return s.detailsLocked(it), nil
}

func (s *service) ClearSelection(ctx context.Context) {
	s.mu.Lock()
	s.selection = ""
	s.mu.Unlock()

	logger.FromContext(ctx).Debug(LogMsgSelectionCleared)
}

func (s *service) InventoryList(_ context.Context) []domain.InventoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inventory.List()
}

func (s *service) InventoryWeight(_ context.Context) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inventory.CurrentWeight()
}

// ShopListByCategory lists shop rows, zero stock included, in catalog order
func (s *service) ShopListByCategory(_ context.Context, category domain.Category) ([]domain.ShopEntry, error) {
	if category != "" && !category.IsValid() {
		return nil, fmt.Errorf(ErrMsgCategoryFilterFmt, category, domain.ErrInvalidCategory)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if category == "" {
		return s.shop.List(), nil
	}
	return s.shop.ListByCategory(category), nil
}

// CatalogItems reads the immutable catalog and takes no lock
func (s *service) CatalogItems(_ context.Context, category domain.Category) ([]domain.Item, error) {
	if category == "" {
		return s.catalog.All(), nil
	}
	if !category.IsValid() {
		return nil, fmt.Errorf(ErrMsgCategoryFilterFmt, category, domain.ErrInvalidCategory)
	}
	return s.catalog.ByCategory(category), nil
}

func (s *service) CurrencyBalance(_ context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currency
}

func (s *service) ItemDetails(_ context.Context, itemID string) (*domain.ItemDetails, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, err := s.resolveLocked(itemID)
	if err != nil {
		return nil, err
	}
	return s.detailsLocked(it), nil
}

func (s *service) Snapshot(_ context.Context) *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := &Snapshot{
		Inventory: s.inventory.List(),
		Weight:    s.inventory.CurrentWeight(),
		MaxWeight: s.inventory.MaxWeight(),
		Slots:     s.inventory.SlotCount(),
		MaxSlots:  domain.MaxInventorySlots,
		Currency:  s.currency,
		Shop:      s.shop.List(),
	}
	if s.selection != "" {
		if it, ok := s.catalog.Get(s.selection); ok {
			snap.Selection = s.detailsLocked(it)
		}
	}
	return snap
}
