package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/LootLedger_Go/internal/domain"
	"github.com/osse101/LootLedger_Go/internal/economy"
)

// MockEconomyService implements economy.Service for testing
type MockEconomyService struct {
	mock.Mock
}

var _ economy.Service = (*MockEconomyService)(nil)

func NewMockEconomyService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEconomyService {
	m := &MockEconomyService{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockEconomyService) Gather(ctx context.Context) (*economy.GatherResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*economy.GatherResult), args.Error(1)
}

func (m *MockEconomyService) Sell(ctx context.Context, itemID string, quantity int) (*economy.SellResult, error) {
	args := m.Called(ctx, itemID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*economy.SellResult), args.Error(1)
}

func (m *MockEconomyService) Buy(ctx context.Context, itemID string, quantity int) (*economy.BuyResult, error) {
	args := m.Called(ctx, itemID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*economy.BuyResult), args.Error(1)
}

func (m *MockEconomyService) SelectItem(ctx context.Context, itemID string) (*domain.ItemDetails, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ItemDetails), args.Error(1)
}

func (m *MockEconomyService) ClearSelection(ctx context.Context) {
	m.Called(ctx)
}

func (m *MockEconomyService) InventoryList(ctx context.Context) []domain.InventoryEntry {
	args := m.Called(ctx)
	return args.Get(0).([]domain.InventoryEntry)
}

func (m *MockEconomyService) InventoryWeight(ctx context.Context) float64 {
	args := m.Called(ctx)
	return args.Get(0).(float64)
}

func (m *MockEconomyService) ShopListByCategory(ctx context.Context, category domain.Category) ([]domain.ShopEntry, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShopEntry), args.Error(1)
}

func (m *MockEconomyService) CatalogItems(ctx context.Context, category domain.Category) ([]domain.Item, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockEconomyService) CurrencyBalance(ctx context.Context) int {
	args := m.Called(ctx)
	return args.Int(0)
}

func (m *MockEconomyService) ItemDetails(ctx context.Context, itemID string) (*domain.ItemDetails, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ItemDetails), args.Error(1)
}

func (m *MockEconomyService) Snapshot(ctx context.Context) *economy.Snapshot {
	args := m.Called(ctx)
	return args.Get(0).(*economy.Snapshot)
}
