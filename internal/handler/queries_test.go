package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LootLedger_Go/internal/domain"
	"github.com/osse101/LootLedger_Go/internal/economy"
	"github.com/osse101/LootLedger_Go/internal/testing/fixtures"
)

func TestHandleGetShop(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		setupMock      func(*MockEconomyService)
		expectedStatus int
	}{
		{
			name:  "Best Case: all categories",
			query: "",
			setupMock: func(m *MockEconomyService) {
				m.On("ShopListByCategory", mock.Anything, domain.Category("")).
					Return([]domain.ShopEntry{{Item: fixtures.Ore, Quantity: 5}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "Best Case: category is case-insensitive",
			query: "?category=materials",
			setupMock: func(m *MockEconomyService) {
				m.On("ShopListByCategory", mock.Anything, domain.CategoryMaterials).
					Return([]domain.ShopEntry{{Item: fixtures.Ore}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid Case: unknown category",
			query:          "?category=Junk",
			setupMock:      func(m *MockEconomyService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockEconomyService(t)
			tt.setupMock(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/shop"+tt.query, nil)
			rec := httptest.NewRecorder()
			HandleGetShop(mockSvc)(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestHandleListItems(t *testing.T) {
	mockSvc := NewMockEconomyService(t)
	mockSvc.On("CatalogItems", mock.Anything, domain.CategoryTreasure).Return([]domain.Item{fixtures.Crown}, nil)

	req := httptest.NewRequest(http.MethodGet, "/items?category=Treasure", nil)
	rec := httptest.NewRecorder()
	HandleListItems(mockSvc)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var items []domain.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	assert.Equal(t, []domain.Item{fixtures.Crown}, items)
}

func TestHandleGetInventory(t *testing.T) {
	mockSvc := NewMockEconomyService(t)
	mockSvc.On("InventoryList", mock.Anything).Return([]domain.InventoryEntry{{Item: fixtures.Sword, Quantity: 2}})
	mockSvc.On("InventoryWeight", mock.Anything).Return(6.0)

	req := httptest.NewRequest(http.MethodGet, "/inventory", nil)
	rec := httptest.NewRecorder()
	HandleGetInventory(mockSvc)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var res InventoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, 6.0, res.Weight)
	assert.Equal(t, 1, res.Slots)
	assert.Equal(t, domain.MaxInventorySlots, res.MaxSlots)
}

func TestHandleGetCurrency(t *testing.T) {
	mockSvc := NewMockEconomyService(t)
	mockSvc.On("CurrencyBalance", mock.Anything).Return(85)

	req := httptest.NewRequest(http.MethodGet, "/currency", nil)
	rec := httptest.NewRecorder()
	HandleGetCurrency(mockSvc)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"balance":85}`, rec.Body.String())
}

func TestHandleItemDetails(t *testing.T) {
	newRouter := func(svc economy.Service) http.Handler {
		r := chi.NewRouter()
		r.Get("/items/{itemID}", HandleItemDetails(svc))
		return r
	}

	t.Run("Best Case", func(t *testing.T) {
		mockSvc := NewMockEconomyService(t)
		mockSvc.On("ItemDetails", mock.Anything, "Ore_Iron").Return(&domain.ItemDetails{Item: fixtures.Ore, ShopQuantity: 5}, nil)

		rec := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/Ore_Iron", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"shop_quantity":5`)
	})

	t.Run("Invalid Case: unknown", func(t *testing.T) {
		mockSvc := NewMockEconomyService(t)
		mockSvc.On("ItemDetails", mock.Anything, "nope").Return(nil, domain.ErrItemNotFound)

		rec := httptest.NewRecorder()
		newRouter(mockSvc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/nope", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandleSelect(t *testing.T) {
	t.Run("Best Case", func(t *testing.T) {
		mockSvc := NewMockEconomyService(t)
		mockSvc.On("SelectItem", mock.Anything, "potion_health").
			Return(&domain.ItemDetails{Item: fixtures.Potion, InventoryQuantity: 2}, nil)

		req := httptest.NewRequest(http.MethodPost, "/select", strings.NewReader(`{"item_id":"potion_health"}`))
		rec := httptest.NewRecorder()
		HandleSelect(mockSvc)(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"inventory_quantity":2`)
	})

	t.Run("Invalid Case: missing id", func(t *testing.T) {
		mockSvc := NewMockEconomyService(t)

		req := httptest.NewRequest(http.MethodPost, "/select", strings.NewReader(`{}`))
		rec := httptest.NewRecorder()
		HandleSelect(mockSvc)(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		var res ValidationErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, "This field is required", res.Fields["itemid"])
	})

	t.Run("Best Case: clear", func(t *testing.T) {
		mockSvc := NewMockEconomyService(t)
		mockSvc.On("ClearSelection", mock.Anything).Return()

		rec := httptest.NewRecorder()
		HandleClearSelection(mockSvc)(rec, httptest.NewRequest(http.MethodDelete, "/select", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestHandleSnapshot(t *testing.T) {
	mockSvc := NewMockEconomyService(t)
	mockSvc.On("Snapshot", mock.Anything).Return(&economy.Snapshot{Currency: 12, MaxSlots: domain.MaxInventorySlots})

	rec := httptest.NewRecorder()
	HandleSnapshot(mockSvc)(rec, httptest.NewRequest(http.MethodGet, "/session", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"currency":12`)
	assert.NotContains(t, rec.Body.String(), `"selection"`)
}

func TestHandleHealthz(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleHealthz()(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"status":"ok"}`+"\n", rec.Body.String())
}

func TestHandleVersion(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleVersion("1.2.3")(rec, httptest.NewRequest(http.MethodGet, "/version", nil))

	assert.Contains(t, rec.Body.String(), `"version":"1.2.3"`)
}
