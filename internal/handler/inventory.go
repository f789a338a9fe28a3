package handler

import (
	"net/http"

	"github.com/osse101/LootLedger_Go/internal/domain"
	"github.com/osse101/LootLedger_Go/internal/economy"
)

// InventoryResponse lists the held entries in insertion order
type InventoryResponse struct {
	Items    []domain.InventoryEntry `json:"items"`
	Weight   float64                 `json:"weight"`
	Slots    int                     `json:"slots"`
	MaxSlots int                     `json:"max_slots"`
}

// CurrencyResponse carries the wallet balance
type CurrencyResponse struct {
	Balance int `json:"balance"`
}

// HandleGetInventory returns the inventory
// @Summary Get inventory
// @Tags inventory
// @Produce json
// @Success 200 {object} InventoryResponse
// @Router /inventory [get]
func HandleGetInventory(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items := svc.InventoryList(r.Context())
		respondJSON(w, http.StatusOK, InventoryResponse{
			Items:    items,
			Weight:   svc.InventoryWeight(r.Context()),
			Slots:    len(items),
			MaxSlots: domain.MaxInventorySlots,
		})
	}
}

// HandleGetCurrency returns the balance
// @Summary Get currency balance
// @Tags inventory
// @Produce json
// @Success 200 {object} CurrencyResponse
// @Router /currency [get]
func HandleGetCurrency(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, CurrencyResponse{Balance: svc.CurrencyBalance(r.Context())})
	}
}

// HandleGetShop lists shop stock, optionally for one category
// @Summary Get shop stock
// @Description Zero-stock rows are included
// @Tags shop
// @Produce json
// @Param category query string false "Materials, Weapons, Consumables or Treasure"
// @Success 200 {array} domain.ShopEntry
// @Failure 400 {object} ErrorResponse
// @Router /shop [get]
func HandleGetShop(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category, ok := categoryFilter(w, r)
		if !ok {
			return
		}

		rows, err := svc.ShopListByCategory(r.Context(), category)
		if err != nil {
			respondServiceError(w, r, OpShopList, err)
			return
		}
		respondJSON(w, http.StatusOK, rows)
	}
}

// HandleListItems lists catalog definitions
// @Summary List catalog items
// @Tags catalog
// @Produce json
// @Param category query string false "Materials, Weapons, Consumables or Treasure"
// @Success 200 {array} domain.Item
// @Failure 400 {object} ErrorResponse
// @Router /items [get]
func HandleListItems(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category, ok := categoryFilter(w, r)
		if !ok {
			return
		}

		items, err := svc.CatalogItems(r.Context(), category)
		if err != nil {
			respondServiceError(w, r, OpCatalogList, err)
			return
		}
		respondJSON(w, http.StatusOK, items)
	}
}

// HandleSnapshot returns the whole session in one consistent read
// @Summary Session snapshot
// @Tags inventory
// @Produce json
// @Success 200 {object} economy.Snapshot
// @Router /session [get]
func HandleSnapshot(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.Snapshot(r.Context()))
	}
}
