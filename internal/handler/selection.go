package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/LootLedger_Go/internal/economy"
	"github.com/osse101/LootLedger_Go/internal/logger"
)

// SelectRequest names the item to select
type SelectRequest struct {
	ItemID string `json:"item_id" validate:"required,max=64,itemid"`
}

// HandleSelect selects an item
// @Summary Select an item
// @Description Make an item the default target of buy and sell, returning its details
// @Tags selection
// @Accept json
// @Produce json
// @Param request body SelectRequest true "Item id"
// @Success 200 {object} domain.ItemDetails
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /select [post]
func HandleSelect(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SelectRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Select"); err != nil {
			return
		}

		details, err := svc.SelectItem(r.Context(), req.ItemID)
		if err != nil {
			respondServiceError(w, r, OpSelect, err)
			return
		}

		logger.FromContext(r.Context()).Debug(LogMsgSelectionUpdated, "item", details.Item.ID)
		respondJSON(w, http.StatusOK, details)
	}
}

// HandleClearSelection clears the selection
// @Summary Clear selection
// @Tags selection
// @Success 204
// @Router /select [delete]
func HandleClearSelection(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc.ClearSelection(r.Context())
		logger.FromContext(r.Context()).Debug(LogMsgSelectionCleared)
		w.WriteHeader(http.StatusNoContent)
	}
}

// HandleItemDetails returns one item with the held and shop quantities
// @Summary Item details
// @Tags catalog
// @Produce json
// @Param itemID path string true "Item id"
// @Success 200 {object} domain.ItemDetails
// @Failure 404 {object} ErrorResponse
// @Router /items/{itemID} [get]
func HandleItemDetails(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID := chi.URLParam(r, URLParamItemID)

		details, err := svc.ItemDetails(r.Context(), itemID)
		if err != nil {
			respondServiceError(w, r, OpItemDetails, err)
			return
		}

		respondJSON(w, http.StatusOK, details)
	}
}
