package handler

import (
	"net/http"

	"github.com/osse101/LootLedger_Go/internal/economy"
	"github.com/osse101/LootLedger_Go/internal/logger"
	"github.com/osse101/LootLedger_Go/internal/metrics"
)

// TradeRequest is the body of buy and sell. An empty item id trades the
// selected item.
type TradeRequest struct {
	ItemID   string `json:"item_id" validate:"max=64,itemid"`
	Quantity int    `json:"quantity"`
}

// HandleGather runs one loot pass
// @Summary Gather loot
// @Description Draw a quantity of every catalog item into the inventory until it is full
// @Tags economy
// @Produce json
// @Success 200 {object} economy.GatherResult
// @Failure 500 {object} ErrorResponse
// @Router /gather [post]
func HandleGather(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		res, err := svc.Gather(r.Context())
		if err != nil {
			respondServiceError(w, r, OpGather, err)
			return
		}

		log.Info(LogMsgGatherCompleted, "draws", len(res.Draws), "halted", res.Halted)
		respondJSON(w, http.StatusOK, res)
	}
}

// HandleBuy buys items from the shop
// @Summary Buy items
// @Description Move items from the shop into the inventory for their buying price
// @Tags economy
// @Accept json
// @Produce json
// @Param request body TradeRequest true "Item and quantity"
// @Success 200 {object} economy.BuyResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /buy [post]
func HandleBuy(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req TradeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Buy"); err != nil {
			metrics.RecordRejection(OpBuy, decodeRejectionReason(err))
			return
		}

		res, err := svc.Buy(r.Context(), req.ItemID, req.Quantity)
		if err != nil {
			respondTradeError(w, r, OpBuy, err)
			return
		}

		log.Info(LogMsgBuyCompleted, "item", res.Item.ID, "quantity", res.Quantity, "balance", res.Balance)
		respondJSON(w, http.StatusOK, res)
	}
}

// HandleSell sells items to the shop
// @Summary Sell items
// @Description Move items from the inventory to the shop for their selling price
// @Tags economy
// @Accept json
// @Produce json
// @Param request body TradeRequest true "Item and quantity"
// @Success 200 {object} economy.SellResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /sell [post]
func HandleSell(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req TradeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Sell"); err != nil {
			metrics.RecordRejection(OpSell, decodeRejectionReason(err))
			return
		}

		res, err := svc.Sell(r.Context(), req.ItemID, req.Quantity)
		if err != nil {
			respondTradeError(w, r, OpSell, err)
			return
		}

		log.Info(LogMsgSellCompleted, "item", res.Item.ID, "quantity", res.Quantity, "balance", res.Balance)
		respondJSON(w, http.StatusOK, res)
	}
}
