package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/LootLedger_Go/internal/domain"
	"github.com/osse101/LootLedger_Go/internal/logger"
	"github.com/osse101/LootLedger_Go/internal/metrics"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// bufferPool recycles encode buffers across responses
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// Encode before writing headers so an encode failure can still be a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgItemNotFoundError      = "Item not found"
	ErrMsgInvalidQuantityError   = "Invalid quantity"
	ErrMsgNoSelectionError       = "No item selected"
	ErrMsgInvalidCategoryError   = "Unknown category"
	ErrMsgInventoryFullError     = "Inventory is full"
	ErrMsgInsufficientStockError = "The shop does not have that many"
	ErrMsgNotEnoughMoneyError    = "Not enough money"
)

// mapServiceErrorToUserMessage maps domain errors to an HTTP status and a
// message safe to show the player.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrInvalidQuantity):
		return http.StatusBadRequest, ErrMsgInvalidQuantityError
	case errors.Is(err, domain.ErrNoSelection):
		return http.StatusBadRequest, ErrMsgNoSelectionError
	case errors.Is(err, domain.ErrInvalidCategory):
		return http.StatusBadRequest, ErrMsgInvalidCategoryError
	case errors.Is(err, domain.ErrInsufficientStock):
		return http.StatusConflict, ErrMsgInsufficientStockError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusConflict, ErrMsgNotEnoughMoneyError
	case errors.Is(err, domain.ErrInventoryFull):
		return http.StatusConflict, ErrMsgInventoryFullError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// rejectionReason labels a buy or sell failure for metrics
func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidQuantity):
		return ReasonInvalidQuantity
	case errors.Is(err, domain.ErrItemNotFound):
		return ReasonItemNotFound
	case errors.Is(err, domain.ErrNoSelection):
		return ReasonNoSelection
	case errors.Is(err, domain.ErrInsufficientStock):
		return ReasonInsufficientStock
	case errors.Is(err, domain.ErrInsufficientFunds):
		return ReasonInsufficientFunds
	case errors.Is(err, domain.ErrInventoryFull):
		return ReasonInventoryFull
	default:
		return ReasonInternal
	}
}

// respondServiceError logs err and writes the mapped response. Client
// errors log at warn, anything unmapped at error.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())
	status, msg := mapServiceErrorToUserMessage(err)
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgServiceError, "operation", opName, "error", err)
	} else {
		log.Warn(LogMsgRequestRejected, "operation", opName, "status", status, "error", err)
	}
	respondError(w, status, msg)
}

// respondTradeError is respondServiceError plus a rejection count
func respondTradeError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	metrics.RecordRejection(opName, rejectionReason(err))
	respondServiceError(w, r, opName, err)
}
