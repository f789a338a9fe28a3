package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/osse101/LootLedger_Go/internal/domain"
	"github.com/osse101/LootLedger_Go/internal/logger"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON request body into req and runs
// its validation tags. On failure the 400 response has already been
// written and the handler should return.
//
// A quantity that is not a JSON integer fails here with an invalid
// quantity response, and the returned error wraps domain.ErrInvalidQuantity.
//
// Example usage:
//
//	var req TradeRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Buy"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(fmt.Sprintf(LogMsgDecodeFailedFmt, actionName), "error", err)
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field == FieldQuantity {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidQuantityError)
			return fmt.Errorf("%w: %v", domain.ErrInvalidQuantity, err)
		}
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf(LogMsgRequestDecodedFmt, actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		log.Warn(LogMsgValidationFailed, "action", actionName, "error", err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// decodeRejectionReason labels a request that never reached the service
func decodeRejectionReason(err error) string {
	if errors.Is(err, domain.ErrInvalidQuantity) {
		return ReasonInvalidQuantity
	}
	return ReasonInvalidRequest
}

// GetOptionalQueryParam retrieves an optional query parameter from the request,
// returning defaultValue when it is missing or empty.
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// categoryFilter reads the optional category query parameter. An empty
// category means no filter. On a bad value the 400 has been written and
// ok is false.
func categoryFilter(w http.ResponseWriter, r *http.Request) (domain.Category, bool) {
	raw := GetOptionalQueryParam(r, QueryParamCategory, "")
	if raw == "" {
		return "", true
	}
	category, err := domain.ParseCategory(raw)
	if err != nil {
		logger.FromContext(r.Context()).Warn(LogMsgRequestRejected, "category", raw, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidCategoryParam)
		return "", false
	}
	return category, true
}
