package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/GEON1999/PomoFarm/internal/domain"
	"github.com/GEON1999/PomoFarm/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// bufferPool reduces allocations during JSON encoding
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 1024))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// Encode before writing headers so an encoding failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		logger.Error("Failed to encode JSON response", "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed command and writes the mapped user message
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" rejected", "error", err)
	}
	respondError(w, status, msg)
}

// User-facing error messages for service errors
const (
	// Generic messages
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgAuthFailedError     = "Authentication failed. Please check your API key."
	ErrMsgStorageErrorMsg     = "Could not access saved data. Please try again."

	// Economy messages
	ErrMsgItemNotFoundError    = "Item not found"
	ErrMsgNotEnoughItemsError  = "Not enough items"
	ErrMsgNotEnoughMoneyError  = "Not enough currency"
	ErrMsgNotSellableError     = "Item is not sellable"
	ErrMsgNotBuyableError      = "Item is not buyable"
	ErrMsgInvalidQuantityError = "Quantity is out of range"
	ErrMsgUnknownCurrencyError = "Unknown currency"

	// Gacha messages
	ErrMsgUnknownPoolError     = "Unknown gacha pool"
	ErrMsgUnknownPullTypeError = "Unknown pull type"
	ErrMsgEmptyPoolError       = "That gacha pool has no items"

	// Backup messages
	ErrMsgInvalidBackupError = "Backup file is not valid"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughMoneyError
	case errors.Is(err, domain.ErrInsufficientQuantity):
		return http.StatusBadRequest, ErrMsgNotEnoughItemsError
	case errors.Is(err, domain.ErrNotSellable):
		return http.StatusBadRequest, ErrMsgNotSellableError
	case errors.Is(err, domain.ErrNotBuyable):
		return http.StatusBadRequest, ErrMsgNotBuyableError
	case errors.Is(err, domain.ErrInvalidQuantity):
		return http.StatusBadRequest, ErrMsgInvalidQuantityError
	case errors.Is(err, domain.ErrUnknownCurrency):
		return http.StatusBadRequest, ErrMsgUnknownCurrencyError
	case errors.Is(err, domain.ErrUnknownPool):
		return http.StatusBadRequest, ErrMsgUnknownPoolError
	case errors.Is(err, domain.ErrUnknownPullType):
		return http.StatusBadRequest, ErrMsgUnknownPullTypeError
	case errors.Is(err, domain.ErrEmptyPool):
		return http.StatusConflict, ErrMsgEmptyPoolError
	case errors.Is(err, domain.ErrInvalidBackup):
		return http.StatusBadRequest, ErrMsgInvalidBackupError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	case errors.Is(err, domain.ErrStorageError):
		return http.StatusServiceUnavailable, ErrMsgStorageErrorMsg
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
