package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/bulbacards/packmint/internal/domain"
	"github.com/bulbacards/packmint/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent; nothing left but to log.
		slog.Error(LogMsgEncodeFailed, "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped status and message.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	statusCode, userMsg := mapServiceErrorToUserMessage(err)

	log := logger.FromContext(r.Context())
	if statusCode >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" rejected", "error", err)
	}

	respondError(w, statusCode, userMsg)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgAuthFailedError     = "Authentication failed. Please check your API key."
	ErrMsgTooManyRequestsErr  = "Too many requests. Please try again later."
	ErrMsgUnavailableError    = "Server is temporarily unavailable. Please try again later."

	ErrMsgInvalidAddressError  = "That is not a valid wallet address"
	ErrMsgInvalidAmountError   = "Mint at least one pack"
	ErrMsgAmountExceedsMaxErr  = "You can mint at most 10 packs at a time"
	ErrMsgNoPacksSelectedError = "Select at least one pack to open"
	ErrMsgNotAPackError        = "Only pack tokens (1-222) can be opened"
	ErrMsgDuplicatePackError   = "Each pack can only be selected once"
	ErrMsgPackNotOwnedError    = "You don't own that pack"

	ErrMsgChainReadError       = "Could not read from the blockchain. Please try again."
	ErrMsgMetadataError        = "Could not load token metadata. Please try again."
	ErrMsgSignerUnavailableErr = "This server cannot sign transactions"
	ErrMsgTransactionFailedErr = "Transaction failed"
	ErrMsgChainMismatchError   = "Connected to the wrong network"
)

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// messages users can act upon. errors.Is walks the whole wrap chain.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInvalidAddress):
		return http.StatusBadRequest, ErrMsgInvalidAddressError
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest, ErrMsgInvalidAmountError
	case errors.Is(err, domain.ErrAmountExceedsMax):
		return http.StatusBadRequest, ErrMsgAmountExceedsMaxErr
	case errors.Is(err, domain.ErrNoPacksSelected):
		return http.StatusBadRequest, ErrMsgNoPacksSelectedError
	case errors.Is(err, domain.ErrNotAPack):
		return http.StatusBadRequest, ErrMsgNotAPackError
	case errors.Is(err, domain.ErrDuplicatePack):
		return http.StatusBadRequest, ErrMsgDuplicatePackError
	case errors.Is(err, domain.ErrPackNotOwned):
		return http.StatusForbidden, ErrMsgPackNotOwnedError
	case errors.Is(err, domain.ErrSignerUnavailable):
		return http.StatusNotImplemented, ErrMsgSignerUnavailableErr
	case errors.Is(err, domain.ErrTransactionFailed):
		return http.StatusBadGateway, ErrMsgTransactionFailedErr
	case errors.Is(err, domain.ErrContractRead):
		return http.StatusBadGateway, ErrMsgChainReadError
	case errors.Is(err, domain.ErrMetadataFetch):
		return http.StatusBadGateway, ErrMsgMetadataError
	case errors.Is(err, domain.ErrChainMismatch):
		return http.StatusServiceUnavailable, ErrMsgChainMismatchError
	case errors.Is(err, domain.ErrInvalidPrice):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
