package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/iho/tipbot/internal/adapter/http/dto"
	"github.com/iho/tipbot/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAccountBusy):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrOutOfRange),
		errors.Is(err, domain.ErrSameAccount):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrBalanceUnavailable),
		errors.Is(err, domain.ErrWalletUnlockFailed),
		errors.Is(err, domain.ErrSendFailed),
		errors.Is(err, domain.ErrMoveFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// errorType returns the metric label for a flow error.
func errorType(err error) string {
	switch {
	case errors.Is(err, domain.ErrAccountBusy):
		return "account_busy"
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, domain.ErrBalanceUnavailable):
		return "balance_unavailable"
	case errors.Is(err, domain.ErrWalletUnlockFailed):
		return "wallet_unlock_failed"
	case errors.Is(err, domain.ErrSendFailed):
		return "send_failed"
	case errors.Is(err, domain.ErrMoveFailed):
		return "move_failed"
	case errors.Is(err, domain.ErrInvalidAmount), errors.Is(err, domain.ErrOutOfRange):
		return "invalid_amount"
	case errors.Is(err, domain.ErrSameAccount):
		return "same_account"
	default:
		return "internal"
	}
}
