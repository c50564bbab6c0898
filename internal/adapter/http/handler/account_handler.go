package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/tipbot/internal/adapter/http/dto"
	"github.com/iho/tipbot/internal/domain"
	"github.com/iho/tipbot/internal/infrastructure/metrics"
	"github.com/iho/tipbot/internal/usecase"
)

// AccountHandler serves account lookups, balances and deposit addresses.
type AccountHandler struct {
	directory usecase.AccountDirectory
	balances  *usecase.BalanceUseCase
	deposits  *usecase.DepositUseCase
	metrics   *metrics.Metrics
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(
	directory usecase.AccountDirectory,
	balances *usecase.BalanceUseCase,
	deposits *usecase.DepositUseCase,
	m *metrics.Metrics,
) *AccountHandler {
	return &AccountHandler{
		directory: directory,
		balances:  balances,
		deposits:  deposits,
		metrics:   m,
	}
}

// account resolves the account for a request, creating it on first
// interaction the way a chat command would.
func (h *AccountHandler) account(r *http.Request) *domain.Account {
	id := chi.URLParam(r, "id")
	if acc, ok := h.directory.Get(id); ok {
		return acc
	}
	return h.directory.Ensure(domain.Member{ID: id, Name: id})
}

// List returns all roster accounts.
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts := h.directory.List()

	resp := make([]dto.AccountResponse, 0, len(accounts))
	for _, acc := range accounts {
		resp = append(resp, dto.AccountResponse{
			ID:      acc.ID,
			Name:    acc.Name,
			IsAdmin: acc.IsAdmin,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

// Balance returns both oracle views of an account balance.
func (h *AccountHandler) Balance(w http.ResponseWriter, r *http.Request) {
	account := h.account(r)

	summary, err := h.balances.Summary(r.Context(), account.ID)
	if err != nil {
		writeError(w, mapDomainError(err), "balance check failed", err.Error())
		return
	}

	h.metrics.BalanceChecks.Inc()

	writeJSON(w, http.StatusOK, dto.BalanceResponse{
		AccountID:   account.ID,
		Confirmed:   domain.FormatTao(summary.Confirmed),
		Unconfirmed: domain.FormatTao(summary.Unconfirmed),
		HighBalance: summary.HighBalance,
	})
}

// DepositAddress returns the account's deposit address, creating one on
// first use.
func (h *AccountHandler) DepositAddress(w http.ResponseWriter, r *http.Request) {
	account := h.account(r)

	address, err := h.deposits.Address(r.Context(), account)
	if err != nil {
		writeError(w, http.StatusBadGateway, "deposit address unavailable", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DepositAddressResponse{
		AccountID: account.ID,
		Address:   address,
	})
}
