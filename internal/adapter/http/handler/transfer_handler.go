package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/tipbot/internal/adapter/http/dto"
	"github.com/iho/tipbot/internal/domain"
	"github.com/iho/tipbot/internal/infrastructure/metrics"
	"github.com/iho/tipbot/internal/usecase"
)

// TransferHandler serves the two money-moving flows.
type TransferHandler struct {
	directory usecase.AccountDirectory
	withdraws *usecase.WithdrawUseCase
	tips      *usecase.TipUseCase
	notifier  usecase.Notifier
	metrics   *metrics.Metrics
	logger    zerolog.Logger
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(
	directory usecase.AccountDirectory,
	withdraws *usecase.WithdrawUseCase,
	tips *usecase.TipUseCase,
	notifier usecase.Notifier,
	m *metrics.Metrics,
	logger zerolog.Logger,
) *TransferHandler {
	return &TransferHandler{
		directory: directory,
		withdraws: withdraws,
		tips:      tips,
		notifier:  notifier,
		metrics:   m,
		logger:    logger,
	}
}

func (h *TransferHandler) account(r *http.Request) *domain.Account {
	id := chi.URLParam(r, "id")
	if acc, ok := h.directory.Get(id); ok {
		return acc
	}
	return h.directory.Ensure(domain.Member{ID: id, Name: id})
}

// parseAmount converts a decimal tao string from a request into duffs.
func parseAmount(raw string) (int64, error) {
	tao, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, domain.ErrInvalidAmount
	}
	return domain.ToDuffs(tao)
}

// Withdraw runs the withdrawal flow and whispers the outcome to the
// account.
func (h *TransferHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	account := h.account(r)

	var req dto.WithdrawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if req.Address == "" {
		writeError(w, http.StatusBadRequest, "invalid request", "address is required")
		return
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid amount", err.Error())
		return
	}

	receipt, err := h.withdraws.Withdraw(r.Context(), account, amount, req.Address)
	if err != nil {
		h.flowFailed(r, "withdraw", err, account, nil, amount)
		writeError(w, mapDomainError(err), "withdrawal failed", err.Error())
		return
	}

	h.metrics.WithdrawalsCompleted.Inc()
	h.metrics.WithdrawalAmount.Observe(float64(receipt.Amount))

	h.whisper(r, account.ID, usecase.WithdrawalMessage(receipt))

	h.logger.Info().
		Str("operation", receipt.ID).
		Str("account", account.ID).
		Str("tx", receipt.TransactionID).
		Int64("duffs", receipt.Amount).
		Msg("withdrawal completed")

	writeJSON(w, http.StatusOK, dto.WithdrawalResponse{
		ID:            receipt.ID,
		AccountID:     receipt.AccountID,
		Amount:        domain.FormatTao(receipt.Amount),
		Address:       receipt.Address,
		TransactionID: receipt.TransactionID,
		ExplorerURL:   receipt.ExplorerURL,
	})
}

// Tip runs the internal transfer flow and fans the three result messages
// out to the chat platform.
func (h *TransferHandler) Tip(w http.ResponseWriter, r *http.Request) {
	sender := h.account(r)

	var req dto.TipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if req.To == "" {
		writeError(w, http.StatusBadRequest, "invalid request", "to is required")
		return
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid amount", err.Error())
		return
	}

	recipient, ok := h.directory.Get(req.To)
	if !ok {
		recipient = h.directory.Ensure(domain.Member{ID: req.To, Name: req.To})
	}

	result, err := h.tips.Tip(r.Context(), sender, recipient, amount)
	if err != nil {
		h.flowFailed(r, "tip", err, sender, recipient, amount)
		writeError(w, mapDomainError(err), "tip failed", err.Error())
		return
	}

	h.metrics.TipsCompleted.Inc()
	h.metrics.TipAmount.Observe(float64(result.Amount))

	if req.ChannelID != "" {
		h.announce(r, req.ChannelID, result.Public)
	}
	h.whisper(r, recipient.ID, result.ToRecipient)
	h.whisper(r, sender.ID, result.ToSender)

	h.logger.Info().
		Str("operation", result.ID).
		Str("from", sender.ID).
		Str("to", recipient.ID).
		Int64("duffs", result.Amount).
		Msg("tip completed")

	writeJSON(w, http.StatusOK, dto.TipResponse{
		ID:     result.ID,
		From:   result.SenderID,
		To:     result.RecipientID,
		Amount: domain.FormatTao(result.Amount),
	})
}

// flowFailed records the failure and tells the user what happened.
func (h *TransferHandler) flowFailed(r *http.Request, flow string, err error, actor, recipient *domain.Account, amount int64) {
	h.metrics.FlowErrors.WithLabelValues(flow, errorType(err)).Inc()
	if errors.Is(err, domain.ErrAccountBusy) {
		h.metrics.LockContention.Inc()
	}

	h.logger.Warn().Err(err).Str("flow", flow).Str("account", actor.ID).Msg("flow failed")

	h.whisper(r, actor.ID, usecase.FailureMessage(err, actor, recipient, amount))
}

func (h *TransferHandler) whisper(r *http.Request, accountID, text string) {
	if err := h.notifier.Whisper(r.Context(), accountID, text); err != nil {
		h.metrics.NotificationErrors.WithLabelValues("whisper").Inc()
		h.logger.Error().Err(err).Str("account", accountID).Msg("whisper failed")
		return
	}
	h.metrics.NotificationsSent.WithLabelValues("whisper").Inc()
}

func (h *TransferHandler) announce(r *http.Request, channelID, text string) {
	if err := h.notifier.Announce(r.Context(), channelID, text); err != nil {
		h.metrics.NotificationErrors.WithLabelValues("announce").Inc()
		h.logger.Error().Err(err).Str("channel", channelID).Msg("announce failed")
		return
	}
	h.metrics.NotificationsSent.WithLabelValues("announce").Inc()
}
