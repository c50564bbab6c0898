package usecase

import (
	"context"
	"fmt"

	"github.com/iho/tipbot/internal/domain"
)

// DefaultRequiredConfirmations is the settled-balance confirmation depth.
const DefaultRequiredConfirmations = 6

// BalanceUseCase is the balance oracle: it reads the wallet at a given
// confirmation depth and classifies the result.
type BalanceUseCase struct {
	wallet                WalletService
	requiredConfirmations int
	highBalanceMark       int64
}

// NewBalanceUseCase creates a new BalanceUseCase. highBalanceMark is the
// duff amount at or above which a settled balance is flagged as high.
func NewBalanceUseCase(wallet WalletService, requiredConfirmations int, highBalanceMark int64) *BalanceUseCase {
	if requiredConfirmations <= 0 {
		requiredConfirmations = DefaultRequiredConfirmations
	}

	return &BalanceUseCase{
		wallet:                wallet,
		requiredConfirmations: requiredConfirmations,
		highBalanceMark:       highBalanceMark,
	}
}

// RequiredConfirmations returns the settled-view confirmation depth.
func (uc *BalanceUseCase) RequiredConfirmations() int {
	return uc.requiredConfirmations
}

// Balance fetches an account balance at minConf confirmations, in duffs.
// Transport failures surface as ErrBalanceUnavailable; they are reported
// to the caller, never retried.
func (uc *BalanceUseCase) Balance(ctx context.Context, accountID string, minConf int) (int64, error) {
	tao, err := uc.wallet.GetBalance(ctx, accountID, minConf)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrBalanceUnavailable, err)
	}

	duffs, err := domain.ToDuffs(tao)
	if err != nil {
		return 0, err
	}

	return duffs, nil
}

// Summary reads both the settled view (required confirmations) and the
// pending view (1 confirmation) of an account.
func (uc *BalanceUseCase) Summary(ctx context.Context, accountID string) (*domain.BalanceSummary, error) {
	confirmed, err := uc.Balance(ctx, accountID, uc.requiredConfirmations)
	if err != nil {
		return nil, err
	}

	unconfirmed, err := uc.Balance(ctx, accountID, 1)
	if err != nil {
		return nil, err
	}

	return &domain.BalanceSummary{
		Confirmed:   confirmed,
		Unconfirmed: unconfirmed,
		HighBalance: uc.highBalanceMark > 0 && confirmed >= uc.highBalanceMark,
	}, nil
}

// Line renders the human-readable balance line for an account, with a
// high-balance warning and pending-balance note where applicable.
func (uc *BalanceUseCase) Line(ctx context.Context, account *domain.Account) (string, error) {
	summary, err := uc.Summary(ctx, account.ID)
	if err != nil {
		return "", err
	}

	line := fmt.Sprintf("%s your balance is %s %s",
		account.Handle(), domain.FormatTao(summary.Confirmed), BaseCurrency)

	if summary.HighBalance {
		line += "\n*Warning: that's a lot to keep in a tipping wallet, consider withdrawing some.*"
	}

	if summary.HasPending() {
		line += fmt.Sprintf("\nUnconfirmed (less than %d confirmations): %s %s",
			uc.requiredConfirmations, domain.FormatTao(summary.Unconfirmed), BaseCurrency)
	}

	return line, nil
}
