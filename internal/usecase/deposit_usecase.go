package usecase

import (
	"context"

	"github.com/iho/tipbot/internal/domain"
)

// DepositUseCase hands out deposit addresses.
type DepositUseCase struct {
	wallet WalletService
}

// NewDepositUseCase creates a new DepositUseCase.
func NewDepositUseCase(wallet WalletService) *DepositUseCase {
	return &DepositUseCase{wallet: wallet}
}

// Address returns the account's deposit address, creating one on first
// use. Accounts normally hold a single address.
func (uc *DepositUseCase) Address(ctx context.Context, account *domain.Account) (string, error) {
	addresses, err := uc.wallet.GetAddressesByAccount(ctx, account.ID)
	if err != nil {
		return "", err
	}

	if len(addresses) > 0 {
		return addresses[0], nil
	}

	return uc.wallet.GetNewAddress(ctx, account.ID)
}
