package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/iho/tipbot/internal/domain"
)

// walletUnlockSeconds is the timed-unlock window requested before a send.
// The window is enforced by the wallet daemon; the flow never assumes it
// outlives the single SendFrom call that follows.
const walletUnlockSeconds = 10

// WithdrawConfig holds the withdrawal flow's tunables.
type WithdrawConfig struct {
	// TxFee is the flat network fee in duffs charged per withdrawal.
	TxFee int64
	// WalletPassphrase unlocks the wallet before sending. Empty means the
	// wallet is not encrypted and no unlock is issued.
	WalletPassphrase string
	// ExplorerURL is the block-explorer base; the transaction ID is
	// appended for display only.
	ExplorerURL string
}

// WithdrawUseCase handles on-chain withdrawals.
type WithdrawUseCase struct {
	wallet   WalletService
	balances *BalanceUseCase
	locker   AccountLocker
	idGen    IDGenerator
	cfg      WithdrawConfig
}

// NewWithdrawUseCase creates a new WithdrawUseCase.
func NewWithdrawUseCase(
	wallet WalletService,
	balances *BalanceUseCase,
	locker AccountLocker,
	idGen IDGenerator,
	cfg WithdrawConfig,
) *WithdrawUseCase {
	return &WithdrawUseCase{
		wallet:   wallet,
		balances: balances,
		locker:   locker,
		idGen:    idGen,
		cfg:      cfg,
	}
}

// Withdraw sends amount duffs from the account to an on-chain address.
//
// Requesting exactly the settled balance is treated as withdraw-everything:
// the fee is taken out of the requested amount instead of failing the
// sufficiency check. The account lock is held for the whole flow and
// released on every exit path.
func (uc *WithdrawUseCase) Withdraw(ctx context.Context, account *domain.Account, amount int64, toAddress string) (*domain.WithdrawalReceipt, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	if !uc.locker.TryAcquire(account.ID) {
		return nil, domain.ErrAccountBusy
	}
	defer uc.locker.Release(account.ID)

	balance, err := uc.balances.Balance(ctx, account.ID, uc.balances.RequiredConfirmations())
	if err != nil {
		return nil, err
	}

	if amount == balance {
		amount = balance - uc.cfg.TxFee
		if amount <= 0 {
			return nil, domain.ErrInsufficientFunds
		}
	}

	if balance < amount+uc.cfg.TxFee {
		return nil, domain.ErrInsufficientFunds
	}

	if uc.cfg.WalletPassphrase != "" {
		if err := uc.wallet.WalletPassphrase(ctx, uc.cfg.WalletPassphrase, walletUnlockSeconds); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrWalletUnlockFailed, err)
		}
	}

	txID, err := uc.wallet.SendFrom(ctx, account.ID, toAddress, domain.ToTao(amount))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSendFailed, err)
	}

	return &domain.WithdrawalReceipt{
		ID:            uc.idGen.Generate(),
		AccountID:     account.ID,
		Amount:        amount,
		Address:       toAddress,
		TransactionID: txID,
		ExplorerURL:   uc.cfg.ExplorerURL + txID,
		CreatedAt:     time.Now().UTC(),
	}, nil
}
