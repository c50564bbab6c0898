package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/iho/tipbot/internal/domain"
)

// TipUseCase handles internal (off-chain) transfers between accounts.
type TipUseCase struct {
	wallet   WalletService
	balances *BalanceUseCase
	locker   AccountLocker
	idGen    IDGenerator
}

// NewTipUseCase creates a new TipUseCase.
func NewTipUseCase(wallet WalletService, balances *BalanceUseCase, locker AccountLocker, idGen IDGenerator) *TipUseCase {
	return &TipUseCase{
		wallet:   wallet,
		balances: balances,
		locker:   locker,
		idGen:    idGen,
	}
}

// Tip moves amount duffs from sender to recipient inside the wallet
// ledger. No fee applies. The wallet's move can decline softly (false)
// or fail hard; both surface as ErrMoveFailed.
//
// On success the result carries the three chat messages: the public
// acknowledgement, the recipient's notice, and the sender's notice with a
// freshly recomputed balance line. A failed balance refresh only drops
// the balance portion of the sender's message.
func (uc *TipUseCase) Tip(ctx context.Context, sender, recipient *domain.Account, amount int64) (*domain.TipResult, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	if sender.ID == recipient.ID {
		return nil, domain.ErrSameAccount
	}

	if !uc.locker.TryAcquire(sender.ID) {
		return nil, domain.ErrAccountBusy
	}
	defer uc.locker.Release(sender.ID)

	balance, err := uc.balances.Balance(ctx, sender.ID, uc.balances.RequiredConfirmations())
	if err != nil {
		return nil, err
	}

	if balance < amount {
		return nil, domain.ErrInsufficientFunds
	}

	ok, err := uc.wallet.Move(ctx, sender.ID, recipient.ID, domain.ToTao(amount))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMoveFailed, err)
	}
	if !ok {
		return nil, domain.ErrMoveFailed
	}

	// Best effort: the tip already went through, a stale balance line is
	// not worth failing over.
	balanceLine, err := uc.balances.Line(ctx, sender)
	if err != nil {
		balanceLine = ""
	}

	return &domain.TipResult{
		ID:          uc.idGen.Generate(),
		SenderID:    sender.ID,
		RecipientID: recipient.ID,
		Amount:      amount,
		Public:      tipPublicMessage(sender, recipient),
		ToRecipient: tipRecipientMessage(sender, recipient, amount),
		ToSender:    tipSenderMessage(sender, balanceLine),
		CreatedAt:   time.Now().UTC(),
	}, nil
}
