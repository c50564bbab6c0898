package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/tipbot/internal/domain"
	"github.com/iho/tipbot/internal/lock"
	"github.com/iho/tipbot/internal/usecase"
	"github.com/iho/tipbot/internal/usecase/mocks"
)

func newTipFixture(wallet *mocks.MockWalletService) (*usecase.TipUseCase, *lock.Keyed) {
	locker := lock.NewKeyed()
	balances := usecase.NewBalanceUseCase(wallet, 6, 0)
	return usecase.NewTipUseCase(wallet, balances, locker, mocks.NewMockIDGenerator()), locker
}

func TestTipSuccess(t *testing.T) {
	sender := &domain.Account{ID: "U1", Name: "alice"}
	recipient := &domain.Account{ID: "U2", Name: "bob"}

	wallet := mocks.NewMockWalletService()
	wallet.SetBalance(sender.ID, decimal.NewFromInt(5))

	uc, locker := newTipFixture(wallet)

	// 1.5 tao
	result, err := uc.Tip(context.Background(), sender, recipient, 150000000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Public == "" || result.ToRecipient == "" || result.ToSender == "" {
		t.Fatalf("expected all three messages, got %+v", result)
	}

	if !strings.Contains(result.Public, sender.Handle()) || !strings.Contains(result.Public, recipient.Handle()) {
		t.Errorf("public message must name both parties: %q", result.Public)
	}

	if !strings.Contains(result.ToRecipient, "1.50000000") {
		t.Errorf("recipient notice must carry the amount: %q", result.ToRecipient)
	}

	// The sender's notice embeds the balance recomputed after the move:
	// 5 - 1.5 = 3.5 tao.
	if !strings.Contains(result.ToSender, "3.50000000") {
		t.Errorf("sender notice must carry the post-move balance: %q", result.ToSender)
	}

	if !locker.TryAcquire(sender.ID) {
		t.Error("sender lock leaked")
	}
}

func TestTipInsufficientFunds(t *testing.T) {
	sender := &domain.Account{ID: "U1", Name: "alice"}
	recipient := &domain.Account{ID: "U2", Name: "bob"}

	wallet := mocks.NewMockWalletService()
	wallet.SetBalance(sender.ID, decimal.RequireFromString("0.000005")) // 500 duffs

	uc, locker := newTipFixture(wallet)

	_, err := uc.Tip(context.Background(), sender, recipient, 1000)
	if !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if wallet.MoveCalls != 0 {
		t.Error("no move must be attempted on insufficient funds")
	}
	if !locker.TryAcquire(sender.ID) {
		t.Error("sender lock leaked")
	}
}

func TestTipMoveDeclined(t *testing.T) {
	sender := &domain.Account{ID: "U1", Name: "alice"}
	recipient := &domain.Account{ID: "U2", Name: "bob"}

	wallet := mocks.NewMockWalletService()
	wallet.SetBalance(sender.ID, decimal.NewFromInt(5))

	tests := []struct {
		name string
		move func(ctx context.Context, fromID, toID string, amount decimal.Decimal) (bool, error)
	}{
		{
			name: "soft decline",
			move: func(ctx context.Context, fromID, toID string, amount decimal.Decimal) (bool, error) {
				return false, nil
			},
		},
		{
			name: "transport error",
			move: func(ctx context.Context, fromID, toID string, amount decimal.Decimal) (bool, error) {
				return false, errors.New("connection refused")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wallet.MoveFunc = tt.move
			uc, locker := newTipFixture(wallet)

			_, err := uc.Tip(context.Background(), sender, recipient, 100000000)
			if !errors.Is(err, domain.ErrMoveFailed) {
				t.Fatalf("expected ErrMoveFailed, got %v", err)
			}

			// Both flavors read the same to the user, naming both parties.
			msg := usecase.FailureMessage(err, sender, recipient, 100000000)
			if !strings.Contains(msg, sender.Handle()) || !strings.Contains(msg, recipient.Handle()) {
				t.Errorf("failure message must name both parties: %q", msg)
			}

			if !locker.TryAcquire(sender.ID) {
				t.Error("sender lock leaked")
			}
		})
	}
}

func TestTipBalanceRefreshDegrades(t *testing.T) {
	sender := &domain.Account{ID: "U1", Name: "alice"}
	recipient := &domain.Account{ID: "U2", Name: "bob"}

	wallet := mocks.NewMockWalletService()
	wallet.SetBalance(sender.ID, decimal.NewFromInt(5))

	calls := 0
	wallet.GetBalanceFunc = func(ctx context.Context, accountID string, minConf int) (decimal.Decimal, error) {
		calls++
		if calls == 1 {
			return decimal.NewFromInt(5), nil
		}
		// The refresh after the move fails; the tip itself already went
		// through and must still succeed.
		return decimal.Zero, errors.New("rpc timeout")
	}

	uc, _ := newTipFixture(wallet)

	result, err := uc.Tip(context.Background(), sender, recipient, 100000000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(result.ToSender, "balance") {
		t.Errorf("sender notice must omit the balance line on a failed refresh: %q", result.ToSender)
	}
}

func TestTipValidation(t *testing.T) {
	sender := &domain.Account{ID: "U1", Name: "alice"}
	recipient := &domain.Account{ID: "U2", Name: "bob"}

	wallet := mocks.NewMockWalletService()
	uc, _ := newTipFixture(wallet)

	if _, err := uc.Tip(context.Background(), sender, recipient, 0); !errors.Is(err, domain.ErrInvalidAmount) {
		t.Errorf("expected ErrInvalidAmount for zero, got %v", err)
	}

	if _, err := uc.Tip(context.Background(), sender, sender, 100); !errors.Is(err, domain.ErrSameAccount) {
		t.Errorf("expected ErrSameAccount, got %v", err)
	}
}

func TestTipAccountBusy(t *testing.T) {
	sender := &domain.Account{ID: "U1", Name: "alice"}
	recipient := &domain.Account{ID: "U2", Name: "bob"}

	wallet := mocks.NewMockWalletService()
	wallet.SetBalance(sender.ID, decimal.NewFromInt(5))

	uc, locker := newTipFixture(wallet)
	locker.TryAcquire(sender.ID)

	if _, err := uc.Tip(context.Background(), sender, recipient, 100); !errors.Is(err, domain.ErrAccountBusy) {
		t.Fatalf("expected ErrAccountBusy, got %v", err)
	}
	if wallet.MoveCalls != 0 {
		t.Error("no move must be attempted while the account is busy")
	}
}
