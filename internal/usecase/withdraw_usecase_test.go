package usecase_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/tipbot/internal/domain"
	"github.com/iho/tipbot/internal/lock"
	"github.com/iho/tipbot/internal/usecase"
	"github.com/iho/tipbot/internal/usecase/mocks"
)

const testExplorerURL = "https://chainz.cryptoid.info/tao/tx.dws?"

func newWithdrawFixture(wallet *mocks.MockWalletService, fee int64) (*usecase.WithdrawUseCase, *lock.Keyed) {
	locker := lock.NewKeyed()
	balances := usecase.NewBalanceUseCase(wallet, 6, 0)
	uc := usecase.NewWithdrawUseCase(wallet, balances, locker, mocks.NewMockIDGenerator(), usecase.WithdrawConfig{
		TxFee:       fee,
		ExplorerURL: testExplorerURL,
	})
	return uc, locker
}

func TestWithdraw(t *testing.T) {
	account := &domain.Account{ID: "U1", Name: "alice"}

	tests := []struct {
		name       string
		balanceTao string
		amount     int64
		fee        int64
		wantErr    error
		wantSent   string // tao amount handed to sendFrom
	}{
		{
			name:       "plain withdrawal",
			balanceTao: "2",
			amount:     100000000,
			fee:        10000,
			wantSent:   "1",
		},
		{
			name:       "withdraw everything subtracts the fee",
			balanceTao: "1",
			amount:     100000000,
			fee:        10000,
			wantSent:   "0.9999",
		},
		{
			name:       "insufficient funds",
			balanceTao: "0.000005",
			amount:     1000,
			fee:        0,
			wantErr:    domain.ErrInsufficientFunds,
		},
		{
			name:       "balance covers amount but not the fee",
			balanceTao: "0.00001",
			amount:     999,
			fee:        10,
			wantErr:    domain.ErrInsufficientFunds,
		},
		{
			name:       "withdraw everything below the fee",
			balanceTao: "0.00000005",
			amount:     5,
			fee:        10000,
			wantErr:    domain.ErrInsufficientFunds,
		},
		{
			name:       "zero amount",
			balanceTao: "1",
			amount:     0,
			fee:        10000,
			wantErr:    domain.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wallet := mocks.NewMockWalletService()
			wallet.SetBalance(account.ID, decimal.RequireFromString(tt.balanceTao))

			var sent decimal.Decimal
			wallet.SendFromFunc = func(ctx context.Context, accountID, toAddress string, amount decimal.Decimal) (string, error) {
				sent = amount
				return "tx-1", nil
			}

			uc, locker := newWithdrawFixture(wallet, tt.fee)

			receipt, err := uc.Withdraw(context.Background(), account, tt.amount, "XyzAddress")

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				if wallet.SendCalls != 0 {
					t.Error("no send must be attempted on a failed validation")
				}
			} else {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if !sent.Equal(decimal.RequireFromString(tt.wantSent)) {
					t.Errorf("expected %s tao sent, got %s", tt.wantSent, sent)
				}
				if receipt.ExplorerURL != testExplorerURL+"tx-1" {
					t.Errorf("unexpected explorer URL: %s", receipt.ExplorerURL)
				}
			}

			// The lock must be free again on every exit path.
			if !locker.TryAcquire(account.ID) {
				t.Error("account lock leaked")
			}
		})
	}
}

func TestWithdrawAccountBusy(t *testing.T) {
	account := &domain.Account{ID: "U1", Name: "alice"}
	wallet := mocks.NewMockWalletService()
	wallet.SetBalance(account.ID, decimal.NewFromInt(10))

	uc, locker := newWithdrawFixture(wallet, 10000)

	if !locker.TryAcquire(account.ID) {
		t.Fatal("setup: could not pre-acquire lock")
	}

	if _, err := uc.Withdraw(context.Background(), account, 100000000, "XyzAddress"); !errors.Is(err, domain.ErrAccountBusy) {
		t.Fatalf("expected ErrAccountBusy, got %v", err)
	}

	locker.Release(account.ID)

	if _, err := uc.Withdraw(context.Background(), account, 100000000, "XyzAddress"); err != nil {
		t.Fatalf("expected withdrawal to succeed after release, got %v", err)
	}
}

func TestWithdrawSerializesPerAccount(t *testing.T) {
	account := &domain.Account{ID: "U1", Name: "alice"}
	wallet := mocks.NewMockWalletService()
	wallet.SetBalance(account.ID, decimal.NewFromInt(10))

	inFirstSend := make(chan struct{})
	finishFirstSend := make(chan struct{})
	wallet.SendFromFunc = func(ctx context.Context, accountID, toAddress string, amount decimal.Decimal) (string, error) {
		close(inFirstSend)
		<-finishFirstSend
		return "tx-1", nil
	}

	uc, _ := newWithdrawFixture(wallet, 10000)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if _, err := uc.Withdraw(context.Background(), account, 100000000, "XyzAddress"); err != nil {
			t.Errorf("first withdrawal failed: %v", err)
		}
	}()

	<-inFirstSend

	// Second call while the first is in flight observes the busy lock.
	if _, err := uc.Withdraw(context.Background(), account, 100000000, "XyzAddress"); !errors.Is(err, domain.ErrAccountBusy) {
		t.Fatalf("expected ErrAccountBusy, got %v", err)
	}

	close(finishFirstSend)
	wg.Wait()

	wallet.SendFromFunc = nil

	// Third call after completion succeeds.
	if _, err := uc.Withdraw(context.Background(), account, 100000000, "XyzAddress"); err != nil {
		t.Fatalf("expected third withdrawal to succeed, got %v", err)
	}
}

func TestWithdrawUnlocksEncryptedWallet(t *testing.T) {
	account := &domain.Account{ID: "U1", Name: "alice"}
	wallet := mocks.NewMockWalletService()
	wallet.SetBalance(account.ID, decimal.NewFromInt(10))

	var unlockSeconds int
	wallet.WalletPassphraseFunc = func(ctx context.Context, passphrase string, seconds int) error {
		if passphrase != "hunter2" {
			t.Errorf("unexpected passphrase %q", passphrase)
		}
		unlockSeconds = seconds
		return nil
	}

	locker := lock.NewKeyed()
	balances := usecase.NewBalanceUseCase(wallet, 6, 0)
	uc := usecase.NewWithdrawUseCase(wallet, balances, locker, mocks.NewMockIDGenerator(), usecase.WithdrawConfig{
		TxFee:            10000,
		WalletPassphrase: "hunter2",
		ExplorerURL:      testExplorerURL,
	})

	if _, err := uc.Withdraw(context.Background(), account, 100000000, "XyzAddress"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if unlockSeconds != 10 {
		t.Errorf("expected a 10 second unlock window, got %d", unlockSeconds)
	}
}

func TestWithdrawUnlockFailure(t *testing.T) {
	account := &domain.Account{ID: "U1", Name: "alice"}
	wallet := mocks.NewMockWalletService()
	wallet.SetBalance(account.ID, decimal.NewFromInt(10))
	wallet.WalletPassphraseFunc = func(ctx context.Context, passphrase string, seconds int) error {
		return errors.New("wrong passphrase")
	}

	locker := lock.NewKeyed()
	balances := usecase.NewBalanceUseCase(wallet, 6, 0)
	uc := usecase.NewWithdrawUseCase(wallet, balances, locker, mocks.NewMockIDGenerator(), usecase.WithdrawConfig{
		TxFee:            10000,
		WalletPassphrase: "hunter2",
	})

	_, err := uc.Withdraw(context.Background(), account, 100000000, "XyzAddress")
	if !errors.Is(err, domain.ErrWalletUnlockFailed) {
		t.Fatalf("expected ErrWalletUnlockFailed, got %v", err)
	}
	if wallet.SendCalls != 0 {
		t.Error("send must not be attempted when the unlock fails")
	}
	if !locker.TryAcquire(account.ID) {
		t.Error("account lock leaked")
	}
}

func TestWithdrawSendFailure(t *testing.T) {
	account := &domain.Account{ID: "U1", Name: "alice"}
	wallet := mocks.NewMockWalletService()
	wallet.SetBalance(account.ID, decimal.NewFromInt(10))
	wallet.SendFromFunc = func(ctx context.Context, accountID, toAddress string, amount decimal.Decimal) (string, error) {
		return "", errors.New("daemon unreachable")
	}

	uc, locker := newWithdrawFixture(wallet, 10000)

	_, err := uc.Withdraw(context.Background(), account, 100000000, "XyzAddress")
	if !errors.Is(err, domain.ErrSendFailed) {
		t.Fatalf("expected ErrSendFailed, got %v", err)
	}
	if !locker.TryAcquire(account.ID) {
		t.Error("account lock leaked")
	}
}

func TestWithdrawBalanceUnavailable(t *testing.T) {
	account := &domain.Account{ID: "U1", Name: "alice"}
	wallet := mocks.NewMockWalletService()
	wallet.GetBalanceFunc = func(ctx context.Context, accountID string, minConf int) (decimal.Decimal, error) {
		return decimal.Zero, errors.New("rpc timeout")
	}

	uc, locker := newWithdrawFixture(wallet, 10000)

	_, err := uc.Withdraw(context.Background(), account, 100000000, "XyzAddress")
	if !errors.Is(err, domain.ErrBalanceUnavailable) {
		t.Fatalf("expected ErrBalanceUnavailable, got %v", err)
	}
	if !strings.Contains(err.Error(), "rpc timeout") {
		t.Errorf("expected wrapped transport error, got %v", err)
	}
	if !locker.TryAcquire(account.ID) {
		t.Error("account lock leaked")
	}
}
