package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/iho/tipbot/internal/domain"
)

// WalletService is the coin daemon's account-mode wallet API. Amounts
// cross this boundary in tao.
type WalletService interface {
	GetBalance(ctx context.Context, accountID string, minConf int) (decimal.Decimal, error)
	SendFrom(ctx context.Context, accountID, toAddress string, amount decimal.Decimal) (string, error)
	Move(ctx context.Context, fromID, toID string, amount decimal.Decimal) (bool, error)
	GetAddressesByAccount(ctx context.Context, accountID string) ([]string, error)
	GetNewAddress(ctx context.Context, accountID string) (string, error)
	WalletPassphrase(ctx context.Context, passphrase string, unlockSeconds int) error
}

// Notifier delivers fully formatted text to the chat platform.
type Notifier interface {
	Announce(ctx context.Context, channelID, text string) error
	Whisper(ctx context.Context, accountID, text string) error
}

// AccountLocker serializes money-moving flows per account.
type AccountLocker interface {
	TryAcquire(accountID string) bool
	Release(accountID string)
}

// AccountDirectory resolves chat identities to accounts.
type AccountDirectory interface {
	Get(id string) (*domain.Account, bool)
	Ensure(member domain.Member) *domain.Account
	List() []*domain.Account
}

// MemberDirectory lists the chat platform's membership roster.
type MemberDirectory interface {
	ListMembers(ctx context.Context) ([]domain.Member, error)
}

// IDGenerator generates unique operation IDs.
type IDGenerator interface {
	Generate() string
}
