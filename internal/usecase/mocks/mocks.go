package mocks

import (
	"context"
	"strconv"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/iho/tipbot/internal/domain"
)

// MockWalletService is a mock implementation of WalletService backed by
// in-memory account balances, in tao.
type MockWalletService struct {
	mu       sync.RWMutex
	balances map[string]decimal.Decimal

	GetBalanceFunc            func(ctx context.Context, accountID string, minConf int) (decimal.Decimal, error)
	SendFromFunc              func(ctx context.Context, accountID, toAddress string, amount decimal.Decimal) (string, error)
	MoveFunc                  func(ctx context.Context, fromID, toID string, amount decimal.Decimal) (bool, error)
	GetAddressesByAccountFunc func(ctx context.Context, accountID string) ([]string, error)
	GetNewAddressFunc         func(ctx context.Context, accountID string) (string, error)
	WalletPassphraseFunc      func(ctx context.Context, passphrase string, unlockSeconds int) error

	SendCalls int
	MoveCalls int
}

func NewMockWalletService() *MockWalletService {
	return &MockWalletService{
		balances: make(map[string]decimal.Decimal),
	}
}

// SetBalance seeds the default balance returned for an account.
func (m *MockWalletService) SetBalance(accountID string, tao decimal.Decimal) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.balances[accountID] = tao
}

func (m *MockWalletService) GetBalance(ctx context.Context, accountID string, minConf int) (decimal.Decimal, error) {
	if m.GetBalanceFunc != nil {
		return m.GetBalanceFunc(ctx, accountID, minConf)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.balances[accountID], nil
}

func (m *MockWalletService) SendFrom(ctx context.Context, accountID, toAddress string, amount decimal.Decimal) (string, error) {
	m.mu.Lock()
	m.SendCalls++
	m.mu.Unlock()
	if m.SendFromFunc != nil {
		return m.SendFromFunc(ctx, accountID, toAddress, amount)
	}
	return "mock-tx-id", nil
}

func (m *MockWalletService) Move(ctx context.Context, fromID, toID string, amount decimal.Decimal) (bool, error) {
	m.mu.Lock()
	m.MoveCalls++
	m.mu.Unlock()
	if m.MoveFunc != nil {
		return m.MoveFunc(ctx, fromID, toID, amount)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.balances[fromID] = m.balances[fromID].Sub(amount)
	m.balances[toID] = m.balances[toID].Add(amount)
	return true, nil
}

func (m *MockWalletService) GetAddressesByAccount(ctx context.Context, accountID string) ([]string, error) {
	if m.GetAddressesByAccountFunc != nil {
		return m.GetAddressesByAccountFunc(ctx, accountID)
	}
	return nil, nil
}

func (m *MockWalletService) GetNewAddress(ctx context.Context, accountID string) (string, error) {
	if m.GetNewAddressFunc != nil {
		return m.GetNewAddressFunc(ctx, accountID)
	}
	return "mock-address-" + accountID, nil
}

func (m *MockWalletService) WalletPassphrase(ctx context.Context, passphrase string, unlockSeconds int) error {
	if m.WalletPassphraseFunc != nil {
		return m.WalletPassphraseFunc(ctx, passphrase, unlockSeconds)
	}
	return nil
}

// MockNotifier records delivered messages.
type MockNotifier struct {
	mu sync.Mutex

	Announcements []Delivery
	Whispers      []Delivery

	AnnounceFunc func(ctx context.Context, channelID, text string) error
	WhisperFunc  func(ctx context.Context, accountID, text string) error
}

// Delivery is one recorded notification.
type Delivery struct {
	Target string
	Text   string
}

func NewMockNotifier() *MockNotifier {
	return &MockNotifier{}
}

func (m *MockNotifier) Announce(ctx context.Context, channelID, text string) error {
	if m.AnnounceFunc != nil {
		return m.AnnounceFunc(ctx, channelID, text)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Announcements = append(m.Announcements, Delivery{Target: channelID, Text: text})
	return nil
}

func (m *MockNotifier) Whisper(ctx context.Context, accountID, text string) error {
	if m.WhisperFunc != nil {
		return m.WhisperFunc(ctx, accountID, text)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Whispers = append(m.Whispers, Delivery{Target: accountID, Text: text})
	return nil
}

// MockIDGenerator returns a fixed sequence of IDs.
type MockIDGenerator struct {
	mu   sync.Mutex
	next int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	return "mock-id-" + strconv.Itoa(m.next)
}

// MockMemberDirectory serves a fixed member list.
type MockMemberDirectory struct {
	Members []domain.Member

	ListMembersFunc func(ctx context.Context) ([]domain.Member, error)
}

func (m *MockMemberDirectory) ListMembers(ctx context.Context) ([]domain.Member, error) {
	if m.ListMembersFunc != nil {
		return m.ListMembersFunc(ctx)
	}
	return m.Members, nil
}
