//	mockgen -source=internal/usecase/interfaces.go -destination=internal/usecase/mocks/mock_interfaces.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	reflect "reflect"

	decimal "github.com/shopspring/decimal"
	gomock "go.uber.org/mock/gomock"
)

// MockWallet is a mock of WalletService interface.
type MockWallet struct {
	ctrl     *gomock.Controller
	recorder *MockWalletMockRecorder
	isgomock struct{}
}

// MockWalletMockRecorder is the mock recorder for MockWallet.
type MockWalletMockRecorder struct {
	mock *MockWallet
}

// NewMockWallet creates a new mock instance.
func NewMockWallet(ctrl *gomock.Controller) *MockWallet {
	mock := &MockWallet{ctrl: ctrl}
	mock.recorder = &MockWalletMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockWallet) EXPECT() *MockWalletMockRecorder {
	return m.recorder
}

// GetBalance mocks base method.
func (m *MockWallet) GetBalance(ctx context.Context, accountID string, minConf int) (decimal.Decimal, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetBalance", ctx, accountID, minConf)
	ret0, _ := ret[0].(decimal.Decimal)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetBalance indicates an expected call of GetBalance.
func (mr *MockWalletMockRecorder) GetBalance(ctx, accountID, minConf any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetBalance", reflect.TypeOf((*MockWallet)(nil).GetBalance), ctx, accountID, minConf)
}

// SendFrom mocks base method.
func (m *MockWallet) SendFrom(ctx context.Context, accountID, toAddress string, amount decimal.Decimal) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SendFrom", ctx, accountID, toAddress, amount)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SendFrom indicates an expected call of SendFrom.
func (mr *MockWalletMockRecorder) SendFrom(ctx, accountID, toAddress, amount any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SendFrom", reflect.TypeOf((*MockWallet)(nil).SendFrom), ctx, accountID, toAddress, amount)
}

// Move mocks base method.
func (m *MockWallet) Move(ctx context.Context, fromID, toID string, amount decimal.Decimal) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Move", ctx, fromID, toID, amount)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Move indicates an expected call of Move.
func (mr *MockWalletMockRecorder) Move(ctx, fromID, toID, amount any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Move", reflect.TypeOf((*MockWallet)(nil).Move), ctx, fromID, toID, amount)
}

// GetAddressesByAccount mocks base method.
func (m *MockWallet) GetAddressesByAccount(ctx context.Context, accountID string) ([]string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAddressesByAccount", ctx, accountID)
	ret0, _ := ret[0].([]string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetAddressesByAccount indicates an expected call of GetAddressesByAccount.
func (mr *MockWalletMockRecorder) GetAddressesByAccount(ctx, accountID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAddressesByAccount", reflect.TypeOf((*MockWallet)(nil).GetAddressesByAccount), ctx, accountID)
}

// GetNewAddress mocks base method.
func (m *MockWallet) GetNewAddress(ctx context.Context, accountID string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetNewAddress", ctx, accountID)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetNewAddress indicates an expected call of GetNewAddress.
func (mr *MockWalletMockRecorder) GetNewAddress(ctx, accountID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetNewAddress", reflect.TypeOf((*MockWallet)(nil).GetNewAddress), ctx, accountID)
}

// WalletPassphrase mocks base method.
func (m *MockWallet) WalletPassphrase(ctx context.Context, passphrase string, unlockSeconds int) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "WalletPassphrase", ctx, passphrase, unlockSeconds)
	ret0, _ := ret[0].(error)
	return ret0
}

// WalletPassphrase indicates an expected call of WalletPassphrase.
func (mr *MockWalletMockRecorder) WalletPassphrase(ctx, passphrase, unlockSeconds any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "WalletPassphrase", reflect.TypeOf((*MockWallet)(nil).WalletPassphrase), ctx, passphrase, unlockSeconds)
}
