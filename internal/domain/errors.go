package domain

import "errors"

var (
	// Conversion errors
	ErrOutOfRange = errors.New("amount exceeds safe integer range")

	// Account errors
	ErrAccountNotFound = errors.New("account not found")
	ErrAccountBusy     = errors.New("account has a transaction in progress")

	// Flow errors
	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrInsufficientFunds  = errors.New("insufficient confirmed balance")
	ErrSameAccount        = errors.New("cannot tip your own account")
	ErrBalanceUnavailable = errors.New("balance unavailable")
	ErrWalletUnlockFailed = errors.New("could not unlock the wallet")
	ErrSendFailed         = errors.New("blockchain send failed")
	ErrMoveFailed         = errors.New("wallet declined the transfer")
)
