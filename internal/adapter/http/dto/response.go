package dto

// ErrorResponse is the error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// AccountResponse describes a roster account.
type AccountResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	IsAdmin bool   `json:"is_admin"`
}

// BalanceResponse carries both oracle views, as tao strings.
type BalanceResponse struct {
	AccountID   string `json:"account_id"`
	Confirmed   string `json:"confirmed"`
	Unconfirmed string `json:"unconfirmed"`
	HighBalance bool   `json:"high_balance"`
}

// DepositAddressResponse carries the account's deposit address.
type DepositAddressResponse struct {
	AccountID string `json:"account_id"`
	Address   string `json:"address"`
}

// WithdrawalResponse mirrors the withdrawal receipt.
type WithdrawalResponse struct {
	ID            string `json:"id"`
	AccountID     string `json:"account_id"`
	Amount        string `json:"amount"`
	Address       string `json:"address"`
	TransactionID string `json:"transaction_id"`
	ExplorerURL   string `json:"explorer_url"`
}

// TipResponse mirrors a completed tip.
type TipResponse struct {
	ID     string `json:"id"`
	From   string `json:"from"`
	To     string `json:"to"`
	Amount string `json:"amount"`
}
