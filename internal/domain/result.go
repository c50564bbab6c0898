package domain

import "time"

// BalanceSummary is the oracle's two-view read of an account: the settled
// balance at the required confirmation depth and the pending balance at a
// single confirmation, both in duffs.
type BalanceSummary struct {
	Confirmed   int64
	Unconfirmed int64
	HighBalance bool
}

// HasPending reports whether the pending view differs from the settled one.
func (s BalanceSummary) HasPending() bool {
	return s.Unconfirmed != s.Confirmed
}

// WithdrawalReceipt is the success payload of a withdrawal. Not persisted;
// produced once and handed to the notification sink.
type WithdrawalReceipt struct {
	ID            string
	AccountID     string
	Amount        int64
	Address       string
	TransactionID string
	ExplorerURL   string
	CreatedAt     time.Time
}

// TipResult is the success payload of an internal transfer: one public
// acknowledgement for the originating channel and one private notice per
// party.
type TipResult struct {
	ID          string
	SenderID    string
	RecipientID string
	Amount      int64
	Public      string
	ToRecipient string
	ToSender    string
	CreatedAt   time.Time
}
