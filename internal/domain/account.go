package domain

import "time"

// Account represents a chat identity bound to a wallet account of the
// same ID. Balances live in the wallet service; the account itself only
// carries chat-facing state.
type Account struct {
	ID        string
	Name      string
	IsAdmin   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Member is a chat-platform roster entry.
type Member struct {
	ID      string
	Name    string
	IsAdmin bool
	Deleted bool
}

// NewAccountFromMember creates an account for a roster member.
func NewAccountFromMember(m Member, now time.Time) *Account {
	return &Account{
		ID:        m.ID,
		Name:      m.Name,
		IsAdmin:   m.IsAdmin,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// UpdateFromMember refreshes mutable profile fields from a roster entry.
func (a *Account) UpdateFromMember(m Member, now time.Time) {
	a.Name = m.Name
	a.IsAdmin = m.IsAdmin
	a.UpdatedAt = now
}

// Handle returns the chat mention handle for the account.
func (a *Account) Handle() string {
	return "<@" + a.ID + "|" + a.Name + ">"
}
