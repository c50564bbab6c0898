// Package roster tracks the chat membership and its accounts.
package roster

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/tipbot/internal/domain"
)

// Roster is the in-memory account directory. Accounts are created when a
// chat identity first interacts with the bot or when the membership sync
// sees them; accounts of deleted members are collected on the next sync.
type Roster struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
	logger   zerolog.Logger
}

// New creates an empty roster.
func New(logger zerolog.Logger) *Roster {
	return &Roster{
		accounts: make(map[string]*domain.Account),
		logger:   logger,
	}
}

// Get returns the account for a chat identity.
func (r *Roster) Get(id string) (*domain.Account, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	acc, ok := r.accounts[id]
	return acc, ok
}

// Ensure returns the member's account, creating or refreshing it.
func (r *Roster) Ensure(member domain.Member) *domain.Account {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()

	if acc, ok := r.accounts[member.ID]; ok {
		acc.UpdateFromMember(member, now)
		return acc
	}

	acc := domain.NewAccountFromMember(member, now)
	r.accounts[member.ID] = acc
	r.logger.Debug().Str("account", member.ID).Str("name", member.Name).Msg("account created")
	return acc
}

// List returns all known accounts.
func (r *Roster) List() []*domain.Account {
	r.mu.RLock()
	defer r.mu.RUnlock()

	accounts := make([]*domain.Account, 0, len(r.accounts))
	for _, acc := range r.accounts {
		accounts = append(accounts, acc)
	}
	return accounts
}

// Count returns the number of known accounts.
func (r *Roster) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.accounts)
}

// Sync reconciles the roster against a full membership listing: present
// members are created or refreshed, deleted ones are dropped.
func (r *Roster) Sync(members []domain.Member) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	seen := make(map[string]bool, len(members))

	for _, m := range members {
		if m.Deleted {
			continue
		}
		seen[m.ID] = true

		if acc, ok := r.accounts[m.ID]; ok {
			acc.UpdateFromMember(m, now)
		} else {
			r.accounts[m.ID] = domain.NewAccountFromMember(m, now)
		}
	}

	for id := range r.accounts {
		if !seen[id] {
			delete(r.accounts, id)
		}
	}

	r.logger.Info().Int("accounts", len(r.accounts)).Msg("roster synced")
}
