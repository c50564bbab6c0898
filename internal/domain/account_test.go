package domain_test

import (
	"testing"
	"time"

	"github.com/iho/tipbot/internal/domain"
)

func TestAccountHandle(t *testing.T) {
	acc := &domain.Account{ID: "U123", Name: "satoshi"}

	if got := acc.Handle(); got != "<@U123|satoshi>" {
		t.Errorf("unexpected handle: %q", got)
	}
}

func TestNewAccountFromMember(t *testing.T) {
	now := time.Now().UTC()

	acc := domain.NewAccountFromMember(domain.Member{ID: "U1", Name: "alice", IsAdmin: true}, now)

	if acc.ID != "U1" || acc.Name != "alice" || !acc.IsAdmin {
		t.Errorf("unexpected account: %+v", acc)
	}
	if !acc.CreatedAt.Equal(now) {
		t.Errorf("expected CreatedAt %v, got %v", now, acc.CreatedAt)
	}
}

func TestUpdateFromMember(t *testing.T) {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	acc := domain.NewAccountFromMember(domain.Member{ID: "U1", Name: "alice"}, created)

	later := created.Add(time.Hour)
	acc.UpdateFromMember(domain.Member{ID: "U1", Name: "alice-renamed", IsAdmin: true}, later)

	if acc.Name != "alice-renamed" || !acc.IsAdmin {
		t.Errorf("expected profile fields to update, got %+v", acc)
	}
	if !acc.CreatedAt.Equal(created) {
		t.Error("CreatedAt must not change on update")
	}
	if !acc.UpdatedAt.Equal(later) {
		t.Errorf("expected UpdatedAt %v, got %v", later, acc.UpdatedAt)
	}
}
