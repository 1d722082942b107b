// Package dto holds the JSON read models returned by the HTTP layer and the CLI.
package dto

import (
	"time"

	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/domain/money"
)

// AccountRead is the API representation of an account. Balance is a decimal
// string with exactly two fractional digits.
type AccountRead struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Balance   string `json:"balance" example:"100.00"`
	CreatedAt string `json:"created_at" example:"2024-01-02T15:04:05Z"`
}

// ToAccountRead maps a domain account to its API representation.
func ToAccountRead(a *account.Account) *AccountRead {
	if a == nil {
		return nil
	}
	return &AccountRead{
		ID:        a.ID,
		Email:     a.Email,
		Balance:   money.Format(a.Balance),
		CreatedAt: formatTime(a.CreatedAt),
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
