package account

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is an append-only ledger entry. A nil SourceAccountID marks a
// deposit of money entering the system from outside.
type Transaction struct {
	ID              int64
	SourceAccountID *int64
	TargetAccountID int64
	Amount          decimal.Decimal
	CreatedAt       time.Time
}

// NewDeposit returns an unsaved entry crediting target with amount.
func NewDeposit(target int64, amount decimal.Decimal) *Transaction {
	return &Transaction{
		TargetAccountID: target,
		Amount:          amount,
		CreatedAt:       time.Now().UTC(),
	}
}

// NewTransfer returns an unsaved entry moving amount from source to target.
func NewTransfer(source, target int64, amount decimal.Decimal) *Transaction {
	return &Transaction{
		SourceAccountID: &source,
		TargetAccountID: target,
		Amount:          amount,
		CreatedAt:       time.Now().UTC(),
	}
}

// IsDeposit reports whether the entry has no source account.
func (t *Transaction) IsDeposit() bool {
	return t.SourceAccountID == nil
}
