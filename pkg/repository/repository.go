package repository

import (
	"context"

	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/shopspring/decimal"
)

// AccountRepository defines the interface for account data access operations.
type AccountRepository interface {
	// Create inserts a and fills in the store-assigned ID and CreatedAt.
	// A uniqueness conflict on email returns account.ErrDuplicateEmail.
	Create(ctx context.Context, a *account.Account) error

	// Get is a plain point read returning account.ErrAccountNotFound when
	// no row matches.
	Get(ctx context.Context, id int64) (*account.Account, error)

	// LockForUpdate row-locks every existing account in ids and returns them
	// in ascending id order. Missing ids are simply absent from the result.
	// Locks are held until the surrounding unit of work ends.
	LockForUpdate(ctx context.Context, ids ...int64) ([]*account.Account, error)

	// UpdateBalance writes an absolute balance.
	UpdateBalance(ctx context.Context, id int64, balance decimal.Decimal) error

	// Delete removes the account row. The store refuses while transactions
	// still reference it.
	Delete(ctx context.Context, id int64) error
}

// TransactionRepository defines the interface for ledger entry data access.
// Entries are append-only; DeleteByAccount exists for teardown only.
type TransactionRepository interface {
	Create(ctx context.Context, tx *account.Transaction) error
	Get(ctx context.Context, id int64) (*account.Transaction, error)
	// ListByAccount returns entries where the account is source or target,
	// newest first.
	ListByAccount(ctx context.Context, accountID int64, limit int) ([]*account.Transaction, error)
	DeleteByAccount(ctx context.Context, accountID int64) error
}
