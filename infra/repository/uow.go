package repository

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"github.com/amirasaad/ledger/pkg/repository"
	"gorm.io/gorm"
)

// UoW provides transaction boundary and repository access in one abstraction.
// Every repository handed out inside Do shares the same transaction, so row
// locks taken by one are held until Do returns.
type UoW struct {
	db           *gorm.DB
	tx           *gorm.DB
	repoRegistry map[reflect.Type]func(*gorm.DB) any

	lockTimeout      time.Duration
	statementTimeout time.Duration
	timeout          time.Duration
}

// Option configures a UoW.
type Option func(*UoW)

// WithLockTimeout bounds how long a unit of work waits for a row lock.
// Applied with SET LOCAL on Postgres only.
func WithLockTimeout(d time.Duration) Option {
	return func(u *UoW) { u.lockTimeout = d }
}

// WithStatementTimeout bounds each statement inside a unit of work.
// Applied with SET LOCAL on Postgres only.
func WithStatementTimeout(d time.Duration) Option {
	return func(u *UoW) { u.statementTimeout = d }
}

// WithTimeout puts a context deadline on each unit of work.
func WithTimeout(d time.Duration) Option {
	return func(u *UoW) { u.timeout = d }
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB, opts ...Option) *UoW {
	u := &UoW{
		db: db,
		repoRegistry: map[reflect.Type]func(*gorm.DB) any{
			reflect.TypeOf((*repository.AccountRepository)(nil)).Elem():     func(db *gorm.DB) any { return NewAccountRepository(db) },
			reflect.TypeOf((*repository.TransactionRepository)(nil)).Elem(): func(db *gorm.DB) any { return NewTransactionRepository(db) },
		},
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Do runs the given function in a transaction boundary, providing a UoW with repository access.
// Calling Do on a UoW that is already inside a transaction joins it.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	if u.tx != nil {
		return fn(u)
	}
	if u.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.timeout)
		defer cancel()
	}
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := u.applyTimeouts(tx); err != nil {
			return err
		}
		txnUow := &UoW{db: u.db, tx: tx, repoRegistry: u.repoRegistry}
		return fn(txnUow)
	})
	return MapGormErrorToDomain(err)
}

func (u *UoW) applyTimeouts(tx *gorm.DB) error {
	if tx.Dialector.Name() != "postgres" {
		return nil
	}
	if u.lockTimeout > 0 {
		if err := tx.Exec(fmt.Sprintf("SET LOCAL lock_timeout = %d", u.lockTimeout.Milliseconds())).Error; err != nil {
			return err
		}
	}
	if u.statementTimeout > 0 {
		if err := tx.Exec(fmt.Sprintf("SET LOCAL statement_timeout = %d", u.statementTimeout.Milliseconds())).Error; err != nil {
			return err
		}
	}
	return nil
}

// GetRepository provides generic, type-safe access to repositories using the
// transaction session, or the connection pool outside Do.
func (u *UoW) GetRepository(repoType reflect.Type) (any, error) {
	constructor, ok := u.repoRegistry[repoType]
	if !ok {
		return nil, fmt.Errorf("unsupported repository type: %v", repoType)
	}
	session := u.tx
	if session == nil {
		session = u.db
	}
	return constructor(session), nil
}

// AccountRepository returns the account repository for this unit of work.
func (u *UoW) AccountRepository() (repository.AccountRepository, error) {
	repoAny, err := u.GetRepository(reflect.TypeOf((*repository.AccountRepository)(nil)).Elem())
	if err != nil {
		return nil, err
	}
	return repoAny.(repository.AccountRepository), nil
}

// TransactionRepository returns the transaction repository for this unit of work.
func (u *UoW) TransactionRepository() (repository.TransactionRepository, error) {
	repoAny, err := u.GetRepository(reflect.TypeOf((*repository.TransactionRepository)(nil)).Elem())
	if err != nil {
		return nil, err
	}
	return repoAny.(repository.TransactionRepository), nil
}
