package repository

import (
	"context"
	"reflect"
)

// UnitOfWork defines the contract for transactional work and type-safe repository access.
//
// Do runs the given function in a transaction boundary, providing a UnitOfWork for repository access.
// GetRepository provides type-safe access to repositories using the transaction session.
// Outside Do, repositories run against the plain connection pool, which is
// what point reads use.
//
//	repoAny, err := uow.GetRepository(reflect.TypeOf((*AccountRepository)(nil)).Elem())
//	repo := repoAny.(AccountRepository)
type UnitOfWork interface {
	// Do executes the given function within a transaction boundary.
	// If the function returns an error, the transaction is rolled back and
	// nothing it wrote becomes visible.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	// GetRepository returns a repository of the requested type, bound to the current transaction/session.
	GetRepository(repoType reflect.Type) (any, error)

	AccountRepository() (AccountRepository, error)
	TransactionRepository() (TransactionRepository, error)
}
