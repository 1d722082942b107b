package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"

	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// MapGormErrorToDomain converts GORM and driver errors to ledger errors.
// This keeps infrastructure concerns (database errors) within the infrastructure layer.
// Transient failures come back wrapped in account.ErrStoreUnavailable with the
// original error kept in the chain for logs. Errors with no mapping are
// returned unchanged. Not-found is left to each repository since only it
// knows which record was missing.
func MapGormErrorToDomain(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, account.ErrStoreUnavailable) {
		return err
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return account.ErrDuplicateEmail
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return account.ErrInsufficientFunds
	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled),
		errors.Is(err, driver.ErrBadConn),
		errors.Is(err, sql.ErrTxDone),
		pgconn.Timeout(err):
		return unavailable(err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return mapPgError(pgErr, err)
	}

	// SQLite reports these as plain strings when the dialector cannot
	// translate them.
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return account.ErrDuplicateEmail
	case strings.Contains(msg, "database is locked"), strings.Contains(msg, "database table is locked"):
		return unavailable(err)
	}

	return err
}

func mapPgError(pgErr *pgconn.PgError, err error) error {
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return account.ErrDuplicateEmail
	case pgerrcode.NumericValueOutOfRange:
		return fmt.Errorf("%w: %s", account.ErrBalanceOverflow, pgErr.Message)
	case pgerrcode.CheckViolation:
		return account.ErrInsufficientFunds
	case pgerrcode.LockNotAvailable,
		pgerrcode.DeadlockDetected,
		pgerrcode.SerializationFailure,
		pgerrcode.QueryCanceled,
		pgerrcode.AdminShutdown,
		pgerrcode.CrashShutdown,
		pgerrcode.CannotConnectNow,
		pgerrcode.TooManyConnections:
		return unavailable(err)
	}
	if pgerrcode.IsConnectionException(pgErr.Code) {
		return unavailable(err)
	}
	return err
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %w", account.ErrStoreUnavailable, err)
}

// WrapError wraps a GORM operation and automatically maps errors.
// This helper reduces boilerplate in repository methods while keeping code explicit.
//
// Usage:
//
//	err := WrapError(func() error {
//	    return r.db.WithContext(ctx).Create(row).Error
//	})
func WrapError(op func() error) error {
	return MapGormErrorToDomain(op())
}
