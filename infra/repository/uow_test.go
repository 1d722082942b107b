package repository

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUoW_DoAndGetRepository(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)
	db, mock := newMockDB(t)

	uow := NewUoW(db)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := uow.Do(context.Background(), func(txUow repository.UnitOfWork) error {
		repoAny, err := txUow.GetRepository(reflect.TypeOf((*repository.AccountRepository)(nil)).Elem())
		require.NoError(err)
		_, ok := repoAny.(*accountRepository)
		assert.True(ok)

		repoAny, err = txUow.GetRepository(reflect.TypeOf((*repository.TransactionRepository)(nil)).Elem())
		require.NoError(err)
		_, ok = repoAny.(*transactionRepository)
		assert.True(ok)

		_, err = txUow.GetRepository(reflect.TypeOf(0))
		assert.Error(err)
		return nil
	})
	assert.NoError(err)
	require.NoError(mock.ExpectationsWereMet())
}

func TestUoW_TypeSafeMethodsOutsideTransaction(t *testing.T) {
	db, _ := newMockDB(t)
	uow := NewUoW(db)

	accountRepo, err := uow.AccountRepository()
	require.NoError(t, err)
	assert.NotNil(t, accountRepo)

	transactionRepo, err := uow.TransactionRepository()
	require.NoError(t, err)
	assert.NotNil(t, transactionRepo)
}

func TestUoW_RollbackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	uow := NewUoW(db)

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := uow.Do(context.Background(), func(repository.UnitOfWork) error {
		return account.ErrInsufficientFunds
	})
	require.ErrorIs(t, err, account.ErrInsufficientFunds)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUoW_AppliesPostgresTimeouts(t *testing.T) {
	db, mock := newMockDB(t)
	uow := NewUoW(db, WithLockTimeout(250*time.Millisecond), WithStatementTimeout(2*time.Second))

	mock.ExpectBegin()
	mock.ExpectExec(`SET LOCAL lock_timeout = 250`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`SET LOCAL statement_timeout = 2000`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := uow.Do(context.Background(), func(repository.UnitOfWork) error { return nil })
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUoW_LockNotAvailableIsStoreUnavailable(t *testing.T) {
	db, mock := newMockDB(t)
	uow := NewUoW(db, WithLockTimeout(100*time.Millisecond))

	mock.ExpectBegin()
	mock.ExpectExec(`SET LOCAL lock_timeout = 100`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE id IN \(\$1,\$2\) ORDER BY id FOR UPDATE`).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.LockNotAvailable, Message: "canceling statement due to lock timeout"})
	mock.ExpectRollback()

	err := uow.Do(context.Background(), func(txUow repository.UnitOfWork) error {
		repo, err := txUow.AccountRepository()
		if err != nil {
			return err
		}
		_, err = repo.LockForUpdate(context.Background(), 1, 2)
		return err
	})
	require.ErrorIs(t, err, account.ErrStoreUnavailable)
	assert.Equal(t, account.KindStoreUnavailable, account.KindOf(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUoW_NestedDoJoinsTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	uow := NewUoW(db)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := uow.Do(context.Background(), func(txUow repository.UnitOfWork) error {
		return txUow.Do(context.Background(), func(repository.UnitOfWork) error { return nil })
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
