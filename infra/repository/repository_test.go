package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDb.Close() })

	dialector := postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	return db, mock
}

func TestAccountRepository_Create(t *testing.T) {
	require := require.New(t)
	db, mock := newMockDB(t)
	accRepo := accountRepository{db: db}

	acc, err := account.New().WithEmail("alice@example.com").Build()
	require.NoError(err)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "accounts" (.+) VALUES (.+) RETURNING "id"`).
		WithArgs("alice@example.com", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	mock.ExpectCommit()

	require.NoError(accRepo.Create(context.Background(), acc))
	assert.Equal(t, int64(42), acc.ID)
	require.NoError(mock.ExpectationsWereMet())
}

func TestAccountRepository_CreateDuplicateEmail(t *testing.T) {
	require := require.New(t)
	db, mock := newMockDB(t)
	accRepo := accountRepository{db: db}

	acc, err := account.New().WithEmail("alice@example.com").Build()
	require.NoError(err)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "accounts" (.+) VALUES (.+) RETURNING "id"`).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "idx_accounts_email"})
	mock.ExpectRollback()

	err = accRepo.Create(context.Background(), acc)
	require.ErrorIs(err, account.ErrDuplicateEmail)
	require.NoError(mock.ExpectationsWereMet())
}

func TestAccountRepository_Get(t *testing.T) {
	require := require.New(t)
	db, mock := newMockDB(t)
	accRepo := accountRepository{db: db}
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"id", "email", "balance", "created_at"}).
		AddRow(int64(5), "bob@example.com", "12.30", now)
	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE "accounts"\."id" = \$1 ORDER BY "accounts"\."id" LIMIT \$2`).
		WithArgs(int64(5), 1).
		WillReturnRows(rows)

	acc, err := accRepo.Get(context.Background(), 5)
	require.NoError(err)
	assert.Equal(t, "bob@example.com", acc.Email)
	assert.Equal(t, "12.30", acc.Balance.StringFixed(2))

	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE "accounts"\."id" = \$1`).
		WithArgs(int64(6), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "balance", "created_at"}))

	_, err = accRepo.Get(context.Background(), 6)
	require.ErrorIs(err, account.ErrAccountNotFound)
}

func TestAccountRepository_LockForUpdateOrdersByID(t *testing.T) {
	require := require.New(t)
	db, mock := newMockDB(t)
	accRepo := accountRepository{db: db}
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"id", "email", "balance", "created_at"}).
		AddRow(int64(3), "a@example.com", "1.00", now).
		AddRow(int64(7), "b@example.com", "2.00", now)
	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE id IN \(\$1,\$2\) ORDER BY id FOR UPDATE`).
		WithArgs(int64(3), int64(7)).
		WillReturnRows(rows)

	// Source 7, target 3: the lock query still asks for 3 first.
	accs, err := accRepo.LockForUpdate(context.Background(), 7, 3, 7)
	require.NoError(err)
	require.Len(accs, 2)
	assert.Equal(t, int64(3), accs[0].ID)
	assert.Equal(t, int64(7), accs[1].ID)
	require.NoError(mock.ExpectationsWereMet())
}

func TestAccountRepository_LockForUpdateNoIDs(t *testing.T) {
	db, _ := newMockDB(t)
	accRepo := accountRepository{db: db}

	accs, err := accRepo.LockForUpdate(context.Background())
	require.NoError(t, err)
	assert.Empty(t, accs)
}

func TestAccountRepository_UpdateBalance(t *testing.T) {
	require := require.New(t)
	db, mock := newMockDB(t)
	accRepo := accountRepository{db: db}

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "accounts" SET "balance"=\$1 WHERE id = \$2`).
		WithArgs(sqlmock.AnyArg(), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	require.NoError(accRepo.UpdateBalance(context.Background(), 3, decimal.RequireFromString("15.50")))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "accounts" SET "balance"=\$1 WHERE id = \$2`).
		WithArgs(sqlmock.AnyArg(), int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()
	err := accRepo.UpdateBalance(context.Background(), 4, decimal.RequireFromString("1.00"))
	require.ErrorIs(err, account.ErrAccountNotFound)

	require.NoError(mock.ExpectationsWereMet())
}

func TestAccountRepository_UpdateBalanceOverflow(t *testing.T) {
	require := require.New(t)
	db, mock := newMockDB(t)
	accRepo := accountRepository{db: db}

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "accounts" SET "balance"=\$1 WHERE id = \$2`).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.NumericValueOutOfRange, Message: "numeric field overflow"})
	mock.ExpectRollback()

	err := accRepo.UpdateBalance(context.Background(), 3, decimal.RequireFromString("1000000.00"))
	require.ErrorIs(err, account.ErrBalanceOverflow)
	assert.Equal(t, account.KindRangeExceeded, account.KindOf(err))
}

func TestTransactionRepository_Create(t *testing.T) {
	require := require.New(t)
	db, mock := newMockDB(t)
	txRepo := transactionRepository{db: db}

	entry := account.NewTransfer(1, 2, decimal.RequireFromString("3.00"))

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "transactions" (.+) VALUES (.+) RETURNING "id"`).
		WithArgs(int64(1), int64(2), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))
	mock.ExpectCommit()

	require.NoError(txRepo.Create(context.Background(), entry))
	assert.Equal(t, int64(9), entry.ID)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "transactions" (.+) VALUES (.+) RETURNING "id"`).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation})
	mock.ExpectRollback()

	err := txRepo.Create(context.Background(), account.NewDeposit(99, decimal.RequireFromString("1.00")))
	require.ErrorIs(err, account.ErrAccountNotFound)
	require.NoError(mock.ExpectationsWereMet())
}

func TestTransactionRepository_Get(t *testing.T) {
	require := require.New(t)
	db, mock := newMockDB(t)
	txRepo := transactionRepository{db: db}
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"id", "source_account_id", "target_account_id", "amount", "created_at"}).
		AddRow(int64(9), nil, int64(2), "10.00", now)
	mock.ExpectQuery(`SELECT \* FROM "transactions" WHERE "transactions"\."id" = \$1`).
		WithArgs(int64(9), 1).
		WillReturnRows(rows)

	entry, err := txRepo.Get(context.Background(), 9)
	require.NoError(err)
	assert.True(t, entry.IsDeposit())
	assert.Equal(t, int64(2), entry.TargetAccountID)
	assert.Equal(t, "10.00", entry.Amount.StringFixed(2))

	mock.ExpectQuery(`SELECT \* FROM "transactions" WHERE "transactions"\."id" = \$1`).
		WithArgs(int64(10), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	_, err = txRepo.Get(context.Background(), 10)
	require.ErrorIs(err, account.ErrTransactionNotFound)
}

func TestTransactionRepository_ListByAccount(t *testing.T) {
	require := require.New(t)
	db, mock := newMockDB(t)
	txRepo := transactionRepository{db: db}
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"id", "source_account_id", "target_account_id", "amount", "created_at"}).
		AddRow(int64(2), int64(1), int64(3), "1.00", now).
		AddRow(int64(1), nil, int64(1), "5.00", now)
	mock.ExpectQuery(`SELECT \* FROM "transactions" WHERE source_account_id = \$1 OR target_account_id = \$2 ORDER BY id desc LIMIT \$3`).
		WithArgs(int64(1), int64(1), 50).
		WillReturnRows(rows)

	entries, err := txRepo.ListByAccount(context.Background(), 1, 50)
	require.NoError(err)
	require.Len(entries, 2)
	assert.False(t, entries[0].IsDeposit())
	assert.True(t, entries[1].IsDeposit())
}
