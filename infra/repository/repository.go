package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository returns a gorm-backed AccountRepository bound to db,
// which may be a transaction.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(ctx context.Context, a *account.Account) error {
	m := accountToModel(a)
	if err := WrapError(func() error {
		return r.db.WithContext(ctx).Create(m).Error
	}); err != nil {
		return err
	}
	a.ID = m.ID
	a.CreatedAt = m.CreatedAt.UTC()
	return nil
}

func (r *accountRepository) Get(ctx context.Context, id int64) (*account.Account, error) {
	var m Account
	err := r.db.WithContext(ctx).First(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, account.ErrAccountNotFound
	}
	if err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	return accountFromModel(&m), nil
}

// LockForUpdate issues a single SELECT ... ORDER BY id FOR UPDATE so that
// every caller acquires row locks in ascending id order.
func (r *accountRepository) LockForUpdate(ctx context.Context, ids ...int64) ([]*account.Account, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	var rows []Account
	err := WrapError(func() error {
		return r.db.WithContext(ctx).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id IN ?", sorted).
			Order("id").
			Find(&rows).Error
	})
	if err != nil {
		return nil, err
	}
	out := make([]*account.Account, 0, len(rows))
	for i := range rows {
		out = append(out, accountFromModel(&rows[i]))
	}
	return out, nil
}

func (r *accountRepository) UpdateBalance(ctx context.Context, id int64, balance decimal.Decimal) error {
	var affected int64
	err := WrapError(func() error {
		res := r.db.WithContext(ctx).Model(&Account{}).Where("id = ?", id).Update("balance", balance)
		affected = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		return account.ErrAccountNotFound
	}
	return nil
}

func (r *accountRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&Account{}, id)
	if isForeignKeyViolation(res.Error) {
		return fmt.Errorf("account %d is still referenced by transactions: %w", id, res.Error)
	}
	if res.Error != nil {
		return MapGormErrorToDomain(res.Error)
	}
	if res.RowsAffected == 0 {
		return account.ErrAccountNotFound
	}
	return nil
}

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository returns a gorm-backed TransactionRepository bound to db.
func NewTransactionRepository(db *gorm.DB) repository.TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, tx *account.Transaction) error {
	m := transactionToModel(tx)
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(m).Error
	if isForeignKeyViolation(err) {
		return account.ErrAccountNotFound
	}
	if err != nil {
		return MapGormErrorToDomain(err)
	}
	tx.ID = m.ID
	tx.CreatedAt = m.CreatedAt.UTC()
	return nil
}

func (r *transactionRepository) Get(ctx context.Context, id int64) (*account.Transaction, error) {
	var m Transaction
	err := r.db.WithContext(ctx).First(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, account.ErrTransactionNotFound
	}
	if err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	return transactionFromModel(&m), nil
}

func (r *transactionRepository) ListByAccount(
	ctx context.Context,
	accountID int64,
	limit int,
) ([]*account.Transaction, error) {
	var rows []Transaction
	err := WrapError(func() error {
		q := r.db.WithContext(ctx).
			Where("source_account_id = ? OR target_account_id = ?", accountID, accountID).
			Order("id desc")
		if limit > 0 {
			q = q.Limit(limit)
		}
		return q.Find(&rows).Error
	})
	if err != nil {
		return nil, err
	}
	out := make([]*account.Transaction, 0, len(rows))
	for i := range rows {
		out = append(out, transactionFromModel(&rows[i]))
	}
	return out, nil
}

func (r *transactionRepository) DeleteByAccount(ctx context.Context, accountID int64) error {
	return WrapError(func() error {
		return r.db.WithContext(ctx).
			Where("source_account_id = ? OR target_account_id = ?", accountID, accountID).
			Delete(&Transaction{}).Error
	})
}

func isForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
		return true
	}
	return err != nil && strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
