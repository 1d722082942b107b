package repository

import (
	"time"

	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/domain/money"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Account represents an account record in the database.
type Account struct {
	ID        int64           `gorm:"primaryKey"`
	Email     string          `gorm:"uniqueIndex;not null"`
	Balance   decimal.Decimal `gorm:"type:numeric(8,2);not null;check:balance >= 0"`
	CreatedAt time.Time       `gorm:"not null"`
}

// TableName specifies the table name for the Account model.
func (Account) TableName() string {
	return "accounts"
}

// Transaction represents a persisted ledger entry.
type Transaction struct {
	ID              int64           `gorm:"primaryKey"`
	SourceAccountID *int64          `gorm:"index"`
	SourceAccount   *Account        `gorm:"foreignKey:SourceAccountID;constraint:OnDelete:RESTRICT"`
	TargetAccountID int64           `gorm:"not null;index"`
	TargetAccount   *Account        `gorm:"foreignKey:TargetAccountID;constraint:OnDelete:RESTRICT"`
	Amount          decimal.Decimal `gorm:"type:numeric(8,2);not null;check:amount > 0"`
	CreatedAt       time.Time       `gorm:"not null"`
}

// TableName specifies the table name for the Transaction model.
func (Transaction) TableName() string {
	return "transactions"
}

// AutoMigrate creates the ledger tables from the models. Postgres deployments
// use the SQL migrations instead; this serves the in-memory test store.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&Account{}, &Transaction{})
}

func accountToModel(a *account.Account) *Account {
	return &Account{
		ID:        a.ID,
		Email:     a.Email,
		Balance:   a.Balance,
		CreatedAt: a.CreatedAt,
	}
}

func accountFromModel(m *Account) *account.Account {
	return &account.Account{
		ID:        m.ID,
		Email:     m.Email,
		Balance:   money.Normalize(m.Balance),
		CreatedAt: m.CreatedAt.UTC(),
	}
}

func transactionToModel(t *account.Transaction) *Transaction {
	return &Transaction{
		ID:              t.ID,
		SourceAccountID: t.SourceAccountID,
		TargetAccountID: t.TargetAccountID,
		Amount:          t.Amount,
		CreatedAt:       t.CreatedAt,
	}
}

func transactionFromModel(m *Transaction) *account.Transaction {
	return &account.Transaction{
		ID:              m.ID,
		SourceAccountID: m.SourceAccountID,
		TargetAccountID: m.TargetAccountID,
		Amount:          money.Normalize(m.Amount),
		CreatedAt:       m.CreatedAt.UTC(),
	}
}
