package account

import (
	"strings"
	"time"

	"github.com/amirasaad/ledger/pkg/domain/money"
	"github.com/amirasaad/ledger/pkg/utils"
	"github.com/shopspring/decimal"
)

// Account is a ledger account. Its balance is the algebraic sum of every
// deposit and net transfer applied to it and always stays inside the range
// money.ValidateBalance accepts.
type Account struct {
	ID        int64
	Email     string
	Balance   decimal.Decimal
	CreatedAt time.Time
}

// Builder provides a fluent API for constructing Account instances.
type Builder struct {
	email     string
	balance   decimal.Decimal
	createdAt time.Time
}

// New creates a new Builder with a zero balance.
func New() *Builder {
	return &Builder{
		balance:   money.Zero,
		createdAt: time.Now().UTC(),
	}
}

// WithEmail sets the account email. This is a mandatory field.
func (b *Builder) WithEmail(email string) *Builder {
	b.email = strings.TrimSpace(email)
	return b
}

// WithBalance sets the opening balance.
func (b *Builder) WithBalance(balance decimal.Decimal) *Builder {
	b.balance = balance
	return b
}

// Build validates the email and opening balance and returns the Account.
func (b *Builder) Build() (*Account, error) {
	if !utils.IsEmail(b.email) {
		return nil, ErrInvalidEmail
	}
	if err := ValidateBalance(b.balance); err != nil {
		return nil, err
	}
	return &Account{
		Email:     b.email,
		Balance:   b.balance,
		CreatedAt: b.createdAt,
	}, nil
}

// ValidateBalance checks an opening balance. A balance above the
// representable range is a RangeExceeded failure, anything else is invalid.
func ValidateBalance(balance decimal.Decimal) error {
	return classifyMoneyErr(money.ValidateBalance(balance))
}

// Credit adds amount to the balance. The balance is left untouched when the
// result would leave the representable range.
func (a *Account) Credit(amount decimal.Decimal) error {
	next := a.Balance.Add(amount)
	if !money.InRange(next) {
		return ErrBalanceOverflow
	}
	a.Balance = next
	return nil
}

// Debit removes amount from the balance. The balance is left untouched when
// it is lower than amount.
func (a *Account) Debit(amount decimal.Decimal) error {
	if a.Balance.LessThan(amount) {
		return ErrInsufficientFunds
	}
	a.Balance = a.Balance.Sub(amount)
	return nil
}
