package account

import (
	"errors"
	"fmt"
	"strings"

	"github.com/amirasaad/ledger/pkg/domain/money"
	"github.com/shopspring/decimal"
)

var (
	// ErrAccountNotFound is returned when an account cannot be found.
	ErrAccountNotFound = errors.New("account not found")

	// ErrTransactionNotFound is returned when a transaction cannot be found.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrDuplicateEmail is returned when the store rejects an account because its email is taken.
	ErrDuplicateEmail = errors.New("account email already exists")

	// ErrInsufficientFunds is returned when the source balance is lower than the transfer amount.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrBalanceOverflow is returned when a resulting balance would exceed the representable range.
	ErrBalanceOverflow = errors.New("balance exceeds the representable range")

	// ErrAmountOutOfRange is returned when an amount itself exceeds the representable range.
	ErrAmountOutOfRange = errors.New("amount exceeds the representable range")

	// ErrInvalidAmount is returned when an amount or initial balance breaks the fixed-point rules.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidEmail is returned when an account is built without a valid email.
	ErrInvalidEmail = errors.New("invalid email")

	// ErrSameAccount is returned when a transfer names the same account on both sides.
	ErrSameAccount = errors.New("cannot transfer to same account")

	// ErrStoreUnavailable is returned for transient store failures: lock or
	// statement timeouts, lost connections, deadlock victims. Safe to retry.
	ErrStoreUnavailable = errors.New("ledger store unavailable")
)

// Field names used when reporting which transfer side is missing.
const (
	FieldSourceAccountID = "source_account_id"
	FieldTargetAccountID = "target_account_id"
)

// NotFoundError reports which of the transfer accounts do not exist.
// It matches ErrAccountNotFound with errors.Is.
type NotFoundError struct {
	Fields []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("account not found: %s", strings.Join(e.Fields, ", "))
}

// Is makes NotFoundError comparable to ErrAccountNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrAccountNotFound
}

// MissingFields returns the field names carried by a NotFoundError in err's
// chain, or nil.
func MissingFields(err error) []string {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return nf.Fields
	}
	return nil
}

// Kind is the coarse failure class of a ledger error.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindConflict
	KindRangeExceeded
	KindStoreUnavailable
	KindInvalidRequest
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindRangeExceeded:
		return "range_exceeded"
	case KindStoreUnavailable:
		return "store_unavailable"
	case KindInvalidRequest:
		return "invalid_request"
	default:
		return "internal"
	}
}

// KindOf classifies err. Unknown errors are KindInternal.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindInternal
	case errors.Is(err, ErrStoreUnavailable):
		return KindStoreUnavailable
	case errors.Is(err, ErrAccountNotFound), errors.Is(err, ErrTransactionNotFound):
		return KindNotFound
	case errors.Is(err, ErrDuplicateEmail), errors.Is(err, ErrInsufficientFunds):
		return KindConflict
	case errors.Is(err, ErrBalanceOverflow), errors.Is(err, ErrAmountOutOfRange):
		return KindRangeExceeded
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrInvalidEmail), errors.Is(err, ErrSameAccount):
		return KindInvalidRequest
	default:
		return KindInternal
	}
}

// IsBusiness reports whether err is an expected business outcome rather than
// an infrastructure failure.
func IsBusiness(err error) bool {
	switch KindOf(err) {
	case KindNotFound, KindConflict, KindRangeExceeded, KindInvalidRequest:
		return true
	default:
		return false
	}
}

// ValidateAmount applies the money rules to a deposit or transfer amount and
// returns a ledger error.
func ValidateAmount(amount decimal.Decimal) error {
	return classifyMoneyErr(money.ValidateAmount(amount))
}

func classifyMoneyErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, money.ErrOutOfRange):
		return fmt.Errorf("%w: %w", ErrAmountOutOfRange, err)
	default:
		return fmt.Errorf("%w: %w", ErrInvalidAmount, err)
	}
}
