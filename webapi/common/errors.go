package common

import (
	"errors"

	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/domain/money"
	"github.com/gofiber/fiber/v2"
)

// Fields names the request fields a handler reports failures against.
type Fields struct {
	// NotFound is reported for a plain account or transaction miss.
	NotFound string
	// NotFoundStatus is the status for a plain miss; 404 when zero.
	NotFoundStatus int
	// Amount is reported for amount and overflow failures.
	Amount string
}

// Failure maps a service error to a status code and field reasons.
// Infrastructure failures carry a single reason code and no field map.
func Failure(err error, f Fields) (status int, title string, detail any) {
	if errors.Is(err, account.ErrStoreUnavailable) {
		return fiber.StatusServiceUnavailable, "Service Unavailable", ReasonStoreUnavailable
	}

	var nf *account.NotFoundError
	if errors.As(err, &nf) && len(nf.Fields) > 0 {
		out := make(map[string]string, len(nf.Fields))
		for _, field := range nf.Fields {
			out[field] = ReasonNotFound
		}
		return fiber.StatusUnprocessableEntity, "Account not found", out
	}

	switch {
	case errors.Is(err, account.ErrAccountNotFound), errors.Is(err, account.ErrTransactionNotFound):
		status := f.NotFoundStatus
		if status == 0 {
			status = fiber.StatusNotFound
		}
		return status, "Not Found", map[string]string{f.NotFound: ReasonNotFound}
	case errors.Is(err, account.ErrDuplicateEmail):
		return fiber.StatusUnprocessableEntity, "Conflict", map[string]string{"email": ReasonNotUnique}
	case errors.Is(err, account.ErrInvalidEmail):
		return fiber.StatusUnprocessableEntity, "Validation failed", map[string]string{"email": ReasonInvalidEmail}
	case errors.Is(err, account.ErrInsufficientFunds):
		return fiber.StatusUnprocessableEntity, "Conflict",
			map[string]string{account.FieldSourceAccountID: ReasonNotEnoughMoney}
	case errors.Is(err, account.ErrSameAccount):
		return fiber.StatusUnprocessableEntity, "Validation failed",
			map[string]string{account.FieldTargetAccountID: ReasonSameAsSource}
	case errors.Is(err, account.ErrBalanceOverflow), errors.Is(err, account.ErrAmountOutOfRange):
		return fiber.StatusUnprocessableEntity, "Range exceeded", map[string]string{f.Amount: ReasonTooBig}
	case errors.Is(err, account.ErrInvalidAmount):
		return fiber.StatusUnprocessableEntity, "Validation failed", map[string]string{f.Amount: amountReason(err)}
	}
	return fiber.StatusInternalServerError, "Internal Server Error", ReasonServerError
}

func amountReason(err error) string {
	switch {
	case errors.Is(err, money.ErrPrecision):
		return ReasonInvalidPrecision
	case errors.Is(err, money.ErrNegative):
		return ReasonMustNotBeNeg
	default:
		return ReasonMustBeGreater0
	}
}

// ProblemDetailsJSON writes err as a problem document using Failure.
func ProblemDetailsJSON(c *fiber.Ctx, err error, f Fields) error {
	status, title, detail := Failure(err, f)
	return ErrorResponseJSON(c, status, title, detail)
}
