// Package transaction exposes ledger entries: creating transfers and reading
// single entries back.
package transaction

import (
	"github.com/amirasaad/ledger/pkg/commands"
	"github.com/amirasaad/ledger/pkg/dto"
	accountsvc "github.com/amirasaad/ledger/pkg/service/account"
	"github.com/amirasaad/ledger/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the transaction endpoints.
//
// Routes:
//   - POST   /transaction      : Transfer money between two accounts.
//   - GET    /transaction/:id  : Read one ledger entry.
func Routes(r fiber.Router, accountSvc *accountsvc.Service) {
	r.Post("/transaction", Create(accountSvc))
	r.Get("/transaction/:id", Get(accountSvc))
}

// Create returns a Fiber handler for transferring funds between accounts.
// Missing accounts are reported per field with 422 rather than 404, since the
// ids come from the body.
// @Summary Transfer funds between accounts
// @Description Moves amount from the source to the target account and records one ledger entry. Not idempotent: repeating the request moves the money again.
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body TransferRequest true "Transfer details"
// @Success 201 {object} common.Response{data=dto.TransactionRead} "Transfer completed"
// @Failure 422 {object} common.ProblemDetails "Validation failed, unknown account, insufficient funds or balance overflow"
// @Failure 503 {object} common.ProblemDetails "Store unavailable"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /transaction [post]
func Create(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[TransferRequest](c)
		if input == nil {
			return err // error response already written
		}
		tx, err := accountSvc.Transfer(c.UserContext(), commands.Transfer{
			SourceAccountID: input.SourceAccountID,
			TargetAccountID: input.TargetAccountID,
			Amount:          *input.Amount,
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, err, common.Fields{Amount: "amount"})
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Transfer completed", dto.ToTransactionRead(tx))
	}
}

// Get returns a Fiber handler reading one ledger entry.
// @Summary Get a transaction
// @Tags transactions
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} common.Response{data=dto.TransactionRead}
// @Failure 404 {object} common.ProblemDetails "Transaction not found"
// @Failure 422 {object} common.ProblemDetails "Invalid transaction ID"
// @Router /transaction/{id} [get]
func Get(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := common.ParseID(c, "id", "id")
		if !ok {
			return err
		}
		tx, err := accountSvc.GetTransaction(c.UserContext(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, err, common.Fields{NotFound: "id"})
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transaction fetched", dto.ToTransactionRead(tx))
	}
}
