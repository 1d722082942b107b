package account

import (
	"github.com/amirasaad/ledger/pkg/commands"
	"github.com/amirasaad/ledger/pkg/dto"
	accountsvc "github.com/amirasaad/ledger/pkg/service/account"
	"github.com/amirasaad/ledger/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// Routes registers HTTP routes for account-related operations using the Fiber web framework.
//
// Routes:
//   - POST   /account                   : Open a new account.
//   - GET    /account/:id               : Read one account.
//   - POST   /account/:id/payment       : Credit the account from outside the ledger.
//   - GET    /account/:id/transactions  : List ledger entries touching the account.
func Routes(r fiber.Router, accountSvc *accountsvc.Service) {
	r.Post("/account", CreateAccount(accountSvc))
	r.Get("/account/:id", GetAccount(accountSvc))
	r.Post("/account/:id/payment", Payment(accountSvc))
	r.Get("/account/:id/transactions", GetTransactions(accountSvc))
}

// CreateAccount returns a Fiber handler for opening a new account.
// @Summary Open a new account
// @Description Opens an account for a unique email with an optional non-negative initial balance. The initial balance does not create a ledger entry.
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body CreateAccountRequest true "Account details"
// @Success 201 {object} common.Response{data=dto.AccountRead} "Account created"
// @Failure 422 {object} common.ProblemDetails "Validation failed or email already taken"
// @Failure 503 {object} common.ProblemDetails "Store unavailable"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /account [post]
func CreateAccount(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateAccountRequest](c)
		if input == nil {
			return err // error response already written
		}
		a, err := accountSvc.CreateAccount(c.UserContext(), commands.CreateAccount{
			Email:          input.Email,
			InitialBalance: input.InitialBalance,
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, err, common.Fields{Amount: "initial_balance"})
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Account created", dto.ToAccountRead(a))
	}
}

// GetAccount returns a Fiber handler reading a single account.
// @Summary Get an account
// @Tags accounts
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {object} common.Response{data=dto.AccountRead}
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Failure 422 {object} common.ProblemDetails "Invalid account ID"
// @Failure 503 {object} common.ProblemDetails "Store unavailable"
// @Router /account/{id} [get]
func GetAccount(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := common.ParseID(c, "id", "id")
		if !ok {
			return err
		}
		a, err := accountSvc.GetAccount(c.UserContext(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, err, common.Fields{NotFound: "id"})
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account fetched", dto.ToAccountRead(a))
	}
}

// Payment returns a Fiber handler crediting an account with money entering
// the ledger from outside. It responds with the updated account.
// @Summary Deposit funds into an account
// @Description Credits the account and records a ledger entry with no source account.
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path int true "Account ID"
// @Param request body PaymentRequest true "Payment details"
// @Success 200 {object} common.Response{data=dto.AccountRead} "Payment accepted"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Failure 422 {object} common.ProblemDetails "Invalid amount or balance would exceed the maximum"
// @Failure 503 {object} common.ProblemDetails "Store unavailable"
// @Router /account/{id}/payment [post]
func Payment(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accountID, ok, err := common.ParseID(c, "id", "account_id")
		if !ok {
			return err
		}
		input, err := common.BindAndValidate[PaymentRequest](c)
		if input == nil {
			return err // error response already written
		}
		a, err := accountSvc.Deposit(c.UserContext(), commands.Deposit{
			AccountID: accountID,
			Amount:    *input.Amount,
		})
		if err != nil {
			log.Debugf("payment for account %d rejected: %v", accountID, err)
			return common.ProblemDetailsJSON(c, err, common.Fields{NotFound: "account_id", Amount: "amount"})
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Payment accepted", dto.ToAccountRead(a))
	}
}

// GetTransactions returns a Fiber handler listing the newest ledger entries
// where the account is source or target.
// @Summary List account transactions
// @Tags accounts
// @Produce json
// @Param id path int true "Account ID"
// @Param limit query int false "Maximum number of entries" default(100)
// @Success 200 {object} common.Response{data=[]dto.TransactionRead}
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Failure 422 {object} common.ProblemDetails "Invalid account ID"
// @Router /account/{id}/transactions [get]
func GetTransactions(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := common.ParseID(c, "id", "id")
		if !ok {
			return err
		}
		entries, err := accountSvc.ListTransactions(c.UserContext(), id, c.QueryInt("limit"))
		if err != nil {
			return common.ProblemDetailsJSON(c, err, common.Fields{NotFound: "id"})
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transactions fetched", dto.ToTransactionReads(entries))
	}
}
