// Package commands contains command DTOs carrying validated primitives into the ledger service.
package commands

import "github.com/shopspring/decimal"

// CreateAccount is a DTO for account creation. A nil InitialBalance opens the
// account at zero.
type CreateAccount struct {
	Email          string
	InitialBalance *decimal.Decimal
}

// Deposit is a DTO for crediting an account with money entering the ledger.
type Deposit struct {
	AccountID int64
	Amount    decimal.Decimal
}
