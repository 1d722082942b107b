package account

import "github.com/shopspring/decimal"

//revive:disable

// CreateAccountRequest represents the request body for opening an account.
type CreateAccountRequest struct {
	Email          string           `json:"email" validate:"required,email" example:"alice@example.com"`
	InitialBalance *decimal.Decimal `json:"initial_balance,omitempty" validate:"omitempty,money_nonnegative,money_scale,money_max" swaggertype:"string" example:"100.00"`
}

// PaymentRequest represents the request body for crediting an account from outside the ledger.
type PaymentRequest struct {
	Amount *decimal.Decimal `json:"amount" validate:"required,money_positive,money_scale,money_max" swaggertype:"string" example:"25.00"`
}

//revive:enable
