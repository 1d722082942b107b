package transaction

import "github.com/shopspring/decimal"

// TransferRequest represents the request body for moving money between two accounts.
type TransferRequest struct {
	SourceAccountID int64            `json:"source_account_id" validate:"required,gt=0" example:"1"`
	TargetAccountID int64            `json:"target_account_id" validate:"required,gt=0,nefield=SourceAccountID" example:"2"`
	Amount          *decimal.Decimal `json:"amount" validate:"required,money_positive,money_scale,money_max" swaggertype:"string" example:"12.50"`
}
