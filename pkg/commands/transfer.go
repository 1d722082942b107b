package commands

import "github.com/shopspring/decimal"

// Transfer moves Amount from SourceAccountID to TargetAccountID.
type Transfer struct {
	SourceAccountID int64
	TargetAccountID int64
	Amount          decimal.Decimal
}
