package dto

import (
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/domain/money"
)

// TransactionRead is the API representation of a ledger entry.
// SourceAccountID is null for deposits.
type TransactionRead struct {
	ID              int64  `json:"id"`
	SourceAccountID *int64 `json:"source_account_id"`
	TargetAccountID int64  `json:"target_account_id"`
	Amount          string `json:"amount" example:"12.50"`
	CreatedAt       string `json:"created_at" example:"2024-01-02T15:04:05Z"`
}

// ToTransactionRead maps a ledger entry to its API representation.
func ToTransactionRead(tx *account.Transaction) *TransactionRead {
	if tx == nil {
		return nil
	}
	return &TransactionRead{
		ID:              tx.ID,
		SourceAccountID: tx.SourceAccountID,
		TargetAccountID: tx.TargetAccountID,
		Amount:          money.Format(tx.Amount),
		CreatedAt:       formatTime(tx.CreatedAt),
	}
}

// ToTransactionReads maps a page of ledger entries.
func ToTransactionReads(txs []*account.Transaction) []*TransactionRead {
	out := make([]*TransactionRead, 0, len(txs))
	for _, tx := range txs {
		out = append(out, ToTransactionRead(tx))
	}
	return out
}
