package account

import (
	"context"

	"github.com/amirasaad/ledger/pkg/domain/account"
)

// DefaultListLimit is both the default and the maximum page size of
// ListTransactions.
const DefaultListLimit = 100

// GetAccount is a plain point read; it takes no locks and opens no unit of work.
func (s *Service) GetAccount(ctx context.Context, id int64) (*account.Account, error) {
	repo, err := s.uow.AccountRepository()
	if err != nil {
		return nil, err
	}
	acct, err := repo.Get(ctx, id)
	if err != nil {
		s.logFailure(s.logger.With("account_id", id), "GetAccount failed", err)
		return nil, err
	}
	return acct, nil
}

// GetTransaction is a plain point read of one ledger entry.
func (s *Service) GetTransaction(ctx context.Context, id int64) (*account.Transaction, error) {
	repo, err := s.uow.TransactionRepository()
	if err != nil {
		return nil, err
	}
	entry, err := repo.Get(ctx, id)
	if err != nil {
		s.logFailure(s.logger.With("transaction_id", id), "GetTransaction failed", err)
		return nil, err
	}
	return entry, nil
}

// ListTransactions returns the newest entries where the account is source or
// target. A limit that is non-positive or above DefaultListLimit means
// DefaultListLimit.
func (s *Service) ListTransactions(
	ctx context.Context,
	accountID int64,
	limit int,
) ([]*account.Transaction, error) {
	logger := s.logger.With("account_id", accountID)
	if limit <= 0 || limit > DefaultListLimit {
		limit = DefaultListLimit
	}
	if _, err := s.GetAccount(ctx, accountID); err != nil {
		return nil, err
	}
	repo, err := s.uow.TransactionRepository()
	if err != nil {
		return nil, err
	}
	entries, err := repo.ListByAccount(ctx, accountID, limit)
	if err != nil {
		s.logFailure(logger, "ListTransactions failed", err)
		return nil, err
	}
	return entries, nil
}
