package account

import (
	"context"

	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/repository"
)

// getRepositories retrieves the account and transaction repositories from the unit of work
func (s *Service) getRepositories(
	uow repository.UnitOfWork,
) (repository.AccountRepository, repository.TransactionRepository, error) {
	accountRepo, err := uow.AccountRepository()
	if err != nil {
		return nil, nil, err
	}
	txRepo, err := uow.TransactionRepository()
	if err != nil {
		return nil, nil, err
	}
	return accountRepo, txRepo, nil
}

// lockAccounts row-locks the given accounts and indexes the ones that exist
// by id. The repository acquires the locks in ascending id order whatever
// order ids are passed in.
func lockAccounts(
	ctx context.Context,
	repo repository.AccountRepository,
	ids ...int64,
) (map[int64]*account.Account, error) {
	rows, err := repo.LockForUpdate(ctx, ids...)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]*account.Account, len(rows))
	for _, a := range rows {
		byID[a.ID] = a
	}
	return byID, nil
}
