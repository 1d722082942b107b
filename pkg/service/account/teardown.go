package account

import (
	"context"

	"github.com/amirasaad/ledger/pkg/repository"
)

// DropAccount deletes an account together with every ledger entry that
// references it, in one unit of work. It breaks the append-only rule and
// exists for test and fixture teardown only; no transport exposes it.
func (s *Service) DropAccount(ctx context.Context, id int64) error {
	logger := s.logger.With("account_id", id)
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accountRepo, txRepo, err := s.getRepositories(uow)
		if err != nil {
			return err
		}
		if err := txRepo.DeleteByAccount(ctx, id); err != nil {
			return err
		}
		return accountRepo.Delete(ctx, id)
	})
	if err != nil {
		s.logFailure(logger, "DropAccount failed", err)
		return err
	}
	logger.Debug("DropAccount successful")
	return nil
}
