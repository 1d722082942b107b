package account

import (
	"context"

	"github.com/amirasaad/ledger/pkg/commands"
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/repository"
)

// Transfer moves cmd.Amount from the source account to the target account
// and records one ledger entry for it.
//
// Inside a single unit of work it:
//  1. locks both rows, lowest id first
//  2. reports every missing side at once as *account.NotFoundError
//  3. rejects the move if the source balance is below the amount
//  4. rejects the move if the target balance would leave the representable range
//  5. appends the entry, credits the target, then debits the source
//
// Transfer is not idempotent: calling it twice moves the money twice and
// writes two entries.
func (s *Service) Transfer(
	ctx context.Context,
	cmd commands.Transfer,
) (entry *account.Transaction, err error) {
	logger := s.logger.With(
		"source_account_id", cmd.SourceAccountID,
		"target_account_id", cmd.TargetAccountID,
		"amount", cmd.Amount.String(),
	)
	logger.Info("Transfer started")
	defer func() {
		if err != nil {
			s.logFailure(logger, "Transfer failed", err)
			return
		}
		logger.Info("Transfer successful", "transaction_id", entry.ID)
	}()

	if cmd.SourceAccountID == cmd.TargetAccountID {
		return nil, account.ErrSameAccount
	}
	if err = account.ValidateAmount(cmd.Amount); err != nil {
		return nil, err
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accountRepo, txRepo, err := s.getRepositories(uow)
		if err != nil {
			return err
		}
		locked, err := lockAccounts(ctx, accountRepo, cmd.SourceAccountID, cmd.TargetAccountID)
		if err != nil {
			return err
		}
		source, target, err := resolvePair(locked, cmd.SourceAccountID, cmd.TargetAccountID)
		if err != nil {
			return err
		}

		if err := source.Debit(cmd.Amount); err != nil {
			return err
		}
		if err := target.Credit(cmd.Amount); err != nil {
			return err
		}

		rec := account.NewTransfer(source.ID, target.ID, cmd.Amount)
		if err := txRepo.Create(ctx, rec); err != nil {
			return err
		}
		if err := accountRepo.UpdateBalance(ctx, target.ID, target.Balance); err != nil {
			return err
		}
		if err := accountRepo.UpdateBalance(ctx, source.ID, source.Balance); err != nil {
			return err
		}
		entry = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// resolvePair picks source and target out of the locked rows, naming every
// side that is missing.
func resolvePair(
	locked map[int64]*account.Account,
	sourceID, targetID int64,
) (source, target *account.Account, err error) {
	source, hasSource := locked[sourceID]
	target, hasTarget := locked[targetID]

	var missing []string
	if !hasSource {
		missing = append(missing, account.FieldSourceAccountID)
	}
	if !hasTarget {
		missing = append(missing, account.FieldTargetAccountID)
	}
	if len(missing) > 0 {
		return nil, nil, &account.NotFoundError{Fields: missing}
	}
	return source, target, nil
}
