// Package account provides the ledger's business logic: opening accounts,
// crediting them with deposits, and moving money between two accounts.
//
// Every mutation runs inside one unit of work. Account rows are row-locked in
// ascending id order before any balance is read for a decision, so concurrent
// transfers touching the same pair of accounts serialise instead of
// deadlocking. On any failure the unit of work is rolled back and no partial
// state is visible.
package account

import (
	"context"
	"log/slog"

	"github.com/amirasaad/ledger/pkg/commands"
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/repository"
)

// Service provides the Account Ledger operations and the Transfer Engine.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a new Service with the provided dependencies.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		uow:    uow,
		logger: logger,
	}
}

// CreateAccount opens an account with the given email. A nil initial balance
// opens it at 0.00. No ledger entry is written for the opening balance.
func (s *Service) CreateAccount(
	ctx context.Context,
	cmd commands.CreateAccount,
) (acct *account.Account, err error) {
	logger := s.logger.With("email", cmd.Email)
	logger.Info("CreateAccount started")
	defer func() {
		if err != nil {
			s.logFailure(logger, "CreateAccount failed", err)
			return
		}
		logger.Info("CreateAccount successful", "account_id", acct.ID)
	}()

	b := account.New().WithEmail(cmd.Email)
	if cmd.InitialBalance != nil {
		b = b.WithBalance(*cmd.InitialBalance)
	}
	candidate, err := b.Build()
	if err != nil {
		return nil, err
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		return repo.Create(ctx, candidate)
	})
	if err != nil {
		return nil, err
	}
	return candidate, nil
}

// Deposit credits an account with money entering the ledger from outside
// and appends a ledger entry with no source account. The balance update and
// the entry are written in the same unit of work.
func (s *Service) Deposit(
	ctx context.Context,
	cmd commands.Deposit,
) (acct *account.Account, err error) {
	logger := s.logger.With("account_id", cmd.AccountID, "amount", cmd.Amount.String())
	logger.Info("Deposit started")
	defer func() {
		if err != nil {
			s.logFailure(logger, "Deposit failed", err)
			return
		}
		logger.Info("Deposit successful", "balance", acct.Balance.String())
	}()

	if err = account.ValidateAmount(cmd.Amount); err != nil {
		return nil, err
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accountRepo, txRepo, err := s.getRepositories(uow)
		if err != nil {
			return err
		}
		locked, err := lockAccounts(ctx, accountRepo, cmd.AccountID)
		if err != nil {
			return err
		}
		target, ok := locked[cmd.AccountID]
		if !ok {
			return account.ErrAccountNotFound
		}
		if err := target.Credit(cmd.Amount); err != nil {
			return err
		}
		if err := accountRepo.UpdateBalance(ctx, target.ID, target.Balance); err != nil {
			return err
		}
		if err := txRepo.Create(ctx, account.NewDeposit(target.ID, cmd.Amount)); err != nil {
			return err
		}
		acct = target
		return nil
	})
	if err != nil {
		return nil, err
	}
	return acct, nil
}

// logFailure logs expected business rejections at Warn and everything else
// at Error.
func (s *Service) logFailure(logger *slog.Logger, msg string, err error) {
	if account.IsBusiness(err) {
		logger.Warn(msg, "error", err, "kind", account.KindOf(err).String())
		return
	}
	logger.Error(msg, "error", err, "kind", account.KindOf(err).String())
}
