package initializer

import (
	"fmt"

	"github.com/amirasaad/ledger/infra"
	infra_repository "github.com/amirasaad/ledger/infra/repository"
	"github.com/amirasaad/ledger/pkg/app"
	"github.com/amirasaad/ledger/pkg/config"
)

// InitializeDependencies initializes all the application dependencies:
// logger, ledger store connection, schema migrations and the unit of work.
func InitializeDependencies(cfg *config.App) (
	deps *app.Deps,
	err error,
) {
	deps = &app.Deps{}
	logger := setupLogger(cfg.Log)
	deps.Logger = logger

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		return nil, err
	}
	deps.DB = db

	if cfg.DB.AutoMigrate {
		if err := infra.RunMigrations(db, logger); err != nil {
			return nil, fmt.Errorf("failed to migrate ledger store: %w", err)
		}
	}

	deps.Uow = infra_repository.NewUoW(
		db,
		infra_repository.WithLockTimeout(cfg.DB.LockTimeout),
		infra_repository.WithStatementTimeout(cfg.DB.StatementTimeout),
		infra_repository.WithTimeout(cfg.DB.TxTimeout),
	)

	return deps, nil
}
