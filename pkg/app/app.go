package app

import (
	"log/slog"

	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/amirasaad/ledger/pkg/service/account"
	"gorm.io/gorm"
)

// Deps contains the infrastructure the ledger services are built from.
type Deps struct {
	Uow    repository.UnitOfWork
	DB     *gorm.DB
	Logger *slog.Logger
}

type App struct {
	Deps           *Deps
	Config         *config.App
	AccountService *account.Service
}

func New(deps *Deps, cfg *config.App) *App {
	return &App{
		Deps:           deps,
		Config:         cfg,
		AccountService: account.New(deps.Uow, deps.Logger),
	}
}

// Close releases the store connection pool.
func (a *App) Close() error {
	if a.Deps == nil || a.Deps.DB == nil {
		return nil
	}
	sqlDB, err := a.Deps.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
