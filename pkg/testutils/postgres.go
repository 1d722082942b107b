package testutils

import (
	"context"
	"testing"
	"time"

	"github.com/amirasaad/ledger/infra"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// StartPostgres runs a disposable Postgres container, applies the embedded
// migrations and returns a connection to it. The container is terminated
// when the test ends.
func StartPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	pg, err := startPostgresContainer(ctx)
	require.NoError(t, err, "failed to start Postgres container")
	t.Cleanup(func() {
		_ = testcontainers.TerminateContainer(pg)
	})

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(20)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, infra.RunMigrations(db, DiscardLogger()))
	return db
}

// startPostgresContainer starts a Postgres container using Testcontainers
func startPostgresContainer(ctx context.Context) (*tcpostgres.PostgresContainer, error) {
	return tcpostgres.Run(
		ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("ledger"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(30*time.Second),
		),
	)
}
