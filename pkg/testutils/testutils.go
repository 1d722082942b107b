package testutils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	infrarepo "github.com/amirasaad/ledger/infra/repository"
	"github.com/amirasaad/ledger/pkg/app"
	"github.com/amirasaad/ledger/pkg/commands"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/domain/account"
	accountsvc "github.com/amirasaad/ledger/pkg/service/account"
	"github.com/amirasaad/ledger/webapi"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens a private in-memory SQLite ledger store migrated from the
// gorm models. The pool is pinned to one connection, so units of work run one
// after another, which stands in for Postgres row locks.
func NewTestDB(t testing.TB) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, infrarepo.AutoMigrate(db))
	return db
}

// DiscardLogger returns a logger that drops everything.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// NewTestService returns an account service over a fresh test store.
func NewTestService(t testing.TB) (*accountsvc.Service, *gorm.DB) {
	t.Helper()
	db := NewTestDB(t)
	return accountsvc.New(infrarepo.NewUoW(db), DiscardLogger()), db
}

// NewTestApp returns the HTTP app over a fresh test store, without rate
// limiting, together with the service behind it.
func NewTestApp(t testing.TB) (*fiber.App, *accountsvc.Service) {
	t.Helper()
	svc, db := NewTestService(t)
	a := &app.App{
		Deps:           &app.Deps{DB: db, Logger: DiscardLogger()},
		Config:         &config.App{Env: "test"},
		AccountService: svc,
	}
	return webapi.SetupApp(a), svc
}

// RandomEmail returns a unique address for test accounts.
func RandomEmail() string {
	return fmt.Sprintf("test_%s@example.com", uuid.NewString()[:8])
}

// CreateAccount opens an account with balance and drops it again when the
// test ends.
func CreateAccount(t testing.TB, svc *accountsvc.Service, balance string) *account.Account {
	t.Helper()
	bal := decimal.RequireFromString(balance)
	acct, err := svc.CreateAccount(context.Background(), commands.CreateAccount{
		Email:          RandomEmail(),
		InitialBalance: &bal,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = svc.DropAccount(context.Background(), acct.ID)
	})
	return acct
}

// DecodeJSON reads resp's body into v and closes it.
func DecodeJSON(t testing.TB, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close() //nolint: errcheck
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

// Dec parses a decimal literal and panics on bad input.
func Dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// MakeRequest is a helper for making HTTP requests in tests
func MakeRequest(fiberApp *fiber.App, method, path, body string) *http.Response {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	resp, err := fiberApp.Test(req, -1)
	if err != nil {
		panic(err) // For standalone tests, panic on error
	}
	return resp
}
