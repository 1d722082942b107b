// Package mocks holds testify mocks of the repository contracts.
package mocks

import (
	"context"
	"reflect"

	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type mockConstructorTestingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockUnitOfWork is a mock type for repository.UnitOfWork.
type MockUnitOfWork struct {
	mock.Mock
}

// NewMockUnitOfWork creates a MockUnitOfWork whose expectations are asserted
// when the test ends.
func NewMockUnitOfWork(t mockConstructorTestingT) *MockUnitOfWork {
	m := &MockUnitOfWork{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Do provides a mock function. See RunInline for running fn against the mock.
func (m *MockUnitOfWork) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	ret := m.Called(ctx, fn)
	if rf, ok := ret.Get(0).(func(context.Context, func(repository.UnitOfWork) error) error); ok {
		return rf(ctx, fn)
	}
	return ret.Error(0)
}

// RunInline makes Do call fn with the mock itself and return its error.
func (m *MockUnitOfWork) RunInline() *mock.Call {
	return m.On("Do", mock.Anything, mock.Anything).
		Return(func(_ context.Context, fn func(repository.UnitOfWork) error) error {
			return fn(m)
		})
}

func (m *MockUnitOfWork) GetRepository(repoType reflect.Type) (any, error) {
	ret := m.Called(repoType)
	return ret.Get(0), ret.Error(1)
}

func (m *MockUnitOfWork) AccountRepository() (repository.AccountRepository, error) {
	ret := m.Called()
	var r0 repository.AccountRepository
	if v := ret.Get(0); v != nil {
		r0 = v.(repository.AccountRepository)
	}
	return r0, ret.Error(1)
}

func (m *MockUnitOfWork) TransactionRepository() (repository.TransactionRepository, error) {
	ret := m.Called()
	var r0 repository.TransactionRepository
	if v := ret.Get(0); v != nil {
		r0 = v.(repository.TransactionRepository)
	}
	return r0, ret.Error(1)
}

// MockAccountRepository is a mock type for repository.AccountRepository.
type MockAccountRepository struct {
	mock.Mock
}

func NewMockAccountRepository(t mockConstructorTestingT) *MockAccountRepository {
	m := &MockAccountRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAccountRepository) Create(ctx context.Context, a *account.Account) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockAccountRepository) Get(ctx context.Context, id int64) (*account.Account, error) {
	ret := m.Called(ctx, id)
	var r0 *account.Account
	if v := ret.Get(0); v != nil {
		r0 = v.(*account.Account)
	}
	return r0, ret.Error(1)
}

func (m *MockAccountRepository) LockForUpdate(ctx context.Context, ids ...int64) ([]*account.Account, error) {
	ret := m.Called(ctx, ids)
	var r0 []*account.Account
	if v := ret.Get(0); v != nil {
		r0 = v.([]*account.Account)
	}
	return r0, ret.Error(1)
}

func (m *MockAccountRepository) UpdateBalance(ctx context.Context, id int64, balance decimal.Decimal) error {
	return m.Called(ctx, id, balance).Error(0)
}

func (m *MockAccountRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// MockTransactionRepository is a mock type for repository.TransactionRepository.
type MockTransactionRepository struct {
	mock.Mock
}

func NewMockTransactionRepository(t mockConstructorTestingT) *MockTransactionRepository {
	m := &MockTransactionRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockTransactionRepository) Create(ctx context.Context, tx *account.Transaction) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockTransactionRepository) Get(ctx context.Context, id int64) (*account.Transaction, error) {
	ret := m.Called(ctx, id)
	var r0 *account.Transaction
	if v := ret.Get(0); v != nil {
		r0 = v.(*account.Transaction)
	}
	return r0, ret.Error(1)
}

func (m *MockTransactionRepository) ListByAccount(
	ctx context.Context,
	accountID int64,
	limit int,
) ([]*account.Transaction, error) {
	ret := m.Called(ctx, accountID, limit)
	var r0 []*account.Transaction
	if v := ret.Get(0); v != nil {
		r0 = v.([]*account.Transaction)
	}
	return r0, ret.Error(1)
}

func (m *MockTransactionRepository) DeleteByAccount(ctx context.Context, accountID int64) error {
	return m.Called(ctx, accountID).Error(0)
}
