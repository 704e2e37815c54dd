package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"
	m "hotedit.dev/pkg/hotedit/internal/model"
)

// MockLedgerStore is a mock type for the LedgerStore type.
type MockLedgerStore struct {
	mock.Mock
}

// MockLedgerStore_Expecter wraps the mock for typed expectations.
type MockLedgerStore_Expecter struct {
	mock *mock.Mock
}

// EXPECT returns the typed expecter.
func (_m *MockLedgerStore) EXPECT() *MockLedgerStore_Expecter {
	return &MockLedgerStore_Expecter{mock: &_m.Mock}
}

// SaveLedger provides a mock function with given fields: ctx, dir, ledger.
func (_m *MockLedgerStore) SaveLedger(ctx context.Context, dir m.Path, ledger m.Ledger) error {
	ret := _m.Called(ctx, dir, ledger)
	return ret.Error(0)
}

// LoadLedger provides a mock function with given fields: ctx, dir.
func (_m *MockLedgerStore) LoadLedger(ctx context.Context, dir m.Path) (m.Ledger, error) {
	ret := _m.Called(ctx, dir)
	return ret.Get(0).(m.Ledger), ret.Error(1)
}

// MockLedgerStore_SaveLedger_Call is the typed call for SaveLedger.
type MockLedgerStore_SaveLedger_Call struct {
	*mock.Call
}

// SaveLedger is a helper method to define mock.On call.
func (_e *MockLedgerStore_Expecter) SaveLedger(ctx interface{}, dir interface{}, ledger interface{}) *MockLedgerStore_SaveLedger_Call {
	return &MockLedgerStore_SaveLedger_Call{Call: _e.mock.On("SaveLedger", ctx, dir, ledger)}
}

// Return sets the return values.
func (_c *MockLedgerStore_SaveLedger_Call) Return(err error) *MockLedgerStore_SaveLedger_Call {
	_c.Call.Return(err)
	return _c
}

// MockLedgerStore_LoadLedger_Call is the typed call for LoadLedger.
type MockLedgerStore_LoadLedger_Call struct {
	*mock.Call
}

// LoadLedger is a helper method to define mock.On call.
func (_e *MockLedgerStore_Expecter) LoadLedger(ctx interface{}, dir interface{}) *MockLedgerStore_LoadLedger_Call {
	return &MockLedgerStore_LoadLedger_Call{Call: _e.mock.On("LoadLedger", ctx, dir)}
}

// Return sets the return values.
func (_c *MockLedgerStore_LoadLedger_Call) Return(ledger m.Ledger, err error) *MockLedgerStore_LoadLedger_Call {
	_c.Call.Return(ledger, err)
	return _c
}

// NewMockLedgerStore creates a mock and registers expectation checks on cleanup.
func NewMockLedgerStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockLedgerStore {
	mockStore := &MockLedgerStore{}
	mockStore.Mock.Test(t)

	t.Cleanup(func() { mockStore.AssertExpectations(t) })

	return mockStore
}
