package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"
	m "hotedit.dev/pkg/hotedit/internal/model"
)

// MockUI is a mock type for the UI type.
type MockUI struct {
	mock.Mock
}

// MockUI_Expecter wraps the mock for typed expectations.
type MockUI_Expecter struct {
	mock *mock.Mock
}

// EXPECT returns the typed expecter.
func (_m *MockUI) EXPECT() *MockUI_Expecter {
	return &MockUI_Expecter{mock: &_m.Mock}
}

// DisplayBaseline provides a mock function with given fields: ctx, baseline.
func (_m *MockUI) DisplayBaseline(ctx context.Context, baseline *m.Baseline) error {
	ret := _m.Called(ctx, baseline)
	return ret.Error(0)
}

// MockUI_DisplayBaseline_Call is the typed call for DisplayBaseline.
type MockUI_DisplayBaseline_Call struct {
	*mock.Call
}

// DisplayBaseline is a helper method to define mock.On call.
func (_e *MockUI_Expecter) DisplayBaseline(ctx interface{}, baseline interface{}) *MockUI_DisplayBaseline_Call {
	return &MockUI_DisplayBaseline_Call{Call: _e.mock.On("DisplayBaseline", ctx, baseline)}
}

// Return sets the return values.
func (_c *MockUI_DisplayBaseline_Call) Return(err error) *MockUI_DisplayBaseline_Call {
	_c.Call.Return(err)
	return _c
}

// DisplayExceptionRegions provides a mock function with given fields: ctx, baseline, regions.
func (_m *MockUI) DisplayExceptionRegions(ctx context.Context, baseline *m.Baseline, regions map[int]m.ExceptionRegions) error {
	ret := _m.Called(ctx, baseline, regions)
	return ret.Error(0)
}

// MockUI_DisplayExceptionRegions_Call is the typed call for DisplayExceptionRegions.
type MockUI_DisplayExceptionRegions_Call struct {
	*mock.Call
}

// DisplayExceptionRegions is a helper method to define mock.On call.
func (_e *MockUI_Expecter) DisplayExceptionRegions(ctx interface{}, baseline interface{}, regions interface{}) *MockUI_DisplayExceptionRegions_Call {
	return &MockUI_DisplayExceptionRegions_Call{Call: _e.mock.On("DisplayExceptionRegions", ctx, baseline, regions)}
}

// Return sets the return values.
func (_c *MockUI_DisplayExceptionRegions_Call) Return(err error) *MockUI_DisplayExceptionRegions_Call {
	_c.Call.Return(err)
	return _c
}

// DisplayUpdates provides a mock function with given fields: ctx, result, ledgerDiff.
func (_m *MockUI) DisplayUpdates(ctx context.Context, result m.UpdateResult, ledgerDiff string) error {
	ret := _m.Called(ctx, result, ledgerDiff)
	return ret.Error(0)
}

// MockUI_DisplayUpdates_Call is the typed call for DisplayUpdates.
type MockUI_DisplayUpdates_Call struct {
	*mock.Call
}

// DisplayUpdates is a helper method to define mock.On call.
func (_e *MockUI_Expecter) DisplayUpdates(ctx interface{}, result interface{}, ledgerDiff interface{}) *MockUI_DisplayUpdates_Call {
	return &MockUI_DisplayUpdates_Call{Call: _e.mock.On("DisplayUpdates", ctx, result, ledgerDiff)}
}

// Return sets the return values.
func (_c *MockUI_DisplayUpdates_Call) Return(err error) *MockUI_DisplayUpdates_Call {
	_c.Call.Return(err)
	return _c
}

// DisplayLedger provides a mock function with given fields: ctx, ledger.
func (_m *MockUI) DisplayLedger(ctx context.Context, ledger m.Ledger) error {
	ret := _m.Called(ctx, ledger)
	return ret.Error(0)
}

// MockUI_DisplayLedger_Call is the typed call for DisplayLedger.
type MockUI_DisplayLedger_Call struct {
	*mock.Call
}

// DisplayLedger is a helper method to define mock.On call.
func (_e *MockUI_Expecter) DisplayLedger(ctx interface{}, ledger interface{}) *MockUI_DisplayLedger_Call {
	return &MockUI_DisplayLedger_Call{Call: _e.mock.On("DisplayLedger", ctx, ledger)}
}

// Return sets the return values.
func (_c *MockUI_DisplayLedger_Call) Return(err error) *MockUI_DisplayLedger_Call {
	_c.Call.Return(err)
	return _c
}

// DisplayJournal provides a mock function with given fields: ctx, records.
func (_m *MockUI) DisplayJournal(ctx context.Context, records []m.EditRecord) error {
	ret := _m.Called(ctx, records)
	return ret.Error(0)
}

// MockUI_DisplayJournal_Call is the typed call for DisplayJournal.
type MockUI_DisplayJournal_Call struct {
	*mock.Call
}

// DisplayJournal is a helper method to define mock.On call.
func (_e *MockUI_Expecter) DisplayJournal(ctx interface{}, records interface{}) *MockUI_DisplayJournal_Call {
	return &MockUI_DisplayJournal_Call{Call: _e.mock.On("DisplayJournal", ctx, records)}
}

// Return sets the return values.
func (_c *MockUI_DisplayJournal_Call) Return(err error) *MockUI_DisplayJournal_Call {
	_c.Call.Return(err)
	return _c
}

// NewMockUI creates a mock and registers expectation checks on cleanup.
func NewMockUI(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUI {
	mockUI := &MockUI{}
	mockUI.Mock.Test(t)

	t.Cleanup(func() { mockUI.AssertExpectations(t) })

	return mockUI
}
