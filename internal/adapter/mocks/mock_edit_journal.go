package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"
	m "hotedit.dev/pkg/hotedit/internal/model"
)

// MockEditJournal is a mock type for the EditJournal type.
type MockEditJournal struct {
	mock.Mock
}

// MockEditJournal_Expecter wraps the mock for typed expectations.
type MockEditJournal_Expecter struct {
	mock *mock.Mock
}

// EXPECT returns the typed expecter.
func (_m *MockEditJournal) EXPECT() *MockEditJournal_Expecter {
	return &MockEditJournal_Expecter{mock: &_m.Mock}
}

// AppendEdit provides a mock function with given fields: ctx, dir, record.
func (_m *MockEditJournal) AppendEdit(ctx context.Context, dir m.Path, record m.EditRecord) error {
	ret := _m.Called(ctx, dir, record)
	return ret.Error(0)
}

// Edits provides a mock function with given fields: ctx, dir.
func (_m *MockEditJournal) Edits(ctx context.Context, dir m.Path) ([]m.EditRecord, error) {
	ret := _m.Called(ctx, dir)

	var records []m.EditRecord
	if ret.Get(0) != nil {
		records = ret.Get(0).([]m.EditRecord)
	}

	return records, ret.Error(1)
}

// MockEditJournal_AppendEdit_Call is the typed call for AppendEdit.
type MockEditJournal_AppendEdit_Call struct {
	*mock.Call
}

// AppendEdit is a helper method to define mock.On call.
func (_e *MockEditJournal_Expecter) AppendEdit(ctx interface{}, dir interface{}, record interface{}) *MockEditJournal_AppendEdit_Call {
	return &MockEditJournal_AppendEdit_Call{Call: _e.mock.On("AppendEdit", ctx, dir, record)}
}

// Return sets the return values.
func (_c *MockEditJournal_AppendEdit_Call) Return(err error) *MockEditJournal_AppendEdit_Call {
	_c.Call.Return(err)
	return _c
}

// MockEditJournal_Edits_Call is the typed call for Edits.
type MockEditJournal_Edits_Call struct {
	*mock.Call
}

// Edits is a helper method to define mock.On call.
func (_e *MockEditJournal_Expecter) Edits(ctx interface{}, dir interface{}) *MockEditJournal_Edits_Call {
	return &MockEditJournal_Edits_Call{Call: _e.mock.On("Edits", ctx, dir)}
}

// Return sets the return values.
func (_c *MockEditJournal_Edits_Call) Return(records []m.EditRecord, err error) *MockEditJournal_Edits_Call {
	_c.Call.Return(records, err)
	return _c
}

// NewMockEditJournal creates a mock and registers expectation checks on cleanup.
func NewMockEditJournal(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEditJournal {
	mockJournal := &MockEditJournal{}
	mockJournal.Mock.Test(t)

	t.Cleanup(func() { mockJournal.AssertExpectations(t) })

	return mockJournal
}
