package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"
	m "hotedit.dev/pkg/hotedit/internal/model"
)

// MockDocumentLookup is a mock type for the DocumentLookup type.
type MockDocumentLookup struct {
	mock.Mock
}

// MockDocumentLookup_Expecter wraps the mock for typed expectations.
type MockDocumentLookup_Expecter struct {
	mock *mock.Mock
}

// EXPECT returns the typed expecter.
func (_m *MockDocumentLookup) EXPECT() *MockDocumentLookup_Expecter {
	return &MockDocumentLookup_Expecter{mock: &_m.Mock}
}

// Documents provides a mock function with given fields: ctx, path.
func (_m *MockDocumentLookup) Documents(ctx context.Context, path m.Path) ([]m.DocumentInfo, error) {
	ret := _m.Called(ctx, path)

	var r0 []m.DocumentInfo
	if rf, ok := ret.Get(0).(func(context.Context, m.Path) []m.DocumentInfo); ok {
		r0 = rf(ctx, path)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]m.DocumentInfo)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, m.Path) error); ok {
		r1 = rf(ctx, path)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockDocumentLookup_Documents_Call is the typed call for Documents.
type MockDocumentLookup_Documents_Call struct {
	*mock.Call
}

// Documents is a helper method to define mock.On call.
func (_e *MockDocumentLookup_Expecter) Documents(ctx interface{}, path interface{}) *MockDocumentLookup_Documents_Call {
	return &MockDocumentLookup_Documents_Call{Call: _e.mock.On("Documents", ctx, path)}
}

// Run sets a handler invoked with the call arguments.
func (_c *MockDocumentLookup_Documents_Call) Run(run func(ctx context.Context, path m.Path)) *MockDocumentLookup_Documents_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(m.Path))
	})

	return _c
}

// Return sets the return values.
func (_c *MockDocumentLookup_Documents_Call) Return(docs []m.DocumentInfo, err error) *MockDocumentLookup_Documents_Call {
	_c.Call.Return(docs, err)
	return _c
}

// NewMockDocumentLookup creates a mock and registers expectation checks on cleanup.
func NewMockDocumentLookup(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockDocumentLookup {
	mockLookup := &MockDocumentLookup{}
	mockLookup.Mock.Test(t)

	t.Cleanup(func() { mockLookup.AssertExpectations(t) })

	return mockLookup
}
