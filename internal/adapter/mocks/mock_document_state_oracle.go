package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"
	m "hotedit.dev/pkg/hotedit/internal/model"
)

// MockDocumentStateOracle is a mock type for the DocumentStateOracle type.
type MockDocumentStateOracle struct {
	mock.Mock
}

// MockDocumentStateOracle_Expecter wraps the mock for typed expectations.
type MockDocumentStateOracle_Expecter struct {
	mock *mock.Mock
}

// EXPECT returns the typed expecter.
func (_m *MockDocumentStateOracle) EXPECT() *MockDocumentStateOracle_Expecter {
	return &MockDocumentStateOracle_Expecter{mock: &_m.Mock}
}

// DocumentState provides a mock function with given fields: ctx, doc.
func (_m *MockDocumentStateOracle) DocumentState(ctx context.Context, doc m.DocumentID) (m.DocumentState, error) {
	ret := _m.Called(ctx, doc)

	var r0 m.DocumentState
	if rf, ok := ret.Get(0).(func(context.Context, m.DocumentID) m.DocumentState); ok {
		r0 = rf(ctx, doc)
	} else {
		r0 = ret.Get(0).(m.DocumentState)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, m.DocumentID) error); ok {
		r1 = rf(ctx, doc)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockDocumentStateOracle_DocumentState_Call is the typed call for DocumentState.
type MockDocumentStateOracle_DocumentState_Call struct {
	*mock.Call
}

// DocumentState is a helper method to define mock.On call.
func (_e *MockDocumentStateOracle_Expecter) DocumentState(ctx interface{}, doc interface{}) *MockDocumentStateOracle_DocumentState_Call {
	return &MockDocumentStateOracle_DocumentState_Call{Call: _e.mock.On("DocumentState", ctx, doc)}
}

// Run sets a handler invoked with the call arguments.
func (_c *MockDocumentStateOracle_DocumentState_Call) Run(run func(ctx context.Context, doc m.DocumentID)) *MockDocumentStateOracle_DocumentState_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(m.DocumentID))
	})

	return _c
}

// Return sets the return values.
func (_c *MockDocumentStateOracle_DocumentState_Call) Return(state m.DocumentState, err error) *MockDocumentStateOracle_DocumentState_Call {
	_c.Call.Return(state, err)
	return _c
}

// NewMockDocumentStateOracle creates a mock and registers expectation checks on cleanup.
func NewMockDocumentStateOracle(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockDocumentStateOracle {
	mockOracle := &MockDocumentStateOracle{}
	mockOracle.Mock.Test(t)

	t.Cleanup(func() { mockOracle.AssertExpectations(t) })

	return mockOracle
}
