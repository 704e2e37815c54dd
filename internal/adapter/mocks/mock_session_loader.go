package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"
	m "hotedit.dev/pkg/hotedit/internal/model"
)

// MockSessionLoader is a mock type for the SessionLoader type.
type MockSessionLoader struct {
	mock.Mock
}

// MockSessionLoader_Expecter wraps the mock for typed expectations.
type MockSessionLoader_Expecter struct {
	mock *mock.Mock
}

// EXPECT returns the typed expecter.
func (_m *MockSessionLoader) EXPECT() *MockSessionLoader_Expecter {
	return &MockSessionLoader_Expecter{mock: &_m.Mock}
}

// LoadSession provides a mock function with given fields: ctx, path.
func (_m *MockSessionLoader) LoadSession(ctx context.Context, path m.Path) (*m.Session, error) {
	ret := _m.Called(ctx, path)

	var r0 *m.Session
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*m.Session)
	}

	return r0, ret.Error(1)
}

// MockSessionLoader_LoadSession_Call is the typed call for LoadSession.
type MockSessionLoader_LoadSession_Call struct {
	*mock.Call
}

// LoadSession is a helper method to define mock.On call.
func (_e *MockSessionLoader_Expecter) LoadSession(ctx interface{}, path interface{}) *MockSessionLoader_LoadSession_Call {
	return &MockSessionLoader_LoadSession_Call{Call: _e.mock.On("LoadSession", ctx, path)}
}

// Return sets the return values.
func (_c *MockSessionLoader_LoadSession_Call) Return(session *m.Session, err error) *MockSessionLoader_LoadSession_Call {
	_c.Call.Return(session, err)
	return _c
}

// NewMockSessionLoader creates a mock and registers expectation checks on cleanup.
func NewMockSessionLoader(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSessionLoader {
	mockLoader := &MockSessionLoader{}
	mockLoader.Mock.Test(t)

	t.Cleanup(func() { mockLoader.AssertExpectations(t) })

	return mockLoader
}
