package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"
	"hotedit.dev/pkg/hotedit/internal/domain"
)

// MockWorkflow is a mock type for the Workflow type.
type MockWorkflow struct {
	mock.Mock
}

// MockWorkflow_Expecter wraps the mock for typed expectations.
type MockWorkflow_Expecter struct {
	mock *mock.Mock
}

// EXPECT returns the typed expecter.
func (_m *MockWorkflow) EXPECT() *MockWorkflow_Expecter {
	return &MockWorkflow_Expecter{mock: &_m.Mock}
}

// Baseline provides a mock function with given fields: ctx, args.
func (_m *MockWorkflow) Baseline(ctx context.Context, args domain.BaselineArgs) error {
	ret := _m.Called(ctx, args)
	return ret.Error(0)
}

// MockWorkflow_Baseline_Call is the typed call for Baseline.
type MockWorkflow_Baseline_Call struct {
	*mock.Call
}

// Baseline is a helper method to define mock.On call.
func (_e *MockWorkflow_Expecter) Baseline(ctx interface{}, args interface{}) *MockWorkflow_Baseline_Call {
	return &MockWorkflow_Baseline_Call{Call: _e.mock.On("Baseline", ctx, args)}
}

// Return sets the return values.
func (_c *MockWorkflow_Baseline_Call) Return(err error) *MockWorkflow_Baseline_Call {
	_c.Call.Return(err)
	return _c
}

// Regions provides a mock function with given fields: ctx, args.
func (_m *MockWorkflow) Regions(ctx context.Context, args domain.RegionsArgs) error {
	ret := _m.Called(ctx, args)
	return ret.Error(0)
}

// MockWorkflow_Regions_Call is the typed call for Regions.
type MockWorkflow_Regions_Call struct {
	*mock.Call
}

// Regions is a helper method to define mock.On call.
func (_e *MockWorkflow_Expecter) Regions(ctx interface{}, args interface{}) *MockWorkflow_Regions_Call {
	return &MockWorkflow_Regions_Call{Call: _e.mock.On("Regions", ctx, args)}
}

// Return sets the return values.
func (_c *MockWorkflow_Regions_Call) Return(err error) *MockWorkflow_Regions_Call {
	_c.Call.Return(err)
	return _c
}

// Remap provides a mock function with given fields: ctx, args.
func (_m *MockWorkflow) Remap(ctx context.Context, args domain.RemapArgs) error {
	ret := _m.Called(ctx, args)
	return ret.Error(0)
}

// MockWorkflow_Remap_Call is the typed call for Remap.
type MockWorkflow_Remap_Call struct {
	*mock.Call
}

// Remap is a helper method to define mock.On call.
func (_e *MockWorkflow_Expecter) Remap(ctx interface{}, args interface{}) *MockWorkflow_Remap_Call {
	return &MockWorkflow_Remap_Call{Call: _e.mock.On("Remap", ctx, args)}
}

// Return sets the return values.
func (_c *MockWorkflow_Remap_Call) Return(err error) *MockWorkflow_Remap_Call {
	_c.Call.Return(err)
	return _c
}

// View provides a mock function with given fields: ctx, args.
func (_m *MockWorkflow) View(ctx context.Context, args domain.ViewArgs) error {
	ret := _m.Called(ctx, args)
	return ret.Error(0)
}

// MockWorkflow_View_Call is the typed call for View.
type MockWorkflow_View_Call struct {
	*mock.Call
}

// View is a helper method to define mock.On call.
func (_e *MockWorkflow_Expecter) View(ctx interface{}, args interface{}) *MockWorkflow_View_Call {
	return &MockWorkflow_View_Call{Call: _e.mock.On("View", ctx, args)}
}

// Return sets the return values.
func (_c *MockWorkflow_View_Call) Return(err error) *MockWorkflow_View_Call {
	_c.Call.Return(err)
	return _c
}

// NewMockWorkflow creates a mock and registers expectation checks on cleanup.
func NewMockWorkflow(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWorkflow {
	mockWorkflow := &MockWorkflow{}
	mockWorkflow.Mock.Test(t)

	t.Cleanup(func() { mockWorkflow.AssertExpectations(t) })

	return mockWorkflow
}
