package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"
	m "hotedit.dev/pkg/hotedit/internal/model"
)

// MockRegionDiscovery is a mock type for the RegionDiscovery type.
type MockRegionDiscovery struct {
	mock.Mock
}

// MockRegionDiscovery_Expecter wraps the mock for typed expectations.
type MockRegionDiscovery_Expecter struct {
	mock *mock.Mock
}

// EXPECT returns the typed expecter.
func (_m *MockRegionDiscovery) EXPECT() *MockRegionDiscovery_Expecter {
	return &MockRegionDiscovery_Expecter{mock: &_m.Mock}
}

// HandlerRegions provides a mock function with given fields: ctx, doc.
func (_m *MockRegionDiscovery) HandlerRegions(ctx context.Context, doc m.DocumentID) (string, []m.Span, error) {
	ret := _m.Called(ctx, doc)

	r0 := ret.String(0)

	var r1 []m.Span
	if ret.Get(1) != nil {
		r1 = ret.Get(1).([]m.Span)
	}

	return r0, r1, ret.Error(2)
}

// MockRegionDiscovery_HandlerRegions_Call is the typed call for HandlerRegions.
type MockRegionDiscovery_HandlerRegions_Call struct {
	*mock.Call
}

// HandlerRegions is a helper method to define mock.On call.
func (_e *MockRegionDiscovery_Expecter) HandlerRegions(ctx interface{}, doc interface{}) *MockRegionDiscovery_HandlerRegions_Call {
	return &MockRegionDiscovery_HandlerRegions_Call{Call: _e.mock.On("HandlerRegions", ctx, doc)}
}

// Return sets the return values.
func (_c *MockRegionDiscovery_HandlerRegions_Call) Return(version string, spans []m.Span, err error) *MockRegionDiscovery_HandlerRegions_Call {
	_c.Call.Return(version, spans, err)
	return _c
}

// NewMockRegionDiscovery creates a mock and registers expectation checks on cleanup.
func NewMockRegionDiscovery(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRegionDiscovery {
	mockDiscovery := &MockRegionDiscovery{}
	mockDiscovery.Mock.Test(t)

	t.Cleanup(func() { mockDiscovery.AssertExpectations(t) })

	return mockDiscovery
}
