package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mouse-blink/luarename/internal/domain"
)

// MockWorkflow is a mock implementation of Workflow.
type MockWorkflow struct {
	mock.Mock
}

type MockWorkflow_Expecter struct {
	mock *mock.Mock
}

func (_m *MockWorkflow) EXPECT() *MockWorkflow_Expecter {
	return &MockWorkflow_Expecter{mock: &_m.Mock}
}

// Rename provides a mock function with given fields: ctx, args
func (_m *MockWorkflow) Rename(ctx context.Context, args domain.RenameArgs) error {
	ret := _m.Called(ctx, args)

	if len(ret) == 0 {
		panic("no return value specified for Rename")
	}

	if rf, ok := ret.Get(0).(func(context.Context, domain.RenameArgs) error); ok {
		return rf(ctx, args)
	}

	r0 := ret.Error(0)

	return r0
}

// MockWorkflow_Rename_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Rename'.
type MockWorkflow_Rename_Call struct {
	*mock.Call
}

// Rename is a helper method to define mock.On call
func (_e *MockWorkflow_Expecter) Rename(ctx interface{}, args interface{}) *MockWorkflow_Rename_Call {
	return &MockWorkflow_Rename_Call{Call: _e.mock.On("Rename", ctx, args)}
}

func (_c *MockWorkflow_Rename_Call) Run(run func(ctx context.Context, args domain.RenameArgs)) *MockWorkflow_Rename_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.RenameArgs))
	})

	return _c
}

func (_c *MockWorkflow_Rename_Call) Return(_a0 error) *MockWorkflow_Rename_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockWorkflow_Rename_Call) RunAndReturn(run func(context.Context, domain.RenameArgs) error) *MockWorkflow_Rename_Call {
	_c.Call.Return(run)

	return _c
}

// Plan provides a mock function with given fields: ctx, args
func (_m *MockWorkflow) Plan(ctx context.Context, args domain.PlanArgs) error {
	ret := _m.Called(ctx, args)

	if len(ret) == 0 {
		panic("no return value specified for Plan")
	}

	if rf, ok := ret.Get(0).(func(context.Context, domain.PlanArgs) error); ok {
		return rf(ctx, args)
	}

	r0 := ret.Error(0)

	return r0
}

// MockWorkflow_Plan_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Plan'.
type MockWorkflow_Plan_Call struct {
	*mock.Call
}

// Plan is a helper method to define mock.On call
func (_e *MockWorkflow_Expecter) Plan(ctx interface{}, args interface{}) *MockWorkflow_Plan_Call {
	return &MockWorkflow_Plan_Call{Call: _e.mock.On("Plan", ctx, args)}
}

func (_c *MockWorkflow_Plan_Call) Run(run func(ctx context.Context, args domain.PlanArgs)) *MockWorkflow_Plan_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.PlanArgs))
	})

	return _c
}

func (_c *MockWorkflow_Plan_Call) Return(_a0 error) *MockWorkflow_Plan_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockWorkflow_Plan_Call) RunAndReturn(run func(context.Context, domain.PlanArgs) error) *MockWorkflow_Plan_Call {
	_c.Call.Return(run)

	return _c
}

// Apply provides a mock function with given fields: ctx, args
func (_m *MockWorkflow) Apply(ctx context.Context, args domain.ApplyArgs) error {
	ret := _m.Called(ctx, args)

	if len(ret) == 0 {
		panic("no return value specified for Apply")
	}

	if rf, ok := ret.Get(0).(func(context.Context, domain.ApplyArgs) error); ok {
		return rf(ctx, args)
	}

	r0 := ret.Error(0)

	return r0
}

// MockWorkflow_Apply_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Apply'.
type MockWorkflow_Apply_Call struct {
	*mock.Call
}

// Apply is a helper method to define mock.On call
func (_e *MockWorkflow_Expecter) Apply(ctx interface{}, args interface{}) *MockWorkflow_Apply_Call {
	return &MockWorkflow_Apply_Call{Call: _e.mock.On("Apply", ctx, args)}
}

func (_c *MockWorkflow_Apply_Call) Run(run func(ctx context.Context, args domain.ApplyArgs)) *MockWorkflow_Apply_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.ApplyArgs))
	})

	return _c
}

func (_c *MockWorkflow_Apply_Call) Return(_a0 error) *MockWorkflow_Apply_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockWorkflow_Apply_Call) RunAndReturn(run func(context.Context, domain.ApplyArgs) error) *MockWorkflow_Apply_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockWorkflow creates a new instance of MockWorkflow. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockWorkflow(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWorkflow {
	mock := &MockWorkflow{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
