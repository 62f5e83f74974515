package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mouse-blink/luarename/internal/domain"
	m "github.com/mouse-blink/luarename/internal/model"
)

// MockOrchestrator is a mock implementation of Orchestrator.
type MockOrchestrator struct {
	mock.Mock
}

type MockOrchestrator_Expecter struct {
	mock *mock.Mock
}

func (_m *MockOrchestrator) EXPECT() *MockOrchestrator_Expecter {
	return &MockOrchestrator_Expecter{mock: &_m.Mock}
}

// Process provides a mock function with given fields: ctx, source, opts
func (_m *MockOrchestrator) Process(ctx context.Context, source m.Source, opts domain.ProcessOptions) m.Report {
	ret := _m.Called(ctx, source, opts)

	if len(ret) == 0 {
		panic("no return value specified for Process")
	}

	if rf, ok := ret.Get(0).(func(context.Context, m.Source, domain.ProcessOptions) m.Report); ok {
		return rf(ctx, source, opts)
	}

	var r0 m.Report
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(m.Report)
	}

	return r0
}

// MockOrchestrator_Process_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Process'.
type MockOrchestrator_Process_Call struct {
	*mock.Call
}

// Process is a helper method to define mock.On call
func (_e *MockOrchestrator_Expecter) Process(ctx interface{}, source interface{}, opts interface{}) *MockOrchestrator_Process_Call {
	return &MockOrchestrator_Process_Call{Call: _e.mock.On("Process", ctx, source, opts)}
}

func (_c *MockOrchestrator_Process_Call) Run(run func(ctx context.Context, source m.Source, opts domain.ProcessOptions)) *MockOrchestrator_Process_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(m.Source), args[2].(domain.ProcessOptions))
	})

	return _c
}

func (_c *MockOrchestrator_Process_Call) Return(_a0 m.Report) *MockOrchestrator_Process_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockOrchestrator_Process_Call) RunAndReturn(run func(context.Context, m.Source, domain.ProcessOptions) m.Report) *MockOrchestrator_Process_Call {
	_c.Call.Return(run)

	return _c
}

// Apply provides a mock function with given fields: ctx, source, plan, opts
func (_m *MockOrchestrator) Apply(ctx context.Context, source m.Source, plan m.RenamePlan, opts domain.ProcessOptions) m.Report {
	ret := _m.Called(ctx, source, plan, opts)

	if len(ret) == 0 {
		panic("no return value specified for Apply")
	}

	if rf, ok := ret.Get(0).(func(context.Context, m.Source, m.RenamePlan, domain.ProcessOptions) m.Report); ok {
		return rf(ctx, source, plan, opts)
	}

	var r0 m.Report
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(m.Report)
	}

	return r0
}

// MockOrchestrator_Apply_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Apply'.
type MockOrchestrator_Apply_Call struct {
	*mock.Call
}

// Apply is a helper method to define mock.On call
func (_e *MockOrchestrator_Expecter) Apply(ctx interface{}, source interface{}, plan interface{}, opts interface{}) *MockOrchestrator_Apply_Call {
	return &MockOrchestrator_Apply_Call{Call: _e.mock.On("Apply", ctx, source, plan, opts)}
}

func (_c *MockOrchestrator_Apply_Call) Run(run func(ctx context.Context, source m.Source, plan m.RenamePlan, opts domain.ProcessOptions)) *MockOrchestrator_Apply_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(m.Source), args[2].(m.RenamePlan), args[3].(domain.ProcessOptions))
	})

	return _c
}

func (_c *MockOrchestrator_Apply_Call) Return(_a0 m.Report) *MockOrchestrator_Apply_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockOrchestrator_Apply_Call) RunAndReturn(run func(context.Context, m.Source, m.RenamePlan, domain.ProcessOptions) m.Report) *MockOrchestrator_Apply_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockOrchestrator creates a new instance of MockOrchestrator. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockOrchestrator(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockOrchestrator {
	mock := &MockOrchestrator{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
