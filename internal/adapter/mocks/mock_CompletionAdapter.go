package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockCompletionAdapter is a mock implementation of CompletionAdapter.
type MockCompletionAdapter struct {
	mock.Mock
}

type MockCompletionAdapter_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCompletionAdapter) EXPECT() *MockCompletionAdapter_Expecter {
	return &MockCompletionAdapter_Expecter{mock: &_m.Mock}
}

// Name provides a mock function with no fields
func (_m *MockCompletionAdapter) Name() string {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for Name")
	}

	if rf, ok := ret.Get(0).(func() string); ok {
		return rf()
	}

	var r0 string
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(string)
	}

	return r0
}

// MockCompletionAdapter_Name_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Name'.
type MockCompletionAdapter_Name_Call struct {
	*mock.Call
}

// Name is a helper method to define mock.On call
func (_e *MockCompletionAdapter_Expecter) Name() *MockCompletionAdapter_Name_Call {
	return &MockCompletionAdapter_Name_Call{Call: _e.mock.On("Name")}
}

func (_c *MockCompletionAdapter_Name_Call) Run(run func()) *MockCompletionAdapter_Name_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})

	return _c
}

func (_c *MockCompletionAdapter_Name_Call) Return(_a0 string) *MockCompletionAdapter_Name_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockCompletionAdapter_Name_Call) RunAndReturn(run func() string) *MockCompletionAdapter_Name_Call {
	_c.Call.Return(run)

	return _c
}

// Complete provides a mock function with given fields: ctx, prompt
func (_m *MockCompletionAdapter) Complete(ctx context.Context, prompt string) (string, error) {
	ret := _m.Called(ctx, prompt)

	if len(ret) == 0 {
		panic("no return value specified for Complete")
	}

	if rf, ok := ret.Get(0).(func(context.Context, string) (string, error)); ok {
		return rf(ctx, prompt)
	}

	var r0 string
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(string)
	}

	r1 := ret.Error(1)

	return r0, r1
}

// MockCompletionAdapter_Complete_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Complete'.
type MockCompletionAdapter_Complete_Call struct {
	*mock.Call
}

// Complete is a helper method to define mock.On call
func (_e *MockCompletionAdapter_Expecter) Complete(ctx interface{}, prompt interface{}) *MockCompletionAdapter_Complete_Call {
	return &MockCompletionAdapter_Complete_Call{Call: _e.mock.On("Complete", ctx, prompt)}
}

func (_c *MockCompletionAdapter_Complete_Call) Run(run func(ctx context.Context, prompt string)) *MockCompletionAdapter_Complete_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})

	return _c
}

func (_c *MockCompletionAdapter_Complete_Call) Return(_a0 string, _a1 error) *MockCompletionAdapter_Complete_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockCompletionAdapter_Complete_Call) RunAndReturn(run func(context.Context, string) (string, error)) *MockCompletionAdapter_Complete_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockCompletionAdapter creates a new instance of MockCompletionAdapter. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockCompletionAdapter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCompletionAdapter {
	mock := &MockCompletionAdapter{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
