package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	m "github.com/mouse-blink/luarename/internal/model"
)

// MockSuggester is a mock implementation of Suggester.
type MockSuggester struct {
	mock.Mock
}

type MockSuggester_Expecter struct {
	mock *mock.Mock
}

func (_m *MockSuggester) EXPECT() *MockSuggester_Expecter {
	return &MockSuggester_Expecter{mock: &_m.Mock}
}

// Name provides a mock function with no fields
func (_m *MockSuggester) Name() string {
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

// MockSuggester_Name_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Name'.
type MockSuggester_Name_Call struct {
	*mock.Call
}

// Name is a helper method to define mock.On call
func (_e *MockSuggester_Expecter) Name() *MockSuggester_Name_Call {
	return &MockSuggester_Name_Call{Call: _e.mock.On("Name")}
}

func (_c *MockSuggester_Name_Call) Run(run func()) *MockSuggester_Name_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})

	return _c
}

func (_c *MockSuggester_Name_Call) Return(_a0 string) *MockSuggester_Name_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockSuggester_Name_Call) RunAndReturn(run func() string) *MockSuggester_Name_Call {
	_c.Call.Return(run)

	return _c
}

// Suggest provides a mock function with given fields: ctx, source, candidates
func (_m *MockSuggester) Suggest(ctx context.Context, source string, candidates []m.IdentifierMeta) ([]m.Suggestion, error) {
	ret := _m.Called(ctx, source, candidates)

	if len(ret) == 0 {
		panic("no return value specified for Suggest")
	}

	if rf, ok := ret.Get(0).(func(context.Context, string, []m.IdentifierMeta) ([]m.Suggestion, error)); ok {
		return rf(ctx, source, candidates)
	}

	var r0 []m.Suggestion
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]m.Suggestion)
	}

	r1 := ret.Error(1)

	return r0, r1
}

// MockSuggester_Suggest_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Suggest'.
type MockSuggester_Suggest_Call struct {
	*mock.Call
}

// Suggest is a helper method to define mock.On call
func (_e *MockSuggester_Expecter) Suggest(ctx interface{}, source interface{}, candidates interface{}) *MockSuggester_Suggest_Call {
	return &MockSuggester_Suggest_Call{Call: _e.mock.On("Suggest", ctx, source, candidates)}
}

func (_c *MockSuggester_Suggest_Call) Run(run func(ctx context.Context, source string, candidates []m.IdentifierMeta)) *MockSuggester_Suggest_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].([]m.IdentifierMeta))
	})

	return _c
}

func (_c *MockSuggester_Suggest_Call) Return(_a0 []m.Suggestion, _a1 error) *MockSuggester_Suggest_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockSuggester_Suggest_Call) RunAndReturn(run func(context.Context, string, []m.IdentifierMeta) ([]m.Suggestion, error)) *MockSuggester_Suggest_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockSuggester creates a new instance of MockSuggester. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockSuggester(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSuggester {
	mock := &MockSuggester{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
