package mocks

import (
	"github.com/stretchr/testify/mock"
	"github.com/yuin/gopher-lua/ast"
)

// MockLuaFileAdapter is a mock implementation of LuaFileAdapter.
type MockLuaFileAdapter struct {
	mock.Mock
}

type MockLuaFileAdapter_Expecter struct {
	mock *mock.Mock
}

func (_m *MockLuaFileAdapter) EXPECT() *MockLuaFileAdapter_Expecter {
	return &MockLuaFileAdapter_Expecter{mock: &_m.Mock}
}

// Parse provides a mock function with given fields: name, src
func (_m *MockLuaFileAdapter) Parse(name string, src []byte) ([]ast.Stmt, error) {
	ret := _m.Called(name, src)

	if len(ret) == 0 {
		panic("no return value specified for Parse")
	}

	if rf, ok := ret.Get(0).(func(string, []byte) ([]ast.Stmt, error)); ok {
		return rf(name, src)
	}

	var r0 []ast.Stmt
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]ast.Stmt)
	}

	r1 := ret.Error(1)

	return r0, r1
}

// MockLuaFileAdapter_Parse_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Parse'.
type MockLuaFileAdapter_Parse_Call struct {
	*mock.Call
}

// Parse is a helper method to define mock.On call
func (_e *MockLuaFileAdapter_Expecter) Parse(name interface{}, src interface{}) *MockLuaFileAdapter_Parse_Call {
	return &MockLuaFileAdapter_Parse_Call{Call: _e.mock.On("Parse", name, src)}
}

func (_c *MockLuaFileAdapter_Parse_Call) Run(run func(name string, src []byte)) *MockLuaFileAdapter_Parse_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string), args[1].([]byte))
	})

	return _c
}

func (_c *MockLuaFileAdapter_Parse_Call) Return(_a0 []ast.Stmt, _a1 error) *MockLuaFileAdapter_Parse_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockLuaFileAdapter_Parse_Call) RunAndReturn(run func(string, []byte) ([]ast.Stmt, error)) *MockLuaFileAdapter_Parse_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockLuaFileAdapter creates a new instance of MockLuaFileAdapter. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockLuaFileAdapter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockLuaFileAdapter {
	mock := &MockLuaFileAdapter{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
