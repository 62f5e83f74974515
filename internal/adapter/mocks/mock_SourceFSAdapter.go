package mocks

import (
	"os"

	"github.com/stretchr/testify/mock"

	"github.com/mouse-blink/luarename/internal/adapter"
	m "github.com/mouse-blink/luarename/internal/model"
)

// MockSourceFSAdapter is a mock implementation of SourceFSAdapter.
type MockSourceFSAdapter struct {
	mock.Mock
}

type MockSourceFSAdapter_Expecter struct {
	mock *mock.Mock
}

func (_m *MockSourceFSAdapter) EXPECT() *MockSourceFSAdapter_Expecter {
	return &MockSourceFSAdapter_Expecter{mock: &_m.Mock}
}

// Get provides a mock function with given fields: roots
func (_m *MockSourceFSAdapter) Get(roots []m.Path) ([]m.Source, error) {
	ret := _m.Called(roots)

	if len(ret) == 0 {
		panic("no return value specified for Get")
	}

	if rf, ok := ret.Get(0).(func([]m.Path) ([]m.Source, error)); ok {
		return rf(roots)
	}

	var r0 []m.Source
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]m.Source)
	}

	r1 := ret.Error(1)

	return r0, r1
}

// MockSourceFSAdapter_Get_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Get'.
type MockSourceFSAdapter_Get_Call struct {
	*mock.Call
}

// Get is a helper method to define mock.On call
func (_e *MockSourceFSAdapter_Expecter) Get(roots interface{}) *MockSourceFSAdapter_Get_Call {
	return &MockSourceFSAdapter_Get_Call{Call: _e.mock.On("Get", roots)}
}

func (_c *MockSourceFSAdapter_Get_Call) Run(run func(roots []m.Path)) *MockSourceFSAdapter_Get_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].([]m.Path))
	})

	return _c
}

func (_c *MockSourceFSAdapter_Get_Call) Return(_a0 []m.Source, _a1 error) *MockSourceFSAdapter_Get_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockSourceFSAdapter_Get_Call) RunAndReturn(run func([]m.Path) ([]m.Source, error)) *MockSourceFSAdapter_Get_Call {
	_c.Call.Return(run)

	return _c
}

// Walk provides a mock function with given fields: root, recursive, fn
func (_m *MockSourceFSAdapter) Walk(root m.Path, recursive bool, fn adapter.FilepathWalkFunc) error {
	ret := _m.Called(root, recursive, fn)

	if len(ret) == 0 {
		panic("no return value specified for Walk")
	}

	if rf, ok := ret.Get(0).(func(m.Path, bool, adapter.FilepathWalkFunc) error); ok {
		return rf(root, recursive, fn)
	}

	r0 := ret.Error(0)

	return r0
}

// MockSourceFSAdapter_Walk_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Walk'.
type MockSourceFSAdapter_Walk_Call struct {
	*mock.Call
}

// Walk is a helper method to define mock.On call
func (_e *MockSourceFSAdapter_Expecter) Walk(root interface{}, recursive interface{}, fn interface{}) *MockSourceFSAdapter_Walk_Call {
	return &MockSourceFSAdapter_Walk_Call{Call: _e.mock.On("Walk", root, recursive, fn)}
}

func (_c *MockSourceFSAdapter_Walk_Call) Run(run func(root m.Path, recursive bool, fn adapter.FilepathWalkFunc)) *MockSourceFSAdapter_Walk_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(m.Path), args[1].(bool), args[2].(adapter.FilepathWalkFunc))
	})

	return _c
}

func (_c *MockSourceFSAdapter_Walk_Call) Return(_a0 error) *MockSourceFSAdapter_Walk_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockSourceFSAdapter_Walk_Call) RunAndReturn(run func(m.Path, bool, adapter.FilepathWalkFunc) error) *MockSourceFSAdapter_Walk_Call {
	_c.Call.Return(run)

	return _c
}

// ReadFile provides a mock function with given fields: path
func (_m *MockSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	ret := _m.Called(path)

	if len(ret) == 0 {
		panic("no return value specified for ReadFile")
	}

	if rf, ok := ret.Get(0).(func(m.Path) ([]byte, error)); ok {
		return rf(path)
	}

	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}

	r1 := ret.Error(1)

	return r0, r1
}

// MockSourceFSAdapter_ReadFile_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ReadFile'.
type MockSourceFSAdapter_ReadFile_Call struct {
	*mock.Call
}

// ReadFile is a helper method to define mock.On call
func (_e *MockSourceFSAdapter_Expecter) ReadFile(path interface{}) *MockSourceFSAdapter_ReadFile_Call {
	return &MockSourceFSAdapter_ReadFile_Call{Call: _e.mock.On("ReadFile", path)}
}

func (_c *MockSourceFSAdapter_ReadFile_Call) Run(run func(path m.Path)) *MockSourceFSAdapter_ReadFile_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(m.Path))
	})

	return _c
}

func (_c *MockSourceFSAdapter_ReadFile_Call) Return(_a0 []byte, _a1 error) *MockSourceFSAdapter_ReadFile_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockSourceFSAdapter_ReadFile_Call) RunAndReturn(run func(m.Path) ([]byte, error)) *MockSourceFSAdapter_ReadFile_Call {
	_c.Call.Return(run)

	return _c
}

// ReadFileLimit provides a mock function with given fields: path, maxBytes
func (_m *MockSourceFSAdapter) ReadFileLimit(path m.Path, maxBytes int64) ([]byte, error) {
	ret := _m.Called(path, maxBytes)

	if len(ret) == 0 {
		panic("no return value specified for ReadFileLimit")
	}

	if rf, ok := ret.Get(0).(func(m.Path, int64) ([]byte, error)); ok {
		return rf(path, maxBytes)
	}

	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}

	r1 := ret.Error(1)

	return r0, r1
}

// MockSourceFSAdapter_ReadFileLimit_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ReadFileLimit'.
type MockSourceFSAdapter_ReadFileLimit_Call struct {
	*mock.Call
}

// ReadFileLimit is a helper method to define mock.On call
func (_e *MockSourceFSAdapter_Expecter) ReadFileLimit(path interface{}, maxBytes interface{}) *MockSourceFSAdapter_ReadFileLimit_Call {
	return &MockSourceFSAdapter_ReadFileLimit_Call{Call: _e.mock.On("ReadFileLimit", path, maxBytes)}
}

func (_c *MockSourceFSAdapter_ReadFileLimit_Call) Run(run func(path m.Path, maxBytes int64)) *MockSourceFSAdapter_ReadFileLimit_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(m.Path), args[1].(int64))
	})

	return _c
}

func (_c *MockSourceFSAdapter_ReadFileLimit_Call) Return(_a0 []byte, _a1 error) *MockSourceFSAdapter_ReadFileLimit_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockSourceFSAdapter_ReadFileLimit_Call) RunAndReturn(run func(m.Path, int64) ([]byte, error)) *MockSourceFSAdapter_ReadFileLimit_Call {
	_c.Call.Return(run)

	return _c
}

// HashFile provides a mock function with given fields: path
func (_m *MockSourceFSAdapter) HashFile(path m.Path) (string, error) {
	ret := _m.Called(path)

	if len(ret) == 0 {
		panic("no return value specified for HashFile")
	}

	if rf, ok := ret.Get(0).(func(m.Path) (string, error)); ok {
		return rf(path)
	}

	var r0 string
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(string)
	}

	r1 := ret.Error(1)

	return r0, r1
}

// MockSourceFSAdapter_HashFile_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'HashFile'.
type MockSourceFSAdapter_HashFile_Call struct {
	*mock.Call
}

// HashFile is a helper method to define mock.On call
func (_e *MockSourceFSAdapter_Expecter) HashFile(path interface{}) *MockSourceFSAdapter_HashFile_Call {
	return &MockSourceFSAdapter_HashFile_Call{Call: _e.mock.On("HashFile", path)}
}

func (_c *MockSourceFSAdapter_HashFile_Call) Run(run func(path m.Path)) *MockSourceFSAdapter_HashFile_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(m.Path))
	})

	return _c
}

func (_c *MockSourceFSAdapter_HashFile_Call) Return(_a0 string, _a1 error) *MockSourceFSAdapter_HashFile_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockSourceFSAdapter_HashFile_Call) RunAndReturn(run func(m.Path) (string, error)) *MockSourceFSAdapter_HashFile_Call {
	_c.Call.Return(run)

	return _c
}

// FileInfo provides a mock function with given fields: path
func (_m *MockSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	ret := _m.Called(path)

	if len(ret) == 0 {
		panic("no return value specified for FileInfo")
	}

	if rf, ok := ret.Get(0).(func(m.Path) (os.FileInfo, error)); ok {
		return rf(path)
	}

	var r0 os.FileInfo
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(os.FileInfo)
	}

	r1 := ret.Error(1)

	return r0, r1
}

// MockSourceFSAdapter_FileInfo_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FileInfo'.
type MockSourceFSAdapter_FileInfo_Call struct {
	*mock.Call
}

// FileInfo is a helper method to define mock.On call
func (_e *MockSourceFSAdapter_Expecter) FileInfo(path interface{}) *MockSourceFSAdapter_FileInfo_Call {
	return &MockSourceFSAdapter_FileInfo_Call{Call: _e.mock.On("FileInfo", path)}
}

func (_c *MockSourceFSAdapter_FileInfo_Call) Run(run func(path m.Path)) *MockSourceFSAdapter_FileInfo_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(m.Path))
	})

	return _c
}

func (_c *MockSourceFSAdapter_FileInfo_Call) Return(_a0 os.FileInfo, _a1 error) *MockSourceFSAdapter_FileInfo_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockSourceFSAdapter_FileInfo_Call) RunAndReturn(run func(m.Path) (os.FileInfo, error)) *MockSourceFSAdapter_FileInfo_Call {
	_c.Call.Return(run)

	return _c
}

// WriteFile provides a mock function with given fields: path, content, perm
func (_m *MockSourceFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	ret := _m.Called(path, content, perm)

	if len(ret) == 0 {
		panic("no return value specified for WriteFile")
	}

	if rf, ok := ret.Get(0).(func(m.Path, []byte, os.FileMode) error); ok {
		return rf(path, content, perm)
	}

	r0 := ret.Error(0)

	return r0
}

// MockSourceFSAdapter_WriteFile_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'WriteFile'.
type MockSourceFSAdapter_WriteFile_Call struct {
	*mock.Call
}

// WriteFile is a helper method to define mock.On call
func (_e *MockSourceFSAdapter_Expecter) WriteFile(path interface{}, content interface{}, perm interface{}) *MockSourceFSAdapter_WriteFile_Call {
	return &MockSourceFSAdapter_WriteFile_Call{Call: _e.mock.On("WriteFile", path, content, perm)}
}

func (_c *MockSourceFSAdapter_WriteFile_Call) Run(run func(path m.Path, content []byte, perm os.FileMode)) *MockSourceFSAdapter_WriteFile_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(m.Path), args[1].([]byte), args[2].(os.FileMode))
	})

	return _c
}

func (_c *MockSourceFSAdapter_WriteFile_Call) Return(_a0 error) *MockSourceFSAdapter_WriteFile_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockSourceFSAdapter_WriteFile_Call) RunAndReturn(run func(m.Path, []byte, os.FileMode) error) *MockSourceFSAdapter_WriteFile_Call {
	_c.Call.Return(run)

	return _c
}

// JoinPath provides a mock function with given fields: elem
func (_m *MockSourceFSAdapter) JoinPath(elem ...string) m.Path {
	_va := make([]interface{}, len(elem))
	for _i := range elem {
		_va[_i] = elem[_i]
	}

	var _ca []interface{}
	_ca = append(_ca, _va...)
	ret := _m.Called(_ca...)

	if len(ret) == 0 {
		panic("no return value specified for JoinPath")
	}

	if rf, ok := ret.Get(0).(func(...string) m.Path); ok {
		return rf(elem...)
	}

	var r0 m.Path
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(m.Path)
	}

	return r0
}

// MockSourceFSAdapter_JoinPath_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'JoinPath'.
type MockSourceFSAdapter_JoinPath_Call struct {
	*mock.Call
}

// JoinPath is a helper method to define mock.On call
func (_e *MockSourceFSAdapter_Expecter) JoinPath(elem ...interface{}) *MockSourceFSAdapter_JoinPath_Call {
	return &MockSourceFSAdapter_JoinPath_Call{Call: _e.mock.On("JoinPath", elem...)}
}

func (_c *MockSourceFSAdapter_JoinPath_Call) Run(run func(elem ...string)) *MockSourceFSAdapter_JoinPath_Call {
	_c.Call.Run(func(args mock.Arguments) {
		variadicArgs := make([]string, len(args))
		for i, a := range args {
			if a != nil {
				variadicArgs[i] = a.(string)
			}
		}
		run(variadicArgs...)
	})

	return _c
}

func (_c *MockSourceFSAdapter_JoinPath_Call) Return(_a0 m.Path) *MockSourceFSAdapter_JoinPath_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockSourceFSAdapter_JoinPath_Call) RunAndReturn(run func(...string) m.Path) *MockSourceFSAdapter_JoinPath_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockSourceFSAdapter creates a new instance of MockSourceFSAdapter. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockSourceFSAdapter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSourceFSAdapter {
	mock := &MockSourceFSAdapter{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
