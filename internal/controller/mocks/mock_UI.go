package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/mouse-blink/luarename/internal/controller"
	m "github.com/mouse-blink/luarename/internal/model"
)

// MockUI is a mock implementation of UI.
type MockUI struct {
	mock.Mock
}

type MockUI_Expecter struct {
	mock *mock.Mock
}

func (_m *MockUI) EXPECT() *MockUI_Expecter {
	return &MockUI_Expecter{mock: &_m.Mock}
}

// Start provides a mock function with given fields: options
func (_m *MockUI) Start(options ...controller.StartOption) error {
	_va := make([]interface{}, len(options))
	for _i := range options {
		_va[_i] = options[_i]
	}

	var _ca []interface{}
	_ca = append(_ca, _va...)
	ret := _m.Called(_ca...)

	if len(ret) == 0 {
		panic("no return value specified for Start")
	}

	if rf, ok := ret.Get(0).(func(...controller.StartOption) error); ok {
		return rf(options...)
	}

	r0 := ret.Error(0)

	return r0
}

// MockUI_Start_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Start'.
type MockUI_Start_Call struct {
	*mock.Call
}

// Start is a helper method to define mock.On call
func (_e *MockUI_Expecter) Start(options ...interface{}) *MockUI_Start_Call {
	return &MockUI_Start_Call{Call: _e.mock.On("Start", options...)}
}

func (_c *MockUI_Start_Call) Run(run func(options ...controller.StartOption)) *MockUI_Start_Call {
	_c.Call.Run(func(args mock.Arguments) {
		variadicArgs := make([]controller.StartOption, len(args))
		for i, a := range args {
			if a != nil {
				variadicArgs[i] = a.(controller.StartOption)
			}
		}
		run(variadicArgs...)
	})

	return _c
}

func (_c *MockUI_Start_Call) Return(_a0 error) *MockUI_Start_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockUI_Start_Call) RunAndReturn(run func(...controller.StartOption) error) *MockUI_Start_Call {
	_c.Call.Return(run)

	return _c
}

// Close provides a mock function with no fields
func (_m *MockUI) Close() {
	_m.Called()
}

// MockUI_Close_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Close'.
type MockUI_Close_Call struct {
	*mock.Call
}

// Close is a helper method to define mock.On call
func (_e *MockUI_Expecter) Close() *MockUI_Close_Call {
	return &MockUI_Close_Call{Call: _e.mock.On("Close")}
}

func (_c *MockUI_Close_Call) Run(run func()) *MockUI_Close_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})

	return _c
}

func (_c *MockUI_Close_Call) Return() *MockUI_Close_Call {
	_c.Call.Return()

	return _c
}

func (_c *MockUI_Close_Call) RunAndReturn(run func()) *MockUI_Close_Call {
	_c.Run(run)

	return _c
}

// Wait provides a mock function with no fields
func (_m *MockUI) Wait() {
	_m.Called()
}

// MockUI_Wait_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Wait'.
type MockUI_Wait_Call struct {
	*mock.Call
}

// Wait is a helper method to define mock.On call
func (_e *MockUI_Expecter) Wait() *MockUI_Wait_Call {
	return &MockUI_Wait_Call{Call: _e.mock.On("Wait")}
}

func (_c *MockUI_Wait_Call) Run(run func()) *MockUI_Wait_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})

	return _c
}

func (_c *MockUI_Wait_Call) Return() *MockUI_Wait_Call {
	_c.Call.Return()

	return _c
}

func (_c *MockUI_Wait_Call) RunAndReturn(run func()) *MockUI_Wait_Call {
	_c.Run(run)

	return _c
}

// DisplayPlans provides a mock function with given fields: reports
func (_m *MockUI) DisplayPlans(reports []m.Report) error {
	ret := _m.Called(reports)

	if len(ret) == 0 {
		panic("no return value specified for DisplayPlans")
	}

	if rf, ok := ret.Get(0).(func([]m.Report) error); ok {
		return rf(reports)
	}

	r0 := ret.Error(0)

	return r0
}

// MockUI_DisplayPlans_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'DisplayPlans'.
type MockUI_DisplayPlans_Call struct {
	*mock.Call
}

// DisplayPlans is a helper method to define mock.On call
func (_e *MockUI_Expecter) DisplayPlans(reports interface{}) *MockUI_DisplayPlans_Call {
	return &MockUI_DisplayPlans_Call{Call: _e.mock.On("DisplayPlans", reports)}
}

func (_c *MockUI_DisplayPlans_Call) Run(run func(reports []m.Report)) *MockUI_DisplayPlans_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].([]m.Report))
	})

	return _c
}

func (_c *MockUI_DisplayPlans_Call) Return(_a0 error) *MockUI_DisplayPlans_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockUI_DisplayPlans_Call) RunAndReturn(run func([]m.Report) error) *MockUI_DisplayPlans_Call {
	_c.Call.Return(run)

	return _c
}

// DisplayConcurrencyInfo provides a mock function with given fields: threads, shardIndex, shardCount
func (_m *MockUI) DisplayConcurrencyInfo(threads int, shardIndex int, shardCount int) {
	_m.Called(threads, shardIndex, shardCount)
}

// MockUI_DisplayConcurrencyInfo_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'DisplayConcurrencyInfo'.
type MockUI_DisplayConcurrencyInfo_Call struct {
	*mock.Call
}

// DisplayConcurrencyInfo is a helper method to define mock.On call
func (_e *MockUI_Expecter) DisplayConcurrencyInfo(threads interface{}, shardIndex interface{}, shardCount interface{}) *MockUI_DisplayConcurrencyInfo_Call {
	return &MockUI_DisplayConcurrencyInfo_Call{Call: _e.mock.On("DisplayConcurrencyInfo", threads, shardIndex, shardCount)}
}

func (_c *MockUI_DisplayConcurrencyInfo_Call) Run(run func(threads int, shardIndex int, shardCount int)) *MockUI_DisplayConcurrencyInfo_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(int), args[1].(int), args[2].(int))
	})

	return _c
}

func (_c *MockUI_DisplayConcurrencyInfo_Call) Return() *MockUI_DisplayConcurrencyInfo_Call {
	_c.Call.Return()

	return _c
}

func (_c *MockUI_DisplayConcurrencyInfo_Call) RunAndReturn(run func(int, int, int)) *MockUI_DisplayConcurrencyInfo_Call {
	_c.Run(run)

	return _c
}

// DisplayUpcomingFilesInfo provides a mock function with given fields: count
func (_m *MockUI) DisplayUpcomingFilesInfo(count int) {
	_m.Called(count)
}

// MockUI_DisplayUpcomingFilesInfo_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'DisplayUpcomingFilesInfo'.
type MockUI_DisplayUpcomingFilesInfo_Call struct {
	*mock.Call
}

// DisplayUpcomingFilesInfo is a helper method to define mock.On call
func (_e *MockUI_Expecter) DisplayUpcomingFilesInfo(count interface{}) *MockUI_DisplayUpcomingFilesInfo_Call {
	return &MockUI_DisplayUpcomingFilesInfo_Call{Call: _e.mock.On("DisplayUpcomingFilesInfo", count)}
}

func (_c *MockUI_DisplayUpcomingFilesInfo_Call) Run(run func(count int)) *MockUI_DisplayUpcomingFilesInfo_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(int))
	})

	return _c
}

func (_c *MockUI_DisplayUpcomingFilesInfo_Call) Return() *MockUI_DisplayUpcomingFilesInfo_Call {
	_c.Call.Return()

	return _c
}

func (_c *MockUI_DisplayUpcomingFilesInfo_Call) RunAndReturn(run func(int)) *MockUI_DisplayUpcomingFilesInfo_Call {
	_c.Run(run)

	return _c
}

// DisplayStartingFileInfo provides a mock function with given fields: source, workerID
func (_m *MockUI) DisplayStartingFileInfo(source m.Source, workerID int) {
	_m.Called(source, workerID)
}

// MockUI_DisplayStartingFileInfo_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'DisplayStartingFileInfo'.
type MockUI_DisplayStartingFileInfo_Call struct {
	*mock.Call
}

// DisplayStartingFileInfo is a helper method to define mock.On call
func (_e *MockUI_Expecter) DisplayStartingFileInfo(source interface{}, workerID interface{}) *MockUI_DisplayStartingFileInfo_Call {
	return &MockUI_DisplayStartingFileInfo_Call{Call: _e.mock.On("DisplayStartingFileInfo", source, workerID)}
}

func (_c *MockUI_DisplayStartingFileInfo_Call) Run(run func(source m.Source, workerID int)) *MockUI_DisplayStartingFileInfo_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(m.Source), args[1].(int))
	})

	return _c
}

func (_c *MockUI_DisplayStartingFileInfo_Call) Return() *MockUI_DisplayStartingFileInfo_Call {
	_c.Call.Return()

	return _c
}

func (_c *MockUI_DisplayStartingFileInfo_Call) RunAndReturn(run func(m.Source, int)) *MockUI_DisplayStartingFileInfo_Call {
	_c.Run(run)

	return _c
}

// DisplayCompletedFileInfo provides a mock function with given fields: report
func (_m *MockUI) DisplayCompletedFileInfo(report m.Report) {
	_m.Called(report)
}

// MockUI_DisplayCompletedFileInfo_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'DisplayCompletedFileInfo'.
type MockUI_DisplayCompletedFileInfo_Call struct {
	*mock.Call
}

// DisplayCompletedFileInfo is a helper method to define mock.On call
func (_e *MockUI_Expecter) DisplayCompletedFileInfo(report interface{}) *MockUI_DisplayCompletedFileInfo_Call {
	return &MockUI_DisplayCompletedFileInfo_Call{Call: _e.mock.On("DisplayCompletedFileInfo", report)}
}

func (_c *MockUI_DisplayCompletedFileInfo_Call) Run(run func(report m.Report)) *MockUI_DisplayCompletedFileInfo_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(m.Report))
	})

	return _c
}

func (_c *MockUI_DisplayCompletedFileInfo_Call) Return() *MockUI_DisplayCompletedFileInfo_Call {
	_c.Call.Return()

	return _c
}

func (_c *MockUI_DisplayCompletedFileInfo_Call) RunAndReturn(run func(m.Report)) *MockUI_DisplayCompletedFileInfo_Call {
	_c.Run(run)

	return _c
}

// DisplayCode provides a mock function with given fields: code
func (_m *MockUI) DisplayCode(code string) error {
	ret := _m.Called(code)

	if len(ret) == 0 {
		panic("no return value specified for DisplayCode")
	}

	if rf, ok := ret.Get(0).(func(string) error); ok {
		return rf(code)
	}

	r0 := ret.Error(0)

	return r0
}

// MockUI_DisplayCode_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'DisplayCode'.
type MockUI_DisplayCode_Call struct {
	*mock.Call
}

// DisplayCode is a helper method to define mock.On call
func (_e *MockUI_Expecter) DisplayCode(code interface{}) *MockUI_DisplayCode_Call {
	return &MockUI_DisplayCode_Call{Call: _e.mock.On("DisplayCode", code)}
}

func (_c *MockUI_DisplayCode_Call) Run(run func(code string)) *MockUI_DisplayCode_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string))
	})

	return _c
}

func (_c *MockUI_DisplayCode_Call) Return(_a0 error) *MockUI_DisplayCode_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockUI_DisplayCode_Call) RunAndReturn(run func(string) error) *MockUI_DisplayCode_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockUI creates a new instance of MockUI. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockUI(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUI {
	mock := &MockUI{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
