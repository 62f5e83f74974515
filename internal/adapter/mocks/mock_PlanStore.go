package mocks

import (
	"github.com/stretchr/testify/mock"

	m "github.com/mouse-blink/luarename/internal/model"
)

// MockPlanStore is a mock implementation of PlanStore.
type MockPlanStore struct {
	mock.Mock
}

type MockPlanStore_Expecter struct {
	mock *mock.Mock
}

func (_m *MockPlanStore) EXPECT() *MockPlanStore_Expecter {
	return &MockPlanStore_Expecter{mock: &_m.Mock}
}

// SavePlans provides a mock function with given fields: dir, reports
func (_m *MockPlanStore) SavePlans(dir m.Path, reports []m.Report) error {
	ret := _m.Called(dir, reports)

	if len(ret) == 0 {
		panic("no return value specified for SavePlans")
	}

	if rf, ok := ret.Get(0).(func(m.Path, []m.Report) error); ok {
		return rf(dir, reports)
	}

	r0 := ret.Error(0)

	return r0
}

// MockPlanStore_SavePlans_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'SavePlans'.
type MockPlanStore_SavePlans_Call struct {
	*mock.Call
}

// SavePlans is a helper method to define mock.On call
func (_e *MockPlanStore_Expecter) SavePlans(dir interface{}, reports interface{}) *MockPlanStore_SavePlans_Call {
	return &MockPlanStore_SavePlans_Call{Call: _e.mock.On("SavePlans", dir, reports)}
}

func (_c *MockPlanStore_SavePlans_Call) Run(run func(dir m.Path, reports []m.Report)) *MockPlanStore_SavePlans_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(m.Path), args[1].([]m.Report))
	})

	return _c
}

func (_c *MockPlanStore_SavePlans_Call) Return(_a0 error) *MockPlanStore_SavePlans_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockPlanStore_SavePlans_Call) RunAndReturn(run func(m.Path, []m.Report) error) *MockPlanStore_SavePlans_Call {
	_c.Call.Return(run)

	return _c
}

// LoadPlan provides a mock function with given fields: path
func (_m *MockPlanStore) LoadPlan(path m.Path) (m.RenamePlan, error) {
	ret := _m.Called(path)

	if len(ret) == 0 {
		panic("no return value specified for LoadPlan")
	}

	if rf, ok := ret.Get(0).(func(m.Path) (m.RenamePlan, error)); ok {
		return rf(path)
	}

	var r0 m.RenamePlan
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(m.RenamePlan)
	}

	r1 := ret.Error(1)

	return r0, r1
}

// MockPlanStore_LoadPlan_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'LoadPlan'.
type MockPlanStore_LoadPlan_Call struct {
	*mock.Call
}

// LoadPlan is a helper method to define mock.On call
func (_e *MockPlanStore_Expecter) LoadPlan(path interface{}) *MockPlanStore_LoadPlan_Call {
	return &MockPlanStore_LoadPlan_Call{Call: _e.mock.On("LoadPlan", path)}
}

func (_c *MockPlanStore_LoadPlan_Call) Run(run func(path m.Path)) *MockPlanStore_LoadPlan_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(m.Path))
	})

	return _c
}

func (_c *MockPlanStore_LoadPlan_Call) Return(_a0 m.RenamePlan, _a1 error) *MockPlanStore_LoadPlan_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockPlanStore_LoadPlan_Call) RunAndReturn(run func(m.Path) (m.RenamePlan, error)) *MockPlanStore_LoadPlan_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockPlanStore creates a new instance of MockPlanStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockPlanStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPlanStore {
	mock := &MockPlanStore{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
