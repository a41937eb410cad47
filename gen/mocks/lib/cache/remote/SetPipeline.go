package mocks

import mock "github.com/stretchr/testify/mock"

// SetPipeline is an autogenerated mock type for the SetPipeline type
type SetPipeline struct {
	mock.Mock
}

// ExecSet provides a mock function with given fields:
func (_m *SetPipeline) ExecSet() error {
	ret := _m.Called()

	var r0 error
	if rf, ok := ret.Get(0).(func() error); ok {
		r0 = rf()
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Set provides a mock function with given fields: key, data
func (_m *SetPipeline) Set(key string, data []byte) {
	_m.Called(key, data)
}

// Size provides a mock function with given fields:
func (_m *SetPipeline) Size() int {
	ret := _m.Called()

	var r0 int
	if rf, ok := ret.Get(0).(func() int); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(int)
	}

	return r0
}
