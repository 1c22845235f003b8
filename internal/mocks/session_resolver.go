package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/taskflow-server/internal/model"
)

// SessionResolver is a mock type for the SessionResolver type
type SessionResolver struct {
	mock.Mock
}

// Resolve provides a mock function with given fields: token
func (_m *SessionResolver) Resolve(token string) model.SessionResult {
	ret := _m.Called(token)

	var r0 model.SessionResult
	if rf, ok := ret.Get(0).(func(string) model.SessionResult); ok {
		r0 = rf(token)
	} else {
		r0 = ret.Get(0).(model.SessionResult)
	}

	return r0
}

// NewSessionResolver creates a new instance of SessionResolver. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewSessionResolver(t interface {
	mock.TestingT
	Cleanup(func())
}) *SessionResolver {
	m := &SessionResolver{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
