package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/taskflow-server/internal/model"
)

// ContextManager is a mock type for the ContextManager type
type ContextManager struct {
	mock.Mock
}

// SetSessionToContext provides a mock function with given fields: ctx, session
func (_m *ContextManager) SetSessionToContext(ctx context.Context, session model.Session) context.Context {
	ret := _m.Called(ctx, session)

	var r0 context.Context
	if rf, ok := ret.Get(0).(func(context.Context, model.Session) context.Context); ok {
		r0 = rf(ctx, session)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(context.Context)
	}

	return r0
}

// GetSessionFromContext provides a mock function with given fields: ctx
func (_m *ContextManager) GetSessionFromContext(ctx context.Context) (model.Session, bool) {
	ret := _m.Called(ctx)

	if rf, ok := ret.Get(0).(func(context.Context) (model.Session, bool)); ok {
		return rf(ctx)
	}

	var r0 model.Session
	if rf, ok := ret.Get(0).(func(context.Context) model.Session); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Get(0).(model.Session)
	}

	var r1 bool
	if rf, ok := ret.Get(1).(func(context.Context) bool); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Get(1).(bool)
	}

	return r0, r1
}

// NewContextManager creates a new instance of ContextManager. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewContextManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *ContextManager {
	m := &ContextManager{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
