package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/taskflow-server/internal/model"
)

// AuthService is a mock type for the AuthService type
type AuthService struct {
	mock.Mock
}

// SignIn provides a mock function with given fields: ctx, params
func (_m *AuthService) SignIn(ctx context.Context, params model.SignInParams) (model.SignInResult, error) {
	ret := _m.Called(ctx, params)

	if rf, ok := ret.Get(0).(func(context.Context, model.SignInParams) (model.SignInResult, error)); ok {
		return rf(ctx, params)
	}

	var r0 model.SignInResult
	if rf, ok := ret.Get(0).(func(context.Context, model.SignInParams) model.SignInResult); ok {
		r0 = rf(ctx, params)
	} else {
		r0 = ret.Get(0).(model.SignInResult)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, model.SignInParams) error); ok {
		r1 = rf(ctx, params)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// SignUp provides a mock function with given fields: ctx, params
func (_m *AuthService) SignUp(ctx context.Context, params model.SignUpParams) (model.SignInResult, error) {
	ret := _m.Called(ctx, params)

	if rf, ok := ret.Get(0).(func(context.Context, model.SignUpParams) (model.SignInResult, error)); ok {
		return rf(ctx, params)
	}

	var r0 model.SignInResult
	if rf, ok := ret.Get(0).(func(context.Context, model.SignUpParams) model.SignInResult); ok {
		r0 = rf(ctx, params)
	} else {
		r0 = ret.Get(0).(model.SignInResult)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, model.SignUpParams) error); ok {
		r1 = rf(ctx, params)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewAuthService creates a new instance of AuthService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewAuthService(t interface {
	mock.TestingT
	Cleanup(func())
}) *AuthService {
	m := &AuthService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
