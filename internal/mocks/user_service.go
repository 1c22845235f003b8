package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/taskflow-server/internal/model"
)

// UserService is a mock type for the UserService type
type UserService struct {
	mock.Mock
}

// GetProjectMembers provides a mock function with given fields: ctx, params
func (_m *UserService) GetProjectMembers(ctx context.Context, params model.ProjectScopeParams) ([]model.UserSummary, error) {
	ret := _m.Called(ctx, params)

	if rf, ok := ret.Get(0).(func(context.Context, model.ProjectScopeParams) ([]model.UserSummary, error)); ok {
		return rf(ctx, params)
	}

	var r0 []model.UserSummary
	if rf, ok := ret.Get(0).(func(context.Context, model.ProjectScopeParams) []model.UserSummary); ok {
		r0 = rf(ctx, params)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.UserSummary)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, model.ProjectScopeParams) error); ok {
		r1 = rf(ctx, params)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewUserService creates a new instance of UserService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewUserService(t interface {
	mock.TestingT
	Cleanup(func())
}) *UserService {
	m := &UserService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
