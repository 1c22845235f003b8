package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/taskflow-server/internal/model"
)

// ProjectService is a mock type for the ProjectService type
type ProjectService struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, params
func (_m *ProjectService) Create(ctx context.Context, params model.CreateProjectParams) (model.Project, error) {
	ret := _m.Called(ctx, params)

	if rf, ok := ret.Get(0).(func(context.Context, model.CreateProjectParams) (model.Project, error)); ok {
		return rf(ctx, params)
	}

	var r0 model.Project
	if rf, ok := ret.Get(0).(func(context.Context, model.CreateProjectParams) model.Project); ok {
		r0 = rf(ctx, params)
	} else {
		r0 = ret.Get(0).(model.Project)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, model.CreateProjectParams) error); ok {
		r1 = rf(ctx, params)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetAll provides a mock function with given fields: ctx
func (_m *ProjectService) GetAll(ctx context.Context) ([]model.Project, error) {
	ret := _m.Called(ctx)

	if rf, ok := ret.Get(0).(func(context.Context) ([]model.Project, error)); ok {
		return rf(ctx)
	}

	var r0 []model.Project
	if rf, ok := ret.Get(0).(func(context.Context) []model.Project); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.Project)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetByID provides a mock function with given fields: ctx, params
func (_m *ProjectService) GetByID(ctx context.Context, params model.GetProjectParams) (model.Project, error) {
	ret := _m.Called(ctx, params)

	if rf, ok := ret.Get(0).(func(context.Context, model.GetProjectParams) (model.Project, error)); ok {
		return rf(ctx, params)
	}

	var r0 model.Project
	if rf, ok := ret.Get(0).(func(context.Context, model.GetProjectParams) model.Project); ok {
		r0 = rf(ctx, params)
	} else {
		r0 = ret.Get(0).(model.Project)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, model.GetProjectParams) error); ok {
		r1 = rf(ctx, params)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Update provides a mock function with given fields: ctx, params
func (_m *ProjectService) Update(ctx context.Context, params model.UpdateProjectParams) (model.Project, error) {
	ret := _m.Called(ctx, params)

	if rf, ok := ret.Get(0).(func(context.Context, model.UpdateProjectParams) (model.Project, error)); ok {
		return rf(ctx, params)
	}

	var r0 model.Project
	if rf, ok := ret.Get(0).(func(context.Context, model.UpdateProjectParams) model.Project); ok {
		r0 = rf(ctx, params)
	} else {
		r0 = ret.Get(0).(model.Project)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, model.UpdateProjectParams) error); ok {
		r1 = rf(ctx, params)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Delete provides a mock function with given fields: ctx, params
func (_m *ProjectService) Delete(ctx context.Context, params model.DeleteProjectParams) (model.Project, error) {
	ret := _m.Called(ctx, params)

	if rf, ok := ret.Get(0).(func(context.Context, model.DeleteProjectParams) (model.Project, error)); ok {
		return rf(ctx, params)
	}

	var r0 model.Project
	if rf, ok := ret.Get(0).(func(context.Context, model.DeleteProjectParams) model.Project); ok {
		r0 = rf(ctx, params)
	} else {
		r0 = ret.Get(0).(model.Project)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, model.DeleteProjectParams) error); ok {
		r1 = rf(ctx, params)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewProjectService creates a new instance of ProjectService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewProjectService(t interface {
	mock.TestingT
	Cleanup(func())
}) *ProjectService {
	m := &ProjectService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
