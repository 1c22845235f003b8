package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/taskflow-server/internal/model"
)

// TaskService is a mock type for the TaskService type
type TaskService struct {
	mock.Mock
}

// GetByProject provides a mock function with given fields: ctx, params
func (_m *TaskService) GetByProject(ctx context.Context, params model.ProjectScopeParams) ([]model.Task, error) {
	ret := _m.Called(ctx, params)

	if rf, ok := ret.Get(0).(func(context.Context, model.ProjectScopeParams) ([]model.Task, error)); ok {
		return rf(ctx, params)
	}

	var r0 []model.Task
	if rf, ok := ret.Get(0).(func(context.Context, model.ProjectScopeParams) []model.Task); ok {
		r0 = rf(ctx, params)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.Task)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, model.ProjectScopeParams) error); ok {
		r1 = rf(ctx, params)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Create provides a mock function with given fields: ctx, params
func (_m *TaskService) Create(ctx context.Context, params model.CreateTaskParams) (model.Task, error) {
	ret := _m.Called(ctx, params)

	if rf, ok := ret.Get(0).(func(context.Context, model.CreateTaskParams) (model.Task, error)); ok {
		return rf(ctx, params)
	}

	var r0 model.Task
	if rf, ok := ret.Get(0).(func(context.Context, model.CreateTaskParams) model.Task); ok {
		r0 = rf(ctx, params)
	} else {
		r0 = ret.Get(0).(model.Task)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, model.CreateTaskParams) error); ok {
		r1 = rf(ctx, params)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Update provides a mock function with given fields: ctx, params
func (_m *TaskService) Update(ctx context.Context, params model.UpdateTaskParams) (model.Task, error) {
	ret := _m.Called(ctx, params)

	if rf, ok := ret.Get(0).(func(context.Context, model.UpdateTaskParams) (model.Task, error)); ok {
		return rf(ctx, params)
	}

	var r0 model.Task
	if rf, ok := ret.Get(0).(func(context.Context, model.UpdateTaskParams) model.Task); ok {
		r0 = rf(ctx, params)
	} else {
		r0 = ret.Get(0).(model.Task)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, model.UpdateTaskParams) error); ok {
		r1 = rf(ctx, params)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Delete provides a mock function with given fields: ctx, params
func (_m *TaskService) Delete(ctx context.Context, params model.DeleteTaskParams) (model.Task, error) {
	ret := _m.Called(ctx, params)

	if rf, ok := ret.Get(0).(func(context.Context, model.DeleteTaskParams) (model.Task, error)); ok {
		return rf(ctx, params)
	}

	var r0 model.Task
	if rf, ok := ret.Get(0).(func(context.Context, model.DeleteTaskParams) model.Task); ok {
		r0 = rf(ctx, params)
	} else {
		r0 = ret.Get(0).(model.Task)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, model.DeleteTaskParams) error); ok {
		r1 = rf(ctx, params)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewTaskService creates a new instance of TaskService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewTaskService(t interface {
	mock.TestingT
	Cleanup(func())
}) *TaskService {
	m := &TaskService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
