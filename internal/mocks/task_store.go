package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/taskflow-server/internal/model"
)

// TaskStore is a mock type for the TaskStore type
type TaskStore struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, task
func (_m *TaskStore) Create(ctx context.Context, task model.Task) (model.Task, error) {
	ret := _m.Called(ctx, task)

	if rf, ok := ret.Get(0).(func(context.Context, model.Task) (model.Task, error)); ok {
		return rf(ctx, task)
	}

	var r0 model.Task
	if rf, ok := ret.Get(0).(func(context.Context, model.Task) model.Task); ok {
		r0 = rf(ctx, task)
	} else {
		r0 = ret.Get(0).(model.Task)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, model.Task) error); ok {
		r1 = rf(ctx, task)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetByID provides a mock function with given fields: ctx, id
func (_m *TaskStore) GetByID(ctx context.Context, id uuid.UUID) (model.Task, error) {
	ret := _m.Called(ctx, id)

	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) (model.Task, error)); ok {
		return rf(ctx, id)
	}

	var r0 model.Task
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) model.Task); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Get(0).(model.Task)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ListByProject provides a mock function with given fields: ctx, projectID
func (_m *TaskStore) ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.Task, error) {
	ret := _m.Called(ctx, projectID)

	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) ([]model.Task, error)); ok {
		return rf(ctx, projectID)
	}

	var r0 []model.Task
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) []model.Task); ok {
		r0 = rf(ctx, projectID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.Task)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, projectID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Update provides a mock function with given fields: ctx, id, patch
func (_m *TaskStore) Update(ctx context.Context, id uuid.UUID, patch model.TaskPatch) (model.Task, error) {
	ret := _m.Called(ctx, id, patch)

	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, model.TaskPatch) (model.Task, error)); ok {
		return rf(ctx, id, patch)
	}

	var r0 model.Task
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, model.TaskPatch) model.Task); ok {
		r0 = rf(ctx, id, patch)
	} else {
		r0 = ret.Get(0).(model.Task)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, model.TaskPatch) error); ok {
		r1 = rf(ctx, id, patch)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Delete provides a mock function with given fields: ctx, id
func (_m *TaskStore) Delete(ctx context.Context, id uuid.UUID) (model.Task, error) {
	ret := _m.Called(ctx, id)

	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) (model.Task, error)); ok {
		return rf(ctx, id)
	}

	var r0 model.Task
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) model.Task); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Get(0).(model.Task)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewTaskStore creates a new instance of TaskStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewTaskStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *TaskStore {
	m := &TaskStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
