package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/taskflow-server/internal/model"
)

// ProjectStore is a mock type for the ProjectStore type
type ProjectStore struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, project, memberIDs
func (_m *ProjectStore) Create(ctx context.Context, project model.Project, memberIDs []uuid.UUID) (model.Project, error) {
	ret := _m.Called(ctx, project, memberIDs)

	if rf, ok := ret.Get(0).(func(context.Context, model.Project, []uuid.UUID) (model.Project, error)); ok {
		return rf(ctx, project, memberIDs)
	}

	var r0 model.Project
	if rf, ok := ret.Get(0).(func(context.Context, model.Project, []uuid.UUID) model.Project); ok {
		r0 = rf(ctx, project, memberIDs)
	} else {
		r0 = ret.Get(0).(model.Project)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, model.Project, []uuid.UUID) error); ok {
		r1 = rf(ctx, project, memberIDs)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetByID provides a mock function with given fields: ctx, id
func (_m *ProjectStore) GetByID(ctx context.Context, id uuid.UUID) (model.Project, error) {
	ret := _m.Called(ctx, id)

	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) (model.Project, error)); ok {
		return rf(ctx, id)
	}

	var r0 model.Project
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) model.Project); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Get(0).(model.Project)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ListForUser provides a mock function with given fields: ctx, userID
func (_m *ProjectStore) ListForUser(ctx context.Context, userID uuid.UUID) ([]model.Project, error) {
	ret := _m.Called(ctx, userID)

	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) ([]model.Project, error)); ok {
		return rf(ctx, userID)
	}

	var r0 []model.Project
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) []model.Project); ok {
		r0 = rf(ctx, userID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]model.Project)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Update provides a mock function with given fields: ctx, id, patch
func (_m *ProjectStore) Update(ctx context.Context, id uuid.UUID, patch model.ProjectPatch) (model.Project, error) {
	ret := _m.Called(ctx, id, patch)

	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, model.ProjectPatch) (model.Project, error)); ok {
		return rf(ctx, id, patch)
	}

	var r0 model.Project
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, model.ProjectPatch) model.Project); ok {
		r0 = rf(ctx, id, patch)
	} else {
		r0 = ret.Get(0).(model.Project)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, model.ProjectPatch) error); ok {
		r1 = rf(ctx, id, patch)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Delete provides a mock function with given fields: ctx, id
func (_m *ProjectStore) Delete(ctx context.Context, id uuid.UUID) (model.Project, error) {
	ret := _m.Called(ctx, id)

	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) (model.Project, error)); ok {
		return rf(ctx, id)
	}

	var r0 model.Project
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) model.Project); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Get(0).(model.Project)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// IsMember provides a mock function with given fields: ctx, projectID, userID
func (_m *ProjectStore) IsMember(ctx context.Context, projectID uuid.UUID, userID uuid.UUID) (bool, error) {
	ret := _m.Called(ctx, projectID, userID)

	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) (bool, error)); ok {
		return rf(ctx, projectID, userID)
	}

	var r0 bool
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) bool); ok {
		r0 = rf(ctx, projectID, userID)
	} else {
		r0 = ret.Get(0).(bool)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, uuid.UUID) error); ok {
		r1 = rf(ctx, projectID, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewProjectStore creates a new instance of ProjectStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewProjectStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *ProjectStore {
	m := &ProjectStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
