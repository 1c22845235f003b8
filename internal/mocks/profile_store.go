package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/taskflow-server/internal/model"
)

// ProfileStore is a mock type for the ProfileStore type
type ProfileStore struct {
	mock.Mock
}

// GetByUserID provides a mock function with given fields: ctx, userID
func (_m *ProfileStore) GetByUserID(ctx context.Context, userID uuid.UUID) (model.Profile, error) {
	ret := _m.Called(ctx, userID)

	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) (model.Profile, error)); ok {
		return rf(ctx, userID)
	}

	var r0 model.Profile
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) model.Profile); ok {
		r0 = rf(ctx, userID)
	} else {
		r0 = ret.Get(0).(model.Profile)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Upsert provides a mock function with given fields: ctx, userID, patch
func (_m *ProfileStore) Upsert(ctx context.Context, userID uuid.UUID, patch model.ProfilePatch) (model.Profile, error) {
	ret := _m.Called(ctx, userID, patch)

	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, model.ProfilePatch) (model.Profile, error)); ok {
		return rf(ctx, userID, patch)
	}

	var r0 model.Profile
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, model.ProfilePatch) model.Profile); ok {
		r0 = rf(ctx, userID, patch)
	} else {
		r0 = ret.Get(0).(model.Profile)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, model.ProfilePatch) error); ok {
		r1 = rf(ctx, userID, patch)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewProfileStore creates a new instance of ProfileStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewProfileStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *ProfileStore {
	m := &ProfileStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
