package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/taskflow-server/internal/model"
)

// ProfileService is a mock type for the ProfileService type
type ProfileService struct {
	mock.Mock
}

// Get provides a mock function with given fields: ctx
func (_m *ProfileService) Get(ctx context.Context) (*model.Profile, error) {
	ret := _m.Called(ctx)

	if rf, ok := ret.Get(0).(func(context.Context) (*model.Profile, error)); ok {
		return rf(ctx)
	}

	var r0 *model.Profile
	if rf, ok := ret.Get(0).(func(context.Context) *model.Profile); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*model.Profile)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Update provides a mock function with given fields: ctx, params
func (_m *ProfileService) Update(ctx context.Context, params model.UpdateProfileParams) (model.Profile, error) {
	ret := _m.Called(ctx, params)

	if rf, ok := ret.Get(0).(func(context.Context, model.UpdateProfileParams) (model.Profile, error)); ok {
		return rf(ctx, params)
	}

	var r0 model.Profile
	if rf, ok := ret.Get(0).(func(context.Context, model.UpdateProfileParams) model.Profile); ok {
		r0 = rf(ctx, params)
	} else {
		r0 = ret.Get(0).(model.Profile)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, model.UpdateProfileParams) error); ok {
		r1 = rf(ctx, params)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// UploadAvatar provides a mock function with given fields: ctx, upload
func (_m *ProfileService) UploadAvatar(ctx context.Context, upload model.AvatarUpload) (model.Profile, error) {
	ret := _m.Called(ctx, upload)

	if rf, ok := ret.Get(0).(func(context.Context, model.AvatarUpload) (model.Profile, error)); ok {
		return rf(ctx, upload)
	}

	var r0 model.Profile
	if rf, ok := ret.Get(0).(func(context.Context, model.AvatarUpload) model.Profile); ok {
		r0 = rf(ctx, upload)
	} else {
		r0 = ret.Get(0).(model.Profile)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, model.AvatarUpload) error); ok {
		r1 = rf(ctx, upload)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewProfileService creates a new instance of ProfileService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewProfileService(t interface {
	mock.TestingT
	Cleanup(func())
}) *ProfileService {
	m := &ProfileService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
