package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/taskflow-server/internal/model"
)

// RateLimiter is a mock type for the RateLimiter type
type RateLimiter struct {
	mock.Mock
}

// Allow provides a mock function with given fields: ctx, key
func (_m *RateLimiter) Allow(ctx context.Context, key string) (model.RateLimitResult, error) {
	ret := _m.Called(ctx, key)

	if rf, ok := ret.Get(0).(func(context.Context, string) (model.RateLimitResult, error)); ok {
		return rf(ctx, key)
	}

	var r0 model.RateLimitResult
	if rf, ok := ret.Get(0).(func(context.Context, string) model.RateLimitResult); ok {
		r0 = rf(ctx, key)
	} else {
		r0 = ret.Get(0).(model.RateLimitResult)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, key)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewRateLimiter creates a new instance of RateLimiter. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewRateLimiter(t interface {
	mock.TestingT
	Cleanup(func())
}) *RateLimiter {
	m := &RateLimiter{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
