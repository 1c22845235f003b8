package mocks

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/taskflow-server/internal/model"
)

// TokenManager is a mock type for the TokenManager type
type TokenManager struct {
	mock.Mock
}

// GenerateSessionToken provides a mock function with given fields: claim
func (_m *TokenManager) GenerateSessionToken(claim model.IdentityClaim) (string, time.Time, error) {
	ret := _m.Called(claim)

	if rf, ok := ret.Get(0).(func(model.IdentityClaim) (string, time.Time, error)); ok {
		return rf(claim)
	}

	var r0 string
	if rf, ok := ret.Get(0).(func(model.IdentityClaim) string); ok {
		r0 = rf(claim)
	} else {
		r0 = ret.Get(0).(string)
	}

	var r1 time.Time
	if rf, ok := ret.Get(1).(func(model.IdentityClaim) time.Time); ok {
		r1 = rf(claim)
	} else {
		r1 = ret.Get(1).(time.Time)
	}

	var r2 error
	if rf, ok := ret.Get(2).(func(model.IdentityClaim) error); ok {
		r2 = rf(claim)
	} else {
		r2 = ret.Error(2)
	}

	return r0, r1, r2
}

// ParseSessionToken provides a mock function with given fields: token
func (_m *TokenManager) ParseSessionToken(token string) (model.TokenClaims, error) {
	ret := _m.Called(token)

	if rf, ok := ret.Get(0).(func(string) (model.TokenClaims, error)); ok {
		return rf(token)
	}

	var r0 model.TokenClaims
	if rf, ok := ret.Get(0).(func(string) model.TokenClaims); ok {
		r0 = rf(token)
	} else {
		r0 = ret.Get(0).(model.TokenClaims)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(string) error); ok {
		r1 = rf(token)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewTokenManager creates a new instance of TokenManager. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewTokenManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *TokenManager {
	m := &TokenManager{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
