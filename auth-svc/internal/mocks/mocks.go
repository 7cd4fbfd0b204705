package mocks

import (
	"context"

	"savr/auth-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

type AuthServiceInterface struct {
	mock.Mock
}

func NewAuthServiceInterface(t testingT) *AuthServiceInterface {
	m := &AuthServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *AuthServiceInterface) RequestOTP(ctx context.Context, phone, token string) (domain.AuthSession, error) {
	ret := _m.Called(ctx, phone, token)
	return ret.Get(0).(domain.AuthSession), ret.Error(1)
}

func (_m *AuthServiceInterface) AutoFillOTP(ctx context.Context) (string, error) {
	ret := _m.Called(ctx)
	return ret.String(0), ret.Error(1)
}

func (_m *AuthServiceInterface) ConfirmOTP(ctx context.Context, session *domain.AuthSession, input string) (domain.AuthSession, error) {
	ret := _m.Called(ctx, session, input)
	return ret.Get(0).(domain.AuthSession), ret.Error(1)
}

type Persistence struct {
	mock.Mock
}

func NewPersistence(t testingT) *Persistence {
	m := &Persistence{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *Persistence) LoadAuthState(ctx context.Context, phone string) *domain.AuthState {
	ret := _m.Called(ctx, phone)
	if v := ret.Get(0); v != nil {
		return v.(*domain.AuthState)
	}
	return nil
}

func (_m *Persistence) SaveAuthState(ctx context.Context, phone string, state domain.AuthState) {
	_m.Called(ctx, phone, state)
}

func (_m *Persistence) ClearAuthState(ctx context.Context, phone string) {
	_m.Called(ctx, phone)
}

func (_m *Persistence) LoadProfile(ctx context.Context, phone string) *domain.UserProfile {
	ret := _m.Called(ctx, phone)
	if v := ret.Get(0); v != nil {
		return v.(*domain.UserProfile)
	}
	return nil
}

func (_m *Persistence) SaveProfile(ctx context.Context, phone string, profile domain.UserProfile) {
	_m.Called(ctx, phone, profile)
}

func (_m *Persistence) ClearProfile(ctx context.Context, phone string) {
	_m.Called(ctx, phone)
}

func (_m *Persistence) ClearAll(ctx context.Context, phone string) {
	_m.Called(ctx, phone)
}
