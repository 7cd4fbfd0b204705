package service

import (
	"context"

	"savr/auth-svc/internal/domain"
)

// Persistence stores the per-phone auth state and profile. Reads return nil
// when nothing usable is stored and writes never fail the caller.
type Persistence interface {
	LoadAuthState(ctx context.Context, phone string) *domain.AuthState
	SaveAuthState(ctx context.Context, phone string, state domain.AuthState)
	ClearAuthState(ctx context.Context, phone string)
	LoadProfile(ctx context.Context, phone string) *domain.UserProfile
	SaveProfile(ctx context.Context, phone string, profile domain.UserProfile)
	ClearProfile(ctx context.Context, phone string)
	ClearAll(ctx context.Context, phone string)
}

type AuthServiceInterface interface {
	RequestOTP(ctx context.Context, phone, token string) (domain.AuthSession, error)
	AutoFillOTP(ctx context.Context) (string, error)
	ConfirmOTP(ctx context.Context, session *domain.AuthSession, input string) (domain.AuthSession, error)
}

var _ AuthServiceInterface = (*AuthService)(nil)
