package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"savr/auth-svc/internal/domain"
	"savr/monitoring"

	"go.uber.org/zap"
)

const serviceName = "auth-svc"

// DefaultOTP is the code every simulated login accepts.
const DefaultOTP = "123456"

var (
	ErrPhoneRequired  = errors.New("Phone number is required.")
	ErrMissingSession = errors.New("Missing OTP session.")
	ErrInvalidOTP     = errors.New("Invalid OTP code.")
)

type Latency struct {
	Request  time.Duration
	AutoFill time.Duration
	Confirm  time.Duration
}

var DefaultLatency = Latency{
	Request:  700 * time.Millisecond,
	AutoFill: 900 * time.Millisecond,
	Confirm:  400 * time.Millisecond,
}

type AuthService struct {
	tokens  TokenIssuer
	store   Persistence
	latency Latency
	otp     string
	logger  *zap.SugaredLogger
}

func NewAuthService(tokens TokenIssuer, store Persistence, latency Latency, logger *zap.SugaredLogger) *AuthService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &AuthService{tokens: tokens, store: store, latency: latency, otp: DefaultOTP, logger: logger}
}

// RequestOTP starts a login for phone. A blank token is replaced by a signed
// placeholder.
func (s *AuthService) RequestOTP(ctx context.Context, phone, token string) (domain.AuthSession, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return domain.AuthSession{}, ErrPhoneRequired
	}
	if token == "" {
		issued, err := s.tokens.Issue(phone, domain.RoleUser)
		if err != nil {
			return domain.AuthSession{}, fmt.Errorf("issue token: %w", err)
		}
		token = issued
	}
	if err := wait(ctx, s.latency.Request); err != nil {
		return domain.AuthSession{}, err
	}
	monitoring.RecordOperation(serviceName, "request_otp", true)
	return domain.AuthSession{Token: token, Role: domain.RoleUser, Phone: phone, OTP: s.otp}, nil
}

func (s *AuthService) AutoFillOTP(ctx context.Context) (string, error) {
	if err := wait(ctx, s.latency.AutoFill); err != nil {
		return "", err
	}
	return s.otp, nil
}

// ConfirmOTP checks input against the session's code and, on success,
// returns the session with the granted role. The logged-in state is saved on
// a best-effort basis.
func (s *AuthService) ConfirmOTP(ctx context.Context, session *domain.AuthSession, input string) (domain.AuthSession, error) {
	if session == nil {
		return domain.AuthSession{}, ErrMissingSession
	}
	if err := wait(ctx, s.latency.Confirm); err != nil {
		return domain.AuthSession{}, err
	}
	if strings.TrimSpace(input) != session.OTP {
		monitoring.RecordOperation(serviceName, "confirm_otp", false)
		return domain.AuthSession{}, ErrInvalidOTP
	}

	confirmed := *session
	confirmed.Role = RoleFromToken(session.Token)
	s.store.SaveAuthState(context.WithoutCancel(ctx), confirmed.Phone, domain.AuthState{
		Token:      confirmed.Token,
		Phone:      confirmed.Phone,
		Session:    &confirmed,
		IsLoggedIn: true,
	})
	monitoring.RecordOperation(serviceName, "confirm_otp", true)
	s.logger.Infow("otp confirmed", "phone", confirmed.Phone, "role", confirmed.Role)
	return confirmed, nil
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
