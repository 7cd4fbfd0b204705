package storage

import (
	"context"
	"encoding/json"
	"errors"

	"savr/auth-svc/internal/domain"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	AuthStateKey   = "savr_auth_state_v1"
	UserProfileKey = "savr_user_profile_v1"
)

func authStateKey(phone string) string { return AuthStateKey + ":" + phone }

func profileKey(phone string) string { return UserProfileKey + ":" + phone }

// RedisPersistence keeps the auth state and profile as JSON strings. Every
// failure is logged and swallowed.
type RedisPersistence struct {
	rdb    *redis.Client
	logger *zap.SugaredLogger
}

func NewRedisPersistence(rdb *redis.Client, logger *zap.SugaredLogger) *RedisPersistence {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &RedisPersistence{rdb: rdb, logger: logger}
}

// LoadAuthState drops a stored session whose role is not recognised but keeps
// the rest of the state.
func (p *RedisPersistence) LoadAuthState(ctx context.Context, phone string) *domain.AuthState {
	var state domain.AuthState
	if !p.load(ctx, authStateKey(phone), &state) {
		return nil
	}
	if state.Session != nil {
		if _, err := domain.ParseUserRole(string(state.Session.Role)); err != nil {
			state.Session = nil
		}
	}
	return &state
}

func (p *RedisPersistence) SaveAuthState(ctx context.Context, phone string, state domain.AuthState) {
	p.save(ctx, authStateKey(phone), state)
}

func (p *RedisPersistence) ClearAuthState(ctx context.Context, phone string) {
	p.remove(ctx, authStateKey(phone))
}

func (p *RedisPersistence) LoadProfile(ctx context.Context, phone string) *domain.UserProfile {
	var profile domain.UserProfile
	if !p.load(ctx, profileKey(phone), &profile) {
		return nil
	}
	return &profile
}

func (p *RedisPersistence) SaveProfile(ctx context.Context, phone string, profile domain.UserProfile) {
	p.save(ctx, profileKey(phone), profile)
}

func (p *RedisPersistence) ClearProfile(ctx context.Context, phone string) {
	p.remove(ctx, profileKey(phone))
}

func (p *RedisPersistence) ClearAll(ctx context.Context, phone string) {
	p.remove(ctx, authStateKey(phone), profileKey(phone))
}

func (p *RedisPersistence) load(ctx context.Context, key string, dst interface{}) bool {
	raw, err := p.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false
	}
	if err != nil {
		p.logger.Warnw("persisted value unavailable", "key", key, "error", err)
		return false
	}
	if len(raw) == 0 {
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		p.logger.Warnw("persisted value unreadable", "key", key, "error", err)
		return false
	}
	return true
}

func (p *RedisPersistence) save(ctx context.Context, key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		p.logger.Warnw("persisted value not encodable", "key", key, "error", err)
		return
	}
	if err := p.rdb.Set(ctx, key, raw, 0).Err(); err != nil {
		p.logger.Warnw("persisted value not saved", "key", key, "error", err)
	}
}

func (p *RedisPersistence) remove(ctx context.Context, keys ...string) {
	if err := p.rdb.Del(ctx, keys...).Err(); err != nil {
		p.logger.Warnw("persisted value not removed", "keys", keys, "error", err)
	}
}
