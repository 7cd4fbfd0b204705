package storage_test

import (
	"context"
	"testing"

	"savr/auth-svc/internal/domain"
	"savr/auth-svc/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const phone = "9876543210"

func setupPersistence(t *testing.T) (*storage.RedisPersistence, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return storage.NewRedisPersistence(rdb, nil), mr
}

func TestRedisPersistence_AuthState(t *testing.T) {
	p, mr := setupPersistence(t)
	ctx := context.Background()
	state := domain.AuthState{
		Token:      "demo-user-token",
		Phone:      phone,
		Session:    &domain.AuthSession{Token: "demo-user-token", Role: domain.RoleUser, Phone: phone, OTP: "123456"},
		IsLoggedIn: true,
	}

	assert.Nil(t, p.LoadAuthState(ctx, phone))

	p.SaveAuthState(ctx, phone, state)
	assert.True(t, mr.Exists("savr_auth_state_v1:"+phone))
	assert.Equal(t, &state, p.LoadAuthState(ctx, phone))

	p.ClearAuthState(ctx, phone)
	assert.Nil(t, p.LoadAuthState(ctx, phone))
}

func TestRedisPersistence_LoadAuthState_dropsUnknownRole(t *testing.T) {
	p, mr := setupPersistence(t)
	require.NoError(t, mr.Set("savr_auth_state_v1:"+phone,
		`{"token":"t","phone":"`+phone+`","session":{"token":"t","role":"admin","phone":"`+phone+`","otp":"1"},"is_logged_in":true}`))

	state := p.LoadAuthState(context.Background(), phone)

	require.NotNil(t, state)
	assert.Nil(t, state.Session)
	assert.True(t, state.IsLoggedIn)
	assert.Equal(t, "t", state.Token)
}

func TestRedisPersistence_LoadAuthState_corrupt(t *testing.T) {
	p, mr := setupPersistence(t)
	require.NoError(t, mr.Set("savr_auth_state_v1:"+phone, "{not json"))

	assert.Nil(t, p.LoadAuthState(context.Background(), phone))
}

func TestRedisPersistence_Profile(t *testing.T) {
	p, mr := setupPersistence(t)
	ctx := context.Background()

	p.SaveProfile(ctx, phone, domain.UserProfile{FirstName: "Asha", LastName: "Rao"})
	assert.True(t, mr.Exists("savr_user_profile_v1:"+phone))
	assert.Equal(t, &domain.UserProfile{FirstName: "Asha", LastName: "Rao"}, p.LoadProfile(ctx, phone))

	p.ClearProfile(ctx, phone)
	assert.Nil(t, p.LoadProfile(ctx, phone))
}

func TestRedisPersistence_ClearAll(t *testing.T) {
	p, mr := setupPersistence(t)
	ctx := context.Background()
	p.SaveAuthState(ctx, phone, domain.AuthState{Phone: phone})
	p.SaveProfile(ctx, phone, domain.UserProfile{FirstName: "Asha"})
	p.SaveProfile(ctx, "other", domain.UserProfile{FirstName: "Ravi"})

	p.ClearAll(ctx, phone)

	assert.False(t, mr.Exists("savr_auth_state_v1:"+phone))
	assert.False(t, mr.Exists("savr_user_profile_v1:"+phone))
	assert.True(t, mr.Exists("savr_user_profile_v1:other"))
}

func TestRedisPersistence_unavailableIsSwallowed(t *testing.T) {
	p, mr := setupPersistence(t)
	mr.Close()
	ctx := context.Background()

	assert.NotPanics(t, func() {
		p.SaveAuthState(ctx, phone, domain.AuthState{})
		p.ClearAll(ctx, phone)
	})
	assert.Nil(t, p.LoadAuthState(ctx, phone))
	assert.Nil(t, p.LoadProfile(ctx, phone))
}
