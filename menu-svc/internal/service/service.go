package service

import (
	"context"
	"errors"
	"time"

	"savr/menu-svc/internal/domain"
)

const serviceName = "menu-svc"

var (
	ErrMissingToken     = errors.New("Missing authenticated token.")
	ErrInvalidMenuItem  = errors.New("invalid menu item")
	ErrInvalidTimeLabel = errors.New("invalid time label")
)

type MenuRepository interface {
	// ListMenu returns the menu newest first.
	ListMenu(ctx context.Context) ([]domain.FoodItem, error)
	InsertMenuItem(ctx context.Context, item domain.FoodItem) error
	ReplaceMenuItem(ctx context.Context, item domain.FoodItem) error
}

type ProfileRepository interface {
	GetProfile(ctx context.Context) (domain.RestaurantProfile, error)
	SaveProfile(ctx context.Context, profile domain.RestaurantProfile) error
}

type CatalogServiceInterface interface {
	FetchNearby(ctx context.Context, latitude, longitude float64, token string) ([]domain.Restaurant, error)
}

type MenuServiceInterface interface {
	FetchMenu(ctx context.Context) ([]domain.MenuItemView, error)
	FindByName(ctx context.Context, name string) (domain.LookupResult, error)
	Upsert(ctx context.Context, input domain.MenuItemInput) (domain.UpsertResult, error)
}

type ProfileServiceInterface interface {
	FetchProfile(ctx context.Context) (domain.ProfileView, error)
	SaveProfile(ctx context.Context, update domain.ProfileUpdate) (domain.ProfileView, error)
}

// Latency is the simulated round trip of each backend call.
type Latency struct {
	Catalog      time.Duration
	ProfileFetch time.Duration
	ProfileSave  time.Duration
	MenuFetch    time.Duration
	MenuFind     time.Duration
	MenuUpsert   time.Duration
}

var DefaultLatency = Latency{
	Catalog:      850 * time.Millisecond,
	ProfileFetch: 320 * time.Millisecond,
	ProfileSave:  450 * time.Millisecond,
	MenuFetch:    300 * time.Millisecond,
	MenuFind:     280 * time.Millisecond,
	MenuUpsert:   450 * time.Millisecond,
}

// wait blocks for d or until ctx is done.
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
