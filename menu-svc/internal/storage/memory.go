package storage

import (
	"context"
	"errors"
	"sync"

	"savr/menu-svc/internal/domain"
)

var ErrMenuItemNotFound = errors.New("menu item not found")

// MemoryRepository keeps the profile and menu in process.
type MemoryRepository struct {
	mu      sync.RWMutex
	profile domain.RestaurantProfile
	menu    []domain.FoodItem
}

func NewMemoryRepository(profile domain.RestaurantProfile, menu []domain.FoodItem) *MemoryRepository {
	items := make([]domain.FoodItem, len(menu))
	copy(items, menu)
	return &MemoryRepository{profile: profile, menu: items}
}

func (r *MemoryRepository) GetProfile(_ context.Context) (domain.RestaurantProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.profile, nil
}

func (r *MemoryRepository) SaveProfile(_ context.Context, profile domain.RestaurantProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profile = profile
	return nil
}

func (r *MemoryRepository) ListMenu(_ context.Context) ([]domain.FoodItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	items := make([]domain.FoodItem, len(r.menu))
	copy(items, r.menu)
	return items, nil
}

func (r *MemoryRepository) InsertMenuItem(_ context.Context, item domain.FoodItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.menu = append([]domain.FoodItem{item}, r.menu...)
	return nil
}

func (r *MemoryRepository) ReplaceMenuItem(_ context.Context, item domain.FoodItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.menu {
		if r.menu[i].ID == item.ID {
			r.menu[i] = item
			return nil
		}
	}
	return ErrMenuItemNotFound
}
