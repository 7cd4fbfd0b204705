package mocks

import (
	"context"

	"savr/menu-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

type CatalogServiceInterface struct {
	mock.Mock
}

func NewCatalogServiceInterface(t testingT) *CatalogServiceInterface {
	m := &CatalogServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *CatalogServiceInterface) FetchNearby(ctx context.Context, latitude, longitude float64, token string) ([]domain.Restaurant, error) {
	ret := _m.Called(ctx, latitude, longitude, token)
	var r0 []domain.Restaurant
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Restaurant)
	}
	return r0, ret.Error(1)
}

type MenuServiceInterface struct {
	mock.Mock
}

func NewMenuServiceInterface(t testingT) *MenuServiceInterface {
	m := &MenuServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *MenuServiceInterface) FetchMenu(ctx context.Context) ([]domain.MenuItemView, error) {
	ret := _m.Called(ctx)
	var r0 []domain.MenuItemView
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.MenuItemView)
	}
	return r0, ret.Error(1)
}

func (_m *MenuServiceInterface) FindByName(ctx context.Context, name string) (domain.LookupResult, error) {
	ret := _m.Called(ctx, name)
	return ret.Get(0).(domain.LookupResult), ret.Error(1)
}

func (_m *MenuServiceInterface) Upsert(ctx context.Context, input domain.MenuItemInput) (domain.UpsertResult, error) {
	ret := _m.Called(ctx, input)
	return ret.Get(0).(domain.UpsertResult), ret.Error(1)
}

type ProfileServiceInterface struct {
	mock.Mock
}

func NewProfileServiceInterface(t testingT) *ProfileServiceInterface {
	m := &ProfileServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *ProfileServiceInterface) FetchProfile(ctx context.Context) (domain.ProfileView, error) {
	ret := _m.Called(ctx)
	return ret.Get(0).(domain.ProfileView), ret.Error(1)
}

func (_m *ProfileServiceInterface) SaveProfile(ctx context.Context, update domain.ProfileUpdate) (domain.ProfileView, error) {
	ret := _m.Called(ctx, update)
	return ret.Get(0).(domain.ProfileView), ret.Error(1)
}

type MenuRepository struct {
	mock.Mock
}

func NewMenuRepository(t testingT) *MenuRepository {
	m := &MenuRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *MenuRepository) ListMenu(ctx context.Context) ([]domain.FoodItem, error) {
	ret := _m.Called(ctx)
	var r0 []domain.FoodItem
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.FoodItem)
	}
	return r0, ret.Error(1)
}

func (_m *MenuRepository) InsertMenuItem(ctx context.Context, item domain.FoodItem) error {
	return _m.Called(ctx, item).Error(0)
}

func (_m *MenuRepository) ReplaceMenuItem(ctx context.Context, item domain.FoodItem) error {
	return _m.Called(ctx, item).Error(0)
}

type ProfileRepository struct {
	mock.Mock
}

func NewProfileRepository(t testingT) *ProfileRepository {
	m := &ProfileRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *ProfileRepository) GetProfile(ctx context.Context) (domain.RestaurantProfile, error) {
	ret := _m.Called(ctx)
	return ret.Get(0).(domain.RestaurantProfile), ret.Error(1)
}

func (_m *ProfileRepository) SaveProfile(ctx context.Context, profile domain.RestaurantProfile) error {
	return _m.Called(ctx, profile).Error(0)
}
