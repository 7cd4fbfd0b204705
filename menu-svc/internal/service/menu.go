package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"savr/menu-svc/internal/domain"
	"savr/monitoring"

	"go.uber.org/zap"
)

const (
	MessageItemFound    = "Item found in DB. Fields prefilled."
	MessageItemNotFound = "No previous item found with that name."
	MessageItemUpdated  = "Item already existed. Updated with latest values."
	MessageItemAdded    = "New item added to menu."
)

type MenuService struct {
	// mu serializes upserts so the name match and the positional id are
	// computed against the menu they are written to.
	mu      sync.Mutex
	repo    MenuRepository
	latency Latency
	loc     *time.Location
	logger  *zap.SugaredLogger
}

func NewMenuService(repo MenuRepository, latency Latency, loc *time.Location, logger *zap.SugaredLogger) *MenuService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	if loc == nil {
		loc = time.Local
	}
	return &MenuService{repo: repo, latency: latency, loc: loc, logger: logger}
}

func (s *MenuService) FetchMenu(ctx context.Context) ([]domain.MenuItemView, error) {
	if err := wait(ctx, s.latency.MenuFetch); err != nil {
		return nil, err
	}
	items, err := s.repo.ListMenu(ctx)
	if err != nil {
		return nil, fmt.Errorf("list menu: %w", err)
	}
	views := make([]domain.MenuItemView, 0, len(items))
	for _, item := range items {
		views = append(views, s.view(item))
	}
	return views, nil
}

// FindByName looks an item up by trimmed, case-insensitive name.
func (s *MenuService) FindByName(ctx context.Context, name string) (domain.LookupResult, error) {
	if err := wait(ctx, s.latency.MenuFind); err != nil {
		return domain.LookupResult{}, err
	}
	items, err := s.repo.ListMenu(ctx)
	if err != nil {
		return domain.LookupResult{}, fmt.Errorf("list menu: %w", err)
	}
	if idx := matchByName(items, name); idx >= 0 {
		item := items[idx]
		return domain.LookupResult{Item: &item, Message: MessageItemFound}, nil
	}
	return domain.LookupResult{Message: MessageItemNotFound}, nil
}

// Upsert replaces every field of the item whose name matches, keeping its
// id, or prepends a new item with id "m<len+1>".
func (s *MenuService) Upsert(ctx context.Context, input domain.MenuItemInput) (domain.UpsertResult, error) {
	if err := validateMenuItem(input); err != nil {
		return domain.UpsertResult{}, err
	}
	if err := wait(ctx, s.latency.MenuUpsert); err != nil {
		return domain.UpsertResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.repo.ListMenu(ctx)
	if err != nil {
		return domain.UpsertResult{}, fmt.Errorf("list menu: %w", err)
	}

	item := normalizeMenuItem(input)
	idx := matchByName(items, input.Name)
	if idx >= 0 {
		item.ID = items[idx].ID
		if err := s.repo.ReplaceMenuItem(ctx, item); err != nil {
			monitoring.RecordOperation(serviceName, "upsert_menu_item", false)
			return domain.UpsertResult{}, fmt.Errorf("replace menu item %s: %w", item.ID, err)
		}
		monitoring.RecordOperation(serviceName, "upsert_menu_item", true)
		s.logger.Infow("menu item updated", "item_id", item.ID, "name", item.Name)
		return domain.UpsertResult{Item: item, WasExisting: true, Message: MessageItemUpdated}, nil
	}

	item.ID = fmt.Sprintf("m%d", len(items)+1)
	if err := s.repo.InsertMenuItem(ctx, item); err != nil {
		monitoring.RecordOperation(serviceName, "upsert_menu_item", false)
		return domain.UpsertResult{}, fmt.Errorf("insert menu item %s: %w", item.ID, err)
	}
	monitoring.RecordOperation(serviceName, "upsert_menu_item", true)
	s.logger.Infow("menu item added", "item_id", item.ID, "name", item.Name)
	return domain.UpsertResult{Item: item, WasExisting: false, Message: MessageItemAdded}, nil
}

func (s *MenuService) view(item domain.FoodItem) domain.MenuItemView {
	v := domain.MenuItemView{
		FoodItem:                 item,
		FormattedActualPrice:     FormatPrice(item.ActualPrice),
		FormattedDiscountedPrice: FormatPrice(item.DiscountedPrice),
		FormattedSavings:         FormatSavings(item.ActualPrice, item.DiscountedPrice),
	}
	if item.AvailableFrom != nil {
		v.AvailableFromLabel = EpochToTimeLabel(*item.AvailableFrom, s.loc)
	}
	return v
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func matchByName(items []domain.FoodItem, name string) int {
	target := normalizeName(name)
	for i, item := range items {
		if normalizeName(item.Name) == target {
			return i
		}
	}
	return -1
}

func validateMenuItem(input domain.MenuItemInput) error {
	switch {
	case strings.TrimSpace(input.Name) == "":
		return fmt.Errorf("%w: name is required", ErrInvalidMenuItem)
	case input.ActualPrice < 0 || input.DiscountedPrice < 0:
		return fmt.Errorf("%w: prices must not be negative", ErrInvalidMenuItem)
	case input.Quantity < 0:
		return fmt.Errorf("%w: quantity must not be negative", ErrInvalidMenuItem)
	}
	return nil
}

func normalizeMenuItem(input domain.MenuItemInput) domain.FoodItem {
	image := strings.TrimSpace(input.ImageURL)
	if image == "" {
		image = DefaultMenuImage
	}
	availableFrom := input.AvailableFrom
	quantity := input.Quantity
	return domain.FoodItem{
		Name:            strings.TrimSpace(input.Name),
		Description:     strings.TrimSpace(input.Description),
		ActualPrice:     input.ActualPrice,
		DiscountedPrice: input.DiscountedPrice,
		ImageURL:        image,
		AvailableFrom:   &availableFrom,
		Quantity:        &quantity,
	}
}

var _ MenuServiceInterface = (*MenuService)(nil)
