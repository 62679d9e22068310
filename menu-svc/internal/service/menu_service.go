package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"ravintola-sinet/menu-svc/internal/domain"
)

const PopularLimit = 8

var (
	ErrInvalidItem = errors.New("invalid menu item")

	hundred = decimal.NewFromInt(100)
)

type MenuService struct {
	items      MenuItemRepository
	categories CategoryRepository
}

func NewMenuService(items MenuItemRepository, categories CategoryRepository) *MenuService {
	return &MenuService{items: items, categories: categories}
}

func (s *MenuService) Menu(ctx context.Context, categorySlug, query string) (*domain.Menu, error) {
	categories, err := s.categories.ListCategories(ctx, true)
	if err != nil {
		return nil, err
	}
	menu := &domain.Menu{Categories: categories, Query: strings.TrimSpace(query)}

	filter := domain.MenuFilter{Query: menu.Query}
	if slug := strings.TrimSpace(categorySlug); slug != "" {
		for i := range categories {
			if categories[i].Slug == slug {
				menu.ActiveCategory = &categories[i]
				break
			}
		}
		if menu.ActiveCategory == nil {
			return nil, fmt.Errorf("%w: category %q", domain.ErrNotFound, slug)
		}
		filter.CategorySlug = slug
	}

	items, err := s.items.ListItems(ctx, filter)
	if err != nil {
		return nil, err
	}
	menu.Items = withFinalPrices(items)
	return menu, nil
}

func (s *MenuService) Popular(ctx context.Context) ([]domain.MenuItem, error) {
	items, err := s.items.ListItems(ctx, domain.MenuFilter{
		Status: domain.StatusActive,
		Tag:    domain.PopularTag,
		Limit:  PopularLimit,
	})
	if err != nil {
		return nil, err
	}
	return withFinalPrices(items), nil
}

// Item returns a publicly visible item.
func (s *MenuService) Item(ctx context.Context, id int) (*domain.MenuItem, error) {
	item, err := s.AdminGet(ctx, id)
	if err != nil {
		return nil, err
	}
	if item.Status == domain.StatusHidden {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

func (s *MenuService) AdminList(ctx context.Context, filter domain.MenuFilter) ([]domain.MenuItem, error) {
	filter.IncludeHidden = true
	if filter.Status != "" && !validStatus(filter.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidItem, filter.Status)
	}
	items, err := s.items.ListItems(ctx, filter)
	if err != nil {
		return nil, err
	}
	return withFinalPrices(items), nil
}

func (s *MenuService) AdminGet(ctx context.Context, id int) (*domain.MenuItem, error) {
	item, err := s.items.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}
	item.FinalPrice = item.PricingItem().UnitPrice()
	return item, nil
}

func (s *MenuService) Create(ctx context.Context, item *domain.MenuItem) error {
	if err := s.prepare(ctx, item); err != nil {
		return err
	}
	return s.items.CreateItem(ctx, item)
}

func (s *MenuService) Update(ctx context.Context, item *domain.MenuItem) error {
	if err := s.prepare(ctx, item); err != nil {
		return err
	}
	return s.items.UpdateItem(ctx, item)
}

func (s *MenuService) Delete(ctx context.Context, id int) error {
	affected, err := s.items.DeleteItem(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *MenuService) UpdateImage(ctx context.Context, id int, imageURL string) error {
	return s.items.UpdateItemImage(ctx, id, imageURL)
}

func (s *MenuService) prepare(ctx context.Context, item *domain.MenuItem) error {
	if item == nil {
		return ErrInvalidItem
	}
	item.Name = strings.TrimSpace(item.Name)
	item.Description = strings.TrimSpace(item.Description)
	if item.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidItem)
	}
	if item.Price.IsNegative() {
		return fmt.Errorf("%w: price cannot be negative", ErrInvalidItem)
	}
	if item.DiscountPercent.IsNegative() || item.DiscountPercent.GreaterThan(hundred) {
		return fmt.Errorf("%w: discount must be between 0 and 100", ErrInvalidItem)
	}
	if item.Status == "" {
		item.Status = domain.StatusActive
	}
	if !validStatus(item.Status) {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidItem, item.Status)
	}
	item.Tags = domain.NormalizeList(item.Tags)
	item.Allergens = domain.NormalizeList(item.Allergens)

	category, err := s.categories.GetCategory(ctx, item.CategoryID)
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%w: category %d does not exist", ErrInvalidItem, item.CategoryID)
	}
	if err != nil {
		return err
	}
	item.CategoryName = category.Name
	item.CategorySlug = category.Slug
	item.FinalPrice = item.PricingItem().UnitPrice()
	return nil
}

func validStatus(status string) bool {
	switch status {
	case domain.StatusActive, domain.StatusHidden, domain.StatusSoldOut:
		return true
	}
	return false
}

func withFinalPrices(items []domain.MenuItem) []domain.MenuItem {
	for i := range items {
		items[i].FinalPrice = items[i].PricingItem().UnitPrice()
	}
	return items
}
