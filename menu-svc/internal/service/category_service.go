package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"ravintola-sinet/menu-svc/internal/domain"
)

var (
	ErrInvalidCategory = errors.New("invalid category")
	ErrSlugTaken       = errors.New("category name or slug already exists")
	ErrCategoryInUse   = errors.New("category still has menu items")
)

var slugReplacer = strings.NewReplacer("ä", "a", "å", "a", "ö", "o", "ü", "u", "é", "e")

// Slugify lower-cases the input and joins its alphanumeric runs with dashes.
func Slugify(s string) string {
	s = slugReplacer.Replace(strings.ToLower(strings.TrimSpace(s)))
	var b strings.Builder
	dash := false
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

type CategoryService struct {
	repository CategoryRepository
}

func NewCategoryService(repository CategoryRepository) *CategoryService {
	return &CategoryService{repository: repository}
}

func (s *CategoryService) Create(ctx context.Context, category *domain.Category) error {
	if err := prepareCategory(category); err != nil {
		return err
	}
	return s.repository.CreateCategory(ctx, category)
}

func (s *CategoryService) List(ctx context.Context, activeOnly bool) ([]domain.Category, error) {
	return s.repository.ListCategories(ctx, activeOnly)
}

func (s *CategoryService) Get(ctx context.Context, id int) (*domain.Category, error) {
	return s.repository.GetCategory(ctx, id)
}

func (s *CategoryService) Update(ctx context.Context, category *domain.Category) error {
	if err := prepareCategory(category); err != nil {
		return err
	}
	return s.repository.UpdateCategory(ctx, category)
}

func (s *CategoryService) Delete(ctx context.Context, id int) error {
	affected, err := s.repository.DeleteCategory(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func prepareCategory(category *domain.Category) error {
	if category == nil {
		return ErrInvalidCategory
	}
	category.Name = strings.TrimSpace(category.Name)
	if category.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidCategory)
	}
	source := category.Slug
	if strings.TrimSpace(source) == "" {
		source = category.Name
	}
	category.Slug = Slugify(source)
	if category.Slug == "" {
		return fmt.Errorf("%w: slug is empty", ErrInvalidCategory)
	}
	return nil
}
