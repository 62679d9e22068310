package service

import (
	"context"

	"ravintola-sinet/menu-svc/internal/domain"
)

type CategoryRepository interface {
	CreateCategory(ctx context.Context, category *domain.Category) error
	ListCategories(ctx context.Context, activeOnly bool) ([]domain.Category, error)
	GetCategory(ctx context.Context, id int) (*domain.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error)
	UpdateCategory(ctx context.Context, category *domain.Category) error
	DeleteCategory(ctx context.Context, id int) (int64, error)
}

type MenuItemRepository interface {
	CreateItem(ctx context.Context, item *domain.MenuItem) error
	ListItems(ctx context.Context, filter domain.MenuFilter) ([]domain.MenuItem, error)
	GetItem(ctx context.Context, id int) (*domain.MenuItem, error)
	UpdateItem(ctx context.Context, item *domain.MenuItem) error
	DeleteItem(ctx context.Context, id int) (int64, error)
	UpdateItemImage(ctx context.Context, id int, imageURL string) error
}

type ContactRepository interface {
	CreateMessage(ctx context.Context, msg *domain.ContactMessage) error
	ListMessages(ctx context.Context, limit int) ([]domain.ContactMessage, error)
}

type CategoryServiceInterface interface {
	Create(ctx context.Context, category *domain.Category) error
	List(ctx context.Context, activeOnly bool) ([]domain.Category, error)
	Get(ctx context.Context, id int) (*domain.Category, error)
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, id int) error
}

type MenuServiceInterface interface {
	Menu(ctx context.Context, categorySlug, query string) (*domain.Menu, error)
	Popular(ctx context.Context) ([]domain.MenuItem, error)
	Item(ctx context.Context, id int) (*domain.MenuItem, error)
	AdminList(ctx context.Context, filter domain.MenuFilter) ([]domain.MenuItem, error)
	AdminGet(ctx context.Context, id int) (*domain.MenuItem, error)
	Create(ctx context.Context, item *domain.MenuItem) error
	Update(ctx context.Context, item *domain.MenuItem) error
	Delete(ctx context.Context, id int) error
	UpdateImage(ctx context.Context, id int, imageURL string) error
}

type ContactServiceInterface interface {
	Submit(ctx context.Context, msg *domain.ContactMessage) error
	List(ctx context.Context, limit int) ([]domain.ContactMessage, error)
}

var (
	_ CategoryServiceInterface = (*CategoryService)(nil)
	_ MenuServiceInterface     = (*MenuService)(nil)
	_ ContactServiceInterface  = (*ContactService)(nil)
)
