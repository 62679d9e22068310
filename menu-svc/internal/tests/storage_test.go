package tests

import (
	"context"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ravintola-sinet/menu-svc/internal/domain"
	"ravintola-sinet/menu-svc/internal/service"
	"ravintola-sinet/menu-svc/internal/storage"
)

var itemColumns = []string{"id", "category_id", "category_name", "category_slug", "name", "description", "price",
	"discount_percent", "image_url", "tags", "allergens", "status", "created_at"}

func newMockRepository(t *testing.T) (*storage.PostgresRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return storage.NewPostgresRepository(db), mock
}

func TestPostgresRepository_ListItems(t *testing.T) {
	tests := []struct {
		name   string
		filter domain.MenuFilter
		query  string
		args   []driver.Value
	}{
		{
			name:   "public_category_and_query",
			filter: domain.MenuFilter{CategorySlug: "soups", Query: "lohi"},
			query:  `WHERE i.status <> \$1 AND c.is_active AND c.slug = \$2 AND \(i.name ILIKE \$3`,
			args:   []driver.Value{domain.StatusHidden, "soups", "%lohi%"},
		},
		{
			name:   "popular",
			filter: domain.MenuFilter{Status: domain.StatusActive, Tag: "Popular", Limit: 8},
			query:  `LIKE \$3 ORDER BY c.sort_order, c.name, i.name LIMIT \$4`,
			args:   []driver.Value{domain.StatusHidden, domain.StatusActive, "%,popular,%", 8},
		},
		{
			name:   "admin_everything",
			filter: domain.MenuFilter{IncludeHidden: true},
			query:  `JOIN categories c ON c.id = i.category_id ORDER BY`,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo, mock := newMockRepository(t)
			expectation := mock.ExpectQuery(testCase.query)
			if testCase.args != nil {
				expectation.WithArgs(testCase.args...)
			}
			expectation.WillReturnRows(sqlmock.NewRows(itemColumns).
				AddRow(7, 1, "Soups", "soups", "Salmon soup", "", "20.00", "25.00", "", "popular,fish", "", "active", time.Now()))

			items, err := repo.ListItems(context.Background(), testCase.filter)

			require.NoError(t, err)
			require.Len(t, items, 1)
			assert.Equal(t, []string{"popular", "fish"}, items[0].Tags)
			assert.Empty(t, items[0].Allergens)
			assert.Equal(t, "20.00", items[0].Price.StringFixed(2))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgresRepository_GetItemNotFound(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectQuery(`WHERE i.id = \$1`).WithArgs(404).WillReturnRows(sqlmock.NewRows(itemColumns))

	_, err := repo.GetItem(context.Background(), 404)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPostgresRepository_CategoryErrors(t *testing.T) {
	t.Run("duplicate_slug", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectQuery("INSERT INTO categories").
			WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"})

		err := repo.CreateCategory(context.Background(), &domain.Category{Name: "Soups", Slug: "soups"})

		assert.ErrorIs(t, err, service.ErrSlugTaken)
	})

	t.Run("delete_referenced", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectExec("DELETE FROM categories").WithArgs(1).
			WillReturnError(&pq.Error{Code: "23503", Message: "violates foreign key constraint"})

		_, err := repo.DeleteCategory(context.Background(), 1)

		assert.ErrorIs(t, err, service.ErrCategoryInUse)
	})

	t.Run("list_active_ordered", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectQuery(`FROM categories WHERE is_active ORDER BY sort_order, name`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug", "is_active", "sort_order", "created_at"}).
				AddRow(1, "Soups", "soups", true, 1, time.Now()))

		categories, err := repo.ListCategories(context.Background(), true)

		require.NoError(t, err)
		assert.Equal(t, "soups", categories[0].Slug)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresRepository_UpdateItemImageMissing(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectExec("UPDATE menu_items SET image_url").
		WithArgs("/uploads/x.png", 9).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateItemImage(context.Background(), 9, "/uploads/x.png")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
