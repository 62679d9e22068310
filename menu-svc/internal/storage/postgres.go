package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"ravintola-sinet/menu-svc/internal/domain"
	"ravintola-sinet/menu-svc/internal/service"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"

	categoryColumns = `id, name, slug, is_active, sort_order, created_at`
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func pqCode(err error) pq.ErrorCode {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code
	}
	return ""
}

func scanCategory(row rowScanner) (*domain.Category, error) {
	var c domain.Category
	if err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.IsActive, &c.Order, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PostgresRepository) CreateCategory(ctx context.Context, category *domain.Category) error {
	err := r.DB.QueryRowContext(ctx,
		"INSERT INTO categories (name, slug, is_active, sort_order) VALUES ($1, $2, $3, $4) RETURNING id, created_at",
		category.Name, category.Slug, category.IsActive, category.Order,
	).Scan(&category.ID, &category.CreatedAt)
	if pqCode(err) == uniqueViolation {
		return service.ErrSlugTaken
	}
	return err
}

func (r *PostgresRepository) ListCategories(ctx context.Context, activeOnly bool) ([]domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY sort_order, name`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, *c)
	}
	return categories, rows.Err()
}

func (r *PostgresRepository) GetCategory(ctx context.Context, id int) (*domain.Category, error) {
	c, err := scanCategory(r.DB.QueryRowContext(ctx, `SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return c, err
}

func (r *PostgresRepository) GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	c, err := scanCategory(r.DB.QueryRowContext(ctx, `SELECT `+categoryColumns+` FROM categories WHERE slug = $1`, slug))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return c, err
}

func (r *PostgresRepository) UpdateCategory(ctx context.Context, category *domain.Category) error {
	err := r.DB.QueryRowContext(ctx,
		"UPDATE categories SET name=$1, slug=$2, is_active=$3, sort_order=$4 WHERE id=$5 RETURNING created_at",
		category.Name, category.Slug, category.IsActive, category.Order, category.ID,
	).Scan(&category.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return domain.ErrNotFound
	case pqCode(err) == uniqueViolation:
		return service.ErrSlugTaken
	}
	return err
}

func (r *PostgresRepository) DeleteCategory(ctx context.Context, id int) (int64, error) {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM categories WHERE id=$1", id)
	if pqCode(err) == foreignKeyViolation {
		return 0, service.ErrCategoryInUse
	}
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS categories (
			id SERIAL PRIMARY KEY,
			name VARCHAR(80) NOT NULL UNIQUE,
			slug VARCHAR(80) NOT NULL UNIQUE,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			sort_order INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS menu_items (
			id SERIAL PRIMARY KEY,
			category_id INTEGER NOT NULL REFERENCES categories(id) ON DELETE RESTRICT,
			name VARCHAR(120) NOT NULL,
			description TEXT,
			price NUMERIC(8, 2) NOT NULL,
			discount_percent NUMERIC(5, 2) NOT NULL DEFAULT 0,
			image_url VARCHAR(255),
			tags VARCHAR(255),
			allergens VARCHAR(255),
			status VARCHAR(10) NOT NULL DEFAULT 'active',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_menu_items_category ON menu_items (category_id)`,
		`CREATE TABLE IF NOT EXISTS contact_messages (
			id SERIAL PRIMARY KEY,
			name VARCHAR(120) NOT NULL,
			email VARCHAR(254) NOT NULL,
			message TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
