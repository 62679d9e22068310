package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"ravintola-sinet/menu-svc/internal/domain"
)

const itemSelect = `
	SELECT i.id, i.category_id, c.name, c.slug, i.name, COALESCE(i.description, ''), i.price,
		i.discount_percent, COALESCE(i.image_url, ''), COALESCE(i.tags, ''), COALESCE(i.allergens, ''),
		i.status, i.created_at
	FROM menu_items i
	JOIN categories c ON c.id = i.category_id`

func scanItem(row rowScanner) (*domain.MenuItem, error) {
	var (
		item      domain.MenuItem
		tags      string
		allergens string
	)
	err := row.Scan(&item.ID, &item.CategoryID, &item.CategoryName, &item.CategorySlug, &item.Name,
		&item.Description, &item.Price, &item.DiscountPercent, &item.ImageURL, &tags, &allergens,
		&item.Status, &item.CreatedAt)
	if err != nil {
		return nil, err
	}
	item.Tags = domain.SplitList(tags)
	item.Allergens = domain.SplitList(allergens)
	return &item, nil
}

func (r *PostgresRepository) CreateItem(ctx context.Context, item *domain.MenuItem) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO menu_items (category_id, name, description, price, discount_percent, image_url, tags, allergens, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`,
		item.CategoryID, item.Name, item.Description, item.Price, item.DiscountPercent, item.ImageURL,
		domain.JoinList(item.Tags), domain.JoinList(item.Allergens), item.Status,
	).Scan(&item.ID, &item.CreatedAt)
}

func (r *PostgresRepository) ListItems(ctx context.Context, filter domain.MenuFilter) ([]domain.MenuItem, error) {
	var (
		where []string
		args  []interface{}
	)
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if !filter.IncludeHidden {
		where = append(where, "i.status <> "+arg(domain.StatusHidden), "c.is_active")
	}
	if filter.Status != "" {
		where = append(where, "i.status = "+arg(filter.Status))
	}
	if filter.CategorySlug != "" {
		where = append(where, "c.slug = "+arg(filter.CategorySlug))
	}
	if filter.Query != "" {
		p := arg("%" + filter.Query + "%")
		where = append(where, fmt.Sprintf("(i.name ILIKE %s OR i.description ILIKE %s OR c.name ILIKE %s)", p, p, p))
	}
	if filter.Tag != "" {
		where = append(where, "(',' || LOWER(COALESCE(i.tags, '')) || ',') LIKE "+arg("%,"+strings.ToLower(filter.Tag)+",%"))
	}

	query := itemSelect
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY c.sort_order, c.name, i.name"
	if filter.Limit > 0 {
		query += " LIMIT " + arg(filter.Limit)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) GetItem(ctx context.Context, id int) (*domain.MenuItem, error) {
	item, err := scanItem(r.DB.QueryRowContext(ctx, itemSelect+" WHERE i.id = $1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return item, err
}

func (r *PostgresRepository) UpdateItem(ctx context.Context, item *domain.MenuItem) error {
	err := r.DB.QueryRowContext(ctx, `
		UPDATE menu_items
		SET category_id=$1, name=$2, description=$3, price=$4, discount_percent=$5, tags=$6, allergens=$7, status=$8
		WHERE id=$9
		RETURNING COALESCE(image_url, ''), created_at`,
		item.CategoryID, item.Name, item.Description, item.Price, item.DiscountPercent,
		domain.JoinList(item.Tags), domain.JoinList(item.Allergens), item.Status, item.ID,
	).Scan(&item.ImageURL, &item.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

func (r *PostgresRepository) DeleteItem(ctx context.Context, id int) (int64, error) {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM menu_items WHERE id=$1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) UpdateItemImage(ctx context.Context, id int, imageURL string) error {
	result, err := r.DB.ExecContext(ctx, "UPDATE menu_items SET image_url=$1 WHERE id=$2", imageURL, id)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
