package preorder

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
)

type PostgresCatalog struct {
	DB *sql.DB
}

func NewPostgresCatalog(db *sql.DB) *PostgresCatalog {
	return &PostgresCatalog{DB: db}
}

func (c *PostgresCatalog) ItemsByIDs(ctx context.Context, ids []int) (map[int]Item, error) {
	rows, err := c.DB.QueryContext(ctx, `
		SELECT id, name, price, COALESCE(discount_percent, 0), status
		FROM menu_items
		WHERE id = ANY($1)
	`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make(map[int]Item, len(ids))
	for rows.Next() {
		var item Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.DiscountPercent, &item.Status); err != nil {
			return nil, err
		}
		items[item.ID] = item
	}
	return items, rows.Err()
}

// MapCatalog serves items from memory.
type MapCatalog map[int]Item

func (c MapCatalog) ItemsByIDs(_ context.Context, ids []int) (map[int]Item, error) {
	items := make(map[int]Item, len(ids))
	for _, id := range ids {
		if item, ok := c[id]; ok {
			items[id] = item
		}
	}
	return items, nil
}

var (
	_ Catalog = (*PostgresCatalog)(nil)
	_ Catalog = MapCatalog(nil)
)
