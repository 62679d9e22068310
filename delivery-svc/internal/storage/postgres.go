package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"ravintola-sinet/delivery-svc/internal/domain"
	"ravintola-sinet/delivery-svc/internal/service"
)

const orderColumns = `
	id, public_token, status, customer_name, phone, COALESCE(note, ''), COALESCE(address_label, ''),
	COALESCE(address_extra, ''), lat, lng, distance_km, payment_method, subtotal, delivery_fee,
	COALESCE(coupon_code, ''), coupon_discount, total, COALESCE(promo_title, ''),
	promo_free_delivery, promo_min_subtotal, created_at`

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var order domain.Order
	err := row.Scan(
		&order.ID, &order.PublicToken, &order.Status, &order.CustomerName, &order.Phone, &order.Note, &order.AddressLabel,
		&order.AddressExtra, &order.Lat, &order.Lng, &order.DistanceKm, &order.PaymentMethod,
		&order.Subtotal, &order.DeliveryFee, &order.CouponCode, &order.CouponDiscount, &order.Total,
		&order.PromoTitle, &order.PromoFreeDelivery, &order.PromoMinSubtotal, &order.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// CreateOrder writes the order, its lines and the coupon redemption in one
// transaction. A coupon that ran out of uses in the meantime aborts it.
func (r *PostgresRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var couponCode interface{}
	if order.CouponCode != "" {
		couponCode = order.CouponCode
	}
	if err := tx.QueryRowContext(ctx, `
		INSERT INTO delivery_orders (
			public_token, status, customer_name, phone, note, address_label, address_extra, lat, lng, distance_km,
			payment_method, subtotal, delivery_fee, coupon_id, coupon_code, coupon_discount, total,
			promo_title, promo_free_delivery, promo_min_subtotal
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		RETURNING id, created_at
	`, order.PublicToken, order.Status, order.CustomerName, order.Phone, order.Note, order.AddressLabel, order.AddressExtra,
		order.Lat, order.Lng, order.DistanceKm, order.PaymentMethod, order.Subtotal, order.DeliveryFee,
		order.CouponID, couponCode, order.CouponDiscount, order.Total,
		order.PromoTitle, order.PromoFreeDelivery, order.PromoMinSubtotal,
	).Scan(&order.ID, &order.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	for i := range order.Items {
		item := &order.Items[i]
		if err := tx.QueryRowContext(ctx, `
			INSERT INTO delivery_order_items (order_id, menu_item_id, name, qty, unit_price)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`, order.ID, item.MenuItemID, item.Name, item.Qty, item.UnitPrice).Scan(&item.ID); err != nil {
			return fmt.Errorf("failed to insert order item: %w", err)
		}
	}

	if order.CouponID != nil {
		result, err := tx.ExecContext(ctx, `
			UPDATE coupons SET used_count = used_count + 1
			WHERE id = $1 AND (max_uses IS NULL OR used_count < max_uses)
		`, *order.CouponID)
		if err != nil {
			return fmt.Errorf("failed to redeem coupon: %w", err)
		}
		if affected, _ := result.RowsAffected(); affected == 0 {
			return fmt.Errorf("%w: %s has no uses left", service.ErrCoupon, order.CouponCode)
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) SaveQRCode(ctx context.Context, orderID int, qr []byte) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE delivery_orders SET qr_code = $1 WHERE id = $2`, qr, orderID)
	return err
}

func (r *PostgresRepository) GetOrder(ctx context.Context, orderID int) (*domain.Order, error) {
	return r.getOrder(ctx, `WHERE id = $1`, orderID)
}

func (r *PostgresRepository) GetOrderByToken(ctx context.Context, token string) (*domain.Order, error) {
	return r.getOrder(ctx, `WHERE public_token = $1`, token)
}

func (r *PostgresRepository) getOrder(ctx context.Context, where string, arg interface{}) (*domain.Order, error) {
	order, err := scanOrder(r.DB.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM delivery_orders `+where, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, menu_item_id, name, qty, unit_price
		FROM delivery_order_items
		WHERE order_id = $1
		ORDER BY id
	`, order.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	order.Items = []domain.OrderItem{}
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.MenuItemID, &item.Name, &item.Qty, &item.UnitPrice); err != nil {
			return nil, err
		}
		item.LineTotal = item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Qty)))
		order.Items = append(order.Items, item)
	}
	return order, rows.Err()
}

func (r *PostgresRepository) ListOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	var (
		where []string
		args  []interface{}
	)
	if filter.Status != "" {
		args = append(args, filter.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		args = append(args, "%"+q+"%")
		n := len(args)
		where = append(where, fmt.Sprintf("(customer_name ILIKE $%d OR phone ILIKE $%d OR address_label ILIKE $%d)", n, n, n))
	}

	query := `SELECT ` + orderColumns + ` FROM delivery_orders`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	args = append(args, filter.Limit)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args))

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}

func (r *PostgresRepository) UpdateOrderStatus(ctx context.Context, orderID int, from, to string) error {
	result, err := r.DB.ExecContext(ctx, `UPDATE delivery_orders SET status = $1 WHERE id = $2 AND status = $3`, to, orderID, from)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrStatusConflict
	}
	return nil
}

func (r *PostgresRepository) GetQRCode(ctx context.Context, orderID int) ([]byte, error) {
	var qr []byte
	err := r.DB.QueryRowContext(ctx, `SELECT qr_code FROM delivery_orders WHERE id = $1`, orderID).Scan(&qr)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return qr, err
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS coupons (
			id SERIAL PRIMARY KEY,
			code VARCHAR(40) NOT NULL UNIQUE,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			discount_type VARCHAR(20) NOT NULL,
			discount_value NUMERIC(8, 2) NOT NULL DEFAULT 0,
			min_subtotal NUMERIC(8, 2) NOT NULL DEFAULT 0,
			start_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			end_at TIMESTAMPTZ,
			max_uses INTEGER,
			used_count INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS promotions (
			id SERIAL PRIMARY KEY,
			title VARCHAR(120) NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			start_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			end_at TIMESTAMPTZ,
			min_subtotal NUMERIC(8, 2) NOT NULL DEFAULT 0,
			free_delivery BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS delivery_orders (
			id SERIAL PRIMARY KEY,
			public_token VARCHAR(36) NOT NULL UNIQUE,
			status VARCHAR(20) NOT NULL DEFAULT 'pending',
			customer_name VARCHAR(120) NOT NULL,
			phone VARCHAR(40) NOT NULL,
			note TEXT,
			address_label VARCHAR(255),
			address_extra VARCHAR(255),
			lat DOUBLE PRECISION NOT NULL,
			lng DOUBLE PRECISION NOT NULL,
			distance_km DOUBLE PRECISION NOT NULL DEFAULT 0,
			payment_method VARCHAR(10) NOT NULL DEFAULT 'cash',
			subtotal NUMERIC(10, 2) NOT NULL,
			delivery_fee NUMERIC(10, 2) NOT NULL,
			coupon_id INTEGER REFERENCES coupons(id) ON DELETE SET NULL,
			coupon_code VARCHAR(40),
			coupon_discount NUMERIC(10, 2) NOT NULL DEFAULT 0,
			total NUMERIC(10, 2) NOT NULL,
			promo_title VARCHAR(120),
			promo_free_delivery BOOLEAN NOT NULL DEFAULT FALSE,
			promo_min_subtotal NUMERIC(8, 2) NOT NULL DEFAULT 0,
			qr_code BYTEA,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS delivery_order_items (
			id SERIAL PRIMARY KEY,
			order_id INTEGER NOT NULL REFERENCES delivery_orders(id) ON DELETE CASCADE,
			menu_item_id INTEGER NOT NULL,
			name VARCHAR(120) NOT NULL,
			qty INTEGER NOT NULL CHECK (qty > 0),
			unit_price NUMERIC(8, 2) NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}

var _ service.OrderRepository = (*PostgresRepository)(nil)
