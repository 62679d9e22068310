package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"ravintola-sinet/delivery-svc/internal/domain"
	"ravintola-sinet/delivery-svc/internal/service"
)

const (
	uniqueViolation = "23505"

	couponColumns    = `id, code, is_active, discount_type, discount_value, min_subtotal, start_at, end_at, max_uses, used_count, created_at`
	promotionColumns = `id, title, is_active, start_at, end_at, min_subtotal, free_delivery, created_at`
)

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func scanCoupon(row rowScanner) (*domain.Coupon, error) {
	var (
		coupon  domain.Coupon
		endAt   sql.NullTime
		maxUses sql.NullInt64
	)
	err := row.Scan(&coupon.ID, &coupon.Code, &coupon.IsActive, &coupon.DiscountType, &coupon.DiscountValue,
		&coupon.MinSubtotal, &coupon.StartAt, &endAt, &maxUses, &coupon.UsedCount, &coupon.CreatedAt)
	if err != nil {
		return nil, err
	}
	if endAt.Valid {
		t := endAt.Time
		coupon.EndAt = &t
	}
	if maxUses.Valid {
		n := int(maxUses.Int64)
		coupon.MaxUses = &n
	}
	return &coupon, nil
}

func (r *PostgresRepository) FindCouponByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	coupon, err := scanCoupon(r.DB.QueryRowContext(ctx,
		`SELECT `+couponColumns+` FROM coupons WHERE UPPER(code) = UPPER($1)`, code))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return coupon, err
}

func (r *PostgresRepository) CreateCoupon(ctx context.Context, coupon *domain.Coupon) error {
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO coupons (code, is_active, discount_type, discount_value, min_subtotal, start_at, end_at, max_uses)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, used_count, created_at
	`, coupon.Code, coupon.IsActive, coupon.DiscountType, coupon.DiscountValue, coupon.MinSubtotal,
		coupon.StartAt, coupon.EndAt, coupon.MaxUses,
	).Scan(&coupon.ID, &coupon.UsedCount, &coupon.CreatedAt)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %s", service.ErrCouponExists, coupon.Code)
	}
	return err
}

func (r *PostgresRepository) ListCoupons(ctx context.Context, query string) ([]domain.Coupon, error) {
	stmt := `SELECT ` + couponColumns + ` FROM coupons`
	var args []interface{}
	if query != "" {
		stmt += ` WHERE code ILIKE $1`
		args = append(args, "%"+query+"%")
	}
	stmt += ` ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	coupons := []domain.Coupon{}
	for rows.Next() {
		coupon, err := scanCoupon(rows)
		if err != nil {
			return nil, err
		}
		coupons = append(coupons, *coupon)
	}
	return coupons, rows.Err()
}

func (r *PostgresRepository) GetCoupon(ctx context.Context, id int) (*domain.Coupon, error) {
	coupon, err := scanCoupon(r.DB.QueryRowContext(ctx, `SELECT `+couponColumns+` FROM coupons WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return coupon, err
}

func (r *PostgresRepository) UpdateCoupon(ctx context.Context, coupon *domain.Coupon) error {
	err := r.DB.QueryRowContext(ctx, `
		UPDATE coupons
		SET code = $1, is_active = $2, discount_type = $3, discount_value = $4, min_subtotal = $5,
		    start_at = $6, end_at = $7, max_uses = $8
		WHERE id = $9
		RETURNING used_count, created_at
	`, coupon.Code, coupon.IsActive, coupon.DiscountType, coupon.DiscountValue, coupon.MinSubtotal,
		coupon.StartAt, coupon.EndAt, coupon.MaxUses, coupon.ID,
	).Scan(&coupon.UsedCount, &coupon.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return domain.ErrNotFound
	case isUniqueViolation(err):
		return fmt.Errorf("%w: %s", service.ErrCouponExists, coupon.Code)
	}
	return err
}

func (r *PostgresRepository) DeleteCoupon(ctx context.Context, id int) (int64, error) {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM coupons WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func scanPromotion(row rowScanner) (*domain.Promotion, error) {
	var (
		promo domain.Promotion
		endAt sql.NullTime
	)
	if err := row.Scan(&promo.ID, &promo.Title, &promo.IsActive, &promo.StartAt, &endAt,
		&promo.MinSubtotal, &promo.FreeDelivery, &promo.CreatedAt); err != nil {
		return nil, err
	}
	if endAt.Valid {
		t := endAt.Time
		promo.EndAt = &t
	}
	return &promo, nil
}

// CurrentPromotion returns the newest running promotion, or nil when none runs.
func (r *PostgresRepository) CurrentPromotion(ctx context.Context, now time.Time) (*domain.Promotion, error) {
	promo, err := scanPromotion(r.DB.QueryRowContext(ctx, `
		SELECT `+promotionColumns+`
		FROM promotions
		WHERE is_active AND start_at <= $1 AND (end_at IS NULL OR end_at >= $1)
		ORDER BY start_at DESC, id DESC
		LIMIT 1
	`, now))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return promo, err
}

func (r *PostgresRepository) CreatePromotion(ctx context.Context, promo *domain.Promotion) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO promotions (title, is_active, start_at, end_at, min_subtotal, free_delivery)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, promo.Title, promo.IsActive, promo.StartAt, promo.EndAt, promo.MinSubtotal, promo.FreeDelivery,
	).Scan(&promo.ID, &promo.CreatedAt)
}

func (r *PostgresRepository) ListPromotions(ctx context.Context) ([]domain.Promotion, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+promotionColumns+` FROM promotions ORDER BY start_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	promos := []domain.Promotion{}
	for rows.Next() {
		promo, err := scanPromotion(rows)
		if err != nil {
			return nil, err
		}
		promos = append(promos, *promo)
	}
	return promos, rows.Err()
}

func (r *PostgresRepository) UpdatePromotion(ctx context.Context, promo *domain.Promotion) error {
	err := r.DB.QueryRowContext(ctx, `
		UPDATE promotions
		SET title = $1, is_active = $2, start_at = $3, end_at = $4, min_subtotal = $5, free_delivery = $6
		WHERE id = $7
		RETURNING created_at
	`, promo.Title, promo.IsActive, promo.StartAt, promo.EndAt, promo.MinSubtotal, promo.FreeDelivery, promo.ID,
	).Scan(&promo.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

func (r *PostgresRepository) DeletePromotion(ctx context.Context, id int) (int64, error) {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM promotions WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

var (
	_ service.CouponRepository    = (*PostgresRepository)(nil)
	_ service.PromotionRepository = (*PostgresRepository)(nil)
)
