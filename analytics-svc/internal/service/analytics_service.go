package service

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"ravintola-sinet/analytics-svc/internal/domain"
	"ravintola-sinet/stats"
)

const (
	DefaultTopLimit = 10
	MaxTopLimit     = 50
)

type AnalyticsService struct {
	db  *sql.DB
	rdb *redis.Client
	loc *time.Location
	now func() time.Time
}

func NewAnalyticsService(db *sql.DB, rdb *redis.Client, loc *time.Location, now func() time.Time) *AnalyticsService {
	if loc == nil {
		loc = time.Local
	}
	if now == nil {
		now = time.Now
	}
	return &AnalyticsService{
		db:  db,
		rdb: rdb,
		loc: loc,
		now: now,
	}
}

func (s *AnalyticsService) Dashboard(ctx context.Context) (*domain.Dashboard, error) {
	now := s.now()
	dashboard := &domain.Dashboard{GeneratedAt: now}

	if err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE status = 'active'),
			COUNT(*) FILTER (WHERE status = 'sold_out'),
			(SELECT COUNT(*) FROM categories)
		FROM menu_items`,
	).Scan(&dashboard.Menu.Items, &dashboard.Menu.Active, &dashboard.Menu.SoldOut, &dashboard.Menu.Categories); err != nil {
		return nil, fmt.Errorf("menu stats: %w", err)
	}

	if err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE status = 'pending'),
			COUNT(*) FILTER (WHERE start_datetime >= $1 AND status IN ('pending', 'confirmed'))
		FROM reservations`, now,
	).Scan(&dashboard.Reservations.Total, &dashboard.Reservations.Pending, &dashboard.Reservations.Upcoming); err != nil {
		return nil, fmt.Errorf("reservation stats: %w", err)
	}

	if err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FILTER (WHERE status = 'pending'),
			COUNT(*) FILTER (WHERE status = 'delivered')
		FROM delivery_orders`,
	).Scan(&dashboard.Delivery.Pending, &dashboard.Delivery.Delivered); err != nil {
		return nil, fmt.Errorf("delivery stats: %w", err)
	}

	today, err := s.Daily(ctx, stats.Date(now, s.loc))
	if err != nil {
		return nil, err
	}
	dashboard.Today = *today
	return dashboard, nil
}

// Daily prefers the counters kept by the notification consumer and falls
// back to counting rows when Redis has nothing for the day.
func (s *AnalyticsService) Daily(ctx context.Context, date string) (*domain.Counters, error) {
	if date == "" {
		date = stats.Date(s.now(), s.loc)
	}
	start, err := s.parseDate(date)
	if err != nil {
		return nil, err
	}

	values, err := s.rdb.HGetAll(ctx, stats.DailyKey(date)).Result()
	if err != nil {
		log.Printf("[analytics-svc] redis daily counters for %s: %v", date, err)
	}
	if err == nil && len(values) > 0 {
		counters := &domain.Counters{Date: date, Source: domain.SourceRedis}
		counters.Reservations = parseCount(values[stats.FieldReservations])
		counters.Guests = parseCount(values[stats.FieldGuests])
		counters.Orders = parseCount(values[stats.FieldOrders])
		counters.Revenue = decimal.New(parseCount(values[stats.FieldRevenueCents]), -2)
		return counters, nil
	}
	return s.dailyFromDB(ctx, date, start)
}

func (s *AnalyticsService) dailyFromDB(ctx context.Context, date string, start time.Time) (*domain.Counters, error) {
	end := start.AddDate(0, 0, 1)
	counters := &domain.Counters{Date: date, Source: domain.SourcePostgres}

	if err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(party_size), 0)
		FROM reservations
		WHERE created_at >= $1 AND created_at < $2`, start, end,
	).Scan(&counters.Reservations, &counters.Guests); err != nil {
		return nil, fmt.Errorf("daily reservations: %w", err)
	}

	if err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(total), 0)
		FROM delivery_orders
		WHERE created_at >= $1 AND created_at < $2`, start, end,
	).Scan(&counters.Orders, &counters.Revenue); err != nil {
		return nil, fmt.Errorf("daily orders: %w", err)
	}
	return counters, nil
}

func (s *AnalyticsService) TopItems(ctx context.Context, date string, limit int) ([]domain.ItemCount, error) {
	if date == "" {
		date = stats.Date(s.now(), s.loc)
	}
	start, err := s.parseDate(date)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultTopLimit
	}
	if limit > MaxTopLimit {
		limit = MaxTopLimit
	}

	result, err := s.rdb.ZRevRangeWithScores(ctx, stats.ItemsKey(date), 0, int64(limit-1)).Result()
	if err != nil || len(result) == 0 {
		return s.topItemsFromDB(ctx, start, limit)
	}

	items := make([]domain.ItemCount, 0, len(result))
	for _, member := range result {
		name, _ := member.Member.(string)
		items = append(items, domain.ItemCount{Name: name, Qty: int64(member.Score)})
	}
	return items, nil
}

func (s *AnalyticsService) topItemsFromDB(ctx context.Context, start time.Time, limit int) ([]domain.ItemCount, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, SUM(qty) AS qty FROM (
			SELECT oi.name, oi.qty
			FROM delivery_order_items oi
			JOIN delivery_orders o ON o.id = oi.order_id
			WHERE o.created_at >= $1 AND o.created_at < $2
			UNION ALL
			SELECT ri.name, ri.qty
			FROM reservation_items ri
			JOIN reservations r ON r.id = ri.reservation_id
			WHERE r.created_at >= $1 AND r.created_at < $2
		) sold
		GROUP BY name
		ORDER BY qty DESC, name
		LIMIT $3`, start, start.AddDate(0, 0, 1), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.ItemCount{}
	for rows.Next() {
		var item domain.ItemCount
		if err := rows.Scan(&item.Name, &item.Qty); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (s *AnalyticsService) parseDate(date string) (time.Time, error) {
	start, err := time.ParseInLocation(stats.DateLayout, date, s.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidDate, date)
	}
	return start, nil
}

func parseCount(v string) int64 {
	n, _ := strconv.ParseInt(v, 10, 64)
	return n
}
