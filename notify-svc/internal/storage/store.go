package storage

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"ravintola-sinet/notify-svc/internal/domain"
	"ravintola-sinet/notify-svc/internal/service"
	"ravintola-sinet/stats"
)

// Store keeps the per-day counters the dashboard reads.
type Store struct {
	rdb *redis.Client
	loc *time.Location
	now func() time.Time
}

func NewStore(rdb *redis.Client, loc *time.Location) *Store {
	return &Store{
		rdb: rdb,
		loc: loc,
		now: time.Now,
	}
}

func (s *Store) RecordReservation(ctx context.Context, event domain.Event) error {
	date := s.date(event)
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		key := stats.DailyKey(date)
		pipe.HIncrBy(ctx, key, stats.FieldReservations, 1)
		pipe.HIncrBy(ctx, key, stats.FieldGuests, int64(event.PartySize))
		pipe.Expire(ctx, key, stats.TTL)
		s.countItems(ctx, pipe, date, event.Items)
		return nil
	})
	return err
}

func (s *Store) RecordOrder(ctx context.Context, event domain.Event) error {
	date := s.date(event)
	cents := decimal.NewFromFloat(event.Total).Shift(2).Round(0).IntPart()
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		key := stats.DailyKey(date)
		pipe.HIncrBy(ctx, key, stats.FieldOrders, 1)
		pipe.HIncrBy(ctx, key, stats.FieldRevenueCents, cents)
		pipe.Expire(ctx, key, stats.TTL)
		s.countItems(ctx, pipe, date, event.Items)
		return nil
	})
	return err
}

func (s *Store) countItems(ctx context.Context, pipe redis.Pipeliner, date string, items []domain.EventItem) {
	if len(items) == 0 {
		return
	}
	key := stats.ItemsKey(date)
	for _, item := range items {
		pipe.ZIncrBy(ctx, key, float64(item.Qty), item.Name)
	}
	pipe.Expire(ctx, key, stats.TTL)
}

// date buckets by the event timestamp, falling back to the local clock.
func (s *Store) date(event domain.Event) string {
	ts := event.Timestamp
	if ts.IsZero() {
		ts = s.now()
	}
	return stats.Date(ts, s.loc)
}

var _ service.StoreInterface = (*Store)(nil)
