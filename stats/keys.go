// Package stats holds the Redis layout of the daily counters shared by the
// notification consumer and the dashboard.
package stats

import "time"

const (
	TTL        = 7 * 24 * time.Hour
	DateLayout = "2006-01-02"

	FieldReservations = "reservations"
	FieldGuests       = "guests"
	FieldOrders       = "orders"
	FieldRevenueCents = "revenue_cents"
)

func Date(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(DateLayout)
}

func DailyKey(date string) string {
	return "stats:daily:" + date
}

func ItemsKey(date string) string {
	return "stats:items:" + date
}
