package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

const (
	SourceRedis    = "redis"
	SourcePostgres = "postgres"
)

var ErrInvalidDate = errors.New("date must be YYYY-MM-DD")

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Counters are the totals for one local calendar day.
type Counters struct {
	Date         string          `json:"date"`
	Reservations int64           `json:"reservations"`
	Guests       int64           `json:"guests"`
	Orders       int64           `json:"orders"`
	Revenue      decimal.Decimal `json:"revenue"`
	Source       string          `json:"source"`
}

type ItemCount struct {
	Name string `json:"name"`
	Qty  int64  `json:"qty"`
}

type MenuStats struct {
	Items      int `json:"items"`
	Active     int `json:"active"`
	SoldOut    int `json:"sold_out"`
	Categories int `json:"categories"`
}

type ReservationStats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Upcoming int `json:"upcoming"`
}

type DeliveryStats struct {
	Pending   int `json:"pending"`
	Delivered int `json:"delivered"`
}

type Dashboard struct {
	Menu         MenuStats        `json:"menu"`
	Reservations ReservationStats `json:"reservations"`
	Delivery     DeliveryStats    `json:"delivery"`
	Today        Counters         `json:"today"`
	GeneratedAt  time.Time        `json:"generated_at"`
}
