package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"ravintola-sinet/preorder"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

var (
	ErrNotFound       = errors.New("reservation not found")
	ErrStatusConflict = errors.New("reservation status changed concurrently")
)

type Reservation struct {
	ID             int               `json:"id" db:"id"`
	PublicToken    string            `json:"public_token" db:"public_token"`
	StartAt        time.Time         `json:"start_datetime" db:"start_datetime"`
	Name           string            `json:"name" db:"name"`
	Phone          string            `json:"phone" db:"phone"`
	Email          string            `json:"email" db:"email"`
	PartySize      int               `json:"party_size" db:"party_size"`
	BabySeats      int               `json:"baby_seats" db:"baby_seats"`
	PreferredTable *int              `json:"preferred_table,omitempty" db:"preferred_table"`
	TablesNeeded   int               `json:"tables_needed" db:"tables_needed"`
	Notes          string            `json:"notes" db:"notes"`
	Status         string            `json:"status" db:"status"`
	CreatedAt      time.Time         `json:"created_at" db:"created_at"`
	Items          []ReservationItem `json:"items" db:"-"`
	PreorderTotal  decimal.Decimal   `json:"preorder_total" db:"-"`
}

type ReservationItem struct {
	ID            int             `json:"id" db:"id"`
	ReservationID int             `json:"reservation_id" db:"reservation_id"`
	MenuItemID    int             `json:"menu_item_id" db:"menu_item_id"`
	Name          string          `json:"name" db:"name"`
	Qty           int             `json:"qty" db:"qty"`
	UnitPrice     decimal.Decimal `json:"unit_price" db:"unit_price"`
	LineTotal     decimal.Decimal `json:"line_total" db:"-"`
}

// ReservationRequest is what a guest submits from the booking form.
type ReservationRequest struct {
	Date           string             `json:"date"`
	Time           string             `json:"time"`
	Name           string             `json:"name"`
	Phone          string             `json:"phone"`
	Email          string             `json:"email"`
	PartySize      int                `json:"party_size"`
	BabySeats      int                `json:"baby_seats"`
	PreferredTable *int               `json:"preferred_table"`
	Notes          string             `json:"notes"`
	Preorder       []preorder.Request `json:"preorder"`
	PreorderIDs    []int              `json:"preorder_ids"`
	PreorderQty    []int              `json:"preorder_qty"`
}

// PreorderRequests merges the structured pre-order list with the parallel
// id/qty lists the booking form posts.
func (r ReservationRequest) PreorderRequests() []preorder.Request {
	reqs := append([]preorder.Request{}, r.Preorder...)
	return append(reqs, preorder.Pairs(r.PreorderIDs, r.PreorderQty)...)
}

type ReservationFilter struct {
	Status string
	Query  string
	Limit  int
}

// SlotUsage is the aggregate taken by non-cancelled reservations in one slot.
type SlotUsage struct {
	Tables    int `json:"tables" db:"tables"`
	Chairs    int `json:"chairs" db:"chairs"`
	BabySeats int `json:"baby_seats" db:"baby_seats"`
}

type SlotAvailability struct {
	StartAt       time.Time `json:"start_datetime"`
	Time          string    `json:"time"`
	TablesLeft    int       `json:"tables_left"`
	ChairsLeft    int       `json:"chairs_left"`
	BabySeatsLeft int       `json:"baby_seats_left"`
	Full          bool      `json:"full"`
}

type ReservationEvent struct {
	Type          string      `json:"type"`
	ReservationID int         `json:"reservation_id"`
	StartAt       time.Time   `json:"start_datetime"`
	Name          string      `json:"name"`
	Phone         string      `json:"phone"`
	PartySize     int         `json:"party_size"`
	BabySeats     int         `json:"baby_seats"`
	PreorderTotal float64     `json:"preorder_total"`
	ItemCount     int         `json:"item_count"`
	Items         []EventItem `json:"items"`
	Status        string      `json:"status"`
	Timestamp     time.Time   `json:"timestamp"`
}

type EventItem struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}
