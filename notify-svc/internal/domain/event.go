package domain

import "time"

const (
	EventReservationCreated       = "reservation_created"
	EventReservationStatusChanged = "reservation_status_changed"
	EventOrderPlaced              = "delivery_order_placed"
	EventOrderStatusChanged       = "delivery_order_status_changed"

	StatusCancelled = "cancelled"
)

// Event is the union of reservation and delivery order messages.
type Event struct {
	Type          string      `json:"type"`
	ReservationID int         `json:"reservation_id"`
	OrderID       int         `json:"order_id"`
	StartAt       time.Time   `json:"start_datetime"`
	Name          string      `json:"name"`
	Phone         string      `json:"phone"`
	PartySize     int         `json:"party_size"`
	BabySeats     int         `json:"baby_seats"`
	PreorderTotal float64     `json:"preorder_total"`
	AddressLabel  string      `json:"address_label"`
	PaymentMethod string      `json:"payment_method"`
	Total         float64     `json:"total"`
	ItemCount     int         `json:"item_count"`
	Items         []EventItem `json:"items"`
	Status        string      `json:"status"`
	Timestamp     time.Time   `json:"timestamp"`
}

type EventItem struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}
