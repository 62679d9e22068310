package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"ravintola-sinet/preorder"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrStatusConflict = errors.New("order status changed concurrently")
)

type DiscountType string

const (
	DiscountPercent      DiscountType = "percent"
	DiscountFixed        DiscountType = "fixed"
	DiscountFreeDelivery DiscountType = "free_delivery"
)

func (t DiscountType) Valid() bool {
	switch t {
	case DiscountPercent, DiscountFixed, DiscountFreeDelivery:
		return true
	}
	return false
}

type Coupon struct {
	ID            int             `json:"id"`
	Code          string          `json:"code"`
	IsActive      bool            `json:"is_active"`
	DiscountType  DiscountType    `json:"discount_type"`
	DiscountValue decimal.Decimal `json:"discount_value"`
	MinSubtotal   decimal.Decimal `json:"min_subtotal"`
	StartAt       time.Time       `json:"start_at"`
	EndAt         *time.Time      `json:"end_at"`
	MaxUses       *int            `json:"max_uses"`
	UsedCount     int             `json:"used_count"`
	CreatedAt     time.Time       `json:"created_at"`
}

// IsCurrent reports whether the coupon can be redeemed at now.
func (c *Coupon) IsCurrent(now time.Time) bool {
	if !c.IsActive {
		return false
	}
	if !c.StartAt.IsZero() && now.Before(c.StartAt) {
		return false
	}
	if c.EndAt != nil && now.After(*c.EndAt) {
		return false
	}
	if c.MaxUses != nil && c.UsedCount >= *c.MaxUses {
		return false
	}
	return true
}

// Promotion is a free-delivery season shown on the delivery page.
type Promotion struct {
	ID           int             `json:"id"`
	Title        string          `json:"title"`
	IsActive     bool            `json:"is_active"`
	StartAt      time.Time       `json:"start_at"`
	EndAt        *time.Time      `json:"end_at"`
	MinSubtotal  decimal.Decimal `json:"min_subtotal"`
	FreeDelivery bool            `json:"free_delivery"`
	CreatedAt    time.Time       `json:"created_at"`
}

func (p *Promotion) IsCurrent(now time.Time) bool {
	if !p.IsActive {
		return false
	}
	if !p.StartAt.IsZero() && now.Before(p.StartAt) {
		return false
	}
	return p.EndAt == nil || !now.After(*p.EndAt)
}

func (p *Promotion) Qualifies(subtotal decimal.Decimal, now time.Time) bool {
	return p.FreeDelivery && p.IsCurrent(now) && subtotal.GreaterThanOrEqual(p.MinSubtotal)
}

const (
	PaymentCash = "cash"
	PaymentCard = "card"
)

type Location struct {
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
	Label string  `json:"address_label"`
}

// Place is one address suggestion; coordinates stay as the upstream strings.
type Place struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

type Customer struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Note          string `json:"note"`
	AddressExtra  string `json:"address_extra"`
	PaymentMethod string `json:"payment_method"`
}

type CartItem struct {
	ItemID int `json:"item_id"`
	Qty    int `json:"qty"`
}

// Cart is the server-held delivery cart of one browser session.
type Cart struct {
	SessionID  string     `json:"session_id"`
	Items      []CartItem `json:"items"`
	CouponCode string     `json:"coupon_code,omitempty"`
	Location   *Location  `json:"location,omitempty"`
	Customer   *Customer  `json:"customer,omitempty"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (c *Cart) Requests() []preorder.Request {
	reqs := make([]preorder.Request, 0, len(c.Items))
	for _, item := range c.Items {
		reqs = append(reqs, preorder.Request{ItemID: item.ItemID, Qty: item.Qty})
	}
	return reqs
}

func (c *Cart) Qty(itemID int) int {
	for _, item := range c.Items {
		if item.ItemID == itemID {
			return item.Qty
		}
	}
	return 0
}

func (c *Cart) Add(itemID, qty int) {
	for i := range c.Items {
		if c.Items[i].ItemID == itemID {
			c.Items[i].Qty += qty
			return
		}
	}
	c.Items = append(c.Items, CartItem{ItemID: itemID, Qty: qty})
}

// SetQty replaces an item's quantity; zero or less removes the line.
func (c *Cart) SetQty(itemID, qty int) {
	for i := range c.Items {
		if c.Items[i].ItemID != itemID {
			continue
		}
		if qty <= 0 {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
		} else {
			c.Items[i].Qty = qty
		}
		return
	}
	if qty > 0 {
		c.Items = append(c.Items, CartItem{ItemID: itemID, Qty: qty})
	}
}

// Clear drops the items and the coupon; location and customer details stay.
func (c *Cart) Clear() {
	c.Items = nil
	c.CouponCode = ""
}

type PriceBreakdown struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	Discount    decimal.Decimal `json:"coupon_discount"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
	Total       decimal.Decimal `json:"total"`
}

type Estimate struct {
	DistanceKm  float64         `json:"distance_km"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
	InRange     bool            `json:"in_range"`
	MaxRadiusKm float64         `json:"max_radius_km"`
}

type CouponView struct {
	Active        bool            `json:"active"`
	Code          string          `json:"code"`
	DiscountType  DiscountType    `json:"discount_type"`
	DiscountValue decimal.Decimal `json:"discount_value"`
	MinSubtotal   decimal.Decimal `json:"min_subtotal"`
}

type PromoView struct {
	Active       bool            `json:"active"`
	Title        string          `json:"title"`
	FreeDelivery bool            `json:"free_delivery"`
	MinSubtotal  decimal.Decimal `json:"min_subtotal"`
}

type LocationView struct {
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	Label      string  `json:"address_label"`
	DistanceKm float64 `json:"distance_km"`
	InRange    bool    `json:"in_range"`
}

type CartSnapshot struct {
	Lines           []preorder.Line `json:"lines"`
	Count           int             `json:"count"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	DeliveryFee     decimal.Decimal `json:"delivery_fee"`
	BaseDeliveryFee decimal.Decimal `json:"base_delivery_fee"`
	Total           decimal.Decimal `json:"total"`
	Coupon          *CouponView     `json:"coupon"`
	CouponDiscount  decimal.Decimal `json:"coupon_discount"`
	Promo           *PromoView      `json:"promo"`
	Location        *LocationView   `json:"location"`
	Customer        *Customer       `json:"customer"`
}

type DeliveryQuote struct {
	DistanceKm      float64         `json:"distance_km"`
	DeliveryFee     decimal.Decimal `json:"delivery_fee"`
	BaseDeliveryFee decimal.Decimal `json:"base_delivery_fee"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	CouponDiscount  decimal.Decimal `json:"coupon_discount"`
	EstimatedTotal  decimal.Decimal `json:"estimated_total"`
	InRange         bool            `json:"in_range"`
	MaxRadiusKm     float64         `json:"max_radius_km"`
	Promo           *PromoView      `json:"promo"`
}

const (
	OrderPending        = "pending"
	OrderAccepted       = "accepted"
	OrderPreparing      = "preparing"
	OrderOutForDelivery = "out_for_delivery"
	OrderDelivered      = "delivered"
	OrderCancelled      = "cancelled"
)

type Order struct {
	ID                int             `json:"id"`
	PublicToken       string          `json:"public_token"`
	Status            string          `json:"status"`
	CustomerName      string          `json:"customer_name"`
	Phone             string          `json:"phone"`
	Note              string          `json:"note"`
	AddressLabel      string          `json:"address_label"`
	AddressExtra      string          `json:"address_extra"`
	Lat               float64         `json:"lat"`
	Lng               float64         `json:"lng"`
	DistanceKm        float64         `json:"distance_km"`
	PaymentMethod     string          `json:"payment_method"`
	Subtotal          decimal.Decimal `json:"subtotal"`
	DeliveryFee       decimal.Decimal `json:"delivery_fee"`
	CouponID          *int            `json:"-"`
	CouponCode        string          `json:"coupon_code"`
	CouponDiscount    decimal.Decimal `json:"coupon_discount"`
	Total             decimal.Decimal `json:"total"`
	PromoTitle        string          `json:"promo_title"`
	PromoFreeDelivery bool            `json:"promo_free_delivery"`
	PromoMinSubtotal  decimal.Decimal `json:"promo_min_subtotal"`
	CreatedAt         time.Time       `json:"created_at"`
	Items             []OrderItem     `json:"items"`
	QRCode            string          `json:"qr_code,omitempty"`
}

type OrderItem struct {
	ID         int             `json:"id"`
	MenuItemID int             `json:"menu_item_id"`
	Name       string          `json:"name"`
	Qty        int             `json:"qty"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	LineTotal  decimal.Decimal `json:"line_total"`
}

type OrderFilter struct {
	Status string
	Query  string
	Limit  int
}

type EventItem struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

type OrderEvent struct {
	Type          string      `json:"type"`
	OrderID       int         `json:"order_id"`
	CustomerName  string      `json:"name"`
	Phone         string      `json:"phone"`
	AddressLabel  string      `json:"address_label"`
	PaymentMethod string      `json:"payment_method"`
	Total         float64     `json:"total"`
	ItemCount     int         `json:"item_count"`
	Items         []EventItem `json:"items"`
	Status        string      `json:"status"`
	Timestamp     time.Time   `json:"timestamp"`
}
