package service

import (
	"context"
	"time"

	"ravintola-sinet/delivery-svc/internal/domain"
)

type CartServiceInterface interface {
	Summary(ctx context.Context, sessionID string) (*domain.CartSnapshot, error)
	AddItem(ctx context.Context, sessionID string, itemID, qty int) (*domain.CartSnapshot, error)
	UpdateItem(ctx context.Context, sessionID string, itemID, qty int) (*domain.CartSnapshot, error)
	ApplyCoupon(ctx context.Context, sessionID, code string) (*domain.CartSnapshot, error)
	RemoveCoupon(ctx context.Context, sessionID string) (*domain.CartSnapshot, error)
	Clear(ctx context.Context, sessionID string) (*domain.CartSnapshot, error)
	Quote(ctx context.Context, sessionID string, lat, lng float64) (*domain.DeliveryQuote, error)
	SetLocation(ctx context.Context, sessionID string, location domain.Location) (*domain.CartSnapshot, error)
	SetCustomer(ctx context.Context, sessionID string, customer domain.Customer) (*domain.CartSnapshot, error)
}

type OrderServiceInterface interface {
	PlaceOrder(ctx context.Context, sessionID string) (*domain.Order, error)
	Get(ctx context.Context, orderID int) (*domain.Order, error)
	GetByToken(ctx context.Context, token string) (*domain.Order, error)
	List(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, orderID int, status string) (*domain.Order, error)
	GetQRCode(ctx context.Context, token string) ([]byte, error)
	QRLink(token string) string
}

type CouponServiceInterface interface {
	Create(ctx context.Context, coupon *domain.Coupon) error
	List(ctx context.Context, query string) ([]domain.Coupon, error)
	Get(ctx context.Context, id int) (*domain.Coupon, error)
	Update(ctx context.Context, coupon *domain.Coupon) error
	Delete(ctx context.Context, id int) error
}

type PromotionServiceInterface interface {
	Create(ctx context.Context, promo *domain.Promotion) error
	List(ctx context.Context) ([]domain.Promotion, error)
	Update(ctx context.Context, promo *domain.Promotion) error
	Delete(ctx context.Context, id int) error
}

type CartStore interface {
	Load(ctx context.Context, sessionID string) (*domain.Cart, error)
	Save(ctx context.Context, cart *domain.Cart) error
	Delete(ctx context.Context, sessionID string) error
}

type CouponRepository interface {
	FindCouponByCode(ctx context.Context, code string) (*domain.Coupon, error)
	CreateCoupon(ctx context.Context, coupon *domain.Coupon) error
	ListCoupons(ctx context.Context, query string) ([]domain.Coupon, error)
	GetCoupon(ctx context.Context, id int) (*domain.Coupon, error)
	UpdateCoupon(ctx context.Context, coupon *domain.Coupon) error
	DeleteCoupon(ctx context.Context, id int) (int64, error)
}

type PromotionRepository interface {
	CurrentPromotion(ctx context.Context, now time.Time) (*domain.Promotion, error)
	CreatePromotion(ctx context.Context, promo *domain.Promotion) error
	ListPromotions(ctx context.Context) ([]domain.Promotion, error)
	UpdatePromotion(ctx context.Context, promo *domain.Promotion) error
	DeletePromotion(ctx context.Context, id int) (int64, error)
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) error
	SaveQRCode(ctx context.Context, orderID int, qr []byte) error
	GetOrder(ctx context.Context, orderID int) (*domain.Order, error)
	GetOrderByToken(ctx context.Context, token string) (*domain.Order, error)
	ListOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID int, from, to string) error
	GetQRCode(ctx context.Context, orderID int) ([]byte, error)
}

type OrderPublisher interface {
	PublishOrder(ctx context.Context, event domain.OrderEvent) error
}

var (
	_ CartServiceInterface      = (*CartService)(nil)
	_ OrderServiceInterface     = (*OrderService)(nil)
	_ CouponServiceInterface    = (*CouponService)(nil)
	_ PromotionServiceInterface = (*PromotionService)(nil)
	_ Geocoder                  = (*NominatimClient)(nil)
)
