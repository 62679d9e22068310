package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"ravintola-sinet/delivery-svc/internal/domain"
)

var (
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrInvalidTransition = errors.New("order status change not allowed")
)

const defaultOrderLimit = 300

var orderTransitions = map[string][]string{
	domain.OrderPending:        {domain.OrderAccepted, domain.OrderCancelled},
	domain.OrderAccepted:       {domain.OrderPreparing, domain.OrderCancelled},
	domain.OrderPreparing:      {domain.OrderOutForDelivery, domain.OrderCancelled},
	domain.OrderOutForDelivery: {domain.OrderDelivered, domain.OrderCancelled},
}

func ValidOrderStatus(status string) bool {
	switch status {
	case domain.OrderPending, domain.OrderAccepted, domain.OrderPreparing,
		domain.OrderOutForDelivery, domain.OrderDelivered, domain.OrderCancelled:
		return true
	}
	return false
}

func CanTransitionOrder(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type OrderService struct {
	repository OrderRepository
	carts      CartStore
	pricing    *CartService
	publisher  OrderPublisher
	qr         QRGenerator
}

func NewOrderService(repository OrderRepository, carts CartStore, pricing *CartService, publisher OrderPublisher, qr QRGenerator) *OrderService {
	return &OrderService{
		repository: repository,
		carts:      carts,
		pricing:    pricing,
		publisher:  publisher,
		qr:         qr,
	}
}

func (s *OrderService) PlaceOrder(ctx context.Context, sessionID string) (*domain.Order, error) {
	cart, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if cart.Location == nil {
		return nil, ErrLocationRequired
	}

	priced, err := s.pricing.price(ctx, cart)
	if err != nil {
		return nil, err
	}
	if len(priced.lines) == 0 {
		return nil, ErrEmptyCart
	}
	if cart.Customer == nil || cart.Customer.Name == "" || cart.Customer.Phone == "" {
		return nil, ErrCustomerDetails
	}
	if !priced.estimate.InRange {
		return nil, fmt.Errorf("%w: %.2f km (max %.0f km)", ErrOutOfRange, priced.estimate.DistanceKm, priced.estimate.MaxRadiusKm)
	}

	order := &domain.Order{
		PublicToken:    uuid.NewString(),
		Status:         domain.OrderPending,
		CustomerName:   cart.Customer.Name,
		Phone:          cart.Customer.Phone,
		Note:           cart.Customer.Note,
		AddressLabel:   cart.Location.Label,
		AddressExtra:   cart.Customer.AddressExtra,
		Lat:            cart.Location.Lat,
		Lng:            cart.Location.Lng,
		DistanceKm:     priced.estimate.DistanceKm,
		PaymentMethod:  cart.Customer.PaymentMethod,
		Subtotal:       priced.breakdown.Subtotal,
		DeliveryFee:    priced.breakdown.DeliveryFee,
		CouponDiscount: priced.breakdown.Discount,
		Total:          priced.breakdown.Total,
		Items:          make([]domain.OrderItem, 0, len(priced.lines)),
	}
	if order.PaymentMethod == "" {
		order.PaymentMethod = domain.PaymentCash
	}
	if priced.coupon != nil && priced.couponApplied {
		id := priced.coupon.ID
		order.CouponID = &id
		order.CouponCode = priced.coupon.Code
	}
	if priced.promo != nil {
		order.PromoTitle = priced.promo.Title
		order.PromoFreeDelivery = priced.promo.FreeDelivery
		order.PromoMinSubtotal = priced.promo.MinSubtotal
	}
	for _, line := range priced.lines {
		order.Items = append(order.Items, domain.OrderItem{
			MenuItemID: line.ItemID,
			Name:       line.Name,
			Qty:        line.Qty,
			UnitPrice:  line.UnitPrice,
			LineTotal:  line.LineTotal,
		})
	}

	if err := s.repository.CreateOrder(ctx, order); err != nil {
		return nil, err
	}

	if s.qr != nil {
		png, err := s.qr.Generate(order.PublicToken)
		if err != nil {
			log.Printf("[delivery-svc] failed to generate QR for order %d: %v", order.ID, err)
		} else if err := s.repository.SaveQRCode(ctx, order.ID, png); err != nil {
			log.Printf("[delivery-svc] failed to save QR for order %d: %v", order.ID, err)
		} else {
			order.QRCode = qrPath(order.PublicToken)
		}
	}

	cart.Clear()
	cart.UpdatedAt = time.Now()
	if err := s.carts.Save(ctx, cart); err != nil {
		log.Printf("[delivery-svc] failed to clear cart %s: %v", sessionID, err)
	}

	s.publish(ctx, "delivery_order_placed", order)
	return order, nil
}

func qrPath(token string) string {
	return "/api/delivery/orders/" + token + "/qr"
}

func (s *OrderService) Get(ctx context.Context, orderID int) (*domain.Order, error) {
	order, err := s.repository.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	order.QRCode = qrPath(order.PublicToken)
	return order, nil
}

// GetByToken is the customer's lookup; the token is only handed out at checkout.
func (s *OrderService) GetByToken(ctx context.Context, token string) (*domain.Order, error) {
	if _, err := uuid.Parse(token); err != nil {
		return nil, domain.ErrNotFound
	}
	order, err := s.repository.GetOrderByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	order.QRCode = qrPath(order.PublicToken)
	return order, nil
}

func (s *OrderService) List(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	filter.Status = strings.TrimSpace(filter.Status)
	if filter.Status != "" && !ValidOrderStatus(filter.Status) {
		return nil, ErrInvalidStatus
	}
	if filter.Limit <= 0 || filter.Limit > defaultOrderLimit {
		filter.Limit = defaultOrderLimit
	}
	return s.repository.ListOrders(ctx, filter)
}

func (s *OrderService) UpdateStatus(ctx context.Context, orderID int, status string) (*domain.Order, error) {
	status = strings.TrimSpace(status)
	if !ValidOrderStatus(status) {
		return nil, ErrInvalidStatus
	}

	order, err := s.repository.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status == status {
		return order, nil
	}
	if !CanTransitionOrder(order.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, status)
	}
	if err := s.repository.UpdateOrderStatus(ctx, orderID, order.Status, status); err != nil {
		return nil, err
	}
	order.Status = status

	s.publish(ctx, "delivery_order_status_changed", order)
	return order, nil
}

func (s *OrderService) GetQRCode(ctx context.Context, token string) ([]byte, error) {
	order, err := s.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	png, err := s.repository.GetQRCode(ctx, order.ID)
	if err == nil && len(png) > 0 {
		return png, nil
	}
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if s.qr == nil {
		return nil, domain.ErrNotFound
	}
	return s.qr.Generate(order.PublicToken)
}

func (s *OrderService) QRLink(token string) string {
	if s.qr == nil {
		return ""
	}
	return s.qr.Link(token)
}

func (s *OrderService) publish(ctx context.Context, eventType string, order *domain.Order) {
	if s.publisher == nil {
		return
	}
	event := domain.OrderEvent{
		Type:          eventType,
		OrderID:       order.ID,
		CustomerName:  order.CustomerName,
		Phone:         order.Phone,
		AddressLabel:  order.AddressLabel,
		PaymentMethod: order.PaymentMethod,
		Total:         order.Total.Round(2).InexactFloat64(),
		Items:         make([]domain.EventItem, 0, len(order.Items)),
		Status:        order.Status,
		Timestamp:     time.Now(),
	}
	for _, item := range order.Items {
		event.ItemCount += item.Qty
		event.Items = append(event.Items, domain.EventItem{Name: item.Name, Qty: item.Qty})
	}
	if err := s.publisher.PublishOrder(ctx, event); err != nil {
		log.Printf("[delivery-svc] failed to publish %s for order %d: %v", eventType, order.ID, err)
	}
}
