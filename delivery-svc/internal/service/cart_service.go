package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"ravintola-sinet/delivery-svc/internal/domain"
	"ravintola-sinet/preorder"
)

var (
	ErrCustomerDetails  = errors.New("please enter your name and phone")
	ErrInvalidPayment   = errors.New("payment method must be cash or card")
	ErrLocationRequired = errors.New("please set your delivery location first")
	ErrEmptyCart        = errors.New("your cart is empty")
	ErrQuantity         = errors.New("quantity exceeds the per-item limit")
)

const (
	defaultLocationLabel = "Pinned location"
	MaxLineQty           = 99
)

type CartService struct {
	carts      CartStore
	catalog    preorder.Catalog
	coupons    CouponRepository
	promotions PromotionRepository
	estimator  Estimator
	now        func() time.Time
}

func NewCartService(carts CartStore, catalog preorder.Catalog, coupons CouponRepository, promotions PromotionRepository, estimator Estimator, now func() time.Time) *CartService {
	if now == nil {
		now = time.Now
	}
	return &CartService{
		carts:      carts,
		catalog:    catalog,
		coupons:    coupons,
		promotions: promotions,
		estimator:  estimator,
		now:        now,
	}
}

// pricedCart is a cart with everything resolved that pricing depended on.
type pricedCart struct {
	snapshot      *domain.CartSnapshot
	lines         []preorder.Line
	coupon        *domain.Coupon
	couponApplied bool
	promo         *domain.Promotion
	estimate      *domain.Estimate
	breakdown     domain.PriceBreakdown
}

func (s *CartService) Summary(ctx context.Context, sessionID string) (*domain.CartSnapshot, error) {
	cart, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	priced, err := s.price(ctx, cart)
	if err != nil {
		return nil, err
	}
	return priced.snapshot, nil
}

func (s *CartService) AddItem(ctx context.Context, sessionID string, itemID, qty int) (*domain.CartSnapshot, error) {
	if qty <= 0 {
		qty = 1
	}
	if qty > MaxLineQty {
		return nil, fmt.Errorf("%w: at most %d", ErrQuantity, MaxLineQty)
	}
	if err := s.ensureAvailable(ctx, itemID); err != nil {
		return nil, err
	}
	return s.mutate(ctx, sessionID, func(cart *domain.Cart) error {
		if cart.Qty(itemID)+qty > MaxLineQty {
			return fmt.Errorf("%w: at most %d", ErrQuantity, MaxLineQty)
		}
		cart.Add(itemID, qty)
		return nil
	})
}

func (s *CartService) UpdateItem(ctx context.Context, sessionID string, itemID, qty int) (*domain.CartSnapshot, error) {
	if qty > MaxLineQty {
		return nil, fmt.Errorf("%w: at most %d", ErrQuantity, MaxLineQty)
	}
	if qty > 0 {
		if err := s.ensureAvailable(ctx, itemID); err != nil {
			return nil, err
		}
	}
	return s.mutate(ctx, sessionID, func(cart *domain.Cart) error {
		cart.SetQty(itemID, qty)
		return nil
	})
}

func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.Join(strings.Fields(code), ""))
}

func (s *CartService) ApplyCoupon(ctx context.Context, sessionID, code string) (*domain.CartSnapshot, error) {
	code = NormalizeCouponCode(code)
	if code == "" {
		return nil, fmt.Errorf("%w: please enter a coupon code", ErrCoupon)
	}

	coupon, err := s.coupons.FindCouponByCode(ctx, code)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, ErrCoupon
	}
	if err != nil {
		return nil, err
	}
	if !coupon.IsCurrent(s.now()) {
		return nil, ErrCoupon
	}

	return s.mutate(ctx, sessionID, func(cart *domain.Cart) error {
		snapshot, err := preorder.Reprice(ctx, s.catalog, cart.Requests())
		if err != nil {
			return err
		}
		if snapshot.Total.LessThan(coupon.MinSubtotal) {
			return fmt.Errorf("%w: this coupon requires a minimum subtotal of €%s", ErrCoupon, coupon.MinSubtotal.StringFixed(2))
		}
		cart.CouponCode = coupon.Code
		return nil
	})
}

func (s *CartService) RemoveCoupon(ctx context.Context, sessionID string) (*domain.CartSnapshot, error) {
	return s.mutate(ctx, sessionID, func(cart *domain.Cart) error {
		cart.CouponCode = ""
		return nil
	})
}

func (s *CartService) Clear(ctx context.Context, sessionID string) (*domain.CartSnapshot, error) {
	return s.mutate(ctx, sessionID, func(cart *domain.Cart) error {
		cart.Clear()
		return nil
	})
}

// Quote prices delivery to a point for the current cart without storing it.
func (s *CartService) Quote(ctx context.Context, sessionID string, lat, lng float64) (*domain.DeliveryQuote, error) {
	cart, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	candidate := *cart
	candidate.Location = &domain.Location{Lat: lat, Lng: lng}
	priced, err := s.price(ctx, &candidate)
	if err != nil {
		return nil, err
	}
	return &domain.DeliveryQuote{
		DistanceKm:      priced.estimate.DistanceKm,
		DeliveryFee:     priced.breakdown.DeliveryFee,
		BaseDeliveryFee: priced.estimate.DeliveryFee,
		Subtotal:        priced.breakdown.Subtotal,
		CouponDiscount:  priced.breakdown.Discount,
		EstimatedTotal:  priced.breakdown.Total,
		InRange:         priced.estimate.InRange,
		MaxRadiusKm:     priced.estimate.MaxRadiusKm,
		Promo:           priced.snapshot.Promo,
	}, nil
}

func (s *CartService) SetLocation(ctx context.Context, sessionID string, location domain.Location) (*domain.CartSnapshot, error) {
	if !ValidCoordinates(location.Lat, location.Lng) {
		return nil, ErrInvalidCoordinates
	}
	location.Label = strings.TrimSpace(location.Label)
	if location.Label == "" {
		location.Label = defaultLocationLabel
	}
	return s.mutate(ctx, sessionID, func(cart *domain.Cart) error {
		cart.Location = &location
		return nil
	})
}

func (s *CartService) SetCustomer(ctx context.Context, sessionID string, customer domain.Customer) (*domain.CartSnapshot, error) {
	customer.Name = strings.TrimSpace(customer.Name)
	customer.Phone = strings.TrimSpace(customer.Phone)
	customer.Note = strings.TrimSpace(customer.Note)
	customer.AddressExtra = strings.TrimSpace(customer.AddressExtra)
	if customer.Name == "" || customer.Phone == "" {
		return nil, ErrCustomerDetails
	}
	switch customer.PaymentMethod {
	case "":
		customer.PaymentMethod = domain.PaymentCash
	case domain.PaymentCash, domain.PaymentCard:
	default:
		return nil, ErrInvalidPayment
	}
	return s.mutate(ctx, sessionID, func(cart *domain.Cart) error {
		cart.Customer = &customer
		return nil
	})
}

func (s *CartService) ensureAvailable(ctx context.Context, itemID int) error {
	items, err := s.catalog.ItemsByIDs(ctx, []int{itemID})
	if err != nil {
		return fmt.Errorf("failed to load menu item: %w", err)
	}
	if item, ok := items[itemID]; !ok || !item.Available() {
		return fmt.Errorf("%w: item %d", preorder.ErrItemUnavailable, itemID)
	}
	return nil
}

func (s *CartService) mutate(ctx context.Context, sessionID string, change func(*domain.Cart) error) (*domain.CartSnapshot, error) {
	cart, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := change(cart); err != nil {
		return nil, err
	}
	cart.UpdatedAt = s.now()
	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}
	priced, err := s.price(ctx, cart)
	if err != nil {
		return nil, err
	}
	return priced.snapshot, nil
}

func (s *CartService) price(ctx context.Context, cart *domain.Cart) (*pricedCart, error) {
	now := s.now()
	pre, err := preorder.Reprice(ctx, s.catalog, cart.Requests())
	if err != nil {
		return nil, err
	}

	var coupon *domain.Coupon
	if cart.CouponCode != "" {
		found, err := s.coupons.FindCouponByCode(ctx, cart.CouponCode)
		switch {
		case errors.Is(err, domain.ErrNotFound):
		case err != nil:
			return nil, err
		case found.IsCurrent(now):
			coupon = found
		}
	}

	promo, err := s.promotions.CurrentPromotion(ctx, now)
	if err != nil {
		return nil, err
	}

	fee := decimal.Zero
	var estimate *domain.Estimate
	if cart.Location != nil {
		est, err := s.estimator.Estimate(cart.Location.Lat, cart.Location.Lng)
		if err != nil {
			return nil, err
		}
		estimate = &est
		fee = est.DeliveryFee
	}

	breakdown, err := PriceCart(pre.Lines, fee, coupon, promo, now)
	if err != nil {
		return nil, err
	}

	priced := &pricedCart{
		lines:         pre.Lines,
		coupon:        coupon,
		couponApplied: CouponApplies(coupon, breakdown, now),
		promo:         promo,
		estimate:      estimate,
		breakdown:     breakdown,
	}
	priced.snapshot = &domain.CartSnapshot{
		Lines:           pre.Lines,
		Count:           pre.Count,
		Subtotal:        breakdown.Subtotal,
		DeliveryFee:     breakdown.DeliveryFee,
		BaseDeliveryFee: fee,
		Total:           breakdown.Total,
		CouponDiscount:  breakdown.Discount,
		Customer:        cart.Customer,
	}
	if coupon != nil {
		priced.snapshot.Coupon = &domain.CouponView{
			Active:        priced.couponApplied,
			Code:          coupon.Code,
			DiscountType:  coupon.DiscountType,
			DiscountValue: coupon.DiscountValue,
			MinSubtotal:   coupon.MinSubtotal,
		}
	}
	if promo != nil {
		priced.snapshot.Promo = &domain.PromoView{
			Active:       promo.Qualifies(breakdown.Subtotal, now),
			Title:        promo.Title,
			FreeDelivery: promo.FreeDelivery,
			MinSubtotal:  promo.MinSubtotal,
		}
	}
	if estimate != nil {
		priced.snapshot.Location = &domain.LocationView{
			Lat:        cart.Location.Lat,
			Lng:        cart.Location.Lng,
			Label:      cart.Location.Label,
			DistanceKm: estimate.DistanceKm,
			InRange:    estimate.InRange,
		}
	}
	return priced, nil
}
