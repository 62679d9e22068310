package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"ravintola-sinet/delivery-svc/internal/domain"
)

var (
	ErrInvalidCoupon    = errors.New("invalid coupon")
	ErrCouponExists     = errors.New("coupon code already exists")
	ErrInvalidPromotion = errors.New("invalid promotion")
)

type CouponService struct {
	repository CouponRepository
	now        func() time.Time
}

func NewCouponService(repository CouponRepository, now func() time.Time) *CouponService {
	if now == nil {
		now = time.Now
	}
	return &CouponService{repository: repository, now: now}
}

func (s *CouponService) Create(ctx context.Context, coupon *domain.Coupon) error {
	if err := s.prepare(coupon); err != nil {
		return err
	}
	return s.repository.CreateCoupon(ctx, coupon)
}

func (s *CouponService) List(ctx context.Context, query string) ([]domain.Coupon, error) {
	return s.repository.ListCoupons(ctx, strings.TrimSpace(query))
}

func (s *CouponService) Get(ctx context.Context, id int) (*domain.Coupon, error) {
	return s.repository.GetCoupon(ctx, id)
}

func (s *CouponService) Update(ctx context.Context, coupon *domain.Coupon) error {
	if err := s.prepare(coupon); err != nil {
		return err
	}
	return s.repository.UpdateCoupon(ctx, coupon)
}

func (s *CouponService) Delete(ctx context.Context, id int) error {
	affected, err := s.repository.DeleteCoupon(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *CouponService) prepare(coupon *domain.Coupon) error {
	if coupon == nil {
		return ErrInvalidCoupon
	}
	raw := strings.TrimSpace(coupon.Code)
	if strings.ContainsAny(raw, " \t\n") {
		return fmt.Errorf("%w: code cannot contain spaces", ErrInvalidCoupon)
	}
	coupon.Code = strings.ToUpper(raw)
	if coupon.Code == "" {
		return fmt.Errorf("%w: code is required", ErrInvalidCoupon)
	}
	if !coupon.DiscountType.Valid() {
		return fmt.Errorf("%w: unknown discount type %q", ErrInvalidCoupon, coupon.DiscountType)
	}
	if coupon.DiscountValue.IsNegative() {
		return fmt.Errorf("%w: discount value cannot be negative", ErrInvalidCoupon)
	}
	if coupon.DiscountType == domain.DiscountPercent && coupon.DiscountValue.GreaterThan(hundred) {
		return fmt.Errorf("%w: percent discount cannot exceed 100", ErrInvalidCoupon)
	}
	if coupon.DiscountType == domain.DiscountFreeDelivery {
		coupon.DiscountValue = decimal.Zero
	}
	if coupon.MinSubtotal.IsNegative() {
		return fmt.Errorf("%w: min subtotal cannot be negative", ErrInvalidCoupon)
	}
	if coupon.MaxUses != nil && *coupon.MaxUses < 1 {
		return fmt.Errorf("%w: max uses must be at least 1", ErrInvalidCoupon)
	}
	if coupon.StartAt.IsZero() {
		coupon.StartAt = s.now()
	}
	if coupon.EndAt != nil && !coupon.EndAt.After(coupon.StartAt) {
		return fmt.Errorf("%w: end must be after start", ErrInvalidCoupon)
	}
	return nil
}

type PromotionService struct {
	repository PromotionRepository
	now        func() time.Time
}

func NewPromotionService(repository PromotionRepository, now func() time.Time) *PromotionService {
	if now == nil {
		now = time.Now
	}
	return &PromotionService{repository: repository, now: now}
}

func (s *PromotionService) Create(ctx context.Context, promo *domain.Promotion) error {
	if err := s.prepare(promo); err != nil {
		return err
	}
	return s.repository.CreatePromotion(ctx, promo)
}

func (s *PromotionService) List(ctx context.Context) ([]domain.Promotion, error) {
	return s.repository.ListPromotions(ctx)
}

func (s *PromotionService) Update(ctx context.Context, promo *domain.Promotion) error {
	if err := s.prepare(promo); err != nil {
		return err
	}
	return s.repository.UpdatePromotion(ctx, promo)
}

func (s *PromotionService) Delete(ctx context.Context, id int) error {
	affected, err := s.repository.DeletePromotion(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *PromotionService) prepare(promo *domain.Promotion) error {
	if promo == nil {
		return ErrInvalidPromotion
	}
	promo.Title = strings.TrimSpace(promo.Title)
	if promo.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidPromotion)
	}
	if promo.MinSubtotal.IsNegative() {
		return fmt.Errorf("%w: min subtotal cannot be negative", ErrInvalidPromotion)
	}
	if promo.StartAt.IsZero() {
		promo.StartAt = s.now()
	}
	if promo.EndAt != nil && !promo.EndAt.After(promo.StartAt) {
		return fmt.Errorf("%w: end must be after start", ErrInvalidPromotion)
	}
	return nil
}
