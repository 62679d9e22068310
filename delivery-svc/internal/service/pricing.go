package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"ravintola-sinet/delivery-svc/internal/domain"
	"ravintola-sinet/preorder"
)

var ErrCoupon = errors.New("invalid or expired coupon")

var hundred = decimal.NewFromInt(100)

// PriceCart computes subtotal, coupon discount, delivery fee and total for a
// set of priced lines. An inactive or expired coupon is rejected; a coupon
// whose minimum subtotal is not met has no effect.
func PriceCart(lines []preorder.Line, deliveryFee decimal.Decimal, coupon *domain.Coupon, promo *domain.Promotion, now time.Time) (domain.PriceBreakdown, error) {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.LineTotal)
	}

	fee := deliveryFee
	if promo != nil && promo.Qualifies(subtotal, now) {
		fee = decimal.Zero
	}

	discount := decimal.Zero
	if coupon != nil {
		if !coupon.IsCurrent(now) {
			return domain.PriceBreakdown{}, fmt.Errorf("%w: %s", ErrCoupon, coupon.Code)
		}
		if subtotal.GreaterThanOrEqual(coupon.MinSubtotal) {
			switch coupon.DiscountType {
			case domain.DiscountPercent:
				discount = percentDiscount(lines, coupon.DiscountValue)
			case domain.DiscountFixed:
				discount = decimal.Min(coupon.DiscountValue, subtotal)
			case domain.DiscountFreeDelivery:
				fee = decimal.Zero
			default:
				return domain.PriceBreakdown{}, fmt.Errorf("%w: unknown discount type %q", ErrCoupon, coupon.DiscountType)
			}
		}
	}

	if len(lines) == 0 {
		fee = decimal.Zero
		discount = decimal.Zero
	}
	discount = decimal.Max(decimal.Zero, decimal.Min(discount, subtotal)).Round(2)
	fee = decimal.Max(decimal.Zero, fee).Round(2)

	return domain.PriceBreakdown{
		Subtotal:    subtotal.Round(2),
		Discount:    discount,
		DeliveryFee: fee,
		Total:       subtotal.Sub(discount).Add(fee).Round(2),
	}, nil
}

// percentDiscount only applies to lines that carry no item discount of their own.
func percentDiscount(lines []preorder.Line, percent decimal.Decimal) decimal.Decimal {
	base := decimal.Zero
	for _, line := range lines {
		if !line.ItemDiscounted {
			base = base.Add(line.LineTotal)
		}
	}
	return base.Mul(percent).Div(hundred)
}

// CouponApplies reports whether a current coupon actually changed the price
// in breakdown. Percent and fixed coupons need a non-zero discount; free
// delivery only needs the minimum subtotal.
func CouponApplies(coupon *domain.Coupon, breakdown domain.PriceBreakdown, now time.Time) bool {
	if coupon == nil || !coupon.IsCurrent(now) {
		return false
	}
	subtotal := breakdown.Subtotal
	if !subtotal.IsPositive() || subtotal.LessThan(coupon.MinSubtotal) {
		return false
	}
	return coupon.DiscountType == domain.DiscountFreeDelivery || breakdown.Discount.IsPositive()
}
