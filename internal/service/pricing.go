package service

import (
	"fmt"
	"time"

	"github.com/fsdevblog/consulting-checkout/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// EvaluateCoupon считает скидку купона для суммы subtotal на момент now. Купон не изменяется.
// Использованный или истекший купон возвращает domain.ErrInvalidCoupon.
// Процентная скидка округляется вниз до целой воны, фиксированная не превышает subtotal.
func EvaluateCoupon(coupon domain.Coupon, subtotal decimal.Decimal, now time.Time) (decimal.Decimal, error) {
	if coupon.IsUsed {
		return decimal.Zero, fmt.Errorf("coupon %d already used: %w", coupon.ID, domain.ErrInvalidCoupon)
	}
	if coupon.ExpiryDate != nil && now.After(*coupon.ExpiryDate) {
		return decimal.Zero, fmt.Errorf("coupon %d expired: %w", coupon.ID, domain.ErrInvalidCoupon)
	}
	if !subtotal.IsPositive() {
		return decimal.Zero, nil
	}

	var discount decimal.Decimal
	switch coupon.Template.DiscountType {
	case domain.DiscountTypePercent:
		discount = subtotal.Mul(coupon.Template.DiscountValue).Div(hundred).Floor()
	case domain.DiscountTypeFixed:
		discount = decimal.Min(coupon.Template.DiscountAmount, subtotal)
	default:
		return decimal.Zero, fmt.Errorf(
			"coupon %d has unknown discount type %q: %w",
			coupon.ID,
			coupon.Template.DiscountType,
			domain.ErrInvalidCoupon,
		)
	}

	if discount.IsNegative() {
		return decimal.Zero, nil
	}
	return decimal.Min(discount, subtotal), nil
}

// Subtotal сумма позиций заказа.
func Subtotal(items []domain.OrderItem) decimal.Decimal {
	var sum = decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.LineTotal())
	}
	return sum
}

// BuildQuote собирает расчет заказа. Баллы должны быть в диапазоне [0, subtotal - couponDiscount],
// иначе возвращается domain.ErrInvalidPointAmount.
func BuildQuote(
	subtotal decimal.Decimal,
	couponID *int64,
	couponDiscount decimal.Decimal,
	point decimal.Decimal,
) (domain.Quote, error) {
	afterCoupon := subtotal.Sub(couponDiscount)
	if point.IsNegative() || point.GreaterThan(afterCoupon) || !point.Equal(point.Floor()) {
		return domain.Quote{}, fmt.Errorf(
			"point %s out of range [0, %s]: %w", point.String(), afterCoupon.String(), domain.ErrInvalidPointAmount,
		)
	}
	return domain.Quote{
		Subtotal:       subtotal,
		CouponID:       couponID,
		CouponDiscount: couponDiscount,
		UsedPoint:      point,
		Total:          afterCoupon.Sub(point),
	}, nil
}
