package service

import (
	"testing"
	"time"

	"github.com/fsdevblog/consulting-checkout/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateCoupon(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	percent := func(v int64) domain.CouponTemplate {
		return domain.CouponTemplate{DiscountType: domain.DiscountTypePercent, DiscountValue: dec(v)}
	}
	fixed := func(v int64) domain.CouponTemplate {
		return domain.CouponTemplate{DiscountType: domain.DiscountTypeFixed, DiscountAmount: dec(v)}
	}

	cases := []struct {
		name     string
		coupon   domain.Coupon
		subtotal decimal.Decimal
		want     decimal.Decimal
		wantErr  error
	}{
		{name: "percent", coupon: domain.Coupon{Template: percent(10)}, subtotal: dec(100000), want: dec(10000)},
		{name: "percent floors fraction", coupon: domain.Coupon{Template: percent(15)}, subtotal: dec(33333), want: dec(4999)},
		{
			name:     "fractional percent",
			coupon:   domain.Coupon{Template: domain.CouponTemplate{DiscountType: domain.DiscountTypePercent, DiscountValue: decimal.RequireFromString("12.5")}},
			subtotal: dec(10001),
			want:     dec(1250),
		},
		{name: "percent 100", coupon: domain.Coupon{Template: percent(100)}, subtotal: dec(5000), want: dec(5000)},
		{name: "fixed", coupon: domain.Coupon{Template: fixed(3000)}, subtotal: dec(10000), want: dec(3000)},
		{name: "fixed capped by subtotal", coupon: domain.Coupon{Template: fixed(30000)}, subtotal: dec(10000), want: dec(10000)},
		{name: "zero subtotal", coupon: domain.Coupon{Template: fixed(3000)}, subtotal: decimal.Zero, want: decimal.Zero},
		{name: "used", coupon: domain.Coupon{IsUsed: true, Template: fixed(3000)}, subtotal: dec(10000), wantErr: domain.ErrInvalidCoupon},
		{
			name:     "expired",
			coupon:   domain.Coupon{ExpiryDate: ptr(now.Add(-time.Second)), Template: fixed(3000)},
			subtotal: dec(10000),
			wantErr:  domain.ErrInvalidCoupon,
		},
		{
			name:     "expires exactly now",
			coupon:   domain.Coupon{ExpiryDate: ptr(now), Template: fixed(3000)},
			subtotal: dec(10000),
			want:     dec(3000),
		},
		{
			name:     "unknown discount type",
			coupon:   domain.Coupon{Template: domain.CouponTemplate{DiscountType: "bogus"}},
			subtotal: dec(10000),
			wantErr:  domain.ErrInvalidCoupon,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			before := tc.coupon
			got, err := EvaluateCoupon(tc.coupon, tc.subtotal, now)
			assert.Equal(t, before, tc.coupon)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tc.want), "want %s, got %s", tc.want, got)
			assert.False(t, got.IsNegative())
			assert.True(t, got.LessThanOrEqual(tc.subtotal))
		})
	}
}

func TestBuildQuote(t *testing.T) {
	cases := []struct {
		name      string
		subtotal  int64
		discount  int64
		point     decimal.Decimal
		wantTotal int64
		wantErr   error
	}{
		{name: "no discounts", subtotal: 50000, point: decimal.Zero, wantTotal: 50000},
		{name: "coupon and points", subtotal: 100000, discount: 10000, point: dec(5000), wantTotal: 85000},
		{name: "points cover rest", subtotal: 100000, discount: 10000, point: dec(90000), wantTotal: 0},
		{name: "points exceed rest", subtotal: 100000, discount: 10000, point: dec(90001), wantErr: domain.ErrInvalidPointAmount},
		{name: "negative points", subtotal: 100000, point: dec(-1), wantErr: domain.ErrInvalidPointAmount},
		{name: "fractional points", subtotal: 100000, point: decimal.RequireFromString("0.5"), wantErr: domain.ErrInvalidPointAmount},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := BuildQuote(dec(tc.subtotal), nil, dec(tc.discount), tc.point)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, q.Total.Equal(dec(tc.wantTotal)), "want %d, got %s", tc.wantTotal, q.Total)
			assert.True(t, q.Total.Equal(q.Subtotal.Sub(q.CouponDiscount).Sub(q.UsedPoint)))
			assert.False(t, q.Total.IsNegative())
		})
	}
}

func TestSubtotal(t *testing.T) {
	items := []domain.OrderItem{
		{Quantity: 2, UnitPrice: dec(30000)},
		{Quantity: 1, UnitPrice: dec(50000), DiscountPrice: ptr(dec(40000))},
	}
	assert.True(t, Subtotal(items).Equal(dec(100000)))
	assert.True(t, Subtotal(nil).IsZero())
}
