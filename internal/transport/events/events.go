package events

import (
	"time"

	"github.com/fsdevblog/consulting-checkout/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	QueueCartCleared = "cart.cleared"
	QueueOrderPaid   = "order.paid"
)

// CartClearedEvent сигнал внешним подписчикам (клиентский кэш корзины, CRM) что корзина владельца опустела.
type CartClearedEvent struct {
	OrderID    int64     `json:"order_id"`
	UserID     int64     `json:"user_id,omitempty"`
	GuestToken string    `json:"guest_token,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type OrderPaidEvent struct {
	OrderID     int64           `json:"order_id"`
	OrderCode   string          `json:"order_code"`
	UserID      *int64          `json:"user_id,omitempty"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	UsedPoint   decimal.Decimal `json:"used_point"`
	CouponID    *int64          `json:"coupon_id,omitempty"`
	PaidAt      *time.Time      `json:"paid_at,omitempty"`
}

func newCartClearedEvent(owner domain.Owner, orderID int64, at time.Time) CartClearedEvent {
	return CartClearedEvent{
		OrderID:    orderID,
		UserID:     owner.UserID,
		GuestToken: owner.GuestToken,
		OccurredAt: at.UTC(),
	}
}

func newOrderPaidEvent(order domain.Order) OrderPaidEvent {
	return OrderPaidEvent{
		OrderID:     order.ID,
		OrderCode:   order.Code,
		UserID:      order.UserID,
		TotalAmount: order.TotalAmount,
		UsedPoint:   order.UsedPoint,
		CouponID:    order.CouponID,
		PaidAt:      order.PaidAt,
	}
}
