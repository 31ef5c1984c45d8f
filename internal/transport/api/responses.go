package api

import (
	"time"

	"github.com/fsdevblog/consulting-checkout/internal/domain"
	"github.com/shopspring/decimal"
)

type OrderItemResponse struct {
	ID         int64           `json:"id"`
	ScheduleID int64           `json:"schedule_id"`
	Quantity   int32           `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	LineTotal  decimal.Decimal `json:"line_total"`
}

type OrderResponse struct {
	ID             int64                  `json:"id"`
	Code           string                 `json:"code"`
	Status         domain.OrderStatusType `json:"status"`
	CouponID       *int64                 `json:"coupon_id,omitempty"`
	Subtotal       decimal.Decimal        `json:"subtotal"`
	CouponDiscount decimal.Decimal        `json:"coupon_discount"`
	UsedPoint      decimal.Decimal        `json:"used_point"`
	TotalAmount    decimal.Decimal        `json:"total_amount"`
	CreatedAt      time.Time              `json:"created_at"`
	PendingSince   *time.Time             `json:"pending_since,omitempty"`
	PaidAt         *time.Time             `json:"paid_at,omitempty"`
	FailedAt       *time.Time             `json:"failed_at,omitempty"`
	RefundedAt     *time.Time             `json:"refunded_at,omitempty"`
	Items          []OrderItemResponse    `json:"items,omitempty"`
}

func newOrderResponse(order *domain.Order) OrderResponse {
	resp := OrderResponse{
		ID:             order.ID,
		Code:           order.Code,
		Status:         order.Status,
		CouponID:       order.CouponID,
		Subtotal:       order.Subtotal,
		CouponDiscount: order.CouponDiscount,
		UsedPoint:      order.UsedPoint,
		TotalAmount:    order.TotalAmount,
		CreatedAt:      order.CreatedAt,
		PendingSince:   order.PendingSince,
		PaidAt:         order.PaidAt,
		FailedAt:       order.FailedAt,
		RefundedAt:     order.RefundedAt,
	}
	if len(order.Items) > 0 {
		resp.Items = make([]OrderItemResponse, len(order.Items))
		for i, item := range order.Items {
			resp.Items[i] = OrderItemResponse{
				ID:         item.ID,
				ScheduleID: item.ScheduleID,
				Quantity:   item.Quantity,
				UnitPrice:  item.EffectivePrice(),
				LineTotal:  item.LineTotal(),
			}
		}
	}
	return resp
}

type QuoteResponse struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	CouponID       *int64          `json:"coupon_id,omitempty"`
	CouponDiscount decimal.Decimal `json:"coupon_discount"`
	UsedPoint      decimal.Decimal `json:"used_point"`
	Total          decimal.Decimal `json:"total"`
}

func newQuoteResponse(q domain.Quote) QuoteResponse {
	return QuoteResponse(q)
}

// cartQuote расчет корзины без купона и баллов.
func cartQuote(order *domain.Order) QuoteResponse {
	return QuoteResponse{
		Subtotal:       order.Subtotal,
		CouponDiscount: decimal.Zero,
		UsedPoint:      decimal.Zero,
		Total:          order.Subtotal,
	}
}

// CartResponse ответ на изменение корзины: заказ и его актуальный расчет.
type CartResponse struct {
	Order OrderResponse `json:"order"`
	Quote QuoteResponse `json:"quote"`
}

func newCartResponse(order *domain.Order) CartResponse {
	return CartResponse{Order: newOrderResponse(order), Quote: cartQuote(order)}
}

type PointEntryResponse struct {
	ID          int64                  `json:"id"`
	OrderID     *int64                 `json:"order_id,omitempty"`
	ChangeType  domain.PointChangeType `json:"change_type"`
	Amount      decimal.Decimal        `json:"amount"`
	Description string                 `json:"description"`
	CreatedAt   time.Time              `json:"created_at"`
	UsedAt      *time.Time             `json:"used_at,omitempty"`
}

func newPointEntryResponse(e domain.PointEntry) PointEntryResponse {
	return PointEntryResponse{
		ID:          e.ID,
		OrderID:     e.OrderID,
		ChangeType:  e.ChangeType,
		Amount:      e.Amount,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		UsedAt:      e.UsedAt,
	}
}

type CouponResponse struct {
	ID             int64               `json:"id"`
	TemplateID     int64               `json:"template_id"`
	Name           string              `json:"name"`
	DiscountType   domain.DiscountType `json:"discount_type"`
	DiscountAmount decimal.Decimal     `json:"discount_amount"`
	DiscountValue  decimal.Decimal     `json:"discount_value"`
	IsUsed         bool                `json:"is_used"`
	ExpiryDate     *time.Time          `json:"expiry_date,omitempty"`
}

func newCouponResponse(c domain.Coupon) CouponResponse {
	return CouponResponse{
		ID:             c.ID,
		TemplateID:     c.TemplateID,
		Name:           c.Template.Name,
		DiscountType:   c.Template.DiscountType,
		DiscountAmount: c.Template.DiscountAmount,
		DiscountValue:  c.Template.DiscountValue,
		IsUsed:         c.IsUsed,
		ExpiryDate:     c.ExpiryDate,
	}
}
