package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatusType string

const (
	OrderStatusCart           OrderStatusType = "cart"
	OrderStatusPendingPayment OrderStatusType = "pending_payment"
	OrderStatusPaid           OrderStatusType = "paid"
	OrderStatusRefunded       OrderStatusType = "refunded"
	OrderStatusFailed         OrderStatusType = "failed"
)

// PointChangeType тип записи журнала баллов. Значения совпадают с тем, что хранится в БД.
type PointChangeType string

const (
	PointChangeAccrual    PointChangeType = "적립"
	PointChangeRedemption PointChangeType = "사용"
)

type DiscountType string

const (
	DiscountTypeFixed   DiscountType = "fixed"
	DiscountTypePercent DiscountType = "percent"
)

type ScheduleStatusType string

const (
	ScheduleStatusOpen   ScheduleStatusType = "open"
	ScheduleStatusClosed ScheduleStatusType = "closed"
)

type User struct {
	ID                int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
	Username          string
	EncryptedPassword string
}

// Owner владелец корзины: авторизованный юзер либо гость с токеном.
type Owner struct {
	UserID     int64
	GuestToken string
}

func (o Owner) IsGuest() bool {
	return o.UserID == 0
}

func (o Owner) IsZero() bool {
	return o.UserID == 0 && o.GuestToken == ""
}

type Order struct {
	ID             int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Code           string
	UserID         *int64
	GuestToken     *string
	Status         OrderStatusType
	CouponID       *int64
	Subtotal       decimal.Decimal
	CouponDiscount decimal.Decimal
	UsedPoint      decimal.Decimal
	TotalAmount    decimal.Decimal
	PaymentKey     *string
	PendingSince   *time.Time
	PaidAt         *time.Time
	FailedAt       *time.Time
	RefundedAt     *time.Time
	Items          []OrderItem
}

// OwnedBy проверяет принадлежность заказа владельцу.
func (o *Order) OwnedBy(owner Owner) bool {
	if o.UserID != nil {
		return owner.UserID != 0 && *o.UserID == owner.UserID
	}
	return o.GuestToken != nil && owner.UserID == 0 && owner.GuestToken != "" && *o.GuestToken == owner.GuestToken
}

// Owner возвращает владельца заказа.
func (o *Order) Owner() Owner {
	var owner Owner
	if o.UserID != nil {
		owner.UserID = *o.UserID
	}
	if o.GuestToken != nil {
		owner.GuestToken = *o.GuestToken
	}
	return owner
}

type OrderItem struct {
	ID            int64
	CreatedAt     time.Time
	OrderID       int64
	ScheduleID    int64
	Quantity      int32
	UnitPrice     decimal.Decimal
	DiscountPrice *decimal.Decimal
}

// EffectivePrice цена позиции за единицу с учетом скидочной цены, если она задана.
func (i OrderItem) EffectivePrice() decimal.Decimal {
	if i.DiscountPrice != nil {
		return *i.DiscountPrice
	}
	return i.UnitPrice
}

// LineTotal сумма по позиции.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.EffectivePrice().Mul(decimal.NewFromInt32(i.Quantity))
}

type CouponTemplate struct {
	ID             int64
	Name           string
	DiscountType   DiscountType
	DiscountAmount decimal.Decimal
	DiscountValue  decimal.Decimal
	ValidDays      *int32
}

type Coupon struct {
	ID          int64
	CreatedAt   time.Time
	UserID      int64
	TemplateID  int64
	Template    CouponTemplate
	IsUsed      bool
	UsedOrderID *int64
	UsedAt      *time.Time
	ExpiryDate  *time.Time
}

type PointEntry struct {
	ID          int64
	CreatedAt   time.Time
	UserID      int64
	OrderID     *int64
	ChangeType  PointChangeType
	Amount      decimal.Decimal
	Description string
	UsedAt      *time.Time
}

// PointReservation резервирование баллов под заказ. В журнал ничего не пишется до оплаты заказа.
type PointReservation struct {
	UserID int64
	Amount decimal.Decimal
}

type ScheduleAvailability struct {
	ID                int64
	Title             string
	Price             decimal.Decimal
	Capacity          int32
	CapacityRemaining int32
	Status            ScheduleStatusType
	StartsAt          time.Time
}

// Quote расчет суммы заказа, еще не зафиксированный оплатой.
type Quote struct {
	Subtotal       decimal.Decimal
	CouponID       *int64
	CouponDiscount decimal.Decimal
	UsedPoint      decimal.Decimal
	Total          decimal.Decimal
}
