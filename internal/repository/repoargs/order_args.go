package repoargs

import (
	"time"

	"github.com/fsdevblog/consulting-checkout/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateCart struct {
	Code  string
	Owner domain.Owner
}

type OrderCheckout struct {
	ID           int64
	Quote        domain.Quote
	PendingSince time.Time
}

type OrderPaid struct {
	ID         int64
	Quote      domain.Quote
	PaymentKey string
	PaidAt     time.Time
}

type AddOrderItem struct {
	OrderID    int64
	ScheduleID int64
	Quantity   int32
	UnitPrice  decimal.Decimal
}
