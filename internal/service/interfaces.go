package service

import (
	"context"
	"time"

	"github.com/fsdevblog/consulting-checkout/internal/domain"
	"github.com/fsdevblog/consulting-checkout/internal/repository/repoargs"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type PasswordHasher interface {
	HashPassword(password string) (string, error)
	ComparePassword(password string, hashedPassword string) bool
}

type UserRepository interface {
	CreateUser(ctx context.Context, user repoargs.CreateUser) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	LockForUpdate(ctx context.Context, userID int64) error
}

type ScheduleRepository interface {
	GetAvailability(ctx context.Context, scheduleID int64) (*domain.ScheduleAvailability, error)
	LockForUpdate(ctx context.Context, scheduleID int64) error
}

type OrderRepository interface {
	CreateCart(ctx context.Context, args repoargs.CreateCart) (*domain.Order, error)
	FindOpenCart(ctx context.Context, owner domain.Owner) (*domain.Order, error)
	GetByID(ctx context.Context, orderID int64) (*domain.Order, error)
	GetByIDForUpdate(ctx context.Context, orderID int64) (*domain.Order, error)
	GetByCode(ctx context.Context, code string) (*domain.Order, error)
	GetByUserID(ctx context.Context, userID int64) ([]domain.Order, error)
	UpdateSubtotal(ctx context.Context, orderID int64, subtotal decimal.Decimal) error
	MarkPendingPayment(ctx context.Context, args repoargs.OrderCheckout) error
	MarkPaid(ctx context.Context, args repoargs.OrderPaid) error
	RecordPaymentKey(ctx context.Context, orderID int64, paymentKey string) error
	MarkFailed(ctx context.Context, orderID int64, at time.Time) error
	RevertToCart(ctx context.Context, orderID int64) error
	MarkRefunded(ctx context.Context, orderID int64, at time.Time) error
	FindStalePending(ctx context.Context, before time.Time, limit int) ([]int64, error)
}

type OrderItemRepository interface {
	AddItem(ctx context.Context, args repoargs.AddOrderItem) (*domain.OrderItem, error)
	GetByOrderID(ctx context.Context, orderID int64) ([]domain.OrderItem, error)
	UpdateQuantity(ctx context.Context, orderID, itemID int64, quantity int32) (*domain.OrderItem, error)
	Delete(ctx context.Context, orderID, itemID int64) error
	DeleteByOrderID(ctx context.Context, orderID int64) error
}

type CouponRepository interface {
	GetUserCoupon(ctx context.Context, userID, couponID int64) (*domain.Coupon, error)
	GetUsable(ctx context.Context, userID int64, now time.Time) ([]domain.Coupon, error)
	MarkUsed(ctx context.Context, couponID, orderID int64, at time.Time) error
	GetTemplate(ctx context.Context, templateID int64) (*domain.CouponTemplate, error)
	Issue(ctx context.Context, args repoargs.IssueCoupon) (*domain.Coupon, error)
}

type PointRepository interface {
	Append(ctx context.Context, args repoargs.PointEntryCreate) (*domain.PointEntry, error)
	GetUserBalance(ctx context.Context, userID int64) (*repoargs.PointAggregation, error)
	GetByUserID(ctx context.Context, userID int64) ([]domain.PointEntry, error)
}

// Locker распределенная блокировка по ключу. Возвращает функцию снятия блокировки.
type Locker interface {
	Obtain(ctx context.Context, key string) (func(), error)
}

// CartNotifier получает уведомления об оплаченных заказах, после которых корзину владельца нужно очистить.
type CartNotifier interface {
	ClearCart(ctx context.Context, owner domain.Owner, orderID int64) error
	OrderPaid(ctx context.Context, order domain.Order) error
}

// PaymentGateway подтверждение платежа во внешнем платежном шлюзе.
// Ошибки сети и 5xx оборачиваются в domain.ErrGatewayUnavailable, отказ шлюза в domain.ErrPaymentRejected.
type PaymentGateway interface {
	Confirm(ctx context.Context, paymentKey, orderCode string, amount decimal.Decimal) error
}

// OrderFinalizer операции над заказом, которые нужны подтверждению оплаты.
type OrderFinalizer interface {
	Get(ctx context.Context, owner domain.Owner, orderID int64) (*domain.Order, error)
	GetByCode(ctx context.Context, code string) (*domain.Order, error)
	RecomputeQuote(ctx context.Context, order *domain.Order) (*domain.Quote, error)
	RecordPaymentKey(ctx context.Context, orderID int64, paymentKey string) error
	FinalizeOrder(ctx context.Context, orderID int64, paymentKey string, verifiedAmount decimal.Decimal) (*domain.Order, error)
	FailPayment(ctx context.Context, orderID int64) error
}
