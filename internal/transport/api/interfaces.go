package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/consulting-checkout/internal/domain"
	"github.com/fsdevblog/consulting-checkout/internal/service"
)

// UserServicer интерфейс исключительно для моков.
type UserServicer interface {
	Register(ctx context.Context, args service.RegisterUserArgs) (*domain.User, string, error)
	Login(ctx context.Context, args service.LoginUserArgs) (*domain.User, string, error)
}

type CatalogServicer interface {
	GetScheduleAvailability(ctx context.Context, scheduleID int64) (*domain.ScheduleAvailability, error)
}

type OrderServicer interface {
	AddItem(ctx context.Context, owner domain.Owner, args service.AddItemArgs) (*domain.Order, error)
	UpdateItemQuantity(
		ctx context.Context,
		owner domain.Owner,
		orderID, itemID int64,
		quantity int32,
	) (*domain.Order, error)
	RemoveItem(ctx context.Context, owner domain.Owner, orderID, itemID int64) (*domain.Order, error)
	ClearItems(ctx context.Context, owner domain.Owner, orderID int64) (*domain.Order, error)
	Get(ctx context.Context, owner domain.Owner, orderID int64) (*domain.Order, error)
	List(ctx context.Context, userID int64) ([]domain.Order, error)
	ComputeQuote(ctx context.Context, owner domain.Owner, orderID int64, args service.QuoteArgs) (*domain.Quote, error)
	Checkout(
		ctx context.Context,
		owner domain.Owner,
		orderID int64,
		args service.QuoteArgs,
	) (*service.CheckoutResult, error)
	Reopen(ctx context.Context, owner domain.Owner, orderID int64) (*domain.Order, error)
	Refund(ctx context.Context, orderID int64, reason string) (*domain.Order, error)
}

type CheckoutServicer interface {
	ConfirmPayment(ctx context.Context, gatewayName string, args service.PaymentConfirmation) (*domain.Order, error)
	ConfirmOwnedOrder(
		ctx context.Context,
		owner domain.Owner,
		orderID int64,
		gatewayName string,
		paymentKey string,
		amount decimal.Decimal,
	) (*domain.Order, error)
	FailPayment(ctx context.Context, gatewayName string, args service.PaymentFailure) error
}

type PointServicer interface {
	GetBalance(ctx context.Context, userID int64) (decimal.Decimal, error)
	History(ctx context.Context, userID int64) ([]domain.PointEntry, error)
	Accrue(ctx context.Context, userID int64, amount decimal.Decimal, description string) (*domain.PointEntry, error)
}

type CouponServicer interface {
	Usable(ctx context.Context, userID int64) ([]domain.Coupon, error)
	Issue(ctx context.Context, userID, templateID int64) (*domain.Coupon, error)
}
