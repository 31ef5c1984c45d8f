package service

import (
	"fmt"
	"time"

	"github.com/fsdevblog/consulting-checkout/internal/service/psswd"
	"github.com/fsdevblog/consulting-checkout/pkg/uow"
	"github.com/sirupsen/logrus"
)

type AppServices struct {
	UserService     *UserService
	OrderService    *OrderService
	CheckoutService *CheckoutService
	PointService    *PointService
	CouponService   *CouponService
	CatalogService  *CatalogService
}

type FactoryArgs struct {
	UOW            uow.UOW
	JWTSecret      []byte
	Locker         Locker
	Notifier       CartNotifier
	Gateways       map[string]PaymentGateway
	GatewayTimeout time.Duration
	Logger         *logrus.Logger
}

func Factory(args FactoryArgs) (*AppServices, error) {
	userService, userServiceErr := NewUserService(args.UOW, args.JWTSecret, psswd.PasswordHash(""))
	if userServiceErr != nil {
		return nil, fmt.Errorf("service factory: %w", userServiceErr)
	}

	orderService, orderServiceErr := NewOrderService(args.UOW, args.Locker, args.Notifier, args.Logger)
	if orderServiceErr != nil {
		return nil, fmt.Errorf("service factory: %w", orderServiceErr)
	}

	pointService, pointServiceErr := NewPointService(args.UOW)
	if pointServiceErr != nil {
		return nil, fmt.Errorf("service factory: %w", pointServiceErr)
	}

	couponService, couponServiceErr := NewCouponService(args.UOW)
	if couponServiceErr != nil {
		return nil, fmt.Errorf("service factory: %w", couponServiceErr)
	}

	catalogService, catalogServiceErr := NewCatalogService(args.UOW)
	if catalogServiceErr != nil {
		return nil, fmt.Errorf("service factory: %w", catalogServiceErr)
	}

	return &AppServices{
		UserService:     userService,
		OrderService:    orderService,
		CheckoutService: NewCheckoutService(orderService, args.Gateways, args.GatewayTimeout, args.Logger),
		PointService:    pointService,
		CouponService:   couponService,
		CatalogService:  catalogService,
	}, nil
}
