package api

import (
	"fmt"
	"time"

	"github.com/fsdevblog/consulting-checkout/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 3 * time.Second
	// PaymentServiceTimeout покрывает подтверждение в шлюзе и фиксацию оплаты.
	PaymentServiceTimeout = 20 * time.Second

	DefaultGateway = "toss"
)

const (
	RouteGroup            = "/api"
	RegisterRoute         = "/user/register"
	LoginRoute            = "/user/login"
	OrdersRoute           = "/orders"
	ScheduleRoute         = "/schedules/:id"
	CartItemsRoute        = "/cart/items"
	OrderRoute            = "/orders/:id"
	OrderItemsRoute       = "/orders/:id/items"
	OrderItemRoute        = "/orders/:id/items/:itemID"
	OrderQuoteRoute       = "/orders/:id/quote"
	OrderCheckoutRoute    = "/orders/:id/checkout"
	OrderReopenRoute      = "/orders/:id/reopen"
	PaymentConfirmRoute   = "/payments/:gateway/confirm"
	PaymentFailRoute      = "/payments/:gateway/fail"
	PointsRoute           = "/user/points"
	CouponsRoute          = "/user/coupons"
	AdminUserPointsRoute  = "/admin/users/:id/points"
	AdminUserCouponsRoute = "/admin/users/:id/coupons"
	AdminOrderRefundRoute = "/admin/orders/:id/refund"
)

type RouterArgs struct {
	Logger          *logrus.Logger
	UserService     UserServicer
	CatalogService  CatalogServicer
	OrderService    OrderServicer
	CheckoutService CheckoutServicer
	PointService    PointServicer
	CouponService   CouponServicer
	JWTSecretKey    []byte
	AdminAPIKey     string
}

func New(args RouterArgs) (*gin.Engine, error) {
	binding.EnableDecoderDisallowUnknownFields = true
	if err := registerValidators(); err != nil {
		return nil, fmt.Errorf("router: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	authHandler := NewAuthHandler(args.UserService)
	catalogHandler := NewCatalogHandler(args.CatalogService)
	ordersHandler := NewOrdersHandler(args.OrderService, args.CheckoutService)
	paymentsHandler := NewPaymentsHandler(args.CheckoutService)
	accountHandler := NewAccountHandler(args.PointService, args.CouponService)
	adminHandler := NewAdminHandler(args.OrderService, args.PointService, args.CouponService)

	api := r.Group(RouteGroup)

	api.POST(RegisterRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Register)
	api.POST(LoginRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Login)
	api.GET(ScheduleRoute, catalogHandler.Show)

	// колбэки платежного шлюза. Сумма перепроверяется на сервере, авторизация не нужна.
	api.GET(PaymentConfirmRoute, paymentsHandler.Confirm)
	api.POST(PaymentConfirmRoute, paymentsHandler.Confirm)
	api.GET(PaymentFailRoute, paymentsHandler.Fail)
	api.POST(PaymentFailRoute, paymentsHandler.Fail)

	admin := api.Group("", middlewares.AdminKey(args.AdminAPIKey))
	admin.POST(AdminUserPointsRoute, adminHandler.AccruePoints)
	admin.POST(AdminUserCouponsRoute, adminHandler.IssueCoupon)
	admin.POST(AdminOrderRefundRoute, adminHandler.Refund)

	// корзина доступна и гостям.
	owner := api.Group("", middlewares.OwnerRequired(args.JWTSecretKey))
	owner.POST(CartItemsRoute, ordersHandler.AddToCart)
	owner.GET(OrderRoute, ordersHandler.Show)
	owner.PUT(OrderRoute, ordersHandler.Finalize)
	owner.POST(OrderItemsRoute, ordersHandler.AddItem)
	owner.DELETE(OrderItemsRoute, ordersHandler.ClearItems)
	owner.PATCH(OrderItemRoute, ordersHandler.UpdateItem)
	owner.DELETE(OrderItemRoute, ordersHandler.RemoveItem)
	owner.GET(OrderQuoteRoute, ordersHandler.Quote)
	owner.POST(OrderCheckoutRoute, ordersHandler.Checkout)
	owner.POST(OrderReopenRoute, ordersHandler.Reopen)

	// ниже все роуты группы требуют авторизованного пользователя.
	user := api.Group("", middlewares.AuthRequired(args.JWTSecretKey))
	user.GET(OrdersRoute, ordersHandler.Index)
	user.GET(PointsRoute, accountHandler.Points)
	user.GET(CouponsRoute, accountHandler.Coupons)

	return r, nil
}
