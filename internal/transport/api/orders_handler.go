package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/fsdevblog/consulting-checkout/internal/domain"
	"github.com/fsdevblog/consulting-checkout/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type OrdersHandler struct {
	orderSvs    OrderServicer
	checkoutSvs CheckoutServicer
}

func NewOrdersHandler(orderSvs OrderServicer, checkoutSvs CheckoutServicer) *OrdersHandler {
	return &OrdersHandler{
		orderSvs:    orderSvs,
		checkoutSvs: checkoutSvs,
	}
}

// Нижнюю границу количества проверяет сервис, он же возвращает domain.ErrInvalidQuantity.
type AddItemParams struct {
	ScheduleID int64 `binding:"required,gt=0" json:"schedule_id"`
	Quantity   int32 `binding:"lte=100"       json:"quantity"`
}

type UpdateItemParams struct {
	Quantity int32 `binding:"lte=100" json:"quantity"`
}

type QuoteParams struct {
	CouponID *int64 `binding:"omitempty,gt=0"    form:"coupon_id"`
	Point    string `binding:"omitempty,numeric" form:"point"`
}

type CheckoutParams struct {
	CouponID *int64          `binding:"omitempty,gt=0" json:"coupon_id"`
	Point    decimal.Decimal `binding:"won"            json:"point"`
}

type FinalizeParams struct {
	PaymentKey string          `binding:"required,max=200" json:"paymentKey"`
	Amount     decimal.Decimal `binding:"won"              json:"amount"`
	Gateway    string          `binding:"omitempty,max=30" json:"gateway"`
}

type CheckoutResponse struct {
	Order     OrderResponse   `json:"order"`
	OrderCode string          `json:"order_code"`
	Amount    decimal.Decimal `json:"amount"`
	OrderName string          `json:"order_name"`
}

// Index GET RouteGroup + OrdersRoute. Заказы текущего юзера.
func (o *OrdersHandler) Index(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()
	orders, err := o.orderSvs.List(reqCtx, currentUserID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	if len(orders) == 0 {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}

	var response = make([]OrderResponse, len(orders))
	for i := range orders {
		response[i] = newOrderResponse(&orders[i])
	}

	c.JSON(http.StatusOK, response)
}

// Show GET RouteGroup + OrderRoute.
func (o *OrdersHandler) Show(c *gin.Context) {
	orderID, ok := idParam(c, "id")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, err := o.orderSvs.Get(reqCtx, getOwnerFromContext(c), orderID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, newOrderResponse(order))
}

// AddToCart POST RouteGroup + CartItemsRoute. Добавляет позицию в текущую корзину, создавая ее при необходимости.
func (o *OrdersHandler) AddToCart(c *gin.Context) {
	o.addItem(c, 0)
}

// AddItem POST RouteGroup + OrderItemsRoute.
func (o *OrdersHandler) AddItem(c *gin.Context) {
	orderID, ok := idParam(c, "id")
	if !ok {
		return
	}
	o.addItem(c, orderID)
}

func (o *OrdersHandler) addItem(c *gin.Context, orderID int64) {
	var params AddItemParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, err := o.orderSvs.AddItem(reqCtx, getOwnerFromContext(c), service.AddItemArgs{
		OrderID:    orderID,
		ScheduleID: params.ScheduleID,
		Quantity:   params.Quantity,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCartResponse(order))
}

// UpdateItem PATCH RouteGroup + OrderItemRoute.
func (o *OrdersHandler) UpdateItem(c *gin.Context) {
	orderID, ok := idParam(c, "id")
	if !ok {
		return
	}
	itemID, ok := idParam(c, "itemID")
	if !ok {
		return
	}

	var params UpdateItemParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, err := o.orderSvs.UpdateItemQuantity(reqCtx, getOwnerFromContext(c), orderID, itemID, params.Quantity)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCartResponse(order))
}

// RemoveItem DELETE RouteGroup + OrderItemRoute.
func (o *OrdersHandler) RemoveItem(c *gin.Context) {
	orderID, ok := idParam(c, "id")
	if !ok {
		return
	}
	itemID, ok := idParam(c, "itemID")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, err := o.orderSvs.RemoveItem(reqCtx, getOwnerFromContext(c), orderID, itemID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCartResponse(order))
}

// ClearItems DELETE RouteGroup + OrderItemsRoute.
func (o *OrdersHandler) ClearItems(c *gin.Context) {
	orderID, ok := idParam(c, "id")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, err := o.orderSvs.ClearItems(reqCtx, getOwnerFromContext(c), orderID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCartResponse(order))
}

// Quote GET RouteGroup + OrderQuoteRoute. Расчет суммы без побочных эффектов.
func (o *OrdersHandler) Quote(c *gin.Context) {
	orderID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var params QuoteParams
	if bindErr := c.ShouldBindQuery(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	var point decimal.Decimal
	if params.Point != "" {
		var err error
		if point, err = decimal.NewFromString(params.Point); err != nil {
			abortWithBindError(c, err)
			return
		}
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	quote, err := o.orderSvs.ComputeQuote(reqCtx, getOwnerFromContext(c), orderID, service.QuoteArgs{
		CouponID: params.CouponID,
		Point:    point,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, newQuoteResponse(*quote))
}

// Checkout POST RouteGroup + OrderCheckoutRoute. Переводит корзину в ожидание оплаты и отдает данные для шлюза.
func (o *OrdersHandler) Checkout(c *gin.Context) {
	orderID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var params CheckoutParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	result, err := o.orderSvs.Checkout(reqCtx, getOwnerFromContext(c), orderID, service.QuoteArgs{
		CouponID: params.CouponID,
		Point:    params.Point,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, CheckoutResponse{
		Order:     newOrderResponse(result.Order),
		OrderCode: result.OrderCode,
		Amount:    result.Amount,
		OrderName: result.OrderName,
	})
}

// Finalize PUT RouteGroup + OrderRoute. Фиксирует оплату заказа после возврата покупателя из шлюза.
// Повторный вызов для оплаченного заказа возвращает заказ без изменений.
func (o *OrdersHandler) Finalize(c *gin.Context) {
	orderID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var params FinalizeParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}
	gateway := params.Gateway
	if gateway == "" {
		gateway = DefaultGateway
	}

	reqCtx, cancel := context.WithTimeout(c, PaymentServiceTimeout)
	defer cancel()

	owner := getOwnerFromContext(c)
	order, err := o.checkoutSvs.ConfirmOwnedOrder(reqCtx, owner, orderID, gateway, params.PaymentKey, params.Amount)
	if err != nil {
		if !errors.Is(err, domain.ErrOrderAlreadyFinalized) {
			abortWithError(c, err)
			return
		}
		_ = c.Error(err).SetType(gin.ErrorTypePrivate)
		if order, err = o.orderSvs.Get(reqCtx, owner, orderID); err != nil {
			abortWithError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, newOrderResponse(order))
}

// Reopen POST RouteGroup + OrderReopenRoute. Возвращает заказ с неудавшейся оплатой в корзину.
func (o *OrdersHandler) Reopen(c *gin.Context) {
	orderID, ok := idParam(c, "id")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, err := o.orderSvs.Reopen(reqCtx, getOwnerFromContext(c), orderID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCartResponse(order))
}
