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

type PaymentsHandler struct {
	checkoutSvs CheckoutServicer
}

func NewPaymentsHandler(checkoutSvs CheckoutServicer) *PaymentsHandler {
	return &PaymentsHandler{checkoutSvs: checkoutSvs}
}

// ConfirmParams параметры, с которыми шлюз возвращает покупателя. Шлюз передает их query параметрами
// редиректа, сервер шлюза или клиент - телом запроса.
type ConfirmParams struct {
	PaymentKey string          `binding:"required,max=200" form:"paymentKey" json:"paymentKey"`
	OrderID    string          `binding:"required,max=64"  form:"orderId"    json:"orderId"`
	Amount     decimal.Decimal `binding:"won"              form:"amount"     json:"amount"`
}

type FailParams struct {
	Code    string `binding:"max=100"         form:"code"    json:"code"`
	Message string `binding:"max=500"         form:"message" json:"message"`
	OrderID string `binding:"required,max=64" form:"orderId" json:"orderId"`
}

// PaymentResponse ответ платежных колбэков.
type PaymentResponse struct {
	Success bool           `json:"success"`
	Error   *ErrorResponse `json:"error,omitempty"`
	Order   *OrderResponse `json:"order,omitempty"`
}

// Confirm POST/GET RouteGroup + PaymentConfirmRoute. Подтверждает платеж и фиксирует оплату заказа.
// Повторное подтверждение оплаченного заказа отвечает успехом.
func (h *PaymentsHandler) Confirm(c *gin.Context) {
	var params ConfirmParams
	if bindErr := c.ShouldBind(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, PaymentServiceTimeout)
	defer cancel()

	order, err := h.checkoutSvs.ConfirmPayment(reqCtx, c.Param("gateway"), service.PaymentConfirmation{
		PaymentKey: params.PaymentKey,
		OrderCode:  params.OrderID,
		Amount:     params.Amount,
	})
	if err != nil {
		if errors.Is(err, domain.ErrOrderAlreadyFinalized) {
			_ = c.Error(err).SetType(gin.ErrorTypePrivate)
			c.JSON(http.StatusOK, PaymentResponse{Success: true})
			return
		}
		abortPayment(c, err)
		return
	}

	resp := newOrderResponse(order)
	c.JSON(http.StatusOK, PaymentResponse{Success: true, Order: &resp})
}

// Fail POST/GET RouteGroup + PaymentFailRoute. Фиксирует отказ или отмену оплаты.
func (h *PaymentsHandler) Fail(c *gin.Context) {
	var params FailParams
	if bindErr := c.ShouldBind(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	err := h.checkoutSvs.FailPayment(reqCtx, c.Param("gateway"), service.PaymentFailure{
		OrderCode: params.OrderID,
		Code:      params.Code,
		Message:   params.Message,
	})
	if err != nil {
		abortPayment(c, err)
		return
	}
	c.JSON(http.StatusOK, PaymentResponse{Success: true})
}

func abortPayment(c *gin.Context, err error) {
	status, resp := classifyError(err)
	_ = c.Error(err).SetType(gin.ErrorTypePrivate)
	c.AbortWithStatusJSON(status, PaymentResponse{Success: false, Error: &resp})
}
