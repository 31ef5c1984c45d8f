package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type AdminHandler struct {
	orderSvs  OrderServicer
	pointSvs  PointServicer
	couponSvs CouponServicer
}

func NewAdminHandler(orderSvs OrderServicer, pointSvs PointServicer, couponSvs CouponServicer) *AdminHandler {
	return &AdminHandler{orderSvs: orderSvs, pointSvs: pointSvs, couponSvs: couponSvs}
}

type AccrueParams struct {
	Amount      decimal.Decimal `binding:"won"                            json:"amount"`
	Description string          `binding:"required,max=200,max_bytes=600" json:"description"`
}

type IssueCouponParams struct {
	TemplateID int64 `binding:"required,gt=0" json:"template_id"`
}

type RefundParams struct {
	Reason string `binding:"max=200" json:"reason"`
}

// AccruePoints POST RouteGroup + AdminUserPointsRoute.
func (h *AdminHandler) AccruePoints(c *gin.Context) {
	userID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var params AccrueParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	entry, err := h.pointSvs.Accrue(reqCtx, userID, params.Amount, params.Description)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newPointEntryResponse(*entry))
}

// IssueCoupon POST RouteGroup + AdminUserCouponsRoute.
func (h *AdminHandler) IssueCoupon(c *gin.Context) {
	userID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var params IssueCouponParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	coupon, err := h.couponSvs.Issue(reqCtx, userID, params.TemplateID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newCouponResponse(*coupon))
}

// Refund POST RouteGroup + AdminOrderRefundRoute.
func (h *AdminHandler) Refund(c *gin.Context) {
	orderID, ok := idParam(c, "id")
	if !ok {
		return
	}

	// причина возврата необязательна, тело запроса может отсутствовать.
	var params RefundParams
	if c.Request.ContentLength != 0 {
		if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
			abortWithBindError(c, bindErr)
			return
		}
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, err := h.orderSvs.Refund(reqCtx, orderID, params.Reason)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, newOrderResponse(order))
}
