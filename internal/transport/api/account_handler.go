package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type AccountHandler struct {
	pointSvs  PointServicer
	couponSvs CouponServicer
}

func NewAccountHandler(pointSvs PointServicer, couponSvs CouponServicer) *AccountHandler {
	return &AccountHandler{pointSvs: pointSvs, couponSvs: couponSvs}
}

type PointsResponse struct {
	Balance decimal.Decimal      `json:"balance"`
	History []PointEntryResponse `json:"history"`
}

// Points GET RouteGroup + PointsRoute. Баланс баллов и журнал начислений и списаний.
func (h *AccountHandler) Points(c *gin.Context) {
	userID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	balance, err := h.pointSvs.GetBalance(reqCtx, userID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	history, err := h.pointSvs.History(reqCtx, userID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	resp := PointsResponse{Balance: balance, History: make([]PointEntryResponse, len(history))}
	for i, entry := range history {
		resp.History[i] = newPointEntryResponse(entry)
	}
	c.JSON(http.StatusOK, resp)
}

// Coupons GET RouteGroup + CouponsRoute. Купоны, которые юзер может применить сейчас.
func (h *AccountHandler) Coupons(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	coupons, err := h.couponSvs.Usable(reqCtx, getUserIDFromContext(c))
	if err != nil {
		abortWithError(c, err)
		return
	}

	resp := make([]CouponResponse, len(coupons))
	for i, coupon := range coupons {
		resp[i] = newCouponResponse(coupon)
	}
	c.JSON(http.StatusOK, resp)
}
