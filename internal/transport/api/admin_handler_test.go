package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/fsdevblog/consulting-checkout/internal/domain"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
)

func (s *HandlerTestSuite) TestAdminAccruePoints() {
	s.mockPointService.EXPECT().Accrue(gomock.Any(), int64(7), decimal.NewFromInt(3000), "이벤트 적립").
		Return(&domain.PointEntry{
			ID:          1,
			UserID:      7,
			ChangeType:  domain.PointChangeAccrual,
			Amount:      decimal.NewFromInt(3000),
			Description: "이벤트 적립",
		}, nil)
	s.mockPointService.EXPECT().Accrue(gomock.Any(), int64(8), decimal.NewFromInt(3000), "이벤트 적립").
		Return(nil, fmt.Errorf("accrue: %w", domain.ErrRecordNotFound))

	status, body := s.request(http.MethodPost, RouteGroup+"/admin/users/7/points",
		`{"amount": 3000, "description": "이벤트 적립"}`, asAdmin())
	s.Require().Equal(http.StatusCreated, status, string(body))

	var resp PointEntryResponse
	s.Require().NoError(json.Unmarshal(body, &resp))
	s.Equal(domain.PointChangeAccrual, resp.ChangeType)

	status, _ = s.request(http.MethodPost, RouteGroup+"/admin/users/8/points",
		`{"amount": 3000, "description": "이벤트 적립"}`, asAdmin())
	s.Equal(http.StatusNotFound, status)

	// отрицательные и дробные суммы отклоняются валидацией.
	for _, amount := range []string{"-100", "10.5"} {
		status, _ = s.request(http.MethodPost, RouteGroup+"/admin/users/7/points",
			`{"amount": `+amount+`, "description": "이벤트 적립"}`, asAdmin())
		s.Equal(http.StatusUnprocessableEntity, status)
	}
}

func (s *HandlerTestSuite) TestAdminIssueCoupon() {
	expiry := time.Now().AddDate(0, 0, 30)
	s.mockCouponService.EXPECT().Issue(gomock.Any(), int64(7), int64(2)).Return(&domain.Coupon{
		ID:         11,
		UserID:     7,
		TemplateID: 2,
		Template: domain.CouponTemplate{
			ID:             2,
			DiscountType:   domain.DiscountTypeFixed,
			DiscountAmount: decimal.NewFromInt(5000),
		},
		ExpiryDate: &expiry,
	}, nil)

	status, body := s.request(http.MethodPost, RouteGroup+"/admin/users/7/coupons", IssueCouponParams{TemplateID: 2},
		asAdmin())
	s.Require().Equal(http.StatusCreated, status, string(body))

	var resp CouponResponse
	s.Require().NoError(json.Unmarshal(body, &resp))
	s.Equal(int64(11), resp.ID)
	s.True(resp.DiscountAmount.Equal(decimal.NewFromInt(5000)))
}

func (s *HandlerTestSuite) TestAdminRefund() {
	refundedAt := time.Now()
	s.mockOrderService.EXPECT().Refund(gomock.Any(), int64(10), "고객 요청").Return(&domain.Order{
		ID:         10,
		Status:     domain.OrderStatusRefunded,
		RefundedAt: &refundedAt,
	}, nil)
	s.mockOrderService.EXPECT().Refund(gomock.Any(), int64(11), "").Return(nil, domain.ErrInvalidOrderState)

	status, body := s.request(http.MethodPost, RouteGroup+"/admin/orders/10/refund", RefundParams{Reason: "고객 요청"},
		asAdmin())
	s.Require().Equal(http.StatusOK, status, string(body))

	var resp OrderResponse
	s.Require().NoError(json.Unmarshal(body, &resp))
	s.Equal(domain.OrderStatusRefunded, resp.Status)

	status, _ = s.request(http.MethodPost, RouteGroup+"/admin/orders/11/refund", nil, asAdmin())
	s.Equal(http.StatusConflict, status)
}
