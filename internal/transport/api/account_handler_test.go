package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/consulting-checkout/internal/domain"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
)

func (s *HandlerTestSuite) TestPoints() {
	orderID := int64(10)
	history := []domain.PointEntry{
		{
			ID:          2,
			UserID:      testUserID,
			OrderID:     &orderID,
			ChangeType:  domain.PointChangeRedemption,
			Amount:      decimal.NewFromInt(5000),
			Description: "주문 결제",
		},
		{
			ID:          1,
			UserID:      testUserID,
			ChangeType:  domain.PointChangeAccrual,
			Amount:      decimal.NewFromInt(20000),
			Description: gofakeit.Sentence(3),
		},
	}
	s.mockPointService.EXPECT().GetBalance(gomock.Any(), testUserID).Return(decimal.NewFromInt(15000), nil)
	s.mockPointService.EXPECT().History(gomock.Any(), testUserID).Return(history, nil)

	status, body := s.request(http.MethodGet, RouteGroup+PointsRoute, nil, asUser(s.userToken))
	s.Require().Equal(http.StatusOK, status)

	var resp PointsResponse
	s.Require().NoError(json.Unmarshal(body, &resp))
	s.True(resp.Balance.Equal(decimal.NewFromInt(15000)))
	s.Require().Len(resp.History, 2)
	s.Equal(domain.PointChangeRedemption, resp.History[0].ChangeType)

	status, _ = s.request(http.MethodGet, RouteGroup+PointsRoute, nil, asGuest())
	s.Equal(http.StatusUnauthorized, status)
}

func (s *HandlerTestSuite) TestCoupons() {
	expiry := time.Now().Add(24 * time.Hour)
	coupons := []domain.Coupon{
		{
			ID:         3,
			UserID:     testUserID,
			TemplateID: 1,
			Template: domain.CouponTemplate{
				ID:            1,
				Name:          "신규 가입 10%",
				DiscountType:  domain.DiscountTypePercent,
				DiscountValue: decimal.NewFromInt(10),
			},
			ExpiryDate: &expiry,
		},
	}
	s.mockCouponService.EXPECT().Usable(gomock.Any(), testUserID).Return(coupons, nil)

	status, body := s.request(http.MethodGet, RouteGroup+CouponsRoute, nil, asUser(s.userToken))
	s.Require().Equal(http.StatusOK, status)

	var resp []CouponResponse
	s.Require().NoError(json.Unmarshal(body, &resp))
	s.Require().Len(resp, 1)
	s.Equal(domain.DiscountTypePercent, resp[0].DiscountType)
	s.Equal("신규 가입 10%", resp[0].Name)
}
