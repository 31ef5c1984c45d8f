package api

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/fsdevblog/consulting-checkout/internal/domain"
	"github.com/fsdevblog/consulting-checkout/internal/service"
	"github.com/fsdevblog/consulting-checkout/internal/transport/api/testutils"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
)

func cartOrder(owner domain.Owner) *domain.Order {
	order := &domain.Order{
		ID:          10,
		Code:        "code-10",
		Status:      domain.OrderStatusCart,
		Subtotal:    decimal.NewFromInt(100000),
		TotalAmount: decimal.NewFromInt(100000),
		Items: []domain.OrderItem{
			{ID: 1, OrderID: 10, ScheduleID: 5, Quantity: 2, UnitPrice: decimal.NewFromInt(50000)},
		},
	}
	if owner.UserID != 0 {
		order.UserID = &owner.UserID
	} else {
		order.GuestToken = &owner.GuestToken
	}
	return order
}

func (s *HandlerTestSuite) TestAddToCart() {
	user := domain.Owner{UserID: testUserID}
	guest := domain.Owner{GuestToken: testGuestToken}

	s.mockOrderService.EXPECT().
		AddItem(gomock.Any(), user, service.AddItemArgs{ScheduleID: 5, Quantity: 2}).
		Return(cartOrder(user), nil)
	s.mockOrderService.EXPECT().
		AddItem(gomock.Any(), guest, service.AddItemArgs{ScheduleID: 5, Quantity: 2}).
		Return(cartOrder(guest), nil)
	s.mockOrderService.EXPECT().
		AddItem(gomock.Any(), user, service.AddItemArgs{ScheduleID: 5, Quantity: -1}).
		Return(nil, fmt.Errorf("add item: %w", domain.ErrInvalidQuantity))
	s.mockOrderService.EXPECT().
		AddItem(gomock.Any(), user, service.AddItemArgs{ScheduleID: 6, Quantity: 1}).
		Return(nil, fmt.Errorf("add item: %w", domain.ErrScheduleUnavailable))

	cases := []struct {
		name     string
		body     any
		opts     []func(*testutils.RequestOptions)
		want     int
		wantCode string
	}{
		{
			name: "user cart",
			body: AddItemParams{ScheduleID: 5, Quantity: 2},
			opts: []func(*testutils.RequestOptions){asUser(s.userToken)},
			want: http.StatusOK,
		},
		{
			name: "guest cart",
			body: AddItemParams{ScheduleID: 5, Quantity: 2},
			opts: []func(*testutils.RequestOptions){asGuest()},
			want: http.StatusOK,
		},
		{
			name:     "invalid quantity",
			body:     AddItemParams{ScheduleID: 5, Quantity: -1},
			opts:     []func(*testutils.RequestOptions){asUser(s.userToken)},
			want:     http.StatusUnprocessableEntity,
			wantCode: "INVALID_QUANTITY",
		},
		{
			name:     "schedule unavailable",
			body:     AddItemParams{ScheduleID: 6, Quantity: 1},
			opts:     []func(*testutils.RequestOptions){asUser(s.userToken)},
			want:     http.StatusUnprocessableEntity,
			wantCode: "SCHEDULE_UNAVAILABLE",
		},
		{
			name:     "quantity above limit",
			body:     AddItemParams{ScheduleID: 5, Quantity: math.MaxInt32},
			opts:     []func(*testutils.RequestOptions){asUser(s.userToken)},
			want:     http.StatusUnprocessableEntity,
			wantCode: "VALIDATION_FAILED",
		},
		{
			name:     "missing schedule",
			body:     `{"quantity": 1}`,
			opts:     []func(*testutils.RequestOptions){asUser(s.userToken)},
			want:     http.StatusUnprocessableEntity,
			wantCode: "VALIDATION_FAILED",
		},
		{
			name:     "unknown field",
			body:     `{"schedule_id": 5, "quantity": 1, "price": 1}`,
			opts:     []func(*testutils.RequestOptions){asUser(s.userToken)},
			want:     http.StatusBadRequest,
			wantCode: "BAD_REQUEST",
		},
		{
			name: "anonymous",
			body: AddItemParams{ScheduleID: 5, Quantity: 2},
			want: http.StatusUnauthorized,
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			status, body := s.request(http.MethodPost, RouteGroup+CartItemsRoute, tc.body, tc.opts...)
			s.Require().Equal(tc.want, status, string(body))

			if tc.wantCode != "" {
				s.Equal(tc.wantCode, s.decodeError(body).Code)
				return
			}
			if status != http.StatusOK {
				return
			}
			var resp CartResponse
			s.Require().NoError(json.Unmarshal(body, &resp))
			s.Equal(int64(10), resp.Order.ID)
			s.Require().Len(resp.Order.Items, 1)
			s.True(resp.Order.Items[0].LineTotal.Equal(decimal.NewFromInt(100000)))
			s.True(resp.Quote.Total.Equal(decimal.NewFromInt(100000)))
		})
	}
}

func (s *HandlerTestSuite) TestAddItemToOrder() {
	user := domain.Owner{UserID: testUserID}

	s.mockOrderService.EXPECT().
		AddItem(gomock.Any(), user, service.AddItemArgs{OrderID: 10, ScheduleID: 5, Quantity: 1}).
		Return(cartOrder(user), nil)
	s.mockOrderService.EXPECT().
		AddItem(gomock.Any(), user, service.AddItemArgs{OrderID: 11, ScheduleID: 5, Quantity: 1}).
		Return(nil, domain.ErrRecordNotFound)
	s.mockOrderService.EXPECT().
		AddItem(gomock.Any(), user, service.AddItemArgs{OrderID: 12, ScheduleID: 5, Quantity: 1}).
		Return(nil, domain.ErrInvalidOrderState)

	cases := []struct {
		url  string
		want int
	}{
		{url: "/orders/10/items", want: http.StatusOK},
		{url: "/orders/11/items", want: http.StatusNotFound},
		{url: "/orders/12/items", want: http.StatusConflict},
		{url: "/orders/abc/items", want: http.StatusNotFound},
	}
	for _, tc := range cases {
		s.Run(tc.url, func() {
			status, _ := s.request(
				http.MethodPost,
				RouteGroup+tc.url,
				AddItemParams{ScheduleID: 5, Quantity: 1},
				asUser(s.userToken),
			)
			s.Equal(tc.want, status)
		})
	}
}

func (s *HandlerTestSuite) TestCartLineMutations() {
	guest := domain.Owner{GuestToken: testGuestToken}

	s.mockOrderService.EXPECT().UpdateItemQuantity(gomock.Any(), guest, int64(10), int64(1), int32(3)).
		Return(cartOrder(guest), nil)
	s.mockOrderService.EXPECT().RemoveItem(gomock.Any(), guest, int64(10), int64(1)).
		Return(cartOrder(guest), nil)
	s.mockOrderService.EXPECT().ClearItems(gomock.Any(), guest, int64(10)).
		Return(&domain.Order{ID: 10, Status: domain.OrderStatusCart, GuestToken: &guest.GuestToken}, nil)

	status, _ := s.request(http.MethodPatch, RouteGroup+"/orders/10/items/1", UpdateItemParams{Quantity: 3}, asGuest())
	s.Equal(http.StatusOK, status)

	status, body := s.request(
		http.MethodPatch, RouteGroup+"/orders/10/items/1", UpdateItemParams{Quantity: math.MaxInt32}, asGuest(),
	)
	s.Require().Equal(http.StatusUnprocessableEntity, status)
	s.Equal("VALIDATION_FAILED", s.decodeError(body).Code)

	status, _ = s.request(http.MethodDelete, RouteGroup+"/orders/10/items/1", nil, asGuest())
	s.Equal(http.StatusOK, status)

	status, body = s.request(http.MethodDelete, RouteGroup+"/orders/10/items", nil, asGuest())
	s.Require().Equal(http.StatusOK, status)

	var resp CartResponse
	s.Require().NoError(json.Unmarshal(body, &resp))
	s.Empty(resp.Order.Items)
	s.True(resp.Quote.Total.IsZero())
}

func (s *HandlerTestSuite) TestQuote() {
	user := domain.Owner{UserID: testUserID}
	couponID := int64(3)

	quote := &domain.Quote{
		Subtotal:       decimal.NewFromInt(100000),
		CouponID:       &couponID,
		CouponDiscount: decimal.NewFromInt(10000),
		UsedPoint:      decimal.NewFromInt(5000),
		Total:          decimal.NewFromInt(85000),
	}
	s.mockOrderService.EXPECT().
		ComputeQuote(gomock.Any(), user, int64(10), service.QuoteArgs{CouponID: &couponID, Point: decimal.NewFromInt(5000)}).
		Return(quote, nil).Times(2)
	s.mockOrderService.EXPECT().
		ComputeQuote(gomock.Any(), user, int64(10), service.QuoteArgs{Point: decimal.NewFromInt(999999)}).
		Return(nil, domain.ErrInsufficientBalance)

	// повторный расчет дает тот же результат.
	for range 2 {
		status, body := s.request(http.MethodGet, RouteGroup+"/orders/10/quote?coupon_id=3&point=5000", nil,
			asUser(s.userToken))
		s.Require().Equal(http.StatusOK, status)

		var resp QuoteResponse
		s.Require().NoError(json.Unmarshal(body, &resp))
		s.True(resp.Total.Equal(decimal.NewFromInt(85000)))
		s.True(resp.CouponDiscount.Equal(decimal.NewFromInt(10000)))
	}

	status, body := s.request(http.MethodGet, RouteGroup+"/orders/10/quote?point=999999", nil, asUser(s.userToken))
	s.Equal(http.StatusPaymentRequired, status)
	s.Equal("INSUFFICIENT_BALANCE", s.decodeError(body).Code)

	status, _ = s.request(http.MethodGet, RouteGroup+"/orders/10/quote?point=abc", nil, asUser(s.userToken))
	s.Equal(http.StatusUnprocessableEntity, status)
}

func (s *HandlerTestSuite) TestCheckout() {
	user := domain.Owner{UserID: testUserID}
	couponID := int64(3)

	pending := cartOrder(user)
	pending.Status = domain.OrderStatusPendingPayment
	pending.TotalAmount = decimal.NewFromInt(85000)

	s.mockOrderService.EXPECT().
		Checkout(gomock.Any(), user, int64(10), service.QuoteArgs{CouponID: &couponID, Point: decimal.NewFromInt(5000)}).
		Return(&service.CheckoutResult{
			Order:     pending,
			OrderCode: pending.Code,
			Amount:    pending.TotalAmount,
			OrderName: "상담 외 1건",
		}, nil)
	s.mockOrderService.EXPECT().
		Checkout(gomock.Any(), user, int64(11), service.QuoteArgs{}).
		Return(nil, domain.ErrEmptyOrder)

	status, body := s.request(http.MethodPost, RouteGroup+"/orders/10/checkout",
		`{"coupon_id": 3, "point": 5000}`, asUser(s.userToken))
	s.Require().Equal(http.StatusOK, status, string(body))

	var resp CheckoutResponse
	s.Require().NoError(json.Unmarshal(body, &resp))
	s.Equal("code-10", resp.OrderCode)
	s.True(resp.Amount.Equal(decimal.NewFromInt(85000)))
	s.Equal(domain.OrderStatusPendingPayment, resp.Order.Status)

	status, body = s.request(http.MethodPost, RouteGroup+"/orders/11/checkout", `{}`, asUser(s.userToken))
	s.Equal(http.StatusUnprocessableEntity, status)
	s.Equal("EMPTY_ORDER", s.decodeError(body).Code)

	// дробные баллы отклоняются до вызова сервиса.
	status, _ = s.request(http.MethodPost, RouteGroup+"/orders/10/checkout", `{"point": 10.5}`, asUser(s.userToken))
	s.Equal(http.StatusUnprocessableEntity, status)
}

func (s *HandlerTestSuite) TestFinalize() {
	user := domain.Owner{UserID: testUserID}
	paidAt := time.Now()

	paid := cartOrder(user)
	paid.Status = domain.OrderStatusPaid
	paid.PaidAt = &paidAt

	amount := decimal.NewFromInt(85000)
	s.mockCheckoutService.EXPECT().
		ConfirmOwnedOrder(gomock.Any(), user, int64(10), DefaultGateway, "pk_1", amount).
		Return(paid, nil)
	s.mockCheckoutService.EXPECT().
		ConfirmOwnedOrder(gomock.Any(), user, int64(11), DefaultGateway, "pk_1", decimal.NewFromInt(90000)).
		Return(nil, domain.NewAmountMismatchError(11, amount, decimal.NewFromInt(90000)))
	s.mockCheckoutService.EXPECT().
		ConfirmOwnedOrder(gomock.Any(), user, int64(12), DefaultGateway, "pk_1", amount).
		Return(nil, fmt.Errorf("confirm: %w", domain.ErrGatewayUnavailable))

	status, body := s.request(http.MethodPut, RouteGroup+"/orders/10",
		FinalizeParams{PaymentKey: "pk_1", Amount: amount}, asUser(s.userToken))
	s.Require().Equal(http.StatusOK, status, string(body))

	var resp OrderResponse
	s.Require().NoError(json.Unmarshal(body, &resp))
	s.Equal(domain.OrderStatusPaid, resp.Status)

	status, body = s.request(http.MethodPut, RouteGroup+"/orders/11",
		FinalizeParams{PaymentKey: "pk_1", Amount: decimal.NewFromInt(90000)}, asUser(s.userToken))
	s.Equal(http.StatusConflict, status)
	errResp := s.decodeError(body)
	s.Equal("AMOUNT_MISMATCH", errResp.Code)
	s.False(errResp.Retryable)

	status, body = s.request(http.MethodPut, RouteGroup+"/orders/12",
		FinalizeParams{PaymentKey: "pk_1", Amount: amount}, asUser(s.userToken))
	s.Equal(http.StatusServiceUnavailable, status)
	s.True(s.decodeError(body).Retryable)
}

func (s *HandlerTestSuite) TestShowAndIndex() {
	user := domain.Owner{UserID: testUserID}

	s.mockOrderService.EXPECT().Get(gomock.Any(), user, int64(10)).Return(cartOrder(user), nil)
	s.mockOrderService.EXPECT().Get(gomock.Any(), user, int64(99)).Return(nil, domain.ErrRecordNotFound)
	s.mockOrderService.EXPECT().List(gomock.Any(), testUserID).Return([]domain.Order{*cartOrder(user)}, nil)

	status, _ := s.request(http.MethodGet, RouteGroup+"/orders/10", nil, asUser(s.userToken))
	s.Equal(http.StatusOK, status)

	status, body := s.request(http.MethodGet, RouteGroup+"/orders/99", nil, asUser(s.userToken))
	s.Equal(http.StatusNotFound, status)
	s.Equal("NOT_FOUND", s.decodeError(body).Code)

	status, body = s.request(http.MethodGet, RouteGroup+OrdersRoute, nil, asUser(s.userToken))
	s.Require().Equal(http.StatusOK, status)
	var orders []OrderResponse
	s.Require().NoError(json.Unmarshal(body, &orders))
	s.Len(orders, 1)
}

func (s *HandlerTestSuite) TestReopen() {
	guest := domain.Owner{GuestToken: testGuestToken}

	s.mockOrderService.EXPECT().Reopen(gomock.Any(), guest, int64(10)).Return(cartOrder(guest), nil)
	s.mockOrderService.EXPECT().Reopen(gomock.Any(), guest, int64(11)).Return(nil, domain.ErrOwnerConflict)

	status, _ := s.request(http.MethodPost, RouteGroup+"/orders/10/reopen", nil, asGuest())
	s.Equal(http.StatusOK, status)

	status, body := s.request(http.MethodPost, RouteGroup+"/orders/11/reopen", nil, asGuest())
	s.Equal(http.StatusConflict, status)
	s.Equal("OWNER_CONFLICT", s.decodeError(body).Code)
}
