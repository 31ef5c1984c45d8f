package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/fsdevblog/consulting-checkout/internal/domain"
	"github.com/fsdevblog/consulting-checkout/internal/service"
	"github.com/fsdevblog/consulting-checkout/internal/transport/gateway/toss"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
)

func (s *HandlerTestSuite) TestPaymentConfirm() {
	paid := &domain.Order{ID: 10, Code: "code-10", Status: domain.OrderStatusPaid, TotalAmount: decimal.NewFromInt(85000)}

	confirmation := func(code string, amount int64) service.PaymentConfirmation {
		return service.PaymentConfirmation{PaymentKey: "pk_1", OrderCode: code, Amount: decimal.NewFromInt(amount)}
	}
	s.mockCheckoutService.EXPECT().ConfirmPayment(gomock.Any(), "toss", confirmation("code-10", 85000)).
		Return(paid, nil).Times(2)
	s.mockCheckoutService.EXPECT().ConfirmPayment(gomock.Any(), "toss", confirmation("code-11", 90000)).
		Return(nil, domain.NewAmountMismatchError(11, decimal.NewFromInt(85000), decimal.NewFromInt(90000)))
	s.mockCheckoutService.EXPECT().ConfirmPayment(gomock.Any(), "toss", confirmation("code-12", 85000)).
		Return(nil, fmt.Errorf("finalize: %w", domain.ErrOrderAlreadyFinalized))
	s.mockCheckoutService.EXPECT().ConfirmPayment(gomock.Any(), "toss", confirmation("code-13", 85000)).
		Return(nil, fmt.Errorf("confirm: %w", toss.NewRejectedError(400, "REJECT_CARD_PAYMENT", "한도초과")))
	s.mockCheckoutService.EXPECT().ConfirmPayment(gomock.Any(), "paypal", confirmation("code-10", 85000)).
		Return(nil, fmt.Errorf("gateway paypal: %w", domain.ErrRecordNotFound))

	cases := []struct {
		name        string
		method      string
		url         string
		body        any
		want        int
		wantSuccess bool
		wantCode    string
	}{
		{
			name:        "confirm by body",
			method:      http.MethodPost,
			url:         "/payments/toss/confirm",
			body:        `{"paymentKey":"pk_1","orderId":"code-10","amount":85000}`,
			want:        http.StatusOK,
			wantSuccess: true,
		},
		{
			name:        "confirm by redirect query",
			method:      http.MethodGet,
			url:         "/payments/toss/confirm?paymentKey=pk_1&orderId=code-10&amount=85000&paymentType=NORMAL",
			want:        http.StatusOK,
			wantSuccess: true,
		},
		{
			name:     "amount mismatch",
			method:   http.MethodPost,
			url:      "/payments/toss/confirm",
			body:     `{"paymentKey":"pk_1","orderId":"code-11","amount":90000}`,
			want:     http.StatusConflict,
			wantCode: "AMOUNT_MISMATCH",
		},
		{
			name:        "repeated callback",
			method:      http.MethodPost,
			url:         "/payments/toss/confirm",
			body:        `{"paymentKey":"pk_1","orderId":"code-12","amount":85000}`,
			want:        http.StatusOK,
			wantSuccess: true,
		},
		{
			name:     "rejected by gateway",
			method:   http.MethodPost,
			url:      "/payments/toss/confirm",
			body:     `{"paymentKey":"pk_1","orderId":"code-13","amount":85000}`,
			want:     http.StatusPaymentRequired,
			wantCode: "REJECT_CARD_PAYMENT",
		},
		{
			name:     "unknown gateway",
			method:   http.MethodPost,
			url:      "/payments/paypal/confirm",
			body:     `{"paymentKey":"pk_1","orderId":"code-10","amount":85000}`,
			want:     http.StatusNotFound,
			wantCode: "NOT_FOUND",
		},
		{
			name:     "missing payment key",
			method:   http.MethodPost,
			url:      "/payments/toss/confirm",
			body:     `{"orderId":"code-10","amount":85000}`,
			want:     http.StatusUnprocessableEntity,
			wantCode: "VALIDATION_FAILED",
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			status, body := s.request(tc.method, RouteGroup+tc.url, tc.body)
			s.Require().Equal(tc.want, status, string(body))

			if tc.wantCode == "VALIDATION_FAILED" {
				s.Equal(tc.wantCode, s.decodeError(body).Code)
				return
			}

			var resp PaymentResponse
			s.Require().NoError(json.Unmarshal(body, &resp))
			s.Equal(tc.wantSuccess, resp.Success)
			if tc.wantCode != "" {
				s.Require().NotNil(resp.Error)
				s.Equal(tc.wantCode, resp.Error.Code)
			}
		})
	}
}

func (s *HandlerTestSuite) TestPaymentFail() {
	s.mockCheckoutService.EXPECT().FailPayment(gomock.Any(), "toss", service.PaymentFailure{
		OrderCode: "code-10",
		Code:      "PAY_PROCESS_CANCELED",
		Message:   "사용자에 의해 결제가 취소되었습니다",
	}).Return(nil)
	s.mockCheckoutService.EXPECT().FailPayment(gomock.Any(), "toss", service.PaymentFailure{OrderCode: "code-11"}).
		Return(domain.ErrOrderAlreadyFinalized)

	status, _ := s.request(http.MethodPost, RouteGroup+"/payments/toss/fail",
		FailParams{OrderID: "code-10", Code: "PAY_PROCESS_CANCELED", Message: "사용자에 의해 결제가 취소되었습니다"})
	s.Equal(http.StatusOK, status)

	status, body := s.request(http.MethodGet, RouteGroup+"/payments/toss/fail?orderId=code-11", nil)
	s.Equal(http.StatusConflict, status)

	var resp PaymentResponse
	s.Require().NoError(json.Unmarshal(body, &resp))
	s.False(resp.Success)
	s.Equal("ORDER_ALREADY_FINALIZED", resp.Error.Code)
}
