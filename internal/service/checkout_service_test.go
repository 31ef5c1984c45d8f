package service

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/fsdevblog/consulting-checkout/internal/domain"
	"github.com/fsdevblog/consulting-checkout/internal/logger"
	"github.com/fsdevblog/consulting-checkout/internal/service/mocks"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CheckoutServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockOrders      *mocks.MockOrderFinalizer
	mockGateway     *mocks.MockPaymentGateway
	checkoutService *CheckoutService
}

func TestCheckoutServiceSuite(t *testing.T) {
	suite.Run(t, new(CheckoutServiceTestSuite))
}

func (s *CheckoutServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockOrders = mocks.NewMockOrderFinalizer(s.mockCtrl)
	s.mockGateway = mocks.NewMockPaymentGateway(s.mockCtrl)
	s.checkoutService = NewCheckoutService(
		s.mockOrders,
		map[string]PaymentGateway{"toss": s.mockGateway},
		time.Second,
		logger.New(io.Discard),
	)
}

func (s *CheckoutServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *CheckoutServiceTestSuite) pendingOrder() *domain.Order {
	return &domain.Order{
		ID:          testOrderID,
		Code:        "9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d",
		UserID:      ptr(testUserID),
		Status:      domain.OrderStatusPendingPayment,
		TotalAmount: dec(85000),
	}
}

func (s *CheckoutServiceTestSuite) TestConfirmPayment() {
	order := s.pendingOrder()
	confirmation := PaymentConfirmation{PaymentKey: "pk_1", OrderCode: order.Code, Amount: dec(85000)}
	paid := *order
	paid.Status = domain.OrderStatusPaid

	gomock.InOrder(
		s.mockOrders.EXPECT().GetByCode(gomock.Any(), order.Code).Return(order, nil),
		s.mockOrders.EXPECT().RecomputeQuote(gomock.Any(), order).Return(&domain.Quote{Total: dec(85000)}, nil),
		s.mockGateway.EXPECT().Confirm(gomock.Any(), "pk_1", order.Code, gomock.Any()).
			DoAndReturn(func(ctx context.Context, _, _ string, amount decimal.Decimal) error {
				_, hasDeadline := ctx.Deadline()
				s.True(hasDeadline)
				s.True(amount.Equal(dec(85000)))
				return nil
			}),
		s.mockOrders.EXPECT().RecordPaymentKey(gomock.Any(), testOrderID, "pk_1").Return(nil),
		s.mockOrders.EXPECT().FinalizeOrder(gomock.Any(), testOrderID, "pk_1", gomock.Any()).Return(&paid, nil),
	)

	res, err := s.checkoutService.ConfirmPayment(s.T().Context(), "toss", confirmation)
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusPaid, res.Status)
}

func (s *CheckoutServiceTestSuite) TestConfirmPaymentAlreadyPaid() {
	order := s.pendingOrder()
	order.Status = domain.OrderStatusPaid
	s.mockOrders.EXPECT().GetByCode(gomock.Any(), order.Code).Return(order, nil)
	s.mockGateway.EXPECT().Confirm(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	s.mockOrders.EXPECT().FinalizeOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	res, err := s.checkoutService.ConfirmPayment(s.T().Context(), "toss", PaymentConfirmation{
		PaymentKey: "pk_1",
		OrderCode:  order.Code,
		Amount:     dec(85000),
	})
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusPaid, res.Status)
}

func (s *CheckoutServiceTestSuite) TestConfirmPaymentAmountMismatch() {
	order := s.pendingOrder()
	s.mockOrders.EXPECT().GetByCode(gomock.Any(), order.Code).Return(order, nil)
	s.mockOrders.EXPECT().RecomputeQuote(gomock.Any(), order).Return(&domain.Quote{Total: dec(85000)}, nil)
	s.mockGateway.EXPECT().Confirm(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	s.mockOrders.EXPECT().FinalizeOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := s.checkoutService.ConfirmPayment(s.T().Context(), "toss", PaymentConfirmation{
		PaymentKey: "pk_1",
		OrderCode:  order.Code,
		Amount:     dec(90000),
	})
	s.Require().ErrorIs(err, domain.ErrAmountMismatch)
}

func (s *CheckoutServiceTestSuite) TestConfirmPaymentGatewayErrors() {
	cases := []struct {
		name       string
		gatewayErr error
		wantErr    error
	}{
		{
			name:       "unavailable",
			gatewayErr: fmt.Errorf("status 503: %w", domain.ErrGatewayUnavailable),
			wantErr:    domain.ErrGatewayUnavailable,
		},
		{
			name:       "timeout",
			gatewayErr: context.DeadlineExceeded,
			wantErr:    domain.ErrGatewayUnavailable,
		},
		{
			name:       "rejected",
			gatewayErr: fmt.Errorf("REJECT_CARD_PAYMENT: %w", domain.ErrPaymentRejected),
			wantErr:    domain.ErrPaymentRejected,
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.SetupTest()
			order := s.pendingOrder()
			s.mockOrders.EXPECT().GetByCode(gomock.Any(), order.Code).Return(order, nil)
			s.mockOrders.EXPECT().RecomputeQuote(gomock.Any(), order).Return(&domain.Quote{Total: dec(85000)}, nil)
			s.mockGateway.EXPECT().Confirm(gomock.Any(), "pk_1", order.Code, gomock.Any()).Return(tc.gatewayErr)
			s.mockOrders.EXPECT().FinalizeOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			_, err := s.checkoutService.ConfirmPayment(s.T().Context(), "toss", PaymentConfirmation{
				PaymentKey: "pk_1",
				OrderCode:  order.Code,
				Amount:     dec(85000),
			})
			s.Require().ErrorIs(err, tc.wantErr)
		})
	}
}

func (s *CheckoutServiceTestSuite) TestConfirmPaymentRejectedBeforeGateway() {
	cases := []struct {
		name    string
		err     error
		wantErr error
	}{
		{name: "points spent in another tab", err: domain.ErrInsufficientBalance, wantErr: domain.ErrInsufficientBalance},
		{name: "sold out", err: domain.ErrScheduleUnavailable, wantErr: domain.ErrScheduleUnavailable},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.SetupTest()
			order := s.pendingOrder()
			s.mockOrders.EXPECT().GetByCode(gomock.Any(), order.Code).Return(order, nil)
			s.mockOrders.EXPECT().RecomputeQuote(gomock.Any(), order).
				Return(nil, fmt.Errorf("recompute quote for order %d: %w", testOrderID, tc.err))
			s.mockGateway.EXPECT().Confirm(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			s.mockOrders.EXPECT().FinalizeOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			_, err := s.checkoutService.ConfirmPayment(s.T().Context(), "toss", PaymentConfirmation{
				PaymentKey: "pk_1",
				OrderCode:  order.Code,
				Amount:     dec(85000),
			})
			s.Require().ErrorIs(err, tc.wantErr)
		})
	}
}

func (s *CheckoutServiceTestSuite) TestConfirmPaymentRetryAfterFinalizeFailure() {
	order := s.pendingOrder()
	confirmation := PaymentConfirmation{PaymentKey: "pk_1", OrderCode: order.Code, Amount: dec(85000)}
	paid := *order
	paid.Status = domain.OrderStatusPaid

	// первая попытка: шлюз провел платеж, база не ответила
	s.mockOrders.EXPECT().GetByCode(gomock.Any(), order.Code).Return(order, nil)
	s.mockOrders.EXPECT().RecomputeQuote(gomock.Any(), gomock.Any()).Return(&domain.Quote{Total: dec(85000)}, nil).Times(2)
	s.mockGateway.EXPECT().Confirm(gomock.Any(), "pk_1", order.Code, gomock.Any()).Return(nil).Times(1)
	s.mockOrders.EXPECT().RecordPaymentKey(gomock.Any(), testOrderID, "pk_1").Return(nil).Times(1)
	s.mockOrders.EXPECT().FinalizeOrder(gomock.Any(), testOrderID, "pk_1", gomock.Any()).
		Return(nil, fmt.Errorf("finalize order %d: %w", testOrderID, domain.ErrUnknown))

	_, err := s.checkoutService.ConfirmPayment(s.T().Context(), "toss", confirmation)
	s.Require().ErrorIs(err, domain.ErrUnknown)

	// повтор: ключ платежа сохранен, шлюз второй раз не вызывается
	retried := *order
	retried.PaymentKey = ptr("pk_1")
	s.mockOrders.EXPECT().GetByCode(gomock.Any(), order.Code).Return(&retried, nil)
	s.mockOrders.EXPECT().FinalizeOrder(gomock.Any(), testOrderID, "pk_1", gomock.Any()).Return(&paid, nil)

	res, err := s.checkoutService.ConfirmPayment(s.T().Context(), "toss", confirmation)
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusPaid, res.Status)
}

func (s *CheckoutServiceTestSuite) TestConfirmPaymentAlreadyConfirmedByGateway() {
	owner := domain.Owner{UserID: testUserID}
	order := s.pendingOrder()
	paid := *order
	paid.Status = domain.OrderStatusPaid

	// редирект шлюза успел оплатить заказ раньше запроса покупателя
	s.mockOrders.EXPECT().Get(gomock.Any(), owner, testOrderID).Return(order, nil)
	s.mockOrders.EXPECT().RecomputeQuote(gomock.Any(), order).Return(&domain.Quote{Total: dec(85000)}, nil)
	s.mockGateway.EXPECT().Confirm(gomock.Any(), "pk_1", order.Code, gomock.Any()).
		Return(fmt.Errorf("ALREADY_PROCESSED_PAYMENT: %w", domain.ErrPaymentAlreadyConfirmed))
	s.mockOrders.EXPECT().RecordPaymentKey(gomock.Any(), testOrderID, "pk_1").Return(domain.ErrRecordNotFound)
	s.mockOrders.EXPECT().FinalizeOrder(gomock.Any(), testOrderID, "pk_1", gomock.Any()).Return(&paid, nil)

	res, err := s.checkoutService.ConfirmOwnedOrder(s.T().Context(), owner, testOrderID, "toss", "pk_1", dec(85000))
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusPaid, res.Status)
}

func (s *CheckoutServiceTestSuite) TestConfirmPaymentUnknownGateway() {
	_, err := s.checkoutService.ConfirmPayment(s.T().Context(), "paypal", PaymentConfirmation{})
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *CheckoutServiceTestSuite) TestConfirmOwnedOrder() {
	owner := domain.Owner{UserID: testUserID}
	order := s.pendingOrder()
	paid := *order
	paid.Status = domain.OrderStatusPaid

	s.mockOrders.EXPECT().Get(gomock.Any(), owner, testOrderID).Return(order, nil)
	s.mockOrders.EXPECT().RecomputeQuote(gomock.Any(), order).Return(&domain.Quote{Total: dec(85000)}, nil)
	s.mockGateway.EXPECT().Confirm(gomock.Any(), "pk_1", order.Code, gomock.Any()).Return(nil)
	s.mockOrders.EXPECT().RecordPaymentKey(gomock.Any(), testOrderID, "pk_1").Return(nil)
	s.mockOrders.EXPECT().FinalizeOrder(gomock.Any(), testOrderID, "pk_1", gomock.Any()).Return(&paid, nil)

	res, err := s.checkoutService.ConfirmOwnedOrder(s.T().Context(), owner, testOrderID, "toss", "pk_1", dec(85000))
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusPaid, res.Status)
}

func (s *CheckoutServiceTestSuite) TestFailPayment() {
	order := s.pendingOrder()
	s.mockOrders.EXPECT().GetByCode(gomock.Any(), order.Code).Return(order, nil)
	s.mockOrders.EXPECT().FailPayment(gomock.Any(), testOrderID).Return(nil)

	err := s.checkoutService.FailPayment(s.T().Context(), "toss", PaymentFailure{
		OrderCode: order.Code,
		Code:      "PAY_PROCESS_CANCELED",
		Message:   "사용자에 의해 결제가 취소되었습니다",
	})
	s.Require().NoError(err)
}
