package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/consulting-checkout/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const DefaultGatewayTimeout = 10 * time.Second

// CheckoutService подтверждение и отмена платежей, пришедших от платежных шлюзов.
type CheckoutService struct {
	orders         OrderFinalizer
	gateways       map[string]PaymentGateway
	gatewayTimeout time.Duration
	l              *logrus.Entry
}

func NewCheckoutService(
	orders OrderFinalizer,
	gateways map[string]PaymentGateway,
	gatewayTimeout time.Duration,
	l *logrus.Logger,
) *CheckoutService {
	if gatewayTimeout <= 0 {
		gatewayTimeout = DefaultGatewayTimeout
	}
	return &CheckoutService{
		orders:         orders,
		gateways:       gateways,
		gatewayTimeout: gatewayTimeout,
		l:              l.WithField("component", "checkout_service"),
	}
}

// PaymentConfirmation параметры, с которыми шлюз вернул покупателя после оплаты.
type PaymentConfirmation struct {
	PaymentKey string
	OrderCode  string
	Amount     decimal.Decimal
}

// PaymentFailure параметры отказа или отмены платежа.
type PaymentFailure struct {
	OrderCode string
	Code      string
	Message   string
}

// ConfirmPayment подтверждает платеж и фиксирует оплату заказа.
//
// Алгоритм работы:
//  1. Находит заказ по коду. Уже оплаченный заказ возвращается без обращения к шлюзу.
//  2. Пересчитывает сумму заказа. При расхождении с суммой шлюза возвращает *domain.AmountMismatchError
//     до подтверждения платежа в шлюзе.
//  3. Подтверждает платеж в шлюзе с ограничением по времени и запоминает ключ платежа. Если ключ уже
//     сохранен предыдущей попыткой, шлюз повторно не вызывается.
//  4. Фиксирует оплату через FinalizeOrder.
func (s *CheckoutService) ConfirmPayment(
	ctx context.Context,
	gatewayName string,
	args PaymentConfirmation,
) (*domain.Order, error) {
	gateway, err := s.gateway(gatewayName)
	if err != nil {
		return nil, err
	}

	order, err := s.orders.GetByCode(ctx, args.OrderCode)
	if err != nil {
		return nil, fmt.Errorf("confirm payment: %w", err)
	}
	return s.confirm(ctx, gateway, order, args)
}

// ConfirmOwnedOrder подтверждает платеж по заказу владельца. Используется, когда покупатель сам
// сообщает о завершении оплаты.
func (s *CheckoutService) ConfirmOwnedOrder(
	ctx context.Context,
	owner domain.Owner,
	orderID int64,
	gatewayName string,
	paymentKey string,
	amount decimal.Decimal,
) (*domain.Order, error) {
	gateway, err := s.gateway(gatewayName)
	if err != nil {
		return nil, err
	}

	order, err := s.orders.Get(ctx, owner, orderID)
	if err != nil {
		return nil, fmt.Errorf("confirm payment: %w", err)
	}
	return s.confirm(ctx, gateway, order, PaymentConfirmation{
		PaymentKey: paymentKey,
		OrderCode:  order.Code,
		Amount:     amount,
	})
}

// FailPayment фиксирует отказ или отмену платежа.
func (s *CheckoutService) FailPayment(ctx context.Context, gatewayName string, args PaymentFailure) error {
	if _, err := s.gateway(gatewayName); err != nil {
		return err
	}

	order, err := s.orders.GetByCode(ctx, args.OrderCode)
	if err != nil {
		return fmt.Errorf("fail payment: %w", err)
	}

	s.l.WithFields(logrus.Fields{
		"gateway":  gatewayName,
		"order_id": order.ID,
		"code":     args.Code,
		"message":  args.Message,
	}).Info("payment failed")

	if err = s.orders.FailPayment(ctx, order.ID); err != nil {
		return err //nolint:wrapcheck
	}
	return nil
}

func (s *CheckoutService) confirm(
	ctx context.Context,
	gateway PaymentGateway,
	order *domain.Order,
	args PaymentConfirmation,
) (*domain.Order, error) {
	switch order.Status {
	case domain.OrderStatusPaid:
		return order, nil
	case domain.OrderStatusRefunded:
		return nil, fmt.Errorf("confirm payment for order %d: %w", order.ID, domain.ErrOrderAlreadyFinalized)
	case domain.OrderStatusPendingPayment:
	default:
		return nil, fmt.Errorf(
			"confirm payment for order %d in status %s: %w", order.ID, order.Status, domain.ErrInvalidOrderState,
		)
	}

	quote, err := s.orders.RecomputeQuote(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("confirm payment: %w", err)
	}
	if !quote.Total.Equal(args.Amount) {
		s.l.WithFields(logrus.Fields{
			"order_id":   order.ID,
			"order_code": order.Code,
			"expected":   quote.Total.String(),
			"got":        args.Amount.String(),
		}).Warn("payment amount mismatch before gateway confirmation")
		return nil, domain.NewAmountMismatchError(order.ID, quote.Total, args.Amount)
	}

	if order.PaymentKey == nil || *order.PaymentKey != args.PaymentKey {
		if err = s.confirmWithGateway(ctx, gateway, order, args); err != nil {
			return nil, err
		}
		// Заказ мог уже оплатить параллельный запрос, итог определит FinalizeOrder.
		if err = s.orders.RecordPaymentKey(ctx, order.ID, args.PaymentKey); err != nil {
			s.l.WithError(err).WithField("order_id", order.ID).Warn("failed to record payment key")
		}
	}

	paid, err := s.orders.FinalizeOrder(ctx, order.ID, args.PaymentKey, args.Amount)
	if err != nil {
		s.logCapturedNotFinalized(order, args, err)
		return nil, err //nolint:wrapcheck
	}
	return paid, nil
}

// confirmWithGateway подтверждает платеж в шлюзе. Ответ о том, что платеж уже подтвержден, считается успехом.
func (s *CheckoutService) confirmWithGateway(
	ctx context.Context,
	gateway PaymentGateway,
	order *domain.Order,
	args PaymentConfirmation,
) error {
	gwCtx, cancel := context.WithTimeout(ctx, s.gatewayTimeout)
	defer cancel()

	err := gateway.Confirm(gwCtx, args.PaymentKey, args.OrderCode, args.Amount)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrPaymentAlreadyConfirmed):
		s.l.WithField("order_id", order.ID).Info("payment already confirmed by gateway")
		return nil
	case errors.Is(err, context.DeadlineExceeded):
		err = fmt.Errorf("%w: %w", domain.ErrGatewayUnavailable, err)
	}
	return fmt.Errorf("confirm payment for order %d: %w", order.ID, err)
}

// logCapturedNotFinalized пишет в лог платеж, который шлюз уже провел, а заказ не перешел в paid.
// Такие платежи разбираются вручную.
func (s *CheckoutService) logCapturedNotFinalized(order *domain.Order, args PaymentConfirmation, err error) {
	if errors.Is(err, domain.ErrOrderAlreadyFinalized) {
		return
	}
	fields := logrus.Fields{
		"order_id":    order.ID,
		"order_code":  order.Code,
		"payment_key": args.PaymentKey,
		"amount":      args.Amount.String(),
	}
	if order.UserID != nil {
		fields["user_id"] = *order.UserID
	}
	s.l.WithError(err).WithFields(fields).
		Error("payment confirmed by gateway but order not finalized, manual review required")
}

func (s *CheckoutService) gateway(name string) (PaymentGateway, error) {
	gateway, ok := s.gateways[name]
	if !ok {
		return nil, fmt.Errorf("payment gateway %q: %w", name, domain.ErrRecordNotFound)
	}
	return gateway, nil
}
