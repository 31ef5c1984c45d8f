package events

import (
	"context"

	"github.com/fsdevblog/consulting-checkout/internal/domain"
	"github.com/sirupsen/logrus"
)

// LogNotifier пишет события в лог. Используется, когда брокер не сконфигурирован.
type LogNotifier struct {
	l *logrus.Entry
}

func NewLogNotifier(l *logrus.Logger) *LogNotifier {
	return &LogNotifier{l: l.WithField("component", "events_log")}
}

func (n *LogNotifier) ClearCart(_ context.Context, owner domain.Owner, orderID int64) error {
	n.l.WithFields(logrus.Fields{
		"event":    QueueCartCleared,
		"order_id": orderID,
		"user_id":  owner.UserID,
	}).Info("cart cleared")
	return nil
}

func (n *LogNotifier) OrderPaid(_ context.Context, order domain.Order) error {
	n.l.WithFields(logrus.Fields{
		"event":      QueueOrderPaid,
		"order_id":   order.ID,
		"order_code": order.Code,
		"total":      order.TotalAmount.String(),
	}).Info("order paid")
	return nil
}
