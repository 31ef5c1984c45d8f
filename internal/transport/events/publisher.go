package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/fsdevblog/consulting-checkout/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=publisher.go -destination=mocks/mocks.go -package=mocks

// Channel часть *amqp.Channel, нужная публикатору.
type Channel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher публикует события заказов в RabbitMQ. Реализует service.CartNotifier.
type Publisher struct {
	mu   sync.Mutex
	open func() (Channel, error)
	ch   Channel
	l    *logrus.Entry
	now  func() time.Time
}

// NewPublisher создает публикатор поверх соединения с брокером. Канал открывается лениво и переоткрывается
// после ошибки публикации.
func NewPublisher(conn *amqp.Connection, l *logrus.Logger) *Publisher {
	return newPublisher(func() (Channel, error) {
		return conn.Channel()
	}, l)
}

func newPublisher(open func() (Channel, error), l *logrus.Logger) *Publisher {
	return &Publisher{
		open: open,
		l:    l.WithField("component", "events_publisher"),
		now:  time.Now,
	}
}

// Dial подключается к брокеру по url.
func Dial(url string) (*amqp.Connection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial amqp: %w", err)
	}
	return conn, nil
}

func (p *Publisher) ClearCart(ctx context.Context, owner domain.Owner, orderID int64) error {
	return p.publish(ctx, QueueCartCleared, newCartClearedEvent(owner, orderID, p.now()))
}

func (p *Publisher) OrderPaid(ctx context.Context, order domain.Order) error {
	return p.publish(ctx, QueueOrderPaid, newOrderPaidEvent(order))
}

func (p *Publisher) publish(ctx context.Context, queue string, event any) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", queue, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.channel()
	if err != nil {
		return err
	}

	if _, err = ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		p.reset()
		return fmt.Errorf("declare queue %s: %w", queue, err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    p.now().UTC(),
		Body:         body,
	}
	if err = ch.PublishWithContext(ctx, "", queue, false, false, msg); err != nil {
		p.reset()
		return fmt.Errorf("publish %s: %w", queue, err)
	}

	p.l.WithField("queue", queue).Debug("event published")
	return nil
}

func (p *Publisher) channel() (Channel, error) {
	if p.ch != nil {
		return p.ch, nil
	}
	ch, err := p.open()
	if err != nil {
		return nil, fmt.Errorf("open amqp channel: %w", err)
	}
	p.ch = ch
	return ch, nil
}

func (p *Publisher) reset() {
	if p.ch == nil {
		return
	}
	if err := p.ch.Close(); err != nil {
		p.l.WithError(err).Debug("close amqp channel")
	}
	p.ch = nil
}

// Close закрывает открытый канал.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ch == nil {
		return nil
	}
	err := p.ch.Close()
	p.ch = nil
	return err //nolint:wrapcheck
}
