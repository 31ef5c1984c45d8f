package events

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/fsdevblog/consulting-checkout/internal/domain"
	"github.com/fsdevblog/consulting-checkout/internal/transport/events/mocks"
	"github.com/golang/mock/gomock"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPublisher(t *testing.T) (*Publisher, *mocks.MockChannel, *int) {
	t.Helper()
	ctrl := gomock.NewController(t)
	ch := mocks.NewMockChannel(ctrl)

	l := logrus.New()
	l.SetOutput(io.Discard)

	opened := 0
	p := newPublisher(func() (Channel, error) {
		opened++
		return ch, nil
	}, l)
	p.now = func() time.Time { return time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC) }
	return p, ch, &opened
}

func TestPublisher_OrderPaid(t *testing.T) {
	p, ch, opened := newTestPublisher(t)

	userID := int64(7)
	order := domain.Order{
		ID:          1,
		Code:        "code-1",
		UserID:      &userID,
		TotalAmount: decimal.NewFromInt(85000),
		UsedPoint:   decimal.NewFromInt(5000),
	}

	ch.EXPECT().QueueDeclare(QueueOrderPaid, true, false, false, false, nil).Return(amqp.Queue{}, nil).Times(2)
	ch.EXPECT().
		PublishWithContext(gomock.Any(), "", QueueOrderPaid, false, false, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, _, _ bool, msg amqp.Publishing) error {
			assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
			assert.Equal(t, "application/json", msg.ContentType)

			var event OrderPaidEvent
			require.NoError(t, json.Unmarshal(msg.Body, &event))
			assert.Equal(t, "code-1", event.OrderCode)
			assert.True(t, event.TotalAmount.Equal(decimal.NewFromInt(85000)))
			return nil
		}).Times(2)

	require.NoError(t, p.OrderPaid(context.Background(), order))
	require.NoError(t, p.OrderPaid(context.Background(), order))
	assert.Equal(t, 1, *opened, "channel is reused")
}

func TestPublisher_ClearCartReopensChannelAfterError(t *testing.T) {
	p, ch, opened := newTestPublisher(t)
	owner := domain.Owner{GuestToken: "guest-1"}

	gomock.InOrder(
		ch.EXPECT().QueueDeclare(QueueCartCleared, true, false, false, false, nil).Return(amqp.Queue{}, nil),
		ch.EXPECT().
			PublishWithContext(gomock.Any(), "", QueueCartCleared, false, false, gomock.Any()).
			Return(amqp.ErrClosed),
		ch.EXPECT().Close().Return(nil),
		ch.EXPECT().QueueDeclare(QueueCartCleared, true, false, false, false, nil).Return(amqp.Queue{}, nil),
		ch.EXPECT().
			PublishWithContext(gomock.Any(), "", QueueCartCleared, false, false, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, _, _ bool, msg amqp.Publishing) error {
				var event CartClearedEvent
				require.NoError(t, json.Unmarshal(msg.Body, &event))
				assert.Equal(t, "guest-1", event.GuestToken)
				assert.Equal(t, int64(3), event.OrderID)
				return nil
			}),
	)

	err := p.ClearCart(context.Background(), owner, 3)
	require.ErrorIs(t, err, amqp.ErrClosed)

	require.NoError(t, p.ClearCart(context.Background(), owner, 3))
	assert.Equal(t, 2, *opened)
}

func TestPublisher_OpenChannelError(t *testing.T) {
	l := logrus.New()
	l.SetOutput(io.Discard)
	openErr := errors.New("connection closed")
	p := newPublisher(func() (Channel, error) { return nil, openErr }, l)

	err := p.ClearCart(context.Background(), domain.Owner{UserID: 1}, 1)
	require.ErrorIs(t, err, openErr)
	require.NoError(t, p.Close())
}
