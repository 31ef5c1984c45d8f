package worker

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/fsdevblog/consulting-checkout/internal/worker/mocks"
	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestReaper_RunOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	orders := mocks.NewMockStaleOrderReaper(ctrl)

	r, err := NewReaper(orders, 15*time.Minute, "", discardLogger())
	require.NoError(t, err)

	gomock.InOrder(
		orders.EXPECT().ReapStalePending(gomock.Any(), 15*time.Minute).Return(3, nil),
		orders.EXPECT().ReapStalePending(gomock.Any(), 15*time.Minute).Return(1, errors.New("db down")),
	)

	assert.Equal(t, 3, r.RunOnce(context.Background()))
	assert.Equal(t, 1, r.RunOnce(context.Background()))
}

func TestReaper_Schedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	orders := mocks.NewMockStaleOrderReaper(ctrl)

	called := make(chan struct{}, 1)
	orders.EXPECT().ReapStalePending(gomock.Any(), DefaultPendingTTL).
		DoAndReturn(func(context.Context, time.Duration) (int, error) {
			select {
			case called <- struct{}{}:
			default:
			}
			return 0, nil
		}).MinTimes(1)

	r, err := NewReaper(orders, 0, "@every 1s", discardLogger())
	require.NoError(t, err)
	r.Start()

	select {
	case <-called:
	case <-time.After(3 * time.Second):
		t.Fatal("reaper was not triggered")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, r.Stop(ctx))
}

func TestNewReaper_InvalidSchedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	_, err := NewReaper(mocks.NewMockStaleOrderReaper(ctrl), time.Minute, "every minute", discardLogger())
	require.Error(t, err)
}
