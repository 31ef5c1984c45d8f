package worker

//go:generate mockgen -source=reaper.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const (
	DefaultReaperSchedule = "@every 1m"
	DefaultPendingTTL     = 30 * time.Minute
	defaultRunTimeout     = 1 * time.Minute
)

// StaleOrderReaper возвращает зависшие в ожидании оплаты заказы в корзину.
type StaleOrderReaper interface {
	ReapStalePending(ctx context.Context, ttl time.Duration) (int, error)
}

// Reaper периодически запускает очистку заказов, оплата которых не завершилась за ttl.
type Reaper struct {
	cron   *cron.Cron
	orders StaleOrderReaper
	ttl    time.Duration
	l      *logrus.Entry
}

// NewReaper планирует очистку по расписанию schedule в формате cron с секундами либо дескриптором
// вида "@every 1m". Запуск не начнется, пока предыдущий не завершился.
func NewReaper(orders StaleOrderReaper, ttl time.Duration, schedule string, l *logrus.Logger) (*Reaper, error) {
	if ttl <= 0 {
		ttl = DefaultPendingTTL
	}
	if schedule == "" {
		schedule = DefaultReaperSchedule
	}

	log := l.WithField("component", "reaper")
	cronLogger := cronLogger{l: log}
	r := &Reaper{
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		orders: orders,
		ttl:    ttl,
		l:      log,
	}

	if _, err := r.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
		defer cancel()
		r.RunOnce(ctx)
	}); err != nil {
		return nil, fmt.Errorf("schedule reaper %q: %w", schedule, err)
	}
	return r, nil
}

// RunOnce один проход очистки.
func (r *Reaper) RunOnce(ctx context.Context) int {
	reaped, err := r.orders.ReapStalePending(ctx, r.ttl)
	if err != nil {
		r.l.WithError(err).WithField("reaped", reaped).Error("failed to reap stale pending orders")
		return reaped
	}
	if reaped > 0 {
		r.l.WithField("reaped", reaped).Info("stale pending orders reaped")
	}
	return reaped
}

func (r *Reaper) Start() {
	r.cron.Start()
}

// Stop останавливает планировщик и ждет завершения текущего прохода, но не дольше ctx.
func (r *Reaper) Stop(ctx context.Context) error {
	done := r.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return fmt.Errorf("stop reaper: %w", ctx.Err())
	}
}

// cronLogger пишет внутренние сообщения cron в logrus.
type cronLogger struct {
	l *logrus.Entry
}

func (c cronLogger) Info(msg string, keysAndValues ...any) {
	c.l.WithFields(kvFields(keysAndValues)).Debug(msg)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...any) {
	c.l.WithError(err).WithFields(kvFields(keysAndValues)).Error(msg)
}

func kvFields(keysAndValues []any) logrus.Fields {
	fields := make(logrus.Fields, len(keysAndValues)/2) //nolint:mnd
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			key = fmt.Sprint(keysAndValues[i])
		}
		fields[key] = keysAndValues[i+1]
	}
	return fields
}
