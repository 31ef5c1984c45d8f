package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/consulting-checkout/internal/domain"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	DefaultExpiry     = 15 * time.Second
	DefaultTries      = 20
	DefaultRetryDelay = 100 * time.Millisecond
	keyPrefix         = "checkout:lock:"
)

// RedisLocker распределенная блокировка на redsync поверх одного redis.
type RedisLocker struct {
	rs         *redsync.Redsync
	expiry     time.Duration
	tries      int
	retryDelay time.Duration
	l          *logrus.Entry
}

type Option func(*RedisLocker)

func WithExpiry(d time.Duration) Option {
	return func(r *RedisLocker) {
		r.expiry = d
	}
}

func WithTries(n int) Option {
	return func(r *RedisLocker) {
		r.tries = n
	}
}

func NewRedisLocker(rdb *redis.Client, l *logrus.Logger, opts ...Option) *RedisLocker {
	r := &RedisLocker{
		rs:         redsync.New(goredis.NewPool(rdb)),
		expiry:     DefaultExpiry,
		tries:      DefaultTries,
		retryDelay: DefaultRetryDelay,
		l:          l.WithField("component", "redis_locker"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Obtain захватывает блокировку key. Если за отведенное число попыток блокировка не получена,
// возвращает domain.ErrOrderBusy.
func (r *RedisLocker) Obtain(ctx context.Context, key string) (func(), error) {
	mutex := r.rs.NewMutex(
		keyPrefix+key,
		redsync.WithExpiry(r.expiry),
		redsync.WithTries(r.tries),
		redsync.WithRetryDelayFunc(func(int) time.Duration {
			return time.Duration(jitter(float64(r.retryDelay), 0.5, 0.5))
		}),
	)

	if err := mutex.LockContext(ctx); err != nil {
		var taken *redsync.ErrTaken
		if errors.Is(err, redsync.ErrFailed) || errors.As(err, &taken) {
			return nil, fmt.Errorf("lock %s: %w", key, domain.ErrOrderBusy)
		}
		return nil, fmt.Errorf("lock %s: %w", key, err)
	}

	return func() {
		// снимаем блокировку даже если контекст запроса уже отменен
		unlockCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), time.Second)
		defer cancel()
		if ok, err := mutex.UnlockContext(unlockCtx); err != nil || !ok {
			r.l.WithError(err).WithField("key", key).Warn("failed to release lock")
		}
	}, nil
}
