package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsdevblog/consulting-checkout/internal/config"
	"github.com/fsdevblog/consulting-checkout/internal/lock"
	"github.com/fsdevblog/consulting-checkout/internal/repository/pgrepo"
	"github.com/fsdevblog/consulting-checkout/internal/repository/repoargs"
	"github.com/fsdevblog/consulting-checkout/internal/service"
	"github.com/fsdevblog/consulting-checkout/internal/transport/api"
	"github.com/fsdevblog/consulting-checkout/internal/transport/events"
	"github.com/fsdevblog/consulting-checkout/internal/transport/gateway/toss"
	"github.com/fsdevblog/consulting-checkout/internal/worker"
	"github.com/fsdevblog/consulting-checkout/pkg/uow"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
	pingTimeout       = 3 * time.Second
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.WithFields(logrus.Fields{
		"run_address":         a.Config.RunAddress,
		"migrations_dir":      a.Config.MigrationsDir,
		"redis_enabled":       a.Config.RedisAddr != "",
		"amqp_enabled":        a.Config.AMQPURL != "",
		"pending_payment_ttl": a.Config.PendingPaymentTTL.String(),
		"reaper_schedule":     a.Config.ReaperSchedule,
	}).Info("starting app")

	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	locker, closeLocker := a.initLocker(notifyCtx)
	defer closeLocker()

	notifier, closeNotifier := a.initNotifier()
	defer closeNotifier()

	services, sErr := service.Factory(service.FactoryArgs{
		UOW:       unitOfWork,
		JWTSecret: []byte(a.Config.JWTUserSecret),
		Locker:    locker,
		Notifier:  notifier,
		Gateways: map[string]service.PaymentGateway{
			api.DefaultGateway: toss.New(a.Config.TossBaseURL, a.Config.TossSecretKey),
		},
		GatewayTimeout: a.Config.GatewayTimeout,
		Logger:         a.Logger,
	})
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	router, routerErr := api.New(api.RouterArgs{
		Logger:          a.Logger,
		UserService:     services.UserService,
		CatalogService:  services.CatalogService,
		OrderService:    services.OrderService,
		CheckoutService: services.CheckoutService,
		PointService:    services.PointService,
		CouponService:   services.CouponService,
		JWTSecretKey:    []byte(a.Config.JWTUserSecret),
		AdminAPIKey:     a.Config.AdminAPIKey,
	})
	if routerErr != nil {
		return fmt.Errorf("app run: %s", routerErr.Error())
	}

	reaper, reaperErr := worker.NewReaper(
		services.OrderService,
		a.Config.PendingPaymentTTL,
		a.Config.ReaperSchedule,
		a.Logger,
	)
	if reaperErr != nil {
		return fmt.Errorf("app run: %s", reaperErr.Error())
	}
	reaper.Start()

	srv := &http.Server{
		Addr:              a.Config.RunAddress,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		if runErr := srv.ListenAndServe(); runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
			errChan <- runErr
		}
	}()

	var runErr error
	select {
	case <-notifyCtx.Done():
		runErr = notifyCtx.Err()
	case runErr = <-errChan:
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(notifyCtx), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.Logger.WithError(err).Error("http server shutdown")
	}
	if err := reaper.Stop(shutdownCtx); err != nil {
		a.Logger.WithError(err).Error("reaper shutdown")
	}
	return runErr
}

// initLocker подключает redis для распределенных блокировок заказов. Без redis или при недоступности
// redis используется NoopLocker.
func (a *App) initLocker(ctx context.Context) (service.Locker, func()) {
	if a.Config.RedisAddr == "" {
		return lock.NoopLocker{}, func() {}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     a.Config.RedisAddr,
		Password: a.Config.RedisPassword,
		DB:       a.Config.RedisDB,
	})
	closeFn := func() {
		if err := rdb.Close(); err != nil {
			a.Logger.WithError(err).Warn("close redis client")
		}
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		a.Logger.WithError(err).Warn("redis is unavailable, distributed order locks are disabled")
		closeFn()
		return lock.NoopLocker{}, func() {}
	}
	return lock.NewRedisLocker(rdb, a.Logger), closeFn
}

// initNotifier подключает публикацию событий в RabbitMQ. Без AMQP_URL события пишутся в лог.
func (a *App) initNotifier() (service.CartNotifier, func()) {
	if a.Config.AMQPURL == "" {
		return events.NewLogNotifier(a.Logger), func() {}
	}

	conn, err := events.Dial(a.Config.AMQPURL)
	if err != nil {
		a.Logger.WithError(err).Warn("rabbitmq is unavailable, order events are written to log")
		return events.NewLogNotifier(a.Logger), func() {}
	}

	publisher := events.NewPublisher(conn, a.Logger)
	return publisher, func() {
		if closeErr := publisher.Close(); closeErr != nil {
			a.Logger.WithError(closeErr).Warn("close amqp channel")
		}
		if closeErr := conn.Close(); closeErr != nil {
			a.Logger.WithError(closeErr).Warn("close amqp connection")
		}
	}
}

func repositoryFactory[T uow.Repository](newFn func(uow.DBTX) T) uow.RepositoryFactory {
	return func(dbtx uow.DBTX) uow.Repository {
		return newFn(dbtx)
	}
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	factories := []struct {
		name    repoargs.RepositoryName
		factory uow.RepositoryFactory
	}{
		{repoargs.UserRepoName, repositoryFactory(pgrepo.NewUserRepository)},
		{repoargs.ScheduleRepoName, repositoryFactory(pgrepo.NewScheduleRepository)},
		{repoargs.OrderRepoName, repositoryFactory(pgrepo.NewOrderRepository)},
		{repoargs.OrderItemRepoName, repositoryFactory(pgrepo.NewOrderItemRepository)},
		{repoargs.CouponRepoName, repositoryFactory(pgrepo.NewCouponRepository)},
		{repoargs.PointRepoName, repositoryFactory(pgrepo.NewPointRepository)},
	}
	for _, f := range factories {
		if regErr := unitOfWork.Register(uow.RepositoryName(f.name), f.factory); regErr != nil {
			return nil, fmt.Errorf("init UOW: %s", regErr.Error())
		}
	}

	return unitOfWork, nil
}
