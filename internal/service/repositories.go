package service

import (
	"github.com/fsdevblog/consulting-checkout/internal/repository/repoargs"
	"github.com/fsdevblog/consulting-checkout/pkg/uow"
)

// repositories набор репозиториев, привязанных либо к транзакции, либо к пулу соединений.
type repositories struct {
	users     UserRepository
	schedules ScheduleRepository
	orders    OrderRepository
	items     OrderItemRepository
	coupons   CouponRepository
	points    PointRepository
}

// repoGetter позволяет получать репозитории вне транзакции тем же uow.GetAs.
type repoGetter func(name uow.RepositoryName) (uow.Repository, error)

func (g repoGetter) Get(name uow.RepositoryName) (uow.Repository, error) {
	return g(name)
}

func uowRepositories(u uow.UOW) (*repositories, error) {
	return txRepositories(repoGetter(u.GetRepository))
}

func txRepositories(tx uow.TX) (*repositories, error) {
	var r repositories
	var err error
	if r.users, err = uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName)); err != nil {
		return nil, err //nolint:wrapcheck
	}
	if r.schedules, err = uow.GetAs[ScheduleRepository](tx, uow.RepositoryName(repoargs.ScheduleRepoName)); err != nil {
		return nil, err //nolint:wrapcheck
	}
	if r.orders, err = uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName)); err != nil {
		return nil, err //nolint:wrapcheck
	}
	if r.items, err = uow.GetAs[OrderItemRepository](tx, uow.RepositoryName(repoargs.OrderItemRepoName)); err != nil {
		return nil, err //nolint:wrapcheck
	}
	if r.coupons, err = uow.GetAs[CouponRepository](tx, uow.RepositoryName(repoargs.CouponRepoName)); err != nil {
		return nil, err //nolint:wrapcheck
	}
	if r.points, err = uow.GetAs[PointRepository](tx, uow.RepositoryName(repoargs.PointRepoName)); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &r, nil
}
