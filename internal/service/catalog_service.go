package service

import (
	"context"

	"github.com/fsdevblog/consulting-checkout/internal/domain"
	"github.com/fsdevblog/consulting-checkout/internal/repository/repoargs"
	"github.com/fsdevblog/consulting-checkout/pkg/uow"
)

// CatalogService чтение каталога расписаний. Каталог ведется другой системой, здесь только чтение.
type CatalogService struct {
	scheduleRepo ScheduleRepository
}

func NewCatalogService(u uow.UOW) (*CatalogService, error) {
	scheduleRepo, err := uow.GetRepositoryAs[ScheduleRepository](u, uow.RepositoryName(repoargs.ScheduleRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &CatalogService{scheduleRepo: scheduleRepo}, nil
}

// GetScheduleAvailability цена, остаток мест и статус расписания.
func (c *CatalogService) GetScheduleAvailability(
	ctx context.Context,
	scheduleID int64,
) (*domain.ScheduleAvailability, error) {
	availability, err := c.scheduleRepo.GetAvailability(ctx, scheduleID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return availability, nil
}
