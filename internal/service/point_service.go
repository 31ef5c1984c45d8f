package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/consulting-checkout/internal/domain"
	"github.com/fsdevblog/consulting-checkout/internal/repository/repoargs"
	"github.com/fsdevblog/consulting-checkout/pkg/uow"
	"github.com/shopspring/decimal"
)

// PointService журнал баллов юзера. Баланс всегда считается по журналу, отдельного поля баланса нет.
type PointService struct {
	uow       uow.UOW
	pointRepo PointRepository
	now       func() time.Time
}

func NewPointService(u uow.UOW) (*PointService, error) {
	pointRepo, err := uow.GetRepositoryAs[PointRepository](u, uow.RepositoryName(repoargs.PointRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &PointService{
		uow:       u,
		pointRepo: pointRepo,
		now:       time.Now,
	}, nil
}

// GetBalance возвращает текущий баланс баллов: сумма начислений минус сумма списаний.
func (p *PointService) GetBalance(ctx context.Context, userID int64) (decimal.Decimal, error) {
	return pointBalance(ctx, p.pointRepo, userID)
}

// History возвращает записи журнала юзера, новые первыми.
func (p *PointService) History(ctx context.Context, userID int64) ([]domain.PointEntry, error) {
	entries, err := p.pointRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return entries, nil
}

// ReserveRedemption проверяет, что у юзера хватает баллов на списание amount. В журнал ничего не пишется,
// резерв живет в заказе до его оплаты.
func (p *PointService) ReserveRedemption(
	ctx context.Context,
	userID int64,
	amount decimal.Decimal,
) (*domain.PointReservation, error) {
	return reserveRedemption(ctx, p.pointRepo, userID, amount)
}

// CommitRedemption списывает баллы по заказу в отдельной транзакции.
// Повторное списание по тому же заказу возвращает domain.ErrOrderAlreadyFinalized.
func (p *PointService) CommitRedemption(
	ctx context.Context,
	reservation domain.PointReservation,
	orderID int64,
) error {
	txErr := p.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, err := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		pointRepo, err := uow.GetAs[PointRepository](tx, uow.RepositoryName(repoargs.PointRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		return commitRedemption(c, userRepo, pointRepo, reservation, orderID, p.now())
	})
	if txErr != nil {
		return fmt.Errorf("commit point redemption for order %d: %w", orderID, txErr)
	}
	return nil
}

// Accrue начисляет юзеру amount баллов.
func (p *PointService) Accrue(
	ctx context.Context,
	userID int64,
	amount decimal.Decimal,
	description string,
) (*domain.PointEntry, error) {
	if !amount.IsPositive() || !amount.Equal(amount.Floor()) {
		return nil, fmt.Errorf("accrue %s points: %w", amount.String(), domain.ErrInvalidPointAmount)
	}

	var entry *domain.PointEntry
	txErr := p.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, err := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		pointRepo, err := uow.GetAs[PointRepository](tx, uow.RepositoryName(repoargs.PointRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		if lockErr := userRepo.LockForUpdate(c, userID); lockErr != nil {
			return lockErr //nolint:wrapcheck
		}
		entry, err = pointRepo.Append(c, repoargs.PointEntryCreate{
			UserID:      userID,
			ChangeType:  domain.PointChangeAccrual,
			Amount:      amount,
			Description: description,
		})
		return err //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("accrue points for user %d: %w", userID, txErr)
	}
	return entry, nil
}

func pointBalance(ctx context.Context, repo PointRepository, userID int64) (decimal.Decimal, error) {
	agg, err := repo.GetUserBalance(ctx, userID)
	if err != nil {
		return decimal.Zero, err //nolint:wrapcheck
	}
	return agg.AccrualAmount.Sub(agg.RedemptionAmount), nil
}

func reserveRedemption(
	ctx context.Context,
	repo PointRepository,
	userID int64,
	amount decimal.Decimal,
) (*domain.PointReservation, error) {
	if amount.IsNegative() {
		return nil, fmt.Errorf("reserve %s points: %w", amount.String(), domain.ErrInvalidPointAmount)
	}
	balance, err := pointBalance(ctx, repo, userID)
	if err != nil {
		return nil, err
	}
	if amount.GreaterThan(balance) {
		return nil, fmt.Errorf(
			"reserve %s points with balance %s: %w", amount.String(), balance.String(), domain.ErrInsufficientBalance,
		)
	}
	return &domain.PointReservation{UserID: userID, Amount: amount}, nil
}

// commitRedemption пишет в журнал одну запись списания по заказу. Вызывается внутри транзакции:
// строка юзера блокируется до чтения баланса, поэтому параллельные списания не уводят баланс в минус.
func commitRedemption(
	ctx context.Context,
	userRepo UserRepository,
	pointRepo PointRepository,
	reservation domain.PointReservation,
	orderID int64,
	at time.Time,
) error {
	if !reservation.Amount.IsPositive() {
		return nil
	}
	if err := userRepo.LockForUpdate(ctx, reservation.UserID); err != nil {
		return err //nolint:wrapcheck
	}
	if _, err := reserveRedemption(ctx, pointRepo, reservation.UserID, reservation.Amount); err != nil {
		return err
	}
	_, err := pointRepo.Append(ctx, repoargs.PointEntryCreate{
		UserID:      reservation.UserID,
		OrderID:     &orderID,
		ChangeType:  domain.PointChangeRedemption,
		Amount:      reservation.Amount,
		Description: fmt.Sprintf("order #%d", orderID),
		UsedAt:      &at,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateKey) {
			return fmt.Errorf("points for order %d already redeemed: %w", orderID, domain.ErrOrderAlreadyFinalized)
		}
		return err //nolint:wrapcheck
	}
	return nil
}
