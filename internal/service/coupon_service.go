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

type CouponService struct {
	couponRepo CouponRepository
	now        func() time.Time
}

func NewCouponService(u uow.UOW) (*CouponService, error) {
	couponRepo, err := uow.GetRepositoryAs[CouponRepository](u, uow.RepositoryName(repoargs.CouponRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &CouponService{
		couponRepo: couponRepo,
		now:        time.Now,
	}, nil
}

// Evaluate считает скидку купона юзера для суммы subtotal. Чужой или несуществующий купон
// возвращает domain.ErrInvalidCoupon.
func (c *CouponService) Evaluate(
	ctx context.Context,
	userID, couponID int64,
	subtotal decimal.Decimal,
) (decimal.Decimal, error) {
	coupon, err := loadCoupon(ctx, c.couponRepo, userID, couponID)
	if err != nil {
		return decimal.Zero, err
	}
	return EvaluateCoupon(*coupon, subtotal, c.now())
}

// Usable возвращает купоны юзера, которые можно применить сейчас.
func (c *CouponService) Usable(ctx context.Context, userID int64) ([]domain.Coupon, error) {
	coupons, err := c.couponRepo.GetUsable(ctx, userID, c.now())
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return coupons, nil
}

// Issue выдает юзеру купон по шаблону. Срок действия считается от текущего момента по valid_days шаблона,
// шаблон без valid_days выдает бессрочный купон.
func (c *CouponService) Issue(ctx context.Context, userID, templateID int64) (*domain.Coupon, error) {
	template, err := c.couponRepo.GetTemplate(ctx, templateID)
	if err != nil {
		return nil, fmt.Errorf("issue coupon: %w", err)
	}

	var expiry *time.Time
	if template.ValidDays != nil {
		e := c.now().AddDate(0, 0, int(*template.ValidDays))
		expiry = &e
	}

	coupon, err := c.couponRepo.Issue(ctx, repoargs.IssueCoupon{
		UserID:     userID,
		TemplateID: template.ID,
		ExpiryDate: expiry,
	})
	if err != nil {
		return nil, fmt.Errorf("issue coupon: %w", err)
	}
	return coupon, nil
}

func loadCoupon(ctx context.Context, repo CouponRepository, userID, couponID int64) (*domain.Coupon, error) {
	coupon, err := repo.GetUserCoupon(ctx, userID, couponID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, fmt.Errorf("coupon %d: %w", couponID, domain.ErrInvalidCoupon)
		}
		return nil, err //nolint:wrapcheck
	}
	return coupon, nil
}
