package pgrepo

import (
	"context"
	"time"

	"github.com/fsdevblog/consulting-checkout/internal/domain"
	"github.com/fsdevblog/consulting-checkout/internal/repository/repoargs"
	"github.com/fsdevblog/consulting-checkout/pkg/uow"
)

type CouponRepository struct {
	db uow.DBTX
}

func NewCouponRepository(db uow.DBTX) *CouponRepository {
	return &CouponRepository{db: db}
}

const couponSelect = `
SELECT c.id, c.created_at, c.user_id, c.template_id, c.is_used, c.used_order_id, c.used_at, c.expiry_date,
       t.id, t.name, t.discount_type::TEXT, t.discount_amount, t.discount_value, t.valid_days
FROM coupons c
         JOIN coupon_templates t ON t.id = c.template_id`

// GetUserCoupon возвращает купон юзера вместе с шаблоном. Чужой купон считается ненайденным.
func (c *CouponRepository) GetUserCoupon(ctx context.Context, userID, couponID int64) (*domain.Coupon, error) {
	coupon, err := scanCoupon(c.db.QueryRow(ctx, couponSelect+` WHERE c.id = $1 AND c.user_id = $2`, couponID, userID))
	if err != nil {
		return nil, convertErr(err, "get coupon %d of user %d", couponID, userID)
	}
	return coupon, nil
}

// GetUsable возвращает неиспользованные и не истекшие на момент now купоны юзера.
func (c *CouponRepository) GetUsable(ctx context.Context, userID int64, now time.Time) ([]domain.Coupon, error) {
	rows, err := c.db.Query(ctx,
		couponSelect+` WHERE c.user_id = $1 AND NOT c.is_used AND (c.expiry_date IS NULL OR c.expiry_date >= $2)
ORDER BY c.expiry_date NULLS LAST, c.id`,
		userID, now,
	)
	if err != nil {
		return nil, convertErr(err, "get usable coupons of user %d", userID)
	}
	coupons, err := collect(rows, scanCoupon)
	if err != nil {
		return nil, convertErr(err, "scan usable coupons of user %d", userID)
	}
	return coupons, nil
}

// MarkUsed помечает купон использованным в заказе. Повторная пометка не затрагивает строк
// и возвращает domain.ErrRecordNotFound.
func (c *CouponRepository) MarkUsed(ctx context.Context, couponID, orderID int64, at time.Time) error {
	tag, err := c.db.Exec(ctx,
		`UPDATE coupons SET is_used = TRUE, used_order_id = $2, used_at = $3 WHERE id = $1 AND NOT is_used`,
		couponID, orderID, at,
	)
	return affected(tag.RowsAffected(), err, "mark coupon %d used", couponID)
}

func (c *CouponRepository) GetTemplate(ctx context.Context, templateID int64) (*domain.CouponTemplate, error) {
	var t domain.CouponTemplate
	if err := c.db.QueryRow(ctx,
		`SELECT id, name, discount_type::TEXT, discount_amount, discount_value, valid_days
FROM coupon_templates WHERE id = $1`,
		templateID,
	).Scan(&t.ID, &t.Name, &t.DiscountType, &t.DiscountAmount, &t.DiscountValue, &t.ValidDays); err != nil {
		return nil, convertErr(err, "get coupon template %d", templateID)
	}
	return &t, nil
}

// Issue выдает юзеру купон по шаблону.
func (c *CouponRepository) Issue(ctx context.Context, args repoargs.IssueCoupon) (*domain.Coupon, error) {
	var id int64
	if err := c.db.QueryRow(ctx,
		`INSERT INTO coupons (user_id, template_id, expiry_date) VALUES ($1, $2, $3) RETURNING id`,
		args.UserID, args.TemplateID, args.ExpiryDate,
	).Scan(&id); err != nil {
		return nil, convertErr(err, "issue coupon of template %d to user %d", args.TemplateID, args.UserID)
	}
	return c.GetUserCoupon(ctx, args.UserID, id)
}

func scanCoupon(row rowScanner) (*domain.Coupon, error) {
	var coupon domain.Coupon
	if err := row.Scan(
		&coupon.ID,
		&coupon.CreatedAt,
		&coupon.UserID,
		&coupon.TemplateID,
		&coupon.IsUsed,
		&coupon.UsedOrderID,
		&coupon.UsedAt,
		&coupon.ExpiryDate,
		&coupon.Template.ID,
		&coupon.Template.Name,
		&coupon.Template.DiscountType,
		&coupon.Template.DiscountAmount,
		&coupon.Template.DiscountValue,
		&coupon.Template.ValidDays,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &coupon, nil
}
