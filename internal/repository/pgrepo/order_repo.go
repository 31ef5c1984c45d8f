package pgrepo

import (
	"context"
	"time"

	"github.com/fsdevblog/consulting-checkout/internal/domain"
	"github.com/fsdevblog/consulting-checkout/internal/repository/repoargs"
	"github.com/fsdevblog/consulting-checkout/pkg/uow"
	"github.com/shopspring/decimal"
)

type OrderRepository struct {
	db uow.DBTX
}

func NewOrderRepository(db uow.DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

const orderColumns = `id, created_at, updated_at, code::TEXT, user_id, guest_token, status::TEXT, coupon_id,
subtotal, coupon_discount, used_point, total_amount, payment_key, pending_since, paid_at, failed_at, refunded_at`

// CreateCart создает пустую корзину для владельца. Если у владельца уже есть открытая корзина
// возвращает domain.ErrDuplicateKey.
func (o *OrderRepository) CreateCart(ctx context.Context, args repoargs.CreateCart) (*domain.Order, error) {
	var userID *int64
	var guestToken *string
	if args.Owner.IsGuest() {
		guestToken = &args.Owner.GuestToken
	} else {
		userID = &args.Owner.UserID
	}

	row := o.db.QueryRow(ctx,
		`INSERT INTO orders (code, user_id, guest_token) VALUES ($1::UUID, $2, $3) RETURNING `+orderColumns,
		args.Code, userID, guestToken,
	)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "create cart")
	}
	return order, nil
}

// FindOpenCart ищет открытую корзину владельца. Возвращает domain.ErrRecordNotFound, если корзины нет.
func (o *OrderRepository) FindOpenCart(ctx context.Context, owner domain.Owner) (*domain.Order, error) {
	var row rowScanner
	if owner.IsGuest() {
		row = o.db.QueryRow(ctx,
			`SELECT `+orderColumns+` FROM orders
WHERE guest_token = $1 AND user_id IS NULL AND status = 'cart'
ORDER BY id DESC LIMIT 1`,
			owner.GuestToken,
		)
	} else {
		row = o.db.QueryRow(ctx,
			`SELECT `+orderColumns+` FROM orders WHERE user_id = $1 AND status = 'cart' ORDER BY id DESC LIMIT 1`,
			owner.UserID,
		)
	}
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "find open cart")
	}
	return order, nil
}

func (o *OrderRepository) GetByID(ctx context.Context, orderID int64) (*domain.Order, error) {
	order, err := scanOrder(o.db.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, orderID))
	if err != nil {
		return nil, convertErr(err, "get order %d", orderID)
	}
	return order, nil
}

// GetByIDForUpdate читает заказ и блокирует его строку до конца транзакции.
func (o *OrderRepository) GetByIDForUpdate(ctx context.Context, orderID int64) (*domain.Order, error) {
	order, err := scanOrder(
		o.db.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1 FOR UPDATE`, orderID),
	)
	if err != nil {
		return nil, convertErr(err, "get order %d for update", orderID)
	}
	return order, nil
}

// GetByCode ищет заказ по коду, который передается платежному шлюзу как orderId.
func (o *OrderRepository) GetByCode(ctx context.Context, code string) (*domain.Order, error) {
	order, err := scanOrder(o.db.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE code::TEXT = $1`, code))
	if err != nil {
		return nil, convertErr(err, "get order by code %s", code)
	}
	return order, nil
}

func (o *OrderRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.Order, error) {
	rows, err := o.db.Query(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, convertErr(err, "get orders for user %d", userID)
	}
	orders, err := collect(rows, scanOrder)
	if err != nil {
		return nil, convertErr(err, "scan orders for user %d", userID)
	}
	return orders, nil
}

// UpdateSubtotal обновляет сумму корзины. Скидка и баллы в корзине не хранятся, поэтому total = subtotal.
func (o *OrderRepository) UpdateSubtotal(ctx context.Context, orderID int64, subtotal decimal.Decimal) error {
	tag, err := o.db.Exec(ctx,
		`UPDATE orders
SET subtotal = $2, coupon_discount = 0, used_point = 0, total_amount = $2, updated_at = NOW()
WHERE id = $1 AND status = 'cart'`,
		orderID, subtotal,
	)
	return affected(tag.RowsAffected(), err, "update subtotal of order %d", orderID)
}

// MarkPendingPayment переводит корзину в ожидание оплаты и фиксирует рассчитанные суммы.
func (o *OrderRepository) MarkPendingPayment(ctx context.Context, args repoargs.OrderCheckout) error {
	tag, err := o.db.Exec(ctx,
		`UPDATE orders
SET status          = 'pending_payment',
    coupon_id       = $2,
    subtotal        = $3,
    coupon_discount = $4,
    used_point      = $5,
    total_amount    = $6,
    pending_since   = $7,
    updated_at      = NOW()
WHERE id = $1 AND status = 'cart'`,
		args.ID,
		args.Quote.CouponID,
		args.Quote.Subtotal,
		args.Quote.CouponDiscount,
		args.Quote.UsedPoint,
		args.Quote.Total,
		args.PendingSince,
	)
	return affected(tag.RowsAffected(), err, "mark order %d pending payment", args.ID)
}

// MarkPaid переводит заказ в оплаченный. Суммы перезаписываются значениями пересчитанного расчета.
func (o *OrderRepository) MarkPaid(ctx context.Context, args repoargs.OrderPaid) error {
	tag, err := o.db.Exec(ctx,
		`UPDATE orders
SET status          = 'paid',
    coupon_id       = $2,
    subtotal        = $3,
    coupon_discount = $4,
    used_point      = $5,
    total_amount    = $6,
    payment_key     = $7,
    paid_at         = $8,
    updated_at      = NOW()
WHERE id = $1 AND status = 'pending_payment'`,
		args.ID,
		args.Quote.CouponID,
		args.Quote.Subtotal,
		args.Quote.CouponDiscount,
		args.Quote.UsedPoint,
		args.Quote.Total,
		args.PaymentKey,
		args.PaidAt,
	)
	return affected(tag.RowsAffected(), err, "mark order %d paid", args.ID)
}

// RecordPaymentKey сохраняет ключ платежа, подтвержденного шлюзом, до фиксации оплаты.
func (o *OrderRepository) RecordPaymentKey(ctx context.Context, orderID int64, paymentKey string) error {
	tag, err := o.db.Exec(ctx,
		`UPDATE orders SET payment_key = $2, updated_at = NOW()
WHERE id = $1 AND status = 'pending_payment' AND (payment_key IS NULL OR payment_key = $2)`,
		orderID, paymentKey,
	)
	return affected(tag.RowsAffected(), err, "record payment key of order %d", orderID)
}

func (o *OrderRepository) MarkFailed(ctx context.Context, orderID int64, at time.Time) error {
	tag, err := o.db.Exec(ctx,
		`UPDATE orders SET status = 'failed', failed_at = $2, updated_at = NOW()
WHERE id = $1 AND status = 'pending_payment'`,
		orderID, at,
	)
	return affected(tag.RowsAffected(), err, "mark order %d failed", orderID)
}

// RevertToCart возвращает заказ в корзину из статусов failed и pending_payment.
// Купон, баллы и время начала оплаты сбрасываются. Если у владельца уже есть открытая корзина,
// возвращает domain.ErrDuplicateKey.
func (o *OrderRepository) RevertToCart(ctx context.Context, orderID int64) error {
	tag, err := o.db.Exec(ctx,
		`UPDATE orders
SET status          = 'cart',
    coupon_id       = NULL,
    coupon_discount = 0,
    used_point      = 0,
    total_amount    = subtotal,
    pending_since   = NULL,
    failed_at       = NULL,
    updated_at      = NOW()
WHERE id = $1 AND status IN ('failed', 'pending_payment')`,
		orderID,
	)
	return affected(tag.RowsAffected(), err, "revert order %d to cart", orderID)
}

func (o *OrderRepository) MarkRefunded(ctx context.Context, orderID int64, at time.Time) error {
	tag, err := o.db.Exec(ctx,
		`UPDATE orders SET status = 'refunded', refunded_at = $2, updated_at = NOW()
WHERE id = $1 AND status = 'paid'`,
		orderID, at,
	)
	return affected(tag.RowsAffected(), err, "mark order %d refunded", orderID)
}

// FindStalePending возвращает идентификаторы заказов, которые ждут оплату дольше допустимого.
// Заказы с подтвержденным шлюзом платежом не возвращаются.
func (o *OrderRepository) FindStalePending(ctx context.Context, before time.Time, limit int) ([]int64, error) {
	limit32, err := safeConvertIntToInt32(limit)
	if err != nil {
		return nil, convertErr(err, "find stale pending orders")
	}
	rows, err := o.db.Query(ctx,
		`SELECT id FROM orders
WHERE status = 'pending_payment' AND payment_key IS NULL AND pending_since < $1
ORDER BY pending_since
LIMIT $2`,
		before, limit32,
	)
	if err != nil {
		return nil, convertErr(err, "find stale pending orders")
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if scanErr := rows.Scan(&id); scanErr != nil {
			return nil, convertErr(scanErr, "scan stale pending order")
		}
		ids = append(ids, id)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "iterate stale pending orders")
	}
	return ids, nil
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var order domain.Order
	if err := row.Scan(
		&order.ID,
		&order.CreatedAt,
		&order.UpdatedAt,
		&order.Code,
		&order.UserID,
		&order.GuestToken,
		&order.Status,
		&order.CouponID,
		&order.Subtotal,
		&order.CouponDiscount,
		&order.UsedPoint,
		&order.TotalAmount,
		&order.PaymentKey,
		&order.PendingSince,
		&order.PaidAt,
		&order.FailedAt,
		&order.RefundedAt,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &order, nil
}
