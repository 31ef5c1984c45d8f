package pgrepo

import (
	"context"

	"github.com/fsdevblog/consulting-checkout/internal/domain"
	"github.com/fsdevblog/consulting-checkout/internal/repository/repoargs"
	"github.com/fsdevblog/consulting-checkout/pkg/uow"
	"github.com/shopspring/decimal"
)

type OrderItemRepository struct {
	db uow.DBTX
}

func NewOrderItemRepository(db uow.DBTX) *OrderItemRepository {
	return &OrderItemRepository{db: db}
}

const orderItemColumns = `id, created_at, order_id, schedule_id, quantity, unit_price, discount_price`

// AddItem добавляет позицию в заказ. Позиция того же расписания по той же цене объединяется с существующей,
// если цена в каталоге изменилась, создается новая строка.
func (r *OrderItemRepository) AddItem(ctx context.Context, args repoargs.AddOrderItem) (*domain.OrderItem, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO order_items (order_id, schedule_id, quantity, unit_price)
VALUES ($1, $2, $3, $4)
ON CONFLICT (order_id, schedule_id, unit_price) DO UPDATE SET quantity = order_items.quantity + EXCLUDED.quantity
RETURNING `+orderItemColumns,
		args.OrderID, args.ScheduleID, args.Quantity, args.UnitPrice,
	)
	item, err := scanOrderItem(row)
	if err != nil {
		return nil, convertErr(err, "add schedule %d to order %d", args.ScheduleID, args.OrderID)
	}
	return item, nil
}

func (r *OrderItemRepository) GetByOrderID(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+orderItemColumns+` FROM order_items WHERE order_id = $1 ORDER BY id`,
		orderID,
	)
	if err != nil {
		return nil, convertErr(err, "get items of order %d", orderID)
	}
	items, err := collect(rows, scanOrderItem)
	if err != nil {
		return nil, convertErr(err, "scan items of order %d", orderID)
	}
	return items, nil
}

func (r *OrderItemRepository) UpdateQuantity(
	ctx context.Context,
	orderID, itemID int64,
	quantity int32,
) (*domain.OrderItem, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE order_items SET quantity = $3 WHERE id = $2 AND order_id = $1 RETURNING `+orderItemColumns,
		orderID, itemID, quantity,
	)
	item, err := scanOrderItem(row)
	if err != nil {
		return nil, convertErr(err, "update quantity of item %d", itemID)
	}
	return item, nil
}

func (r *OrderItemRepository) Delete(ctx context.Context, orderID, itemID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM order_items WHERE id = $2 AND order_id = $1`, orderID, itemID)
	return affected(tag.RowsAffected(), err, "delete item %d of order %d", itemID, orderID)
}

func (r *OrderItemRepository) DeleteByOrderID(ctx context.Context, orderID int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM order_items WHERE order_id = $1`, orderID); err != nil {
		return convertErr(err, "delete items of order %d", orderID)
	}
	return nil
}

func scanOrderItem(row rowScanner) (*domain.OrderItem, error) {
	var item domain.OrderItem
	var discountPrice decimal.NullDecimal
	if err := row.Scan(
		&item.ID,
		&item.CreatedAt,
		&item.OrderID,
		&item.ScheduleID,
		&item.Quantity,
		&item.UnitPrice,
		&discountPrice,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	if discountPrice.Valid {
		item.DiscountPrice = &discountPrice.Decimal
	}
	return &item, nil
}
