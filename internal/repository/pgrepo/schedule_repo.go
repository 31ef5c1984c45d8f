package pgrepo

import (
	"context"

	"github.com/fsdevblog/consulting-checkout/internal/domain"
	"github.com/fsdevblog/consulting-checkout/pkg/uow"
)

type ScheduleRepository struct {
	db uow.DBTX
}

func NewScheduleRepository(db uow.DBTX) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// GetAvailability возвращает цену, статус и остаток мест расписания.
// Остаток считается как вместимость минус сумма позиций в оплаченных заказах.
func (s *ScheduleRepository) GetAvailability(ctx context.Context, scheduleID int64) (*domain.ScheduleAvailability, error) {
	const query = `
SELECT s.id,
       s.title,
       s.price,
       s.capacity,
       s.capacity - COALESCE((SELECT SUM(oi.quantity)
                              FROM order_items oi
                                       JOIN orders o ON o.id = oi.order_id
                              WHERE oi.schedule_id = s.id
                                AND o.status = 'paid'), 0)::INTEGER,
       s.status::TEXT,
       s.starts_at
FROM schedules s
WHERE s.id = $1`

	var a domain.ScheduleAvailability
	if err := s.db.QueryRow(ctx, query, scheduleID).Scan(
		&a.ID,
		&a.Title,
		&a.Price,
		&a.Capacity,
		&a.CapacityRemaining,
		&a.Status,
		&a.StartsAt,
	); err != nil {
		return nil, convertErr(err, "get schedule %d availability", scheduleID)
	}
	return &a, nil
}

// LockForUpdate блокирует строку расписания до конца транзакции. Через эту блокировку сериализуется
// фиксация оплаты заказов с одним расписанием.
func (s *ScheduleRepository) LockForUpdate(ctx context.Context, scheduleID int64) error {
	var id int64
	if err := s.db.QueryRow(ctx, `SELECT id FROM schedules WHERE id = $1 FOR UPDATE`, scheduleID).Scan(&id); err != nil {
		return convertErr(err, "locking schedule %d", scheduleID)
	}
	return nil
}
