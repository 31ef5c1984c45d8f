package pgrepo

import (
	"context"

	"github.com/fsdevblog/consulting-checkout/internal/domain"
	"github.com/fsdevblog/consulting-checkout/internal/repository/repoargs"
	"github.com/fsdevblog/consulting-checkout/pkg/uow"
)

// PointRepository журнал баллов. Записи только добавляются, методов изменения и удаления нет.
type PointRepository struct {
	db uow.DBTX
}

func NewPointRepository(db uow.DBTX) *PointRepository {
	return &PointRepository{db: db}
}

const pointColumns = `id, created_at, user_id, order_id, change_type::TEXT, amount, description, used_at`

// Append добавляет запись в журнал. Повторное списание по одному заказу возвращает domain.ErrDuplicateKey.
func (p *PointRepository) Append(ctx context.Context, args repoargs.PointEntryCreate) (*domain.PointEntry, error) {
	row := p.db.QueryRow(ctx,
		`INSERT INTO point_entries (user_id, order_id, change_type, amount, description, used_at)
VALUES ($1, $2, $3::point_change_type, $4, $5, $6)
RETURNING `+pointColumns,
		args.UserID, args.OrderID, string(args.ChangeType), args.Amount, args.Description, args.UsedAt,
	)
	entry, err := scanPointEntry(row)
	if err != nil {
		return nil, convertErr(err, "append %s point entry for user %d", args.ChangeType, args.UserID)
	}
	return entry, nil
}

// GetUserBalance возвращает суммы начислений и списаний юзера.
func (p *PointRepository) GetUserBalance(ctx context.Context, userID int64) (*repoargs.PointAggregation, error) {
	var agg repoargs.PointAggregation
	if err := p.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount) FILTER (WHERE change_type = '적립'), 0),
       COALESCE(SUM(amount) FILTER (WHERE change_type = '사용'), 0)
FROM point_entries
WHERE user_id = $1`,
		userID,
	).Scan(&agg.AccrualAmount, &agg.RedemptionAmount); err != nil {
		return nil, convertErr(err, "get point balance of user %d", userID)
	}
	return &agg, nil
}

// GetByUserID возвращает журнал юзера, новые записи первыми.
func (p *PointRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.PointEntry, error) {
	rows, err := p.db.Query(ctx,
		`SELECT `+pointColumns+` FROM point_entries WHERE user_id = $1 ORDER BY created_at DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, convertErr(err, "get point entries of user %d", userID)
	}
	entries, err := collect(rows, scanPointEntry)
	if err != nil {
		return nil, convertErr(err, "scan point entries of user %d", userID)
	}
	return entries, nil
}

func scanPointEntry(row rowScanner) (*domain.PointEntry, error) {
	var e domain.PointEntry
	if err := row.Scan(
		&e.ID,
		&e.CreatedAt,
		&e.UserID,
		&e.OrderID,
		&e.ChangeType,
		&e.Amount,
		&e.Description,
		&e.UsedAt,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &e, nil
}
