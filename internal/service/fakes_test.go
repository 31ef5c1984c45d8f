package service

import (
	"context"

	"github.com/fsdevblog/consulting-checkout/internal/domain"
	"github.com/fsdevblog/consulting-checkout/internal/repository/repoargs"
	"github.com/shopspring/decimal"
)

// memPointRepo журнал баллов в памяти с тем же ограничением уникальности списания по заказу, что и в БД.
type memPointRepo struct {
	entries []domain.PointEntry
}

func (m *memPointRepo) Append(_ context.Context, args repoargs.PointEntryCreate) (*domain.PointEntry, error) {
	if args.ChangeType == domain.PointChangeRedemption && args.OrderID != nil {
		for _, e := range m.entries {
			if e.ChangeType == domain.PointChangeRedemption && e.OrderID != nil && *e.OrderID == *args.OrderID {
				return nil, domain.ErrDuplicateKey
			}
		}
	}
	entry := domain.PointEntry{
		ID:          int64(len(m.entries) + 1),
		UserID:      args.UserID,
		OrderID:     args.OrderID,
		ChangeType:  args.ChangeType,
		Amount:      args.Amount,
		Description: args.Description,
		UsedAt:      args.UsedAt,
	}
	m.entries = append(m.entries, entry)
	return &entry, nil
}

func (m *memPointRepo) GetUserBalance(_ context.Context, userID int64) (*repoargs.PointAggregation, error) {
	agg := repoargs.PointAggregation{AccrualAmount: decimal.Zero, RedemptionAmount: decimal.Zero}
	for _, e := range m.entries {
		if e.UserID != userID {
			continue
		}
		switch e.ChangeType {
		case domain.PointChangeAccrual:
			agg.AccrualAmount = agg.AccrualAmount.Add(e.Amount)
		case domain.PointChangeRedemption:
			agg.RedemptionAmount = agg.RedemptionAmount.Add(e.Amount)
		}
	}
	return &agg, nil
}

func (m *memPointRepo) GetByUserID(_ context.Context, userID int64) ([]domain.PointEntry, error) {
	var res = make([]domain.PointEntry, 0)
	for i := len(m.entries) - 1; i >= 0; i-- {
		if m.entries[i].UserID == userID {
			res = append(res, m.entries[i])
		}
	}
	return res, nil
}

func (m *memPointRepo) accrue(userID int64, amount int64) {
	m.entries = append(m.entries, domain.PointEntry{
		ID:         int64(len(m.entries) + 1),
		UserID:     userID,
		ChangeType: domain.PointChangeAccrual,
		Amount:     decimal.NewFromInt(amount),
	})
}

func (m *memPointRepo) balance(userID int64) decimal.Decimal {
	agg, _ := m.GetUserBalance(context.Background(), userID)
	return agg.AccrualAmount.Sub(agg.RedemptionAmount)
}

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func ptr[T any](v T) *T {
	return &v
}
