package repoargs

import (
	"time"

	"github.com/fsdevblog/consulting-checkout/internal/domain"
	"github.com/shopspring/decimal"
)

type PointEntryCreate struct {
	UserID      int64
	OrderID     *int64
	ChangeType  domain.PointChangeType
	Amount      decimal.Decimal
	Description string
	UsedAt      *time.Time
}

// PointAggregation суммы начислений и списаний юзера.
type PointAggregation struct {
	AccrualAmount    decimal.Decimal
	RedemptionAmount decimal.Decimal
}
