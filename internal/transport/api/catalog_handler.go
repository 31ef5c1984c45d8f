package api

import (
	"context"
	"net/http"
	"time"

	"github.com/fsdevblog/consulting-checkout/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type CatalogHandler struct {
	catalog CatalogServicer
}

func NewCatalogHandler(catalog CatalogServicer) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

type ScheduleAvailabilityResponse struct {
	ID                int64                     `json:"id"`
	Title             string                    `json:"title"`
	Price             decimal.Decimal           `json:"price"`
	Capacity          int32                     `json:"capacity"`
	CapacityRemaining int32                     `json:"capacity_remaining"`
	Status            domain.ScheduleStatusType `json:"status"`
	StartsAt          time.Time                 `json:"starts_at"`
}

// Show GET RouteGroup + ScheduleRoute.
func (h *CatalogHandler) Show(c *gin.Context) {
	scheduleID, ok := idParam(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	availability, err := h.catalog.GetScheduleAvailability(ctx, scheduleID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, ScheduleAvailabilityResponse{
		ID:                availability.ID,
		Title:             availability.Title,
		Price:             availability.Price,
		Capacity:          availability.Capacity,
		CapacityRemaining: availability.CapacityRemaining,
		Status:            availability.Status,
		StartsAt:          availability.StartsAt,
	})
}
