package api

import (
	"encoding/json"
	"net/http"

	"github.com/fsdevblog/consulting-checkout/internal/domain"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
)

func (s *HandlerTestSuite) TestScheduleAvailability() {
	s.mockCatalogService.EXPECT().GetScheduleAvailability(gomock.Any(), int64(5)).
		Return(&domain.ScheduleAvailability{
			ID:                5,
			Title:             "1:1 커리어 상담",
			Price:             decimal.NewFromInt(50000),
			Capacity:          4,
			CapacityRemaining: 1,
			Status:            domain.ScheduleStatusOpen,
		}, nil)
	s.mockCatalogService.EXPECT().GetScheduleAvailability(gomock.Any(), int64(6)).
		Return(nil, domain.ErrRecordNotFound)

	status, body := s.request(http.MethodGet, RouteGroup+"/schedules/5", nil)
	s.Require().Equal(http.StatusOK, status)

	var resp ScheduleAvailabilityResponse
	s.Require().NoError(json.Unmarshal(body, &resp))
	s.Equal(int32(1), resp.CapacityRemaining)
	s.True(resp.Price.Equal(decimal.NewFromInt(50000)))

	status, _ = s.request(http.MethodGet, RouteGroup+"/schedules/6", nil)
	s.Equal(http.StatusNotFound, status)
}
