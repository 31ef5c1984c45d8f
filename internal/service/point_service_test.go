package service

import (
	"context"
	"testing"

	"github.com/fsdevblog/consulting-checkout/internal/domain"
	"github.com/fsdevblog/consulting-checkout/internal/repository/repoargs"
	"github.com/fsdevblog/consulting-checkout/internal/service/mocks"
	"github.com/fsdevblog/consulting-checkout/pkg/uow"
	uowmocks "github.com/fsdevblog/consulting-checkout/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type PointServiceTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockUOW      *uowmocks.MockUOW
	mockTX       *uowmocks.MockTX
	mockUserRepo *mocks.MockUserRepository
	points       *memPointRepo
	pointService *PointService
}

func TestPointServiceSuite(t *testing.T) {
	suite.Run(t, new(PointServiceTestSuite))
}

func (s *PointServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockUserRepo = mocks.NewMockUserRepository(s.mockCtrl)
	s.points = new(memPointRepo)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.PointRepoName)).Return(s.points, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.PointRepoName)).Return(s.points, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.UserRepoName)).Return(s.mockUserRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		}).AnyTimes()

	pointService, err := NewPointService(s.mockUOW)
	s.Require().NoError(err)
	s.pointService = pointService
}

func (s *PointServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *PointServiceTestSuite) TestBalanceAndRedemption() {
	s.mockUserRepo.EXPECT().LockForUpdate(gomock.Any(), testUserID).Return(nil).AnyTimes()

	_, err := s.pointService.Accrue(s.T().Context(), testUserID, dec(20000), "가입 축하")
	s.Require().NoError(err)

	balance, err := s.pointService.GetBalance(s.T().Context(), testUserID)
	s.Require().NoError(err)
	s.True(balance.Equal(dec(20000)))

	_, err = s.pointService.ReserveRedemption(s.T().Context(), testUserID, dec(20001))
	s.Require().ErrorIs(err, domain.ErrInsufficientBalance)

	reservation, err := s.pointService.ReserveRedemption(s.T().Context(), testUserID, dec(5000))
	s.Require().NoError(err)
	// резерв ничего не пишет в журнал
	s.Len(s.points.entries, 1)

	s.Require().NoError(s.pointService.CommitRedemption(s.T().Context(), *reservation, testOrderID))
	err = s.pointService.CommitRedemption(s.T().Context(), *reservation, testOrderID)
	s.Require().ErrorIs(err, domain.ErrOrderAlreadyFinalized)

	balance, err = s.pointService.GetBalance(s.T().Context(), testUserID)
	s.Require().NoError(err)
	s.True(balance.Equal(dec(15000)))

	history, err := s.pointService.History(s.T().Context(), testUserID)
	s.Require().NoError(err)
	s.Require().Len(history, 2)
	s.Equal(domain.PointChangeRedemption, history[0].ChangeType)
	s.Equal(domain.PointChangeAccrual, history[1].ChangeType)
}

func (s *PointServiceTestSuite) TestAccrueInvalidAmount() {
	for _, amount := range []int64{0, -100} {
		_, err := s.pointService.Accrue(s.T().Context(), testUserID, dec(amount), "")
		s.Require().ErrorIs(err, domain.ErrInvalidPointAmount)
	}
	s.Empty(s.points.entries)
}

func (s *PointServiceTestSuite) TestCommitRedemptionUnknownUser() {
	s.points.accrue(testUserID, 1000)
	s.mockUserRepo.EXPECT().LockForUpdate(gomock.Any(), int64(404)).Return(domain.ErrRecordNotFound)

	err := s.pointService.CommitRedemption(
		s.T().Context(),
		domain.PointReservation{UserID: 404, Amount: dec(100)},
		testOrderID,
	)
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
	s.Len(s.points.entries, 1)
}
