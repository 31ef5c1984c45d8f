package service

import (
	"testing"
	"time"

	"github.com/fsdevblog/consulting-checkout/internal/domain"
	"github.com/fsdevblog/consulting-checkout/internal/repository/repoargs"
	"github.com/fsdevblog/consulting-checkout/internal/service/mocks"
	"github.com/fsdevblog/consulting-checkout/pkg/uow"
	uowmocks "github.com/fsdevblog/consulting-checkout/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type CouponServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockCouponRepo *mocks.MockCouponRepository
	now            time.Time
	couponService  *CouponService
}

func TestCouponServiceSuite(t *testing.T) {
	suite.Run(t, new(CouponServiceTestSuite))
}

func (s *CouponServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	mockUOW := uowmocks.NewMockUOW(s.mockCtrl)
	s.mockCouponRepo = mocks.NewMockCouponRepository(s.mockCtrl)
	s.now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.CouponRepoName)).
		Return(s.mockCouponRepo, nil).AnyTimes()

	couponService, err := NewCouponService(mockUOW)
	s.Require().NoError(err)
	couponService.now = func() time.Time { return s.now }
	s.couponService = couponService
}

func (s *CouponServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *CouponServiceTestSuite) TestIssue() {
	cases := []struct {
		name       string
		template   domain.CouponTemplate
		wantExpiry *time.Time
	}{
		{
			name:       "with valid days",
			template:   domain.CouponTemplate{ID: 1, DiscountType: domain.DiscountTypeFixed, ValidDays: ptr(int32(30))},
			wantExpiry: ptr(s.now.AddDate(0, 0, 30)),
		},
		{
			name:     "without expiry",
			template: domain.CouponTemplate{ID: 2, DiscountType: domain.DiscountTypePercent},
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.mockCouponRepo.EXPECT().GetTemplate(gomock.Any(), tc.template.ID).Return(&tc.template, nil)
			s.mockCouponRepo.EXPECT().Issue(gomock.Any(), repoargs.IssueCoupon{
				UserID:     testUserID,
				TemplateID: tc.template.ID,
				ExpiryDate: tc.wantExpiry,
			}).Return(&domain.Coupon{ID: 10, TemplateID: tc.template.ID, ExpiryDate: tc.wantExpiry}, nil)

			coupon, err := s.couponService.Issue(s.T().Context(), testUserID, tc.template.ID)
			s.Require().NoError(err)
			s.Equal(tc.wantExpiry, coupon.ExpiryDate)
		})
	}
}

func (s *CouponServiceTestSuite) TestEvaluate() {
	s.mockCouponRepo.EXPECT().GetUserCoupon(gomock.Any(), testUserID, testCouponID).Return(&domain.Coupon{
		ID:       testCouponID,
		UserID:   testUserID,
		Template: domain.CouponTemplate{DiscountType: domain.DiscountTypePercent, DiscountValue: dec(10)},
	}, nil)
	s.mockCouponRepo.EXPECT().GetUserCoupon(gomock.Any(), testUserID, int64(404)).Return(nil, domain.ErrRecordNotFound)

	discount, err := s.couponService.Evaluate(s.T().Context(), testUserID, testCouponID, dec(100000))
	s.Require().NoError(err)
	s.True(discount.Equal(dec(10000)))

	_, err = s.couponService.Evaluate(s.T().Context(), testUserID, 404, dec(100000))
	s.Require().ErrorIs(err, domain.ErrInvalidCoupon)
}
