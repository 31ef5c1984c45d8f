package api

import (
	"net/http"

	"github.com/fsdevblog/consulting-checkout/internal/domain"
	"github.com/fsdevblog/consulting-checkout/internal/service"
	"github.com/fsdevblog/consulting-checkout/internal/transport/api/testutils"
	"github.com/golang/mock/gomock"
)

func (s *HandlerTestSuite) TestRegister() {
	argsOk := service.RegisterUserArgs{Username: "test", Password: "password"}
	argsDup := service.RegisterUserArgs{Username: "duplicate", Password: "password"}

	s.mockUserService.EXPECT().Register(gomock.Any(), argsOk).Return(&domain.User{ID: 1}, s.userToken, nil)
	s.mockUserService.EXPECT().Register(gomock.Any(), argsDup).Return(nil, "", domain.ErrDuplicateKey)

	var cases = []struct {
		name       string
		args       UserRegisterParams
		auth       bool
		wantStatus int
	}{
		{name: "user created", args: UserRegisterParams{Username: "test", Password: "password"}, wantStatus: http.StatusOK},
		{
			name:       "user already logged in",
			args:       UserRegisterParams{Username: "test", Password: "password"},
			auth:       true,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "duplicate",
			args:       UserRegisterParams{Username: "duplicate", Password: "password"},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "empty username",
			args:       UserRegisterParams{Password: "password"},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "short password",
			args:       UserRegisterParams{Username: "test", Password: "123"},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "username over bytes limit",
			args: UserRegisterParams{
				Username: testutils.GenerateOverBytesUnderRunes(40),
				Password: "password",
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			var opts []func(*testutils.RequestOptions)
			if tc.auth {
				opts = append(opts, asUser(s.userToken))
			}
			res, body := s.request(http.MethodPost, RouteGroup+RegisterRoute, tc.args, opts...)
			s.Equal(tc.wantStatus, res, string(body))
		})
	}
}

func (s *HandlerTestSuite) TestLogin() {
	s.mockUserService.EXPECT().
		Login(gomock.Any(), service.LoginUserArgs{Username: "test", Password: "password"}).
		Return(&domain.User{ID: 1, Username: "test"}, s.userToken, nil)
	s.mockUserService.EXPECT().
		Login(gomock.Any(), service.LoginUserArgs{Username: "test", Password: "wrong-password"}).
		Return(nil, "", domain.ErrPasswordMissMatch)

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + LoginRoute,
		Body:   jsonBody(s, UserLoginParams{Username: "test", Password: "password"}),
	}, testutils.WithHeader("Content-Type", "application/json"))
	s.Require().NoError(err)
	defer func() {
		s.Require().NoError(res.Body.Close())
	}()
	s.Equal(http.StatusOK, res.StatusCode)
	s.Equal("Bearer "+s.userToken, res.Header.Get("Authorization"))

	status, body := s.request(http.MethodPost, RouteGroup+LoginRoute,
		UserLoginParams{Username: "test", Password: "wrong-password"})
	s.Equal(http.StatusUnauthorized, status)
	s.Equal("INVALID_CREDENTIALS", s.decodeError(body).Code)
}
