package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	jwttoken "ecrc42/internal/jwt_token"
	"ecrc42/internal/user/metrics"
	"ecrc42/internal/user/models"
	"ecrc42/internal/user/service/mocks"
	id "ecrc42/pkg/domain"
	dErrors "ecrc42/pkg/domain-errors"
	"ecrc42/pkg/platform/sentinel"
	"ecrc42/pkg/requestcontext"
)

type UserServiceSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	users   *mocks.MockUserStore
	tokens  *mocks.MockTokenIssuer
	revoker *mocks.MockTokenRevoker
	metrics *metrics.Metrics
	service *Service
	ctx     context.Context
	now     time.Time
	codes   []string
}

func TestUserServiceSuite(t *testing.T) {
	suite.Run(t, new(UserServiceSuite))
}

func (s *UserServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.users = mocks.NewMockUserStore(s.ctrl)
	s.tokens = mocks.NewMockTokenIssuer(s.ctrl)
	s.revoker = mocks.NewMockTokenRevoker(s.ctrl)
	s.metrics = metrics.NewWithRegisterer(prometheus.NewRegistry())
	s.codes = nil

	hash, err := bcrypt.GenerateFromPassword([]byte("geheim"), bcrypt.MinCost)
	s.Require().NoError(err)

	s.service = New(s.users, s.tokens, s.revoker,
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithMetrics(s.metrics),
		WithAdmin(AdminCredentials{Email: " Admin@School.ch ", PasswordHash: string(hash)}),
		WithCodeGenerator(func() (string, error) {
			if len(s.codes) == 0 {
				return "", errors.New("no codes left")
			}
			c := s.codes[0]
			s.codes = s.codes[1:]
			return c, nil
		}),
	)
	s.now = time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC)
	s.ctx = requestcontext.WithTime(context.Background(), s.now)
}

func (s *UserServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *UserServiceSuite) expectToken(role string) {
	s.tokens.EXPECT().Issue(gomock.Any(), role, gomock.Any()).
		Return(jwttoken.Token{Value: "signed", JTI: "jti-1", ExpiresAt: s.now.Add(time.Hour)}, nil)
}

func (s *UserServiceSuite) TestRegister() {
	s.codes = []string{"AAAA-BBBB-CCCC"}
	s.users.EXPECT().ReserveCode(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, code *models.AccessCode) error {
			s.Equal("AAAA-BBBB-CCCC", code.Code)
			s.Equal("Mia", code.Lernname)
			s.Equal(s.now, code.CreatedAt)
			return nil
		})
	s.users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u *models.User) error {
			s.Equal("AAAA-BBBB-CCCC", u.Code)
			s.Equal(models.RoleStudent, u.Role)
			return nil
		})
	s.expectToken("student")

	session, err := s.service.Register(s.ctx, " Mia ")
	s.Require().NoError(err)
	s.Equal("signed", session.Token)
	s.Equal("AAAA-BBBB-CCCC", session.AccessCode)
	s.Equal("Mia", session.User.Lernname)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.Registrations))
}

func (s *UserServiceSuite) TestRegisterRetriesOnCodeCollision() {
	s.codes = []string{"AAAA-AAAA-AAAA", "BBBB-BBBB-BBBB"}
	gomock.InOrder(
		s.users.EXPECT().ReserveCode(gomock.Any(), gomock.Any()).Return(sentinel.ErrConflict),
		s.users.EXPECT().ReserveCode(gomock.Any(), gomock.Any()).Return(nil),
	)
	s.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	s.expectToken("student")

	session, err := s.service.Register(s.ctx, "Mia")
	s.Require().NoError(err)
	s.Equal("BBBB-BBBB-BBBB", session.AccessCode)
}

func (s *UserServiceSuite) TestRegisterReleasesCodeWhenProfileFails() {
	s.codes = []string{"AAAA-AAAA-AAAA"}
	s.users.EXPECT().ReserveCode(gomock.Any(), gomock.Any()).Return(nil)
	s.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
	s.users.EXPECT().ReleaseCode(gomock.Any(), "AAAA-AAAA-AAAA").Return(nil)

	_, err := s.service.Register(s.ctx, "Mia")
	s.True(dErrors.HasCode(err, dErrors.CodeInternal))
}

func (s *UserServiceSuite) TestRegisterValidatesLernname() {
	_, err := s.service.Register(s.ctx, "  ")
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
}

func (s *UserServiceSuite) TestLoginWithCodeKeepsProfile() {
	userID := id.NewUserID()
	stored := &models.User{ID: userID, Lernname: "Mia", Role: models.RoleStudent, Activity: models.Activity{CheckedProducts: 4}}
	s.users.EXPECT().FindCode(gomock.Any(), "ABCD-EFGH-JKMN").
		Return(&models.AccessCode{Code: "ABCD-EFGH-JKMN", UserID: userID, Lernname: "Mia"}, nil)
	s.users.EXPECT().FindByID(gomock.Any(), userID).Return(stored, nil)
	s.expectToken("student")

	session, err := s.service.LoginWithCode(s.ctx, "abcd efgh jkmn")
	s.Require().NoError(err)
	s.Equal(4, session.User.Activity.CheckedProducts)
	s.Empty(session.AccessCode)
}

func (s *UserServiceSuite) TestLoginWithCodeRecreatesMissingProfile() {
	userID := id.NewUserID()
	s.users.EXPECT().FindCode(gomock.Any(), "ABCD-EFGH-JKMN").
		Return(&models.AccessCode{Code: "ABCD-EFGH-JKMN", UserID: userID, Lernname: "Mia", CreatedAt: s.now}, nil)
	s.users.EXPECT().FindByID(gomock.Any(), userID).Return(nil, sentinel.ErrNotFound)
	s.users.EXPECT().EnsureProfile(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u *models.User) (*models.User, error) {
			s.Equal("Mia", u.Lernname)
			s.Equal(userID, u.ID)
			return u, nil
		})
	s.expectToken("student")

	_, err := s.service.LoginWithCode(s.ctx, "ABCD-EFGH-JKMN")
	s.Require().NoError(err)
}

func (s *UserServiceSuite) TestLoginWithUnknownCode() {
	s.users.EXPECT().FindCode(gomock.Any(), "ABCD-EFGH-JKMN").Return(nil, sentinel.ErrNotFound)

	_, err := s.service.LoginWithCode(s.ctx, "ABCD-EFGH-JKMN")
	s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))

	_, err = s.service.LoginWithCode(s.ctx, "not-a-code")
	s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	s.Equal(2.0, testutil.ToFloat64(s.metrics.Logins.WithLabelValues("code", "failure")))
}

func (s *UserServiceSuite) TestAdminLogin() {
	s.users.EXPECT().EnsureProfile(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u *models.User) (*models.User, error) {
			s.Equal("admin@school.ch", u.Email)
			s.Equal(models.RoleAdmin, u.Role)
			return u, nil
		}).Times(2)
	s.tokens.EXPECT().Issue(gomock.Any(), "admin", "admin@school.ch").
		Return(jwttoken.Token{Value: "signed"}, nil).Times(2)

	first, err := s.service.AdminLogin(s.ctx, "ADMIN@school.ch", "geheim")
	s.Require().NoError(err)
	second, err := s.service.AdminLogin(s.ctx, "admin@school.ch", "geheim")
	s.Require().NoError(err)
	s.Equal(first.User.ID, second.User.ID, "admin id is stable")
}

func (s *UserServiceSuite) TestAdminLoginRejectsBadCredentials() {
	_, err := s.service.AdminLogin(s.ctx, "admin@school.ch", "falsch")
	s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))

	_, err = s.service.AdminLogin(s.ctx, "other@school.ch", "geheim")
	s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))

	unconfigured := New(s.users, s.tokens, s.revoker)
	_, err = unconfigured.AdminLogin(s.ctx, "admin@school.ch", "geheim")
	s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func (s *UserServiceSuite) TestLogout() {
	ctx := requestcontext.WithToken(s.ctx, "jti-9", time.Now().Add(time.Hour))
	s.revoker.EXPECT().RevokeToken(gomock.Any(), "jti-9", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, ttl time.Duration) error {
			s.InDelta(time.Hour.Seconds(), ttl.Seconds(), 5)
			return nil
		})
	s.Require().NoError(s.service.Logout(ctx))

	err := s.service.Logout(s.ctx)
	s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func (s *UserServiceSuite) TestProfile() {
	userID := id.NewUserID()
	ctx := requestcontext.WithUserID(s.ctx, userID)
	s.users.EXPECT().FindByID(gomock.Any(), userID).Return(&models.User{ID: userID, Lernname: "Mia"}, nil)

	u, err := s.service.Profile(ctx)
	s.Require().NoError(err)
	s.Equal("Mia", u.Lernname)

	s.users.EXPECT().FindByID(gomock.Any(), userID).Return(nil, sentinel.ErrNotFound)
	_, err = s.service.Profile(ctx)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}
