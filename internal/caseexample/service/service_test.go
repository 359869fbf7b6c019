package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"ecrc42/internal/caseexample/models"
	"ecrc42/internal/caseexample/service/mocks"
	casestore "ecrc42/internal/caseexample/store"
	"ecrc42/internal/docstore"
	"ecrc42/internal/notify"
	usermodels "ecrc42/internal/user/models"
	id "ecrc42/pkg/domain"
	dErrors "ecrc42/pkg/domain-errors"
	"ecrc42/pkg/requestcontext"
)

type CaseServiceSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	profiles  *mocks.MockProfileReader
	activity  *mocks.MockActivityRecorder
	publisher *mocks.MockPublisher
	store     *casestore.Store
	service   *Service
	user      id.UserID
	ctx       context.Context
	now       time.Time
}

func TestCaseServiceSuite(t *testing.T) {
	suite.Run(t, new(CaseServiceSuite))
}

func (s *CaseServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.profiles = mocks.NewMockProfileReader(s.ctrl)
	s.activity = mocks.NewMockActivityRecorder(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)
	s.store = casestore.New(docstore.NewMemory())
	s.service = New(s.store, s.profiles, s.activity, s.publisher,
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithBaseURL("https://ecrc42.example/"),
	)
	s.user = id.NewUserID()
	s.now = time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	s.ctx = requestcontext.WithTime(requestcontext.WithUserID(context.Background(), s.user), s.now)
}

func (s *CaseServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CaseServiceSuite) seed(title string, at time.Time) *models.Case {
	c, err := models.NewCase(id.NewCaseID(), id.NewUserID(), "Noah", title, "Beschreibung "+title, "Bild", at)
	s.Require().NoError(err)
	s.Require().NoError(s.store.Create(context.Background(), c))
	return c
}

func (s *CaseServiceSuite) TestCreatePublishesNotification() {
	s.profiles.EXPECT().FindByID(gomock.Any(), s.user).Return(&usermodels.User{ID: s.user, Lernname: "Mia"}, nil)
	s.activity.EXPECT().Add(gomock.Any(), s.user, usermodels.CounterTaggedCases, 1)
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e notify.Event) bool {
			s.Equal(EventCaseCreated, e.Type)
			n, ok := e.Data.(Notification)
			s.Require().True(ok)
			s.Equal("Plakat", n.Title)
			s.Equal("Mia", n.Author)
			s.Equal("https://ecrc42.example/cases/"+n.CaseID, n.URL)
			s.Equal("2026-06-01T08:00:00Z", n.CreatedAt)
			return false
		})

	c, err := s.service.Create(s.ctx, "Plakat", "Ein Schulplakat", "Bild")
	s.Require().NoError(err, "a dropped notification does not fail creation")
	s.Equal("Mia", c.AuthorName)

	got, err := s.service.Get(s.ctx, c.ID)
	s.Require().NoError(err)
	s.Equal("Plakat", got.Title)
}

func (s *CaseServiceSuite) TestCreateValidation() {
	s.profiles.EXPECT().FindByID(gomock.Any(), s.user).Return(&usermodels.User{ID: s.user, Lernname: "Mia"}, nil)

	_, err := s.service.Create(s.ctx, "", "x", "")
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
}

func (s *CaseServiceSuite) TestListRanksAndFilters() {
	popular := s.seed("Video mit Musik", s.now.Add(-3*time.Hour))
	newer := s.seed("Plakat neu", s.now.Add(-time.Hour))
	older := s.seed("Plakat alt", s.now.Add(-2*time.Hour))
	s.Require().NoError(s.store.AddReaction(context.Background(), popular.ID, "🔥", id.NewUserID()))
	s.Require().NoError(s.store.AddTag(context.Background(), older.ID, "#wichtig", id.NewUserID()))
	s.Require().NoError(s.store.AddTag(context.Background(), newer.ID, "#wichtig", id.NewUserID()))

	all, err := s.service.List(s.ctx, "", nil)
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Equal([]id.CaseID{popular.ID, newer.ID, older.ID}, []id.CaseID{all[0].ID, all[1].ID, all[2].ID})

	plakate, err := s.service.List(s.ctx, "plakat", nil)
	s.Require().NoError(err)
	s.Len(plakate, 2)

	tagged, err := s.service.List(s.ctx, "", []string{"#wichtig", "#kreativ"})
	s.Require().NoError(err)
	s.Len(tagged, 2)

	_, err = s.service.List(s.ctx, "", []string{"#unbekannt"})
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
}

func (s *CaseServiceSuite) TestToggleReaction() {
	c := s.seed("Plakat", s.now)

	s.activity.EXPECT().Add(gomock.Any(), s.user, usermodels.CounterLikedCases, 1)
	got, added, err := s.service.ToggleReaction(s.ctx, c.ID, "👍")
	s.Require().NoError(err)
	s.True(added)
	s.True(got.HasReaction("👍", s.user))

	s.activity.EXPECT().Add(gomock.Any(), s.user, usermodels.CounterLikedCases, -1)
	got, added, err = s.service.ToggleReaction(s.ctx, c.ID, "👍")
	s.Require().NoError(err)
	s.False(added)
	s.Equal(0, got.ReactionCount())

	_, _, err = s.service.ToggleReaction(s.ctx, c.ID, "😀")
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))

	_, _, err = s.service.ToggleReaction(s.ctx, id.NewCaseID(), "👍")
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *CaseServiceSuite) TestToggleTagKeepsOtherUsersTag() {
	c := s.seed("Plakat", s.now)
	other := id.NewUserID()
	s.Require().NoError(s.store.AddTag(context.Background(), c.ID, "#kreativ", other))

	s.activity.EXPECT().Add(gomock.Any(), s.user, usermodels.CounterTaggedCases, 1)
	_, added, err := s.service.ToggleTag(s.ctx, c.ID, "#kreativ")
	s.Require().NoError(err)
	s.True(added)

	s.activity.EXPECT().Add(gomock.Any(), s.user, usermodels.CounterTaggedCases, -1)
	got, added, err := s.service.ToggleTag(s.ctx, c.ID, "#kreativ")
	s.Require().NoError(err)
	s.False(added)
	s.Equal([]string{"#kreativ"}, got.Tags)
	s.True(got.HasUserTag("#kreativ", other))
}

func (s *CaseServiceSuite) TestAdminComment() {
	c := s.seed("Plakat", s.now)

	_, err := s.service.AddAdminComment(s.ctx, c.ID, "Gut")
	s.True(dErrors.HasCode(err, dErrors.CodeForbidden))

	adminCtx := requestcontext.WithAdminEmail(requestcontext.WithRole(s.ctx, requestcontext.RoleAdmin), "admin@school.ch")
	_, err = s.service.AddAdminComment(adminCtx, c.ID, "   ")
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))

	got, err := s.service.AddAdminComment(adminCtx, c.ID, " Gute Quelle ")
	s.Require().NoError(err)
	s.Require().NotNil(got.AdminComment)
	s.Equal("Gute Quelle", got.AdminComment.Text)
	s.Equal("admin@school.ch", got.AdminComment.AdminEmail)

	_, err = s.service.AddAdminComment(adminCtx, id.NewCaseID(), "x")
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *CaseServiceSuite) TestStoreFailureIsInternal() {
	cases := mocks.NewMockCaseStore(s.ctrl)
	svc := New(cases, s.profiles, s.activity, s.publisher, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	cases.EXPECT().List(gomock.Any(), "").Return(nil, errors.New("connection reset"))

	_, err := svc.List(s.ctx, "", nil)
	s.True(dErrors.HasCode(err, dErrors.CodeInternal))
}
