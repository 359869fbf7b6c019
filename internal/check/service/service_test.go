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

	"ecrc42/internal/check/metrics"
	"ecrc42/internal/check/models"
	"ecrc42/internal/check/service/mocks"
	"ecrc42/internal/evaluator"
	"ecrc42/internal/export"
	usermodels "ecrc42/internal/user/models"
	id "ecrc42/pkg/domain"
	dErrors "ecrc42/pkg/domain-errors"
	"ecrc42/pkg/platform/sentinel"
	"ecrc42/pkg/requestcontext"
)

type CheckServiceSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	checks    *mocks.MockCheckStore
	evaluator *mocks.MockEvaluator
	activity  *mocks.MockActivityRecorder
	profiles  *mocks.MockProfileReader
	renderer  *mocks.MockReportRenderer
	metrics   *metrics.Metrics
	service   *Service
	owner     id.UserID
	ctx       context.Context
	now       time.Time
}

func TestCheckServiceSuite(t *testing.T) {
	suite.Run(t, new(CheckServiceSuite))
}

func (s *CheckServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.checks = mocks.NewMockCheckStore(s.ctrl)
	s.evaluator = mocks.NewMockEvaluator(s.ctrl)
	s.activity = mocks.NewMockActivityRecorder(s.ctrl)
	s.profiles = mocks.NewMockProfileReader(s.ctrl)
	s.renderer = mocks.NewMockReportRenderer(s.ctrl)
	s.metrics = metrics.NewWithRegisterer(prometheus.NewRegistry())
	s.service = New(s.checks, s.evaluator, s.activity, s.profiles, s.renderer,
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithMetrics(s.metrics),
	)
	s.owner = id.NewUserID()
	s.now = time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)
	s.ctx = requestcontext.WithTime(requestcontext.WithUserID(context.Background(), s.owner), s.now)
}

func (s *CheckServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func completeAnswers() evaluator.AnswerSet {
	return evaluator.AnswerSet{
		MediaType:    evaluator.MediaPhoto,
		AICreated:    evaluator.No,
		SourceType:   evaluator.SourceInternet,
		PublicDomain: evaluator.Yes,
		UsageType:    evaluator.UsageBlog,
	}
}

var allowed = evaluator.Outcome{Category: evaluator.CategoryAllowed, Rule: "public_domain"}

func (s *CheckServiceSuite) storedCheck(owner id.UserID, finalize bool) *models.Check {
	return models.NewCheck(id.NewCheckID(), owner, completeAnswers(), allowed, finalize, s.now.Add(-time.Hour))
}

func (s *CheckServiceSuite) TestCreate() {
	s.Run("finalized check counts towards checked products", func() {
		s.evaluator.EXPECT().Evaluate(gomock.Any(), completeAnswers()).Return(allowed)
		s.checks.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c *models.Check) error {
				s.Equal(s.owner, c.UserID)
				s.Equal(models.StatusCompleted, c.Status)
				s.Equal(s.now, c.CreatedAt)
				return nil
			})
		s.activity.EXPECT().Add(gomock.Any(), s.owner, usermodels.CounterCheckedProducts, 1)

		c, err := s.service.Create(s.ctx, completeAnswers(), true)
		s.Require().NoError(err)
		s.Equal("public_domain", c.Outcome.Rule)
		s.Require().NotNil(c.CompletedAt)
		s.Equal(1.0, testutil.ToFloat64(s.metrics.ChecksCreated.WithLabelValues("completed")))
	})

	s.Run("draft does not count", func() {
		s.evaluator.EXPECT().Evaluate(gomock.Any(), gomock.Any()).Return(allowed)
		s.checks.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		c, err := s.service.Create(s.ctx, completeAnswers(), false)
		s.Require().NoError(err)
		s.Equal(models.StatusDraft, c.Status)
		s.Nil(c.CompletedAt)
	})

	s.Run("incomplete answers name the missing fields", func() {
		_, err := s.service.Create(s.ctx, evaluator.AnswerSet{MediaType: evaluator.MediaPhoto}, true)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		s.Contains(err.Error(), "aiCreated")
		s.Contains(err.Error(), "usageType")
	})

	s.Run("store failure is internal", func() {
		s.evaluator.EXPECT().Evaluate(gomock.Any(), gomock.Any()).Return(allowed)
		s.checks.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

		_, err := s.service.Create(s.ctx, completeAnswers(), true)
		s.True(dErrors.HasCode(err, dErrors.CodeInternal))
	})

	s.Run("anonymous caller is rejected", func() {
		_, err := s.service.Create(context.Background(), completeAnswers(), true)
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})
}

func (s *CheckServiceSuite) TestGetEnforcesOwnership() {
	s.Run("owner reads own check", func() {
		c := s.storedCheck(s.owner, true)
		s.checks.EXPECT().FindByID(gomock.Any(), c.ID).Return(c, nil)

		got, err := s.service.Get(s.ctx, c.ID)
		s.Require().NoError(err)
		s.Equal(c.ID, got.ID)
	})

	s.Run("other user's check is forbidden", func() {
		c := s.storedCheck(id.NewUserID(), true)
		s.checks.EXPECT().FindByID(gomock.Any(), c.ID).Return(c, nil)

		_, err := s.service.Get(s.ctx, c.ID)
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	})

	s.Run("missing check is not found", func() {
		checkID := id.NewCheckID()
		s.checks.EXPECT().FindByID(gomock.Any(), checkID).Return(nil, sentinel.ErrNotFound)

		_, err := s.service.Get(s.ctx, checkID)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func (s *CheckServiceSuite) TestOwnershipOnMutations() {
	foreign := s.storedCheck(id.NewUserID(), false)
	s.checks.EXPECT().FindByID(gomock.Any(), foreign.ID).Return(foreign, nil).Times(4)

	_, err := s.service.Update(s.ctx, foreign.ID, completeAnswers())
	s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	_, err = s.service.Complete(s.ctx, foreign.ID)
	s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	err = s.service.Delete(s.ctx, foreign.ID)
	s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	_, err = s.service.Export(s.ctx, foreign.ID, export.FormatPDF)
	s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
}

func (s *CheckServiceSuite) TestList() {
	checks := []*models.Check{s.storedCheck(s.owner, true)}
	s.checks.EXPECT().ListByUser(gomock.Any(), s.owner).Return(checks, nil)

	got, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Len(got, 1)
}

func (s *CheckServiceSuite) TestUpdateReevaluates() {
	c := s.storedCheck(s.owner, true)
	revised := completeAnswers()
	revised.PublicDomain = evaluator.No
	revised.HasCCLicense = evaluator.No
	forbidden := evaluator.Outcome{Category: evaluator.CategoryForbidden, Rule: "online_other"}

	s.checks.EXPECT().FindByID(gomock.Any(), c.ID).Return(c, nil)
	s.evaluator.EXPECT().Evaluate(gomock.Any(), revised).Return(forbidden)
	s.checks.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, saved *models.Check) error {
			s.Equal("online_other", saved.Outcome.Rule)
			s.Equal(s.now, saved.UpdatedAt)
			s.Equal(models.StatusCompleted, saved.Status)
			return nil
		})

	got, err := s.service.Update(s.ctx, c.ID, revised)
	s.Require().NoError(err)
	s.Equal(evaluator.CategoryForbidden, got.Outcome.Category)
}

func (s *CheckServiceSuite) TestComplete() {
	s.Run("draft is completed and counted once", func() {
		c := s.storedCheck(s.owner, false)
		s.checks.EXPECT().FindByID(gomock.Any(), c.ID).Return(c, nil)
		s.checks.EXPECT().MarkCompleted(gomock.Any(), c.ID, s.now).Return(nil)
		s.activity.EXPECT().Add(gomock.Any(), s.owner, usermodels.CounterCheckedProducts, 1)

		got, err := s.service.Complete(s.ctx, c.ID)
		s.Require().NoError(err)
		s.Equal(models.StatusCompleted, got.Status)
		s.Require().NotNil(got.CompletedAt)
		s.Equal(s.now, *got.CompletedAt)
	})

	s.Run("completed check is left alone", func() {
		c := s.storedCheck(s.owner, true)
		s.checks.EXPECT().FindByID(gomock.Any(), c.ID).Return(c, nil)

		got, err := s.service.Complete(s.ctx, c.ID)
		s.Require().NoError(err)
		s.Equal(c.CompletedAt, got.CompletedAt)
	})
}

func (s *CheckServiceSuite) TestDelete() {
	c := s.storedCheck(s.owner, true)
	s.checks.EXPECT().FindByID(gomock.Any(), c.ID).Return(c, nil)
	s.checks.EXPECT().Delete(gomock.Any(), c.ID).Return(nil)

	s.Require().NoError(s.service.Delete(s.ctx, c.ID))
	s.Equal(1.0, testutil.ToFloat64(s.metrics.ChecksDeleted))
}

func (s *CheckServiceSuite) TestExport() {
	c := s.storedCheck(s.owner, true)
	s.checks.EXPECT().FindByID(gomock.Any(), c.ID).Return(c, nil)
	s.profiles.EXPECT().FindByID(gomock.Any(), s.owner).Return(&usermodels.User{ID: s.owner, Lernname: "Mia"}, nil)
	s.renderer.EXPECT().CheckReport(gomock.Any(), export.FormatHTML).DoAndReturn(
		func(rep export.CheckReport, f export.Format) (*export.File, error) {
			s.Equal("Mia", rep.Lernname)
			s.Equal(c.ID.String(), rep.ID)
			s.Equal("completed", rep.Status)
			return &export.File{Name: "r.html", ContentType: f.ContentType(), Body: []byte("<html>")}, nil
		})

	file, err := s.service.Export(s.ctx, c.ID, export.FormatHTML)
	s.Require().NoError(err)
	s.Equal("r.html", file.Name)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.Exports.WithLabelValues("html")))
}
