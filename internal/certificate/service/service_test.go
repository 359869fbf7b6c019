package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"ecrc42/internal/certificate/service/mocks"
	checkmodels "ecrc42/internal/check/models"
	"ecrc42/internal/evaluator"
	"ecrc42/internal/export"
	usermodels "ecrc42/internal/user/models"
	id "ecrc42/pkg/domain"
	dErrors "ecrc42/pkg/domain-errors"
	"ecrc42/pkg/platform/sentinel"
	"ecrc42/pkg/requestcontext"
)

type CertificateServiceSuite struct {
	suite.Suite
	profiles *mocks.MockProfileReader
	checks   *mocks.MockCheckLister
	activity *mocks.MockActivityRecorder
	renderer *mocks.MockCertificateRenderer
	service  *Service
	user     *usermodels.User
	ctx      context.Context
	base     time.Time
}

func TestCertificateServiceSuite(t *testing.T) {
	suite.Run(t, new(CertificateServiceSuite))
}

func (s *CertificateServiceSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.profiles = mocks.NewMockProfileReader(ctrl)
	s.checks = mocks.NewMockCheckLister(ctrl)
	s.activity = mocks.NewMockActivityRecorder(ctrl)
	s.renderer = mocks.NewMockCertificateRenderer(ctrl)
	s.service = New(s.profiles, s.checks, s.activity, s.renderer,
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))

	s.user = &usermodels.User{
		ID:       id.NewUserID(),
		Lernname: "Mia",
		Activity: usermodels.Activity{CheckedProducts: 3, TaggedCases: 1},
	}
	s.ctx = requestcontext.WithUserID(context.Background(), s.user.ID)
	s.base = time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)
	s.profiles.EXPECT().FindByID(gomock.Any(), s.user.ID).Return(s.user, nil).AnyTimes()
}

// check builds a stored check; cc is empty for products without a CC license.
func (s *CertificateServiceSuite) check(category evaluator.Category, cc evaluator.CCVariant, completed bool, at time.Time) *checkmodels.Check {
	answers := evaluator.AnswerSet{MediaType: evaluator.MediaPhoto, Description: "Bild " + string(category)}
	if cc != "" {
		answers.HasCCLicense = evaluator.Yes
		answers.CCLicense = cc
	}
	return checkmodels.NewCheck(id.NewCheckID(), s.user.ID, answers,
		evaluator.Outcome{Category: category}, completed, at)
}

func (s *CertificateServiceSuite) TestActivityCountsCertificate() {
	s.renderer.EXPECT().ActivityCertificate(gomock.Any()).DoAndReturn(
		func(c export.ActivityCertificate) (*export.File, error) {
			s.Equal("Mia", c.Lernname)
			s.Equal(4, c.Activity.Total())
			return &export.File{Name: "Aktivitaetszertifikat_Mia.pdf"}, nil
		})
	s.activity.EXPECT().Add(gomock.Any(), s.user.ID, usermodels.CounterGeneratedCertificates, 1)

	file, err := s.service.Activity(s.ctx)
	s.Require().NoError(err)
	s.Equal("Aktivitaetszertifikat_Mia.pdf", file.Name)
}

func (s *CertificateServiceSuite) TestProtocolListsCompletedChecksOldestFirst() {
	newest := s.check(evaluator.CategoryForbidden, "", true, s.base.Add(2*time.Hour))
	draft := s.check(evaluator.CategoryAllowed, "", false, s.base.Add(time.Hour))
	oldest := s.check(evaluator.CategoryConditional, evaluator.CCBY, true, s.base)
	s.checks.EXPECT().ListByUser(gomock.Any(), s.user.ID).
		Return([]*checkmodels.Check{newest, draft, oldest}, nil)

	s.renderer.EXPECT().Protocol(gomock.Any()).DoAndReturn(
		func(p export.Protocol) (*export.File, error) {
			s.Equal(3, p.CheckedProducts)
			s.Require().Len(p.Entries, 2)
			s.True(p.Entries[0].Passed)
			s.Contains(p.Entries[0].CCLicense, "CC-BY")
			s.False(p.Entries[1].Passed)
			s.Empty(p.Entries[1].CCLicense)
			return &export.File{}, nil
		})

	_, err := s.service.Protocol(s.ctx)
	s.Require().NoError(err)
}

func (s *CertificateServiceSuite) TestCCSkipsForbiddenAndUnlicensed() {
	s.checks.EXPECT().ListByUser(gomock.Any(), s.user.ID).Return([]*checkmodels.Check{
		s.check(evaluator.CategoryAllowed, evaluator.CCBYSA, true, s.base),
		s.check(evaluator.CategoryForbidden, evaluator.CCBY, true, s.base),
		s.check(evaluator.CategoryAllowed, "", true, s.base),
	}, nil)
	s.renderer.EXPECT().CCCertificates(gomock.Any()).DoAndReturn(
		func(c export.CCCertificates) (*export.File, error) {
			s.Require().Len(c.Entries, 1)
			s.Equal(evaluator.CCBYSA, c.Entries[0].License)
			return &export.File{}, nil
		})

	_, err := s.service.CC(s.ctx)
	s.Require().NoError(err)
}

func (s *CertificateServiceSuite) TestCCWithoutProducts() {
	s.checks.EXPECT().ListByUser(gomock.Any(), s.user.ID).Return(nil, nil)
	s.renderer.EXPECT().CCCertificates(gomock.Any()).Return(nil, export.ErrNothingToCertify)

	_, err := s.service.CC(s.ctx)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	s.Contains(err.Error(), "Creative Commons")
}

func (s *CertificateServiceSuite) TestRequiresProfile() {
	_, err := s.service.Activity(context.Background())
	s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))

	ghost := id.NewUserID()
	s.profiles.EXPECT().FindByID(gomock.Any(), ghost).Return(nil, sentinel.ErrNotFound)
	_, err = s.service.Protocol(requestcontext.WithUserID(context.Background(), ghost))
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}
