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

	"ecrc42/internal/evaluator"
	"ecrc42/internal/export"
	"ecrc42/internal/license/models"
	"ecrc42/internal/license/service/mocks"
	usermodels "ecrc42/internal/user/models"
	id "ecrc42/pkg/domain"
	dErrors "ecrc42/pkg/domain-errors"
	"ecrc42/pkg/platform/sentinel"
	"ecrc42/pkg/requestcontext"
)

type LicenseServiceSuite struct {
	suite.Suite
	licenses *mocks.MockLicenseStore
	activity *mocks.MockActivityRecorder
	renderer *mocks.MockDeclarationRenderer
	service  *Service
	userID   id.UserID
	now      time.Time
	ctx      context.Context
}

func TestLicenseServiceSuite(t *testing.T) {
	suite.Run(t, new(LicenseServiceSuite))
}

func (s *LicenseServiceSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.licenses = mocks.NewMockLicenseStore(ctrl)
	s.activity = mocks.NewMockActivityRecorder(ctrl)
	s.renderer = mocks.NewMockDeclarationRenderer(ctrl)
	s.service = New(s.licenses, s.activity, s.renderer,
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	s.userID = id.NewUserID()
	s.now = time.Date(2026, 6, 1, 14, 0, 0, 0, time.UTC)
	s.ctx = requestcontext.WithTime(requestcontext.WithUserID(context.Background(), s.userID), s.now)
}

func draft() models.Draft {
	return models.Draft{
		Title:                      "Klassenfoto",
		MediaType:                  evaluator.MediaPhoto,
		AuthorName:                 "Mia",
		CreativeWorkReasons:        []string{models.CreativeWorkReasons[1]},
		IndividualCharacterReasons: []string{models.IndividualCharacterReasons[2]},
		ExpressionForms:            []string{models.ExpressionForms[0]},
		ExpressionCustom:           "Poster im Schulhaus",
		SelectedLicense:            evaluator.CCBYNC,
	}
}

func (s *LicenseServiceSuite) TestGenerate() {
	s.licenses.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, l *models.License) error {
			s.Equal(s.userID, l.UserID)
			s.Equal(s.now, l.CreatedAt)
			return nil
		})
	s.activity.EXPECT().Add(gomock.Any(), s.userID, usermodels.CounterGeneratedLicenses, 1)

	l, err := s.service.Generate(s.ctx, draft())
	s.Require().NoError(err)
	s.Equal(evaluator.CCBYNC, l.SelectedLicense)
}

func (s *LicenseServiceSuite) TestGenerateRejectsInvalidDraft() {
	d := draft()
	d.CreativeWorkReasons = nil

	_, err := s.service.Generate(s.ctx, d)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
}

func (s *LicenseServiceSuite) TestGenerateDoesNotCountOnStoreFailure() {
	s.licenses.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	_, err := s.service.Generate(s.ctx, draft())
	s.True(dErrors.HasCode(err, dErrors.CodeInternal))
}

func (s *LicenseServiceSuite) TestGenerateRequiresUser() {
	_, err := s.service.Generate(context.Background(), draft())
	s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func (s *LicenseServiceSuite) TestGetChecksOwnership() {
	own, err := models.NewLicense(id.NewLicenseID(), s.userID, draft(), s.now)
	s.Require().NoError(err)
	other, err := models.NewLicense(id.NewLicenseID(), id.NewUserID(), draft(), s.now)
	s.Require().NoError(err)

	s.licenses.EXPECT().FindByID(gomock.Any(), own.ID).Return(own, nil)
	got, err := s.service.Get(s.ctx, own.ID)
	s.Require().NoError(err)
	s.Equal(own.ID, got.ID)

	s.licenses.EXPECT().FindByID(gomock.Any(), other.ID).Return(other, nil)
	_, err = s.service.Get(s.ctx, other.ID)
	s.True(dErrors.HasCode(err, dErrors.CodeForbidden))

	missing := id.NewLicenseID()
	s.licenses.EXPECT().FindByID(gomock.Any(), missing).Return(nil, sentinel.ErrNotFound)
	_, err = s.service.Get(s.ctx, missing)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *LicenseServiceSuite) TestCertificate() {
	l, err := models.NewLicense(id.NewLicenseID(), s.userID, draft(), s.now)
	s.Require().NoError(err)
	s.licenses.EXPECT().FindByID(gomock.Any(), l.ID).Return(l, nil)
	s.renderer.EXPECT().LicenseDeclaration(gomock.Any()).DoAndReturn(
		func(d export.LicenseDeclaration) (*export.File, error) {
			s.Equal("Klassenfoto", d.Title)
			s.Equal(evaluator.MediaPhoto.Label(), d.MediaType)
			s.Equal([]string{models.ExpressionForms[0], "Poster im Schulhaus"}, d.ExpressionForms)
			s.Equal(evaluator.CCBYNC, d.License)
			return &export.File{Name: "CC-Lizenz_Klassenfoto.pdf"}, nil
		})

	file, err := s.service.Certificate(s.ctx, l.ID)
	s.Require().NoError(err)
	s.Equal("CC-Lizenz_Klassenfoto.pdf", file.Name)
}

func (s *LicenseServiceSuite) TestList() {
	s.licenses.EXPECT().ListByUser(gomock.Any(), s.userID).Return([]*models.License{}, nil)
	licenses, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Empty(licenses)
}
