package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"ecrc42/internal/docstore"
	"ecrc42/internal/evaluator"
	"ecrc42/internal/license/models"
	id "ecrc42/pkg/domain"
	"ecrc42/pkg/platform/sentinel"
)

type LicenseStoreSuite struct {
	suite.Suite
	store *Store
	ctx   context.Context
	owner id.UserID
	base  time.Time
}

func TestLicenseStoreSuite(t *testing.T) {
	suite.Run(t, new(LicenseStoreSuite))
}

func (s *LicenseStoreSuite) SetupTest() {
	s.store = New(docstore.NewMemory())
	s.ctx = context.Background()
	s.owner = id.NewUserID()
	s.base = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
}

func (s *LicenseStoreSuite) newLicense(owner id.UserID, title string, at time.Time) *models.License {
	l, err := models.NewLicense(id.NewLicenseID(), owner, models.Draft{
		Title:                     title,
		AuthorName:                "Mia",
		CreativeWorkReasons:       []string{models.CreativeWorkReasons[0]},
		IndividualCharacterCustom: "Eigener Stil",
		ExpressionForms:           []string{models.ExpressionForms[1]},
		SelectedLicense:           evaluator.CCBY,
	}, at)
	s.Require().NoError(err)
	s.Require().NoError(s.store.Create(s.ctx, l))
	return l
}

func (s *LicenseStoreSuite) TestCreateAndFind() {
	l := s.newLicense(s.owner, "Poster", s.base)

	got, err := s.store.FindByID(s.ctx, l.ID)
	s.Require().NoError(err)
	s.Equal("Poster", got.Title)
	s.Equal(s.owner, got.UserID)
	s.Equal(evaluator.CCBY, got.SelectedLicense)
	s.Equal("Eigener Stil", got.IndividualCharacterCustom)
}

func (s *LicenseStoreSuite) TestFindMissing() {
	_, err := s.store.FindByID(s.ctx, id.NewLicenseID())
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *LicenseStoreSuite) TestListByUserNewestFirst() {
	s.newLicense(s.owner, "alt", s.base)
	s.newLicense(s.owner, "neu", s.base.Add(time.Hour))
	s.newLicense(id.NewUserID(), "fremd", s.base)

	licenses, err := s.store.ListByUser(s.ctx, s.owner)
	s.Require().NoError(err)
	s.Require().Len(licenses, 2)
	s.Equal("neu", licenses[0].Title)
	s.Equal("alt", licenses[1].Title)
}
