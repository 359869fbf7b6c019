package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"ecrc42/internal/caseexample/models"
	"ecrc42/internal/docstore"
	id "ecrc42/pkg/domain"
	"ecrc42/pkg/platform/sentinel"
)

type CaseStoreSuite struct {
	suite.Suite
	store *Store
	ctx   context.Context
}

func TestCaseStoreSuite(t *testing.T) {
	suite.Run(t, new(CaseStoreSuite))
}

func (s *CaseStoreSuite) SetupTest() {
	s.store = New(docstore.NewMemory())
	s.ctx = context.Background()
}

func (s *CaseStoreSuite) newCase(title string) *models.Case {
	c, err := models.NewCase(id.NewCaseID(), id.NewUserID(), "Mia", title, "Beschreibung", "Bild", time.Now().UTC())
	s.Require().NoError(err)
	s.Require().NoError(s.store.Create(s.ctx, c))
	return c
}

func (s *CaseStoreSuite) reload(c *models.Case) *models.Case {
	got, err := s.store.FindByID(s.ctx, c.ID)
	s.Require().NoError(err)
	return got
}

func (s *CaseStoreSuite) TestReactions() {
	c := s.newCase("Plakat")
	alice, bob := id.NewUserID(), id.NewUserID()

	s.Require().NoError(s.store.AddReaction(s.ctx, c.ID, "👍", alice))
	s.Require().NoError(s.store.AddReaction(s.ctx, c.ID, "👍", alice))
	s.Require().NoError(s.store.AddReaction(s.ctx, c.ID, "👍", bob))
	s.Require().NoError(s.store.AddReaction(s.ctx, c.ID, "❤️", bob))

	got := s.reload(c)
	s.Equal(3, got.ReactionCount())
	s.True(got.HasReaction("👍", alice))

	s.Require().NoError(s.store.RemoveReaction(s.ctx, c.ID, "👍", alice))
	got = s.reload(c)
	s.False(got.HasReaction("👍", alice))
	s.Equal(2, got.ReactionCount())
}

func (s *CaseStoreSuite) TestTags() {
	c := s.newCase("Plakat")
	alice, bob := id.NewUserID(), id.NewUserID()

	s.Require().NoError(s.store.AddTag(s.ctx, c.ID, "#wichtig", alice))
	s.Require().NoError(s.store.AddTag(s.ctx, c.ID, "#wichtig", bob))
	s.Equal([]string{"#wichtig"}, s.reload(c).Tags)

	s.Require().NoError(s.store.RemoveTag(s.ctx, c.ID, "#wichtig", alice, true))
	got := s.reload(c)
	s.Equal([]string{"#wichtig"}, got.Tags)
	s.False(got.HasUserTag("#wichtig", alice))

	s.Require().NoError(s.store.RemoveTag(s.ctx, c.ID, "#wichtig", bob, false))
	s.Empty(s.reload(c).Tags)
}

func (s *CaseStoreSuite) TestListByTag() {
	a := s.newCase("A")
	s.newCase("B")
	s.Require().NoError(s.store.AddTag(s.ctx, a.ID, "#kreativ", id.NewUserID()))

	all, err := s.store.List(s.ctx, "")
	s.Require().NoError(err)
	s.Len(all, 2)

	tagged, err := s.store.List(s.ctx, "#kreativ")
	s.Require().NoError(err)
	s.Require().Len(tagged, 1)
	s.Equal(a.ID, tagged[0].ID)
}

func (s *CaseStoreSuite) TestAdminComment() {
	c := s.newCase("A")
	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	s.Require().NoError(s.store.SetAdminComment(s.ctx, c.ID, models.AdminComment{Text: "Gut gemacht", CreatedAt: at, AdminEmail: "admin@school.ch"}))

	got := s.reload(c)
	s.Require().NotNil(got.AdminComment)
	s.Equal("Gut gemacht", got.AdminComment.Text)
	s.True(at.Equal(got.AdminComment.CreatedAt))

	s.ErrorIs(s.store.SetAdminComment(s.ctx, id.NewCaseID(), models.AdminComment{}), sentinel.ErrNotFound)
}
