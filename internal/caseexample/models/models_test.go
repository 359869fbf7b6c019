package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "ecrc42/pkg/domain"
	dErrors "ecrc42/pkg/domain-errors"
)

var base = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func newCase(t *testing.T, title string, at time.Time) *Case {
	t.Helper()
	c, err := NewCase(id.NewCaseID(), id.NewUserID(), "Mia", title, "Ein Beispiel", "Bild", at)
	require.NoError(t, err)
	return c
}

func TestNewCaseValidation(t *testing.T) {
	_, err := NewCase(id.NewCaseID(), id.NewUserID(), "Mia", "  ", "x", "", base)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))

	_, err = NewCase(id.NewCaseID(), id.NewUserID(), "Mia", "Titel", "", "", base)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))

	c := newCase(t, " Titel ", base)
	assert.Equal(t, "Titel", c.Title)
	assert.NotNil(t, c.Reactions)
	assert.NotNil(t, c.Tags)
}

func TestEngagementAndRank(t *testing.T) {
	quiet := newCase(t, "quiet", base.Add(2*time.Hour))
	liked := newCase(t, "liked", base)
	liked.Reactions["👍"] = []string{"u1", "u2"}
	tagged := newCase(t, "tagged", base)
	tagged.Tags = []string{"#wichtig", "#kreativ"}
	newerTagged := newCase(t, "newer tagged", base.Add(time.Hour))
	newerTagged.Tags = []string{"#wichtig", "#kreativ"}

	assert.Equal(t, 4, liked.Engagement())
	assert.Equal(t, 2, tagged.Engagement())

	cases := []*Case{quiet, tagged, liked, newerTagged}
	Rank(cases)
	assert.Equal(t, []string{"liked", "newer tagged", "tagged", "quiet"},
		[]string{cases[0].Title, cases[1].Title, cases[2].Title, cases[3].Title})
}

func TestFeatured(t *testing.T) {
	c := newCase(t, "beliebt", base)
	c.Reactions["⭐"] = []string{"u1", "u2", "u3", "u4", "u5"}
	assert.Equal(t, 10, c.Engagement())
	assert.False(t, c.Featured())

	c.Tags = []string{"#relevant"}
	assert.True(t, c.Featured())
}

func TestMatches(t *testing.T) {
	c := newCase(t, "Schulplakat", base)
	c.Tags = []string{"#kreativ"}

	assert.True(t, c.Matches("", nil))
	assert.True(t, c.Matches("PLAKAT", nil))
	assert.True(t, c.Matches("beispiel", nil))
	assert.False(t, c.Matches("video", nil))
	assert.True(t, c.Matches("", []string{"#wichtig", "#kreativ"}))
	assert.False(t, c.Matches("plakat", []string{"#wichtig"}))
}

func TestTaggedByOthers(t *testing.T) {
	me, other := id.NewUserID(), id.NewUserID()
	c := newCase(t, "x", base)
	c.UserTags = map[string][]string{me.String(): {"#wichtig"}, other.String(): {"#kreativ"}}

	assert.True(t, c.HasUserTag("#wichtig", me))
	assert.False(t, c.TaggedByOthers("#wichtig", me))
	assert.True(t, c.TaggedByOthers("#kreativ", me))
}

func TestAllowedValues(t *testing.T) {
	assert.True(t, ValidEmoji("🔥"))
	assert.False(t, ValidEmoji("😀"))
	assert.True(t, ValidTag("#nützlich"))
	assert.False(t, ValidTag("nützlich"))
}
