// Package models holds the shared case example document.
package models

import (
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	id "ecrc42/pkg/domain"
	dErrors "ecrc42/pkg/domain-errors"
	textutil "ecrc42/pkg/platform/strings"
)

const (
	MaxTitleLength       = 120
	MaxDescriptionLength = 4000
	MaxCommentLength     = 2000
)

// Emojis lists the allowed reactions in display order.
var Emojis = []string{"👍", "❤️", "🎯", "💡", "⭐", "🔥"}

// Tags lists the allowed tags in display order.
var Tags = []string{"#nützlich", "#relevant", "#wichtig", "#komplex", "#einfach", "#kreativ"}

func ValidEmoji(e string) bool { return slices.Contains(Emojis, e) }
func ValidTag(t string) bool   { return slices.Contains(Tags, t) }

// AdminComment is the single moderator note on a case.
type AdminComment struct {
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"createdAt"`
	AdminEmail string    `json:"adminEmail"`
}

// Case is a student-submitted example in the case_examples collection.
// Reactions map an emoji to the ids of the users who reacted; UserTags map a
// user id to the tags that user set. Tags is the union over all users.
type Case struct {
	ID           id.CaseID           `json:"id"`
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	Category     string              `json:"category"`
	AuthorID     id.UserID           `json:"authorId"`
	AuthorName   string              `json:"authorName"`
	CreatedAt    time.Time           `json:"createdAt"`
	Reactions    map[string][]string `json:"reactions"`
	Tags         []string            `json:"tags"`
	UserTags     map[string][]string `json:"userTags"`
	AdminComment *AdminComment       `json:"adminComment,omitempty"`
}

// NewCase validates the submitted fields.
func NewCase(caseID id.CaseID, author id.UserID, authorName, title, description, category string, now time.Time) (*Case, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	category = strings.TrimSpace(category)
	switch {
	case title == "":
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "title is required")
	case utf8.RuneCountInString(title) > MaxTitleLength:
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "title is too long")
	case description == "":
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "description is required")
	case utf8.RuneCountInString(description) > MaxDescriptionLength:
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "description is too long")
	}
	return &Case{
		ID:          caseID,
		Title:       title,
		Description: description,
		Category:    category,
		AuthorID:    author,
		AuthorName:  authorName,
		CreatedAt:   now,
		Reactions:   map[string][]string{},
		Tags:        []string{},
		UserTags:    map[string][]string{},
	}, nil
}

// ReactionCount sums the reactions over all emojis.
func (c *Case) ReactionCount() int {
	n := 0
	for _, users := range c.Reactions {
		n += len(users)
	}
	return n
}

// Engagement ranks cases: each reaction weighs twice a tag.
func (c *Case) Engagement() int {
	return 2*c.ReactionCount() + len(c.Tags)
}

// FeaturedEngagement is the score above which a case is highlighted.
const FeaturedEngagement = 10

func (c *Case) Featured() bool {
	return c.Engagement() > FeaturedEngagement
}

func (c *Case) HasReaction(emoji string, userID id.UserID) bool {
	return slices.Contains(c.Reactions[emoji], userID.String())
}

func (c *Case) HasUserTag(tag string, userID id.UserID) bool {
	return slices.Contains(c.UserTags[userID.String()], tag)
}

// TaggedByOthers reports whether any user other than userID set tag.
func (c *Case) TaggedByOthers(tag string, userID id.UserID) bool {
	for uid, tags := range c.UserTags {
		if uid != userID.String() && slices.Contains(tags, tag) {
			return true
		}
	}
	return false
}

// Matches applies the list filters: case-insensitive substring of title or
// description, and any of the given tags.
func (c *Case) Matches(search string, tags []string) bool {
	if q := strings.TrimSpace(search); q != "" {
		if !textutil.ContainsFold(c.Title, q) && !textutil.ContainsFold(c.Description, q) {
			return false
		}
	}
	if len(tags) == 0 {
		return true
	}
	for _, t := range tags {
		if slices.Contains(c.Tags, t) {
			return true
		}
	}
	return false
}

// Rank orders cases by engagement, newest first on ties.
func Rank(cases []*Case) {
	slices.SortStableFunc(cases, func(a, b *Case) int {
		if ea, eb := a.Engagement(), b.Engagement(); ea != eb {
			return eb - ea
		}
		return b.CreatedAt.Compare(a.CreatedAt)
	})
}
