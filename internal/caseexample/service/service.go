// Package service implements the shared case example board: submissions,
// search, reactions, tags and moderator comments.
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"ecrc42/internal/caseexample/models"
	"ecrc42/internal/notify"
	usermodels "ecrc42/internal/user/models"
	id "ecrc42/pkg/domain"
	dErrors "ecrc42/pkg/domain-errors"
	"ecrc42/pkg/platform/sentinel"
	textutil "ecrc42/pkg/platform/strings"
	"ecrc42/pkg/requestcontext"
)

// EventCaseCreated is published for every new case.
const EventCaseCreated = "case_example.created"

// notificationDescriptionLimit caps the description sent to chat webhooks.
const notificationDescriptionLimit = 1000

type CaseStore interface {
	Create(ctx context.Context, c *models.Case) error
	FindByID(ctx context.Context, caseID id.CaseID) (*models.Case, error)
	List(ctx context.Context, tag string) ([]*models.Case, error)
	AddReaction(ctx context.Context, caseID id.CaseID, emoji string, userID id.UserID) error
	RemoveReaction(ctx context.Context, caseID id.CaseID, emoji string, userID id.UserID) error
	AddTag(ctx context.Context, caseID id.CaseID, tag string, userID id.UserID) error
	RemoveTag(ctx context.Context, caseID id.CaseID, tag string, userID id.UserID, keepShared bool) error
	SetAdminComment(ctx context.Context, caseID id.CaseID, comment models.AdminComment) error
}

type ProfileReader interface {
	FindByID(ctx context.Context, userID id.UserID) (*usermodels.User, error)
}

type ActivityRecorder interface {
	Add(ctx context.Context, userID id.UserID, counter usermodels.Counter, delta int)
}

type Publisher interface {
	Publish(ctx context.Context, e notify.Event) bool
}

// Notification is the payload sent for a new case.
type Notification struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Author      string   `json:"author"`
	Tags        []string `json:"tags"`
	URL         string   `json:"url"`
	CaseID      string   `json:"caseId"`
	CreatedAt   string   `json:"createdAt"`
}

type Service struct {
	cases     CaseStore
	profiles  ProfileReader
	activity  ActivityRecorder
	publisher Publisher
	baseURL   string
	logger    *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithBaseURL sets the public URL used for links in notifications.
func WithBaseURL(u string) Option {
	return func(s *Service) { s.baseURL = strings.TrimRight(u, "/") }
}

func New(cases CaseStore, profiles ProfileReader, activity ActivityRecorder, publisher Publisher, opts ...Option) *Service {
	s := &Service{
		cases:     cases,
		profiles:  profiles,
		activity:  activity,
		publisher: publisher,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Create(ctx context.Context, title, description, category string) (*models.Case, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	author, err := s.profiles.FindByID(ctx, userID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load author profile")
	}

	c, err := models.NewCase(id.NewCaseID(), userID, author.Lernname, title, description, category, requestcontext.Now(ctx))
	if err != nil {
		return nil, dErrors.New(dErrors.CodeValidation, err.Error())
	}
	if err := s.cases.Create(ctx, c); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save case")
	}

	s.activity.Add(ctx, userID, usermodels.CounterTaggedCases, 1)
	s.publisher.Publish(ctx, notify.Event{
		Type:       EventCaseCreated,
		Key:        c.ID.String(),
		OccurredAt: c.CreatedAt,
		Data:       s.notification(c),
	})
	s.logger.InfoContext(ctx, "case example created", "user_id", userID, "case_id", c.ID)
	return c, nil
}

func (s *Service) notification(c *models.Case) Notification {
	return Notification{
		Title:       c.Title,
		Description: textutil.Truncate(c.Description, notificationDescriptionLimit),
		Category:    c.Category,
		Author:      c.AuthorName,
		Tags:        c.Tags,
		URL:         s.baseURL + "/cases/" + c.ID.String(),
		CaseID:      c.ID.String(),
		CreatedAt:   c.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// List filters by search text and any of tags, most engaging first.
func (s *Service) List(ctx context.Context, search string, tags []string) ([]*models.Case, error) {
	for _, t := range tags {
		if !models.ValidTag(t) {
			return nil, dErrors.New(dErrors.CodeValidation, "unknown tag "+t)
		}
	}
	var storeTag string
	if len(tags) == 1 {
		storeTag = tags[0]
	}
	all, err := s.cases.List(ctx, storeTag)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list cases")
	}
	out := make([]*models.Case, 0, len(all))
	for _, c := range all {
		if c.Matches(search, tags) {
			out = append(out, c)
		}
	}
	models.Rank(out)
	return out, nil
}

func (s *Service) Get(ctx context.Context, caseID id.CaseID) (*models.Case, error) {
	c, err := s.cases.FindByID(ctx, caseID)
	if err != nil {
		return nil, translate(err)
	}
	return c, nil
}

// ToggleReaction adds the caller's reaction, or removes it when present.
// It reports whether the reaction is set afterwards.
func (s *Service) ToggleReaction(ctx context.Context, caseID id.CaseID, emoji string) (*models.Case, bool, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, false, err
	}
	if !models.ValidEmoji(emoji) {
		return nil, false, dErrors.New(dErrors.CodeValidation, "unsupported reaction "+emoji)
	}
	c, err := s.Get(ctx, caseID)
	if err != nil {
		return nil, false, err
	}

	added := !c.HasReaction(emoji, userID)
	if added {
		err = s.cases.AddReaction(ctx, caseID, emoji, userID)
	} else {
		err = s.cases.RemoveReaction(ctx, caseID, emoji, userID)
	}
	if err != nil {
		return nil, false, translate(err)
	}
	s.activity.Add(ctx, userID, usermodels.CounterLikedCases, delta(added))

	c, err = s.Get(ctx, caseID)
	return c, added, err
}

// ToggleTag sets or clears one of the caller's tags.
func (s *Service) ToggleTag(ctx context.Context, caseID id.CaseID, tag string) (*models.Case, bool, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, false, err
	}
	if !models.ValidTag(tag) {
		return nil, false, dErrors.New(dErrors.CodeValidation, "unknown tag "+tag)
	}
	c, err := s.Get(ctx, caseID)
	if err != nil {
		return nil, false, err
	}

	added := !c.HasUserTag(tag, userID)
	if added {
		err = s.cases.AddTag(ctx, caseID, tag, userID)
	} else {
		err = s.cases.RemoveTag(ctx, caseID, tag, userID, c.TaggedByOthers(tag, userID))
	}
	if err != nil {
		return nil, false, translate(err)
	}
	s.activity.Add(ctx, userID, usermodels.CounterTaggedCases, delta(added))

	c, err = s.Get(ctx, caseID)
	return c, added, err
}

// AddAdminComment replaces the moderator note. Admins only.
func (s *Service) AddAdminComment(ctx context.Context, caseID id.CaseID, text string) (*models.Case, error) {
	if !requestcontext.IsAdmin(ctx) {
		return nil, dErrors.New(dErrors.CodeForbidden, "admin role required")
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "comment is required")
	}
	if utf8.RuneCountInString(text) > models.MaxCommentLength {
		return nil, dErrors.New(dErrors.CodeValidation, "comment is too long")
	}

	comment := models.AdminComment{
		Text:       text,
		CreatedAt:  requestcontext.Now(ctx),
		AdminEmail: requestcontext.AdminEmail(ctx),
	}
	if err := s.cases.SetAdminComment(ctx, caseID, comment); err != nil {
		return nil, translate(err)
	}
	s.logger.InfoContext(ctx, "admin comment set", "case_id", caseID, "admin", comment.AdminEmail)
	return s.Get(ctx, caseID)
}

func callerID(ctx context.Context) (id.UserID, error) {
	userID := requestcontext.UserID(ctx)
	if userID.IsNil() {
		return userID, dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}
	return userID, nil
}

func delta(added bool) int {
	if added {
		return 1
	}
	return -1
}

func translate(err error) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "case not found")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "case store failure")
}
