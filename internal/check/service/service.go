// Package service implements the persisted check workflow: create, revise,
// complete, list, delete and export wizard results owned by the caller.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"ecrc42/internal/check/metrics"
	"ecrc42/internal/check/models"
	"ecrc42/internal/evaluator"
	"ecrc42/internal/export"
	usermodels "ecrc42/internal/user/models"
	id "ecrc42/pkg/domain"
	dErrors "ecrc42/pkg/domain-errors"
	"ecrc42/pkg/platform/sentinel"
	"ecrc42/pkg/requestcontext"
)

type CheckStore interface {
	Create(ctx context.Context, c *models.Check) error
	Save(ctx context.Context, c *models.Check) error
	FindByID(ctx context.Context, checkID id.CheckID) (*models.Check, error)
	ListByUser(ctx context.Context, userID id.UserID) ([]*models.Check, error)
	MarkCompleted(ctx context.Context, checkID id.CheckID, at time.Time) error
	Delete(ctx context.Context, checkID id.CheckID) error
}

type Evaluator interface {
	Evaluate(ctx context.Context, a evaluator.AnswerSet) evaluator.Outcome
}

type ActivityRecorder interface {
	Add(ctx context.Context, userID id.UserID, counter usermodels.Counter, delta int)
}

type ProfileReader interface {
	FindByID(ctx context.Context, userID id.UserID) (*usermodels.User, error)
}

type ReportRenderer interface {
	CheckReport(rep export.CheckReport, f export.Format) (*export.File, error)
}

type Service struct {
	checks    CheckStore
	evaluator Evaluator
	activity  ActivityRecorder
	profiles  ProfileReader
	renderer  ReportRenderer
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func New(checks CheckStore, eval Evaluator, activity ActivityRecorder, profiles ProfileReader, renderer ReportRenderer, opts ...Option) *Service {
	s := &Service{
		checks:    checks,
		evaluator: eval,
		activity:  activity,
		profiles:  profiles,
		renderer:  renderer,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Evaluate is the stateless preview; nothing is stored.
func (s *Service) Evaluate(ctx context.Context, answers evaluator.AnswerSet) evaluator.Outcome {
	return s.evaluator.Evaluate(ctx, answers)
}

// Create stores a finished wizard run. A finalized check counts towards the
// owner's checkedProducts right away; a draft counts once completed.
func (s *Service) Create(ctx context.Context, answers evaluator.AnswerSet, finalize bool) (*models.Check, error) {
	userID := requestcontext.UserID(ctx)
	if userID.IsNil() {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}
	if err := evaluator.ValidateComplete(answers); err != nil {
		return nil, err
	}

	outcome := s.evaluator.Evaluate(ctx, answers)
	c := models.NewCheck(id.NewCheckID(), userID, answers, outcome, finalize, requestcontext.Now(ctx))
	if err := s.checks.Create(ctx, c); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save check")
	}

	s.metrics.IncrementCreated(string(c.Status))
	if c.IsCompleted() {
		s.activity.Add(ctx, userID, usermodels.CounterCheckedProducts, 1)
	}
	s.logger.InfoContext(ctx, "check created",
		"user_id", userID,
		"check_id", c.ID,
		"status", c.Status,
		"rule", outcome.Rule,
	)
	return c, nil
}

// Get returns a check owned by the caller.
func (s *Service) Get(ctx context.Context, checkID id.CheckID) (*models.Check, error) {
	c, err := s.checks.FindByID(ctx, checkID)
	if err != nil {
		return nil, translate(err)
	}
	if !c.OwnedBy(requestcontext.UserID(ctx)) {
		return nil, dErrors.New(dErrors.CodeForbidden, "check belongs to another user")
	}
	return c, nil
}

// List returns the caller's checks, newest first.
func (s *Service) List(ctx context.Context) ([]*models.Check, error) {
	userID := requestcontext.UserID(ctx)
	if userID.IsNil() {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}
	checks, err := s.checks.ListByUser(ctx, userID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list checks")
	}
	return checks, nil
}

// Update replaces the answers and recomputes the outcome.
func (s *Service) Update(ctx context.Context, checkID id.CheckID, answers evaluator.AnswerSet) (*models.Check, error) {
	c, err := s.Get(ctx, checkID)
	if err != nil {
		return nil, err
	}
	if err := evaluator.ValidateComplete(answers); err != nil {
		return nil, err
	}

	c.Revise(answers, s.evaluator.Evaluate(ctx, answers), requestcontext.Now(ctx))
	if err := s.checks.Save(ctx, c); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save check")
	}
	s.logger.InfoContext(ctx, "check updated",
		"user_id", c.UserID,
		"check_id", c.ID,
		"rule", c.Outcome.Rule,
	)
	return c, nil
}

// Complete finalizes a draft. Completing a completed check returns it
// unchanged and does not count again.
func (s *Service) Complete(ctx context.Context, checkID id.CheckID) (*models.Check, error) {
	c, err := s.Get(ctx, checkID)
	if err != nil {
		return nil, err
	}
	now := requestcontext.Now(ctx)
	if !c.Complete(now) {
		return c, nil
	}
	if err := s.checks.MarkCompleted(ctx, c.ID, now); err != nil {
		return nil, translate(err)
	}
	s.metrics.IncrementCompleted()
	s.activity.Add(ctx, c.UserID, usermodels.CounterCheckedProducts, 1)
	return c, nil
}

func (s *Service) Delete(ctx context.Context, checkID id.CheckID) error {
	c, err := s.Get(ctx, checkID)
	if err != nil {
		return err
	}
	if err := s.checks.Delete(ctx, c.ID); err != nil {
		return translate(err)
	}
	s.metrics.IncrementDeleted()
	s.logger.InfoContext(ctx, "check deleted", "user_id", c.UserID, "check_id", c.ID)
	return nil
}

// Export renders a check owned by the caller.
func (s *Service) Export(ctx context.Context, checkID id.CheckID, format export.Format) (*export.File, error) {
	c, err := s.Get(ctx, checkID)
	if err != nil {
		return nil, err
	}

	rep := export.CheckReport{
		ID:          c.ID.String(),
		Status:      string(c.Status),
		CreatedAt:   c.CreatedAt,
		CompletedAt: c.CompletedAt,
		Answers:     c.Answers,
		Outcome:     c.Outcome,
	}
	if u, err := s.profiles.FindByID(ctx, c.UserID); err == nil {
		rep.Lernname = u.Lernname
	} else {
		s.logger.WarnContext(ctx, "profile lookup for export failed", "user_id", c.UserID, "error", err)
	}

	file, err := s.renderer.CheckReport(rep, format)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to render check")
	}
	s.metrics.IncrementExport(string(format))
	return file, nil
}

func translate(err error) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "check not found")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "check store failure")
}
