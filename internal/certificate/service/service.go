// Package service assembles the per-student certificates from profile
// counters and stored checks.
package service

import (
	"context"
	"errors"
	"log/slog"

	checkmodels "ecrc42/internal/check/models"
	"ecrc42/internal/export"
	usermodels "ecrc42/internal/user/models"
	id "ecrc42/pkg/domain"
	dErrors "ecrc42/pkg/domain-errors"
	"ecrc42/pkg/platform/sentinel"
	"ecrc42/pkg/requestcontext"
)

const msgNoCCProducts = "Du hast noch keine Produkte mit Creative Commons Lizenz erstellt."

type ProfileReader interface {
	FindByID(ctx context.Context, userID id.UserID) (*usermodels.User, error)
}

type CheckLister interface {
	ListByUser(ctx context.Context, userID id.UserID) ([]*checkmodels.Check, error)
}

type ActivityRecorder interface {
	Add(ctx context.Context, userID id.UserID, counter usermodels.Counter, delta int)
}

type CertificateRenderer interface {
	ActivityCertificate(c export.ActivityCertificate) (*export.File, error)
	Protocol(p export.Protocol) (*export.File, error)
	CCCertificates(c export.CCCertificates) (*export.File, error)
}

type Service struct {
	profiles ProfileReader
	checks   CheckLister
	activity ActivityRecorder
	renderer CertificateRenderer
	logger   *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func New(profiles ProfileReader, checks CheckLister, activity ActivityRecorder, renderer CertificateRenderer, opts ...Option) *Service {
	s := &Service{
		profiles: profiles,
		checks:   checks,
		activity: activity,
		renderer: renderer,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Activity renders the activity certificate and counts it as generated.
func (s *Service) Activity(ctx context.Context) (*export.File, error) {
	u, err := s.profile(ctx)
	if err != nil {
		return nil, err
	}
	file, err := s.renderer.ActivityCertificate(export.ActivityCertificate{
		Lernname: u.Lernname,
		Activity: u.Activity,
	})
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to render certificate")
	}
	s.activity.Add(ctx, u.ID, usermodels.CounterGeneratedCertificates, 1)
	s.logger.InfoContext(ctx, "activity certificate generated", "user_id", u.ID)
	return file, nil
}

// Protocol lists every completed check, split by whether it passed.
func (s *Service) Protocol(ctx context.Context) (*export.File, error) {
	u, checks, err := s.profileAndChecks(ctx)
	if err != nil {
		return nil, err
	}
	p := export.Protocol{Lernname: u.Lernname, CheckedProducts: u.Activity.CheckedProducts}
	for _, c := range checks {
		entry := export.ProtocolEntry{
			MediaType:   c.Answers.MediaType.Label(),
			Description: c.Answers.Description,
			Passed:      c.Outcome.Passed(),
		}
		if c.Answers.HasCCLicense.IsYes() && c.Answers.CCLicense != "" {
			entry.CCLicense = string(c.Answers.CCLicense) + " - " + c.Answers.CCLicense.Description()
		}
		p.Entries = append(p.Entries, entry)
	}
	file, err := s.renderer.Protocol(p)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to render protocol")
	}
	return file, nil
}

// CC renders one license page per passed check that carries a CC license.
func (s *Service) CC(ctx context.Context) (*export.File, error) {
	u, checks, err := s.profileAndChecks(ctx)
	if err != nil {
		return nil, err
	}
	cert := export.CCCertificates{Lernname: u.Lernname}
	for _, c := range checks {
		if !c.Outcome.Passed() || !c.Answers.HasCCLicense.IsYes() || c.Answers.CCLicense == "" {
			continue
		}
		cert.Entries = append(cert.Entries, export.CCEntry{
			MediaType:   c.Answers.MediaType.Label(),
			Description: c.Answers.Description,
			License:     c.Answers.CCLicense,
			CreatedAt:   c.CreatedAt,
		})
	}
	file, err := s.renderer.CCCertificates(cert)
	if errors.Is(err, export.ErrNothingToCertify) {
		return nil, dErrors.New(dErrors.CodeNotFound, msgNoCCProducts)
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to render cc certificate")
	}
	return file, nil
}

func (s *Service) profile(ctx context.Context) (*usermodels.User, error) {
	userID := requestcontext.UserID(ctx)
	if userID.IsNil() {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}
	u, err := s.profiles.FindByID(ctx, userID)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.New(dErrors.CodeNotFound, "profile not found")
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load profile")
	}
	return u, nil
}

// profileAndChecks loads the profile and the completed checks, oldest first.
func (s *Service) profileAndChecks(ctx context.Context) (*usermodels.User, []*checkmodels.Check, error) {
	u, err := s.profile(ctx)
	if err != nil {
		return nil, nil, err
	}
	all, err := s.checks.ListByUser(ctx, u.ID)
	if err != nil {
		return nil, nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list checks")
	}
	completed := make([]*checkmodels.Check, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		if all[i].IsCompleted() {
			completed = append(completed, all[i])
		}
	}
	return u, completed, nil
}
