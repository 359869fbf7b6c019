// Package service generates Creative Commons license declarations and renders
// them as PDF certificates.
package service

import (
	"context"
	"errors"
	"log/slog"

	"ecrc42/internal/export"
	"ecrc42/internal/license/models"
	usermodels "ecrc42/internal/user/models"
	id "ecrc42/pkg/domain"
	dErrors "ecrc42/pkg/domain-errors"
	"ecrc42/pkg/platform/sentinel"
	"ecrc42/pkg/requestcontext"
)

type LicenseStore interface {
	Create(ctx context.Context, l *models.License) error
	FindByID(ctx context.Context, licenseID id.LicenseID) (*models.License, error)
	ListByUser(ctx context.Context, userID id.UserID) ([]*models.License, error)
}

type ActivityRecorder interface {
	Add(ctx context.Context, userID id.UserID, counter usermodels.Counter, delta int)
}

type DeclarationRenderer interface {
	LicenseDeclaration(l export.LicenseDeclaration) (*export.File, error)
}

type Service struct {
	licenses LicenseStore
	activity ActivityRecorder
	renderer DeclarationRenderer
	logger   *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func New(licenses LicenseStore, activity ActivityRecorder, renderer DeclarationRenderer, opts ...Option) *Service {
	s := &Service{
		licenses: licenses,
		activity: activity,
		renderer: renderer,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate stores a new declaration and counts it towards generatedLicenses.
func (s *Service) Generate(ctx context.Context, d models.Draft) (*models.License, error) {
	userID := requestcontext.UserID(ctx)
	if userID.IsNil() {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}
	l, err := models.NewLicense(id.NewLicenseID(), userID, d, requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}
	if err := s.licenses.Create(ctx, l); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save license")
	}
	s.activity.Add(ctx, userID, usermodels.CounterGeneratedLicenses, 1)
	s.logger.InfoContext(ctx, "license generated",
		"user_id", userID,
		"license_id", l.ID,
		"license", l.SelectedLicense,
	)
	return l, nil
}

func (s *Service) Get(ctx context.Context, licenseID id.LicenseID) (*models.License, error) {
	l, err := s.licenses.FindByID(ctx, licenseID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "license not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "license store failure")
	}
	if l.UserID != requestcontext.UserID(ctx) {
		return nil, dErrors.New(dErrors.CodeForbidden, "license belongs to another user")
	}
	return l, nil
}

func (s *Service) List(ctx context.Context) ([]*models.License, error) {
	userID := requestcontext.UserID(ctx)
	if userID.IsNil() {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}
	licenses, err := s.licenses.ListByUser(ctx, userID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list licenses")
	}
	return licenses, nil
}

// Certificate renders the stored declaration as PDF.
func (s *Service) Certificate(ctx context.Context, licenseID id.LicenseID) (*export.File, error) {
	l, err := s.Get(ctx, licenseID)
	if err != nil {
		return nil, err
	}
	file, err := s.renderer.LicenseDeclaration(export.LicenseDeclaration{
		Title:               l.Title,
		MediaType:           l.MediaType.Label(),
		AuthorName:          l.AuthorName,
		Description:         l.Description,
		WorkLink:            l.WorkLink,
		CreativeWork:        l.CreativeWork(),
		IndividualCharacter: l.IndividualCharacter(),
		ExpressionForms:     l.Expressions(),
		License:             l.SelectedLicense,
		CreatedAt:           l.CreatedAt,
	})
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to render license")
	}
	return file, nil
}
