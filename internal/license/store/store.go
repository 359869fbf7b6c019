// Package store persists license declarations in the generated_licenses collection.
package store

import (
	"context"
	"sort"

	"ecrc42/internal/docstore"
	"ecrc42/internal/license/models"
	id "ecrc42/pkg/domain"
)

type Store struct {
	docs docstore.Store
}

func New(docs docstore.Store) *Store {
	return &Store{docs: docs}
}

func (s *Store) Create(ctx context.Context, l *models.License) error {
	doc, err := docstore.Encode(l)
	if err != nil {
		return err
	}
	return s.docs.Create(ctx, docstore.CollectionLicenses, l.ID.String(), doc)
}

func (s *Store) FindByID(ctx context.Context, licenseID id.LicenseID) (*models.License, error) {
	doc, err := s.docs.Get(ctx, docstore.CollectionLicenses, licenseID.String())
	if err != nil {
		return nil, err
	}
	return docstore.Decode[models.License](doc)
}

// ListByUser returns the user's licenses, newest first.
func (s *Store) ListByUser(ctx context.Context, userID id.UserID) ([]*models.License, error) {
	docs, err := s.docs.Query(ctx, docstore.CollectionLicenses, docstore.Eq("userId", userID.String()))
	if err != nil {
		return nil, err
	}
	licenses, err := docstore.DecodeAll[models.License](docs)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(licenses, func(i, j int) bool {
		return licenses[i].CreatedAt.After(licenses[j].CreatedAt)
	})
	return licenses, nil
}
