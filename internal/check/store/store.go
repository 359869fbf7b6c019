// Package store persists check records in the checked_products collection.
package store

import (
	"context"
	"sort"
	"time"

	"ecrc42/internal/check/models"
	"ecrc42/internal/docstore"
	id "ecrc42/pkg/domain"
)

type Store struct {
	docs docstore.Store
}

func New(docs docstore.Store) *Store {
	return &Store{docs: docs}
}

func (s *Store) Create(ctx context.Context, c *models.Check) error {
	doc, err := docstore.Encode(c)
	if err != nil {
		return err
	}
	return s.docs.Create(ctx, docstore.CollectionChecks, c.ID.String(), doc)
}

// Save overwrites the stored record.
func (s *Store) Save(ctx context.Context, c *models.Check) error {
	doc, err := docstore.Encode(c)
	if err != nil {
		return err
	}
	return s.docs.Set(ctx, docstore.CollectionChecks, c.ID.String(), doc)
}

func (s *Store) FindByID(ctx context.Context, checkID id.CheckID) (*models.Check, error) {
	doc, err := s.docs.Get(ctx, docstore.CollectionChecks, checkID.String())
	if err != nil {
		return nil, err
	}
	return docstore.Decode[models.Check](doc)
}

// ListByUser returns the user's checks, newest first.
func (s *Store) ListByUser(ctx context.Context, userID id.UserID) ([]*models.Check, error) {
	docs, err := s.docs.Query(ctx, docstore.CollectionChecks, docstore.Eq("userId", userID.String()))
	if err != nil {
		return nil, err
	}
	checks, err := docstore.DecodeAll[models.Check](docs)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(checks, func(i, j int) bool {
		return checks[i].CreatedAt.After(checks[j].CreatedAt)
	})
	return checks, nil
}

// MarkCompleted stamps the completion fields in place.
func (s *Store) MarkCompleted(ctx context.Context, checkID id.CheckID, at time.Time) error {
	return s.docs.Update(ctx, docstore.CollectionChecks, checkID.String(),
		docstore.Set("status", models.StatusCompleted),
		docstore.Set("completedAt", at),
		docstore.Set("updatedAt", at),
	)
}

func (s *Store) Delete(ctx context.Context, checkID id.CheckID) error {
	return s.docs.Delete(ctx, docstore.CollectionChecks, checkID.String())
}
