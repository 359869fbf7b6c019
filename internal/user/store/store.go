// Package store persists user profiles and access codes in the document store.
package store

import (
	"context"
	"errors"
	"fmt"

	"ecrc42/internal/docstore"
	"ecrc42/internal/user/models"
	id "ecrc42/pkg/domain"
	"ecrc42/pkg/platform/sentinel"
)

// Store is safe for concurrent use; it inherits the backend's guarantees.
type Store struct {
	docs docstore.Store
}

func New(docs docstore.Store) *Store {
	return &Store{docs: docs}
}

// ReserveCode claims an access code. It fails with sentinel.ErrConflict when
// the code is taken.
func (s *Store) ReserveCode(ctx context.Context, code *models.AccessCode) error {
	doc, err := docstore.Encode(code)
	if err != nil {
		return err
	}
	return s.docs.Create(ctx, docstore.CollectionAccessCodes, code.Code, doc)
}

// ReleaseCode removes a reserved code whose profile could not be written.
func (s *Store) ReleaseCode(ctx context.Context, code string) error {
	err := s.docs.Delete(ctx, docstore.CollectionAccessCodes, code)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil
	}
	return err
}

func (s *Store) FindCode(ctx context.Context, code string) (*models.AccessCode, error) {
	doc, err := s.docs.Get(ctx, docstore.CollectionAccessCodes, code)
	if err != nil {
		return nil, err
	}
	return docstore.Decode[models.AccessCode](doc)
}

func (s *Store) Create(ctx context.Context, u *models.User) error {
	doc, err := docstore.Encode(u)
	if err != nil {
		return err
	}
	return s.docs.Create(ctx, docstore.CollectionUsers, u.ID.String(), doc)
}

func (s *Store) FindByID(ctx context.Context, userID id.UserID) (*models.User, error) {
	doc, err := s.docs.Get(ctx, docstore.CollectionUsers, userID.String())
	if err != nil {
		return nil, err
	}
	return docstore.Decode[models.User](doc)
}

// EnsureProfile creates u unless a profile with its id exists, and returns
// the stored profile.
func (s *Store) EnsureProfile(ctx context.Context, u *models.User) (*models.User, error) {
	err := s.Create(ctx, u)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, sentinel.ErrConflict) {
		return nil, err
	}
	return s.FindByID(ctx, u.ID)
}

// IncrementActivity adds delta to one of the user's counters.
func (s *Store) IncrementActivity(ctx context.Context, userID id.UserID, counter models.Counter, delta int) error {
	if err := s.docs.Update(ctx, docstore.CollectionUsers, userID.String(), docstore.Increment(counter.Path(), delta)); err != nil {
		return fmt.Errorf("increment %s: %w", counter, err)
	}
	return nil
}
