// Package store persists case examples. Reactions and tags are changed with
// atomic array operations so concurrent toggles do not overwrite each other.
package store

import (
	"context"

	"ecrc42/internal/caseexample/models"
	"ecrc42/internal/docstore"
	id "ecrc42/pkg/domain"
)

type Store struct {
	docs docstore.Store
}

func New(docs docstore.Store) *Store {
	return &Store{docs: docs}
}

func (s *Store) Create(ctx context.Context, c *models.Case) error {
	doc, err := docstore.Encode(c)
	if err != nil {
		return err
	}
	return s.docs.Create(ctx, docstore.CollectionCaseExamples, c.ID.String(), doc)
}

func (s *Store) FindByID(ctx context.Context, caseID id.CaseID) (*models.Case, error) {
	doc, err := s.docs.Get(ctx, docstore.CollectionCaseExamples, caseID.String())
	if err != nil {
		return nil, err
	}
	return docstore.Decode[models.Case](doc)
}

// List returns all cases, optionally only those carrying tag.
func (s *Store) List(ctx context.Context, tag string) ([]*models.Case, error) {
	var filters []docstore.Filter
	if tag != "" {
		filters = append(filters, docstore.ArrayContains("tags", tag))
	}
	docs, err := s.docs.Query(ctx, docstore.CollectionCaseExamples, filters...)
	if err != nil {
		return nil, err
	}
	return docstore.DecodeAll[models.Case](docs)
}

func (s *Store) AddReaction(ctx context.Context, caseID id.CaseID, emoji string, userID id.UserID) error {
	return s.update(ctx, caseID, docstore.ArrayUnion("reactions."+emoji, userID.String()))
}

func (s *Store) RemoveReaction(ctx context.Context, caseID id.CaseID, emoji string, userID id.UserID) error {
	return s.update(ctx, caseID, docstore.ArrayRemove("reactions."+emoji, userID.String()))
}

func (s *Store) AddTag(ctx context.Context, caseID id.CaseID, tag string, userID id.UserID) error {
	return s.update(ctx, caseID,
		docstore.ArrayUnion("userTags."+userID.String(), tag),
		docstore.ArrayUnion("tags", tag),
	)
}

// RemoveTag drops the user's tag. The shared tag list keeps it while another
// user still has it set.
func (s *Store) RemoveTag(ctx context.Context, caseID id.CaseID, tag string, userID id.UserID, keepShared bool) error {
	ops := []docstore.Op{docstore.ArrayRemove("userTags."+userID.String(), tag)}
	if !keepShared {
		ops = append(ops, docstore.ArrayRemove("tags", tag))
	}
	return s.update(ctx, caseID, ops...)
}

func (s *Store) SetAdminComment(ctx context.Context, caseID id.CaseID, comment models.AdminComment) error {
	return s.update(ctx, caseID, docstore.Set("adminComment", comment))
}

func (s *Store) update(ctx context.Context, caseID id.CaseID, ops ...docstore.Op) error {
	return s.docs.Update(ctx, docstore.CollectionCaseExamples, caseID.String(), ops...)
}
