// Package docstoretest holds the behaviour suite every docstore backend must pass.
package docstoretest

import (
	"context"
	"fmt"
	"sync"

	"github.com/stretchr/testify/suite"

	"ecrc42/internal/docstore"
	"ecrc42/pkg/platform/sentinel"
)

// Suite runs against the store returned by NewStore. Reset, when set, runs
// before each test.
type Suite struct {
	suite.Suite
	NewStore func() docstore.Store
	Reset    func()

	store docstore.Store
}

const coll = "things"

func (s *Suite) SetupTest() {
	if s.Reset != nil {
		s.Reset()
	}
	s.store = s.NewStore()
}

func (s *Suite) create(id string, doc docstore.Document) {
	doc["id"] = id
	s.Require().NoError(s.store.Create(context.Background(), coll, id, doc))
}

func (s *Suite) get(id string) docstore.Document {
	doc, err := s.store.Get(context.Background(), coll, id)
	s.Require().NoError(err)
	return doc
}

func (s *Suite) TestCreateAndGet() {
	s.create("a", docstore.Document{"title": "Foto", "count": 2})

	doc := s.get("a")
	s.Equal("Foto", doc["title"])
	s.Equal(float64(2), doc["count"])
}

func (s *Suite) TestCreateDuplicateConflicts() {
	s.create("a", docstore.Document{})
	err := s.store.Create(context.Background(), coll, "a", docstore.Document{"id": "a"})
	s.ErrorIs(err, sentinel.ErrConflict)
}

func (s *Suite) TestGetMissing() {
	_, err := s.store.Get(context.Background(), coll, "nope")
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *Suite) TestSetUpserts() {
	ctx := context.Background()
	s.Require().NoError(s.store.Set(ctx, coll, "a", docstore.Document{"id": "a", "v": 1}))
	s.Require().NoError(s.store.Set(ctx, coll, "a", docstore.Document{"id": "a", "v": 2}))
	s.Equal(float64(2), s.get("a")["v"])
}

func (s *Suite) TestQueryFilters() {
	s.create("c1", docstore.Document{"owner": "u1", "status": "draft", "tags": []string{"#wichtig"}})
	s.create("c2", docstore.Document{"owner": "u1", "status": "completed", "tags": []string{}})
	s.create("c3", docstore.Document{"owner": "u2", "status": "draft", "meta": map[string]any{"kind": "x"}})

	ctx := context.Background()
	docs, err := s.store.Query(ctx, coll, docstore.Eq("owner", "u1"))
	s.Require().NoError(err)
	s.Require().Len(docs, 2)
	s.Equal("c1", docs[0]["id"])
	s.Equal("c2", docs[1]["id"])

	docs, err = s.store.Query(ctx, coll, docstore.Eq("owner", "u1"), docstore.Eq("status", "draft"))
	s.Require().NoError(err)
	s.Require().Len(docs, 1)
	s.Equal("c1", docs[0]["id"])

	docs, err = s.store.Query(ctx, coll, docstore.ArrayContains("tags", "#wichtig"))
	s.Require().NoError(err)
	s.Require().Len(docs, 1)

	docs, err = s.store.Query(ctx, coll, docstore.Eq("meta.kind", "x"))
	s.Require().NoError(err)
	s.Require().Len(docs, 1)
	s.Equal("c3", docs[0]["id"])

	docs, err = s.store.Query(ctx, "empty")
	s.Require().NoError(err)
	s.NotNil(docs)
	s.Empty(docs)
}

func (s *Suite) TestUpdateOps() {
	s.create("u", docstore.Document{"counters": map[string]any{"likedCases": 1}, "old": true})

	err := s.store.Update(context.Background(), coll, "u",
		docstore.Increment("counters.likedCases", 1),
		docstore.Increment("counters.taggedCases", -1),
		docstore.Set("comment.text", "gut"),
		docstore.ArrayUnion("reactions.👍", "u1", "u2", "u1"),
		docstore.DeleteField("old"),
	)
	s.Require().NoError(err)

	doc := s.get("u")
	counters := doc["counters"].(map[string]any)
	s.Equal(float64(2), counters["likedCases"])
	s.Equal(float64(-1), counters["taggedCases"])
	s.Equal("gut", doc["comment"].(map[string]any)["text"])
	s.Equal([]any{"u1", "u2"}, doc["reactions"].(map[string]any)["👍"])
	s.NotContains(doc, "old")

	s.Require().NoError(s.store.Update(context.Background(), coll, "u", docstore.ArrayRemove("reactions.👍", "u1")))
	s.Equal([]any{"u2"}, s.get("u")["reactions"].(map[string]any)["👍"])
}

func (s *Suite) TestUpdateMissing() {
	err := s.store.Update(context.Background(), coll, "nope", docstore.Set("a", 1))
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *Suite) TestUpdateFailureLeavesDocument() {
	s.create("u", docstore.Document{"title": "x", "n": 1})
	err := s.store.Update(context.Background(), coll, "u",
		docstore.Increment("n", 1),
		docstore.Increment("title", 1),
	)
	s.ErrorIs(err, sentinel.ErrInvalidState)
	s.Equal(float64(1), s.get("u")["n"])
}

func (s *Suite) TestConcurrentIncrements() {
	s.create("u", docstore.Document{})
	const workers = 20

	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- s.store.Update(context.Background(), coll, "u", docstore.Increment("n", 1))
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		s.Require().NoError(err)
	}
	s.Equal(float64(workers), s.get("u")["n"], fmt.Sprintf("%d increments", workers))
}

func (s *Suite) TestDelete() {
	s.create("a", docstore.Document{})
	ctx := context.Background()
	s.Require().NoError(s.store.Delete(ctx, coll, "a"))
	_, err := s.store.Get(ctx, coll, "a")
	s.ErrorIs(err, sentinel.ErrNotFound)
	s.ErrorIs(s.store.Delete(ctx, coll, "a"), sentinel.ErrNotFound)
}
