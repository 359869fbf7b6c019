// Package docstore is a schemaless document store keyed by collection and id.
//
// Documents are JSON objects. Every backend stores the JSON encoding, so a
// document read back always carries JSON value types: float64 numbers,
// []any arrays and map[string]any objects. Field paths are dot separated.
package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"ecrc42/pkg/platform/sentinel"
)

// Collections used by the service.
const (
	CollectionUsers        = "users"
	CollectionAccessCodes  = "access_codes"
	CollectionChecks       = "checked_products"
	CollectionCaseExamples = "case_examples"
	CollectionLicenses     = "generated_licenses"
)

// Document is a decoded JSON object.
type Document map[string]any

// Store is implemented by every backend.
//
// Create fails with sentinel.ErrConflict when the id exists. Get, Update and
// Delete fail with sentinel.ErrNotFound when it does not. Update applies all
// ops atomically.
type Store interface {
	Create(ctx context.Context, collection, id string, doc Document) error
	Set(ctx context.Context, collection, id string, doc Document) error
	Get(ctx context.Context, collection, id string) (Document, error)
	Query(ctx context.Context, collection string, filters ...Filter) ([]Document, error)
	Update(ctx context.Context, collection, id string, ops ...Op) error
	Delete(ctx context.Context, collection, id string) error
}

// Encode converts a JSON-serializable value into a Document.
func Encode(v any) (Document, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return decodeRaw(raw)
}

// Decode converts a Document into T.
func Decode[T any](doc Document) (*T, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return &out, nil
}

// DecodeAll converts query results into T values.
func DecodeAll[T any](docs []Document) ([]*T, error) {
	out := make([]*T, 0, len(docs))
	for _, d := range docs {
		v, err := Decode[T](d)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func decodeRaw(raw []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("document must be a JSON object: %w", sentinel.ErrInvalidState)
		}
		return nil, fmt.Errorf("decode document: %w", err)
	}
	if doc == nil {
		return nil, fmt.Errorf("document must be a JSON object: %w", sentinel.ErrInvalidState)
	}
	return doc, nil
}

// normalize returns v as it would look after a JSON round trip.
func normalize(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("normalize value: %w", err)
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("normalize value: %w", err)
	}
	return out, nil
}

func equalValues(a, b any) bool {
	return reflect.DeepEqual(a, b)
}

func splitPath(path string) ([]string, error) {
	if path == "" {
		return nil, fmt.Errorf("empty field path: %w", sentinel.ErrInvalidState)
	}
	parts := strings.Split(path, ".")
	for _, p := range parts {
		if p == "" {
			return nil, fmt.Errorf("invalid field path %q: %w", path, sentinel.ErrInvalidState)
		}
	}
	return parts, nil
}

// Lookup returns the value at a dotted path.
func (d Document) Lookup(path string) (any, bool) {
	parts, err := splitPath(path)
	if err != nil {
		return nil, false
	}
	var cur any = map[string]any(d)
	for _, p := range parts {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[p]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// sortByID orders documents by their "id" field for deterministic results.
func sortByID(docs []Document) {
	sort.SliceStable(docs, func(i, j int) bool {
		a, _ := docs[i]["id"].(string)
		b, _ := docs[j]["id"].(string)
		return a < b
	})
}

func notFound(collection, id string) error {
	return fmt.Errorf("%s/%s: %w", collection, id, sentinel.ErrNotFound)
}

func conflict(collection, id string) error {
	return fmt.Errorf("%s/%s: %w", collection, id, sentinel.ErrConflict)
}
