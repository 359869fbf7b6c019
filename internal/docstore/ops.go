package docstore

import (
	"fmt"

	"ecrc42/pkg/platform/sentinel"
)

type opKind int

const (
	opSet opKind = iota
	opIncrement
	opArrayUnion
	opArrayRemove
	opDeleteField
)

// Op is an atomic field operation applied by Store.Update.
type Op struct {
	kind   opKind
	path   string
	value  any
	delta  float64
	values []any
}

// Set writes v at path, creating intermediate objects.
func Set(path string, v any) Op { return Op{kind: opSet, path: path, value: v} }

// Increment adds delta to a numeric field. A missing field counts as zero.
func Increment(path string, delta int) Op {
	return Op{kind: opIncrement, path: path, delta: float64(delta)}
}

// ArrayUnion appends each value not already present in the array at path.
func ArrayUnion(path string, values ...any) Op {
	return Op{kind: opArrayUnion, path: path, values: values}
}

// ArrayRemove removes every occurrence of each value from the array at path.
func ArrayRemove(path string, values ...any) Op {
	return Op{kind: opArrayRemove, path: path, values: values}
}

// DeleteField removes the field at path.
func DeleteField(path string) Op { return Op{kind: opDeleteField, path: path} }

// Apply runs ops against d in order. d is modified in place; on error it may
// be partially updated, so callers apply to a fresh copy.
func (d Document) Apply(ops ...Op) error {
	for _, op := range ops {
		if err := d.apply(op); err != nil {
			return fmt.Errorf("apply %s: %w", op.path, err)
		}
	}
	return nil
}

func (d Document) apply(op Op) error {
	parts, err := splitPath(op.path)
	if err != nil {
		return err
	}
	parent, err := d.parentOf(parts, op.kind != opDeleteField)
	if err != nil {
		return err
	}
	if parent == nil {
		return nil
	}
	key := parts[len(parts)-1]

	switch op.kind {
	case opSet:
		v, err := normalize(op.value)
		if err != nil {
			return err
		}
		parent[key] = v

	case opIncrement:
		cur := 0.0
		if existing, ok := parent[key]; ok && existing != nil {
			n, ok := existing.(float64)
			if !ok {
				return fmt.Errorf("field is not a number: %w", sentinel.ErrInvalidState)
			}
			cur = n
		}
		parent[key] = cur + op.delta

	case opArrayUnion, opArrayRemove:
		arr, err := arrayAt(parent, key)
		if err != nil {
			return err
		}
		for _, raw := range op.values {
			v, err := normalize(raw)
			if err != nil {
				return err
			}
			if op.kind == opArrayUnion {
				if !containsValue(arr, v) {
					arr = append(arr, v)
				}
				continue
			}
			arr = removeValue(arr, v)
		}
		parent[key] = arr

	case opDeleteField:
		delete(parent, key)
	}
	return nil
}

// parentOf walks to the object holding the last path segment. With create
// unset a missing branch yields nil.
func (d Document) parentOf(parts []string, create bool) (map[string]any, error) {
	cur := map[string]any(d)
	for _, p := range parts[:len(parts)-1] {
		next, ok := cur[p]
		if !ok || next == nil {
			if !create {
				return nil, nil
			}
			m := map[string]any{}
			cur[p] = m
			cur = m
			continue
		}
		m, ok := next.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("field %q is not an object: %w", p, sentinel.ErrInvalidState)
		}
		cur = m
	}
	return cur, nil
}

func arrayAt(parent map[string]any, key string) ([]any, error) {
	existing, ok := parent[key]
	if !ok || existing == nil {
		return []any{}, nil
	}
	arr, ok := existing.([]any)
	if !ok {
		return nil, fmt.Errorf("field is not an array: %w", sentinel.ErrInvalidState)
	}
	return arr, nil
}

func containsValue(arr []any, v any) bool {
	for _, el := range arr {
		if equalValues(el, v) {
			return true
		}
	}
	return false
}

func removeValue(arr []any, v any) []any {
	out := arr[:0:0]
	for _, el := range arr {
		if !equalValues(el, v) {
			out = append(out, el)
		}
	}
	return out
}
