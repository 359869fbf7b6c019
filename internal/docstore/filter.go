package docstore

// FilterOp is the comparison a Filter performs.
type FilterOp string

const (
	FilterEq            FilterOp = "=="
	FilterArrayContains FilterOp = "array-contains"
)

// Filter restricts a query to documents whose field matches a value.
type Filter struct {
	Path  string
	Op    FilterOp
	Value any
}

// Eq matches documents whose field equals v.
func Eq(path string, v any) Filter {
	return Filter{Path: path, Op: FilterEq, Value: v}
}

// ArrayContains matches documents whose array field holds v.
func ArrayContains(path string, v any) Filter {
	return Filter{Path: path, Op: FilterArrayContains, Value: v}
}

// Match reports whether d satisfies the filter. Value must already be normalized.
func (f Filter) Match(d Document) bool {
	got, ok := d.Lookup(f.Path)
	if !ok {
		return false
	}
	switch f.Op {
	case FilterEq:
		return equalValues(got, f.Value)
	case FilterArrayContains:
		arr, ok := got.([]any)
		if !ok {
			return false
		}
		for _, el := range arr {
			if equalValues(el, f.Value) {
				return true
			}
		}
	}
	return false
}

func normalizeFilters(filters []Filter) ([]Filter, error) {
	out := make([]Filter, len(filters))
	for i, f := range filters {
		if _, err := splitPath(f.Path); err != nil {
			return nil, err
		}
		v, err := normalize(f.Value)
		if err != nil {
			return nil, err
		}
		f.Value = v
		out[i] = f
	}
	return out, nil
}

func matchAll(d Document, filters []Filter) bool {
	for _, f := range filters {
		if !f.Match(d) {
			return false
		}
	}
	return true
}
