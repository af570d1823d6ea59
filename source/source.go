// Package source defines the hierarchical key/value tree consumed by the
// binder, plus adapters for common configuration backends. A source exposes
// top-level keys; nested nodes are map[string]any subtrees carried as values.
// The proxy core never inspects a source's contents.
package source

// Source is an opaque hierarchical key/value tree.
type Source interface {
	// Lookup returns the value stored under a top-level key. Nested nodes
	// are returned as map[string]any.
	Lookup(key string) (any, bool)
	// Keys returns the top-level keys. Order is unspecified.
	Keys() []string
}

type mapSource struct {
	values map[string]any
}

// Map wraps an in-memory tree as a Source. The map is used as-is; callers
// must not mutate it afterwards.
func Map(values map[string]any) Source {
	if values == nil {
		values = map[string]any{}
	}
	return &mapSource{values: values}
}

func (s *mapSource) Lookup(key string) (any, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *mapSource) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	return keys
}
