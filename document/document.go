package document

import (
	"iter"
	"maps"
	"slices"
)

// Document is the storage contract shared by every entity: arbitrary named
// values in, untyped values out. Typed retrieval is provided by the generic
// helpers As, GetAs, TryGetAs, MustGetAs and ValueOr.
type Document interface {
	Put(key string, value any)
	Get(key string) (any, bool)
}

// Base is the map-backed Document that entities embed.
//
// Base is not safe for concurrent use; callers sharing one must serialize access.
type Base struct {
	props map[string]any
}

// New returns a document seeded with a copy of props.
// A nil props yields an empty document.
func New(props map[string]any) *Base {
	if props == nil {
		return &Base{props: make(map[string]any)}
	}
	return &Base{props: maps.Clone(props)}
}

// Put stores value under key, replacing any previous value.
// A zero Base allocates on first Put; a nil *Base cannot and panics.
func (b *Base) Put(key string, value any) {
	if b.props == nil {
		b.props = make(map[string]any)
	}
	b.props[key] = value
}

// Get returns the stored value and whether key was ever put.
func (b *Base) Get(key string) (any, bool) {
	if b == nil {
		return nil, false
	}
	v, ok := b.props[key]
	return v, ok
}

// Has reports whether key is present (regardless of type).
func (b *Base) Has(key string) bool {
	if b == nil {
		return false
	}
	_, ok := b.props[key]
	return ok
}

// Delete removes key. Deleting a missing key is a no-op.
func (b *Base) Delete(key string) {
	if b == nil {
		return
	}
	delete(b.props, key)
}

// Len returns the number of stored properties.
func (b *Base) Len() int {
	if b == nil {
		return 0
	}
	return len(b.props)
}

// Keys yields the property keys in sorted order.
func (b *Base) Keys() iter.Seq[string] {
	if b == nil {
		return slices.Values([]string(nil))
	}
	return slices.Values(slices.Sorted(maps.Keys(b.props)))
}

// Items returns a shallow copy of the properties.
func (b *Base) Items() map[string]any {
	if b == nil || b.props == nil {
		return map[string]any{}
	}
	return maps.Clone(b.props)
}

// Clone returns an independent document holding the same values.
//
// Values themselves are shared; only the map is copied.
func (b *Base) Clone() *Base {
	if b == nil {
		return New(nil)
	}
	return New(b.props)
}
