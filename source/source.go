// Package source provides the raw key/value configuration sources consumed by
// binding passes.
package source

import (
	"maps"
	"slices"
)

// Source is a read-only provider of raw configuration values addressed by
// full dotted keys (see package cursor for the key syntax). Lookups are
// expected to be cheap in-memory operations.
type Source interface {
	// Lookup returns the raw value stored under key.
	Lookup(key string) (string, bool)
	// Keys lists every key the source holds, in no particular order.
	Keys() []string
}

// Map is a Source over a plain map.
type Map map[string]string

// Lookup implements Source.
func (m Map) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Keys implements Source and returns the keys sorted.
func (m Map) Keys() []string {
	return slices.Sorted(maps.Keys(m))
}

// Layered looks keys up in order and returns the first hit, so earlier
// sources override later ones.
type Layered []Source

// Lookup implements Source.
func (l Layered) Lookup(key string) (string, bool) {
	for _, src := range l {
		if v, ok := src.Lookup(key); ok {
			return v, true
		}
	}

	return "", false
}

// Keys implements Source and returns the union of all layers, sorted.
func (l Layered) Keys() []string {
	seen := make(map[string]struct{})

	for _, src := range l {
		for _, k := range src.Keys() {
			seen[k] = struct{}{}
		}
	}

	return slices.Sorted(maps.Keys(seen))
}
