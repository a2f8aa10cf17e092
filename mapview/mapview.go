package mapview

import (
	"fmt"
	"iter"
	"maps"
	"reflect"
)

// MapView is a read-only projection of a backing map. It holds the map
// reference, never a copy, so it observes the owner's mutations live; it
// never mutates the map itself.
type MapView[K comparable, V any] struct {
	m  map[K]V
	eq func(a, b V) bool
}

// Of wraps m in a read-only view, comparing values with ==.
func Of[K, V comparable](m map[K]V) *MapView[K, V] {
	return &MapView[K, V]{m: m, eq: func(a, b V) bool { return a == b }}
}

// OfFunc is Of with a caller-supplied value equality, for value types
// that are not comparable. A nil eq falls back to deep structural
// comparison.
func OfFunc[K comparable, V any](m map[K]V, eq func(a, b V) bool) *MapView[K, V] {
	return &MapView[K, V]{m: m, eq: eq}
}

// Len returns the current number of entries in the backing map.
func (v *MapView[K, V]) Len() int { return len(v.m) }

// Get returns the value stored under k, or ErrKeyNotFound.
func (v *MapView[K, V]) Get(k K) (V, error) {
	x, ok := v.m[k]
	if !ok {
		var zero V
		return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, k)
	}
	return x, nil
}

// GetOr returns the value stored under k, or def when k is absent.
func (v *MapView[K, V]) GetOr(k K, def V) V {
	if x, ok := v.m[k]; ok {
		return x
	}
	return def
}

// Has reports whether k is present in the backing map.
func (v *MapView[K, V]) Has(k K) bool {
	_, ok := v.m[k]
	return ok
}

// Keys returns a restartable iterator over the keys, in unspecified order.
func (v *MapView[K, V]) Keys() iter.Seq[K] { return maps.Keys(v.m) }

// Values returns a restartable iterator over the values, in unspecified
// order.
func (v *MapView[K, V]) Values() iter.Seq[V] { return maps.Values(v.m) }

// All returns a restartable iterator over the entries, in unspecified
// order.
func (v *MapView[K, V]) All() iter.Seq2[K, V] { return maps.All(v.m) }

// EqualMap reports whether the wrapped map holds exactly the entries of m,
// comparing values with the view's equality. It is the wrapped data being
// compared, not the wrapper, so a view may equal a plain map directly.
func (v *MapView[K, V]) EqualMap(m map[K]V) bool {
	if len(v.m) != len(m) {
		return false
	}
	eq := v.eq
	if eq == nil {
		eq = func(a, b V) bool { return reflect.DeepEqual(a, b) }
	}
	for k, x := range v.m {
		y, ok := m[k]
		if !ok || !eq(x, y) {
			return false
		}
	}
	return true
}

// Equal reports whether two views wrap maps that compare equal.
func (v *MapView[K, V]) Equal(other *MapView[K, V]) bool {
	if other == nil {
		return false
	}
	return v.EqualMap(other.m)
}

// Materialize copies the current entries into a fresh map, independent of
// future mutation of the backing.
func (v *MapView[K, V]) Materialize() map[K]V {
	out := make(map[K]V, len(v.m))
	maps.Copy(out, v.m)
	return out
}

// Copy returns the view itself; the view is immutable, so a shallow copy
// shares the same backing reference.
func (v *MapView[K, V]) Copy() *MapView[K, V] { return v }

// DeepCopy also returns the view itself; callers that need an independent
// copy of the data must Materialize one explicitly.
func (v *MapView[K, V]) DeepCopy() *MapView[K, V] { return v }

// String renders as MapView(<backing>). fmt prints map keys in sorted
// order, so the rendering is deterministic.
func (v *MapView[K, V]) String() string { return fmt.Sprintf("MapView(%v)", v.m) }
