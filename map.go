package seqtrie

import (
	"io"
	"iter"

	"github.com/khalid-nowaf/seqtrie/pkg/trie"
)

// Map maps sequences to values, stored as a trie.
// Keys of type Q go through the map's Serializer before every operation.
type Map[Q any, K comparable, V any] struct {
	t         *trie.Trie[K, V]
	serialize Serializer[Q, K]
}

// NewMap creates a map keyed by token sequences, holding every entry of initial.
// initial may be nil. A key repeated in initial keeps its last value.
func NewMap[K comparable, V any](initial iter.Seq2[[]K, V]) *Map[[]K, K, V] {
	return NewMapFunc[[]K, K, V](Identity[K], initial)
}

// NewMapFunc creates a map whose keys are serialized with serialize,
// holding every entry of initial. initial may be nil.
func NewMapFunc[Q any, K comparable, V any](serialize Serializer[Q, K], initial iter.Seq2[Q, V]) *Map[Q, K, V] {
	if serialize == nil {
		panic("[BUG] NewMapFunc: serializer must not be nil")
	}
	m := &Map[Q, K, V]{
		t:         trie.New[K, V](),
		serialize: serialize,
	}
	if initial != nil {
		for key, value := range initial {
			m.Set(key, value)
		}
	}
	return m
}

// Size returns the number of entries.
func (m *Map[Q, K, V]) Size() int {
	return m.t.Size()
}

// Set stores value under key, replacing any previous value.
func (m *Map[Q, K, V]) Set(key Q, value V) *Map[Q, K, V] {
	m.t.Set(m.serialize(key), value)
	return m
}

// Get returns the value stored under key.
// The boolean is false, and the value is the zero value, if key is absent.
func (m *Map[Q, K, V]) Get(key Q) (V, bool) {
	return m.t.Get(m.serialize(key))
}

// Has reports whether a value is stored under key.
func (m *Map[Q, K, V]) Has(key Q) bool {
	return m.t.Has(m.serialize(key))
}

// Delete removes key and reports whether it was present.
func (m *Map[Q, K, V]) Delete(key Q) bool {
	return m.t.Delete(m.serialize(key))
}

func (m *Map[Q, K, V]) Clear() {
	m.t.Clear()
}

// All returns an iterator over the entries, depth first, with sibling tokens in first-insertion order.
// Keys are yielded in their serialized form.
func (m *Map[Q, K, V]) All() iter.Seq2[[]K, V] {
	return m.t.All()
}

// Keys returns an iterator over the keys, in the order of All.
func (m *Map[Q, K, V]) Keys() iter.Seq[[]K] {
	return m.t.Keys()
}

// Values returns an iterator over the values, in the order of All.
func (m *Map[Q, K, V]) Values() iter.Seq[V] {
	return m.t.Values()
}

// ForEach calls f with every entry, in the order of All.
func (m *Map[Q, K, V]) ForEach(f func(key []K, value V)) {
	m.t.Walk(func(key []K, value V) bool {
		f(key, value)
		return true
	})
}

// WithPrefix returns an iterator over the entries whose key starts with prefix.
func (m *Map[Q, K, V]) WithPrefix(prefix Q) iter.Seq2[[]K, V] {
	return m.t.WithPrefix(m.serialize(prefix))
}

// CountPrefix returns the number of entries whose key starts with prefix.
func (m *Map[Q, K, V]) CountPrefix(prefix Q) int {
	return m.t.CountPrefix(m.serialize(prefix))
}

// LongestPrefix returns the entry whose key is the longest stored prefix of key.
func (m *Map[Q, K, V]) LongestPrefix(key Q) ([]K, V, bool) {
	return m.t.LongestPrefix(m.serialize(key))
}

// Fprint writes the trie structure of the map to w. See trie.Trie.Fprint.
func (m *Map[Q, K, V]) Fprint(w io.Writer, format func(V) string) error {
	return m.t.Fprint(w, format)
}
