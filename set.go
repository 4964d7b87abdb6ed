package seqtrie

import (
	"iter"

	"github.com/khalid-nowaf/seqtrie/pkg/trie"
)

// Serializer converts a key into its canonical token sequence.
//
// It must be deterministic and must not mutate or retain its input: a key is found again
// only if it serializes to the same tokens it was stored under.
type Serializer[Q any, K comparable] func(key Q) []K

// Set is a set of sequences, stored as a trie.
// Keys of type Q go through the set's Serializer before every operation.
type Set[Q any, K comparable] struct {
	t         *trie.Trie[K, struct{}]
	serialize Serializer[Q, K]
}

// NewSet creates a set of token sequences, holding every sequence of initial.
// initial may be nil.
func NewSet[K comparable](initial iter.Seq[[]K]) *Set[[]K, K] {
	return NewSetFunc[[]K, K](Identity[K], initial)
}

// NewSetFunc creates a set whose keys are serialized with serialize,
// holding every key of initial. initial may be nil.
func NewSetFunc[Q any, K comparable](serialize Serializer[Q, K], initial iter.Seq[Q]) *Set[Q, K] {
	if serialize == nil {
		panic("[BUG] NewSetFunc: serializer must not be nil")
	}
	s := &Set[Q, K]{
		t:         trie.New[K, struct{}](),
		serialize: serialize,
	}
	if initial != nil {
		for key := range initial {
			s.Add(key)
		}
	}
	return s
}

// Size returns the number of sequences in the set.
func (s *Set[Q, K]) Size() int {
	return s.t.Size()
}

// Add puts key in the set. Adding a key twice is a no-op.
func (s *Set[Q, K]) Add(key Q) *Set[Q, K] {
	s.t.Set(s.serialize(key), struct{}{})
	return s
}

// Delete removes key and reports whether it was in the set.
func (s *Set[Q, K]) Delete(key Q) bool {
	return s.t.Delete(s.serialize(key))
}

// Has reports whether key is in the set.
func (s *Set[Q, K]) Has(key Q) bool {
	return s.t.Has(s.serialize(key))
}

// HasPrefix reports whether some sequence in the set starts with prefix.
func (s *Set[Q, K]) HasPrefix(prefix Q) bool {
	return s.t.CountPrefix(s.serialize(prefix)) > 0
}

func (s *Set[Q, K]) Clear() {
	s.t.Clear()
}

// All returns an iterator over the sequences of the set, depth first,
// with sibling tokens in first-insertion order.
func (s *Set[Q, K]) All() iter.Seq[[]K] {
	return s.t.Keys()
}

// Keys is the same as All.
func (s *Set[Q, K]) Keys() iter.Seq[[]K] {
	return s.t.Keys()
}

// Values is the same as All: the values of a set are its keys.
func (s *Set[Q, K]) Values() iter.Seq[[]K] {
	return s.t.Keys()
}

// Entries returns an iterator pairing each sequence with itself, in the order of All.
func (s *Set[Q, K]) Entries() iter.Seq2[[]K, []K] {
	return func(yield func([]K, []K) bool) {
		for key := range s.t.Keys() {
			if !yield(key, key) {
				return
			}
		}
	}
}

// ForEach calls f with every sequence, in the order of All.
func (s *Set[Q, K]) ForEach(f func(key []K)) {
	for key := range s.t.Keys() {
		f(key)
	}
}

// WithPrefix returns an iterator over the sequences starting with prefix.
func (s *Set[Q, K]) WithPrefix(prefix Q) iter.Seq[[]K] {
	return func(yield func([]K) bool) {
		for key := range s.t.WithPrefix(s.serialize(prefix)) {
			if !yield(key) {
				return
			}
		}
	}
}
