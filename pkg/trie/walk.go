package trie

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"
)

// WalkFunc is called with each stored sequence and its value.
// Returning false stops the walk.
type WalkFunc[K comparable, V any] func(key []K, value V) bool

// All returns an iterator over every stored sequence and its value.
//
// The order is depth first, pre-order: a sequence ending at a node comes before
// the sequences below it, and sibling tokens are visited in the order they were first inserted.
// The order is not sorted by token.
// Each yielded key is a fresh slice the caller may keep.
func (t *Trie[K, V]) All() iter.Seq2[[]K, V] {
	return t.WithPrefix(nil)
}

// Keys returns an iterator over the stored sequences, in the same order as All.
func (t *Trie[K, V]) Keys() iter.Seq[[]K] {
	return func(yield func([]K) bool) {
		for key := range t.All() {
			if !yield(key) {
				return
			}
		}
	}
}

// Values returns an iterator over the stored values, in the same order as All.
func (t *Trie[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, value := range t.All() {
			if !yield(value) {
				return
			}
		}
	}
}

// WithPrefix returns an iterator over the stored sequences starting with prefix.
// Yielded keys are complete, prefix included.
func (t *Trie[K, V]) WithPrefix(prefix []K) iter.Seq2[[]K, V] {
	return func(yield func([]K, V) bool) {
		n := t.root.find(prefix)
		if n == nil {
			return
		}
		path := make([]K, len(prefix), len(prefix)+8)
		copy(path, prefix)
		n.walk(path, yield)
	}
}

// Walk calls f for every stored sequence in the same order as All, until f returns false.
// It reports whether the walk visited everything.
func (t *Trie[K, V]) Walk(f WalkFunc[K, V]) bool {
	return t.root.walk(make([]K, 0, 8), f)
}

// walk yields n's own sequence before descending into its children.
// path is reused as scratch space; yielded keys are cloned.
func (n *node[K, V]) walk(path []K, yield func([]K, V) bool) bool {
	if n.terminal && !yield(slices.Clone(path), n.value) {
		return false
	}
	for _, token := range n.order {
		if !n.children[token].walk(append(path, token), yield) {
			return false
		}
	}
	return true
}

// forEachChild applies f to each child in first-insertion order.
func (n *node[K, V]) forEachChild(f func(token K, child *node[K, V])) *node[K, V] {
	for _, token := range n.order {
		f(token, n.children[token])
	}
	return n
}

// forEachStepDown applies f to every descendant of n, parents before children.
// depth is 1 for the direct children of n.
func (n *node[K, V]) forEachStepDown(f func(token K, child *node[K, V], depth int)) *node[K, V] {
	n.stepDown(f, 1)
	return n
}

func (n *node[K, V]) stepDown(f func(token K, child *node[K, V], depth int), depth int) {
	n.forEachChild(func(token K, child *node[K, V]) {
		f(token, child, depth)
		child.stepDown(f, depth+1)
	})
}

// Fprint writes the structure of the trie to w, one node per line, indented by depth.
// Terminal nodes are followed by their value rendered with format; a nil format prints the value with %v.
//
//	. (3)
//	  a (3) = 1
//	    b (1) = 2
//	    c (1) = 3
func (t *Trie[K, V]) Fprint(w io.Writer, format func(V) string) error {
	if format == nil {
		format = func(v V) string { return fmt.Sprintf("%v", v) }
	}
	var err error
	line := func(label string, n *node[K, V], depth int) {
		if err != nil {
			return
		}
		s := fmt.Sprintf("%s%s (%d)", strings.Repeat("  ", depth), label, n.count)
		if n.terminal {
			s += " = " + format(n.value)
		}
		_, err = fmt.Fprintln(w, s)
	}

	line(".", t.root, 0)
	t.root.forEachStepDown(func(token K, child *node[K, V], depth int) {
		line(fmt.Sprintf("%v", token), child, depth)
	})
	return err
}
