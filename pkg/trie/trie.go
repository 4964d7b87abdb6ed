package trie

import "slices"

// node is a trie rooted at some prefix. Every sub-trie is a node too.
type node[K comparable, V any] struct {
	children map[K]*node[K, V] // owned sub-tries, one per next token
	order    []K               // children tokens in first-insertion order
	value    V                 // only meaningful when terminal is set
	terminal bool              // a stored sequence ends at this node
	count    int               // sequences stored in this subtree, including this node
}

func newNode[K comparable, V any]() *node[K, V] {
	return &node[K, V]{}
}

// Trie is a container keyed by sequences of tokens.
// Keys sharing a prefix share the nodes of that prefix.
//
// A Trie is not safe for concurrent use.
type Trie[K comparable, V any] struct {
	root *node[K, V]
}

// New creates an empty trie.
func New[K comparable, V any]() *Trie[K, V] {
	return &Trie[K, V]{root: newNode[K, V]()}
}

// Size returns the number of stored sequences.
func (t *Trie[K, V]) Size() int {
	return t.root.count
}

// Set stores value under key, overwriting any previous value.
// It returns true if key was not stored before.
func (t *Trie[K, V]) Set(key []K, value V) bool {
	return t.root.set(key, value)
}

// Delete removes key and reports whether it was stored.
func (t *Trie[K, V]) Delete(key []K) bool {
	return t.root.delete(key)
}

// Has reports whether key is stored.
func (t *Trie[K, V]) Has(key []K) bool {
	return t.root.has(key)
}

// Get returns the value stored under key.
// The boolean is false, and the value is the zero value, if key is absent.
func (t *Trie[K, V]) Get(key []K) (V, bool) {
	n := t.root.find(key)
	if n == nil || !n.terminal {
		var zero V
		return zero, false
	}
	return n.value, true
}

// Clear removes every stored sequence.
func (t *Trie[K, V]) Clear() {
	t.root.reset()
}

// CountPrefix returns how many stored sequences start with prefix.
// An empty prefix counts everything.
func (t *Trie[K, V]) CountPrefix(prefix []K) int {
	n := t.root.find(prefix)
	if n == nil {
		return 0
	}
	return n.count
}

// LongestPrefix returns the longest stored sequence that is a prefix of key,
// together with its value. The boolean is false if no stored sequence is a prefix of key.
func (t *Trie[K, V]) LongestPrefix(key []K) ([]K, V, bool) {
	var (
		value V
		found bool
		depth int
	)
	current := t.root
	for i := 0; current != nil; i++ {
		if current.terminal {
			value, found, depth = current.value, true, i
		}
		if i == len(key) {
			break
		}
		current = current.child(key[i])
	}
	if !found {
		return nil, value, false
	}
	return slices.Clone(key[:depth]), value, true
}

// child returns the sub-trie for token, or nil.
func (n *node[K, V]) child(token K) *node[K, V] {
	if n.children == nil {
		return nil
	}
	return n.children[token]
}

// attachChildIfNotExist returns the sub-trie for token, creating it if needed.
func (n *node[K, V]) attachChildIfNotExist(token K) *node[K, V] {
	if c := n.child(token); c != nil {
		return c
	}
	if n.children == nil {
		n.children = make(map[K]*node[K, V])
	}
	c := newNode[K, V]()
	n.children[token] = c
	n.order = append(n.order, token)
	return c
}

// detachChild drops the sub-trie for token along with its place in the order.
func (n *node[K, V]) detachChild(token K) {
	delete(n.children, token)
	if i := slices.Index(n.order, token); i >= 0 {
		n.order = slices.Delete(n.order, i, i+1)
	}
	if len(n.children) == 0 {
		n.children, n.order = nil, nil
	}
}

func (n *node[K, V]) set(key []K, value V) bool {
	if len(key) == 0 {
		n.value = value
		if n.terminal {
			return false
		}
		n.terminal = true
		n.count++
		return true
	}
	added := n.attachChildIfNotExist(key[0]).set(key[1:], value)
	if added {
		n.count++
	}
	return added
}

func (n *node[K, V]) delete(key []K) bool {
	if len(key) == 0 {
		if !n.terminal {
			return false
		}
		var zero V
		n.value = zero
		n.terminal = false
		n.count--
		return true
	}
	c := n.child(key[0])
	if c == nil || !c.delete(key[1:]) {
		return false
	}
	n.count--
	if c.count == 0 {
		n.detachChild(key[0])
	}
	return true
}

func (n *node[K, V]) has(key []K) bool {
	if len(key) == 0 {
		return n.terminal
	}
	c := n.child(key[0])
	if c == nil {
		return false
	}
	return c.has(key[1:])
}

// find follows key from n and returns the node it ends at, or nil.
func (n *node[K, V]) find(key []K) *node[K, V] {
	current := n
	for _, token := range key {
		if current = current.child(token); current == nil {
			return nil
		}
	}
	return current
}

func (n *node[K, V]) reset() {
	*n = node[K, V]{}
}
