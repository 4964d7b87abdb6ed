// ## Overview
// Package trie implements a generic sequence trie: a container keyed by slices of tokens,
// where sequences sharing a prefix share the nodes of that prefix.
// Lookups cost time proportional to the key length, not to the number of stored sequences.
//
// Every node keeps the number of sequences stored below it (itself included), so the size of the trie,
// and of any sub-trie reached through a prefix, is available without a recount.
// Nodes are created lazily when a key needs a path that does not exist yet, and are pruned
// as soon as a deletion leaves their subtree empty.
//
// The value type is free. A set of sequences is a Trie[K, struct{}].
//
// ## Example usage:
//
//	t := trie.New[string, int]()
//	t.Set([]string{"a"}, 1)
//	t.Set([]string{"a", "b"}, 2)
//	t.Set([]string{"a", "c"}, 3)
//
//	fmt.Println(t.Size())                     // Output: 3
//	fmt.Println(t.Has([]string{"a", "d"}))    // Output: false
//	fmt.Println(t.CountPrefix([]string{"a"})) // Output: 3
//
//	for key, value := range t.All() {
//	    fmt.Println(key, value) // [a] 1, [a b] 2, [a c] 3
//	}
//
// Iteration is depth first. Sibling tokens come back in the order they were first inserted, not sorted.
package trie
