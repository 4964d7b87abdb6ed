// ## Overview
// Package seqtrie provides containers keyed by sequences: Set, a set of sequences, and Map,
// a map from sequence to value. Both are tries, so keys sharing a prefix share storage
// and every lookup costs time proportional to the key length.
//
// A key can be anything a Serializer turns into a sequence of comparable tokens.
// NewSet and NewMap take token slices as they are; NewSetFunc and NewMapFunc take a serializer,
// such as SplitBy for paths, Runes for words, or PrefixBits for IP networks.
// The serializer runs on every operation and must be deterministic.
//
// ## Example usage:
//
//	routes := seqtrie.NewMapFunc[string, string, string](seqtrie.SplitBy("/"), nil)
//	routes.Set("/api/v1", "v1").Set("/api/v2", "v2").Set("/api", "root")
//
//	fmt.Println(routes.Size())             // Output: 3
//	fmt.Println(routes.Get("api/v1/"))     // Output: v1 true
//	fmt.Println(routes.CountPrefix("/api")) // Output: 3
//
//	_, name, _ := routes.LongestPrefix("/api/v3/users")
//	fmt.Println(name) // Output: root
//
//	for key, value := range routes.All() {
//	    fmt.Println(key, value) // [api] root, [api v1] v1, [api v2] v2
//	}
//
// Containers are not safe for concurrent use.
package seqtrie
