package trie

import (
	"bytes"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seq(tokens ...string) []string {
	return tokens
}

// TestNewTrie verifies that a new trie is empty and holds nothing, not even the empty sequence.
func TestNewTrie(t *testing.T) {
	tr := New[string, int]()
	assert.NotNil(t, tr.root, "root should exist upon creation")
	assert.Equal(t, 0, tr.Size(), "size should be 0 for a new trie")
	assert.False(t, tr.Has(nil), "empty sequence should not be stored in a new trie")
	assert.Empty(t, collectKeys(tr), "a new trie should enumerate nothing")
}

// TestSizeFollowsAddAndDelete walks through adding a sequence and its extension, then deleting the shorter one.
func TestSizeFollowsAddAndDelete(t *testing.T) {
	tr := New[string, struct{}]()

	tr.Set(seq("a"), struct{}{})
	assert.Equal(t, 1, tr.Size())

	tr.Set(seq("a", "b"), struct{}{})
	assert.Equal(t, 2, tr.Size())
	assert.True(t, tr.Has(seq("a")))
	assert.True(t, tr.Has(seq("a", "b")))
	assert.False(t, tr.Has(seq("a", "c")))

	assert.True(t, tr.Delete(seq("a")))
	assert.Equal(t, 1, tr.Size())
	assert.False(t, tr.Has(seq("a")))
	assert.True(t, tr.Has(seq("a", "b")))
}

// TestSetOverwritesValue verifies that setting an existing key replaces the value without growing the trie.
func TestSetOverwritesValue(t *testing.T) {
	tr := New[string, int]()

	assert.True(t, tr.Set(seq("x", "y"), 1), "first set should report a new key")
	assert.False(t, tr.Set(seq("x", "y"), 2), "second set should report an existing key")
	assert.Equal(t, 1, tr.Size())

	value, ok := tr.Get(seq("x", "y"))
	assert.True(t, ok)
	assert.Equal(t, 2, value)
}

// TestGetAbsent verifies the absent sentinel for keys that are missing or only pass through the trie.
func TestGetAbsent(t *testing.T) {
	tr := New[string, int]()
	tr.Set(seq("a", "b", "c"), 7)

	testCases := []struct {
		name string
		key  []string
	}{
		{"empty key", seq()},
		{"inner node", seq("a", "b")},
		{"missing branch", seq("a", "x")},
		{"longer than stored", seq("a", "b", "c", "d")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			value, ok := tr.Get(tc.key)
			assert.False(t, ok)
			assert.Zero(t, value)
			assert.False(t, tr.Has(tc.key))
		})
	}
}

// TestDeleteAbsentIsNoop verifies that deleting anything that is not stored changes nothing.
func TestDeleteAbsentIsNoop(t *testing.T) {
	tr := New[string, int]()
	tr.Set(seq("a", "b"), 1)

	for _, key := range [][]string{seq(), seq("a"), seq("a", "b", "c"), seq("z")} {
		assert.False(t, tr.Delete(key), "deleting %v should report nothing removed", key)
		assert.Equal(t, 1, tr.Size())
	}
	assert.True(t, tr.Has(seq("a", "b")))
	assertInvariants(t, tr.root)
}

// TestEmptySequence verifies that the empty sequence is stored at the root like any other key.
func TestEmptySequence(t *testing.T) {
	tr := New[string, string]()
	tr.Set(seq("a"), "child")

	assert.True(t, tr.Set(nil, "root"))
	assert.True(t, tr.Has(seq()))
	assert.Equal(t, 2, tr.Size())

	value, ok := tr.Get(seq())
	assert.True(t, ok)
	assert.Equal(t, "root", value)

	assert.True(t, tr.Delete(seq()))
	assert.False(t, tr.Has(nil))
	assert.True(t, tr.Has(seq("a")))
	assert.Equal(t, 1, tr.Size())
}

// TestPrefixSharing verifies that keys with a common prefix share its nodes.
func TestPrefixSharing(t *testing.T) {
	tr := New[string, struct{}]()
	tr.Set(seq("a", "b"), struct{}{})
	tr.Set(seq("a", "c"), struct{}{})

	require.Len(t, tr.root.children, 1, "root should hold a single child for the shared token")
	a := tr.root.child("a")
	require.NotNil(t, a)
	assert.Len(t, a.children, 2)
	assert.Equal(t, []string{"b", "c"}, a.order)
	assert.Equal(t, 2, a.count)
	assert.False(t, a.terminal, "shared prefix is not itself a stored key")
}

// TestPruning verifies that deleting the only key leaves a trie equal to a fresh one.
func TestPruning(t *testing.T) {
	tr := New[string, int]()
	tr.Set(seq("x", "y"), 1)
	require.True(t, tr.Delete(seq("x", "y")))

	assert.Equal(t, New[string, int]().root, tr.root, "no empty sub-tries should remain")
}

// TestPartialPruning verifies that pruning stops at a node that still stores a sequence.
func TestPartialPruning(t *testing.T) {
	tr := New[string, int]()
	tr.Set(seq("x"), 1)
	tr.Set(seq("x", "y", "z"), 2)
	tr.Set(seq("w"), 3)

	require.True(t, tr.Delete(seq("x", "y", "z")))

	x := tr.root.child("x")
	require.NotNil(t, x)
	assert.True(t, x.terminal)
	assert.Nil(t, x.child("y"), "the emptied branch below x should be pruned")
	assert.Equal(t, []string{"x", "w"}, tr.root.order)
	assertInvariants(t, tr.root)
}

// TestAddDeleteRoundTrip verifies that add then delete restores membership and size, for random keys.
func TestAddDeleteRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	tr := New[int, int]()
	for _, key := range generateRandomPaths(rnd, 200, 0, 6, 3) {
		tr.Set(key, len(key))
	}

	for _, key := range generateRandomPaths(rnd, 200, 0, 7, 4) {
		had := tr.Has(key)
		size := tr.Size()

		added := tr.Set(key, -1)
		assert.Equal(t, !had, added)
		require.True(t, tr.Delete(key))

		assert.False(t, tr.Has(key))
		if had {
			assert.Equal(t, size-1, tr.Size())
		} else {
			assert.Equal(t, size, tr.Size())
		}
		assertInvariants(t, tr.root)
	}
}

// TestEnumerationCompleteness checks that enumeration yields exactly the stored keys, once each.
func TestEnumerationCompleteness(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	tr := New[int, struct{}]()
	stored := map[string]bool{}

	for i, key := range generateRandomPaths(rnd, 500, 0, 5, 3) {
		if i%3 == 2 {
			tr.Delete(key)
			delete(stored, fmt.Sprint(key))
			continue
		}
		tr.Set(key, struct{}{})
		stored[fmt.Sprint(key)] = true
	}

	seen := map[string]bool{}
	for key := range tr.Keys() {
		k := fmt.Sprint(key)
		assert.False(t, seen[k], "key %s yielded twice", k)
		seen[k] = true
		assert.True(t, tr.Has(key))
	}
	assert.Equal(t, stored, seen)
	assert.Equal(t, len(stored), tr.Size())
	assertInvariants(t, tr.root)
}

// TestAllOrder verifies depth-first pre-order with siblings in first-insertion order.
func TestAllOrder(t *testing.T) {
	tr := New[string, int]()
	tr.Set(seq("b", "z"), 1)
	tr.Set(seq("a"), 2)
	tr.Set(seq("b"), 3)
	tr.Set(seq("b", "y"), 4)
	tr.Set(seq(), 5)

	var keys [][]string
	var values []int
	for key, value := range tr.All() {
		keys = append(keys, key)
		values = append(values, value)
	}

	assert.Equal(t, [][]string{{}, {"b"}, {"b", "z"}, {"b", "y"}, {"a"}}, keys)
	assert.Equal(t, []int{5, 3, 1, 4, 2}, values)

	var fromValues []int
	for value := range tr.Values() {
		fromValues = append(fromValues, value)
	}
	assert.Equal(t, values, fromValues)
}

// TestReinsertedTokenMovesLast verifies that a pruned token goes to the end of its siblings when it comes back.
func TestReinsertedTokenMovesLast(t *testing.T) {
	tr := New[string, int]()
	tr.Set(seq("a"), 1)
	tr.Set(seq("b"), 2)
	tr.Delete(seq("a"))
	tr.Set(seq("a"), 3)

	assert.Equal(t, [][]string{{"b"}, {"a"}}, collectKeys(tr))
}

// TestAllStopsEarly verifies that breaking out of a range ends the traversal.
func TestAllStopsEarly(t *testing.T) {
	tr := New[string, int]()
	for i := 0; i < 10; i++ {
		tr.Set(seq("k", fmt.Sprint(i)), i)
	}

	visited := 0
	for range tr.All() {
		visited++
		if visited == 3 {
			break
		}
	}
	assert.Equal(t, 3, visited)

	walked := 0
	complete := tr.Walk(func(key []string, value int) bool {
		walked++
		return value < 4
	})
	assert.False(t, complete)
	assert.Equal(t, 5, walked)
	assert.True(t, tr.Walk(func([]string, int) bool { return true }))
}

// TestEnumerationIsRestartable verifies that every call starts an independent traversal.
func TestEnumerationIsRestartable(t *testing.T) {
	tr := New[string, int]()
	tr.Set(seq("a", "b"), 1)
	tr.Set(seq("c"), 2)

	all := tr.Keys()
	var first, second [][]string
	for key := range all {
		first = append(first, key)
	}
	for key := range all {
		second = append(second, key)
	}
	assert.Equal(t, first, second)
}

// TestKeysAreNotAliased verifies that the trie neither keeps caller keys nor hands out shared slices.
func TestKeysAreNotAliased(t *testing.T) {
	tr := New[string, int]()
	key := seq("a", "b")
	tr.Set(key, 1)
	key[1] = "z"
	assert.True(t, tr.Has(seq("a", "b")))
	assert.False(t, tr.Has(seq("a", "z")))

	tr.Set(seq("a", "c"), 2)
	var yielded [][]string
	for k := range tr.Keys() {
		yielded = append(yielded, k)
	}
	yielded[0][0] = "mutated"
	assert.Equal(t, [][]string{{"a", "b"}, {"a", "c"}}, collectKeys(tr))
	assert.Equal(t, []string{"a", "c"}, yielded[1])
}

// TestWithPrefix verifies prefix enumeration and its agreement with CountPrefix.
func TestWithPrefix(t *testing.T) {
	tr := New[string, int]()
	tr.Set(seq("usr", "bin"), 1)
	tr.Set(seq("usr", "lib"), 2)
	tr.Set(seq("usr", "lib", "go"), 3)
	tr.Set(seq("etc"), 4)

	testCases := []struct {
		prefix   []string
		expected [][]string
	}{
		{seq(), [][]string{{"usr", "bin"}, {"usr", "lib"}, {"usr", "lib", "go"}, {"etc"}}},
		{seq("usr"), [][]string{{"usr", "bin"}, {"usr", "lib"}, {"usr", "lib", "go"}}},
		{seq("usr", "lib"), [][]string{{"usr", "lib"}, {"usr", "lib", "go"}}},
		{seq("usr", "lib", "go"), [][]string{{"usr", "lib", "go"}}},
		{seq("var"), nil},
	}

	for _, tc := range testCases {
		var keys [][]string
		for key := range tr.WithPrefix(tc.prefix) {
			keys = append(keys, key)
		}
		assert.Equal(t, tc.expected, keys, "prefix %v", tc.prefix)
		assert.Equal(t, len(tc.expected), tr.CountPrefix(tc.prefix), "prefix %v", tc.prefix)
	}
}

// TestLongestPrefix verifies that the deepest stored sequence on the key's path wins.
func TestLongestPrefix(t *testing.T) {
	tr := New[string, int]()
	tr.Set(seq("a"), 1)
	tr.Set(seq("a", "b", "c"), 3)

	testCases := []struct {
		key           []string
		expectedKey   []string
		expectedValue int
		found         bool
	}{
		{seq("a"), seq("a"), 1, true},
		{seq("a", "b"), seq("a"), 1, true},
		{seq("a", "b", "c", "d"), seq("a", "b", "c"), 3, true},
		{seq("b"), nil, 0, false},
		{seq(), nil, 0, false},
	}

	for _, tc := range testCases {
		key, value, found := tr.LongestPrefix(tc.key)
		assert.Equal(t, tc.found, found, "key %v", tc.key)
		assert.Equal(t, tc.expectedKey, key, "key %v", tc.key)
		assert.Equal(t, tc.expectedValue, value, "key %v", tc.key)
	}

	tr.Set(seq(), 0)
	key, _, found := tr.LongestPrefix(seq("q"))
	assert.True(t, found, "the empty sequence is a prefix of everything")
	assert.Equal(t, []string{}, key)
}

// TestClear verifies that Clear returns the trie to its fresh state and leaves it usable.
func TestClear(t *testing.T) {
	tr := New[string, int]()
	tr.Set(seq("a", "b"), 1)
	tr.Set(seq(), 2)

	tr.Clear()
	assert.Equal(t, New[string, int]().root, tr.root)
	assert.Equal(t, 0, tr.Size())
	assert.False(t, tr.Has(seq("a", "b")))

	tr.Set(seq("c"), 3)
	assert.Equal(t, 1, tr.Size())
}

// TestFprint verifies the structure dump.
func TestFprint(t *testing.T) {
	tr := New[string, int]()
	tr.Set(seq("a"), 1)
	tr.Set(seq("a", "b"), 2)
	tr.Set(seq("a", "c"), 3)

	var buf bytes.Buffer
	require.NoError(t, tr.Fprint(&buf, nil))
	assert.Equal(t, ". (3)\n  a (3) = 1\n    b (1) = 2\n    c (1) = 3\n", buf.String())

	buf.Reset()
	require.NoError(t, tr.Fprint(&buf, func(v int) string { return fmt.Sprintf("#%d", v) }))
	assert.Contains(t, buf.String(), "b (1) = #2")
}

func BenchmarkSet(b *testing.B) {
	paths := generateRandomPaths(rand.New(rand.NewSource(1)), b.N, 8, 16, 16)
	tr := New[int, int]()
	b.ResetTimer()

	for i, path := range paths {
		tr.Set(path, i)
	}
}

func BenchmarkHas(b *testing.B) {
	rnd := rand.New(rand.NewSource(1))
	paths := generateRandomPaths(rnd, 10000, 8, 16, 16)
	tr := New[int, int]()
	for i, path := range paths {
		tr.Set(path, i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.Has(paths[rnd.Intn(len(paths))])
	}
}

func BenchmarkAll(b *testing.B) {
	paths := generateRandomPaths(rand.New(rand.NewSource(1)), 10000, 8, 16, 16)
	tr := New[int, int]()
	for i, path := range paths {
		tr.Set(path, i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for range tr.All() {
		}
	}
}

// assertInvariants checks the bookkeeping of every node below n.
func assertInvariants[K comparable, V any](t *testing.T, n *node[K, V]) int {
	t.Helper()
	count := 0
	if n.terminal {
		count = 1
	}
	assert.Equal(t, len(n.children), len(n.order), "order should list every child once")
	for _, token := range n.order {
		child := n.child(token)
		if assert.NotNil(t, child, "ordered token %v has no child", token) {
			assert.Positive(t, child.count, "empty child %v should have been pruned", token)
			count += assertInvariants(t, child)
		}
	}
	assert.Equal(t, count, n.count, "count should equal terminal flag plus children counts")
	return count
}

func collectKeys[K comparable, V any](tr *Trie[K, V]) [][]K {
	var keys [][]K
	for key := range tr.Keys() {
		keys = append(keys, key)
	}
	return keys
}

// generateRandomPaths builds n random keys of length in [minDepth, maxDepth] over an alphabet of the given size.
func generateRandomPaths(rnd *rand.Rand, n int, minDepth int, maxDepth int, alphabet int) [][]int {
	paths := make([][]int, 0, n)
	for i := 0; i < n; i++ {
		path := make([]int, rnd.Intn(maxDepth-minDepth+1)+minDepth)
		for j := range path {
			path[j] = rnd.Intn(alphabet)
		}
		paths = append(paths, path)
	}
	return paths
}
