package cli

import (
	"fmt"
	"io"
	"iter"
	"net/netip"
	"strings"

	"github.com/khalid-nowaf/seqtrie"
)

// recordStore holds the records of the input files keyed by their key column.
// Keys go in and come out as strings, whatever tokens the trie uses underneath.
type recordStore interface {
	Insert(key string, record Record) error
	Records(prefix string) (iter.Seq2[string, Record], error)
	Lookup(key string) (string, Record, bool, error)
	Fprint(w io.Writer) error
	Size() int
}

type store[Q any, K comparable] struct {
	records *seqtrie.Map[Q, K, Record]
	parse   func(key string) (Q, error) // validates a raw key
	format  func(key []K) string        // renders a stored key back
	label   func(record Record) string  // shown next to terminal nodes by Fprint
}

// newPathStore keys records by the segments of their key, split on delimiter.
func newPathStore(delimiter string, keyCol string) recordStore {
	return &store[string, string]{
		records: seqtrie.NewMapFunc[string, string, Record](seqtrie.SplitBy(delimiter), nil),
		parse:   func(key string) (string, error) { return key, nil },
		format:  func(key []string) string { return strings.Join(key, delimiter) },
		label:   func(record Record) string { return record[keyCol] },
	}
}

// newPrefixStore keys records by IP prefix, so that lookups are longest-prefix matches.
func newPrefixStore(keyCol string) recordStore {
	return &store[netip.Prefix, byte]{
		records: seqtrie.NewMapFunc[netip.Prefix, byte, Record](familyBits, nil),
		parse:   parsePrefix,
		format:  formatFamilyBits,
		label:   func(record Record) string { return record[keyCol] },
	}
}

func (s *store[Q, K]) Insert(key string, record Record) error {
	q, err := s.parse(key)
	if err != nil {
		return err
	}
	s.records.Set(q, record)
	return nil
}

// Records returns the records under prefix, or all of them for an empty prefix, in trie order.
func (s *store[Q, K]) Records(prefix string) (iter.Seq2[string, Record], error) {
	all := s.records.All()
	if prefix != "" {
		q, err := s.parse(prefix)
		if err != nil {
			return nil, err
		}
		all = s.records.WithPrefix(q)
	}

	return func(yield func(string, Record) bool) {
		for key, record := range all {
			if !yield(s.format(key), record) {
				return
			}
		}
	}, nil
}

func (s *store[Q, K]) Lookup(key string) (string, Record, bool, error) {
	q, err := s.parse(key)
	if err != nil {
		return "", nil, false, err
	}
	matched, record, ok := s.records.LongestPrefix(q)
	if !ok {
		return "", nil, false, nil
	}
	return s.format(matched), record, true, nil
}

func (s *store[Q, K]) Fprint(w io.Writer) error {
	return s.records.Fprint(w, s.label)
}

func (s *store[Q, K]) Size() int {
	return s.records.Size()
}

// parsePrefix accepts a prefix ("10.0.0.0/8") or a single address ("10.1.2.3"),
// which stands for the full-length prefix of that address.
func parsePrefix(key string) (netip.Prefix, error) {
	if !strings.Contains(key, "/") {
		addr, err := netip.ParseAddr(key)
		if err != nil {
			return netip.Prefix{}, err
		}
		addr = addr.Unmap()
		return netip.PrefixFrom(addr, addr.BitLen()), nil
	}
	prefix, err := netip.ParsePrefix(key)
	if err != nil {
		return netip.Prefix{}, err
	}
	return prefix.Masked(), nil
}

// familyBits prefixes the network bits with the address family (4 or 6),
// so IPv4 and IPv6 networks live in separate branches.
func familyBits(prefix netip.Prefix) []byte {
	family := byte(6)
	if prefix.Addr().Is4() {
		family = 4
	}
	return append([]byte{family}, seqtrie.PrefixBits(prefix)...)
}

func formatFamilyBits(key []byte) string {
	if len(key) == 0 {
		return ""
	}
	switch key[0] {
	case 4:
		return seqtrie.BitsToPrefix(key[1:], false).String()
	case 6:
		return seqtrie.BitsToPrefix(key[1:], true).String()
	}
	return fmt.Sprint(key)
}
