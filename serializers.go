package seqtrie

import (
	"net/netip"
	"strings"
)

// Identity is the serializer for keys that already are token sequences.
func Identity[K comparable](key []K) []K {
	return key
}

// Runes serializes a string into its runes, one token per character.
func Runes(key string) []rune {
	return []rune(key)
}

// SplitBy returns a serializer that splits a string on sep and drops empty segments,
// so "/usr//lib/" and "usr/lib" are the same key.
//
//	paths := seqtrie.NewSetFunc(seqtrie.SplitBy("/"), nil)
//	paths.Add("/usr/lib")
//	paths.Has("usr/lib/") // true
func SplitBy(sep string) Serializer[string, string] {
	return func(key string) []string {
		tokens := []string{}
		for _, segment := range strings.Split(key, sep) {
			if segment != "" {
				tokens = append(tokens, segment)
			}
		}
		return tokens
	}
}

// PrefixBits serializes an IP prefix into its network bits, most significant first,
// one token (0 or 1) per bit of the mask.
//
// With prefixes as keys, LongestPrefix on a full-length address finds the most specific network containing it:
//
//	"192.168.1.0/24" -> [1 1 0 0 0 0 0 0  1 0 1 0 1 0 0 0  0 0 0 0 0 0 0 1]
//
// An invalid prefix serializes to an empty sequence.
func PrefixBits(prefix netip.Prefix) []byte {
	if !prefix.IsValid() {
		return []byte{}
	}
	prefix = prefix.Masked()
	addr := prefix.Addr().AsSlice()

	bits := make([]byte, prefix.Bits())
	for i := range bits {
		bits[i] = (addr[i/8] >> (7 - i%8)) & 1
	}
	return bits
}

// BitsToPrefix is the inverse of PrefixBits: it rebuilds the prefix from its network bits.
// Bits beyond the address length are ignored.
func BitsToPrefix(bits []byte, v6 bool) netip.Prefix {
	addr := make([]byte, 4)
	if v6 {
		addr = make([]byte, 16)
	}
	if len(bits) > len(addr)*8 {
		bits = bits[:len(addr)*8]
	}

	for i, bit := range bits {
		addr[i/8] |= (bit & 1) << (7 - i%8)
	}

	ip, _ := netip.AddrFromSlice(addr)
	return netip.PrefixFrom(ip, len(bits))
}
