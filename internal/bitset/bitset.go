// Package bitset implements a capacity-bounded set of non-negative
// integers over a fixed universe [0, cap), backed by 64-bit words. It is
// deliberately hand-rolled rather than built on a third-party bitset
// library: the arena in this package (see Arena) hands out N bitsets that
// share a single backing []uint64 allocation, and SetAll must leave the
// unused high bits of the last word set to 1 — both are easiest to get
// right, and cheapest to verify, as direct word manipulation. See
// DESIGN.md for the full justification.
package bitset

import "math/bits"

const wordBits = 64

// BitSet is a view onto a []uint64 word slice representing a set over
// [0, cap). Two BitSets may only be compared or copied into one another if
// they share the same capacity (spec §4.1).
type BitSet struct {
	words []uint64
	cap   int
}

func numWords(cap int) int {
	return (cap + wordBits - 1) / wordBits
}

// New allocates a BitSet with its own backing storage.
func New(capacity int) *BitSet {
	return &BitSet{words: make([]uint64, numWords(capacity)), cap: capacity}
}

// FromWords constructs a BitSet as a view onto externally-provided word
// storage (e.g. a slice carved out of an Arena). len(words) must equal
// numWords(capacity).
func FromWords(words []uint64, capacity int) *BitSet {
	if len(words) != numWords(capacity) {
		panic("bitset: word slice length does not match capacity")
	}
	return &BitSet{words: words, cap: capacity}
}

// Cap returns the bitset's fixed universe size.
func (b *BitSet) Cap() int { return b.cap }

// Add inserts i into the set. i must be in [0, cap).
func (b *BitSet) Add(i int) {
	b.words[i/wordBits] |= 1 << (uint(i) % wordBits)
}

// Remove deletes i from the set, if present.
func (b *BitSet) Remove(i int) {
	b.words[i/wordBits] &^= 1 << (uint(i) % wordBits)
}

// Contains reports whether i is a member of the set.
func (b *BitSet) Contains(i int) bool {
	return b.words[i/wordBits]&(1<<(uint(i)%wordBits)) != 0
}

func requireSameCap(a, b *BitSet) {
	if a.cap != b.cap {
		panic("bitset: capacity mismatch")
	}
}

// Equal reports whether a and b contain exactly the same members. Requires
// equal capacity.
func Equal(a, b *BitSet) bool {
	requireSameCap(a, b)
	for i := range a.words {
		if a.words[i] != b.words[i] {
			return false
		}
	}
	return true
}

// Copy overwrites dst's contents with src's, word-wise. Requires equal
// capacity.
func Copy(dst, src *BitSet) {
	requireSameCap(dst, src)
	copy(dst.words, src.words)
}

// SetAll fills every bit, including the unused high bits of the final
// word — those spurious 1s are harmless because every bitset operation in
// this package (and every caller) only ever compares or copies bitsets of
// equal capacity, so the padding is always present identically on both
// sides (spec §4.1).
func (b *BitSet) SetAll() {
	for i := range b.words {
		b.words[i] = ^uint64(0)
	}
}

// Clear resets every bit to 0.
func (b *BitSet) Clear() {
	for i := range b.words {
		b.words[i] = 0
	}
}

// Complement flips every bit in place, word-wise, including the padding
// bits of the last word (see SetAll).
func (b *BitSet) Complement() {
	for i := range b.words {
		b.words[i] = ^b.words[i]
	}
}

// UnionInto computes a <- a | b, word-wise. Requires equal capacity.
func UnionInto(a, b *BitSet) {
	requireSameCap(a, b)
	for i := range a.words {
		a.words[i] |= b.words[i]
	}
}

// IntersectInto computes a <- a & b, word-wise. Requires equal capacity.
func IntersectInto(a, b *BitSet) {
	requireSameCap(a, b)
	for i := range a.words {
		a.words[i] &= b.words[i]
	}
}

// Words returns the number of 64-bit words backing the set.
func (b *BitSet) Words() int { return len(b.words) }

// Each calls fn for every member of the set, in ascending order.
func (b *BitSet) Each(fn func(i int)) {
	for wi, w := range b.words {
		for w != 0 {
			tz := bits.TrailingZeros64(w)
			idx := wi*wordBits + tz
			if idx < b.cap {
				fn(idx)
			}
			w &= w - 1
		}
	}
}

// Free releases the bitset's reference to its backing storage. Freeing a
// bitset that is a view into an Arena does not affect the arena or its
// other views; freeing every view derived from an Arena, followed by the
// Arena itself, is what actually releases the backing allocation (spec
// §3's "freeing one element frees all" describes the Arena, not the
// individual BitSet view).
func (b *BitSet) Free() {
	b.words = nil
}
