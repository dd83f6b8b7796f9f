package bitset

// Arena is a single backing allocation feeding N bitsets of identical
// capacity, used everywhere an analysis needs a per-block bitset array
// (dominance frontiers, liveness's UEVar/VarKill sets and its LiveOut
// sets). One allocation buys cache locality and a single free for
// the whole array (spec §3, §4.1).
type Arena struct {
	words []uint64
	cap   int
	perBS int
}

// NewArena allocates storage for n bitsets, each over [0, capacity).
func NewArena(n, capacity int) *Arena {
	perBS := numWords(capacity)
	return &Arena{
		words: make([]uint64, n*perBS),
		cap:   capacity,
		perBS: perBS,
	}
}

// View returns the i-th bitset view into the arena, i in [0, n).
func (a *Arena) View(i int) *BitSet {
	start := i * a.perBS
	return FromWords(a.words[start:start+a.perBS:start+a.perBS], a.cap)
}

// Free releases the arena's single backing allocation. Every BitSet
// obtained via View becomes invalid to use afterward.
func (a *Arena) Free() {
	a.words = nil
}
