package bitset

import "math/bits"

// wordBits is the number of bits packed into a single Row word.
const wordBits = 64

// Row is a fixed-width bit vector: one bit per vertex index. Every Row used
// together in a computation must share the same length (see WordsFor); the
// operations below do not bounds-check against mismatched lengths: row
// width is constant per graph, so callers are expected to allocate
// consistently.
type Row []uint64

// WordsFor returns the number of 64-bit words needed to hold n bits.
func WordsFor(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + wordBits - 1) / wordBits
}

// NewRow allocates a zeroed Row wide enough for n bits.
func NewRow(n int) Row {
	return make(Row, WordsFor(n))
}

// Test reports whether bit i is set.
func (r Row) Test(i int) bool {
	w, b := i/wordBits, uint(i%wordBits)
	if w < 0 || w >= len(r) {
		return false
	}
	return r[w]&(1<<b) != 0
}

// Set sets bit i.
func (r Row) Set(i int) {
	w, b := i/wordBits, uint(i%wordBits)
	r[w] |= 1 << b
}

// Clear clears bit i.
func (r Row) Clear(i int) {
	w, b := i/wordBits, uint(i%wordBits)
	r[w] &^= 1 << b
}

// Clone returns an independent copy of r.
func (r Row) Clone() Row {
	c := make(Row, len(r))
	copy(c, r)
	return c
}

// CopyFrom overwrites r in place with the contents of src.
func (r Row) CopyFrom(src Row) {
	copy(r, src)
}

// PopCount returns the exact number of set bits in r.
func PopCount(r Row) int {
	n := 0
	for _, w := range r {
		n += bits.OnesCount64(w)
	}
	return n
}

// NextSet returns the smallest index >= start whose bit is set in r, or -1
// if none exists.
func NextSet(r Row, start int) int {
	if start < 0 {
		start = 0
	}
	w := start / wordBits
	if w >= len(r) {
		return -1
	}
	// Mask off bits below start in the first word.
	word := r[w] >> uint(start%wordBits)
	if word != 0 {
		return start + bits.TrailingZeros64(word)
	}
	for w++; w < len(r); w++ {
		if r[w] != 0 {
			return w*wordBits + bits.TrailingZeros64(r[w])
		}
	}
	return -1
}

// Or computes dst = a | b.
func Or(dst, a, b Row) {
	for i := range dst {
		dst[i] = a[i] | b[i]
	}
}

// And computes dst = a & b.
func And(dst, a, b Row) {
	for i := range dst {
		dst[i] = a[i] & b[i]
	}
}

// Diff computes dst = a &^ b, i.e. a & ~b.
func Diff(dst, a, b Row) {
	for i := range dst {
		dst[i] = a[i] &^ b[i]
	}
}

// CommonAndBothDiffs computes, in one sweep over the words of a and b:
//
//	common = a & b
//	aOnly  = a &^ b
//	bOnly  = b &^ a
//
// Any of the three destination rows may be nil to skip that output.
func CommonAndBothDiffs(common, aOnly, bOnly, a, b Row) {
	for i := range a {
		av, bv := a[i], b[i]
		if common != nil {
			common[i] = av & bv
		}
		if aOnly != nil {
			aOnly[i] = av &^ bv
		}
		if bOnly != nil {
			bOnly[i] = bv &^ av
		}
	}
}

// OrInto ORs src into dst in place: dst |= src.
func OrInto(dst, src Row) {
	for i := range dst {
		dst[i] |= src[i]
	}
}

// Zero clears every bit of r in place.
func Zero(r Row) {
	for i := range r {
		r[i] = 0
	}
}

// Equal reports whether a and b hold identical bits.
func Equal(a, b Row) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
