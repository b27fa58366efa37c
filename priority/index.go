// Package priority — see doc.go for the design rationale.
package priority

// link is one vertex's doubly-linked-list node, addressed by vertex id
// rather than by pointer.
type link struct {
	linked bool
	bucket int
	prev   int
	next   int
}

// Index is a priority-bucket structure: heads/tails indexed by bucket, a
// fixed-size links slab indexed by vertex id, and minPtr/maxPtr cursors
// bracketing the occupied bucket range.
//
// minPtr's empty sentinel is len(heads); maxPtr's empty sentinel is -1.
type Index struct {
	links  []link
	heads  []int
	tails  []int
	minPtr int
	maxPtr int
	count  int
}

// New returns an Index sized for n vertex ids (0..n-1), with no buckets
// allocated yet and both cursors at their empty sentinels.
func New(n int) *Index {
	if n < 0 {
		n = 0
	}
	links := make([]link, n)
	for i := range links {
		links[i] = link{bucket: -1, prev: -1, next: -1}
	}
	return &Index{
		links:  links,
		minPtr: 0,
		maxPtr: -1,
	}
}

// grow doubles the bucket array until it can hold index k, zero-initializing
// (as -1, meaning empty) every new slot.
func (ix *Index) grow(k int) {
	if k < len(ix.heads) {
		return
	}
	newLen := len(ix.heads)
	if newLen == 0 {
		newLen = 1
	}
	for newLen <= k {
		newLen *= 2
	}
	heads := make([]int, newLen)
	tails := make([]int, newLen)
	copy(heads, ix.heads)
	copy(tails, ix.tails)
	for i := len(ix.heads); i < newLen; i++ {
		heads[i] = -1
		tails[i] = -1
	}
	wasEmptyMin := ix.minPtr == len(ix.heads)
	ix.heads, ix.tails = heads, tails
	if wasEmptyMin {
		ix.minPtr = newLen
	}
}

// Add links vid into bucket k, at the tail of that bucket's list, growing
// the bucket array if needed and widening minPtr/maxPtr to include k.
// vid must be in [0,n) and k must be >= 0; out-of-range vid is ignored.
func (ix *Index) Add(vid, k int) {
	if vid < 0 || vid >= len(ix.links) || k < 0 {
		return
	}
	ix.grow(k)

	ix.links[vid] = link{linked: true, bucket: k, prev: ix.tails[k], next: -1}
	if ix.tails[k] == -1 {
		ix.heads[k] = vid
	} else {
		ix.links[ix.tails[k]].next = vid
	}
	ix.tails[k] = vid

	if k > ix.maxPtr {
		ix.maxPtr = k
	}
	if k < ix.minPtr {
		ix.minPtr = k
	}
	ix.count++
}

// Remove unlinks vid from whichever bucket currently holds it, walking
// minPtr/maxPtr to the next occupied bucket if the vacated one was a
// cursor. A no-op if vid is out of range or not currently linked.
func (ix *Index) Remove(vid int) {
	if vid < 0 || vid >= len(ix.links) {
		return
	}
	n := &ix.links[vid]
	if !n.linked {
		return
	}
	k := n.bucket

	if n.prev == -1 {
		ix.heads[k] = n.next
	} else {
		ix.links[n.prev].next = n.next
	}
	if n.next == -1 {
		ix.tails[k] = n.prev
	} else {
		ix.links[n.next].prev = n.prev
	}

	n.linked = false
	n.bucket = -1
	n.prev, n.next = -1, -1
	ix.count--

	if ix.heads[k] != -1 {
		return
	}
	if ix.maxPtr == k {
		for ix.maxPtr >= 0 && ix.heads[ix.maxPtr] == -1 {
			ix.maxPtr--
		}
	}
	if ix.minPtr == k {
		for ix.minPtr < len(ix.heads) && ix.heads[ix.minPtr] == -1 {
			ix.minPtr++
		}
	}
}

// Move is the semantic equivalent of Remove(vid) followed by Add(vid, k).
func (ix *Index) Move(vid, k int) {
	ix.Remove(vid)
	ix.Add(vid, k)
}

// Bucket returns the bucket currently holding vid, or -1 if vid is
// out of range or not linked.
func (ix *Index) Bucket(vid int) int {
	if vid < 0 || vid >= len(ix.links) || !ix.links[vid].linked {
		return -1
	}
	return ix.links[vid].bucket
}

// Next returns the next vertex id in vid's own bucket list, or -1 if vid is
// the tail (or unlinked/out of range).
func (ix *Index) Next(vid int) int {
	if vid < 0 || vid >= len(ix.links) || !ix.links[vid].linked {
		return -1
	}
	return ix.links[vid].next
}

// Head returns the first vertex id linked in bucket k, or -1 if that
// bucket is empty or out of range.
func (ix *Index) Head(k int) int {
	if k < 0 || k >= len(ix.heads) {
		return -1
	}
	return ix.heads[k]
}

// MinBucket returns the smallest occupied bucket index, or len(heads) (the
// sentinel) if the index is empty.
func (ix *Index) MinBucket() int { return ix.minPtr }

// MaxBucket returns the largest occupied bucket index, or -1 (the
// sentinel) if the index is empty.
func (ix *Index) MaxBucket() int { return ix.maxPtr }

// Empty reports whether no bucket currently holds any vertex.
func (ix *Index) Empty() bool { return ix.maxPtr == -1 }

// Len returns the number of vertices currently linked into some bucket.
func (ix *Index) Len() int { return ix.count }

// MinVertex returns Head(MinBucket()), or -1 if the index is empty.
func (ix *Index) MinVertex() int {
	if ix.Empty() {
		return -1
	}
	return ix.heads[ix.minPtr]
}

// MaxVertex returns Head(MaxBucket()), or -1 if the index is empty.
func (ix *Index) MaxVertex() int {
	if ix.Empty() {
		return -1
	}
	return ix.heads[ix.maxPtr]
}
