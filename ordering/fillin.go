package ordering

import (
	"github.com/usernamesimon/elimord/bitset"
	"github.com/usernamesimon/elimord/graph"
	"github.com/usernamesimon/elimord/priority"
)

// FillIn runs the minimum-fill-in heuristic on g, consuming it, and
// returns the resulting elimination ordering together with the induced
// treewidth upper bound. This is the algorithmic heart of the system:
// every elimination step patches the fill-in counts of every vertex whose
// score the new clique edges could have disturbed, rather than
// recomputing from scratch.
func FillIn(g *graph.Graph) (order []int, width int) {
	n := g.NodesLen()
	idx := priority.New(n)
	for v := 0; v < n; v++ {
		if g.Vertex(v).IsDeleted() {
			continue
		}
		f := fillinOf(g, v)
		idx.Add(v, f)
		g.SetPriorityIndex(v, f)
	}

	order = g.Ordering()
	live := g.N()
	for i := 0; i < live; i++ {
		v := idx.MinVertex()
		if v == -1 {
			break
		}
		deg := g.Vertex(v).Degree()

		fillinStep(g, idx, v)

		order[i] = v
		if deg > width {
			width = deg
		}
	}
	return order, width
}

// fillinStep performs the online bucket update for eliminating v and then
// deletes v. The clique is built incrementally by explicit AddEdge calls
// inside this function (not by a second pass through graph.Eliminate),
// exactly tracking which fill-in counts each new edge perturbs.
func fillinStep(g *graph.Graph, idx *priority.Index, v int) {
	row := g.Row(v)
	width := len(row)

	dB := make(bitset.Row, width)
	common := make(bitset.Row, width)
	bOnly := make(bitset.Row, width)
	cOnly := make(bitset.Row, width)
	aOnly := make(bitset.Row, width)

	// Snapshot v's neighbors before any mutation below touches row v's own
	// neighbors' rows (row v itself never changes during this loop).
	neighbors := make([]int, 0, g.Vertex(v).Degree())
	for b := bitset.NextSet(row, 0); b != -1; b = bitset.NextSet(row, b+1) {
		neighbors = append(neighbors, b)
	}

	for _, b := range neighbors {
		brow := g.Row(b)
		bitset.Diff(dB, row, brow) // D_b = row[v] &^ row[b]

		for c := bitset.NextSet(dB, b+1); c != -1; c = bitset.NextSet(dB, c+1) {
			crow := g.Row(c)
			bitset.CommonAndBothDiffs(common, bOnly, cOnly, brow, crow)
			common.Clear(v)
			bOnly.Clear(c)
			cOnly.Clear(b)

			for x := bitset.NextSet(common, 0); x != -1; x = bitset.NextSet(common, x+1) {
				moveFillin(g, idx, x, -1)
			}
			if inc := bitset.PopCount(bOnly); inc > 0 {
				moveFillin(g, idx, b, inc)
			}
			if inc := bitset.PopCount(cOnly); inc > 0 {
				moveFillin(g, idx, c, inc)
			}

			g.AddEdge(b, c)
		}

		bitset.Diff(aOnly, brow, row)
		aOnly.Clear(v)
		if dec := bitset.PopCount(aOnly); dec > 0 {
			moveFillin(g, idx, b, -dec)
		}
	}

	idx.Remove(v)
	g.SetPriorityIndex(v, -1)
	g.DeleteVertex(v)
}

// moveFillin applies delta to v's fill-in bucket, floored at zero: a
// fill-in count can never be negative, and priority.Index silently ignores
// a negative bucket argument, so this guard keeps the two structures from
// drifting apart if rounding ever pushed a count below its true value.
func moveFillin(g *graph.Graph, idx *priority.Index, v, delta int) {
	nb := idx.Bucket(v) + delta
	if nb < 0 {
		nb = 0
	}
	idx.Move(v, nb)
	g.SetPriorityIndex(v, nb)
}

// fillinOf computes the number of non-edges in v's open neighborhood from
// scratch: for each neighbor b, row[v]&^row[b] counts v's neighbors not
// already adjacent to b (including b itself, corrected by the -1), summed
// and halved since every missing pair is counted from both its endpoints.
func fillinOf(g *graph.Graph, v int) int {
	row := g.Row(v)
	if row == nil {
		return 0
	}
	scratch := make(bitset.Row, len(row))
	total := 0
	for b := bitset.NextSet(row, 0); b != -1; b = bitset.NextSet(row, b+1) {
		bitset.Diff(scratch, row, g.Row(b))
		total += bitset.PopCount(scratch) - 1
	}
	return total / 2
}
