package ioadj

import (
	"fmt"
	"io"

	"github.com/usernamesimon/elimord/graph"
)

// WriteDebug writes g in a debug dump format: a header line, then one
// line per vertex slot giving its id, an optional literal " d" if it has
// been deleted, and its current live neighbor ids — useful for
// inspecting a graph mid-heuristic since deleted slots remain addressable.
func WriteDebug(g *graph.Graph, w io.Writer) error {
	if _, err := fmt.Fprintf(w, "# nodes %d\n", g.N()); err != nil {
		return err
	}
	for i := 0; i < g.NodesLen(); i++ {
		v := g.Vertex(i)
		if _, err := fmt.Fprintf(w, "%d", i); err != nil {
			return err
		}
		if v.IsDeleted() {
			if _, err := io.WriteString(w, " d"); err != nil {
				return err
			}
		}
		row := g.Row(i)
		for j := 0; j < g.NodesLen(); j++ {
			if !row.Test(j) {
				continue
			}
			if _, err := fmt.Fprintf(w, " %d", j); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// WriteOrdering writes order as one line of space-separated integers
// followed by a newline.
func WriteOrdering(order []int, w io.Writer) error {
	for i, v := range order {
		if i > 0 {
			if _, err := io.WriteString(w, " "); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%d", v); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}
