package ioadj

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/usernamesimon/elimord/graph"
)

// ReadGraph parses the adjacency-list format: a header line "# nodes N"
// followed by N lines, each starting with its own vertex id and
// continuing with the space-separated ids of its neighbors. An edge may
// be declared from either endpoint (or both); AddEdge's idempotence
// absorbs the duplication.
func ReadGraph(r io.Reader) (*graph.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if !sc.Scan() {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedHeader)
	}
	n, err := parseHeader(sc.Text())
	if err != nil {
		return nil, err
	}

	g := graph.Create(n)
	for i := 0; i < n; i++ {
		if !sc.Scan() {
			return nil, fmt.Errorf("%w: expected %d adjacency lines, got %d", ErrTruncated, n, i)
		}
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			return nil, fmt.Errorf("%w: empty adjacency line for vertex %d", ErrVertexCountMismatch, i)
		}
		node, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%w: vertex id %q on line %d", ErrParseToken, fields[0], i+2)
		}
		if node != i {
			return nil, fmt.Errorf("%w: line %d declares vertex %d", ErrVertexCountMismatch, i+2, node)
		}
		for _, tok := range fields[1:] {
			neighbor, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("%w: neighbor id %q on line %d", ErrParseToken, tok, i+2)
			}
			g.AddEdge(node, neighbor)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return g, nil
}

func parseHeader(line string) (int, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 || fields[0] != "#" || fields[1] != "nodes" {
		return 0, fmt.Errorf("%w: %q", ErrMalformedHeader, line)
	}
	n, err := strconv.Atoi(fields[2])
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: vertex count %q", ErrMalformedHeader, fields[2])
	}
	return n, nil
}

// ReadOrdering parses a single line of nodesLen space-separated integer
// ids. It does not itself validate that the result is a permutation;
// ordering.Validate performs that check for callers that need it.
func ReadOrdering(r io.Reader, nodesLen int) ([]int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	if !sc.Scan() {
		return nil, fmt.Errorf("%w: empty ordering input", ErrTruncated)
	}
	fields := strings.Fields(sc.Text())
	if len(fields) != nodesLen {
		return nil, fmt.Errorf("%w: got %d entries, want %d", ErrTruncated, len(fields), nodesLen)
	}
	order := make([]int, nodesLen)
	for i, tok := range fields {
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrParseToken, tok)
		}
		order[i] = v
	}
	return order, nil
}
