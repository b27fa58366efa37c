package ioadj_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/usernamesimon/elimord/graph"
	"github.com/usernamesimon/elimord/ioadj"
)

func TestReadGraph(t *testing.T) {
	input := "# nodes 4\n0 1 2\n1 0\n2 0 3\n3 2\n"
	g, err := ioadj.ReadGraph(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 4, g.N())
	require.True(t, g.HasEdge(0, 1))
	require.True(t, g.HasEdge(0, 2))
	require.True(t, g.HasEdge(2, 3))
	require.False(t, g.HasEdge(1, 3))
}

func TestReadGraphMalformedHeader(t *testing.T) {
	_, err := ioadj.ReadGraph(strings.NewReader("nope\n"))
	require.ErrorIs(t, err, ioadj.ErrMalformedHeader)
}

func TestReadGraphVertexMismatch(t *testing.T) {
	_, err := ioadj.ReadGraph(strings.NewReader("# nodes 2\n0 1\n5\n"))
	require.ErrorIs(t, err, ioadj.ErrVertexCountMismatch)
}

func TestReadGraphTruncated(t *testing.T) {
	_, err := ioadj.ReadGraph(strings.NewReader("# nodes 3\n0 1\n"))
	require.ErrorIs(t, err, ioadj.ErrTruncated)
}

func TestReadGraphParseError(t *testing.T) {
	_, err := ioadj.ReadGraph(strings.NewReader("# nodes 1\n0 x\n"))
	require.ErrorIs(t, err, ioadj.ErrParseToken)
}

func TestWriteDebugFormat(t *testing.T) {
	g := graph.Create(4)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.DeleteVertex(2)

	var buf bytes.Buffer
	require.NoError(t, ioadj.WriteDebug(g, &buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Equal(t, "# nodes 3", lines[0])
	require.Equal(t, "0 1", lines[1])
	require.Equal(t, "1 0", lines[2])
	require.Equal(t, "2 d", lines[3])
	require.Equal(t, "3", lines[4])
}

func TestOrderingRoundTrip(t *testing.T) {
	order := []int{3, 1, 0, 2}
	var buf bytes.Buffer
	require.NoError(t, ioadj.WriteOrdering(order, &buf))
	require.Equal(t, "3 1 0 2\n", buf.String())

	got, err := ioadj.ReadOrdering(strings.NewReader(buf.String()), 4)
	require.NoError(t, err)
	require.Equal(t, order, got)
}

func TestReadOrderingTruncated(t *testing.T) {
	_, err := ioadj.ReadOrdering(strings.NewReader("0 1\n"), 4)
	require.ErrorIs(t, err, ioadj.ErrTruncated)
}
