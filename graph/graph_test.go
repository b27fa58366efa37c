package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/usernamesimon/elimord/graph"
)

func k4(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.Create(4)
	for u := 0; u < 4; u++ {
		for v := u + 1; v < 4; v++ {
			g.AddEdge(u, v)
		}
	}
	return g
}

func TestCreate(t *testing.T) {
	g := graph.Create(5)
	require.Equal(t, 5, g.NodesLen())
	require.Equal(t, 5, g.N())
	require.Equal(t, 0, g.M())
	for i := 0; i < 5; i++ {
		require.Equal(t, i, g.Vertex(i).ID())
		require.Equal(t, 0, g.Vertex(i).Degree())
		require.False(t, g.Vertex(i).IsDeleted())
		require.Equal(t, -1, g.Vertex(i).PriorityIndex())
		require.Equal(t, -1, g.Ordering()[i])
	}
	require.Nil(t, g.Vertex(-1))
	require.Nil(t, g.Vertex(5))
}

func TestAddEdgeIdempotent(t *testing.T) {
	g := graph.Create(3)
	require.False(t, g.HasEdge(0, 1))

	g.AddEdge(0, 1)
	require.True(t, g.HasEdge(0, 1))
	require.True(t, g.HasEdge(1, 0))
	require.Equal(t, 1, g.Vertex(0).Degree())
	require.Equal(t, 1, g.Vertex(1).Degree())
	require.Equal(t, 1, g.M())

	// P9: idempotence.
	g.AddEdge(0, 1)
	require.Equal(t, 1, g.Vertex(0).Degree())
	require.Equal(t, 1, g.Vertex(1).Degree())
	require.Equal(t, 1, g.M())
}

func TestAddEdgeSelfLoopNoop(t *testing.T) {
	g := graph.Create(2)
	g.AddEdge(0, 0)
	require.False(t, g.HasEdge(0, 0))
	require.Equal(t, 0, g.Vertex(0).Degree())
	require.Equal(t, 0, g.M())
}

func TestAddEdgeOutOfRangeNoop(t *testing.T) {
	g := graph.Create(2)
	g.AddEdge(0, 5)
	require.Equal(t, 0, g.M())
	require.False(t, g.HasEdge(0, 5))
}

func TestDeleteEdge(t *testing.T) {
	g := k4(t)
	g.DeleteEdge(0, 1)
	require.False(t, g.HasEdge(0, 1))
	require.Equal(t, 2, g.Vertex(0).Degree())
	require.Equal(t, 2, g.Vertex(1).Degree())
	require.Equal(t, 5, g.M())
}

func TestDeleteVertex(t *testing.T) {
	g := k4(t)
	g.DeleteVertex(0)
	require.True(t, g.Vertex(0).IsDeleted())
	require.Equal(t, 3, g.N())
	// Remaining vertices lost their edge to 0.
	require.Equal(t, 2, g.Vertex(1).Degree())
	require.Equal(t, 2, g.Vertex(2).Degree())
	require.Equal(t, 2, g.Vertex(3).Degree())
	require.Equal(t, 3, g.M())

	// Deleting again is a no-op.
	g.DeleteVertex(0)
	require.Equal(t, 3, g.N())
}

func TestEliminateMakesCliqueAndReturnsDegree(t *testing.T) {
	// Star: 0 is the hub, 1..4 are leaves. Eliminating 0 must make 1..4 a
	// clique and return degree(0) == 4.
	g := graph.Create(5)
	for i := 1; i <= 4; i++ {
		g.AddEdge(0, i)
	}

	width, neighbors := g.Eliminate(0, nil)
	require.Equal(t, 4, width)
	require.ElementsMatch(t, []int{1, 2, 3, 4}, neighbors)
	require.True(t, g.Vertex(0).IsDeleted())

	for u := 1; u <= 4; u++ {
		for v := 1; v <= 4; v++ {
			if u == v {
				continue
			}
			require.True(t, g.HasEdge(u, v), "eliminating the hub must clique its leaves")
		}
		require.Equal(t, 3, g.Vertex(u).Degree())
	}
}

func TestEliminateMissingVertex(t *testing.T) {
	g := graph.Create(2)
	width, neighbors := g.Eliminate(5, nil)
	require.Equal(t, -1, width)
	require.Empty(t, neighbors)

	g.DeleteVertex(0)
	width, _ = g.Eliminate(0, nil)
	require.Equal(t, -1, width)
}

func TestCloneIndependence(t *testing.T) {
	g := k4(t)
	c := g.Clone()

	c.DeleteEdge(0, 1)
	require.True(t, g.HasEdge(0, 1), "mutating the clone must not affect the original")
	require.False(t, c.HasEdge(0, 1))

	c.Eliminate(2, nil)
	require.False(t, g.Vertex(2).IsDeleted())
	require.True(t, c.Vertex(2).IsDeleted())
}

func TestSymmetryInvariant(t *testing.T) {
	g := graph.Create(6)
	g.AddEdge(1, 4)
	g.AddEdge(2, 5)
	for u := 0; u < 6; u++ {
		for v := 0; v < 6; v++ {
			require.Equal(t, g.HasEdge(u, v), g.HasEdge(v, u))
		}
	}
}

func TestCardinalityIn(t *testing.T) {
	g := k4(t)
	// set = {0,2,3} (vertex 1's neighbor row, which never contains 1 itself).
	set := g.Row(1).Clone()
	// vertex 0's neighbors are {1,2,3}; set ∩ {1,2,3} = {2,3}.
	require.Equal(t, 2, g.CardinalityIn(0, set))
}
