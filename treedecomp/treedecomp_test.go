package treedecomp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/usernamesimon/elimord/graph"
	"github.com/usernamesimon/elimord/treedecomp"
)

func TestFromOrderingNotImplemented(t *testing.T) {
	g := graph.Create(3)
	_, err := treedecomp.FromOrdering(g, []int{0, 1, 2})
	require.ErrorIs(t, err, treedecomp.ErrNotImplemented)
}
