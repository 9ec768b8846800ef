// Package cycle_test validates directed-cycle detection: two-vertex cycles,
// fan-outs, self-loops, diamonds, disconnected components, and cross-edges
// that must not count as cycles.
package cycle_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkovel/unigraph/core"
	"github.com/mkovel/unigraph/cycle"
)

func TestDetect_NilGraph(t *testing.T) {
	assert.False(t, cycle.Detect(nil))
}

func TestDetect_EmptyGraph(t *testing.T) {
	assert.False(t, cycle.Detect(core.NewGraph()))
}

func TestDetect_TwoVertexCycle(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("B", "A"))

	assert.True(t, cycle.Detect(g))
}

func TestDetect_FanOutAcyclic(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("A", "C"))

	assert.False(t, cycle.Detect(g))
}

func TestDetect_SelfLoop(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "A"))

	assert.True(t, cycle.Detect(g))
}

func TestDetect_DiamondIsAcyclic(t *testing.T) {
	// Two routes into D reconverge; a cross-edge to a Black vertex is not a
	// back-edge.
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("A", "C"))
	require.NoError(t, g.AddEdge("B", "D"))
	require.NoError(t, g.AddEdge("C", "D"))

	assert.False(t, cycle.Detect(g))
}

func TestDetect_LongCycle(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("B", "C"))
	require.NoError(t, g.AddEdge("C", "D"))
	require.NoError(t, g.AddEdge("D", "A"))

	assert.True(t, cycle.Detect(g))
}

func TestDetect_CycleInSecondComponent(t *testing.T) {
	g := core.NewGraph()
	// First component: acyclic chain.
	require.NoError(t, g.AddEdge("A", "B"))
	// Second component: cycle.
	require.NoError(t, g.AddEdge("X", "Y"))
	require.NoError(t, g.AddEdge("Y", "X"))

	assert.True(t, cycle.Detect(g))
}

func TestDetect_DisconnectedAcyclic(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("X", "Y"))
	require.NoError(t, g.AddVertex("Z"))

	assert.False(t, cycle.Detect(g))
}

func TestDetect_UndirectedStyleDoubleEdgeIsCycle(t *testing.T) {
	// A pair of antiparallel edges deliberately forms a directed 2-cycle;
	// this library has no undirected-edge exemption.
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("U", "V"))
	require.NoError(t, g.AddEdge("V", "U"))
	require.NoError(t, g.AddEdge("V", "W"))

	assert.True(t, cycle.Detect(g))
}

func TestDetect_DeepChainNoFalsePositive(t *testing.T) {
	// Long acyclic chain with shortcuts; siblings re-reaching Black vertices
	// must not report a cycle.
	g := core.NewGraph()
	const n = 200
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1)))
	}
	for i := 0; i+2 <= n; i += 2 {
		require.NoError(t, g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+2)))
	}

	assert.False(t, cycle.Detect(g))
}
