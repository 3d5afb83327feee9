package flow_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/dkoslav/grath/core"
	"github.com/dkoslav/grath/flow"
)

// buildTextbookNetwork returns the classic 6-vertex directed network with
// maximum flow 23 from 0 to 5. Its unique source-minimal min cut is
// {0,1,2,4} with crossing arcs 1→3 (12), 4→3 (7) and 4→5 (4).
func buildTextbookNetwork(t *testing.T) *core.Graph {
	t.Helper()
	g := core.New(6, core.WithDirected(true))
	for _, a := range [][3]int64{
		{0, 1, 16}, {0, 2, 13},
		{1, 3, 12},
		{2, 1, 4}, {2, 4, 14},
		{3, 2, 9}, {3, 5, 20},
		{4, 3, 7}, {4, 5, 4},
	} {
		require.NoError(t, g.AddEdge(int(a[0]), int(a[1]), a[2]))
	}
	return g
}

// textbookCut is the expected MinCut certificate for buildTextbookNetwork.
func textbookCut() ([]int, []core.Edge) {
	return []int{0, 1, 2, 4}, []core.Edge{
		{From: 1, To: 3, Weight: 12, Directed: true},
		{From: 4, To: 3, Weight: 7, Directed: true},
		{From: 4, To: 5, Weight: 4, Directed: true},
	}
}

// cutWeight sums the capacities of a cut.
func cutWeight(cut []core.Edge) int64 {
	var total int64
	for _, e := range cut {
		total += e.Weight
	}
	return total
}

// EdmondsKarpSuite groups the Edmonds-Karp solver tests.
type EdmondsKarpSuite struct {
	suite.Suite
}

// TestSinglePath: one arc 0→1 (cap 5) carries exactly its capacity.
func (s *EdmondsKarpSuite) TestSinglePath() {
	g := core.New(2, core.WithDirected(true))
	require.NoError(s.T(), g.AddEdge(0, 1, 5))

	res, err := flow.EdmondsKarp(g, 0, 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(5), res.MaxFlow)
}

// TestTwoRoutes: direct arc plus a detour sum their capacities (3 + 2).
func (s *EdmondsKarpSuite) TestTwoRoutes() {
	g := core.New(3, core.WithDirected(true))
	require.NoError(s.T(), g.AddEdge(0, 1, 3))
	require.NoError(s.T(), g.AddEdge(0, 2, 4))
	require.NoError(s.T(), g.AddEdge(2, 1, 2))

	res, err := flow.EdmondsKarp(g, 0, 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(5), res.MaxFlow)
}

// TestTextbookNetwork: maximum flow 23 and the exact min-cut certificate.
func (s *EdmondsKarpSuite) TestTextbookNetwork() {
	res, err := flow.EdmondsKarp(buildTextbookNetwork(s.T()), 0, 5)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(23), res.MaxFlow)

	wantSide, wantCut := textbookCut()
	side, cut := res.MinCut()
	require.Equal(s.T(), wantSide, side)
	require.Equal(s.T(), wantCut, cut)
	require.Equal(s.T(), res.MaxFlow, cutWeight(cut))
}

// TestTwoDisjointPaths: the diamond 0→{1,2}→3 (all caps 10) saturates
// both routes, and the unique flow assignment puts 10 on every arc.
func (s *EdmondsKarpSuite) TestTwoDisjointPaths() {
	g := core.New(4, core.WithDirected(true))
	require.NoError(s.T(), g.AddEdge(0, 1, 10))
	require.NoError(s.T(), g.AddEdge(0, 2, 10))
	require.NoError(s.T(), g.AddEdge(1, 3, 10))
	require.NoError(s.T(), g.AddEdge(2, 3, 10))

	res, err := flow.EdmondsKarp(g, 0, 3)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(20), res.MaxFlow)

	for _, a := range [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}} {
		require.Equal(s.T(), int64(10), res.FlowOn(a[0], a[1]))
	}
	require.Zero(s.T(), res.FlowOn(0, 3))
	require.Zero(s.T(), res.FlowOn(1, 2))
	require.Zero(s.T(), res.FlowOn(3, 0))
	require.Zero(s.T(), res.FlowOn(-1, 0))
	require.Zero(s.T(), res.FlowOn(0, 9))

	side, cut := res.MinCut()
	require.Equal(s.T(), []int{0}, side)
	require.Equal(s.T(), res.MaxFlow, cutWeight(cut))
}

// TestFlowOnBreakdown: per-arc flows on the textbook network respect
// capacities, conserve at interior vertices and saturate the cut.
func (s *EdmondsKarpSuite) TestFlowOnBreakdown() {
	g := buildTextbookNetwork(s.T())
	res, err := flow.EdmondsKarp(g, 0, 5)
	require.NoError(s.T(), err)

	inflow := make([]int64, 6)
	outflow := make([]int64, 6)
	for _, e := range g.Edges() {
		f := res.FlowOn(e.From, e.To)
		require.GreaterOrEqual(s.T(), f, int64(0))
		require.LessOrEqual(s.T(), f, e.Weight)
		outflow[e.From] += f
		inflow[e.To] += f
	}
	for v := 1; v <= 4; v++ {
		require.Equal(s.T(), inflow[v], outflow[v], "vertex %d", v)
	}
	require.Equal(s.T(), res.MaxFlow, outflow[0])
	require.Equal(s.T(), res.MaxFlow, inflow[5])

	_, cut := res.MinCut()
	for _, e := range cut {
		require.Equal(s.T(), e.Weight, res.FlowOn(e.From, e.To))
	}
}

// TestParallelArcsAggregate: arcs 0→1 of caps 2 and 3 act as one cap-5 arc.
func (s *EdmondsKarpSuite) TestParallelArcsAggregate() {
	g := core.New(2, core.WithDirected(true))
	require.NoError(s.T(), g.AddEdge(0, 1, 2))
	require.NoError(s.T(), g.AddEdge(0, 1, 3))

	res, err := flow.EdmondsKarp(g, 0, 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(5), res.MaxFlow)

	_, cut := res.MinCut()
	require.Equal(s.T(), []core.Edge{{From: 0, To: 1, Weight: 5, Directed: true}}, cut)
}

// TestUndirectedChain: an undirected path carries its bottleneck both ways.
func (s *EdmondsKarpSuite) TestUndirectedChain() {
	g := core.New(3)
	require.NoError(s.T(), g.AddEdge(0, 1, 4))
	require.NoError(s.T(), g.AddEdge(1, 2, 6))

	forward, err := flow.EdmondsKarp(g, 0, 2)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(4), forward.MaxFlow)

	backward, err := flow.EdmondsKarp(g, 2, 0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(4), backward.MaxFlow)
}

// TestMixedOrientation: a directed arc in a mixed graph blocks reverse flow.
func (s *EdmondsKarpSuite) TestMixedOrientation() {
	g := core.New(3)
	require.NoError(s.T(), g.AddEdge(0, 1, 3))
	require.NoError(s.T(), g.AddDirectedEdge(1, 2, 2))

	forward, err := flow.EdmondsKarp(g, 0, 2)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(2), forward.MaxFlow)

	backward, err := flow.EdmondsKarp(g, 2, 0)
	require.NoError(s.T(), err)
	require.Zero(s.T(), backward.MaxFlow)
}

// TestSelfLoopIgnored: a loop at the source contributes nothing.
func (s *EdmondsKarpSuite) TestSelfLoopIgnored() {
	g := core.New(2, core.WithDirected(true))
	require.NoError(s.T(), g.AddEdge(0, 0, 9))
	require.NoError(s.T(), g.AddEdge(0, 1, 2))

	res, err := flow.EdmondsKarp(g, 0, 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(2), res.MaxFlow)
}

// TestZeroCapacityArcDropped: a cap-0 arc moves nothing and never crosses a cut.
func (s *EdmondsKarpSuite) TestZeroCapacityArcDropped() {
	g := core.New(2, core.WithDirected(true))
	require.NoError(s.T(), g.AddEdge(0, 1, 0))

	res, err := flow.EdmondsKarp(g, 0, 1)
	require.NoError(s.T(), err)
	require.Zero(s.T(), res.MaxFlow)

	side, cut := res.MinCut()
	require.Equal(s.T(), []int{0}, side)
	require.Empty(s.T(), cut)
}

// TestUnreachableSink: islands give zero flow and an empty cut.
func (s *EdmondsKarpSuite) TestUnreachableSink() {
	g := core.New(4, core.WithDirected(true))
	require.NoError(s.T(), g.AddEdge(0, 1, 5))
	require.NoError(s.T(), g.AddEdge(2, 3, 5))

	res, err := flow.EdmondsKarp(g, 0, 3)
	require.NoError(s.T(), err)
	require.Zero(s.T(), res.MaxFlow)

	side, cut := res.MinCut()
	require.Equal(s.T(), []int{0, 1}, side)
	require.Empty(s.T(), cut)
}

// TestInputGraphUntouched: solving twice over the same graph replays exactly.
func (s *EdmondsKarpSuite) TestInputGraphUntouched() {
	g := buildTextbookNetwork(s.T())

	first, err := flow.EdmondsKarp(g, 0, 5)
	require.NoError(s.T(), err)
	second, err := flow.EdmondsKarp(g, 0, 5)
	require.NoError(s.T(), err)

	require.Equal(s.T(), int64(23), first.MaxFlow)
	require.Equal(s.T(), first.MaxFlow, second.MaxFlow)
	require.Equal(s.T(), 9, g.EdgeCount())
}

// TestNegativeCapacity: the offending arc is reported via CapacityError.
func (s *EdmondsKarpSuite) TestNegativeCapacity() {
	g := core.New(2, core.WithDirected(true))
	require.NoError(s.T(), g.AddEdge(0, 1, -3))

	_, err := flow.EdmondsKarp(g, 0, 1)
	require.Error(s.T(), err)

	var ce *flow.CapacityError
	require.ErrorAs(s.T(), err, &ce)
	require.Equal(s.T(), 0, ce.From)
	require.Equal(s.T(), 1, ce.To)
	require.Equal(s.T(), int64(-3), ce.Cap)
}

// TestValidation: nil graph, endpoint ranges and source==sink are rejected.
func (s *EdmondsKarpSuite) TestValidation() {
	_, err := flow.EdmondsKarp(nil, 0, 1)
	require.ErrorIs(s.T(), err, flow.ErrGraphNil)

	g := core.New(3, core.WithDirected(true))

	_, err = flow.EdmondsKarp(g, -1, 2)
	require.ErrorIs(s.T(), err, flow.ErrSourceOutOfRange)
	require.ErrorIs(s.T(), err, core.ErrVertexOutOfRange)

	_, err = flow.EdmondsKarp(g, 0, 3)
	require.ErrorIs(s.T(), err, flow.ErrSinkOutOfRange)
	require.ErrorIs(s.T(), err, core.ErrVertexOutOfRange)

	_, err = flow.EdmondsKarp(g, 1, 1)
	require.ErrorIs(s.T(), err, flow.ErrSourceIsSink)

	_, err = flow.EdmondsKarp(core.New(0), 0, 1)
	require.ErrorIs(s.T(), err, flow.ErrSourceOutOfRange)
}

// TestContextCancelled: a cancelled context aborts before any augmentation.
func (s *EdmondsKarpSuite) TestContextCancelled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := flow.EdmondsKarp(buildTextbookNetwork(s.T()), 0, 5, flow.WithContext(ctx))
	require.ErrorIs(s.T(), err, context.Canceled)
}

func TestEdmondsKarpSuite(t *testing.T) {
	suite.Run(t, new(EdmondsKarpSuite))
}
