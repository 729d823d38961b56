package flow_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/dkravets/graphtk/core"
	"github.com/dkravets/graphtk/flow"
)

// FordFulkersonSuite groups tests for the augmenting-path computation.
type FordFulkersonSuite struct {
	suite.Suite
}

// TestSimplePath: s→t (cap=5) gives maxflow 5 in one augmentation.
func (s *FordFulkersonSuite) TestSimplePath() {
	net, err := flow.FromArcs([]flow.Arc[string]{
		{From: "s", To: "t", Capacity: 5},
	}, "s", "t")
	require.NoError(s.T(), err)

	res, err := flow.FordFulkerson(net)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(5), res.MaxFlow)
	require.Len(s.T(), res.Steps, 2, "one augmentation plus the terminal step")
	require.Nil(s.T(), res.Steps[1].Path, "terminal step carries no path")
}

// TestChainBottleneck: the narrowest arc on the only route limits the flow.
func (s *FordFulkersonSuite) TestChainBottleneck() {
	net, err := flow.FromArcs([]flow.Arc[string]{
		{From: "s", To: "a", Capacity: 3},
		{From: "a", To: "t", Capacity: 2},
	}, "s", "t")
	require.NoError(s.T(), err)

	res, err := flow.FordFulkerson(net)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(2), res.MaxFlow)
}

// TestClassicNetwork: the CLRS six-node network with max flow 23.
func (s *FordFulkersonSuite) TestClassicNetwork() {
	net, err := flow.FromArcs(classicArcs(), "s", "t")
	require.NoError(s.T(), err)

	res, err := flow.FordFulkerson(net)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(23), res.MaxFlow)

	s.checkConservation(net, res)
}

// TestCancellation: a suboptimal pre-assigned routing through the
// middle arc must be undone via a cancellation arc in the residual
// before the second unit can flow.
func (s *FordFulkersonSuite) TestCancellation() {
	net, err := flow.FromArcs([]flow.Arc[string]{
		{From: "s", To: "a", Flow: 1, Capacity: 1},
		{From: "s", To: "b", Capacity: 1},
		{From: "a", To: "b", Flow: 1, Capacity: 1},
		{From: "a", To: "t", Capacity: 1},
		{From: "b", To: "t", Flow: 1, Capacity: 1},
	}, "s", "t")
	require.NoError(s.T(), err)

	res, err := flow.FordFulkerson(net)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(2), res.MaxFlow)
	// The single augmentation rides the cancellation arc b→a.
	require.Len(s.T(), res.Steps, 2)
	require.Equal(s.T(), []string{"s", "b", "a", "t"}, res.Steps[0].Path)
}

// TestPreAssignedFlow: a network already at its maximum produces no
// augmentation, only the terminal step.
func (s *FordFulkersonSuite) TestPreAssignedFlow() {
	net, err := flow.FromArcs([]flow.Arc[string]{
		{From: "s", To: "a", Flow: 2, Capacity: 2},
		{From: "a", To: "t", Flow: 2, Capacity: 3},
	}, "s", "t")
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(2), net.Value())

	res, err := flow.FordFulkerson(net)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(2), res.MaxFlow)
	require.Len(s.T(), res.Steps, 1)
	require.Nil(s.T(), res.Steps[0].Path)
}

// TestNoPath: sink unreachable means maxflow 0, normal termination.
func (s *FordFulkersonSuite) TestNoPath() {
	net, err := flow.FromArcs([]flow.Arc[string]{
		{From: "s", To: "a", Capacity: 4},
		{From: "b", To: "t", Capacity: 4},
	}, "s", "t")
	require.NoError(s.T(), err)

	res, err := flow.FordFulkerson(net)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(0), res.MaxFlow)
	require.Len(s.T(), res.Steps, 1)
}

// TestTraceShape: every non-terminal step records a residual, a path
// starting at the source and ending at the sink, a positive bottleneck,
// and a flow snapshot.
func (s *FordFulkersonSuite) TestTraceShape() {
	net, err := flow.FromArcs(classicArcs(), "s", "t")
	require.NoError(s.T(), err)

	res, err := flow.FordFulkerson(net)
	require.NoError(s.T(), err)
	require.GreaterOrEqual(s.T(), len(res.Steps), 2)
	for i, step := range res.Steps {
		require.NotNil(s.T(), step.Residual)
		if i == len(res.Steps)-1 {
			require.Nil(s.T(), step.Path)
			require.Nil(s.T(), step.Flow)

			continue
		}
		require.Positive(s.T(), step.Bottleneck)
		require.NotNil(s.T(), step.Flow)
		require.Equal(s.T(), "s", step.Path[0])
		require.Equal(s.T(), "t", step.Path[len(step.Path)-1])
	}
}

// TestErrors: construction-time validation.
func (s *FordFulkersonSuite) TestErrors() {
	_, err := flow.FromArcs([]flow.Arc[string]{
		{From: "s", To: "t", Capacity: -1},
	}, "s", "t")
	var arcErr flow.ArcError[string]
	require.ErrorAs(s.T(), err, &arcErr)

	_, err = flow.FromArcs([]flow.Arc[string]{
		{From: "s", To: "t", Flow: 9, Capacity: 3},
	}, "s", "t")
	require.ErrorAs(s.T(), err, &arcErr)

	_, err = flow.FromArcs([]flow.Arc[string]{
		{From: "s", To: "t", Capacity: 1},
	}, "missing", "t")
	require.ErrorIs(s.T(), err, flow.ErrSourceNotFound)

	_, err = flow.FromArcs([]flow.Arc[string]{
		{From: "s", To: "t", Capacity: 1},
	}, "s", "missing")
	require.ErrorIs(s.T(), err, flow.ErrSinkNotFound)
}

// checkConservation verifies inflow equals outflow at every node except
// source and sink. With the signed assignment the per-node sum over
// incoming pairs must vanish.
func (s *FordFulkersonSuite) checkConservation(net *flow.Network[string], res *flow.Result[string]) {
	netInto := make(map[core.NodeID]int64)
	for k, f := range res.Flow {
		netInto[k.To] += f
	}
	for v := range net.Graph.NodeIDs() {
		if v == net.Source || v == net.Sink {
			continue
		}
		require.Zero(s.T(), netInto[v], "node %v must conserve flow", net.Graph.NodeKey(v))
	}
}

func classicArcs() []flow.Arc[string] {
	return []flow.Arc[string]{
		{From: "s", To: "v1", Capacity: 16},
		{From: "s", To: "v2", Capacity: 13},
		{From: "v1", To: "v3", Capacity: 12},
		{From: "v2", To: "v1", Capacity: 4},
		{From: "v3", To: "v2", Capacity: 9},
		{From: "v2", To: "v4", Capacity: 14},
		{From: "v4", To: "v3", Capacity: 7},
		{From: "v3", To: "t", Capacity: 20},
		{From: "v4", To: "t", Capacity: 4},
	}
}

func TestFordFulkersonSuite(t *testing.T) {
	suite.Run(t, new(FordFulkersonSuite))
}
