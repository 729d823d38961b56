package flow

import (
	"fmt"

	"github.com/dkravets/graphtk/core"
	"github.com/dkravets/graphtk/storage"
)

// ErrSourceNotFound is returned when the designated source key is missing.
var ErrSourceNotFound = fmt.Errorf("flow: %w", errSourceNotFound)
var errSourceNotFound = fmt.Errorf("source node not found")

// ErrSinkNotFound is returned when the designated sink key is missing.
var ErrSinkNotFound = fmt.Errorf("flow: %w", errSinkNotFound)
var errSinkNotFound = fmt.Errorf("sink node not found")

// ArcError reports an arc with a negative capacity or an initial flow
// exceeding its capacity.
type ArcError[K comparable] struct {
	From, To K
	Flow     int64
	Cap      int64
}

func (e ArcError[K]) Error() string {
	if e.Cap < 0 {
		return fmt.Sprintf("flow: negative capacity on arc %v→%v: %d", e.From, e.To, e.Cap)
	}

	return fmt.Sprintf("flow: arc %v→%v carries flow %d over capacity %d", e.From, e.To, e.Flow, e.Cap)
}

// ArcKey addresses the signed per-ordered-pair flow assignment.
type ArcKey struct {
	From, To core.NodeID
}

// Arc is one construction tuple: a directed capacity arc with an
// optional pre-assigned flow.
type Arc[K comparable] struct {
	From     K
	To       K
	Flow     int64
	Capacity int64
}

// Network is a flow network: a directed arc structure, per-arc integer
// capacities indexed by edge id, and a signed flow assignment per
// ordered node pair. Flow[{u,v}] == -Flow[{v,u}] at all times.
type Network[K comparable] struct {
	// Graph holds the capacity arcs. Arcs are unweighted records; the
	// capacity lives in Capacities so parallel arcs keep distinct caps.
	Graph *storage.Definition[K, struct{}, struct{}, int64]

	// Capacities[e] is the capacity of arc e.
	Capacities []int64

	// Flow is the current signed assignment per ordered pair.
	Flow map[ArcKey]int64

	Source core.NodeID
	Sink   core.NodeID
}

// Step records one iteration of the augmenting loop for trace display.
// The final step of every run has a nil Path: the residual network in
// which no augmenting path exists.
type Step[K comparable] struct {
	// Residual is the residual network built at the top of the iteration.
	Residual *storage.Definition[K, struct{}, struct{}, int64]

	// Path is the augmenting path found in Residual, in key form, or nil
	// when the search failed and the loop terminated.
	Path []K

	// Bottleneck is the amount pushed along Path; zero on the final step.
	Bottleneck int64

	// Flow is a snapshot of the assignment after augmenting; nil on the
	// final step.
	Flow map[ArcKey]int64
}

// Result holds the completed computation and its full trace.
type Result[K comparable] struct {
	// MaxFlow is the net flow leaving the source.
	MaxFlow int64

	// Flow is the final signed assignment per ordered pair.
	Flow map[ArcKey]int64

	// Steps is the iteration trace, final no-path step included.
	Steps []Step[K]
}

// Options configures the augmenting loop.
//   - Verbose: print each augmenting path and its bottleneck.
type Options struct {
	Verbose bool
}

// Option is a functional option for FordFulkerson.
type Option func(*Options)

// WithVerbose enables printing of each augmentation.
func WithVerbose() Option {
	return func(o *Options) {
		o.Verbose = true
	}
}

// DefaultOptions returns the baseline configuration: quiet.
func DefaultOptions() Options {
	return Options{}
}

// FromArcs builds a network from construction tuples. Endpoints are
// interned in first-mention order; pre-assigned flows are folded into
// the signed assignment. Fails with ArcError on a negative capacity or
// an initial flow exceeding its arc's capacity, and with
// ErrSourceNotFound/ErrSinkNotFound when the designated keys never
// appear among the arc endpoints.
func FromArcs[K comparable](arcs []Arc[K], source, sink K) (*Network[K], error) {
	net := &Network[K]{
		Graph: storage.NewDefinition[K, struct{}, struct{}, int64](),
		Flow:  make(map[ArcKey]int64),
	}
	for _, a := range arcs {
		if a.Capacity < 0 || a.Flow > a.Capacity {
			return nil, ArcError[K]{From: a.From, To: a.To, Flow: a.Flow, Cap: a.Capacity}
		}
		from := net.Graph.AddNode(a.From, struct{}{})
		to := net.Graph.AddNode(a.To, struct{}{})
		net.Graph.AddEdge(from, to, struct{}{})
		net.Capacities = append(net.Capacities, a.Capacity)
		if a.Flow != 0 {
			net.Flow[ArcKey{From: from, To: to}] += a.Flow
			net.Flow[ArcKey{From: to, To: from}] -= a.Flow
		}
	}

	s, ok := net.Graph.NodeID(source)
	if !ok {
		return nil, ErrSourceNotFound
	}
	t, ok := net.Graph.NodeID(sink)
	if !ok {
		return nil, ErrSinkNotFound
	}
	net.Source, net.Sink = s, t

	return net, nil
}

// Value reports the net flow leaving the source under the current
// assignment.
func (n *Network[K]) Value() int64 {
	var total int64
	for k, f := range n.Flow {
		if k.From == n.Source {
			total += f
		}
	}

	return total
}
