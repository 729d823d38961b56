// Package chromatic computes chromatic polynomials by deletion and
// contraction, with the recursion direction chosen from edge density.
//
// Two dual recursions compute P(G):
//
//   - Remove-edges, for sparse graphs: P(G) = P(G−e) − P(G/e), bottoming
//     out at the edgeless graph with P(E_n) = x^n.
//   - Add-edges, for dense graphs: P(G) = P(G+e) + P(G/e) over a
//     non-edge, bottoming out at the complete graph with the falling
//     factorial x(x−1)...(x−n+1).
//
// Contraction merges the pair into one node, dropping the resulting
// self-loop and folding parallel adjacencies into one. Both recursions
// produce identical polynomials; by default the edge density
// |E| / (n(n−1)/2) selects add-edges above 0.6 and remove-edges below,
// and WithMethod overrides the choice.
//
// No memoization is performed, so cost is exponential in the worst
// case. This is deliberate teaching-scale machinery; keep the inputs
// small.
package chromatic

import (
	"github.com/dkravets/graphtk/core"
)

// Method selects the recursion direction.
type Method int

const (
	// MethodAuto picks by edge density: add-edges above 0.6.
	MethodAuto Method = iota
	// MethodRemoveEdges forces the deletion recursion.
	MethodRemoveEdges
	// MethodAddEdges forces the completion recursion.
	MethodAddEdges
)

// String names the method for diagnostics.
func (m Method) String() string {
	switch m {
	case MethodAuto:
		return "auto"
	case MethodRemoveEdges:
		return "remove-edges"
	case MethodAddEdges:
		return "add-edges"
	default:
		return "unknown"
	}
}

// Options configures the computation.
type Options struct {
	Method Method
}

// Option is a functional option for PolynomialOf and Colorings.
type Option func(*Options)

// WithMethod forces a recursion direction instead of the density pick.
func WithMethod(m Method) Option {
	return func(o *Options) {
		o.Method = m
	}
}

// DefaultOptions returns the baseline configuration: density-adaptive.
func DefaultOptions() Options {
	return Options{Method: MethodAuto}
}

// workGraph is the recursion's scratch representation: a symmetric
// boolean adjacency over n anonymous nodes. Node identity is irrelevant
// to the polynomial, so keys are dropped on entry.
type workGraph struct {
	n   int
	adj [][]bool
}

func newWorkGraph(n int) workGraph {
	adj := make([][]bool, n)
	for i := range adj {
		adj[i] = make([]bool, n)
	}

	return workGraph{n: n, adj: adj}
}

// fromGraph folds g's records into a simple adjacency: directions,
// parallels and self-loops all collapse.
func fromGraph[K comparable, D, M any, W core.Weight](g core.GraphBase[K, D, M, W]) workGraph {
	wg := newWorkGraph(g.Order())
	for e := range g.EdgeIDs() {
		from, to := g.Endpoints(e)
		if from == to {
			continue
		}
		wg.adj[from][to] = true
		wg.adj[to][from] = true
	}

	return wg
}

func (g workGraph) clone() workGraph {
	cp := newWorkGraph(g.n)
	for i := range g.adj {
		copy(cp.adj[i], g.adj[i])
	}

	return cp
}

// edgeCount counts unordered adjacent pairs.
func (g workGraph) edgeCount() int {
	c := 0
	for i := 0; i < g.n; i++ {
		for j := i + 1; j < g.n; j++ {
			if g.adj[i][j] {
				c++
			}
		}
	}

	return c
}

// firstEdge returns the lowest adjacent pair, ok == false when edgeless.
func (g workGraph) firstEdge() (u, v int, ok bool) {
	for i := 0; i < g.n; i++ {
		for j := i + 1; j < g.n; j++ {
			if g.adj[i][j] {
				return i, j, true
			}
		}
	}

	return 0, 0, false
}

// firstNonEdge returns the lowest non-adjacent pair, ok == false when
// complete.
func (g workGraph) firstNonEdge() (u, v int, ok bool) {
	for i := 0; i < g.n; i++ {
		for j := i + 1; j < g.n; j++ {
			if !g.adj[i][j] {
				return i, j, true
			}
		}
	}

	return 0, 0, false
}

// contract merges v into u: u inherits v's adjacencies, the u-v
// self-loop vanishes, parallels fold into the boolean cell, and v's
// row and column are dropped by index shifting.
func (g workGraph) contract(u, v int) workGraph {
	cp := newWorkGraph(g.n - 1)
	shift := func(i int) int {
		if i > v {
			return i - 1
		}

		return i
	}
	for i := 0; i < g.n; i++ {
		if i == v {
			continue
		}
		for j := i + 1; j < g.n; j++ {
			if j == v || !g.adj[i][j] {
				continue
			}
			a, b := shift(i), shift(j)
			cp.adj[a][b] = true
			cp.adj[b][a] = true
		}
	}
	for j := 0; j < g.n; j++ {
		if j == v || j == u || !g.adj[v][j] {
			continue
		}
		a, b := shift(u), shift(j)
		cp.adj[a][b] = true
		cp.adj[b][a] = true
	}

	return cp
}

// removeEdges is the deletion recursion: P(G) = P(G−e) − P(G/e).
func (g workGraph) removeEdges() Polynomial {
	u, v, ok := g.firstEdge()
	if !ok {
		return monomial(g.n)
	}

	deleted := g.clone()
	deleted.adj[u][v] = false
	deleted.adj[v][u] = false

	return deleted.removeEdges().Sub(g.contract(u, v).removeEdges())
}

// addEdges is the completion recursion: P(G) = P(G+e) + P(G/e).
func (g workGraph) addEdges() Polynomial {
	u, v, ok := g.firstNonEdge()
	if !ok {
		return fallingFactorial(g.n)
	}

	completed := g.clone()
	completed.adj[u][v] = true
	completed.adj[v][u] = true

	return completed.addEdges().Add(g.contract(u, v).addEdges())
}

// PolynomialOf computes the chromatic polynomial of g.
func PolynomialOf[K comparable, D, M any, W core.Weight](g core.GraphBase[K, D, M, W], opts ...Option) Polynomial {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	wg := fromGraph[K, D, M, W](g)
	method := cfg.Method
	if method == MethodAuto {
		method = MethodRemoveEdges
		if wg.n > 1 {
			density := float64(wg.edgeCount()) / (float64(wg.n) * float64(wg.n-1) / 2)
			if density > 0.6 {
				method = MethodAddEdges
			}
		}
	}

	if method == MethodAddEdges {
		return wg.addEdges()
	}

	return wg.removeEdges()
}

// Colorings counts the proper colorings of g with k colors.
func Colorings[K comparable, D, M any, W core.Weight](g core.GraphBase[K, D, M, W], k int64, opts ...Option) int64 {
	return PolynomialOf[K, D, M, W](g, opts...).Eval(k)
}

// ChromaticNumber finds the smallest k ≥ 1 with a positive coloring
// count. The empty graph needs no color at all.
func ChromaticNumber[K comparable, D, M any, W core.Weight](g core.GraphBase[K, D, M, W]) int {
	if g.Order() == 0 {
		return 0
	}
	p := PolynomialOf[K, D, M, W](g)
	for k := int64(1); ; k++ {
		if p.Eval(k) > 0 {
			return int(k)
		}
	}
}
