// Package build provides deterministic generators for classic
// undirected topologies: paths, cycles, stars, wheels and complete
// graphs. Generators exist to assemble test fixtures and demo inputs in
// one call; same inputs always produce identical graphs, with nodes
// keyed v0..v(n-1) unless a prefix option says otherwise.
package build

import (
	"errors"
	"strconv"

	"github.com/dkravets/graphtk/graph"
)

// ErrTooFewNodes is returned when n is below the topology's minimum.
var ErrTooFewNodes = errors.New("build: too few nodes for this topology")

// Options configures key generation.
type Options struct {
	// KeyPrefix prepends every generated node key; default "v".
	KeyPrefix string
}

// Option is a functional option for the generators.
type Option func(*Options)

// WithKeyPrefix replaces the default "v" key prefix.
func WithKeyPrefix(prefix string) Option {
	return func(o *Options) {
		o.KeyPrefix = prefix
	}
}

// DefaultOptions returns the baseline configuration.
func DefaultOptions() Options {
	return Options{KeyPrefix: "v"}
}

type target = graph.Undirected[string, struct{}, struct{}, int]

func resolve(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func assemble(n int, cfg Options, pairs [][2]int) (*target, error) {
	edges := make([]graph.Edge[string], len(pairs))
	for i, p := range pairs {
		edges[i] = graph.Edge[string]{
			From: cfg.KeyPrefix + strconv.Itoa(p[0]),
			To:   cfg.KeyPrefix + strconv.Itoa(p[1]),
		}
	}
	nodes := make([]string, n)
	for i := range nodes {
		nodes[i] = cfg.KeyPrefix + strconv.Itoa(i)
	}

	return graph.UndirectedFromNodesAndEdges[string, struct{}, struct{}, int](graph.Simple, nodes, edges)
}

// Path builds the path v0-v1-...-v(n-1). Requires n ≥ 1.
func Path(n int, opts ...Option) (*target, error) {
	if n < 1 {
		return nil, ErrTooFewNodes
	}
	pairs := make([][2]int, 0, n-1)
	for i := 0; i+1 < n; i++ {
		pairs = append(pairs, [2]int{i, i + 1})
	}

	return assemble(n, resolve(opts), pairs)
}

// Cycle builds the n-cycle. Requires n ≥ 3, since shorter cycles need
// self-loops or parallel edges.
func Cycle(n int, opts ...Option) (*target, error) {
	if n < 3 {
		return nil, ErrTooFewNodes
	}
	pairs := make([][2]int, 0, n)
	for i := 0; i < n; i++ {
		pairs = append(pairs, [2]int{i, (i + 1) % n})
	}

	return assemble(n, resolve(opts), pairs)
}

// Star builds one hub v0 joined to n-1 satellites. Requires n ≥ 2.
func Star(n int, opts ...Option) (*target, error) {
	if n < 2 {
		return nil, ErrTooFewNodes
	}
	pairs := make([][2]int, 0, n-1)
	for i := 1; i < n; i++ {
		pairs = append(pairs, [2]int{0, i})
	}

	return assemble(n, resolve(opts), pairs)
}

// Wheel builds a hub v0 joined to an (n-1)-cycle of satellites.
// Requires n ≥ 4.
func Wheel(n int, opts ...Option) (*target, error) {
	if n < 4 {
		return nil, ErrTooFewNodes
	}
	pairs := make([][2]int, 0, 2*(n-1))
	for i := 1; i < n; i++ {
		pairs = append(pairs, [2]int{0, i})
		next := i + 1
		if next == n {
			next = 1
		}
		pairs = append(pairs, [2]int{i, next})
	}

	return assemble(n, resolve(opts), pairs)
}

// Complete builds K_n. Requires n ≥ 1.
func Complete(n int, opts ...Option) (*target, error) {
	if n < 1 {
		return nil, ErrTooFewNodes
	}
	pairs := make([][2]int, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, [2]int{i, j})
		}
	}

	return assemble(n, resolve(opts), pairs)
}
