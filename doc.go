// Package graphtk is an in-memory toolkit for building, exploring and
// analyzing graphs — from generic storage primitives to flow, spanning
// and coloring algorithms.
//
// 🚀 What is graphtk?
//
//	A single-threaded, generics-first library that brings together:
//		• Core primitives: dense node/edge ids, a key interner, capability contracts
//		• Storage backends: canonical edge list, adjacency list, dual index, dense matrix
//		• Graph wrappers: Directed/Undirected with Simple, Multi and Pseudo insertion rules
//		• Shortest paths: Dijkstra with path reconstruction
//		• Max flow: Ford–Fulkerson with an Edmonds–Karp search and a full residual trace
//		• Spanning: Kruskal minimum spanning forests
//		• All pairs: Floyd–Warshall closure, lightest paths & distance metrics
//		• Eulerian circuits: Hierholzer on undirected multigraphs
//		• Labeled trees: Prüfer sequence encode/decode
//		• Coloring: chromatic polynomials via deletion–contraction
//
// ✨ Why choose graphtk?
//
//   - Generic end to end – pick your key, payload, metadata and weight types
//   - Swappable storage – every engine works against capability interfaces,
//     so any backend that satisfies the contract plugs in
//   - Deterministic – no goroutines, no locks, reproducible iteration order
//   - Pure Go – no cgo, no hidden deps
//
// Under the hood, everything is organized into focused subpackages:
//
//	core/       — ids, weight constraint, interner & capability interfaces
//	storage/    — the four interchangeable backends plus conversions
//	graph/      — kind-validated directed/undirected wrappers & bulk constructors
//	build/      — deterministic topology generators (path, cycle, star, wheel, complete)
//	dijkstra/   — single-source lightest paths
//	flow/       — max-flow networks with step-by-step traces
//	kruskal/    — minimum spanning forests
//	warshall/   — transitive closure, all-pairs paths, eccentricity metrics
//	hierholzer/ — Eulerian circuits
//	prufer/     — tree sequence codec
//	chromatic/  — chromatic polynomials, colorings & chromatic number
//
// Start with graph (or build for ready-made fixtures), then hand the
// result to any engine that accepts its capability interface.
package graphtk
