// Package grath is an in-memory toolkit for building and analyzing graphs
// over dense integer vertices, from core primitives to spanning trees,
// shortest paths, strong connectivity and maximum flow.
//
// 🚀 What is grath?
//
//	A deterministic graph engine that brings together:
//		• Core primitives: dense vertex indices, mixed edge orientation, safe mutation under locks
//		• Disjoint sets: union-find with rank, path halving and component sizes
//		• Traversals: BFS and DFS with hooks, topological orderings, cycle witnesses
//		• Shortest paths: Dijkstra, Bellman-Ford, Floyd-Warshall
//		• Minimum spanning trees: Prim, Kruskal
//		• Strong connectivity: Tarjan components and the condensation DAG
//		• Flow: Ford-Fulkerson, Edmonds-Karp, Dinic with min-cut certificates
//		• Fixtures: deterministic generators for the standard graph families
//
// ✨ Why grath?
//
//   - Deterministic: identical inputs replay identical outputs, bit for bit
//   - Explicit errors: package sentinels, errors.Is and errors.As all the way down
//   - Pure Go: no cgo; outside of tests the dependency surface is the standard library
//   - Extensible: functional options and hooks (OnVisit, OnEnqueue, ...) on every walk
//
// Everything is organized in focused subpackages:
//
//	core/           - the Graph store: vertices, edges, catalogs, feature probes
//	unionfind/      - disjoint sets with near-constant merges
//	bfs/, dfs/      - traversals, orderings, cycle detection
//	dijkstra/       - non-negative single-source distances
//	bellman_ford/   - negative-tolerant distances plus cycle detection
//	floyd_warshall/ - all-pairs distances with path recovery
//	prim_kruskal/   - spanning trees and forests
//	scc/            - strongly connected components, condensation
//	flow/           - maximum flow and minimum cut, three solvers
//	builder/        - deterministic graph generators for tests and benches
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    3───2
//
//	a square: four vertices, four edges, builder.Cycle(4) away.
//
//	go get github.com/dkoslav/grath
package grath
