// Package trapgrid is a hazard-aware shortest-path toolkit for square grids.
//
// 🚀 What is trapgrid?
//
//	A small, deterministic library that finds cost-optimal routes across a
//	grid seeded with traps:
//		• Grid model: trap placement, derived danger zones, safety queries
//		• Search engine: A* with Manhattan heuristic and safety pruning
//		• Exploration stats: settled, pruned, and path length per search
//		• Thin HTTP adapter: generate grids and solve them over JSON
//
// ✨ Why choose trapgrid?
//
//   - Deterministic by construction – injected, seedable randomness
//   - Read-only grids – one grid may serve many concurrent searches
//   - Honest failures – "no path" is a result, not an error
//   - Pure Go core – the algorithm packages carry no dependencies
//
// Everything is organized under focused subpackages:
//
//	grid/   — cell states, hazard derivation, adjacency & safety queries
//	search/ — the best-first search loop, pruning, path reconstruction
//	server/ — JSON endpoints for grid generation and pathfinding
//
// Quick ASCII example (S = start, G = goal, T = trap, ! = dangerous):
//
//	S . ! T
//	. . ! !
//	. . . .
//	! T ! G
//
//	the search threads the safe corridor and pays 2 per dangerous step.
//
// Dive into grid/doc.go and search/doc.go for the full contracts.
//
//	go get github.com/trapgrid/trapgrid
package trapgrid
