// Package grid models a square 2D board populated with hazard cells and
// answers the adjacency, safety, and cost queries the search engine needs.
//
// What:
//
//   - Grid wraps an N×N matrix of cell states (Empty, Trap, Dangerous).
//   - PlaceTraps scatters traps with an injected RNG under a bounded
//     attempt budget, then derives the Dangerous classification in one pass.
//   - Neighbors enumerates the 4-directional adjacency in a fixed order.
//   - IsSafe is the pruning predicate: traps and cells hemmed in by three or
//     more hazardous neighbors are rejected before they enter a frontier.
//   - CostOfEntering prices a move: 2 into a Dangerous cell, 1 otherwise.
//
// Why:
//
//   - Pathfinding: the search engine consumes a Grid read-only.
//   - Reproducibility: WithSeed makes trap placement fully deterministic.
//   - Wire exchange: FromCells/Cells round-trip the integer-code matrix
//     encoding (0 = Empty, 1 = Trap, 2 = Dangerous) without hidden state.
//
// Complexity:
//
//   - New:            O(N²) time and memory.
//   - PlaceTraps:     O(k·attempts + N²) time, O(1) extra memory.
//   - Neighbors:      O(1) (at most four cells).
//   - IsSafe:         O(1) (inspects at most four neighbors).
//   - CostOfEntering: O(1).
//
// Options:
//
//   - WithSeed(seed): deterministic trap placement for tests and replays.
//   - WithRand(rng):  caller-owned RNG; panics on nil.
//
// Errors (sentinel):
//
//   - ErrInvalidSize if the requested size is below MinGridSize.
//   - ErrInvalidGrid if a supplied cell matrix is empty, non-square, or
//     holds an unknown cell code.
//
// A Grid is immutable once PlaceTraps (or FromCells) has produced its final
// classification; concurrent read-only searches over one Grid are safe.
package grid
