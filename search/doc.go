// Package search implements a cost-aware best-first search over a hazard
// grid, with a safety predicate that prunes candidate cells before they
// enter the frontier.
//
// The algorithm is A* with a Manhattan-distance heuristic. On a 4-connected
// grid with move costs of 1 or 2 the heuristic is admissible and consistent,
// so the first path that settles the goal is cost-optimal.
//
// Complexity:
//
//	– Time:  O(N² log N²)   for an N×N grid.
//	   • Each cell is settled at most once (N² pops dominate).
//	   • Each relaxation may push a duplicate entry (lazy decrease-key).
//	– Space: O(N²)
//	   • g-score, predecessor, and visited maps.
//	   • Frontier holds at most one live plus stale entries per cell.
//
// Frontier discipline:
//
//	The priority queue never updates entries in place. Improving a cell's
//	cost pushes a fresh entry; stale duplicates are discarded on pop when
//	the cell is already settled. Ties on f-score break by insertion order
//	(a monotone sequence number), keeping traversal deterministic.
//
// Pruning:
//
//	grid.IsSafe is evaluated on every candidate neighbor before any cost
//	computation. An unsafe neighbor never touches the g-score map or the
//	frontier; it only increments the pruned counter. The predicate applies
//	uniformly: a goal made unsafe by an externally supplied grid is simply
//	unreachable, and the search reports a normal no-path result.
//
// Errors (sentinel):
//
//	– ErrNilGrid if the provided grid pointer is nil.
//
// "No path found" is NOT an error: it returns a Result with an empty Path,
// the full visited set, and the exploration statistics.
//
// Example usage:
//
//	g, _ := grid.New(10, grid.WithSeed(42))
//	g.PlaceTraps(15)
//	res, err := search.FindPath(g)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("path=%v explored=%d pruned=%d\n",
//	    res.Path, res.Stats.Explored, res.Stats.Pruned)
package search
