// Package search implements A* over a hazard grid with safety pruning.
//
// The search settles cells in order of increasing f-score (known cost plus
// Manhattan estimate) using a min-heap frontier with lazy decrease-key:
// improving a cell pushes a duplicate entry, and stale entries are skipped
// on pop once the cell is settled.
//
// Notes on implementation choices:
//
//   - The safety predicate gates every candidate neighbor before any cost
//     work; pruned neighbors never enter the g-score map or the frontier.
//   - Absent g-score entries stand for +infinity; the comparison logic
//     checks map presence explicitly instead of seeding a sentinel value.
//   - The entire search owns its state exclusively and reads the grid
//     without mutation; one grid may serve concurrent FindPath calls.
package search

import (
	"container/heap"

	"github.com/trapgrid/trapgrid/grid"
)

// FindPath runs the pruned A* search from the grid's start to its goal.
//
// Returns:
//
//   - res: the path (empty if unreachable), the settled set, and counters.
//   - err: ErrNilGrid for a nil grid; "no path found" is a normal result,
//     not an error.
//
// Complexity:
//
//   - Time:  O(N² log N²) for an N×N grid.
//   - Space: O(N²).
func FindPath(g *grid.Grid) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	r := &runner{
		g:        g,
		goal:     g.Goal(),
		gScore:   make(map[grid.Coord]int),
		fScore:   make(map[grid.Coord]int),
		cameFrom: make(map[grid.Coord]grid.Coord),
		visited:  make(map[grid.Coord]bool),
		pq:       make(nodePQ, 0, g.Size()*g.Size()),
	}

	r.init()

	return r.process(), nil
}

// runner holds the mutable state for a single search execution.
// It is created per call and discarded at return; nothing leaks onto the grid.
type runner struct {
	g        *grid.Grid                // the input grid; read-only here
	goal     grid.Coord                // cached goal coordinate
	gScore   map[grid.Coord]int        // best known cost from start (absent = +inf)
	fScore   map[grid.Coord]int        // gScore + heuristic; frontier ordering only
	cameFrom map[grid.Coord]grid.Coord // predecessor on the best known path
	visited  map[grid.Coord]bool       // settled cells
	order    []grid.Coord              // settle order, reported as Result.Visited
	pq       nodePQ                    // lazy min-heap frontier
	seq      int                       // insertion counter for deterministic ties
	stats    Stats                     // explored/pruned/path_length
}

// heuristic is the Manhattan distance from c to the goal: admissible and
// consistent on a 4-connected grid with unit-or-greater move costs.
func (r *runner) heuristic(c grid.Coord) int {
	return abs(c.X-r.goal.X) + abs(c.Y-r.goal.Y)
}

// init seeds the frontier with the start cell at priority h(start).
func (r *runner) init() {
	start := r.g.Start()
	r.gScore[start] = 0
	r.fScore[start] = r.heuristic(start)
	heap.Init(&r.pq)
	r.push(start, r.fScore[start])
}

// push adds a frontier entry with the next insertion sequence number.
func (r *runner) push(c grid.Coord, f int) {
	heap.Push(&r.pq, &nodeItem{coord: c, fScore: f, seq: r.seq})
	r.seq++
}

// process is the main loop: settle the cheapest frontier cell, stop at the
// goal, otherwise relax its neighbors. An empty frontier means no path.
func (r *runner) process() *Result {
	var current grid.Coord
	for r.pq.Len() > 0 {
		// 1) Pop the lowest-priority entry.
		current = heap.Pop(&r.pq).(*nodeItem).coord

		// 2) Skip stale duplicates: the frontier may hold several entries
		//    for one cell because improvements push instead of re-keying.
		if r.visited[current] {
			continue
		}

		// 3) Settle the cell.
		r.visited[current] = true
		r.order = append(r.order, current)
		r.stats.Explored++

		// 4) Goal reached: reconstruct and report.
		if current == r.goal {
			return r.result(r.reconstruct(current))
		}

		// 5) Relax neighbors, pruning unsafe ones first.
		r.relax(current)
	}

	// Frontier exhausted without settling the goal: a normal failure
	// result with an empty path and the counters as they stand.
	return r.result(nil)
}

// relax examines each neighbor of the settled cell u. Unsafe neighbors are
// pruned before any cost computation; safe ones are re-scored and pushed
// when the route through u strictly improves on their best known cost.
func (r *runner) relax(u grid.Coord) {
	var tentative int
	for _, n := range r.g.Neighbors(u.X, u.Y) {
		// Safety gate first: an unsafe neighbor never enters the
		// g-score map or the frontier, whatever its cost would be.
		if !r.g.IsSafe(n.X, n.Y) {
			r.stats.Pruned++
			continue
		}

		tentative = r.gScore[u] + r.g.CostOfEntering(n.X, n.Y)

		// Absent g-score means +infinity: any finite cost improves it.
		if known, ok := r.gScore[n]; ok && tentative >= known {
			continue
		}

		r.cameFrom[n] = u
		r.gScore[n] = tentative
		r.fScore[n] = tentative + r.heuristic(n)
		r.push(n, r.fScore[n])
	}
}

// reconstruct walks the predecessor chain goal → start, then reverses it
// into start → goal order.
func (r *runner) reconstruct(current grid.Coord) []grid.Coord {
	path := []grid.Coord{current}
	for {
		prev, ok := r.cameFrom[current]
		if !ok {
			break
		}
		path = append(path, prev)
		current = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// result assembles the final record. Path and Visited are always non-nil so
// the JSON encoding yields arrays, never null.
func (r *runner) result(path []grid.Coord) *Result {
	if path == nil {
		path = []grid.Coord{}
	}
	if r.order == nil {
		r.order = []grid.Coord{}
	}
	r.stats.PathLength = len(path)

	return &Result{
		Path:    path,
		Visited: r.order,
		Stats:   r.stats,
	}
}

// abs returns the absolute value of an int.
func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// nodeItem represents a frontier entry: a cell, its f-score priority, and
// the insertion sequence number used as a stable tie-break.
type nodeItem struct {
	coord  grid.Coord
	fScore int
	seq    int
}

// nodePQ is a min-heap of *nodeItem ordered by ascending f-score, ties by
// insertion order. It follows the lazy decrease-key pattern: improvements
// push fresh entries, and outdated ones are ignored when popped (checked
// via visited).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by f-score, breaking ties by insertion sequence so traversal
// order is deterministic for equal priorities.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].fScore != pq[j].fScore {
		return pq[i].fScore < pq[j].fScore
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be of type *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
