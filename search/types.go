// Package search defines the result record and sentinel errors for the
// hazard-grid pathfinder of github.com/trapgrid/trapgrid.
package search

import (
	"errors"

	"github.com/trapgrid/trapgrid/grid"
)

// ErrNilGrid indicates that a nil *grid.Grid was passed to FindPath.
var ErrNilGrid = errors.New("search: grid is nil")

// Stats aggregates exploration counters for one search invocation.
type Stats struct {
	// Explored counts settle operations: cells popped from the frontier
	// and finalized. Stale duplicate pops are not counted.
	Explored int `json:"explored"`

	// Pruned counts neighbor rejections by the safety predicate. A safe
	// neighbor whose tentative cost does not improve is never counted.
	Pruned int `json:"pruned"`

	// PathLength is the number of cells on the returned path, start and
	// goal inclusive; 0 when no path was found.
	PathLength int `json:"path_length"`
}

// Result is the outcome of one FindPath call.
type Result struct {
	// Path is the cost-optimal route from start to goal inclusive,
	// or empty when the goal is unreachable.
	Path []grid.Coord `json:"path"`

	// Visited lists every settled cell in settle order.
	Visited []grid.Coord `json:"visited"`

	// Stats carries the exploration counters.
	Stats Stats `json:"stats"`
}

// Found reports whether the search reached the goal.
func (r *Result) Found() bool { return len(r.Path) > 0 }
