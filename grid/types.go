// Package grid defines core types, options, and sentinel errors for the
// hazard-grid model of github.com/trapgrid/trapgrid.
package grid

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// Sentinel errors for grid construction.
var (
	// ErrInvalidSize indicates the requested grid size is below MinGridSize.
	ErrInvalidSize = errors.New("grid: size must be at least 2")

	// ErrInvalidGrid indicates a supplied cell matrix is missing, empty,
	// non-square, or contains an unknown cell code.
	ErrInvalidGrid = errors.New("grid: cell matrix must be non-empty and square")
)

// CellState encodes the classification of a single cell.
// The numeric values are the wire encoding used by FromCells and Cells.
type CellState int

const (
	// Empty is a freely traversable cell with base movement cost.
	Empty CellState = iota
	// Trap is impassable; entering it is forbidden.
	Trap
	// Dangerous is traversable but penalized. A cell is Dangerous if and
	// only if it is Empty and at least one 4-directional neighbor is a Trap.
	Dangerous
)

const (
	// MinGridSize is the smallest meaningful board: anything below leaves
	// start == goal or no room for traps.
	MinGridSize = 2

	// DefaultGridSize is the board size used when a caller supplies none.
	DefaultGridSize = 10

	// DefaultTrapCount is the trap budget used when a caller supplies none.
	DefaultTrapCount = 15

	// PruneHazardThreshold is the number of Trap/Dangerous neighbors at
	// which IsSafe rejects a cell. Fixed: downstream behavior depends on
	// the boundary sitting at exactly 3.
	PruneHazardThreshold = 3

	// trapAttemptFactor bounds PlaceTraps to factor×count placement
	// attempts, making the fill best-effort rather than open-ended.
	trapAttemptFactor = 10

	// CostEmpty is the movement cost of entering an Empty cell.
	CostEmpty = 1

	// CostDangerous is the movement cost of entering a Dangerous cell.
	CostDangerous = 2
)

// neighborOffsets is the fixed 4-directional adjacency order:
// down, right, up, left. Traversal order is part of the contract so that
// searches over equal-cost grids stay reproducible.
var neighborOffsets = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// Coord is a cell coordinate. X indexes columns, Y indexes rows.
type Coord struct {
	X, Y int
}

// MarshalJSON encodes a Coord as a two-element [x, y] array, the wire form
// used by the HTTP adapter for paths, visited sets, start, and goal.
func (c Coord) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("[%d,%d]", c.X, c.Y)), nil
}

// UnmarshalJSON decodes a two-element [x, y] array into a Coord.
func (c *Coord) UnmarshalJSON(data []byte) error {
	var pair [2]int
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("grid: coordinate must be a [x,y] pair: %w", err)
	}
	c.X, c.Y = pair[0], pair[1]

	return nil
}

// Option configures grid construction via functional arguments.
type Option func(*options)

// options holds resolved construction parameters.
type options struct {
	rng *rand.Rand
}

// WithRand provides an explicit RNG for trap placement.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		if r == nil {
			panic("grid: WithRand(nil)")
		}
		o.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Two grids built with the same size, seed, and trap count are identical.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// newDefaultRand returns the time-seeded RNG used when no WithSeed/WithRand
// option is supplied.
func newDefaultRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
