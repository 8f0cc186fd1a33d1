// Package grid provides the hazard-grid model: an N×N board of Empty, Trap,
// and Dangerous cells with adjacency, safety, and movement-cost queries.
//
// Cells are addressed as (x, y) with x indexing columns and y indexing rows;
// the backing matrix is row-major, cells[y][x]. The start is always (0, 0)
// and the goal (N−1, N−1).
package grid

import (
	"fmt"
	"math/rand"
)

// Grid is a square board of classified cells. It is immutable once its
// classification is final: searches read it concurrently without locks.
type Grid struct {
	size  int
	cells [][]CellState
	start Coord
	goal  Coord
	rng   *rand.Rand
}

// New builds an N×N grid with every cell Empty.
// Returns ErrInvalidSize if size < MinGridSize; the grid gains traps only
// through a subsequent PlaceTraps call.
// Complexity: O(N²) time and memory.
func New(size int, opts ...Option) (*Grid, error) {
	if size < MinGridSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}

	// Resolve options; default RNG is time-seeded via newDefaultRand.
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = newDefaultRand()
	}

	cells := make([][]CellState, size)
	for y := 0; y < size; y++ {
		cells[y] = make([]CellState, size)
	}

	return &Grid{
		size:  size,
		cells: cells,
		start: Coord{0, 0},
		goal:  Coord{size - 1, size - 1},
		rng:   o.rng,
	}, nil
}

// FromCells builds a grid from an externally supplied cell matrix using the
// wire encoding (0 = Empty, 1 = Trap, 2 = Dangerous). The matrix is taken at
// face value (it alone determines the hazard interpretation) and is deep
// copied so the caller cannot mutate the grid afterwards.
// Returns ErrInvalidGrid if the matrix is empty, non-square, or holds an
// unknown code. The size is inferred from the matrix dimension; a 1×1 matrix
// is accepted (start == goal), unlike New, which enforces MinGridSize.
// Complexity: O(N²) time and memory.
func FromCells(values [][]int) (*Grid, error) {
	n := len(values)
	if n == 0 {
		return nil, ErrInvalidGrid
	}
	cells := make([][]CellState, n)
	for y, row := range values {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidGrid, y, len(row), n)
		}
		cells[y] = make([]CellState, n)
		for x, v := range row {
			state := CellState(v)
			if state != Empty && state != Trap && state != Dangerous {
				return nil, fmt.Errorf("%w: unknown cell code %d at (%d,%d)", ErrInvalidGrid, v, x, y)
			}
			cells[y][x] = state
		}
	}

	return &Grid{
		size:  n,
		cells: cells,
		start: Coord{0, 0},
		goal:  Coord{n - 1, n - 1},
	}, nil
}

// Size returns the board dimension N.
func (g *Grid) Size() int { return g.size }

// Start returns the fixed start coordinate (0, 0).
func (g *Grid) Start() Coord { return g.start }

// Goal returns the fixed goal coordinate (N−1, N−1).
func (g *Grid) Goal() Coord { return g.goal }

// State returns the classification of cell (x, y).
// The caller is responsible for bounds; use InBounds when unsure.
func (g *Grid) State(x, y int) CellState { return g.cells[y][x] }

// InBounds reports whether (x, y) lies within the board.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.size && y >= 0 && y < g.size
}

// PlaceTraps resets the board to Empty, scatters up to count traps at
// uniformly random coordinates, then derives the Dangerous classification
// in a single pass over the final trap positions.
//
// Placement skips the start cell, the goal cell, and cells already trapped.
// The fill is best-effort: after trapAttemptFactor×count attempts the loop
// stops, and the board may hold fewer traps than requested; callers must
// not assume exactly count traps are present. A count ≤ 0 places none.
//
// After PlaceTraps returns, the grid's classification is final and the grid
// must be treated as read-only.
// Complexity: O(count·attempts + N²) time, O(1) extra memory.
func (g *Grid) PlaceTraps(count int) {
	// Grids imported via FromCells carry no RNG; lazily attach the default.
	if g.rng == nil {
		g.rng = newDefaultRand()
	}

	// 1) Reset: classification depends only on final trap positions, so a
	//    repeated call re-derives the board from scratch.
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			g.cells[y][x] = Empty
		}
	}

	// 2) Bounded random fill. Each attempt draws one candidate coordinate;
	//    invalid candidates consume an attempt (best-effort non-guarantee).
	placed, attempts := 0, 0
	maxAttempts := count * trapAttemptFactor
	var x, y int
	for placed < count && attempts < maxAttempts {
		x = g.rng.Intn(g.size)
		y = g.rng.Intn(g.size)
		attempts++

		c := Coord{x, y}
		if c == g.start || c == g.goal || g.cells[y][x] == Trap {
			continue
		}
		g.cells[y][x] = Trap
		placed++
	}

	// 3) Derive danger zones once all traps are down.
	g.classify()
}

// classify marks every Empty cell adjacent to a Trap as Dangerous.
// The derivation is idempotent: it inspects only Trap positions and
// reclassifies only Empty cells, so a second run changes nothing.
// Complexity: O(N²) time.
func (g *Grid) classify() {
	var nx, ny int
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			if g.cells[y][x] != Trap {
				continue
			}
			for _, d := range neighborOffsets {
				nx, ny = x+d[0], y+d[1]
				if g.InBounds(nx, ny) && g.cells[ny][nx] == Empty {
					g.cells[ny][nx] = Dangerous
				}
			}
		}
	}
}

// Neighbors returns the in-bounds cells one cardinal step from (x, y),
// in the fixed order down, right, up, left. No diagonals.
// Complexity: O(1); at most four coordinates.
func (g *Grid) Neighbors(x, y int) []Coord {
	out := make([]Coord, 0, len(neighborOffsets))
	var nx, ny int
	for _, d := range neighborOffsets {
		nx, ny = x+d[0], y+d[1]
		if g.InBounds(nx, ny) {
			out = append(out, Coord{nx, ny})
		}
	}

	return out
}

// IsSafe is the pruning predicate, evaluated on the target cell of a
// candidate move:
//
//  1. a Trap is never safe;
//  2. a cell with PruneHazardThreshold or more Trap/Dangerous neighbors is
//     rejected: it sits in a high-risk pocket not worth exploring.
//
// The predicate reads only final classification, so repeated evaluation on
// the same grid and coordinate always agrees.
// Complexity: O(1).
func (g *Grid) IsSafe(x, y int) bool {
	if g.cells[y][x] == Trap {
		return false
	}

	hazards := 0
	for _, n := range g.Neighbors(x, y) {
		if s := g.cells[n.Y][n.X]; s == Trap || s == Dangerous {
			hazards++
		}
	}

	return hazards < PruneHazardThreshold
}

// CostOfEntering prices a move into (x, y): CostDangerous for a Dangerous
// cell, CostEmpty otherwise. Entering a Trap is forbidden upstream by
// IsSafe, so the cost of a Trap cell is never queried by the search.
// Complexity: O(1).
func (g *Grid) CostOfEntering(x, y int) int {
	if g.cells[y][x] == Dangerous {
		return CostDangerous
	}

	return CostEmpty
}

// Cells exports the board in the wire encoding (0/1/2) as a deep copy;
// feeding the result back through FromCells reproduces the identical grid.
// Complexity: O(N²) time and memory.
func (g *Grid) Cells() [][]int {
	out := make([][]int, g.size)
	for y := 0; y < g.size; y++ {
		out[y] = make([]int, g.size)
		for x := 0; x < g.size; x++ {
			out[y][x] = int(g.cells[y][x])
		}
	}

	return out
}
