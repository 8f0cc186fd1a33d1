// Package grid_test contains unit tests for the hazard-grid model. They
// validate construction errors, trap placement invariants, hazard
// derivation, adjacency order, the safety predicate, and entry costs.
package grid_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/trapgrid/trapgrid/grid"
)

//----------------------------------------------------------------------------//
// Construction and validation
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects sizes below the minimum.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		size int
		err  error
	}{
		{"Negative", -3, grid.ErrInvalidSize},
		{"Zero", 0, grid.ErrInvalidSize},
		{"One", 1, grid.ErrInvalidSize},
		{"Minimum", 2, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.size)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%d) error = %v; want %v", tc.size, err, tc.err)
			}
		})
	}
}

// TestFromCells_Errors verifies that FromCells rejects malformed matrices.
func TestFromCells_Errors(t *testing.T) {
	cases := []struct {
		name  string
		cells [][]int
	}{
		{"Nil", nil},
		{"Empty", [][]int{}},
		{"NonSquareWide", [][]int{{0, 0, 0}, {0, 0, 0}}},
		{"NonSquareRagged", [][]int{{0, 0}, {0}}},
		{"UnknownCode", [][]int{{0, 3}, {0, 0}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.FromCells(tc.cells)
			if !errors.Is(err, grid.ErrInvalidGrid) {
				t.Errorf("FromCells(%v) error = %v; want ErrInvalidGrid", tc.cells, err)
			}
		})
	}
}

// TestFromCells_Degenerate verifies the 1×1 override path: a single-cell
// matrix is valid input with start == goal.
func TestFromCells_Degenerate(t *testing.T) {
	g, err := grid.FromCells([][]int{{0}})
	require.NoError(t, err)
	require.Equal(t, g.Start(), g.Goal())
	require.Equal(t, 1, g.Size())
}

// TestNew_FixedEndpoints verifies start and goal placement.
func TestNew_FixedEndpoints(t *testing.T) {
	g, err := grid.New(7)
	require.NoError(t, err)
	require.Equal(t, grid.Coord{X: 0, Y: 0}, g.Start())
	require.Equal(t, grid.Coord{X: 6, Y: 6}, g.Goal())
}

//----------------------------------------------------------------------------//
// Trap placement and hazard derivation
//----------------------------------------------------------------------------//

// TestPlaceTraps_Invariants checks, for a deterministic seed, that traps
// never land on start or goal and that the Dangerous classification matches
// its definition exactly: Dangerous ⇔ Empty next to ≥1 Trap.
func TestPlaceTraps_Invariants(t *testing.T) {
	g, err := grid.New(8, grid.WithSeed(42))
	require.NoError(t, err)
	g.PlaceTraps(12)

	require.NotEqual(t, grid.Trap, g.State(g.Start().X, g.Start().Y), "start must never be a trap")
	require.NotEqual(t, grid.Trap, g.State(g.Goal().X, g.Goal().Y), "goal must never be a trap")

	for y := 0; y < g.Size(); y++ {
		for x := 0; x < g.Size(); x++ {
			adjacentTrap := false
			for _, n := range g.Neighbors(x, y) {
				if g.State(n.X, n.Y) == grid.Trap {
					adjacentTrap = true
					break
				}
			}
			switch g.State(x, y) {
			case grid.Dangerous:
				require.True(t, adjacentTrap, "Dangerous cell (%d,%d) has no trap neighbor", x, y)
			case grid.Empty:
				require.False(t, adjacentTrap, "Empty cell (%d,%d) borders a trap but was not reclassified", x, y)
			}
		}
	}
}

// TestPlaceTraps_Deterministic verifies that equal seeds yield equal boards.
func TestPlaceTraps_Deterministic(t *testing.T) {
	a, err := grid.New(10, grid.WithSeed(7))
	require.NoError(t, err)
	a.PlaceTraps(15)

	b, err := grid.New(10, grid.WithSeed(7))
	require.NoError(t, err)
	b.PlaceTraps(15)

	require.Equal(t, a.Cells(), b.Cells())
}

// TestPlaceTraps_BestEffort verifies the bounded-attempt fill: a 2×2 board
// has only two placeable cells, so a request for ten traps terminates with
// at most two placed rather than looping forever.
func TestPlaceTraps_BestEffort(t *testing.T) {
	g, err := grid.New(2, grid.WithSeed(1))
	require.NoError(t, err)
	g.PlaceTraps(10)

	traps := 0
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if g.State(x, y) == grid.Trap {
				traps++
			}
		}
	}
	require.LessOrEqual(t, traps, 2)
	require.NotEqual(t, grid.Trap, g.State(0, 0))
	require.NotEqual(t, grid.Trap, g.State(1, 1))
}

// TestRoundTrip verifies that exporting a classified board and importing it
// again reproduces the identical grid: the matrix alone carries the full
// hazard interpretation.
func TestRoundTrip(t *testing.T) {
	g, err := grid.New(10, grid.WithSeed(99))
	require.NoError(t, err)
	g.PlaceTraps(15)

	clone, err := grid.FromCells(g.Cells())
	require.NoError(t, err)
	require.Equal(t, g.Cells(), clone.Cells())
	require.Equal(t, g.Start(), clone.Start())
	require.Equal(t, g.Goal(), clone.Goal())
}

//----------------------------------------------------------------------------//
// Adjacency, safety, and cost queries
//----------------------------------------------------------------------------//

// TestNeighbors_OrderAndBounds verifies the fixed down-right-up-left order
// and boundary clipping.
func TestNeighbors_OrderAndBounds(t *testing.T) {
	g, err := grid.New(3)
	require.NoError(t, err)

	cases := []struct {
		name string
		x, y int
		want []grid.Coord
	}{
		{"Center", 1, 1, []grid.Coord{{X: 1, Y: 2}, {X: 2, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 1}}},
		{"TopLeftCorner", 0, 0, []grid.Coord{{X: 0, Y: 1}, {X: 1, Y: 0}}},
		{"BottomRightCorner", 2, 2, []grid.Coord{{X: 2, Y: 1}, {X: 1, Y: 2}}},
		{"LeftEdge", 0, 1, []grid.Coord{{X: 0, Y: 2}, {X: 1, Y: 1}, {X: 0, Y: 0}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, g.Neighbors(tc.x, tc.y))
		})
	}
}

// TestIsSafe covers both pruning rules: traps are never safe, and a cell
// hemmed in by three or more Trap/Dangerous neighbors is rejected, while two
// hazardous neighbors remain acceptable.
func TestIsSafe(t *testing.T) {
	// Layout (x across, y down):
	//   .  !  T
	//   !  x  !
	//   .  !  T
	// All four cardinal neighbors of the center are hazardous.
	g, err := grid.FromCells([][]int{
		{0, 2, 1},
		{2, 0, 2},
		{0, 2, 1},
	})
	require.NoError(t, err)

	require.False(t, g.IsSafe(2, 0), "trap cell must never be safe")
	require.False(t, g.IsSafe(1, 1), "four hazardous neighbors exceed the threshold")
	require.True(t, g.IsSafe(0, 0), "corner with two hazardous neighbors stays safe")

	// Exactly at the boundary: three hazardous neighbors reject the cell.
	b, err := grid.FromCells([][]int{
		{0, 2, 0},
		{2, 0, 2},
		{0, 0, 0},
	})
	require.NoError(t, err)
	require.False(t, b.IsSafe(1, 1), "exactly three hazardous neighbors must prune")

	// One below the boundary stays safe.
	c, err := grid.FromCells([][]int{
		{0, 2, 0},
		{2, 0, 0},
		{0, 0, 0},
	})
	require.NoError(t, err)
	require.True(t, c.IsSafe(1, 1), "two hazardous neighbors must not prune")
}

// TestIsSafe_Idempotent verifies repeated evaluation on a static grid agrees.
func TestIsSafe_Idempotent(t *testing.T) {
	g, err := grid.New(6, grid.WithSeed(3))
	require.NoError(t, err)
	g.PlaceTraps(8)

	for y := 0; y < g.Size(); y++ {
		for x := 0; x < g.Size(); x++ {
			require.Equal(t, g.IsSafe(x, y), g.IsSafe(x, y))
		}
	}
}

// TestCostOfEntering verifies the two-tier cost model.
func TestCostOfEntering(t *testing.T) {
	g, err := grid.FromCells([][]int{
		{0, 2},
		{2, 0},
	})
	require.NoError(t, err)

	require.Equal(t, grid.CostEmpty, g.CostOfEntering(0, 0))
	require.Equal(t, grid.CostDangerous, g.CostOfEntering(1, 0))
	require.Equal(t, grid.CostDangerous, g.CostOfEntering(0, 1))
	require.Equal(t, grid.CostEmpty, g.CostOfEntering(1, 1))
}

//----------------------------------------------------------------------------//
// Wire encoding
//----------------------------------------------------------------------------//

// TestCoord_JSON verifies the [x,y] pair encoding both ways.
func TestCoord_JSON(t *testing.T) {
	raw, err := json.Marshal(grid.Coord{X: 3, Y: 7})
	require.NoError(t, err)
	require.JSONEq(t, `[3,7]`, string(raw))

	var c grid.Coord
	require.NoError(t, json.Unmarshal([]byte(`[5,1]`), &c))
	require.Equal(t, grid.Coord{X: 5, Y: 1}, c)

	require.Error(t, json.Unmarshal([]byte(`{"x":1}`), &c))
}

// TestCells_DeepCopy verifies the export cannot be used to mutate the grid.
func TestCells_DeepCopy(t *testing.T) {
	g, err := grid.New(3, grid.WithSeed(5))
	require.NoError(t, err)
	g.PlaceTraps(2)

	out := g.Cells()
	out[0][0] = int(grid.Trap)
	require.NotEqual(t, grid.Trap, g.State(0, 0), "mutating the export must not touch the grid")
}
