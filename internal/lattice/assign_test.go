package lattice

import (
	"testing"

	"go.viam.com/test"

	"goban-parser/pkg/geometry"
)

// syntheticGrid places a stone on every grid point k, j in [-extent, extent]
// around (cx, cy).
func syntheticGrid(cx, cy, spacing, extent int) []geometry.PointInt {
	var centers []geometry.PointInt
	for j := -extent; j <= extent; j++ {
		for k := -extent; k <= extent; k++ {
			centers = append(centers, geometry.NewPointInt(cx+k*spacing, cy+j*spacing))
		}
	}
	return centers
}

func TestAssignSnapsExactGrid(t *testing.T) {
	centers := syntheticGrid(300, 300, 40, 5)

	board := Assign(centers, 40, DefaultParams())

	test.That(t, len(board), test.ShouldEqual, 121)
	test.That(t, board[Coord{}].Center, test.ShouldResemble, geometry.NewPointInt(300, 300))
	test.That(t, board[Coord{Col: 5, Row: -5}].Center, test.ShouldResemble, geometry.NewPointInt(500, 100))
	for _, pl := range board {
		test.That(t, pl.FitError, test.ShouldBeLessThan, 0.01)
	}
}

func TestAssignRejectsFarStone(t *testing.T) {
	centers := syntheticGrid(300, 300, 40, 5)
	centers = append(centers, geometry.NewPointInt(300+21*40, 300))

	board := Assign(centers, 40, DefaultParams())

	test.That(t, len(board), test.ShouldEqual, 121)
	_, present := board[Coord{Col: 21}]
	test.That(t, present, test.ShouldBeFalse)
}

func TestAssignFitErrorThreshold(t *testing.T) {
	// half a grid unit off on both axes is the worst possible fit
	board := Assign([]geometry.PointInt{{X: 100, Y: 100}, {X: 115, Y: 115}}, 30, DefaultParams())
	test.That(t, len(board), test.ShouldEqual, 1)

	// a tenth of a unit off is comfortably inside the gate
	board = Assign([]geometry.PointInt{{X: 100, Y: 100}, {X: 130, Y: 103}}, 30, DefaultParams())
	test.That(t, len(board), test.ShouldEqual, 2)
	test.That(t, board[Coord{Col: 1}].Center, test.ShouldResemble, geometry.NewPointInt(130, 103))
	test.That(t, board[Coord{Col: 1}].FitError, test.ShouldAlmostEqual, 0.1, 1e-9)
}

func TestAssignCollisionLowerErrorWins(t *testing.T) {
	// (127,100) claims (1,0) first; the exact stone at (130,100)
	// arrives later with a lower fit error and takes the slot
	centers := []geometry.PointInt{
		{X: 100, Y: 100},
		{X: 70, Y: 100},
		{X: 127, Y: 100},
		{X: 130, Y: 100},
		{X: 100, Y: 70},
		{X: 100, Y: 130},
	}

	board := Assign(centers, 30, DefaultParams())

	test.That(t, len(board), test.ShouldEqual, 5)
	test.That(t, board[Coord{Col: 1}].Center, test.ShouldResemble, geometry.NewPointInt(130, 100))
	test.That(t, board[Coord{Col: 1}].FitError, test.ShouldEqual, 0.0)
}

func TestAssignAxisAlignedSigns(t *testing.T) {
	centers := []geometry.PointInt{
		{X: 100, Y: 100},
		{X: 100, Y: 130},
		{X: 130, Y: 100},
	}

	board := Assign(centers, 30, DefaultParams())

	test.That(t, len(board), test.ShouldEqual, 3)
	test.That(t, board[Coord{Row: 1}].Center, test.ShouldResemble, geometry.NewPointInt(100, 130))
	test.That(t, board[Coord{Col: 1}].Center, test.ShouldResemble, geometry.NewPointInt(130, 100))
}

func TestAssignEmpty(t *testing.T) {
	test.That(t, Assign(nil, 30, DefaultParams()), test.ShouldBeNil)
}
