// Package lattice fits a grid to a set of stone centers: it samples
// axis-aligned inter-stone distances, refines them into a single
// spacing estimate, and snaps each stone onto integer grid coordinates
// around a reference stone.
package lattice

// Params controls grid fitting.
type Params struct {
	// MaxRadius bounds the grid coordinate magnitude; no legal board
	// puts a stone farther than this many lines from the reference.
	MaxRadius float64

	// MaxFitError is the exclusive upper bound on a stone's fit error
	// for it to be snapped onto the grid.
	MaxFitError float64

	// MaxIterations caps the spacing refinement loop.
	MaxIterations int
}

// DefaultParams returns grid-fitting parameters covering all standard
// board sizes up to 19×19 with margin.
func DefaultParams() Params {
	return Params{
		MaxRadius:     20,
		MaxFitError:   0.5,
		MaxIterations: 64,
	}
}
