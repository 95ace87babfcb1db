// Package gobanparser reconstructs the grid of black stones from a
// photograph of a Go board. Given a decoded raster it returns a
// BoardMap: the set of occupied grid intersections, as signed
// coordinates relative to a reference stone, each mapped to the pixel
// center of the stone sitting on it.
package gobanparser

import (
	"errors"
	"fmt"
	"image"

	"goban-parser/internal/lattice"
	"goban-parser/internal/stone"
	"goban-parser/pkg/geometry"
)

// ErrNoBoard is returned when no stone grid can be recovered from the
// image. Every failure mode of the pipeline wraps it; test with
// errors.Is.
var ErrNoBoard = errors.New("no board detected")

// LatticePoint is a grid intersection relative to the reference stone,
// which sits at (0,0). Magnitudes never exceed the lattice radius.
type LatticePoint struct {
	Col int8 `json:"col"`
	Row int8 `json:"row"`
}

// BoardMap maps each occupied grid intersection to the pixel center of
// the black stone occupying it.
type BoardMap map[LatticePoint]geometry.PointInt

// DebugSink receives intermediate pipeline artifacts for offline
// visualization. Implementations must not alter pipeline outcomes.
type DebugSink interface {
	// Mask receives the classifier output before blob extraction
	// consumes it.
	Mask(mask image.Image)

	// Stones receives the size-filtered stone bounding boxes.
	Stones(width, height int, stones []geometry.RectInt)

	// Board receives the estimated grid spacing and the final map.
	Board(spacing float64, board BoardMap)
}

// ParseImage runs the detection pipeline with default parameters.
func ParseImage(img image.Image) (BoardMap, error) {
	return ParseImageWithParams(img, DefaultParams())
}

// ParseImageWithParams reconstructs the black-stone grid:
//
//  1. Classify every pixel as stone material or background.
//  2. Flood-fill the mask into blobs and drop noise-sized ones.
//  3. Keep blobs sized like the median blob; their count must reach
//     MinStones and the median size seeds the spacing estimate.
//  4. Sample axis-aligned distances between stone centers.
//  5. Refine the samples into the grid spacing.
//  6. Snap centers onto integer grid coordinates around the stone
//     nearest the centroid.
//
// Any stage that cannot continue returns an error wrapping ErrNoBoard.
func ParseImageWithParams(img image.Image, p Params) (BoardMap, error) {
	bounds := img.Bounds()

	stoneParams := stone.Params{
		BlackThreshold: p.BlackThreshold,
		GraynessLimit:  p.GraynessLimit,
		MinDim:         p.MinStoneDim,
	}

	mask := stone.BuildMask(img, stoneParams)
	if p.Debug != nil {
		p.Debug.Mask(mask.Image())
	}

	blobs := stone.ExtractBlobs(mask, stoneParams)
	if p.Verbose {
		fmt.Printf("  blob extraction: %d candidates\n", len(blobs))
	}
	if len(blobs) == 0 {
		return nil, fmt.Errorf("no candidate blobs: %w", ErrNoBoard)
	}

	stoneSize, stones := stone.FilterBySize(blobs)
	if p.Verbose {
		fmt.Printf("  size filter: %d stones, stone size %.1f px\n", len(stones), stoneSize)
	}
	if len(stones) < p.MinStones {
		return nil, fmt.Errorf("%d stones after size filter, need %d: %w",
			len(stones), p.MinStones, ErrNoBoard)
	}
	if stoneSize <= 0 {
		return nil, fmt.Errorf("degenerate stone size %.1f: %w", stoneSize, ErrNoBoard)
	}
	if p.Debug != nil {
		p.Debug.Stones(bounds.Dx(), bounds.Dy(), stones)
	}

	centers := make([]geometry.PointInt, len(stones))
	for i, s := range stones {
		centers[i] = s.Center()
	}

	samples := lattice.SampleDistances(centers, stoneSize)
	if p.Verbose {
		fmt.Printf("  distance sampler: %d samples\n", len(samples))
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("all distance samples suppressed: %w", ErrNoBoard)
	}

	latticeParams := lattice.Params{
		MaxRadius:     p.MaxLatticeRadius,
		MaxFitError:   p.MaxFitError,
		MaxIterations: p.MaxIterations,
	}

	spacing := lattice.EstimateSpacing(samples, stoneSize, latticeParams)
	if p.Verbose {
		fmt.Printf("  spacing estimator: %.2f px per grid unit\n", spacing)
	}

	placements := lattice.Assign(centers, spacing, latticeParams)
	if len(placements) < p.MinStones {
		return nil, fmt.Errorf("%d stones on the grid, need %d: %w",
			len(placements), p.MinStones, ErrNoBoard)
	}

	board := make(BoardMap, len(placements))
	for coord, pl := range placements {
		board[LatticePoint{Col: coord.Col, Row: coord.Row}] = pl.Center
	}
	if p.Verbose {
		fmt.Printf("  grid fit: %d stones placed\n", len(board))
	}
	if p.Debug != nil {
		p.Debug.Board(spacing, board)
	}

	return board, nil
}
