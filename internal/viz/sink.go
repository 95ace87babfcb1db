// Package viz writes annotated images of the pipeline's intermediate
// stages: the classifier mask, the accepted stone boxes, and the fitted
// grid. It is wired in through the parser's debug sink and never feeds
// back into detection.
package viz

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"github.com/lucasb-eyer/go-colorful"
	"gocv.io/x/gocv"

	gobanparser "goban-parser"
	"goban-parser/pkg/geometry"
)

// ImageSink renders each pipeline artifact as a PNG in a directory.
type ImageSink struct {
	dir    string
	width  int
	height int
}

// NewImageSink creates the output directory if needed.
func NewImageSink(dir string) (*ImageSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create debug dir: %w", err)
	}
	return &ImageSink{dir: dir}, nil
}

// Mask writes the classifier output as mask.png.
func (s *ImageSink) Mask(mask image.Image) {
	s.width = mask.Bounds().Dx()
	s.height = mask.Bounds().Dy()

	if gray, ok := mask.(*image.Gray); ok {
		mat, err := gocv.ImageGrayToMatGray(gray)
		if err != nil {
			fmt.Fprintf(os.Stderr, "viz: convert mask: %v\n", err)
			return
		}
		defer mat.Close()
		s.write("mask.png", mat)
		return
	}

	mat, err := gocv.ImageToMatRGB(mask)
	if err != nil {
		fmt.Fprintf(os.Stderr, "viz: convert mask: %v\n", err)
		return
	}
	defer mat.Close()
	s.write("mask.png", mat)
}

// Stones writes the size-filtered stone boxes as stones.png, one color
// per stone in extraction order.
func (s *ImageSink) Stones(width, height int, stones []geometry.RectInt) {
	s.width = width
	s.height = height

	mat := gocv.NewMatWithSize(height, width, gocv.MatTypeCV8UC3)
	defer mat.Close()

	for i, st := range stones {
		c := paletteColor(i, len(stones))
		box := image.Rect(st.TopLeft.X, st.TopLeft.Y, st.BottomRight.X+1, st.BottomRight.Y+1)
		gocv.Rectangle(&mat, box, c, 1)
		center := st.Center()
		gocv.Circle(&mat, image.Pt(center.X, center.Y), 2, c, -1)
	}

	s.write("stones.png", mat)
}

// Board writes the fitted grid as board.png: grid lines at the
// estimated spacing through the reference stone, plus a marker on every
// placed stone.
func (s *ImageSink) Board(spacing float64, board gobanparser.BoardMap) {
	if s.width == 0 || s.height == 0 {
		return
	}

	mat := gocv.NewMatWithSize(s.height, s.width, gocv.MatTypeCV8UC3)
	defer mat.Close()

	ref, ok := board[gobanparser.LatticePoint{}]
	if !ok {
		return
	}

	minCol, maxCol, minRow, maxRow := 0, 0, 0, 0
	for lp := range board {
		minCol = min(minCol, int(lp.Col))
		maxCol = max(maxCol, int(lp.Col))
		minRow = min(minRow, int(lp.Row))
		maxRow = max(maxRow, int(lp.Row))
	}

	gridColor := color.RGBA{R: 90, G: 90, B: 90, A: 255}
	for col := minCol; col <= maxCol; col++ {
		x := ref.X + int(math.Round(float64(col)*spacing))
		gocv.Line(&mat, image.Pt(x, 0), image.Pt(x, s.height-1), gridColor, 1)
	}
	for row := minRow; row <= maxRow; row++ {
		y := ref.Y + int(math.Round(float64(row)*spacing))
		gocv.Line(&mat, image.Pt(0, y), image.Pt(s.width-1, y), gridColor, 1)
	}

	cols := maxCol - minCol + 1
	for lp, center := range board {
		c := paletteColor(int(lp.Col)-minCol, cols)
		gocv.Circle(&mat, image.Pt(center.X, center.Y), 3, c, -1)
	}

	s.write("board.png", mat)
}

func (s *ImageSink) write(name string, mat gocv.Mat) {
	path := filepath.Join(s.dir, name)
	if ok := gocv.IMWrite(path, mat); !ok {
		fmt.Fprintf(os.Stderr, "viz: write %s failed\n", path)
	}
}

// paletteColor spreads n distinct hues around the HSV wheel.
func paletteColor(i, n int) color.RGBA {
	if n < 1 {
		n = 1
	}
	hue := float64(i%n) / float64(n) * 360.0
	r, g, b := colorful.Hsv(hue, 0.85, 0.95).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
