package stone

import (
	"image"
	"image/color"
)

// Mask is a width×height boolean grid backed by a flat slice. Access
// through At is bounds-safe: any out-of-range coordinate reads false,
// which lets the flood fill treat the image border as background.
type Mask struct {
	Width  int
	Height int
	cells  []bool
}

// NewMask creates an all-false mask.
func NewMask(width, height int) *Mask {
	return &Mask{
		Width:  width,
		Height: height,
		cells:  make([]bool, width*height),
	}
}

// At returns the cell value, or false if (x, y) is out of range.
func (m *Mask) At(x, y int) bool {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return false
	}
	return m.cells[y*m.Width+x]
}

// Set marks a cell true. (x, y) must be in range.
func (m *Mask) Set(x, y int) {
	m.cells[y*m.Width+x] = true
}

// Clear marks a cell false. (x, y) must be in range.
func (m *Mask) Clear(x, y int) {
	m.cells[y*m.Width+x] = false
}

// Count returns the number of true cells.
func (m *Mask) Count() int {
	n := 0
	for _, c := range m.cells {
		if c {
			n++
		}
	}
	return n
}

// Image renders the mask as a grayscale image, white where true.
func (m *Mask) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, m.Width, m.Height))
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.cells[y*m.Width+x] {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return img
}
