package stone

import (
	"goban-parser/pkg/geometry"
)

// Acceptance window around the median blob dimensions, also used as the
// aspect-ratio gate during extraction. Endpoints are exclusive.
const (
	sizeWindowLo = 0.66
	sizeWindowHi = 1.5
)

// ExtractBlobs scans the mask in row-major order and returns the
// bounding box of every 8-connected component whose shape passes the
// noise gate. The mask is consumed: visited cells are cleared, so the
// mask is all-false afterwards.
//
// The fill uses an explicit work stack; recursion would overflow on a
// component the size of a board shadow.
func ExtractBlobs(m *Mask, p Params) []geometry.RectInt {
	var blobs []geometry.RectInt
	var stack []geometry.PointInt

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if !m.At(x, y) {
				continue
			}

			seed := geometry.NewPointInt(x, y)
			blob := geometry.NewRectInt(seed)
			m.Clear(x, y)
			stack = append(stack[:0], seed)

			for len(stack) > 0 {
				c := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				blob = blob.Extend(c)

				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						if dx == 0 && dy == 0 {
							continue
						}
						nx, ny := c.X+dx, c.Y+dy
						if m.At(nx, ny) {
							m.Clear(nx, ny)
							stack = append(stack, geometry.NewPointInt(nx, ny))
						}
					}
				}
			}

			if acceptShape(blob, p) {
				blobs = append(blobs, blob)
			}
		}
	}

	return blobs
}

// acceptShape discards blobs too small to be a stone and blobs whose
// aspect ratio is far from square (board edges, shadows, lettering).
func acceptShape(b geometry.RectInt, p Params) bool {
	w, h := b.Width(), b.Height()
	if w <= p.MinDim || h <= p.MinDim {
		return false
	}
	fw, fh := float64(w), float64(h)
	return sizeWindowLo*fh < fw && fw < sizeWindowHi*fh
}
