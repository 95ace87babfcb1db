// Package stone segments candidate black stones out of a board
// photograph: a per-pixel darkness classifier, a connected-component
// pass over the resulting mask, and a median-based size filter.
package stone

import (
	"image"
)

// IsStonePixel reports whether an RGB pixel looks like black stone
// material: dark and achromatic. Dark but saturated pixels (wood grain,
// shadowed lacquer) fail the grayness clamp.
func IsStonePixel(r, g, b uint8, p Params) bool {
	if r >= p.BlackThreshold {
		return false
	}
	lim := int(p.GraynessLimit)
	return absDiff(r, g) <= lim && absDiff(r, b) <= lim && absDiff(g, b) <= lim
}

func absDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}

// BuildMask classifies every pixel of img into a boolean grid. The grid
// is zero-based regardless of the image's bounds origin.
func BuildMask(img image.Image, p Params) *Mask {
	bounds := img.Bounds()
	mask := NewMask(bounds.Dx(), bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if IsStonePixel(uint8(r>>8), uint8(g>>8), uint8(b>>8), p) {
				mask.Set(x-bounds.Min.X, y-bounds.Min.Y)
			}
		}
	}
	return mask
}
