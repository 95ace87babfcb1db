// Package imageio decodes board photographs from disk.
package imageio

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	// Register decoders for the formats cameras and scanners produce.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// Load decodes an image file. Phone photographs often carry an EXIF
// orientation instead of rotated pixels; decoding honors it so the
// raster matches what the photographer saw.
func Load(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return img, nil
}
