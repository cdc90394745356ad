package compose

import (
	"image"

	"github.com/disintegration/imaging"
)

// Scale resizes img to exactly height pixels, keeping its aspect ratio.
// The width is truncated and never drops below one pixel.
func Scale(img image.Image, height int) *image.NRGBA {
	bounds := img.Bounds()
	ratio := float64(height) / float64(bounds.Dy())
	width := max(1, int(float64(bounds.Dx())*ratio))
	return imaging.Resize(img, width, height, imaging.Lanczos)
}
