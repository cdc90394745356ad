package theme

import (
	"image"
	"image/color"
)

// Apply recolors img with the theme. The alpha channel of every pixel is kept
// as is, so the silhouette of the glyph does not change. The pass-through theme
// returns img itself; other themes return a new bitmap.
func Apply(img *image.NRGBA, t Theme) *image.NRGBA {
	switch t.Kind {
	case KindSolid:
		return tint(img, func(int) RGB {
			return t.Color
		})
	case KindGradient:
		height := img.Bounds().Dy()
		return tint(img, func(y int) RGB {
			return Lerp(t.Low, t.High, float64(y)/float64(max(1, height-1)))
		})
	default:
		return img
	}
}

// Lerp interpolates each channel between low (t = 0) and high (t = 1),
// truncating towards zero.
func Lerp(low RGB, high RGB, t float64) RGB {
	return RGB{
		R: lerp(low.R, high.R, t),
		G: lerp(low.G, high.G, t),
		B: lerp(low.B, high.B, t),
	}
}

func lerp(low uint8, high uint8, t float64) uint8 {
	// The explicit conversions keep the compiler from fusing the multiply-adds,
	// which would change the truncated result on some architectures.
	return uint8(float64(float64(low)*(1-t)) + float64(float64(high)*t))
}

// Paints every non-transparent pixel of row y with rowColor(y), relative to the
// top of the image, keeping its alpha.
func tint(img *image.NRGBA, rowColor func(y int) RGB) *image.NRGBA {
	bounds := img.Bounds()
	out := image.NewNRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		c := rowColor(y - bounds.Min.Y)
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			alpha := img.NRGBAAt(x, y).A
			if alpha == 0 {
				continue
			}
			out.SetNRGBA(x, y, color.NRGBA{R: c.R, G: c.G, B: c.B, A: alpha})
		}
	}
	return out
}
