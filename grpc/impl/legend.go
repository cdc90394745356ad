package impl

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	fonts "github.com/protein-alphabet/proteintext/grpc/impl/font"
	"github.com/protein-alphabet/proteintext/pkg/theme"
)

const (
	legendPadding     = 24
	legendSwatchSize  = 64
	legendTitleSize   = 28
	legendBodySize    = 18
	legendLineSpacing = 1.4
)

// The alphabet the glyph assets come from.
// Ref: https://www.nature.com/articles/nsmb.3011
const sourceReference = "Howarth, M. (2015). Say it with proteins: an alphabet of crystal structures. Nat. Struct. Mol. Biol. 22(5), 349."

// Mid gray stays readable on both light and dark backgrounds, the page itself is transparent.
var legendTextColor = color.NRGBA{R: 128, G: 128, B: 128, A: 255}

type legendLine struct {
	text string
	face font.Face
}

// Returns the page with a band underneath holding a swatch of the theme, its
// name and description and the source reference of the alphabet.
func drawLegend(page image.Image, t theme.Theme, legendFonts *fonts.FontsByWeight) image.Image {
	lines := []legendLine{
		{text: t.Name, face: truetype.NewFace(legendFonts.Bold, &truetype.Options{Size: legendTitleSize})},
		{text: t.Description, face: truetype.NewFace(legendFonts.Regular, &truetype.Options{Size: legendBodySize})},
		{text: sourceReference, face: truetype.NewFace(legendFonts.Regular, &truetype.Options{Size: legendBodySize})},
	}

	measuringContext := gg.NewContext(1, 1)
	textWidth, textHeight := 0.0, 0.0
	for _, line := range lines {
		measuringContext.SetFontFace(line.face)
		width, height := measuringContext.MeasureString(line.text)
		textWidth = math.Max(textWidth, width)
		textHeight += height * legendLineSpacing
	}

	pageSize := page.Bounds().Size()
	width := max(pageSize.X, legendPadding*3+legendSwatchSize+int(math.Ceil(textWidth)))
	bandHeight := legendPadding*2 + max(legendSwatchSize, int(math.Ceil(textHeight)))
	top := pageSize.Y + legendPadding

	drawingContext := gg.NewContext(width, pageSize.Y+bandHeight)
	drawingContext.DrawImage(page, (width-pageSize.X)/2, 0)
	drawSwatch(drawingContext, t, legendPadding, float64(top))

	x := float64(legendPadding*2 + legendSwatchSize)
	y := float64(top)
	for _, line := range lines {
		drawingContext.SetFontFace(line.face)
		drawingContext.SetColor(legendTextColor)
		_, height := drawingContext.MeasureString(line.text)
		drawingContext.DrawStringAnchored(
			line.text,
			x, /* =x */
			y, /* =y */
			0, /* =ax (align left in x) */
			1, /* =ay (hang the text below y) */
		)
		y += height * legendLineSpacing
	}
	return drawingContext.Image()
}

func drawSwatch(drawingContext *gg.Context, t theme.Theme, x float64, y float64) {
	drawingContext.DrawRectangle(x, y, legendSwatchSize, legendSwatchSize)
	switch t.Kind {
	case theme.KindSolid:
		drawingContext.SetColor(t.Color.NRGBA())
		drawingContext.Fill()
	case theme.KindGradient:
		gradient := gg.NewLinearGradient(x, y, x, y+legendSwatchSize)
		gradient.AddColorStop(0, t.Low.NRGBA())
		gradient.AddColorStop(1, t.High.NRGBA())
		drawingContext.SetFillStyle(gradient)
		drawingContext.Fill()
	default:
		// Original colors vary per glyph, so only the outline is drawn.
		drawingContext.SetColor(legendTextColor)
		drawingContext.SetLineWidth(2)
		drawingContext.Stroke()
	}
}
