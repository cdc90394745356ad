// Package compose lays protein glyphs out into lines and stacks lines into a
// page.
//
// Composition is a pure function of the text and the Params: every call
// allocates its own bitmaps and a Composer may be shared between goroutines.
package compose

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"strings"

	"github.com/protein-alphabet/proteintext/pkg/glyph"
	"github.com/protein-alphabet/proteintext/pkg/theme"
	"github.com/protein-alphabet/proteintext/pkg/utils"
)

// ErrTooLarge is returned when a line or page would exceed MaxPagePixels.
var ErrTooLarge = errors.New("composed image too large")

type Composer struct {
	glyphs glyph.Store
}

func New(glyphs glyph.Store) *Composer {
	return &Composer{glyphs: glyphs}
}

// A glyph or a transparent spacer, placed left to right on the line.
type element struct {
	// Nil for spacers.
	image  *image.NRGBA
	width  int
	offset int
}

// A measured line, not drawn yet.
type layout struct {
	elements []element
	width    int
	height   int
}

// Scaled and recolored glyphs of one render. A nil entry marks a letter
// without a usable asset. Holds at most one entry per letter.
type glyphCache map[rune]*image.NRGBA

func (c *Composer) glyph(cache glyphCache, letter rune, p Params) *image.NRGBA {
	if img, ok := cache[letter]; ok {
		return img
	}
	var colored *image.NRGBA
	if img, ok := glyph.Load(c.glyphs, letter); ok {
		colored = theme.Apply(Scale(img, p.LetterHeight), p.Theme)
	}
	cache[letter] = colored
	return colored
}

// Returns nil when the text holds no glyph, even if it holds spaces.
func (c *Composer) layout(cache glyphCache, text string, p Params) *layout {
	elements := []element{}
	glyphCount := 0
	for _, char := range strings.ToUpper(text) {
		if char == ' ' {
			elements = append(elements, element{width: max(0, p.WordSpacing)})
			continue
		}

		colored := c.glyph(cache, char, p)
		if colored == nil {
			continue
		}
		elements = append(elements,
			element{
				image:  colored,
				width:  colored.Bounds().Dx(),
				offset: int(glyph.Shift(char) * float64(p.LetterHeight)),
			},
			element{width: max(0, p.LetterSpacing)},
		)
		glyphCount++
	}
	if glyphCount == 0 {
		return nil
	}

	return &layout{
		elements: elements,
		width: utils.Reduce(elements, func(width int, e element) int {
			return width + e.width
		}, 0),
		height: p.LetterHeight,
	}
}

func (l *layout) draw() *image.RGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, l.width, l.height))
	x := 0
	for _, e := range l.elements {
		if e.image != nil {
			bounds := e.image.Bounds()
			draw.Draw(canvas, image.Rect(x, e.offset, x+e.width, e.offset+bounds.Dy()), e.image, bounds.Min, draw.Over)
		}
		x += e.width
	}
	return canvas
}

func checkSize(width int, height int) error {
	if int64(width)*int64(height) > MaxPagePixels {
		return fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrTooLarge, width, height, MaxPagePixels)
	}
	return nil
}

// Line renders one line of text at p.LetterHeight. Spaces become word spacers,
// letters with an asset become glyphs followed by a letter spacer, everything
// else is skipped. Returns nil when the line holds no glyph at all, even if it
// holds spaces, and ErrTooLarge when the line would exceed MaxPagePixels.
func (c *Composer) Line(text string, p Params) (*image.RGBA, error) {
	if p.LetterHeight <= 0 {
		return nil, nil
	}
	l := c.layout(glyphCache{}, text, p)
	if l == nil {
		return nil, nil
	}
	if err := checkSize(l.width, l.height); err != nil {
		return nil, err
	}
	return l.draw(), nil
}

// Page wraps text, renders each line and stacks the lines top to bottom, each
// centered horizontally, LineGap pixels apart. Returns nil when no line has
// anything to show. The page is measured before anything is drawn, so an
// oversized page fails with ErrTooLarge without allocating it.
func (c *Composer) Page(text string, p Params) (*image.RGBA, error) {
	if p.LetterHeight <= 0 {
		return nil, nil
	}
	cache := glyphCache{}
	layouts := utils.Filter(utils.Map(Wrap(text, p.MaxCharsPerLine), func(line string) *layout {
		return c.layout(cache, line, p)
	}), func(l *layout) bool {
		return l != nil
	})
	if len(layouts) == 0 {
		return nil, nil
	}

	width := utils.Reduce(layouts, func(width int, l *layout) int {
		return max(width, l.width)
	}, 0)
	height := utils.Reduce(layouts, func(height int, l *layout) int {
		return height + l.height
	}, LineGap*(len(layouts)-1))
	if err := checkSize(width, height); err != nil {
		return nil, err
	}

	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	y := 0
	for _, l := range layouts {
		x := (width - l.width) / 2
		draw.Draw(canvas, image.Rect(x, y, x+l.width, y+l.height), l.draw(), image.Point{}, draw.Over)
		y += l.height + LineGap
	}
	return canvas, nil
}
