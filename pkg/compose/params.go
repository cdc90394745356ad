package compose

import (
	"fmt"
	"unicode/utf8"

	"github.com/protein-alphabet/proteintext/pkg/theme"
)

// Bounds of the render parameters accepted from clients, in pixels or characters.
const (
	MinLetterHeight  = 120
	MaxLetterHeight  = 400
	MinLetterSpacing = 0
	MaxLetterSpacing = 60
	MinWordSpacing   = 10
	MaxWordSpacing   = 120
	MinCharsPerLine  = 10
	MaxCharsPerLine  = 60
)

// LineGap is the vertical distance between stacked lines, in pixels.
const LineGap = 40

const (
	// Longest accepted input, in characters.
	MaxTextLength = 1000
	// Largest line or page canvas, in pixels. 200 MB as RGBA.
	MaxPagePixels = 50_000_000
)

// Params is the snapshot of settings for one render.
type Params struct {
	// Height every glyph is scaled to. E.g., 220
	LetterHeight int
	// Transparent gap appended after each glyph. E.g., 15
	LetterSpacing int
	// Transparent gap inserted for each space. E.g., 45
	WordSpacing int
	// Upper bound of characters, spaces included, in a wrapped line. E.g., 30
	MaxCharsPerLine int
	Theme           theme.Theme
}

func DefaultParams() Params {
	return Params{
		LetterHeight:    220,
		LetterSpacing:   15,
		WordSpacing:     45,
		MaxCharsPerLine: 30,
		Theme:           theme.Default(),
	}
}

// Validate reports the first parameter outside its accepted range.
func (p Params) Validate() error {
	checks := []struct {
		name      string
		value     int
		low, high int
	}{
		{"letter height", p.LetterHeight, MinLetterHeight, MaxLetterHeight},
		{"letter spacing", p.LetterSpacing, MinLetterSpacing, MaxLetterSpacing},
		{"word spacing", p.WordSpacing, MinWordSpacing, MaxWordSpacing},
		{"max characters per line", p.MaxCharsPerLine, MinCharsPerLine, MaxCharsPerLine},
	}
	for _, check := range checks {
		if check.value < check.low || check.value > check.high {
			return fmt.Errorf("%s must be between %d and %d, got %d", check.name, check.low, check.high, check.value)
		}
	}
	return nil
}

// ValidateText rejects input longer than MaxTextLength characters.
func ValidateText(text string) error {
	if length := utf8.RuneCountInString(text); length > MaxTextLength {
		return fmt.Errorf("text must be at most %d characters, got %d", MaxTextLength, length)
	}
	return nil
}
