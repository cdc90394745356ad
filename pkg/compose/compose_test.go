package compose

import (
	"errors"
	"image"
	"image/color"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/protein-alphabet/proteintext/pkg/glyph"
	"github.com/protein-alphabet/proteintext/pkg/glyph/glyphtest"
	"github.com/protein-alphabet/proteintext/pkg/theme"
)

// Glyph fixtures are 40x80, so at the default height of 220 every glyph is
// 110 pixels wide and takes 125 pixels with the default letter spacing.
const (
	glyphWidth   = 110
	glyphAdvance = glyphWidth + 15
)

var fill = color.RGBA{R: glyphtest.Fill.R, G: glyphtest.Fill.G, B: glyphtest.Fill.B, A: 255}

func newComposer() *Composer {
	return New(glyph.New(glyphtest.FS("HELORITW", 40, 80)))
}

func composeLine(t *testing.T, composer *Composer, text string, p Params) *image.RGBA {
	t.Helper()
	line, err := composer.Line(text, p)
	if err != nil {
		t.Fatalf("Line(%q) error = %v", text, err)
	}
	return line
}

func composePage(t *testing.T, composer *Composer, text string, p Params) *image.RGBA {
	t.Helper()
	page, err := composer.Page(text, p)
	if err != nil {
		t.Fatalf("Page(%q) error = %v", text, err)
	}
	return page
}

func TestScale(t *testing.T) {
	tests := []struct {
		width, height int
		target        int
		wantWidth     int
	}{
		{width: 40, height: 80, target: 220, wantWidth: 110},
		{width: 33, height: 70, target: 150, wantWidth: 70},
		{width: 300, height: 200, target: 120, wantWidth: 180},
		{width: 1, height: 400, target: 120, wantWidth: 1},
	}
	for _, tt := range tests {
		src := image.NewNRGBA(image.Rect(0, 0, tt.width, tt.height))
		got := Scale(src, tt.target)
		if got.Bounds().Dy() != tt.target || got.Bounds().Dx() != tt.wantWidth {
			t.Errorf("Scale(%dx%d, %d) = %v, want %dx%d", tt.width, tt.height, tt.target, got.Bounds().Size(), tt.wantWidth, tt.target)
		}
		gotRatio := float64(got.Bounds().Dx()) / float64(got.Bounds().Dy())
		wantRatio := float64(tt.width) / float64(tt.height)
		if tt.wantWidth > 1 && math.Abs(gotRatio-wantRatio)*float64(tt.target) > 1 {
			t.Errorf("Scale(%dx%d, %d) ratio = %v, want %v", tt.width, tt.height, tt.target, gotRatio, wantRatio)
		}
	}
}

func TestLine(t *testing.T) {
	line := composeLine(t, newComposer(), "hello", DefaultParams())
	if line == nil {
		t.Fatalf("Line() = nil, want a line")
	}
	if got, want := line.Bounds(), image.Rect(0, 0, 5*glyphAdvance, 220); got != want {
		t.Fatalf("Line() bounds = %v, want %v", got, want)
	}
	for i := 0; i < 5; i++ {
		if got := line.RGBAAt(i*glyphAdvance+glyphWidth/2, 200); got != fill {
			t.Errorf("glyph %d pixel = %v, want %v", i, got, fill)
		}
		if got := line.RGBAAt(i*glyphAdvance+glyphWidth+5, 200); got.A != 0 {
			t.Errorf("letter gap %d pixel = %v, want transparent", i, got)
		}
	}
}

func TestLineBaselineShift(t *testing.T) {
	line := composeLine(t, newComposer(), "L", DefaultParams())
	if line == nil {
		t.Fatalf("Line() = nil, want a line")
	}
	// floor(0.12 * 220) = 26
	if got := line.RGBAAt(10, 25); got.A != 0 {
		t.Errorf("pixel above the shifted glyph = %v, want transparent", got)
	}
	if got := line.RGBAAt(10, 26); got != fill {
		t.Errorf("first row of the shifted glyph = %v, want %v", got, fill)
	}
	if got := line.Bounds().Dy(); got != 220 {
		t.Errorf("line height = %d, want 220", got)
	}
}

func TestLineSpacing(t *testing.T) {
	composer := newComposer()
	params := DefaultParams()

	tests := []struct {
		text      string
		wantWidth int
	}{
		{text: "H H", wantWidth: 2*glyphAdvance + params.WordSpacing},
		{text: "H  H", wantWidth: 2*glyphAdvance + 2*params.WordSpacing},
		{text: "H1H!", wantWidth: 2 * glyphAdvance},
		{text: " H", wantWidth: params.WordSpacing + glyphAdvance},
		{text: "HZ", wantWidth: glyphAdvance}, // 'Z' has no asset
	}
	for _, tt := range tests {
		line := composeLine(t, composer, tt.text, params)
		if line == nil {
			t.Errorf("Line(%q) = nil, want a line", tt.text)
			continue
		}
		if got := line.Bounds().Dx(); got != tt.wantWidth {
			t.Errorf("Line(%q) width = %d, want %d", tt.text, got, tt.wantWidth)
		}
	}
}

func TestLineWithoutGlyphs(t *testing.T) {
	composer := newComposer()
	for _, text := range []string{"", "   ", "1 2 3", "ZZ Z", "?!"} {
		if line := composeLine(t, composer, text, DefaultParams()); line != nil {
			t.Errorf("Line(%q) = %v, want nil", text, line.Bounds())
		}
	}
}

func TestLineTheme(t *testing.T) {
	params := DefaultParams()
	params.Theme, _ = theme.Lookup("secondary-structure")
	line := composeLine(t, newComposer(), "HI", params)
	want := color.RGBA{R: 220, G: 50, B: 50, A: 255}
	if got := line.RGBAAt(glyphWidth/2, 100); got != want {
		t.Errorf("solid themed pixel = %v, want %v", got, want)
	}

	params.Theme, _ = theme.Lookup("hydrophobicity")
	line = composeLine(t, newComposer(), "H", params)
	if got := line.RGBAAt(glyphWidth/2, 0); got != (color.RGBA{R: 50, G: 80, B: 200, A: 255}) {
		t.Errorf("gradient top pixel = %v, want low color", got)
	}
	if got := line.RGBAAt(glyphWidth/2, 219); got != (color.RGBA{R: 200, G: 50, B: 50, A: 255}) {
		t.Errorf("gradient bottom pixel = %v, want high color", got)
	}
}

func TestPage(t *testing.T) {
	params := DefaultParams()
	params.MaxCharsPerLine = 5
	page := composePage(t, newComposer(), "HI THERE", params)
	if page == nil {
		t.Fatalf("Page() = nil, want a page")
	}

	// "HI" (250 px) is centered over "THERE" (625 px).
	wantWidth, wantHeight := 5*glyphAdvance, 220+LineGap+220
	if got := page.Bounds(); got != image.Rect(0, 0, wantWidth, wantHeight) {
		t.Fatalf("Page() bounds = %v, want %dx%d", got, wantWidth, wantHeight)
	}
	x := (wantWidth - 2*glyphAdvance) / 2
	if got := page.RGBAAt(x-1, 100); got.A != 0 {
		t.Errorf("pixel left of the centered line = %v, want transparent", got)
	}
	if got := page.RGBAAt(x, 100); got != fill {
		t.Errorf("first pixel of the centered line = %v, want %v", got, fill)
	}
	for y := 220; y < 220+LineGap; y++ {
		if got := page.RGBAAt(x+glyphWidth/2, y); got.A != 0 {
			t.Fatalf("gap row %d = %v, want transparent", y, got)
		}
	}
	if got := page.RGBAAt(glyphWidth/2, 220+LineGap+100); got != fill {
		t.Errorf("second line pixel = %v, want %v", got, fill)
	}
}

func TestPageDropsEmptyLines(t *testing.T) {
	params := DefaultParams()
	params.MaxCharsPerLine = 10
	page := composePage(t, newComposer(), "HH 1234567890 HH", params)
	if page == nil {
		t.Fatalf("Page() = nil, want a page")
	}
	if got, want := page.Bounds(), image.Rect(0, 0, 2*glyphAdvance, 2*220+LineGap); got != want {
		t.Errorf("Page() bounds = %v, want %v", got, want)
	}
}

func TestPageWithoutContent(t *testing.T) {
	composer := newComposer()
	for _, text := range []string{"", "  \n ", "1 2 3", "ZZZ"} {
		if page := composePage(t, composer, text, DefaultParams()); page != nil {
			t.Errorf("Page(%q) = %v, want nil", text, page.Bounds())
		}
	}
}

func TestPageIsDeterministic(t *testing.T) {
	composer := newComposer()
	params := DefaultParams()
	params.Theme, _ = theme.Lookup("hydrophobicity")
	params.MaxCharsPerLine = 10

	first := composePage(t, composer, "HELLO WORLD TO THE OTHER", params)
	second := composePage(t, composer, "HELLO WORLD TO THE OTHER", params)
	if diff := cmp.Diff(first.Pix, second.Pix); diff != "" {
		t.Errorf("Page() is not deterministic:\n%s", diff)
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultParams().Validate(); err != nil {
		t.Errorf("DefaultParams().Validate() error = %v", err)
	}

	tests := []struct {
		name   string
		modify func(*Params)
	}{
		{name: "letter height too small", modify: func(p *Params) { p.LetterHeight = 119 }},
		{name: "letter height too large", modify: func(p *Params) { p.LetterHeight = 401 }},
		{name: "negative letter spacing", modify: func(p *Params) { p.LetterSpacing = -1 }},
		{name: "word spacing too large", modify: func(p *Params) { p.WordSpacing = 121 }},
		{name: "too few characters per line", modify: func(p *Params) { p.MaxCharsPerLine = 9 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := DefaultParams()
			tt.modify(&params)
			if err := params.Validate(); err == nil {
				t.Errorf("Validate() error = nil, want error")
			}
		})
	}
}

func TestOversizedWord(t *testing.T) {
	composer := newComposer()
	// One unbreakable word of 2000 glyphs is 250000 pixels wide.
	word := strings.Repeat("H", 2000)

	if _, err := composer.Page(word, DefaultParams()); !errors.Is(err, ErrTooLarge) {
		t.Errorf("Page() error = %v, want %v", err, ErrTooLarge)
	}
	if _, err := composer.Line(word, DefaultParams()); !errors.Is(err, ErrTooLarge) {
		t.Errorf("Line() error = %v, want %v", err, ErrTooLarge)
	}
}

func TestOversizedPage(t *testing.T) {
	params := DefaultParams()
	params.LetterHeight = MaxLetterHeight
	params.MaxCharsPerLine = MaxCharsPerLine
	// 60 glyphs per line, 200 px each, over many lines.
	text := strings.TrimSpace(strings.Repeat(strings.Repeat("W", 60)+" ", 20))

	if _, err := newComposer().Page(text, params); !errors.Is(err, ErrTooLarge) {
		t.Errorf("Page() error = %v, want %v", err, ErrTooLarge)
	}
}

func TestValidateText(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{name: "empty", text: ""},
		{name: "at the limit", text: strings.Repeat("A", MaxTextLength)},
		{name: "counts characters not bytes", text: strings.Repeat("É", MaxTextLength)},
		{name: "over the limit", text: strings.Repeat("A", MaxTextLength+1), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateText(tt.text); (err != nil) != tt.wantErr {
				t.Errorf("ValidateText() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
