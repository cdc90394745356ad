package font

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontProvider interface {
	// Returns the fonts used for the legend under rendered pages.
	GetLegendFonts() *FontsByWeight
}

type fontProvider struct {
	legend FontsByWeight
}

type FontsByWeight struct {
	Regular *truetype.Font
	Bold    *truetype.Font
}

// New loads "Legend-Regular.ttf" and "Legend-Bold.ttf" from basePath.
// An empty basePath selects the Go fonts bundled with golang.org/x/image.
func New(basePath string) (FontProvider, error) {
	if basePath == "" {
		return newGoFontProvider()
	}

	regular, err := parseFontFile(filepath.Join(basePath, "Legend-Regular.ttf"))
	if err != nil {
		return nil, fmt.Errorf("failed to load regular legend font: %w", err)
	}

	bold, err := parseFontFile(filepath.Join(basePath, "Legend-Bold.ttf"))
	if err != nil {
		return nil, fmt.Errorf("failed to load bold legend font: %w", err)
	}

	return &fontProvider{legend: FontsByWeight{Regular: regular, Bold: bold}}, nil
}

// Go fonts
// Ref: https://go.dev/blog/go-fonts
func newGoFontProvider() (FontProvider, error) {
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Go regular font: %w", err)
	}
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Go bold font: %w", err)
	}
	return &fontProvider{legend: FontsByWeight{Regular: regular, Bold: bold}}, nil
}

func (fp *fontProvider) GetLegendFonts() *FontsByWeight {
	return &fp.legend
}

func parseFontFile(path string) (*truetype.Font, error) {
	fontBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return truetype.Parse(fontBytes)
}
