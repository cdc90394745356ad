// Package theme holds the fixed registry of color themes and recolors glyphs
// with them.
package theme

import (
	"image/color"
	"slices"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/protein-alphabet/proteintext/pkg/utils"
)

type Kind int

const (
	// Keeps the original coloring of the rendered protein structure.
	KindNone Kind = iota
	// Paints the silhouette in one color.
	KindSolid
	// Paints the silhouette with a vertical gradient from Low (top) to High (bottom).
	KindGradient
)

func (k Kind) String() string {
	switch k {
	case KindSolid:
		return "solid"
	case KindGradient:
		return "gradient"
	default:
		return "none"
	}
}

type RGB struct {
	R, G, B uint8
}

// Hex returns the color in "#rrggbb" form.
func (c RGB) Hex() string {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hex()
}

// NRGBA returns the color fully opaque.
func (c RGB) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

type Theme struct {
	// Stable identifier used by clients. E.g., "hydrophobicity"
	ID string
	// Display name. E.g., "Hydrophobicity (Kyte–Doolittle)"
	Name        string
	Description string
	Kind        Kind
	// Used by KindSolid.
	Color RGB
	// Used by KindGradient.
	Low  RGB
	High RGB
}

// Colors returns the colors the theme paints with, in order.
func (t Theme) Colors() []RGB {
	switch t.Kind {
	case KindSolid:
		return []RGB{t.Color}
	case KindGradient:
		return []RGB{t.Low, t.High}
	default:
		return nil
	}
}

var registry = []Theme{
	{
		ID:          "original",
		Name:        "Original",
		Description: "Original coloring from the rendered protein structure.",
		Kind:        KindNone,
	},
	{
		ID:          "secondary-structure",
		Name:        "Secondary structure (PyMOL-like)",
		Description: "Inspired by standard secondary-structure coloring (α-helices in red).",
		Kind:        KindSolid,
		Color:       RGB{220, 50, 50},
	},
	{
		ID:          "hydrophobicity",
		Name:        "Hydrophobicity (Kyte–Doolittle)",
		Description: "Blue → hydrophilic, Red → hydrophobic (Kyte–Doolittle inspired).",
		Kind:        KindGradient,
		Low:         RGB{50, 80, 200},
		High:        RGB{200, 50, 50},
	},
	{
		ID:          "electrostatics",
		Name:        "Electrostatics",
		Description: "Blue tones inspired by electrostatic surface coloring.",
		Kind:        KindSolid,
		Color:       RGB{130, 130, 230},
	},
	{
		ID:          "protein-core",
		Name:        "Protein core",
		Description: "Muted green inspired by hydrophobic protein cores.",
		Kind:        KindSolid,
		Color:       RGB{120, 160, 120},
	},
	{
		ID:          "nucleic-acid-binding",
		Name:        "Nucleic-acid binding",
		Description: "Blue tones inspired by DNA/RNA-binding proteins.",
		Kind:        KindSolid,
		Color:       RGB{90, 160, 220},
	},
	{
		ID:          "neuroscience",
		Name:        "Neuroscience",
		Description: "Purple tones inspired by brain and synaptic imagery.",
		Kind:        KindSolid,
		Color:       RGB{160, 120, 200},
	},
	{
		ID:          "infection-immunity",
		Name:        "Infection / immunity",
		Description: "Warm tones inspired by host–pathogen interactions.",
		Kind:        KindSolid,
		Color:       RGB{180, 140, 90},
	},
	{
		ID:          "grayscale",
		Name:        "Grayscale (publication)",
		Description: "Neutral grayscale for publication figures.",
		Kind:        KindSolid,
		Color:       RGB{190, 190, 190},
	},
	{
		ID:          "high-contrast",
		Name:        "High contrast (presentation)",
		Description: "High-contrast white for dark backgrounds.",
		Kind:        KindSolid,
		Color:       RGB{255, 255, 255},
	},
}

// All returns the registry in display order.
func All() []Theme {
	return slices.Clone(registry)
}

// Default returns the pass-through theme.
func Default() Theme {
	return registry[0]
}

// Lookup finds a theme by id or display name, ignoring case.
func Lookup(key string) (Theme, bool) {
	key = strings.TrimSpace(key)
	return utils.Find(registry, func(t Theme) bool {
		return strings.EqualFold(t.ID, key) || strings.EqualFold(t.Name, key)
	})
}
