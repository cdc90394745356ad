// Package glyph resolves letters to the protein-structure pictures that stand
// in for them.
//
// The asset directory holds one PNG per uppercase letter, named "<LETTER>.png",
// whose alpha channel is the silhouette of the protein. Letters without a file
// are simply absent: callers skip them.
package glyph

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"log"
	"os"
	"unicode"

	"github.com/disintegration/imaging"
)

// Table maps every supported letter to its asset file name. E.g., 'A' -> "A.png"
var Table = func() map[rune]string {
	table := make(map[rune]string, 26)
	for letter := 'A'; letter <= 'Z'; letter++ {
		table[letter] = string(letter) + ".png"
	}
	return table
}()

// BaselineShift moves glyphs down by a fraction of the letter height so that
// proteins whose fold sits high line up with the rest.
var BaselineShift = map[rune]float64{
	'L': 0.12,
	'I': 0.10,
	'J': 0.15,
	'T': 0.08,
}

// Shift returns the baseline shift of a letter, 0 for letters without one.
func Shift(letter rune) float64 {
	return BaselineShift[unicode.ToUpper(letter)]
}

type Store interface {
	// Returns the encoded asset of the letter, or false when the letter is
	// unsupported or its file is missing.
	Resolve(letter rune) ([]byte, bool)
}

type fsStore struct {
	fsys fs.FS
}

// New returns a Store reading assets from fsys.
func New(fsys fs.FS) Store {
	return &fsStore{fsys: fsys}
}

// NewFromDir returns a Store reading assets from dir.
// The directory itself must be accessible; individual files may be missing.
func NewFromDir(dir string) (Store, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to access glyph directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("glyph path %s is not a directory", dir)
	}
	return New(os.DirFS(dir)), nil
}

func (s *fsStore) Resolve(letter rune) ([]byte, bool) {
	name, ok := Table[unicode.ToUpper(letter)]
	if !ok {
		return nil, false
	}
	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		return nil, false
	}
	return data, true
}

// Load resolves a letter and decodes its asset into a non-premultiplied bitmap.
// Undecodable assets are logged and reported as absent.
func Load(store Store, letter rune) (*image.NRGBA, bool) {
	data, ok := store.Resolve(letter)
	if !ok {
		return nil, false
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		log.Printf("Failed to decode glyph %q: %v", unicode.ToUpper(letter), err)
		return nil, false
	}
	if img.Bounds().Empty() {
		return nil, false
	}
	return imaging.Clone(img), true
}
