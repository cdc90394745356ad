// Package glyphtest builds in-memory glyph assets for tests.
package glyphtest

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing/fstest"
)

// Fill is the color of generated glyphs.
var Fill = color.NRGBA{R: 30, G: 120, B: 20, A: 255}

// PNG encodes an opaque width x height rectangle in Fill.
func PNG(width, height int) []byte {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, Fill)
		}
	}
	buffer := new(bytes.Buffer)
	if err := png.Encode(buffer, img); err != nil {
		panic(err)
	}
	return buffer.Bytes()
}

// FS returns an asset directory holding a width x height glyph for each letter.
func FS(letters string, width, height int) fstest.MapFS {
	fsys := fstest.MapFS{}
	data := PNG(width, height)
	for _, letter := range letters {
		fsys[string(letter)+".png"] = &fstest.MapFile{Data: data}
	}
	return fsys
}
