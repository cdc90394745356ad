// Package export serializes rendered pages for download.
package export

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
)

const (
	FileName = "protein_text.png"
	MimeType = "image/png"
)

// PNG encodes img losslessly.
func PNG(img image.Image) ([]byte, error) {
	buffer := new(bytes.Buffer)
	if err := png.Encode(buffer, img); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buffer.Bytes(), nil
}

// DataURI embeds PNG bytes in a data URI. E.g., "data:image/png;base64,iVBO..."
func DataURI(data []byte) string {
	return "data:" + MimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
