package export

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
)

func TestPNGDataURI(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.Set(1, 1, color.RGBA{R: 220, G: 50, B: 50, A: 255})

	data, err := PNG(img)
	if err != nil {
		t.Fatalf("PNG() error = %v", err)
	}

	uri := DataURI(data)
	const prefix = "data:image/png;base64,"
	if !strings.HasPrefix(uri, prefix) {
		t.Fatalf("DataURI() = %q, want prefix %q", uri[:min(len(uri), 30)], prefix)
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, prefix))
	if err != nil {
		t.Fatalf("failed to decode base64 payload: %v", err)
	}
	decoded, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("failed to decode PNG: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("decoded bounds = %v, want %v", decoded.Bounds(), img.Bounds())
	}
	if r, _, _, a := decoded.At(1, 1).RGBA(); r>>8 != 220 || a>>8 != 255 {
		t.Errorf("decoded pixel = (r %d, a %d), want (220, 255)", r>>8, a>>8)
	}
	if _, _, _, a := decoded.At(0, 0).RGBA(); a != 0 {
		t.Errorf("decoded transparent pixel alpha = %d, want 0", a)
	}
}
