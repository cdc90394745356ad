package impl

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/testing/protocmp"

	pb "github.com/protein-alphabet/proteintext/grpc"
	"github.com/protein-alphabet/proteintext/grpc/impl/font"
	"github.com/protein-alphabet/proteintext/pkg/glyph"
	"github.com/protein-alphabet/proteintext/pkg/glyph/glyphtest"
)

func newTestServer(t *testing.T) *server {
	t.Helper()
	fontProvider, err := font.New("")
	if err != nil {
		t.Fatalf("failed to load fonts: %v", err)
	}
	return New(glyph.New(glyphtest.FS("HELORITW", 40, 80)), fontProvider)
}

func decodeDataURI(t *testing.T, uri string) image.Image {
	t.Helper()
	const prefix = "data:image/png;base64,"
	if !strings.HasPrefix(uri, prefix) {
		t.Fatalf("UriImage does not start with %q", prefix)
	}
	data, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, prefix))
	if err != nil {
		t.Fatalf("failed to decode base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to decode PNG: %v", err)
	}
	return img
}

func TestRender(t *testing.T) {
	s := newTestServer(t)

	response, err := s.Render(context.Background(), &pb.RenderRequest{Text: "HELLO", Theme: "protein-core"})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if response.GetEmpty() {
		t.Fatalf("Render() Empty = true, want an image")
	}
	img := decodeDataURI(t, response.GetUriImage())
	want := &pb.RenderResponse{Width: 625, Height: 220, FileName: "protein_text.png", MimeType: "image/png"}
	if diff := cmp.Diff(want, response, protocmp.Transform(), protocmp.IgnoreFields(&pb.RenderResponse{}, "uri_image")); diff != "" {
		t.Errorf("Render() mismatch (-want +got):\n%s", diff)
	}
	if img.Bounds() != image.Rect(0, 0, 625, 220) {
		t.Errorf("decoded bounds = %v, want 625x220", img.Bounds())
	}
	if r, g, b, _ := img.At(55, 100).RGBA(); r>>8 != 120 || g>>8 != 160 || b>>8 != 120 {
		t.Errorf("glyph pixel = (%d, %d, %d), want the protein core green", r>>8, g>>8, b>>8)
	}
}

func TestRenderParameters(t *testing.T) {
	s := newTestServer(t)

	response, err := s.Render(context.Background(), &pb.RenderRequest{
		Text:            "HI THERE",
		LetterHeight:    proto.Int32(160),
		LetterSpacing:   proto.Int32(0),
		WordSpacing:     proto.Int32(10),
		MaxCharsPerLine: proto.Int32(10),
	})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	// 40x80 glyphs become 80x160; "HI THERE" fits in 10 characters.
	if response.Width != 7*80+10 || response.Height != 160 {
		t.Errorf("Render() size = %dx%d, want %dx%d", response.Width, response.Height, 7*80+10, 160)
	}
}

func TestRenderNothingToShow(t *testing.T) {
	s := newTestServer(t)
	for _, text := range []string{"", "   ", "1 2 3", "?!"} {
		response, err := s.Render(context.Background(), &pb.RenderRequest{Text: text})
		if err != nil {
			t.Errorf("Render(%q) error = %v", text, err)
			continue
		}
		if diff := cmp.Diff(&pb.RenderResponse{Empty: true}, response, protocmp.Transform()); diff != "" {
			t.Errorf("Render(%q) mismatch (-want +got):\n%s", text, diff)
		}
	}
}

func TestRenderInvalidArgument(t *testing.T) {
	s := newTestServer(t)
	tests := []struct {
		name    string
		request *pb.RenderRequest
	}{
		{name: "unknown theme", request: &pb.RenderRequest{Text: "HI", Theme: "rainbow"}},
		{name: "letter height", request: &pb.RenderRequest{Text: "HI", LetterHeight: proto.Int32(50)}},
		{name: "letter spacing", request: &pb.RenderRequest{Text: "HI", LetterSpacing: proto.Int32(61)}},
		{name: "word spacing", request: &pb.RenderRequest{Text: "HI", WordSpacing: proto.Int32(5)}},
		{name: "characters per line", request: &pb.RenderRequest{Text: "HI", MaxCharsPerLine: proto.Int32(100)}},
		{name: "invalid even without text", request: &pb.RenderRequest{LetterHeight: proto.Int32(1000)}},
		{name: "text too long", request: &pb.RenderRequest{Text: strings.Repeat("H", 2000)}},
		{name: "page too large", request: &pb.RenderRequest{Text: strings.Repeat("H", 900), LetterHeight: proto.Int32(400)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Render(context.Background(), tt.request)
			if status.Code(err) != codes.InvalidArgument {
				t.Errorf("Render() code = %v, want %v", status.Code(err), codes.InvalidArgument)
			}
		})
	}
}

func TestRenderLegend(t *testing.T) {
	s := newTestServer(t)
	for _, themeID := range []string{"original", "electrostatics", "hydrophobicity"} {
		response, err := s.Render(context.Background(), &pb.RenderRequest{Text: "HI", Theme: themeID, Legend: true})
		if err != nil {
			t.Fatalf("Render(%s) error = %v", themeID, err)
		}
		if response.Height <= 220+legendPadding*2+legendSwatchSize-1 {
			t.Errorf("Render(%s) height = %d, want room for the legend", themeID, response.Height)
		}
		if response.Width < 250 {
			t.Errorf("Render(%s) width = %d, want at least the page width", themeID, response.Width)
		}

		img := decodeDataURI(t, response.GetUriImage())
		if img.Bounds().Dx() != int(response.Width) || img.Bounds().Dy() != int(response.Height) {
			t.Errorf("Render(%s) decoded bounds = %v, want %dx%d", themeID, img.Bounds(), response.Width, response.Height)
		}
		x := (int(response.Width)-250)/2 + 55
		if _, _, _, a := img.At(x, 100).RGBA(); a>>8 != 255 {
			t.Errorf("Render(%s) page pixel alpha = %d, want 255", themeID, a>>8)
		}
	}
}

func TestListThemes(t *testing.T) {
	s := newTestServer(t)
	response, err := s.ListThemes(context.Background(), &pb.ListThemesRequest{})
	if err != nil {
		t.Fatalf("ListThemes() error = %v", err)
	}
	if len(response.GetThemes()) != 10 {
		t.Fatalf("len(Themes) = %d, want 10", len(response.GetThemes()))
	}

	want := []*pb.Theme{
		{
			Id:          "original",
			Name:        "Original",
			Description: "Original coloring from the rendered protein structure.",
			Kind:        "none",
			Colors:      []string{},
		},
		{
			Id:          "secondary-structure",
			Name:        "Secondary structure (PyMOL-like)",
			Description: "Inspired by standard secondary-structure coloring (α-helices in red).",
			Kind:        "solid",
			Colors:      []string{"#dc3232"},
		},
		{
			Id:          "hydrophobicity",
			Name:        "Hydrophobicity (Kyte–Doolittle)",
			Description: "Blue → hydrophilic, Red → hydrophobic (Kyte–Doolittle inspired).",
			Kind:        "gradient",
			Colors:      []string{"#3250c8", "#c83232"},
		},
	}
	if diff := cmp.Diff(want, response.GetThemes()[:3], protocmp.Transform()); diff != "" {
		t.Errorf("ListThemes() mismatch (-want +got):\n%s", diff)
	}
}
