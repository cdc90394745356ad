package impl

import (
	pb "github.com/protein-alphabet/proteintext/grpc"
	"github.com/protein-alphabet/proteintext/grpc/impl/font"
	"github.com/protein-alphabet/proteintext/pkg/compose"
	"github.com/protein-alphabet/proteintext/pkg/glyph"
)

type server struct {
	pb.UnimplementedProteinTextServer

	// Lays out protein glyphs into pages.
	composer *compose.Composer

	// Used for drawing the legend under rendered pages.
	fontProvider font.FontProvider
}

func New(glyphs glyph.Store, fontProvider font.FontProvider) *server {
	return &server{
		composer:     compose.New(glyphs),
		fontProvider: fontProvider,
	}
}
