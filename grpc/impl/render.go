package impl

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/protein-alphabet/proteintext/grpc"
	"github.com/protein-alphabet/proteintext/pkg/compose"
	"github.com/protein-alphabet/proteintext/pkg/export"
	"github.com/protein-alphabet/proteintext/pkg/theme"
)

// The encoded result of one render.
type renderedPage struct {
	png    []byte
	width  int
	height int
}

func (s *server) Render(ctx context.Context, request *pb.RenderRequest) (*pb.RenderResponse, error) {
	page, err := s.render(request)
	if err != nil {
		return nil, err
	}
	if page == nil {
		return &pb.RenderResponse{Empty: true}, nil
	}

	return &pb.RenderResponse{
		UriImage: export.DataURI(page.png),
		Width:    int32(page.width),
		Height:   int32(page.height),
		FileName: export.FileName,
		MimeType: export.MimeType,
	}, nil
}

// Returns nil without an error when the text has nothing to render.
func (s *server) render(request *pb.RenderRequest) (*renderedPage, error) {
	params, err := toParams(request)
	if err == nil {
		err = compose.ValidateText(request.GetText())
	}
	if err != nil {
		log.Printf("Invalid render request: %v", err)
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	if strings.TrimSpace(request.GetText()) == "" {
		return nil, nil
	}

	page, err := s.composer.Page(request.GetText(), params)
	if errors.Is(err, compose.ErrTooLarge) {
		log.Printf("Rejected render: %v", err)
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if err != nil {
		log.Printf("Failed to compose page: %v", err)
		return nil, status.Error(codes.Internal, codes.Internal.String())
	}
	if page == nil {
		return nil, nil
	}

	var img image.Image = page
	if request.GetLegend() {
		img = drawLegend(page, params.Theme, s.fontProvider.GetLegendFonts())
	}

	data, err := export.PNG(img)
	if err != nil {
		log.Printf("Failed to encode image: %v", err)
		return nil, status.Error(codes.Internal, codes.Internal.String())
	}
	return &renderedPage{
		png:    data,
		width:  img.Bounds().Dx(),
		height: img.Bounds().Dy(),
	}, nil
}

// Unset fields keep their defaults.
func toParams(request *pb.RenderRequest) (compose.Params, error) {
	params := compose.DefaultParams()
	if key := request.GetTheme(); key != "" {
		selected, ok := theme.Lookup(key)
		if !ok {
			return params, fmt.Errorf("unknown theme %q", key)
		}
		params.Theme = selected
	}
	if request == nil {
		return params, nil
	}

	setIfPresent(&params.LetterHeight, request.LetterHeight)
	setIfPresent(&params.LetterSpacing, request.LetterSpacing)
	setIfPresent(&params.WordSpacing, request.WordSpacing)
	setIfPresent(&params.MaxCharsPerLine, request.MaxCharsPerLine)
	return params, params.Validate()
}

func setIfPresent(target *int, value *int32) {
	if value != nil {
		*target = int(*value)
	}
}
