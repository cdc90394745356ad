package impl

import (
	"context"

	pb "github.com/protein-alphabet/proteintext/grpc"
	"github.com/protein-alphabet/proteintext/pkg/theme"
	"github.com/protein-alphabet/proteintext/pkg/utils"
)

func (s *server) ListThemes(ctx context.Context, request *pb.ListThemesRequest) (*pb.ListThemesResponse, error) {
	return &pb.ListThemesResponse{
		Themes: utils.Map(theme.All(), func(t theme.Theme) *pb.Theme {
			return &pb.Theme{
				Id:          t.ID,
				Name:        t.Name,
				Description: t.Description,
				Kind:        t.Kind.String(),
				Colors: utils.Map(t.Colors(), func(c theme.RGB) string {
					return c.Hex()
				}),
			}
		}),
	}, nil
}
