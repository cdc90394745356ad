package impl

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/protein-alphabet/proteintext/grpc"
	"github.com/protein-alphabet/proteintext/pkg/export"
	yaHttp "github.com/protein-alphabet/proteintext/pkg/http"
)

// HandleDownload renders the page described by the query string and serves it
// as "protein_text.png". Responds 204 when there is nothing to render.
//
// E.g., /download?text=HELLO+WORLD&theme=hydrophobicity&height=220&letter_spacing=15&word_spacing=45&max_chars=30&legend=1
func (s *server) HandleDownload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	request, err := renderRequestFromQuery(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	page, err := s.render(request)
	if err != nil {
		if status.Code(err) == codes.InvalidArgument {
			http.Error(w, status.Convert(err).Message(), http.StatusBadRequest)
			return
		}
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if page == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if err := yaHttp.WriteAttachment(w, export.FileName, export.MimeType, page.png); err != nil {
		log.Printf("Failed to write download: %v", err)
	}
}

func renderRequestFromQuery(query url.Values) (*pb.RenderRequest, error) {
	request := &pb.RenderRequest{
		Text:  query.Get("text"),
		Theme: query.Get("theme"),
	}

	fields := []struct {
		name   string
		target **int32
	}{
		{"height", &request.LetterHeight},
		{"letter_spacing", &request.LetterSpacing},
		{"word_spacing", &request.WordSpacing},
		{"max_chars", &request.MaxCharsPerLine},
	}
	for _, field := range fields {
		raw := query.Get(field.name)
		if raw == "" {
			continue
		}
		value, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%s must be an integer, got %q", field.name, raw)
		}
		v := int32(value)
		*field.target = &v
	}

	if raw := query.Get("legend"); raw != "" {
		legend, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("legend must be a boolean, got %q", raw)
		}
		request.Legend = legend
	}
	return request, nil
}
