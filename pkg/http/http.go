package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// HandleFileServer returns a handler that serves static files
func HandleFileServer(fs http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		// Set appropriate headers for static files
		switch {
		case strings.HasSuffix(path, ".js"):
			w.Header().Set("Content-Type", "application/javascript")
		case strings.HasSuffix(path, ".css"):
			w.Header().Set("Content-Type", "text/css")
		case strings.HasSuffix(path, ".html"):
			w.Header().Set("Content-Type", "text/html")
		}

		fs.ServeHTTP(w, r)
	}
}

// WriteAttachment writes data as a downloadable file.
func WriteAttachment(w http.ResponseWriter, fileName string, mimeType string, data []byte) error {
	w.Header().Set("Content-Type", mimeType)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write attachment: %w", err)
	}
	return nil
}
