package preview

import (
	"errors"
	"fmt"
	"net/http"
	"os"
)

// NewHandler builds the HTTP handler for a built site directory.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.Dir == "" {
		return nil, errors.New("preview: dir is required")
	}
	info, err := os.Stat(cfg.Dir)
	if err != nil {
		return nil, fmt.Errorf("preview: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("preview: %s is not a directory", cfg.Dir)
	}
	return servePages(cfg.Dir), nil
}

// servePages serves site files read-only, with directory requests resolved
// to their index.html.
func servePages(dir string) http.Handler {
	fileServer := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		fileServer.ServeHTTP(w, r)
	})
}
