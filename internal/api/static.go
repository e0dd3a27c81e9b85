package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/yegors/vatscope/pkg/logger"
)

// StaticFileHandler serves the browser UI assets from a directory, falling
// back to index.html for unknown paths so client-side routing works.
type StaticFileHandler struct {
	rootDir string
	logger  *logger.Logger
}

// NewStaticFileHandler creates a new static file handler
func NewStaticFileHandler(rootDir string, logger *logger.Logger) *StaticFileHandler {
	return &StaticFileHandler{
		rootDir: rootDir,
		logger:  logger.Named("static"),
	}
}

// ServeHTTP implements http.Handler
func (h *StaticFileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Clean the path to prevent directory traversal
	cleaned := filepath.Clean("/" + r.URL.Path)
	path := filepath.Join(h.rootDir, cleaned)
	if !strings.HasPrefix(path, filepath.Clean(h.rootDir)) {
		http.NotFound(w, r)
		return
	}

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		path = filepath.Join(h.rootDir, "index.html")
		if _, err := os.Stat(path); err != nil {
			http.NotFound(w, r)
			return
		}
	}

	http.ServeFile(w, r, path)
}
