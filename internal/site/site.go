// Package site serves the portfolio's static assets. Paths that do not
// name a file fall back to the main HTML document so client-side routing
// can handle them.
package site

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/ankitraj/portfolio/pkg/logging"
)

// Handler serves files from an fs.FS with SPA fallback.
type Handler struct {
	files  fs.FS
	index  string
	logger *logging.Logger
}

// NewHandler serves files from root. index is the fallback document,
// relative to root.
func NewHandler(root fs.FS, index string, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if index == "" {
		index = "index.html"
	}
	return &Handler{
		files:  root,
		index:  strings.TrimPrefix(index, "/"),
		logger: logger,
	}
}

// ServeHTTP serves the requested asset or the index document.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	if name, ok := h.resolve(r.URL.Path); ok {
		if h.serveFile(w, r, name) {
			return
		}
	}

	if !h.serveFile(w, r, h.index) {
		h.logger.Error("index document missing", "index", h.index)
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	}
}

// resolve maps a URL path to a file name in the asset tree.
func (h *Handler) resolve(urlPath string) (string, bool) {
	name := strings.TrimPrefix(path.Clean("/"+urlPath), "/")
	if name == "" {
		return h.index, true
	}

	info, err := fs.Stat(h.files, name)
	if err != nil {
		return "", false
	}
	if !info.IsDir() {
		return name, true
	}
	dirIndex := path.Join(name, "index.html")
	if info, err := fs.Stat(h.files, dirIndex); err == nil && !info.IsDir() {
		return dirIndex, true
	}
	return "", false
}

// serveFile writes the named file. It reports false if the file cannot be
// opened so the caller can fall back.
func (h *Handler) serveFile(w http.ResponseWriter, r *http.Request, name string) bool {
	f, err := h.files.Open(name)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			h.logger.Warn("failed to open asset", "name", name, "error", err)
		}
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		return false
	}

	content, ok := f.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(f)
		if err != nil {
			h.logger.Warn("failed to read asset", "name", name, "error", err)
			return false
		}
		content = bytes.NewReader(data)
	}

	http.ServeContent(w, r, path.Base(name), info.ModTime(), content)
	return true
}

// HealthResponse is the liveness payload.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// timestampLayout matches JavaScript's Date.prototype.toISOString.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Health returns the liveness handler. now may be nil.
func Health(now func() time.Time) http.HandlerFunc {
	if now == nil {
		now = time.Now
	}
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{
			Status:    "healthy",
			Timestamp: now().UTC().Format(timestampLayout),
		})
	}
}
