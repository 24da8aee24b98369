package server

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// spaHandler serves built assets from dir and falls back to index.html so
// client-side routes load the app.
type spaHandler struct {
	dir        string
	fileServer http.Handler
}

func newSPAHandler(dir string) *spaHandler {
	return &spaHandler{
		dir:        dir,
		fileServer: http.FileServer(http.Dir(dir)),
	}
}

func (h *spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	clean := path.Clean("/" + r.URL.Path)

	if clean != "/" {
		info, err := os.Stat(filepath.Join(h.dir, filepath.FromSlash(strings.TrimPrefix(clean, "/"))))
		if err == nil && !info.IsDir() {
			h.fileServer.ServeHTTP(w, r)
			return
		}
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Cache-Control", "no-cache")
	http.ServeFile(w, r, filepath.Join(h.dir, "index.html"))
}
