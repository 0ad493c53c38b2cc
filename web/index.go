package web

import (
	"io/fs"
	"net/http"
	"path"
	"strings"
)

// IndexHandler answers 404 for folder requests when the folder has no index.html,
// so that http.FileServer never produces a directory listing.
func IndexHandler(h http.Handler, fsys fs.FS) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			name := strings.TrimPrefix(path.Join(r.URL.Path, "index.html"), "/")
			if _, err := fs.Stat(fsys, name); err != nil {
				http.NotFound(w, r)
				return
			}
		}
		h.ServeHTTP(w, r)
	})
}
