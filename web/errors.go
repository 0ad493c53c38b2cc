package web

import (
	"io/fs"
	"net/http"
	"strconv"
)

// ErrorHandler captures 404 and 500 errors and serves /404.html or /500.html from the file system.
// The site's 404.html is the "Topic Not Found" view. When the file is missing the default
// response passes through unchanged.
func ErrorHandler(h http.Handler, fsys fs.FS) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writer := &errorWriter{
			ResponseWriter: w,
			fsys:           fsys,
			head:           r.Method == http.MethodHead,
		}
		h.ServeHTTP(writer, r)
	})
}

// errorWriter replaces the body of error responses.
type errorWriter struct {
	http.ResponseWriter
	fsys    fs.FS
	head    bool
	noWrite bool
	err     error
}

func (w *errorWriter) Write(b []byte) (int, error) {
	if w.noWrite {
		return len(b), w.err
	}
	return w.ResponseWriter.Write(b)
}

func (w *errorWriter) WriteHeader(statusCode int) {
	var file string
	switch statusCode {
	case http.StatusNotFound:
		file = "404.html"
	case http.StatusInternalServerError:
		file = "500.html"
	}
	if file != "" {
		b, err := fs.ReadFile(w.fsys, file)
		if err == nil {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Header().Set("Content-Length", strconv.Itoa(len(b)))
			w.Header().Del("X-Content-Type-Options")
			w.ResponseWriter.WriteHeader(statusCode)
			w.noWrite = true
			if !w.head {
				_, w.err = w.ResponseWriter.Write(b)
			}
			return
		}
	}
	// normal processing
	w.ResponseWriter.WriteHeader(statusCode)
}
