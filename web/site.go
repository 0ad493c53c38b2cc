package web

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/NYTimes/gziphandler"
	"go.uber.org/zap"
)

// Options controls the response headers of the site handler.
type Options struct {
	Expires       time.Duration     // Expiry for rendered pages
	StaticExpires time.Duration     // Expiry for static assets
	Headers       map[string]string // Added to every response
}

// Site returns a handler that serves fsys as a read-only web site with
// compression, expiry headers, custom error pages and request logging.
// Folders without an index.html are not listed.
func Site(fsys fs.FS, opts Options, logger *zap.Logger) http.Handler {
	return LogHandler(
		MethodHandler(
			HeaderHandler(
				ExpiresHandler(
					gziphandler.GzipHandler(
						ErrorHandler(
							IndexHandler(
								http.FileServer(http.FS(fsys)),
								fsys,
							),
							fsys,
						),
					),
					opts.Expires,
					opts.StaticExpires,
				),
				opts.Headers,
			),
		),
		logger,
	)
}
