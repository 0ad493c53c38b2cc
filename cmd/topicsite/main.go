package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ancientlore/cachefs"
	"github.com/facebookgo/flagenv"
	"github.com/golang/groupcache"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/felipe-muner/topicsite/export"
	"github.com/felipe-muner/topicsite/virtual"
	"github.com/felipe-muner/topicsite/web"
)

// envPrefix is prepended to flag names to find their environment variables.
const envPrefix = "TOPICSITE_"

func main() {
	os.Exit(run(os.Args[1:]))
}

// run parses args, then either exports the site or serves it until a signal
// arrives. The result is the process exit code.
func run(args []string) int {
	// Setup flags
	set := flag.NewFlagSet("topicsite", flag.ContinueOnError)
	var (
		fPort              = set.Int("port", 8080, "Port to listen on.")
		fReadTimeout       = set.Duration("readtimeout", 10*time.Second, "HTTP server read timeout.")
		fReadHeaderTimeout = set.Duration("readheadertimeout", 5*time.Second, "HTTP server read header timeout.")
		fWriteTimeout      = set.Duration("writetimeout", 30*time.Second, "HTTP server write timeout.")
		fRoot              = set.String("root", "static", "Folder holding static assets, site.toml and templates.")
		fCacheSize         = set.Int64("cachesize", 10*1024*1024, "Cache size in bytes.")
		fCacheDuration     = set.Duration("cacheduration", 10*time.Second, "Cache expiration; 0 disables expiration.")
		fExport            = set.String("export", "", "Write the site to this folder and exit.")
		fDebug             = set.Bool("debug", false, "Enable debug logging.")
	)
	if err := set.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}
	if err := flagenv.ParseSet(envPrefix, set); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	logger, err := newLogger(*fDebug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cannot create logger: %s\n", err)
		return 1
	}
	defer logger.Sync()

	// Create the virtual file system
	vfs, err := virtual.New(os.DirFS(*fRoot), logger)
	if err != nil {
		logger.Error("Cannot load site", zap.String("root", *fRoot), zap.Error(err))
		return 2
	}
	logger.Info("Loaded site", zap.String("root", *fRoot), zap.Strings("routes", vfs.Routes()))

	// Static generation
	if *fExport != "" {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if _, err := export.Write(ctx, vfs, *fExport, logger); err != nil {
			logger.Error("Cannot export site", zap.Error(err))
			return 3
		}
		return 0
	}

	// Setup groupcache (with no peers)
	groupcache.RegisterPeerPicker(func() groupcache.PeerPicker { return groupcache.NoPeers{} })

	// Create the cached file system
	cachedFileSystem := cachefs.New(vfs, &cachefs.Config{GroupName: "topicsite", SizeInBytes: *fCacheSize, Duration: *fCacheDuration})

	cfg := vfs.Config()

	// Create HTTP server
	var srv = http.Server{
		Addr: fmt.Sprintf(":%d", *fPort),
		Handler: web.Site(cachedFileSystem, web.Options{
			Expires:       time.Duration(cfg.Expires),
			StaticExpires: time.Duration(cfg.StaticExpires),
			Headers:       cfg.Headers,
		}, logger),
		ReadTimeout:       *fReadTimeout,
		WriteTimeout:      *fWriteTimeout,
		ReadHeaderTimeout: *fReadHeaderTimeout,
	}

	// Create signal handler for graceful shutdown
	go func() {
		sigint := make(chan os.Signal, 1)

		// interrupt signal sent from terminal
		signal.Notify(sigint, os.Interrupt)
		// sigterm signal sent from kubernetes
		signal.Notify(sigint, syscall.SIGTERM)

		<-sigint

		// We received an interrupt signal, shut down.
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			// Error from closing listeners, or context timeout:
			logger.Error("HTTP server Shutdown", zap.Error(err))
		}
	}()

	// Listen for requests
	logger.Info("Listening for requests", zap.String("addr", srv.Addr))
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("HTTP server", zap.Error(err))
		return 4
	}
	logger.Info("Goodbye.")
	return 0
}

// newLogger builds a production logger, at debug level when requested.
func newLogger(debug bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}
