// Package server publishes a directory of mods over HTTP using the wire
// format the manifest client consumes. It backs `modsync serve` and is the
// HTTP double used by client and orchestration tests.
package server

import (
	"context"
	stderrors "errors"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/arthur-debert/modsync/pkg/filesystem"
	"github.com/arthur-debert/modsync/pkg/logging"
	"github.com/arthur-debert/modsync/pkg/manifest"
	"github.com/arthur-debert/modsync/pkg/types"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Options configures a Server
type Options struct {
	// FS and Dir locate the published mods
	FS  types.FS
	Dir string

	// Manifest, when non-nil, is served verbatim instead of listing Dir
	Manifest []types.ModName

	ManifestPath string
	ContentPath  string
}

// Server serves a manifest and mod contents
type Server struct {
	opts   Options
	router *gin.Engine
	logger zerolog.Logger
}

func init() {
	gin.SetMode(gin.ReleaseMode)
}

// New creates a server for opts
func New(opts Options) *Server {
	if opts.ManifestPath == "" {
		opts.ManifestPath = manifest.DefaultManifestPath
	}
	if opts.ContentPath == "" {
		opts.ContentPath = manifest.DefaultContentPath
	}

	s := &Server{
		opts:   opts,
		router: gin.New(),
		logger: logging.GetLogger("server"),
	}

	s.router.Use(s.requestLogger(), gin.Recovery())
	s.router.GET(opts.ManifestPath, s.handleManifest)
	s.router.GET(joinRoute(opts.ContentPath, ":name"), s.handleContent)

	return s
}

func joinRoute(prefix, param string) string {
	if prefix == "" || prefix[len(prefix)-1] != '/' {
		prefix += "/"
	}
	return prefix + param
}

// Handler returns the HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is done
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", addr).Str("dir", s.opts.Dir).Msg("Serving mods")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// Mods returns the names the manifest endpoint currently publishes
func (s *Server) Mods() ([]types.ModName, error) {
	if s.opts.Manifest != nil {
		return s.opts.Manifest, nil
	}

	names, err := filesystem.ListFiles(s.opts.FS, s.opts.Dir)
	if err != nil {
		return nil, err
	}
	return types.ModNames(names...), nil
}

func (s *Server) handleManifest(c *gin.Context) {
	mods, err := s.Mods()
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list mods")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cannot list mods"})
		return
	}
	c.JSON(http.StatusOK, manifest.Document{Mods: mods})
}

func (s *Server) handleContent(c *gin.Context) {
	name := types.ModName(c.Param("name"))
	if !name.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mod name"})
		return
	}

	path := filepath.Join(s.opts.Dir, string(name))
	info, err := s.opts.FS.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		if err != nil && !os.IsNotExist(err) {
			s.logger.Error().Err(err).Str("mod", string(name)).Msg("Failed to stat mod")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cannot read mod"})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "mod not found"})
		return
	}

	data, err := s.opts.FS.ReadFile(path)
	if err != nil {
		s.logger.Error().Err(err).Str("mod", string(name)).Msg("Failed to read mod")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cannot read mod"})
		return
	}

	c.Data(http.StatusOK, "application/octet-stream", data)
}

// requestLogger logs each request through zerolog instead of gin's default writer
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("Request")
	}
}
