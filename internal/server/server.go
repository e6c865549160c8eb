package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Server struct {
	Engine *gin.Engine
	Addr   string
	db     HealthChecker
}

// HealthChecker is an interface for components that can report their health status.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// Options configures the optional parts of the HTTP surface.
type Options struct {
	// StaticRoot is served for every path no API route claims. Empty disables it.
	StaticRoot  string
	AllowOrigin string

	// Journal is pinged by /health when set.
	Journal HealthChecker

	// MetricsPath and MetricsHandler expose Prometheus metrics when both are set.
	MetricsPath    string
	MetricsHandler http.Handler
}

func New(addr, mode string, opts Options) *Server {
	// Set Gin mode based on configuration
	if mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestID(), requestLogger(), cors(opts.AllowOrigin))

	s := &Server{
		Engine: r,
		Addr:   addr,
		db:     opts.Journal,
	}

	r.GET("/health", s.healthHandler)

	if opts.MetricsPath != "" && opts.MetricsHandler != nil {
		r.GET(opts.MetricsPath, gin.WrapH(opts.MetricsHandler))
	}

	if opts.StaticRoot != "" {
		r.NoRoute(staticFiles(opts.StaticRoot))
	}

	return s
}

func (s *Server) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	journal := "disabled"
	if s.db != nil {
		if err := s.db.PingContext(ctx); err != nil {
			slog.Error("Health check failed: journal database unreachable", "error", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"error":  "journal database unreachable",
			})
			return
		}
		journal = "connected"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"journal": journal,
	})
}

func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.Addr,
		Handler:           s.Engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("Starting HTTP Server...", "address", s.Addr)

	go func() {
		<-ctx.Done()
		slog.Info("Stopping HTTP Server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("HTTP Server forced to shutdown", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
