package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/ghiac/adminshell"
	"github.com/ghiac/adminshell/config"
	"github.com/ghiac/adminshell/log"
)

// Server represents the HTTP server
type Server struct {
	config *config.Config
	engine *gin.Engine
}

// NewServer creates a new HTTP server serving shell
func NewServer(cfg *config.Config, shell *adminshell.Shell) *Server {
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger())
	shell.RegisterRoutes(engine)

	return &Server{
		config: cfg,
		engine: engine,
	}
}

// Handler returns the root handler, for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	address := s.config.GetAddress()
	srv := &http.Server{
		Addr:              address,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Log.Infof("Starting HTTP server on %s", address)
		log.Log.Infof("Available endpoints:")
		log.Log.Infof("  GET  /admin/* - Admin console")
		log.Log.Infof("  GET  /admin/api/menu - Navigation for the current user")
		log.Log.Infof("  POST /admin/api/sidebar/:scope - Fold or unfold a sidebar")
		log.Log.Infof("  GET  /health - Health check")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.HTTP.ShutdownTimeout)
		defer cancel()
		log.Log.Infof("Shutting down HTTP server")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// requestLogger logs one line per request through the shared logger
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		l := log.Log.With(
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			l.Errorf("request failed")
		case c.Writer.Status() >= http.StatusBadRequest:
			l.Warnf("request rejected")
		default:
			l.Debugf("request served")
		}
	}
}
