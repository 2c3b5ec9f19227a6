// Package server renders the site on request with gin.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Bitlatte/petroweb/internal/config"
	"github.com/Bitlatte/petroweb/internal/content"
	"github.com/Bitlatte/petroweb/internal/render"
	"github.com/Bitlatte/petroweb/internal/site"
)

const (
	sessionName     = "petroweb"
	shutdownTimeout = 10 * time.Second
)

type Server struct {
	cfg    config.Config
	log    *zap.Logger
	pages  atomic.Pointer[site.Pages]
	engine *gin.Engine
}

// New wires the routes. The caller chooses the gin mode.
func New(cfg config.Config, r *render.Renderer, cat *content.Catalog, log *zap.Logger) *Server {
	s := &Server{cfg: cfg, log: log}
	s.pages.Store(site.NewPages(cfg, cat))
	registerFormNames()

	engine := gin.New()
	engine.HTMLRender = htmlRender{r: r}
	engine.Use(requestID(), accessLog(log), gin.Recovery())
	engine.Use(sessions.Sessions(sessionName, cookie.NewStore([]byte(cfg.Server.SessionSecret))))
	if cfg.Server.Dev {
		engine.Use(noCache())
	}
	engine.Use(static.Serve("/static", static.LocalFile(cfg.StaticDir, false)))

	engine.GET("/", s.home)
	engine.GET("/nosotros", s.about)
	engine.GET("/servicios", s.services)
	engine.GET("/servicios/:slug", s.service)
	engine.GET("/blog", s.blog)
	engine.GET("/blog/categoria/:category", s.blogCategory)
	engine.GET("/blog/:slug", s.post)
	engine.GET("/carreras", s.careers)
	engine.POST("/carreras/:id/postular", s.apply)
	engine.GET("/contacto", s.contactForm)
	engine.POST("/contacto", s.contactSubmit)
	engine.GET("/sitemap.xml", s.sitemap)
	engine.GET("/robots.txt", s.robots)
	engine.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	api := engine.Group("/api")
	{
		api.GET("/posts", s.apiPosts)
		api.GET("/posts/:slug", s.apiPost)
	}

	engine.NoRoute(s.notFound)
	s.engine = engine
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.engine }

// Reload swaps in a new catalog. In-flight requests keep the old one.
func (s *Server) Reload(cat *content.Catalog) {
	s.pages.Store(site.NewPages(s.cfg, cat))
	s.log.Info("catalog reloaded", zap.Int("posts", cat.Blog.Len()), zap.Int("jobs", len(cat.Jobs)))
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Server.Port),
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("serving site", zap.String("addr", "http://localhost"+srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to start HTTP server: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("shutting down server")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return fmt.Errorf("failed to shut down HTTP server: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
