package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	g "maragu.dev/gomponents"

	"github.com/mehulkansal/portfolio/internal/analytics"
	"github.com/mehulkansal/portfolio/internal/assets"
	"github.com/mehulkansal/portfolio/internal/config"
	"github.com/mehulkansal/portfolio/internal/content"
	"github.com/mehulkansal/portfolio/internal/logger"
	"github.com/mehulkansal/portfolio/internal/view"
)

// server holds what the routes need. store is nil when analytics is off.
type server struct {
	cfg        *config.Config
	log        *slog.Logger
	site       content.Site
	store      *analytics.Store
	hasher     *analytics.Hasher
	adminToken string
	now        func() time.Time

	// background writes that must finish before store closes
	inflight sync.WaitGroup
}

func main() {
	if err := run(); err != nil {
		slog.Error("portfolio exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log, err := logger.New(os.Stdout, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	gin.SetMode(cfg.GinMode)

	site := content.Default()
	if err := content.Validate(site); err != nil {
		log.Warn("portfolio content has problems", "error", err)
	}

	srv := &server{
		cfg:  cfg,
		log:  log,
		site: site,
		now:  time.Now,
	}

	if cfg.AnalyticsEnabled {
		if err := srv.initAnalytics(); err != nil {
			return fmt.Errorf("init analytics: %w", err)
		}
		defer srv.closeAnalytics()

		srv.inflight.Add(1)
		go func() {
			defer srv.inflight.Done()
			if _, err := srv.purgeExpired(); err != nil {
				log.Warn("startup purge", "error", err)
			}
		}()
	}

	httpSrv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           srv.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	listenErr := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", httpSrv.Addr, "analytics", cfg.AnalyticsEnabled)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-listenErr:
		return fmt.Errorf("listen: %w", err)
	case <-quit:
	}
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", "error", err)
	}
	return nil
}

func (s *server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.Gin(s.log))
	r.Use(securityHeaders())
	if s.store != nil {
		r.Use(analytics.Middleware(s.store, s.hasher, s.log, &s.inflight))
	}

	r.StaticFS("/assets", http.FS(assets.Static()))
	r.GET("/favicon.ico", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/assets/favicon.svg")
	})

	// Home page route
	r.GET("/", func(c *gin.Context) {
		c.Render(http.StatusOK, view.HTML{Node: view.Page(s.site, s.now().Year())})
	})

	// Single sections as HTML fragments, for HTMX swaps and embedding
	r.GET("/sections/:name", func(c *gin.Context) {
		node, ok := s.section(c.Param("name"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown section"})
			return
		}
		c.Render(http.StatusOK, view.HTML{Node: node})
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.setupAdminRoutes(r)
	return r
}

func (s *server) section(name string) (g.Node, bool) {
	switch name {
	case "hero":
		return view.Hero(s.site.Profile), true
	case "experience":
		return view.ExperienceSection(s.site.Experience), true
	case "projects":
		return view.ProjectsSection(s.site.Projects), true
	case "skills":
		return view.SkillsSection(s.site.Skills), true
	case "achievements":
		return view.AchievementsSection(s.site.Achievements), true
	case "education":
		return view.EducationSection(s.site.Education), true
	case "contact":
		return view.ContactSection(s.site.Contact), true
	case "footer":
		return view.Footer(s.site.Footer, s.now().Year()), true
	}
	return nil, false
}

// securityHeaders sets the browser hardening headers. The CSP admits the
// Tailwind CDN runtime (which injects inline styles) and remote project images.
func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Header("Permissions-Policy", "camera=(), microphone=(), geolocation=(), payment=()")
		c.Header("Content-Security-Policy",
			"default-src 'self'; "+
				"script-src 'self' https://cdn.tailwindcss.com; "+
				"style-src 'self' 'unsafe-inline'; "+
				"img-src 'self' data: https:; "+
				"frame-ancestors 'none'; "+
				"base-uri 'self'")
		c.Next()
	}
}
