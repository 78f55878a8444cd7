// admin.go - privacy-conscious visitor analytics and the admin API over it
package main

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mehulkansal/portfolio/internal/analytics"
	"github.com/mehulkansal/portfolio/internal/view"
)

const (
	purgeTimeout = 30 * time.Second

	adminCookie       = "admin_token"
	adminCookieMaxAge = 24 * 60 * 60
	visitorsPageLimit = 200
)

// initAnalytics opens the visit store and prepares the IP hasher and admin token.
func (s *server) initAnalytics() error {
	store, err := analytics.Open(s.cfg.DatabasePath)
	if err != nil {
		return err
	}
	hasher, err := analytics.NewRandomHasher()
	if err != nil {
		_ = store.Close()
		return err
	}
	s.store = store
	s.hasher = hasher

	s.adminToken = s.cfg.AdminToken
	if s.adminToken == "" {
		if s.adminToken, err = generateAdminToken(); err != nil {
			_ = store.Close()
			return err
		}
		if gin.Mode() == gin.DebugMode {
			s.log.Debug("generated admin token (dev only)", "token", s.adminToken)
		}
	}

	s.log.Info("privacy: visitor tracking enabled with hashed IP addresses",
		"database", s.cfg.DatabasePath, "retention", s.cfg.AnalyticsRetention)
	return nil
}

// closeAnalytics waits for pending visit writes, then closes the store.
func (s *server) closeAnalytics() {
	s.inflight.Wait()
	if err := s.store.Close(); err != nil {
		s.log.Warn("close analytics store", "error", err)
	}
}

func generateAdminToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate admin token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// purgeExpired drops visits older than the configured retention.
func (s *server) purgeExpired() (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), purgeTimeout)
	defer cancel()
	n, err := s.store.Purge(ctx, s.now().Add(-s.cfg.AnalyticsRetention))
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.log.Info("privacy cleanup", "removed", n, "older_than", s.cfg.AnalyticsRetention)
	}
	return n, nil
}

// adminAuth accepts the token as a bearer token or the admin_token cookie.
func (s *server) adminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok {
			token, _ = c.Cookie(adminCookie)
		}
		if !s.validAdminToken(token) {
			s.log.Warn("rejected admin request", "path", c.Request.URL.Path, "client", s.hasher.Hash(c.ClientIP()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

func (s *server) validAdminToken(token string) bool {
	return token != "" && subtle.ConstantTimeCompare([]byte(token), []byte(s.adminToken)) == 1
}

func (s *server) setAdminCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(adminCookie, value, maxAge, "/admin", "", c.Request.TLS != nil, true)
}

func (s *server) setupAdminRoutes(r *gin.Engine) {
	// Privacy policy route
	r.GET("/privacy", func(c *gin.Context) {
		c.Render(http.StatusOK, view.HTML{
			Node: view.PrivacyPage(s.site.Profile.Name, s.store != nil, s.cfg.AnalyticsRetention, s.now().Year()),
		})
	})

	if s.store == nil {
		return
	}

	// Admin login page
	r.GET("/admin/login", func(c *gin.Context) {
		c.Render(http.StatusOK, view.HTML{Node: view.LoginPage(s.site.Profile.Name, false, s.now().Year())})
	})

	// Admin login handler
	r.POST("/admin/login", func(c *gin.Context) {
		if !s.validAdminToken(c.PostForm("token")) {
			s.log.Warn("failed admin login", "client", s.hasher.Hash(c.ClientIP()))
			c.Render(http.StatusUnauthorized, view.HTML{Node: view.LoginPage(s.site.Profile.Name, true, s.now().Year())})
			return
		}
		s.setAdminCookie(c, s.adminToken, adminCookieMaxAge)
		s.log.Info("admin login", "client", s.hasher.Hash(c.ClientIP()))
		c.Redirect(http.StatusFound, "/admin/visitors")
	})

	// Admin logout
	r.GET("/admin/logout", func(c *gin.Context) {
		s.setAdminCookie(c, "", -1)
		s.log.Info("admin logout", "client", s.hasher.Hash(c.ClientIP()))
		c.Redirect(http.StatusFound, "/admin/login")
	})

	// Protected admin routes group
	adminGroup := r.Group("/admin")
	adminGroup.Use(s.adminAuth())

	adminGroup.GET("/visitors", func(c *gin.Context) {
		visits, err := s.store.RecentVisits(c.Request.Context(), visitorsPageLimit)
		if err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load visitors"})
			return
		}
		c.Render(http.StatusOK, view.HTML{Node: view.VisitorsPage(s.site.Profile.Name, visits, s.now().Year())})
	})

	adminGroup.GET("/api/stats", func(c *gin.Context) {
		stats, err := s.loadStats(c)
		if err != nil {
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	// Statistics export for backups or analysis
	adminGroup.GET("/export/stats", func(c *gin.Context) {
		stats, err := s.loadStats(c)
		if err != nil {
			return
		}
		c.Header("Content-Disposition", "attachment; filename=portfolio-stats.json")
		s.log.Info("stats exported", "client", s.hasher.Hash(c.ClientIP()))
		c.JSON(http.StatusOK, stats)
	})

	adminGroup.POST("/privacy/cleanup", func(c *gin.Context) {
		n, err := s.purgeExpired()
		if err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clean up visitor data"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "privacy cleanup complete", "removed": n})
	})
}

// loadStats writes the error response itself when it fails.
func (s *server) loadStats(c *gin.Context) (analytics.Stats, error) {
	stats, err := s.store.Stats(c.Request.Context(), s.now())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
		return analytics.Stats{}, err
	}
	return stats, nil
}
