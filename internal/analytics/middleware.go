package analytics

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// Recorder stores a visit.
type Recorder interface {
	Record(ctx context.Context, v Visit) error
}

const recordTimeout = 5 * time.Second

var untrackedPrefixes = []string{
	"/assets/",
	"/admin/",
	"/favicon",
	"/privacy",
	"/healthz",
}

// ShouldTrack reports whether r counts as a page view: a GET outside the
// asset, admin and policy paths from a client that hasn't sent DNT: 1.
func ShouldTrack(r *http.Request) bool {
	if r.Method != http.MethodGet {
		return false
	}
	for _, prefix := range untrackedPrefixes {
		if strings.HasPrefix(r.URL.Path, prefix) {
			return false
		}
	}
	return r.Header.Get("DNT") != "1"
}

// Middleware records trackable requests in the background so page rendering
// never waits on the database. Each pending write is counted on inflight;
// wait on it before closing the store.
func Middleware(rec Recorder, hasher *Hasher, log *slog.Logger, inflight *sync.WaitGroup) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !ShouldTrack(c.Request) {
			c.Next()
			return
		}

		v := Visit{
			HashedIP:  hasher.Hash(c.ClientIP()),
			UserAgent: c.GetHeader("User-Agent"),
			Path:      c.Request.URL.Path,
			VisitedAt: time.Now(),
		}
		inflight.Add(1)
		go func() {
			defer inflight.Done()
			ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
			defer cancel()
			if err := rec.Record(ctx, v); err != nil {
				log.Warn("record visit", "path", v.Path, "error", err)
			}
		}()

		c.Next()
	}
}
