// Package analytics keeps privacy-conscious page view counts in SQLite:
// visitor IPs are salted and hashed before they are stored.
package analytics

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Visit is one recorded page view.
type Visit struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	VisitedAt time.Time `json:"visited_at"`
}

type PathCount struct {
	Path   string `json:"path"`
	Visits int64  `json:"visits"`
}

// Stats summarises recorded visits relative to a point in time.
type Stats struct {
	TotalVisits    int64       `json:"total_visits"`
	UniqueVisitors int64       `json:"unique_visitors"`
	VisitsToday    int64       `json:"visits_today"`
	VisitsThisWeek int64       `json:"visits_this_week"`
	TopPaths       []PathCount `json:"top_paths"`
	RecentVisits   []Visit     `json:"recent_visits"`
}

const (
	topPathsLimit     = 10
	recentVisitsLimit = 50
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS visits (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		hashed_ip  TEXT    NOT NULL,
		user_agent TEXT    NOT NULL DEFAULT '',
		path       TEXT    NOT NULL,
		visited_at INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_visits_visited_at ON visits (visited_at)`,
}

// Store persists visits in SQLite.
type Store struct {
	sqlDB *sql.DB
}

// Open opens (creating if needed) the SQLite database at path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// SQLite allows a single writer
	sqlDB.SetMaxOpenConns(1)
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	for _, stmt := range schema {
		if _, err := sqlDB.Exec(stmt); err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("create schema: %w", err)
		}
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Record inserts one visit. A zero VisitedAt is stamped with the current time.
func (s *Store) Record(ctx context.Context, v Visit) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if v.HashedIP == "" {
		return fmt.Errorf("hashed ip is required")
	}
	if v.Path == "" {
		return fmt.Errorf("path is required")
	}
	at := v.VisitedAt
	if at.IsZero() {
		at = time.Now()
	}
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO visits (hashed_ip, user_agent, path, visited_at) VALUES (?, ?, ?, ?)`,
		v.HashedIP, v.UserAgent, v.Path, toMillis(at),
	)
	if err != nil {
		return fmt.Errorf("insert visit: %w", err)
	}
	return nil
}

// Purge deletes visits recorded before cutoff and reports how many went.
func (s *Store) Purge(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.sqlDB.ExecContext(ctx, `DELETE FROM visits WHERE visited_at < ?`, toMillis(cutoff))
	if err != nil {
		return 0, fmt.Errorf("purge visits: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("purge visits: %w", err)
	}
	return n, nil
}

// Stats computes visit counts as seen at now. "Today" starts at midnight in
// now's location; "this week" is the trailing seven days.
func (s *Store) Stats(ctx context.Context, now time.Time) (Stats, error) {
	var stats Stats
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekAgo := now.Add(-7 * 24 * time.Hour)

	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT COUNT(*), COUNT(DISTINCT hashed_ip) FROM visits`,
	).Scan(&stats.TotalVisits, &stats.UniqueVisitors)
	if err != nil {
		return Stats{}, fmt.Errorf("count visits: %w", err)
	}

	err = s.sqlDB.QueryRowContext(ctx,
		`SELECT
		   COALESCE(SUM(CASE WHEN visited_at >= ? THEN 1 ELSE 0 END), 0),
		   COALESCE(SUM(CASE WHEN visited_at >= ? THEN 1 ELSE 0 END), 0)
		 FROM visits`,
		toMillis(midnight), toMillis(weekAgo),
	).Scan(&stats.VisitsToday, &stats.VisitsThisWeek)
	if err != nil {
		return Stats{}, fmt.Errorf("count recent visits: %w", err)
	}

	if stats.TopPaths, err = s.topPaths(ctx); err != nil {
		return Stats{}, err
	}
	if stats.RecentVisits, err = s.RecentVisits(ctx, recentVisitsLimit); err != nil {
		return Stats{}, err
	}
	return stats, nil
}

func (s *Store) topPaths(ctx context.Context) ([]PathCount, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT path, COUNT(*) AS visits
		 FROM visits
		 GROUP BY path
		 ORDER BY visits DESC, path ASC
		 LIMIT ?`,
		topPathsLimit,
	)
	if err != nil {
		return nil, fmt.Errorf("query top paths: %w", err)
	}
	defer rows.Close()

	paths := []PathCount{}
	for rows.Next() {
		var pc PathCount
		if err := rows.Scan(&pc.Path, &pc.Visits); err != nil {
			return nil, fmt.Errorf("scan top path: %w", err)
		}
		paths = append(paths, pc)
	}
	return paths, rows.Err()
}

// RecentVisits lists up to limit visits, newest first.
func (s *Store) RecentVisits(ctx context.Context, limit int) ([]Visit, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, hashed_ip, user_agent, path, visited_at
		 FROM visits
		 ORDER BY visited_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query recent visits: %w", err)
	}
	defer rows.Close()

	visits := []Visit{}
	for rows.Next() {
		var (
			v  Visit
			at int64
		)
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &at); err != nil {
			return nil, fmt.Errorf("scan visit: %w", err)
		}
		v.VisitedAt = fromMillis(at)
		visits = append(visits, v)
	}
	return visits, rows.Err()
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}
