// Command export renders the portfolio into a directory of static files that
// any web host can serve.
package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/mehulkansal/portfolio/internal/assets"
	"github.com/mehulkansal/portfolio/internal/content"
	"github.com/mehulkansal/portfolio/internal/logger"
	"github.com/mehulkansal/portfolio/internal/view"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: export <output-dir>")
		os.Exit(1)
	}

	log, err := logger.New(os.Stderr, "info")
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}

	site := content.Default()
	if err := content.Validate(site); err != nil {
		log.Warn("portfolio content has problems", "error", err)
	}

	written, err := export(os.Args[1], site, time.Now().Year())
	if err != nil {
		log.Error("export failed", "error", err)
		os.Exit(1)
	}
	log.Info("export complete", "dir", os.Args[1], "files", written)
}

// export writes index.html and the embedded assets under dir and returns the
// number of files written.
func export(dir string, site content.Site, year int) (int, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("create output directory: %w", err)
	}

	index, err := os.Create(filepath.Join(dir, "index.html"))
	if err != nil {
		return 0, fmt.Errorf("create index.html: %w", err)
	}
	if err := view.Page(site, year).Render(index); err != nil {
		_ = index.Close()
		return 0, fmt.Errorf("render index.html: %w", err)
	}
	if err := index.Close(); err != nil {
		return 0, fmt.Errorf("write index.html: %w", err)
	}
	written := 1

	static := assets.Static()
	err = fs.WalkDir(static, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dir, "assets", filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := fs.ReadFile(static, path)
		if err != nil {
			return err
		}
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return err
		}
		written++
		return nil
	})
	if err != nil {
		return written, fmt.Errorf("copy assets: %w", err)
	}
	return written, nil
}
