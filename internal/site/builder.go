package site

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Bitlatte/petroweb/internal/config"
	"github.com/Bitlatte/petroweb/internal/content"
	"github.com/Bitlatte/petroweb/internal/render"
)

const (
	staticPrefix = "static"
	indexFile    = "index.html"
	notFoundFile = "404.html"
)

// Report summarizes a build.
type Report struct {
	Pages    int
	Assets   int
	Duration time.Duration
}

// Builder renders a catalog to cfg.OutputDir.
type Builder struct {
	cfg      config.Config
	renderer *render.Renderer
	log      *zap.Logger
}

func NewBuilder(cfg config.Config, r *render.Renderer, log *zap.Logger) *Builder {
	return &Builder{cfg: cfg, renderer: r, log: log}
}

// Build wipes the output directory and writes the whole site into it.
func (b *Builder) Build(ctx context.Context, cat *content.Catalog) (Report, error) {
	start := time.Now()
	outputDir := b.cfg.OutputDir
	b.log.Info("starting build",
		zap.String("outputDir", outputDir),
		zap.String("baseURL", b.cfg.BaseURL),
		zap.Int("posts", cat.Blog.Len()))

	if err := b.cfg.CheckOutputDir(); err != nil {
		return Report{}, err
	}
	if err := os.RemoveAll(outputDir); err != nil {
		return Report{}, fmt.Errorf("failed to remove output directory '%s': %w", outputDir, err)
	}
	if err := os.MkdirAll(outputDir, os.ModePerm); err != nil {
		return Report{}, fmt.Errorf("failed to create output directory '%s': %w", outputDir, err)
	}

	var report Report
	if _, err := os.Stat(b.cfg.StaticDir); err == nil {
		n, err := copyDirContents(b.cfg.StaticDir, filepath.Join(outputDir, staticPrefix))
		if err != nil {
			return Report{}, fmt.Errorf("failed to copy static assets: %w", err)
		}
		report.Assets = n
		b.log.Debug("static assets copied", zap.String("from", b.cfg.StaticDir), zap.Int("files", n))
	} else {
		b.log.Warn("static assets directory not found, skipping copy", zap.String("dir", b.cfg.StaticDir))
	}

	pages := NewPages(b.cfg, cat)
	routes := pages.Routes()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, r := range routes {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return b.renderRoute(r)
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}
	report.Pages = len(routes)

	if err := b.writeFile(notFoundFile, func(w io.Writer) error {
		return b.renderer.Render(w, render.PageNotFound, pages.NotFound("/404"))
	}); err != nil {
		return Report{}, err
	}
	if err := b.writeFile("sitemap.xml", func(w io.Writer) error {
		return WriteSitemap(w, b.cfg, routes)
	}); err != nil {
		return Report{}, err
	}
	if err := b.writeFile("robots.txt", func(w io.Writer) error {
		return WriteRobots(w, b.cfg)
	}); err != nil {
		return Report{}, err
	}
	if err := b.writeFile(filepath.Join("api", "posts.json"), func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(cat.Blog.Posts())
	}); err != nil {
		return Report{}, err
	}

	report.Duration = time.Since(start)
	b.log.Info("build completed",
		zap.Int("pages", report.Pages),
		zap.Int("assets", report.Assets),
		zap.Duration("took", report.Duration))
	return report, nil
}

func (b *Builder) renderRoute(r Route) error {
	rel := filepath.Join(filepath.FromSlash(strings.TrimPrefix(r.Path, "/")), indexFile)
	err := b.writeFile(rel, func(w io.Writer) error {
		return b.renderer.Render(w, r.Layout, r.Data)
	})
	if err != nil {
		return fmt.Errorf("failed to render '%s' with layout '%s': %w", r.Path, r.Layout, err)
	}
	b.log.Debug("generated page", zap.String("path", r.Path), zap.String("layout", r.Layout))
	return nil
}

// writeFile creates rel under the output directory and fills it with fn.
func (b *Builder) writeFile(rel string, fn func(io.Writer) error) (err error) {
	outputPath := filepath.Join(b.cfg.OutputDir, rel)
	if err := os.MkdirAll(filepath.Dir(outputPath), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create directory for '%s': %w", outputPath, err)
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file '%s': %w", outputPath, err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	return fn(f)
}

// copyDirContents recursively copies the files under src into dst and
// returns how many files were copied.
func copyDirContents(src, dst string) (int, error) {
	copied := 0
	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		relPath, err := filepath.Rel(src, path)
		if err != nil {
			return fmt.Errorf("failed to get relative path for %s: %w", path, err)
		}
		dstPath := filepath.Join(dst, relPath)

		if d.IsDir() {
			// os.ModePerm is narrowed by the umask.
			if err := os.MkdirAll(dstPath, os.ModePerm); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", dstPath, err)
			}
			return nil
		}
		if err := copyFile(path, dstPath); err != nil {
			return fmt.Errorf("failed to copy file from %s to %s: %w", path, dstPath, err)
		}
		copied++
		return nil
	})
	return copied, err
}

// copyFile copies a single file, keeping its permission bits.
func copyFile(srcFile, dstFile string) error {
	srcF, err := os.Open(srcFile)
	if err != nil {
		return fmt.Errorf("failed to open source file %s: %w", srcFile, err)
	}
	defer srcF.Close()

	info, err := srcF.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat source file %s: %w", srcFile, err)
	}

	dstF, err := os.OpenFile(dstFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("failed to create destination file %s: %w", dstFile, err)
	}
	if _, err := io.Copy(dstF, srcF); err != nil {
		dstF.Close()
		return fmt.Errorf("failed to copy data from %s to %s: %w", srcFile, dstFile, err)
	}
	return dstF.Close()
}
