package site

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/Bitlatte/petroweb/internal/config"
	"github.com/Bitlatte/petroweb/internal/content"
	"github.com/Bitlatte/petroweb/internal/render"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	root := t.TempDir()
	return config.Config{
		SiteTitle:    "Andes OGS",
		BaseURL:      "https://www.example.com",
		Language:     "es",
		OutputDir:    filepath.Join(root, "public"),
		ContentDir:   filepath.Join(root, "content"),
		StaticDir:    filepath.Join(root, "static"),
		RelatedLimit: 3,
		Server:       config.ServerConfig{Port: 8080},
		Log:          config.LogConfig{Format: "json"},
	}
}

func readOutput(t *testing.T, cfg config.Config, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(cfg.OutputDir, filepath.FromSlash(rel)))
	require.NoError(t, err, rel)
	return string(data)
}

func TestBuild(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.MkdirAll(filepath.Join(cfg.StaticDir, "css"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.StaticDir, "css", "site.css"), []byte("body{}"), 0o644))

	// Stale output must disappear.
	require.NoError(t, os.MkdirAll(cfg.OutputDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.OutputDir, "stale.html"), nil, 0o644))

	r, err := render.New()
	require.NoError(t, err)
	cat := content.Default()

	report, err := NewBuilder(cfg, r, zaptest.NewLogger(t)).Build(context.Background(), cat)
	require.NoError(t, err)
	assert.Equal(t, len(NewPages(cfg, cat).Routes()), report.Pages)
	assert.Equal(t, 1, report.Assets)

	assert.NoFileExists(t, filepath.Join(cfg.OutputDir, "stale.html"))
	assert.Equal(t, "body{}", readOutput(t, cfg, "static/css/site.css"))

	home := readOutput(t, cfg, "index.html")
	assert.Contains(t, home, "<title>Andes OGS</title>")
	assert.Contains(t, home, "reveal-char")

	post, _ := content.PostBySlug("seguridad-operacional-cero-incidentes")
	page := readOutput(t, cfg, "blog/"+post.Slug+"/index.html")
	assert.Contains(t, page, post.Title)
	assert.Contains(t, page, `<h2 id="pilares-del-programa">`)
	assert.Contains(t, page, `<link rel="canonical" href="https://www.example.com/blog/`+post.Slug+`">`)
	for _, related := range content.RelatedPosts(post.Slug, 3) {
		assert.Contains(t, page, related.Permalink())
	}

	cat404 := readOutput(t, cfg, "404.html")
	assert.Contains(t, cat404, `<meta name="robots" content="noindex">`)

	tech := readOutput(t, cfg, "blog/categoria/tecnologia/index.html")
	for _, p := range content.PostsByCategory(content.Technology) {
		assert.Contains(t, tech, p.Title)
	}
	for _, p := range content.PostsByCategory(content.Safety) {
		assert.NotContains(t, tech, ">"+p.Title+"<")
	}

	sitemap := readOutput(t, cfg, "sitemap.xml")
	assert.Contains(t, sitemap, "<loc>https://www.example.com/</loc>")
	assert.Contains(t, sitemap, "<lastmod>"+post.Date+"</lastmod>")

	robots := readOutput(t, cfg, "robots.txt")
	assert.Contains(t, robots, "Sitemap: https://www.example.com/sitemap.xml")

	var exported []content.Post
	require.NoError(t, json.Unmarshal([]byte(readOutput(t, cfg, "api/posts.json")), &exported))
	assert.Equal(t, cat.Blog.Posts(), exported)
}

func TestBuild_NoStaticDir(t *testing.T) {
	cfg := testConfig(t)
	r, err := render.New()
	require.NoError(t, err)

	report, err := NewBuilder(cfg, r, zaptest.NewLogger(t)).Build(context.Background(), content.Default())
	require.NoError(t, err)
	assert.Zero(t, report.Assets)
	assert.FileExists(t, filepath.Join(cfg.OutputDir, "contacto", "index.html"))
}

func TestBuild_OutputOverlapsSources(t *testing.T) {
	r, err := render.New()
	require.NoError(t, err)

	cfg := testConfig(t)
	cssPath := filepath.Join(cfg.StaticDir, "css", "site.css")
	require.NoError(t, os.MkdirAll(filepath.Dir(cssPath), 0o755))
	require.NoError(t, os.WriteFile(cssPath, []byte("body{}"), 0o644))

	for _, out := range []string{cfg.StaticDir, filepath.Dir(cfg.StaticDir), filepath.Join(cfg.ContentDir, "public")} {
		c := cfg
		c.OutputDir = out
		_, err := NewBuilder(c, r, zaptest.NewLogger(t)).Build(context.Background(), content.Default())
		assert.Error(t, err, out)
	}
	assert.FileExists(t, cssPath)
}

func TestBuild_Cancelled(t *testing.T) {
	cfg := testConfig(t)
	r, err := render.New()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = NewBuilder(cfg, r, zaptest.NewLogger(t)).Build(ctx, content.Default())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRoutes(t *testing.T) {
	cfg := testConfig(t)
	cat := content.Default()
	routes := NewPages(cfg, cat).Routes()

	seen := map[string]bool{}
	for _, r := range routes {
		assert.False(t, seen[r.Path], "duplicate route %s", r.Path)
		seen[r.Path] = true
		assert.True(t, strings.HasPrefix(r.Path, "/"))
		assert.NotNil(t, r.Data, r.Path)
	}
	for _, p := range cat.Blog.Posts() {
		assert.True(t, seen[p.Permalink()], p.Permalink())
	}
	for _, s := range cat.Services {
		assert.True(t, seen[s.Permalink()], s.Permalink())
	}
	assert.True(t, seen["/blog/categoria/seguridad"])
}
