// Package render turns page data into HTML with the embedded layouts.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/Bitlatte/petroweb/internal/content"
	"github.com/Bitlatte/petroweb/internal/reveal"
)

const (
	baseLayout  = "base.html"
	partialsDir = "partials"
	pagesDir    = "pages"
	entryName   = "base"
)

// Page template names.
const (
	PageHome     = "home"
	PageAbout    = "about"
	PageServices = "services"
	PageService  = "service"
	PageBlog     = "blog"
	PagePost     = "post"
	PageCareers  = "careers"
	PageContact  = "contact"
	PageNotFound = "404"
)

//go:embed templates
var embedded embed.FS

// Renderer executes page templates. It is safe for concurrent use.
type Renderer struct {
	pages map[string]*template.Template
	md    goldmark.Markdown
}

// New parses the embedded layouts.
func New() (*Renderer, error) {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		return nil, err
	}
	return NewFS(sub)
}

// NewFS parses layouts from fsys: base.html plus partials/*.html form the
// shared set, and each pages/*.html is parsed into its own clone of it so
// every page can define its own "content" block.
func NewFS(fsys fs.FS) (*Renderer, error) {
	r := &Renderer{
		pages: map[string]*template.Template{},
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
			goldmark.WithRendererOptions(
				gmhtml.WithHardWraps(),
			),
		),
	}

	partials, err := fs.Glob(fsys, path.Join(partialsDir, "*.html"))
	if err != nil {
		return nil, err
	}
	base, err := template.New(baseLayout).Funcs(r.funcs()).ParseFS(fsys, append([]string{baseLayout}, partials...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base.html and partials: %w", err)
	}

	pageFiles, err := fs.Glob(fsys, path.Join(pagesDir, "*.html"))
	if err != nil {
		return nil, err
	}
	if len(pageFiles) == 0 {
		return nil, fmt.Errorf("no page layouts found in '%s'", pagesDir)
	}
	for _, f := range pageFiles {
		name := strings.TrimSuffix(path.Base(f), ".html")
		t, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := t.ParseFS(fsys, f); err != nil {
			return nil, fmt.Errorf("failed to parse page layout %s: %w", f, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Pages lists the page template names, sorted.
func (r *Renderer) Pages() []string {
	names := make([]string, 0, len(r.pages))
	for n := range r.pages {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a page template exists.
func (r *Renderer) Has(page string) bool {
	_, ok := r.pages[page]
	return ok
}

// Render executes page into w. Output is buffered so a template error never
// leaves a half-written page behind.
func (r *Renderer) Render(w io.Writer, page string, data any) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("layout '%s' not found", page)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, entryName, data); err != nil {
		return fmt.Errorf("failed to execute template '%s': %w", page, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// Markdown converts post content to HTML.
func (r *Renderer) Markdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown to HTML: %w", err)
	}
	return template.HTML(buf.String()), nil
}

func (r *Renderer) funcs() template.FuncMap {
	return template.FuncMap{
		"markdown":     r.Markdown,
		"typewriter":   reveal.TypeWriterHTML,
		"codereveal":   reveal.CodeRevealHTML,
		"icon":         iconHTML,
		"date":         LongDate,
		"categorySlug": func(c content.Category) string { return c.Slug() },
		"isActive":     isActive,
	}
}

func iconHTML(name string) template.HTML {
	svg, ok := content.Icon(name)
	if !ok {
		return ""
	}
	return svg
}

// isActive reports whether the nav link href covers the current path.
func isActive(href, current string) bool {
	if href == "/" {
		return current == "/"
	}
	return current == href || strings.HasPrefix(current, href+"/")
}
