package render

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bitlatte/petroweb/internal/content"
	"github.com/Bitlatte/petroweb/internal/model"
)

func pageData(path string) *model.PageData {
	cat := content.Default()
	return &model.PageData{
		Site: model.NewSiteData("Andes OGS", "", "es", cat),
		Path: path,
		Meta: model.Meta{Title: "Prueba"},
	}
}

func TestNew_AllPages(t *testing.T) {
	r, err := New()
	require.NoError(t, err)
	for _, page := range []string{PageHome, PageAbout, PageServices, PageService, PageBlog, PagePost, PageCareers, PageContact, PageNotFound} {
		assert.True(t, r.Has(page), page)
	}
	assert.Len(t, r.Pages(), 9)
}

func TestRender_Post(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	post, ok := content.PostBySlug("optimizacion-de-pozos-maduros")
	require.True(t, ok)
	d := pageData(post.Permalink())
	d.Post = &model.PostView{Post: post}

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, PagePost, d))
	out := buf.String()

	assert.Contains(t, out, "<title>Prueba | Andes OGS</title>")
	assert.Contains(t, out, "<li>Bombeo electrosumergible</li>")
	assert.Contains(t, out, "10 de febrero de 2024")
	assert.Contains(t, out, `href="/blog/categoria/operaciones"`)
	assert.Contains(t, out, `aria-current="page"`)
	assert.NotContains(t, out, "Artículos relacionados")
}

func TestRender_ContactErrors(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	d := pageData("/contacto")
	d.Contact = &model.ContactView{
		Form:   model.ContactForm{Name: `<script>alert(1)</script>`},
		Errors: map[string]string{"email": "Ingrese un email válido."},
	}
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, PageContact, d))
	out := buf.String()
	assert.Contains(t, out, "Ingrese un email válido.")
	assert.NotContains(t, out, "<script>alert(1)</script>")
}

func TestRender_Unknown(t *testing.T) {
	r, err := New()
	require.NoError(t, err)
	assert.Error(t, r.Render(&bytes.Buffer{}, "nope", nil))
}

func TestRender_FailureWritesNothing(t *testing.T) {
	fsys := fstest.MapFS{
		"base.html":          {Data: []byte(`{{define "base"}}<p>start</p>{{template "content" .}}{{end}}`)},
		"partials/meta.html": {Data: []byte(`{{define "meta"}}{{end}}`)},
		"pages/broken.html":  {Data: []byte(`{{define "content"}}{{.Missing.Field}}{{end}}`)},
	}
	r, err := NewFS(fsys)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.Error(t, r.Render(&buf, "broken", struct{}{}))
	assert.Zero(t, buf.Len())
}

func TestMarkdown(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	html, err := r.Markdown("# Título\n\n## Sección uno\n\n- a\n- b\n\n<script>x</script>")
	require.NoError(t, err)
	out := string(html)
	assert.Contains(t, out, "<h1 id=")
	assert.Contains(t, out, "Sección uno</h2>")
	assert.Equal(t, 2, strings.Count(out, "<li>"))
	assert.NotContains(t, out, "<script>")
}

func TestLongDate(t *testing.T) {
	assert.Equal(t, "15 de marzo de 2024", LongDate("2024-03-15"))
	assert.Equal(t, "1 de diciembre de 2023", LongDate("2023-12-01"))
	assert.Equal(t, "pronto", LongDate("pronto"))
}

func TestIsActive(t *testing.T) {
	assert.True(t, isActive("/", "/"))
	assert.False(t, isActive("/", "/blog"))
	assert.True(t, isActive("/blog", "/blog/algo"))
	assert.False(t, isActive("/blog", "/blogger"))
}
