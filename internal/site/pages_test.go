package site

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bitlatte/petroweb/internal/config"
	"github.com/Bitlatte/petroweb/internal/content"
)

func TestPages_Post(t *testing.T) {
	cfg := testConfig(t)
	cfg.RelatedLimit = 1
	p := NewPages(cfg, content.Default())

	d, ok := p.Post("transformacion-digital-en-el-sector-petrolero")
	require.True(t, ok)
	assert.Equal(t, "article", d.Meta.OGType)
	require.Len(t, d.Post.Related, 1)
	assert.Equal(t, "mantenimiento-predictivo-con-sensores-iot", d.Post.Related[0].Slug)

	_, ok = p.Post("no-existe")
	assert.False(t, ok)
}

func TestPages_PostZeroRelatedLimit(t *testing.T) {
	cfg := testConfig(t)
	cfg.RelatedLimit = 0
	p := NewPages(cfg, content.Default())

	d, ok := p.Post("transformacion-digital-en-el-sector-petrolero")
	require.True(t, ok)
	assert.Empty(t, d.Post.Related)
}

func TestPages_BlogUnknownCategory(t *testing.T) {
	p := NewPages(testConfig(t), content.Default())

	d := p.Blog(content.Category("Cocina"), "")
	assert.Equal(t, "/blog", d.Path)
	assert.Empty(t, d.Blog.Posts)
	assert.Empty(t, d.Meta.Canonical)
	assert.True(t, d.Meta.NoIndex)

	known := p.Blog(content.Safety, "")
	assert.NotEmpty(t, known.Meta.Canonical)
	assert.False(t, known.Meta.NoIndex)
}

func TestPages_Blog(t *testing.T) {
	p := NewPages(testConfig(t), content.Default())

	all := p.Blog(content.All, "")
	assert.Equal(t, "/blog", all.Path)
	assert.Len(t, all.Blog.Posts, content.Default().Blog.Len())
	assert.False(t, all.Meta.NoIndex)

	safety := p.Blog(content.Safety, "cultura")
	assert.Equal(t, "/blog/categoria/seguridad", safety.Path)
	require.Len(t, safety.Blog.Posts, 1)
	assert.Equal(t, "cultura-de-seguridad-en-equipos-de-campo", safety.Blog.Posts[0].Slug)
	assert.True(t, safety.Meta.NoIndex)
}

func TestPages_Careers(t *testing.T) {
	p := NewPages(testConfig(t), content.Default())
	d := p.Careers(content.JobFilter{Location: "Neuquén"})
	assert.Equal(t, "Todos", d.Careers.Filter.Department)
	for _, j := range d.Careers.Jobs {
		assert.Equal(t, "Neuquén", j.Location)
	}
	assert.Equal(t, "Todos", d.Careers.Locations[0])
}

func TestPages_Service(t *testing.T) {
	p := NewPages(testConfig(t), content.Default())
	d, ok := p.Service("logistica-petrolera")
	require.True(t, ok)
	assert.Equal(t, "Logística petrolera", d.Meta.Title)

	_, ok = p.Service("nada")
	assert.False(t, ok)
}

func TestWriteRobots_NoBaseURL(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRobots(&buf, config.Config{}))
	assert.NotContains(t, buf.String(), "Sitemap:")
	assert.Contains(t, buf.String(), "Disallow: /api/")
}
