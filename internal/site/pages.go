// Package site builds page view models from the catalog and renders the
// whole site to disk.
package site

import (
	"github.com/Bitlatte/petroweb/internal/config"
	"github.com/Bitlatte/petroweb/internal/content"
	"github.com/Bitlatte/petroweb/internal/model"
)

const latestPostsOnHome = 3

// Pages builds page data for one catalog. Every method returns a fresh
// PageData so callers may fill in request specific fields.
type Pages struct {
	cfg  config.Config
	cat  *content.Catalog
	site *model.SiteData
}

func NewPages(cfg config.Config, cat *content.Catalog) *Pages {
	return &Pages{
		cfg:  cfg,
		cat:  cat,
		site: model.NewSiteData(cfg.SiteTitle, cfg.BaseURL, cfg.Language, cat),
	}
}

// Catalog returns the catalog the pages are built from.
func (p *Pages) Catalog() *content.Catalog { return p.cat }

func (p *Pages) page(path, title, description string) *model.PageData {
	return &model.PageData{
		Site: p.site,
		Path: path,
		Meta: model.Meta{
			Title:       title,
			Description: description,
			Canonical:   p.cfg.AbsURL(path),
		},
	}
}

func (p *Pages) Home() *model.PageData {
	d := p.page("/", "", "Servicios integrales para la industria del petróleo y el gas: perforación, mantenimiento, producción y gestión ambiental.")
	latest := p.cat.Blog.Posts()
	if len(latest) > latestPostsOnHome {
		latest = latest[:latestPostsOnHome]
	}
	d.Home = &model.HomeView{
		Headline:    "Energía que impulsa el futuro",
		Tagline:     "Soluciones seguras y eficientes para cada etapa de sus operaciones de petróleo y gas.",
		Services:    p.cat.Services,
		LatestPosts: latest,
		Certs:       p.cat.Certifications,
	}
	return d
}

func (p *Pages) About() *model.PageData {
	d := p.page("/nosotros", "Nosotros", "Conozca nuestra historia, valores y certificaciones.")
	d.Certs = p.cat.Certifications
	return d
}

func (p *Pages) Services() *model.PageData {
	d := p.page("/servicios", "Servicios", "Perforación, mantenimiento, optimización de producción, gestión ambiental, logística e ingeniería.")
	d.Services = p.cat.Services
	return d
}

// Service returns false for an unknown slug.
func (p *Pages) Service(slug string) (*model.PageData, bool) {
	s, ok := content.ServiceBySlug(p.cat.Services, slug)
	if !ok {
		return nil, false
	}
	d := p.page(s.Permalink(), s.Title, s.Summary)
	d.Service = &s
	return d, true
}

// Blog lists the posts of category c matching query.
func (p *Pages) Blog(c content.Category, query string) *model.PageData {
	path := "/blog"
	title := "Blog"
	if c.Valid() {
		path = "/blog/categoria/" + c.Slug()
		title = "Blog: " + string(c)
	}
	d := p.page(path, title, "Artículos sobre tecnología, seguridad y operaciones en la industria energética.")
	d.Blog = &model.BlogView{
		Category: c,
		Query:    query,
		Posts:    content.Search(p.cat.Blog.PostsByCategory(c), query),
		Counts:   p.cat.Blog.CategoryCounts(),
	}
	if query != "" {
		d.Meta.NoIndex = true
	}
	// An unknown category has no page of its own to point at.
	if c != content.All && !c.Valid() {
		d.Meta.Canonical = ""
		d.Meta.NoIndex = true
	}
	return d
}

// Post returns false when no post has the slug.
func (p *Pages) Post(slug string) (*model.PageData, bool) {
	post, ok := p.cat.Blog.PostBySlug(slug)
	if !ok {
		return nil, false
	}
	d := p.page(post.Permalink(), post.Title, post.Excerpt)
	d.Meta.OGType = "article"
	d.Post = &model.PostView{
		Post:    post,
		Related: p.cat.Blog.RelatedPosts(slug, p.cfg.RelatedLimit),
	}
	return d, true
}

func (p *Pages) Careers(f content.JobFilter) *model.PageData {
	d := p.page("/carreras", "Carreras", "Búsquedas laborales abiertas en operaciones, seguridad, tecnología y mantenimiento.")
	if f.Department == "" {
		f.Department = string(content.All)
	}
	if f.Location == "" {
		f.Location = string(content.All)
	}
	d.Careers = &model.CareersView{
		Filter:      f,
		Jobs:        content.FilterJobs(p.cat.Jobs, f),
		Departments: content.Departments(p.cat.Jobs),
		Locations:   content.Locations(p.cat.Jobs),
	}
	return d
}

func (p *Pages) Contact() *model.PageData {
	d := p.page("/contacto", "Contacto", "Escríbanos o llámenos: un especialista responderá su consulta.")
	d.Contact = &model.ContactView{}
	return d
}

func (p *Pages) NotFound(path string) *model.PageData {
	d := p.page(path, "Página no encontrada", "")
	d.Meta.Canonical = ""
	d.Meta.NoIndex = true
	return d
}
