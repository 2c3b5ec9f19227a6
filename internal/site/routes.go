package site

import (
	"github.com/Bitlatte/petroweb/internal/content"
	"github.com/Bitlatte/petroweb/internal/model"
	"github.com/Bitlatte/petroweb/internal/render"
)

// Route is one statically rendered page.
type Route struct {
	Path     string
	Layout   string
	Data     *model.PageData
	Priority float64
	LastMod  string
}

// Routes enumerates every indexable page of the site, in a stable order.
func (p *Pages) Routes() []Route {
	routes := []Route{
		{Path: "/", Layout: render.PageHome, Data: p.Home(), Priority: 1.0},
		{Path: "/nosotros", Layout: render.PageAbout, Data: p.About(), Priority: 0.8},
		{Path: "/servicios", Layout: render.PageServices, Data: p.Services(), Priority: 0.9},
	}
	for _, s := range p.cat.Services {
		d, _ := p.Service(s.Slug)
		routes = append(routes, Route{Path: s.Permalink(), Layout: render.PageService, Data: d, Priority: 0.8})
	}

	routes = append(routes, Route{Path: "/blog", Layout: render.PageBlog, Data: p.Blog(content.All, ""), Priority: 0.8})
	counts := p.cat.Blog.CategoryCounts()
	for _, c := range content.Categories() {
		if c == content.All || counts[c] == 0 {
			continue
		}
		routes = append(routes, Route{Path: "/blog/categoria/" + c.Slug(), Layout: render.PageBlog, Data: p.Blog(c, ""), Priority: 0.5})
	}
	for _, post := range p.cat.Blog.Posts() {
		d, _ := p.Post(post.Slug)
		routes = append(routes, Route{Path: post.Permalink(), Layout: render.PagePost, Data: d, Priority: 0.7, LastMod: post.Date})
	}

	return append(routes,
		Route{Path: "/carreras", Layout: render.PageCareers, Data: p.Careers(content.JobFilter{}), Priority: 0.6},
		Route{Path: "/contacto", Layout: render.PageContact, Data: p.Contact(), Priority: 0.6},
	)
}
