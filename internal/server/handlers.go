package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Bitlatte/petroweb/internal/content"
	"github.com/Bitlatte/petroweb/internal/model"
	"github.com/Bitlatte/petroweb/internal/render"
	"github.com/Bitlatte/petroweb/internal/site"
)

func (s *Server) current() *site.Pages { return s.pages.Load() }

// page renders d with the pending flash messages attached.
func (s *Server) page(c *gin.Context, status int, layout string, d *model.PageData) {
	d.Flash = s.popFlashes(c)
	c.HTML(status, layout, d)
}

func (s *Server) home(c *gin.Context) {
	s.page(c, http.StatusOK, render.PageHome, s.current().Home())
}

func (s *Server) about(c *gin.Context) {
	s.page(c, http.StatusOK, render.PageAbout, s.current().About())
}

func (s *Server) services(c *gin.Context) {
	s.page(c, http.StatusOK, render.PageServices, s.current().Services())
}

func (s *Server) service(c *gin.Context) {
	d, ok := s.current().Service(c.Param("slug"))
	if !ok {
		s.notFound(c)
		return
	}
	s.page(c, http.StatusOK, render.PageService, d)
}

// categoryParam reads ?categoria= as either a category slug or its exact
// label. An unknown value is kept as is, so it lists nothing.
func categoryParam(c *gin.Context) content.Category {
	raw := c.Query("categoria")
	if raw == "" {
		return content.All
	}
	if cat, ok := content.CategoryBySlug(raw); ok {
		return cat
	}
	return content.Category(raw)
}

func (s *Server) blog(c *gin.Context) {
	s.page(c, http.StatusOK, render.PageBlog, s.current().Blog(categoryParam(c), c.Query("q")))
}

func (s *Server) blogCategory(c *gin.Context) {
	category, ok := content.CategoryBySlug(c.Param("category"))
	if !ok {
		s.notFound(c)
		return
	}
	s.page(c, http.StatusOK, render.PageBlog, s.current().Blog(category, c.Query("q")))
}

func (s *Server) post(c *gin.Context) {
	d, ok := s.current().Post(c.Param("slug"))
	if !ok {
		s.notFound(c)
		return
	}
	s.page(c, http.StatusOK, render.PagePost, d)
}

func (s *Server) careers(c *gin.Context) {
	f := content.JobFilter{
		Query:      c.Query("q"),
		Department: c.Query("departamento"),
		Location:   c.Query("ubicacion"),
	}
	s.page(c, http.StatusOK, render.PageCareers, s.current().Careers(f))
}

func (s *Server) contactForm(c *gin.Context) {
	s.page(c, http.StatusOK, render.PageContact, s.current().Contact())
}

func (s *Server) notFound(c *gin.Context) {
	s.page(c, http.StatusNotFound, render.PageNotFound, s.current().NotFound(c.Request.URL.Path))
}

func (s *Server) sitemap(c *gin.Context) {
	c.Header("Content-Type", "application/xml; charset=utf-8")
	if err := site.WriteSitemap(c.Writer, s.cfg, s.current().Routes()); err != nil {
		_ = c.Error(err)
	}
}

func (s *Server) robots(c *gin.Context) {
	c.Header("Content-Type", "text/plain; charset=utf-8")
	if err := site.WriteRobots(c.Writer, s.cfg); err != nil {
		_ = c.Error(err)
	}
}

func (s *Server) apiPosts(c *gin.Context) {
	blog := s.current().Catalog().Blog
	c.JSON(http.StatusOK, content.Search(blog.PostsByCategory(categoryParam(c)), c.Query("q")))
}

func (s *Server) apiPost(c *gin.Context) {
	blog := s.current().Catalog().Blog
	post, ok := blog.PostBySlug(c.Param("slug"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"post":    post,
		"related": blog.RelatedPosts(post.Slug, s.cfg.RelatedLimit),
	})
}
