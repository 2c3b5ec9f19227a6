package model

import "github.com/Bitlatte/petroweb/internal/content"

// Meta is the SEO metadata of a page.
type Meta struct {
	Title       string
	Description string
	Canonical   string
	OGType      string
	NoIndex     bool
}

// PageData is the data every page template receives. Only the fields the
// page needs are set.
type PageData struct {
	Site  *SiteData
	Meta  Meta
	Path  string
	Flash []string

	Home     *HomeView
	Services []content.Service
	Service  *content.Service
	Certs    []content.Certification
	Blog     *BlogView
	Post     *PostView
	Careers  *CareersView
	Contact  *ContactView
}

type HomeView struct {
	Headline    string
	Tagline     string
	Services    []content.Service
	LatestPosts []content.Post
	Certs       []content.Certification
}

type BlogView struct {
	Category content.Category
	Query    string
	Posts    []content.Post
	Counts   map[content.Category]int
}

type PostView struct {
	Post    content.Post
	Related []content.Post
}

type CareersView struct {
	Filter      content.JobFilter
	Jobs        []content.Job
	Departments []string
	Locations   []string
	Apply       *ApplicationForm
	ApplyJobID  string
	Errors      map[string]string
}

type ContactView struct {
	Form   ContactForm
	Errors map[string]string
}

// ContactForm is the contact page form.
type ContactForm struct {
	Name    string `form:"nombre" json:"name" binding:"required,max=120"`
	Email   string `form:"email" json:"email" binding:"required,email"`
	Phone   string `form:"telefono" json:"phone" binding:"omitempty,max=40"`
	Company string `form:"empresa" json:"company" binding:"omitempty,max=120"`
	Subject string `form:"asunto" json:"subject" binding:"required,max=160"`
	Message string `form:"mensaje" json:"message" binding:"required,min=10,max=5000"`
}

// ApplicationForm is the job application form.
type ApplicationForm struct {
	Name     string `form:"nombre" json:"name" binding:"required,max=120"`
	Email    string `form:"email" json:"email" binding:"required,email"`
	Phone    string `form:"telefono" json:"phone" binding:"required,max=40"`
	LinkedIn string `form:"linkedin" json:"linkedin" binding:"omitempty,url"`
	Message  string `form:"mensaje" json:"message" binding:"omitempty,max=5000"`
}
