package model

import (
	"time"

	"github.com/Bitlatte/petroweb/internal/content"
)

// SiteData holds all site-wide data shared by every page.
type SiteData struct {
	Title      string
	BaseURL    string
	Language   string
	MainMenu   []content.NavItem
	FooterMenu []content.NavGroup
	Contact    content.ContactInfo
	Categories []content.Category
	Year       int
}

// NewSiteData derives the site-wide data from a catalog.
func NewSiteData(title, baseURL, language string, cat *content.Catalog) *SiteData {
	return &SiteData{
		Title:      title,
		BaseURL:    baseURL,
		Language:   language,
		MainMenu:   cat.MainMenu,
		FooterMenu: cat.FooterMenu,
		Contact:    cat.Contact,
		Categories: content.Categories(),
		Year:       time.Now().Year(),
	}
}
