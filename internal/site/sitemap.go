package site

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/Bitlatte/petroweb/internal/config"
)

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc      string `xml:"loc"`
	LastMod  string `xml:"lastmod,omitempty"`
	Priority string `xml:"priority"`
}

// WriteSitemap writes the sitemap of routes.
func WriteSitemap(w io.Writer, cfg config.Config, routes []Route) error {
	set := urlSet{XMLNS: sitemapNS}
	for _, r := range routes {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:      cfg.AbsURL(r.Path),
			LastMod:  r.LastMod,
			Priority: fmt.Sprintf("%.1f", r.Priority),
		})
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return fmt.Errorf("failed to encode sitemap: %w", err)
	}
	return enc.Flush()
}

// WriteRobots writes robots.txt, pointing crawlers at the sitemap when a
// base URL is configured.
func WriteRobots(w io.Writer, cfg config.Config) error {
	var b strings.Builder
	b.WriteString("User-agent: *\nAllow: /\nDisallow: /api/\n")
	if cfg.BaseURL != "" {
		fmt.Fprintf(&b, "\nSitemap: %s\n", cfg.AbsURL("/sitemap.xml"))
	}
	_, err := io.WriteString(w, b.String())
	return err
}
