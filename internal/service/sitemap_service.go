package service

import (
	"context"
	"encoding/xml"
	"time"

	"github.com/rs/zerolog"
	"github.com/vision4soccer-api/internal/config"
	"github.com/vision4soccer-api/internal/repository"
)

// staticRoute is one fixed page of the site with its crawl hints. The
// altGroup ties language variants of the same page together for hreflang.
type staticRoute struct {
	Path       string
	Priority   string
	ChangeFreq string
	AltGroup   []altLink
}

type altLink struct {
	Hreflang string
	Path     string
}

// The site's fixed pages. Dutch and English profile/youth pages are distinct
// URLs; the rest serve both languages from one URL.
var staticRoutes = []staticRoute{
	{Path: "/", Priority: "1.0", ChangeFreq: "weekly", AltGroup: sameURLAlternates("/")},
	{Path: "/profiel/", Priority: "0.9", ChangeFreq: "monthly", AltGroup: profileAlternates},
	{Path: "/profile/", Priority: "0.9", ChangeFreq: "monthly", AltGroup: profileAlternates},
	{Path: "/jeugd/", Priority: "0.8", ChangeFreq: "monthly", AltGroup: youthAlternates},
	{Path: "/youth/", Priority: "0.8", ChangeFreq: "monthly", AltGroup: youthAlternates},
	{Path: "/contact/", Priority: "0.7", ChangeFreq: "monthly", AltGroup: sameURLAlternates("/contact/")},
	{Path: "/articles/", Priority: "0.8", ChangeFreq: "weekly", AltGroup: sameURLAlternates("/articles/")},
}

var profileAlternates = []altLink{
	{Hreflang: "nl", Path: "/profiel/"},
	{Hreflang: "en", Path: "/profile/"},
}

var youthAlternates = []altLink{
	{Hreflang: "nl", Path: "/jeugd/"},
	{Hreflang: "en", Path: "/youth/"},
}

func sameURLAlternates(path string) []altLink {
	return []altLink{
		{Hreflang: "nl", Path: path},
		{Hreflang: "en", Path: path},
	}
}

// XML shapes for the sitemap protocol with xhtml hreflang extensions

type urlSet struct {
	XMLName    xml.Name     `xml:"urlset"`
	Xmlns      string       `xml:"xmlns,attr"`
	XmlnsXhtml string       `xml:"xmlns:xhtml,attr"`
	URLs       []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string      `xml:"loc"`
	LastMod    string      `xml:"lastmod"`
	ChangeFreq string      `xml:"changefreq"`
	Priority   string      `xml:"priority"`
	Alternates []xhtmlLink `xml:"xhtml:link"`
}

type xhtmlLink struct {
	Rel      string `xml:"rel,attr"`
	Hreflang string `xml:"hreflang,attr"`
	Href     string `xml:"href,attr"`
}

// sitemapService renders the sitemap from the static route table plus all
// published articles
type sitemapService struct {
	repo repository.ArticleRepository
	cfg  *config.SiteConfig
	log  zerolog.Logger
	now  func() time.Time
}

// NewSitemapService creates the sitemap service
func NewSitemapService(repo repository.ArticleRepository, cfg *config.SiteConfig, log zerolog.Logger) SitemapService {
	return &sitemapService{
		repo: repo,
		cfg:  cfg,
		log:  log.With().Str("service", "sitemap").Logger(),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// Generate renders the sitemap XML. A database failure degrades to the
// static-only sitemap rather than erroring, so crawlers always get a
// response even before the database exists.
func (s *sitemapService) Generate(ctx context.Context) ([]byte, error) {
	base := s.cfg.BaseURL
	nowStr := s.now().Format(time.RFC3339)

	set := urlSet{
		Xmlns:      "http://www.sitemaps.org/schemas/sitemap/0.9",
		XmlnsXhtml: "http://www.w3.org/1999/xhtml",
	}

	for _, route := range staticRoutes {
		u := sitemapURL{
			Loc:        base + route.Path,
			LastMod:    nowStr,
			ChangeFreq: route.ChangeFreq,
			Priority:   route.Priority,
		}
		for _, alt := range route.AltGroup {
			u.Alternates = append(u.Alternates, xhtmlLink{
				Rel:      "alternate",
				Hreflang: alt.Hreflang,
				Href:     base + alt.Path,
			})
		}
		set.URLs = append(set.URLs, u)
	}

	entries, err := s.repo.ListPublished(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("Failed to fetch articles for sitemap, serving static routes only")
		entries = nil
	}

	for _, entry := range entries {
		lastMod := nowStr
		switch {
		case entry.UpdatedAt != nil:
			lastMod = entry.UpdatedAt.UTC().Format(time.RFC3339)
		case entry.PublishedAt != nil:
			lastMod = entry.PublishedAt.UTC().Format(time.RFC3339)
		}

		language := entry.Language
		if language == "" {
			language = "nl"
		}

		loc := base + "/articles/" + entry.Slug
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        loc,
			LastMod:    lastMod,
			ChangeFreq: "monthly",
			Priority:   "0.6",
			Alternates: []xhtmlLink{
				{Rel: "alternate", Hreflang: language, Href: loc},
			},
		})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}

	return append([]byte(xml.Header), body...), nil
}
