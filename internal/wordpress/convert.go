package wordpress

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/vision4soccer-api/internal/models"
)

var (
	commentRegex = regexp.MustCompile(`(?s)<!--.*?-->`)
	scriptRegex  = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleRegex   = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	tagRegex     = regexp.MustCompile(`<[^>]+>`)
	slugRegex    = regexp.MustCompile(`[^a-z0-9]+`)
	accentRegex  = regexp.MustCompile(`[àáâãäåæçèéêëìíîïðñòóôõöøùúûüýþÿ]`)
	latinRegex   = regexp.MustCompile(`[a-zA-Z]`)
)

const (
	// MySQL's zero-date sentinel for "no date"
	zeroDate = "0000-00-00 00:00:00"

	legacyDateLayout = "2006-01-02 15:04:05"

	// derived excerpts take this many characters of content plus an ellipsis
	excerptLength = 200
)

// CleanHTML strips HTML comments, script and style blocks, leaving all other
// markup in place
func CleanHTML(text string) string {
	text = commentRegex.ReplaceAllString(text, "")
	text = scriptRegex.ReplaceAllString(text, "")
	text = styleRegex.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// StripTags removes all markup
func StripTags(text string) string {
	return tagRegex.ReplaceAllString(text, "")
}

// Slugify derives a URL-safe slug from a title: lowercase, runs of
// non-alphanumerics collapsed to single hyphens, edges trimmed
func Slugify(title string) string {
	slug := slugRegex.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}

// DetectLanguage classifies a title as "en" or "nl". Titles containing Latin
// letters and none of the accented characters read as English; everything
// else is Dutch. Crude, but it is the behavior the migrated site shipped
// with, and the field is always populated.
func DetectLanguage(title string) string {
	if latinRegex.MatchString(title) && !accentRegex.MatchString(strings.ToLower(title)) {
		return "en"
	}
	return "nl"
}

// FeaturedImage returns the src attribute of the first <img> in the raw
// (pre-clean) content, or ""
func FeaturedImage(content string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return ""
	}
	src, _ := doc.Find("img").First().Attr("src")
	return src
}

// Converter maps legacy posts onto article records
type Converter struct {
	// DefaultAuthor is the display name used when the author id resolves to nothing
	DefaultAuthor string
	// Authors is the per-run user id -> display name lookup table
	Authors map[int64]string
	// Now is injectable for tests; defaults to time.Now
	Now func() time.Time
}

func (c *Converter) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now().UTC()
}

// Convert maps one legacy post to an article. The result carries no id or
// server timestamps; the caller assigns those at insert time.
func (c *Converter) Convert(post LegacyPost) *models.Article {
	content := CleanHTML(post.Content)

	excerpt := strings.TrimSpace(StripTags(CleanHTML(post.Excerpt)))
	if excerpt == "" {
		head := []rune(content)
		if len(head) > excerptLength {
			head = head[:excerptLength]
		}
		excerpt = StripTags(string(head)) + "..."
	}

	title := post.Title
	if title == "" {
		title = "Untitled"
	}

	slug := post.Name
	if slug == "" {
		slug = Slugify(post.Title)
		if slug == "" {
			slug = fmt.Sprintf("post-%d", post.ID)
		}
	}

	author := c.Authors[post.AuthorID]
	if author == "" {
		author = c.DefaultAuthor
	}

	publishedAt := c.now()
	if post.Date != "" && post.Date != zeroDate {
		if ts, err := time.Parse(legacyDateLayout, post.Date); err == nil {
			publishedAt = ts.UTC()
		}
	}

	article := &models.Article{
		Title:       title,
		Slug:        slug,
		Content:     content,
		Excerpt:     &excerpt,
		Author:      &author,
		Language:    DetectLanguage(post.Title),
		Published:   true,
		PublishedAt: &publishedAt,
	}

	if image := FeaturedImage(post.Content); image != "" {
		article.FeaturedImageURL = &image
	}

	return article
}
