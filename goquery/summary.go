package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pagesift/pagesift"
)

var _ pagesift.SummaryExtractor = (*SummaryExtractor)(nil)

// SummaryExtractor assembles page metadata from meta tags, falling back to
// body content where a page carries none.
type SummaryExtractor struct{}

// NewSummaryExtractor creates a SummaryExtractor.
func NewSummaryExtractor() *SummaryExtractor {
	return &SummaryExtractor{}
}

// ExtractSummary reads the page's metadata. Description precedence is
// og:description, then the description meta tag, then twitter:description,
// then the first substantial body paragraph.
func (e *SummaryExtractor) ExtractSummary(html, pageURL string) (*pagesift.Summary, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, pagesift.Errorf(pagesift.EINVALID, "failed to parse HTML: %v", err)
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, pagesift.Errorf(pagesift.EINVALID, "invalid page URL: %v", err)
	}

	summary := &pagesift.Summary{
		Title:       "Unknown Website",
		Description: "No description available",
		URL:         pageURL,
		Domain:      base.Host,
		Language:    "Not specified",
		Author:      "Not specified",
		Publisher:   "Not specified",
	}

	if title := pageTitle(doc); title != "" {
		summary.Title = title
	}

	if desc := firstMeta(doc,
		`meta[property="og:description"]`,
		`meta[name="description"]`,
		`meta[name="twitter:description"]`,
	); desc != "" {
		summary.Description = desc
	} else if para := leadParagraph(doc); para != "" {
		summary.Description = para
	}

	if lang, ok := doc.Find("html").Attr("lang"); ok && lang != "" {
		summary.Language = lang
	} else if lang := firstMeta(doc, `meta[http-equiv="content-language"]`); lang != "" {
		summary.Language = lang
	}

	if author := firstMeta(doc, `meta[name="author"]`, `meta[property="article:author"]`); author != "" {
		summary.Author = author
	}
	if publisher := firstMeta(doc, `meta[property="article:publisher"]`); publisher != "" {
		summary.Publisher = publisher
	}

	if href, ok := doc.Find(`link[rel="icon"], link[rel="shortcut icon"]`).First().Attr("href"); ok {
		summary.Favicon = resolveLink(base, href)
	}
	if image := firstMeta(doc, `meta[property="og:image"]`, `meta[name="twitter:image"]`); image != "" {
		summary.Image = resolveLink(base, image)
	}

	summary.ThemeColor = firstMeta(doc, `meta[name="theme-color"]`)
	summary.Keywords = firstMeta(doc, `meta[name="keywords"]`)

	if name := firstMeta(doc, `meta[property="og:site_name"]`); name != "" {
		summary.SiteName = name
	} else {
		summary.SiteName = summary.Domain
	}

	summary.Type = pagesift.ClassifySiteType(pageURL, summary.Title, summary.Description)

	return summary, nil
}

// firstMeta returns the content attribute of the first matching meta tag
// that has one, in selector order.
func firstMeta(doc *goquery.Document, selectors ...string) string {
	for _, selector := range selectors {
		if content, ok := doc.Find(selector).First().Attr("content"); ok {
			if content = strings.TrimSpace(content); content != "" {
				return content
			}
		}
	}
	return ""
}

// leadParagraph finds the first body paragraph substantial enough to stand
// in for a missing meta description. Very short paragraphs are chrome;
// very long ones are body text, and get clipped.
func leadParagraph(doc *goquery.Document) string {
	const (
		minLen  = 50
		maxLen  = 500
		clipLen = 300
	)
	text := ""
	doc.Find("p").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		if i >= 5 {
			return false
		}
		candidate := normalizeSpace(sel.Text())
		n := len([]rune(candidate))
		if n > minLen && n < maxLen {
			if n > clipLen {
				candidate = string([]rune(candidate)[:clipLen]) + "..."
			}
			text = candidate
			return false
		}
		return true
	})
	return text
}
