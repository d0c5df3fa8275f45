package goquery

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pagesift/pagesift"
)

// maxJobs bounds how many listings one job-board page contributes.
const maxJobs = 20

var _ pagesift.ItemExtractor = (*JobBoardExtractor)(nil)

// JobBoardExtractor targets the listing structures of known job boards
// (Naukri-style jobTuple/jobCard markup). The dynamic scrape path tries it
// before the generic cascade; on pages without job markup it yields nothing
// and the cascade takes over.
type JobBoardExtractor struct{}

// NewJobBoardExtractor creates a JobBoardExtractor.
func NewJobBoardExtractor() *JobBoardExtractor {
	return &JobBoardExtractor{}
}

// Extract pulls job listings out of rendered job-board HTML.
func (e *JobBoardExtractor) Extract(html, pageURL string) ([]pagesift.Item, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, pagesift.Errorf(pagesift.EINVALID, "invalid page URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, pagesift.Errorf(pagesift.EINVALID, "failed to parse HTML: %v", err)
	}

	host := pagesift.SourceLabel(pageURL)

	var items []pagesift.Item
	doc.Find("div.jobTuple, article.jobCard, div.srp-jobtuple-wrapper").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		title := firstText(sel, "h2.jobTitle, a.jobTitle, span.jobTitle, a.title")
		if title == "" {
			return true
		}

		company := firstText(sel, "span.companyName, a.companyName, a.comp-name")
		if company == "" {
			company = host
		}

		experience := firstText(sel, "span.experience, span.exp, span.expwdth")
		if experience == "" {
			experience = "N/A"
		}
		salary := firstText(sel, "span.salary, span.salaryText, span.sal")
		if salary == "" {
			salary = "Not disclosed"
		}

		link := ""
		if href, ok := sel.Find("a.jobTitle, h2.jobTitle a, a.title").First().Attr("href"); ok {
			link = resolveLink(base, href)
		}
		if link == "" {
			link = containerLink(sel, base)
		}

		items = append(items, pagesift.Item{
			Title:   title,
			Company: company,
			Snippet: fmt.Sprintf("Experience: %s | Salary: %s", experience, salary),
			Link:    link,
		})
		return len(items) < maxJobs
	})

	return finalizeItems(items, maxJobs), nil
}
