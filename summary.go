package pagesift

import "strings"

// SiteType is a coarse classification of what kind of site a page belongs to.
type SiteType string

// Site types recognized by ClassifySiteType.
const (
	SiteTypeGeneral      SiteType = "General Website"
	SiteTypeJobPortal    SiteType = "Job Portal"
	SiteTypeSocialMedia  SiteType = "Social Media Platform"
	SiteTypeNews         SiteType = "News Website"
	SiteTypeBlog         SiteType = "Blog/Article Platform"
	SiteTypeCodeRepo     SiteType = "Code Repository"
	SiteTypeQA           SiteType = "Q&A Platform"
	SiteTypeVideo        SiteType = "Video Platform"
	SiteTypeEcommerce    SiteType = "E-commerce"
	SiteTypeEducational  SiteType = "Educational Platform"
	SiteTypeTechnology   SiteType = "Technology Website"
	SiteTypeEncyclopedia SiteType = "Encyclopedia"
	SiteTypeSearch       SiteType = "Web Search Results"
)

// Summary describes the page a scrape ran against, assembled from the
// page's meta tags before item extraction.
type Summary struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	URL           string   `json:"url"`
	Type          SiteType `json:"type"`
	Domain        string   `json:"domain"`
	SiteName      string   `json:"site_name"`
	Language      string   `json:"language"`
	Author        string   `json:"author"`
	Publisher     string   `json:"publisher"`
	Favicon       string   `json:"favicon,omitempty"`
	Image         string   `json:"image,omitempty"`
	ThemeColor    string   `json:"theme_color,omitempty"`
	Keywords      string   `json:"keywords,omitempty"`
	LoginRequired bool     `json:"login_required,omitempty"`
}

// siteTypeURLRules classify by URL substring; checked before content rules.
var siteTypeURLRules = []struct {
	Type     SiteType
	Patterns []string
}{
	{SiteTypeJobPortal, []string{"naukri.com", "indeed.com", "linkedin.com/jobs"}},
	{SiteTypeSocialMedia, []string{"instagram.com", "facebook.com", "twitter.com", "x.com"}},
	{SiteTypeNews, []string{"news", "bbc.com", "cnn.com"}},
	{SiteTypeBlog, []string{"blog", "medium.com", "wordpress.com"}},
	{SiteTypeCodeRepo, []string{"github.com", "gitlab.com"}},
	{SiteTypeQA, []string{"stackoverflow.com", "stackexchange.com"}},
	{SiteTypeVideo, []string{"youtube.com", "vimeo.com"}},
	{SiteTypeEncyclopedia, []string{"wikipedia.org"}},
}

// siteTypeContentRules classify by words in the page description.
var siteTypeContentRules = []struct {
	Type  SiteType
	Words []string
}{
	{SiteTypeVideo, []string{"video"}},
	{SiteTypeEcommerce, []string{"shop", "buy", "product", "store", "cart", "ecommerce"}},
	{SiteTypeEducational, []string{"learn", "course", "tutorial", "education", "university", "school"}},
	{SiteTypeTechnology, []string{"tech", "technology", "developer", "programming", "code"}},
}

// ClassifySiteType guesses what kind of site a page belongs to from its URL,
// title and description. URL patterns take precedence over content words;
// SiteTypeGeneral is the fallback.
func ClassifySiteType(pageURL, title, description string) SiteType {
	urlLower := strings.ToLower(pageURL)
	titleLower := strings.ToLower(title)
	descLower := strings.ToLower(description)

	for _, rule := range siteTypeURLRules {
		for _, p := range rule.Patterns {
			if strings.Contains(urlLower, p) {
				return rule.Type
			}
			// "news" in the title also marks a news site
			if rule.Type == SiteTypeNews && strings.Contains(titleLower, p) {
				return rule.Type
			}
		}
	}
	for _, rule := range siteTypeContentRules {
		for _, w := range rule.Words {
			if strings.Contains(descLower, w) {
				return rule.Type
			}
		}
	}
	return SiteTypeGeneral
}
