package pagesift

import "strings"

// Category is one of the fixed topical labels items are bucketed under.
type Category string

// The nine categories, in the priority order Categorize checks them.
// CategoryTech is the unconditional fallback.
const (
	CategoryAI          Category = "AI"
	CategoryStartups    Category = "Startups"
	CategoryTutorials   Category = "Tutorials"
	CategoryOpenSource  Category = "Open Source"
	CategoryProgramming Category = "Programming"
	CategoryWeb         Category = "Web"
	CategorySecurity    Category = "Security"
	CategoryJobs        Category = "Jobs"
	CategoryTech        Category = "Tech"
)

// CategoryRule pairs a category with the title keywords that select it.
type CategoryRule struct {
	Category Category
	Keywords []string
}

// CategoryRules is the ordered dispatch table behind Categorize. The order
// is part of the contract: the first rule with a keyword present in the
// title wins, so a title matching both AI and Jobs keywords files under AI.
// Keyword sets overlap on purpose ("js" under Programming vs "css"/"nextjs"
// under Web); ordering, not exclusivity, resolves the ambiguity.
var CategoryRules = []CategoryRule{
	{CategoryAI, []string{"ai", "machine learning", "neural", "gpt", "llm", "transformer", "deep learning", "nlp", "chatgpt", "claude", "model", "algorithm"}},
	{CategoryStartups, []string{"startup", "founder", "funding", "raised", "series", "vc", "investment", "exit", "acquisition", "pivot", "$", "million", "billion", "ipo"}},
	{CategoryTutorials, []string{"tutorial", "guide", "how to", "learn", "beginner", "tips", "best practices", "course", "introduction", "getting started"}},
	{CategoryOpenSource, []string{"open source", "github", "repo", "library", "framework", "package", "tool", "project", "release", "version"}},
	{CategoryProgramming, []string{"rust", "python", "javascript", "js", "go", "java", "c++", "typescript", "ruby", "php", "kotlin", "swift", "golang"}},
	{CategoryWeb, []string{"react", "vue", "angular", "html", "css", "tailwind", "nextjs", "svelte", "web", "frontend", "browser"}},
	{CategorySecurity, []string{"security", "hack", "breach", "vulnerability", "exploit", "bug", "ssl", "crypto", "password", "privacy"}},
	{CategoryJobs, []string{"job", "hiring", "recruiter", "developer", "engineer", "position", "vacancy", "role", "opening", "apply", "fresher"}},
}

// Categorize assigns a title to exactly one category. Matching is a
// case-insensitive substring search over CategoryRules in order;
// CategoryTech is returned iff no rule matches.
//
// Two-letter keywords ("ai", "go", "js", "vc") match on word boundaries
// only: without that, "raises" would trip "ai" and every "Google" headline
// would trip "go". Longer keywords stay plain substrings, which keeps the
// documented overlaps ("c++" inside "c++23", "css" inside "tailwindcss").
func Categorize(title string) Category {
	lower := strings.ToLower(title)
	for _, rule := range CategoryRules {
		for _, keyword := range rule.Keywords {
			if matchKeyword(lower, keyword) {
				return rule.Category
			}
		}
	}
	return CategoryTech
}

// matchKeyword reports whether keyword occurs in the lowercased title.
func matchKeyword(lower, keyword string) bool {
	if len(keyword) > 2 || !isAlpha(keyword) {
		return strings.Contains(lower, keyword)
	}
	for start := 0; ; {
		i := strings.Index(lower[start:], keyword)
		if i < 0 {
			return false
		}
		i += start
		if !adjacentWordChar(lower, i-1) && !adjacentWordChar(lower, i+len(keyword)) {
			return true
		}
		start = i + 1
	}
}

// adjacentWordChar reports whether position i holds a letter or digit.
func adjacentWordChar(s string, i int) bool {
	if i < 0 || i >= len(s) {
		return false
	}
	c := s[i]
	return c >= 'a' && c <= 'z' || c >= '0' && c <= '9'
}

func isAlpha(s string) bool {
	for _, c := range s {
		if c < 'a' || c > 'z' {
			return false
		}
	}
	return true
}

// Categories returns all nine categories in priority order, fallback last.
func Categories() []Category {
	out := make([]Category, 0, len(CategoryRules)+1)
	for _, rule := range CategoryRules {
		out = append(out, rule.Category)
	}
	return append(out, CategoryTech)
}
