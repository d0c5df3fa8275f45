package pagesift

import "strings"

// MaxItems bounds the number of items a single extraction may return.
const MaxItems = 30

// SnippetMaxLen bounds the length of an item snippet in runes.
const SnippetMaxLen = 100

// Item is one piece of content extracted from a page.
type Item struct {
	Title    string `json:"title"`
	Company  string `json:"company"`
	Snippet  string `json:"snippet"`
	Link     string `json:"link"`
	Score    string `json:"score,omitempty"`
	Comments string `json:"comments,omitempty"`
}

// Validate returns an error if the item would not survive into a result.
// Title and Link are required; everything else is best effort.
func (i *Item) Validate() error {
	if strings.TrimSpace(i.Title) == "" {
		return Errorf(EINVALID, "item title required")
	}
	if i.Link == "" {
		return Errorf(EINVALID, "item link required")
	}
	return nil
}

// Result is the categorized output of one scrape request. Result values are
// request-scoped: created during a single call and never persisted.
//
// Items holds extracted items bucketed by category, insertion order
// preserved within each bucket. Categories with no items are absent from
// the map rather than present with an empty slice.
type Result struct {
	Summary *Summary
	Items   map[Category][]Item
}

// Len returns the total number of items across all categories.
func (r *Result) Len() int {
	n := 0
	for _, items := range r.Items {
		n += len(items)
	}
	return n
}

// Aggregate buckets items by the category of their title, preserving input
// order within each bucket.
func Aggregate(items []Item) map[Category][]Item {
	out := make(map[Category][]Item)
	for _, item := range items {
		c := Categorize(item.Title)
		out[c] = append(out[c], item)
	}
	return out
}

// TruncateSnippet shortens s to at most SnippetMaxLen runes, replacing the
// tail with an ellipsis when truncation occurs.
func TruncateSnippet(s string) string {
	runes := []rune(s)
	if len(runes) <= SnippetMaxLen {
		return s
	}
	return string(runes[:SnippetMaxLen-3]) + "..."
}
