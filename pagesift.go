// Package pagesift turns arbitrary web pages into categorized content items.
// It fetches a page over plain HTTP or through a headless browser, runs a
// cascade of extraction strategies against the HTML, and buckets the
// extracted items into a fixed set of topical categories.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, rod/, gin/).
package pagesift
