// Package catalog holds the in-memory list of known movie titles and the
// sample data used when the backend is unavailable.
package catalog

import "cinematch/internal/domain"

// Catalog is an ordered, immutable list of movie titles.
// Duplicates are allowed and kept in order.
type Catalog struct {
	titles []string
	source domain.CatalogSource
}

// New copies titles into a catalog
func New(titles []string, source domain.CatalogSource) *Catalog {
	owned := make([]string, len(titles))
	copy(owned, titles)
	return &Catalog{titles: owned, source: source}
}

// Fallback returns a catalog backed by the embedded sample titles
func Fallback() *Catalog {
	return New(SampleTitles, domain.SourceFallback)
}

// Titles returns a copy of the titles
func (c *Catalog) Titles() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.titles))
	copy(out, c.titles)
	return out
}

// View returns the titles without copying; callers must not modify it
func (c *Catalog) View() []string {
	if c == nil {
		return nil
	}
	return c.titles
}

// Len returns the number of titles
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.titles)
}

// Source tells whether the titles came from the backend or the fallback list
func (c *Catalog) Source() domain.CatalogSource {
	if c == nil {
		return domain.SourceFallback
	}
	return c.source
}

// IsFallback reports whether the catalog is the embedded sample
func (c *Catalog) IsFallback() bool {
	return c.Source() == domain.SourceFallback
}
