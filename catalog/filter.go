package catalog

import (
	"strings"

	"github.com/coreybb/studio/models"
)

// All is the sentinel that disables the category or type criterion.
const All = "all"

// Filter combines the three independent catalog criteria.
type Filter struct {
	Category string // All, or an exact category name
	Type     string // All, or an exact content type
	Query    string // free text, case-insensitive; empty matches everything
}

// NewFilter builds a Filter, treating empty category and type as All.
func NewFilter(category, contentType, query string) Filter {
	if category == "" {
		category = All
	}
	if contentType == "" {
		contentType = All
	}
	return Filter{Category: category, Type: contentType, Query: query}
}

// Matches reports whether item satisfies every criterion of f.
func (f Filter) Matches(item models.ContentItem) bool {
	if f.Category != All && item.Category != f.Category {
		return false
	}
	if f.Type != All && string(item.Type) != f.Type {
		return false
	}
	if f.Query == "" {
		return true
	}

	q := strings.ToLower(f.Query)
	if strings.Contains(strings.ToLower(item.Title), q) {
		return true
	}
	return containsFold(item.Hashtags, q) || containsFold(item.Keywords, q)
}

// Apply returns the items matching f in their original relative order.
// The result is never nil.
func Apply(items []models.ContentItem, f Filter) []models.ContentItem {
	out := make([]models.ContentItem, 0, len(items))
	for _, item := range items {
		if f.Matches(item) {
			out = append(out, item)
		}
	}
	return out
}

// containsFold reports whether any value contains the lower-cased needle.
func containsFold(values []string, lowerNeedle string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), lowerNeedle) {
			return true
		}
	}
	return false
}
