package catalog

import (
	"strings"

	"missingfit/internal/domain"
)

// Filter returns items unchanged for "all", otherwise the items tagged with
// category in their original order. Unknown and blank categories match
// nothing, so items with no category only show under "all".
func Filter(items []domain.Item, category string) []domain.Item {
	if category == domain.CategoryAll {
		return items
	}
	if category == "" {
		return []domain.Item{}
	}
	out := make([]domain.Item, 0, len(items))
	for _, it := range items {
		if it.Category == category {
			out = append(out, it)
		}
	}
	return out
}

// Search matches q case-insensitively against name and description.
func Search(items []domain.Item, q string) []domain.Item {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return nil
	}
	var out []domain.Item
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Name), q) || strings.Contains(strings.ToLower(it.Description), q) {
			out = append(out, it)
		}
	}
	return out
}
