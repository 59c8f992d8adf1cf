package post

import "strings"

// Filter applies the shared listing-filter contract: a category selector
// ("all" or exact slug match) ANDed with a free-text search over title,
// excerpt and tags. The result is an order-preserving subsequence of items;
// the input is expected to already be sorted by publish date descending.
func Filter(items []Post, category, searchTerm string) []Post {
	term := strings.ToLower(strings.TrimSpace(searchTerm))

	filtered := make([]Post, 0, len(items))
	for _, item := range items {
		if category != "all" && category != "" && item.Category != category {
			continue
		}
		if term != "" && !matchesTerm(item, term) {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}

// matchesTerm reports whether term (already lowercased) is a substring of the
// title, the excerpt, or any single tag.
func matchesTerm(p Post, term string) bool {
	if strings.Contains(strings.ToLower(p.Title), term) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Excerpt), term) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}
