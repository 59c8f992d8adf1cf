package video

import "strings"

// Filter is the same listing-filter contract the posts page uses, matched
// against title, description and tags.
func Filter(items []Video, category, searchTerm string) []Video {
	term := strings.ToLower(strings.TrimSpace(searchTerm))

	filtered := make([]Video, 0, len(items))
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

func matchesTerm(v Video, term string) bool {
	if strings.Contains(strings.ToLower(v.Title), term) {
		return true
	}
	if strings.Contains(strings.ToLower(v.Description), term) {
		return true
	}
	for _, tag := range v.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}
