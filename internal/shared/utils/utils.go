package utils

import (
	"strings"
)

// EstimateReadTime derives the displayed "min read" from a post body:
// whitespace-split word count over 200 words per minute, rounded up, never
// below 1. Computed once at creation and not recomputed on edit.
func EstimateReadTime(content string) int {
	words := len(strings.Fields(content))
	minutes := (words + 199) / 200
	if minutes < 1 {
		return 1
	}
	return minutes
}

// SplitTags normalizes a comma-separated tag string into an ordered slice.
// Order is preserved for display; duplicates are kept as entered.
func SplitTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		tag := strings.TrimSpace(part)
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// CapitalizeSlug turns an unknown category slug into a displayable label.
func CapitalizeSlug(slug string) string {
	if slug == "" {
		return ""
	}
	return strings.ToUpper(slug[:1]) + slug[1:]
}
