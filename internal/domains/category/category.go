// Package category holds the site's static category registry. Categories are
// editorial, not user data; they never live in the database.
package category

import "musings-backend/internal/shared/utils"

type Category struct {
	Slug        string `json:"slug"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// Registry order matches the order the site renders category cards in.
var registry = []Category{
	{
		Slug:        "faith",
		Label:       "Faith & Spirituality",
		Description: "Stories and reflections on faith, prayer, and spiritual growth.",
	},
	{
		Slug:        "life",
		Label:       "Life Lessons",
		Description: "Practical insights from life experiences and everyday moments.",
	},
	{
		Slug:        "reflection",
		Label:       "Personal Reflection",
		Description: "Deeper reflections on identity, purpose, and the journey of life.",
	},
	{
		Slug:        "books",
		Label:       "Book Reviews",
		Description: "Reviews and takeaways from the books currently on my shelf.",
	},
	{
		Slug:        "random",
		Label:       "Random Thoughts",
		Description: "Unexpected musings that inspired or challenged me recently.",
	},
}

// All returns the registry in display order.
func All() []Category {
	out := make([]Category, len(registry))
	copy(out, registry)
	return out
}

// Lookup resolves a slug to its category. Unknown slugs are never an error:
// the site shows a capitalized slug with a generic description so old links
// and hand-typed URLs still render a page.
func Lookup(slug string) Category {
	for _, c := range registry {
		if c.Slug == slug {
			return c
		}
	}
	return Category{
		Slug:        slug,
		Label:       utils.CapitalizeSlug(slug),
		Description: "Posts from this category.",
	}
}

// IsKnown reports whether the slug is part of the registry.
func IsKnown(slug string) bool {
	for _, c := range registry {
		if c.Slug == slug {
			return true
		}
	}
	return false
}
