package post

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func samplePosts() []Post {
	return []Post{
		{Title: "Morning Prayer", Excerpt: "Starting the day right", Category: "faith", Tags: []string{"prayer", "habits"}},
		{Title: "On Gratitude", Excerpt: "Small things matter", Category: "reflection", Tags: []string{"gratitude"}},
		{Title: "Book Notes: Gilead", Excerpt: "A quiet novel about grace", Category: "books", Tags: []string{"fiction", "Grace"}},
		{Title: "Lessons from a Garden", Excerpt: "Patience and prayer", Category: "life", Tags: []string{"patience"}},
	}
}

func TestFilterAllCategoryEmptyTermReturnsInput(t *testing.T) {
	items := samplePosts()
	got := Filter(items, "all", "")
	assert.Equal(t, items, got)
}

func TestFilterCategoryOnly(t *testing.T) {
	got := Filter(samplePosts(), "faith", "")
	assert.Len(t, got, 1)
	assert.Equal(t, "Morning Prayer", got[0].Title)
}

func TestFilterTermMatchesTitleExcerptOrTag(t *testing.T) {
	// title match
	got := Filter(samplePosts(), "all", "gratitude")
	assert.Len(t, got, 1)
	assert.Equal(t, "On Gratitude", got[0].Title)

	// excerpt match, case-insensitive
	got = Filter(samplePosts(), "all", "QUIET")
	assert.Len(t, got, 1)
	assert.Equal(t, "Book Notes: Gilead", got[0].Title)

	// tag match, case-insensitive both ways
	got = Filter(samplePosts(), "all", "grace")
	assert.Len(t, got, 1)

	// term is trimmed before matching
	got = Filter(samplePosts(), "all", "  prayer  ")
	assert.Len(t, got, 2)
}

func TestFilterCategoryAndTermAndTogether(t *testing.T) {
	// "prayer" matches posts in faith and life; narrowing to life must not
	// relax the category filter.
	got := Filter(samplePosts(), "life", "prayer")
	assert.Len(t, got, 1)
	assert.Equal(t, "Lessons from a Garden", got[0].Title)

	// Same term under a category it never appears in yields empty, not error.
	got = Filter(samplePosts(), "books", "prayer")
	assert.Empty(t, got)
}

func TestFilterPreservesOrder(t *testing.T) {
	got := Filter(samplePosts(), "all", "prayer")
	assert.Equal(t, []string{"Morning Prayer", "Lessons from a Garden"},
		[]string{got[0].Title, got[1].Title})
}

func TestFilterOutputIsSubsequence(t *testing.T) {
	items := samplePosts()
	for _, category := range []string{"all", "faith", "life", "poetry"} {
		for _, term := range []string{"", "a", "prayer", "zzz-no-match"} {
			got := Filter(items, category, term)
			assert.LessOrEqual(t, len(got), len(items))

			// every result appears in the input, in the same relative order
			i := 0
			for _, item := range got {
				for i < len(items) && items[i].Title != item.Title {
					i++
				}
				assert.Less(t, i, len(items), "result %q out of order for category=%s term=%s", item.Title, category, term)
				i++
			}
		}
	}
}

func TestFilterEmptyInput(t *testing.T) {
	assert.Empty(t, Filter(nil, "all", ""))
	assert.Empty(t, Filter([]Post{}, "faith", "prayer"))
}
