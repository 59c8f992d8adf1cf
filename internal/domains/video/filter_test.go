package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleVideos() []Video {
	return []Video{
		{Title: "Sunday Reflections", Description: "Thoughts after church", Category: "faith", Tags: []string{"sunday"}},
		{Title: "Garden Tour", Description: "Spring update", Category: "life", Tags: []string{"garden", "spring"}},
		{Title: "Reading Wrap-Up", Description: "Books this month", Category: "books", Tags: []string{"reading"}},
	}
}

func TestFilterVideos(t *testing.T) {
	items := sampleVideos()

	assert.Equal(t, items, Filter(items, "all", ""))

	got := Filter(items, "life", "")
	assert.Len(t, got, 1)
	assert.Equal(t, "Garden Tour", got[0].Title)

	got = Filter(items, "all", "SPRING")
	assert.Len(t, got, 1)

	// Filters AND together: a matching term under the wrong category is empty.
	assert.Empty(t, Filter(items, "faith", "spring"))
	assert.Empty(t, Filter(nil, "all", "anything"))
}
