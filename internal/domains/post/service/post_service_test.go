package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"musings-backend/internal/domains/post"
	"musings-backend/pkg/cache"
)

// fakeRepo is an in-memory post.Repository.
type fakeRepo struct {
	posts map[uuid.UUID]*post.Post
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{posts: make(map[uuid.UUID]*post.Post)}
}

func (f *fakeRepo) GetAll(ctx context.Context) ([]post.Post, error) {
	out := make([]post.Post, 0, len(f.posts))
	for _, p := range f.posts {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeRepo) GetFeatured(ctx context.Context, limit int) ([]post.Post, error) {
	var out []post.Post
	for _, p := range f.posts {
		if p.Featured && len(out) < limit {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetRecent(ctx context.Context, limit int) ([]post.Post, error) {
	all, _ := f.GetAll(ctx)
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeRepo) GetByCategory(ctx context.Context, category string) ([]post.Post, error) {
	var out []post.Post
	for _, p := range f.posts {
		if p.Category == category {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*post.Post, error) {
	p, ok := f.posts[id]
	if !ok {
		return nil, post.ErrPostNotFound
	}
	clone := *p
	return &clone, nil
}

func (f *fakeRepo) Create(ctx context.Context, p *post.Post) error {
	clone := *p
	f.posts[p.ID] = &clone
	return nil
}

func (f *fakeRepo) Update(ctx context.Context, p *post.Post) error {
	if _, ok := f.posts[p.ID]; !ok {
		return post.ErrPostNotFound
	}
	clone := *p
	f.posts[p.ID] = &clone
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.posts[id]; !ok {
		return post.ErrPostNotFound
	}
	delete(f.posts, id)
	return nil
}

// noopCache satisfies cache.Cache and never hits.
type noopCache struct{}

func (noopCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	return false, nil
}
func (noopCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return nil
}
func (noopCache) Delete(ctx context.Context, keys ...string) error        { return nil }
func (noopCache) DeletePattern(ctx context.Context, pattern string) error { return nil }
func (noopCache) Exists(ctx context.Context, key string) (bool, error)    { return false, nil }
func (noopCache) Ping(ctx context.Context) error                          { return nil }

var _ cache.Cache = noopCache{}

func newTestService() (post.Service, *fakeRepo) {
	repo := newFakeRepo()
	return NewPostService(repo, noopCache{}), repo
}

func TestCreateNormalizesAuthoringInput(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), post.CreatePostReq{
		Title:    "Morning Prayer",
		Excerpt:  "Starting the day right",
		Content:  "one two three four five",
		Category: "faith",
		Tags:     "prayer, habits , prayer",
	})
	require.NoError(t, err)

	assert.Equal(t, "Melissa", created.Author, "author defaults when absent")
	assert.Equal(t, 1, created.ReadTime)
	assert.Equal(t, []string{"prayer", "habits", "prayer"}, created.Tags, "order kept, duplicates kept")
	require.NotNil(t, created.PublishedAt)
	assert.WithinDuration(t, time.Now(), *created.PublishedAt, 5*time.Second)
	assert.Nil(t, created.ImageURL)
}

func TestCreateDerivesEmbedURL(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), post.CreatePostReq{
		Title:    "A video post",
		Content:  "words",
		Category: "random",
		VideoURL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
	})
	require.NoError(t, err)
	require.NotNil(t, created.EmbedURL)
	assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ", *created.EmbedURL)
}

func TestCreateValidation(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), post.CreatePostReq{Content: "x", Category: "faith"})
	assert.Error(t, err, "title required")

	_, err = svc.Create(context.Background(), post.CreatePostReq{Title: "x", Category: "faith"})
	assert.Error(t, err, "content required")
}

func TestUpdateRefreshesUpdatedAtButNotReadTime(t *testing.T) {
	svc, repo := newTestService()

	longBody := ""
	for i := 0; i < 401; i++ {
		longBody += "word "
	}

	created, err := svc.Create(context.Background(), post.CreatePostReq{
		Title:    "Short",
		Content:  "just a few words here",
		Category: "life",
	})
	require.NoError(t, err)
	require.Equal(t, 1, created.ReadTime)

	id := uuid.MustParse(created.ID)
	before := repo.posts[id].UpdatedAt

	time.Sleep(10 * time.Millisecond)
	updated, err := svc.Update(context.Background(), id, post.UpdatePostReq{Content: &longBody})
	require.NoError(t, err)

	assert.Equal(t, 1, updated.ReadTime, "read time is never recomputed on edit")
	assert.True(t, updated.UpdatedAt.After(before), "updated_at always refreshed")
	assert.Equal(t, longBody, repo.posts[id].Content)
}

func TestUpdateUnknownPost(t *testing.T) {
	svc, _ := newTestService()

	title := "x"
	_, err := svc.Update(context.Background(), uuid.New(), post.UpdatePostReq{Title: &title})
	assert.ErrorIs(t, err, post.ErrPostNotFound)
}

func TestDeleteUnknownPost(t *testing.T) {
	svc, _ := newTestService()
	assert.ErrorIs(t, svc.Delete(context.Background(), uuid.New()), post.ErrPostNotFound)
}

func TestListAllAppliesFilter(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), post.CreatePostReq{Title: "Faith post", Content: "a", Category: "faith"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), post.CreatePostReq{Title: "Life post", Content: "a", Category: "life"})
	require.NoError(t, err)

	all, err := svc.ListAll(context.Background(), "all", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	faith, err := svc.ListAll(context.Background(), "faith", "")
	require.NoError(t, err)
	require.Len(t, faith, 1)
	assert.Equal(t, "Faith post", faith[0].Title)

	none, err := svc.ListAll(context.Background(), "faith", "life")
	require.NoError(t, err)
	assert.Empty(t, none)
}
