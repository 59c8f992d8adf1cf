package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"musings-backend/internal/domains/video"
	"musings-backend/pkg/cache"
	"musings-backend/pkg/youtube"
)

// fakeRepo is an in-memory video.Repository.
type fakeRepo struct {
	videos map[uuid.UUID]*video.Video
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{videos: make(map[uuid.UUID]*video.Video)}
}

func (f *fakeRepo) GetAll(ctx context.Context) ([]video.Video, error) {
	out := make([]video.Video, 0, len(f.videos))
	for _, v := range f.videos {
		out = append(out, *v)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].PublishedAt.After(*out[j].PublishedAt)
	})
	return out, nil
}

func (f *fakeRepo) GetLatest(ctx context.Context, limit int) ([]video.Video, error) {
	all, _ := f.GetAll(ctx)
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*video.Video, error) {
	v, ok := f.videos[id]
	if !ok {
		return nil, video.ErrVideoNotFound
	}
	clone := *v
	return &clone, nil
}

func (f *fakeRepo) Create(ctx context.Context, v *video.Video) error {
	clone := *v
	f.videos[v.ID] = &clone
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.videos[id]; !ok {
		return video.ErrVideoNotFound
	}
	delete(f.videos, id)
	return nil
}

func (f *fakeRepo) GetMissingThumbnails(ctx context.Context) ([]video.Video, error) {
	var out []video.Video
	for _, v := range f.videos {
		if v.ThumbnailURL == "" {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (f *fakeRepo) UpdateThumbnail(ctx context.Context, id uuid.UUID, thumbnailURL string) error {
	v, ok := f.videos[id]
	if !ok {
		return video.ErrVideoNotFound
	}
	v.ThumbnailURL = thumbnailURL
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

func newTestService() (video.Service, *fakeRepo) {
	repo := newFakeRepo()
	return NewVideoService(repo, noopCache{}, youtube.ThumbnailHQ), repo
}

func TestCreateDerivesThumbnailAndEmbed(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), video.CreateVideoReq{
		Title:      "Sunday reflections",
		YouTubeURL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		Category:   "faith",
		Tags:       "sermon, sunday",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://img.youtube.com/vi/dQw4w9WgXcQ/hqdefault.jpg", created.ThumbnailURL)
	require.NotNil(t, created.EmbedURL)
	assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ", *created.EmbedURL)
	assert.Equal(t, []string{"sermon", "sunday"}, created.Tags)
	require.NotNil(t, created.PublishedAt)
	assert.WithinDuration(t, time.Now(), *created.PublishedAt, 5*time.Second)
}

func TestCreateKeepsExplicitThumbnail(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), video.CreateVideoReq{
		Title:        "Custom art",
		YouTubeURL:   "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		ThumbnailURL: "https://cdn.example.com/custom.jpg",
		Category:     "life",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/custom.jpg", created.ThumbnailURL)
}

func TestCreateRejectsUnderivableURL(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), video.CreateVideoReq{
		Title:      "Not a video",
		YouTubeURL: "https://www.youtube.com/@somechannel",
		Category:   "random",
	})
	assert.ErrorIs(t, err, video.ErrInvalidVideoURL)
}

func TestCreateValidation(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), video.CreateVideoReq{
		YouTubeURL: "https://youtu.be/dQw4w9WgXcQ",
		Category:   "faith",
	})
	assert.Error(t, err, "title required")

	_, err = svc.Create(context.Background(), video.CreateVideoReq{
		Title:      "x",
		YouTubeURL: "not a url",
		Category:   "faith",
	})
	assert.Error(t, err, "url must be well formed")
}

func TestDeleteUnknownVideo(t *testing.T) {
	svc, _ := newTestService()
	assert.ErrorIs(t, svc.Delete(context.Background(), uuid.New()), video.ErrVideoNotFound)
}

func TestListLatestCapsAtThree(t *testing.T) {
	svc, _ := newTestService()

	for i, u := range []string{
		"https://youtu.be/aaaaaaaaaaa",
		"https://youtu.be/bbbbbbbbbbb",
		"https://youtu.be/ccccccccccc",
		"https://youtu.be/ddddddddddd",
	} {
		_, err := svc.Create(context.Background(), video.CreateVideoReq{
			Title:      "v",
			YouTubeURL: u,
			Category:   "random",
		})
		require.NoError(t, err, "video %d", i)
	}

	latest, err := svc.ListLatest(context.Background())
	require.NoError(t, err)
	assert.Len(t, latest, 3)
}

func TestBackfillThumbnails(t *testing.T) {
	svc, repo := newTestService()

	now := time.Now()
	good := &video.Video{
		ID:          uuid.New(),
		Title:       "fixable",
		YouTubeURL:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		PublishedAt: &now,
		CreatedAt:   now,
	}
	bad := &video.Video{
		ID:          uuid.New(),
		Title:       "unrecognizable",
		YouTubeURL:  "https://www.youtube.com/@somechannel",
		PublishedAt: &now,
		CreatedAt:   now,
	}
	require.NoError(t, repo.Create(context.Background(), good))
	require.NoError(t, repo.Create(context.Background(), bad))

	fixed, err := svc.BackfillThumbnails(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, fixed)

	assert.Equal(t, "https://img.youtube.com/vi/dQw4w9WgXcQ/hqdefault.jpg", repo.videos[good.ID].ThumbnailURL)
	assert.Empty(t, repo.videos[bad.ID].ThumbnailURL, "unrecognizable rows are skipped")
}
