package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"halocat-queries/internal/app/ds"
	"halocat-queries/internal/app/writer"
)

type memCache struct {
	data map[string]string
	hits int
	sets int
	ttl  time.Duration
}

func newMemCache() *memCache {
	return &memCache{data: map[string]string{}}
}

func (c *memCache) GetList(_ context.Context, key string) (string, error) {
	body, ok := c.data[key]
	if !ok {
		return "", ds.ErrCacheMiss
	}
	c.hits++
	return body, nil
}

func (c *memCache) SetList(_ context.Context, key, body string, ttl time.Duration) error {
	c.data[key] = body
	c.sets++
	c.ttl = ttl
	return nil
}

type memStore struct {
	objects map[string][]byte
	fail    error
}

func (s *memStore) Bucket() string { return "halocat-queries" }

func (s *memStore) PutList(_ context.Context, name string, body []byte) error {
	if s.fail != nil {
		return s.fail
	}
	s.objects[name] = body
	return nil
}

func defaultRequest() ds.GenerationRequest {
	return ds.GenerationRequest{
		Box:    ds.BoxSpec{SideLength: 400, Subdivisions: 4},
		Params: ds.QueryParams{Snapshot: "48", Table: "SMDPL.Rockstar", IDColumn: "rockstarId"},
		Format: "fixed",
	}
}

func TestQueryRepository_Generate(t *testing.T) {
	repo := NewRepositoryWith(Options{})

	lists, err := repo.Queries.Generate(defaultRequest())
	require.NoError(t, err)
	assert.Len(t, lists.Fetch, 64)
	assert.Len(t, lists.Count, 64)

	bad := defaultRequest()
	bad.Box.Subdivisions = 0
	_, err = repo.Queries.Generate(bad)
	assert.True(t, errors.Is(err, ds.ErrInvalidConfiguration))

	bad = defaultRequest()
	bad.Format = "octal"
	_, err = repo.Queries.Generate(bad)
	assert.True(t, errors.Is(err, ds.ErrInvalidConfiguration))
}

func TestQueryRepository_Partition(t *testing.T) {
	repo := NewRepositoryWith(Options{})

	subvols, err := repo.Queries.Partition(ds.BoxSpec{SideLength: 10, Subdivisions: 2})
	require.NoError(t, err)
	assert.Len(t, subvols, 8)
}

func TestQueryRepository_ListBodyCached(t *testing.T) {
	cache := newMemCache()
	repo := NewRepositoryWith(Options{Cache: cache, CacheTTL: time.Minute})
	ctx := context.Background()

	body, err := repo.Queries.ListBody(ctx, defaultRequest(), ds.CountOnly)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(body, "#index     query     filename\n"))
	assert.Contains(t, body, "subvol_N_0_0_0_snapnum_48.csv")
	assert.Equal(t, 1, cache.sets)
	assert.Equal(t, 0, cache.hits)
	assert.Equal(t, time.Minute, cache.ttl)

	again, err := repo.Queries.ListBody(ctx, defaultRequest(), ds.CountOnly)
	require.NoError(t, err)
	assert.Equal(t, body, again)
	assert.Equal(t, 1, cache.hits)
	assert.Equal(t, 1, cache.sets)

	// Другой вариант - другой ключ
	_, err = repo.Queries.ListBody(ctx, defaultRequest(), ds.FetchAll)
	require.NoError(t, err)
	assert.Equal(t, 2, cache.sets)
}

func TestQueryRepository_ListBodyWithoutCache(t *testing.T) {
	repo := NewRepositoryWith(Options{})

	body, err := repo.Queries.ListBody(context.Background(), defaultRequest(), ds.FetchAll)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(body, "\n"), "\n")
	assert.Len(t, lines, 65)
	assert.Equal(t, "#index      query     filename", lines[0])
}

func TestQueryRepository_WriteFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	repo := NewRepositoryWith(Options{Writer: writer.NewFileWriter(fs)})

	lists, err := repo.Queries.Generate(defaultRequest())
	require.NoError(t, err)
	require.NoError(t, repo.Queries.WriteFiles(lists, "halocat_queries_list.txt", "count_queries_list.txt"))

	fetch, err := afero.ReadFile(fs, "halocat_queries_list.txt")
	require.NoError(t, err)
	count, err := afero.ReadFile(fs, "count_queries_list.txt")
	require.NoError(t, err)

	assert.Contains(t, string(fetch), " 64     \"SELECT * FROM SMDPL.Rockstar WHERE snapnum=48 AND x > 300.0000")
	assert.Contains(t, string(count), "  1     \"SELECT COUNT(rockstarId) FROM SMDPL.Rockstar")
}

func TestQueryRepository_Publish(t *testing.T) {
	store := &memStore{objects: map[string][]byte{}}
	repo := NewRepositoryWith(Options{Store: store})
	assert.True(t, repo.HasStore())

	lists, err := repo.Queries.Generate(defaultRequest())
	require.NoError(t, err)

	resp, err := repo.Queries.Publish(context.Background(), lists, "48", "out/halocat_queries_list.txt", "count_queries_list.txt")
	require.NoError(t, err)
	assert.Equal(t, "halocat-queries", resp.Bucket)
	assert.Equal(t, []string{
		"snapnum_48/halocat_queries_list.txt",
		"snapnum_48/count_queries_list.txt",
	}, resp.Objects)
	assert.True(t, strings.HasPrefix(string(store.objects["snapnum_48/count_queries_list.txt"]), "#index     query"))
}

func TestQueryRepository_PublishErrors(t *testing.T) {
	repo := NewRepositoryWith(Options{})
	assert.False(t, repo.HasStore())
	lists, err := repo.Queries.Generate(defaultRequest())
	require.NoError(t, err)

	_, err = repo.Queries.Publish(context.Background(), lists, "48", "a.txt", "b.txt")
	assert.True(t, errors.Is(err, ds.ErrStoreUnavailable))

	boom := errors.New("bucket gone")
	repo = NewRepositoryWith(Options{Store: &memStore{objects: map[string][]byte{}, fail: boom}})
	_, err = repo.Queries.Publish(context.Background(), lists, "48", "a.txt", "b.txt")
	assert.True(t, errors.Is(err, boom))
}

func TestQueryRepository_PublishSameBaseName(t *testing.T) {
	store := &memStore{objects: map[string][]byte{}}
	repo := NewRepositoryWith(Options{Store: store})
	lists, err := repo.Queries.Generate(defaultRequest())
	require.NoError(t, err)

	_, err = repo.Queries.Publish(context.Background(), lists, "48", "a/list.txt", "b/list.txt")
	assert.True(t, errors.Is(err, ds.ErrInvalidConfiguration))
	assert.Empty(t, store.objects)
}
