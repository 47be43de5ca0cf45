package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"halocat-queries/internal/app/config"
	"halocat-queries/internal/app/ds"
	"halocat-queries/internal/app/repository"
	"halocat-queries/internal/app/utils"
)

const testSecret = "test-secret"

type memBlacklist struct {
	tokens map[string]time.Duration
}

func (b *memBlacklist) AddToBlacklist(_ context.Context, token string, expiresIn time.Duration) error {
	b.tokens[token] = expiresIn
	return nil
}

func (b *memBlacklist) IsInBlacklist(_ context.Context, token string) (bool, error) {
	_, ok := b.tokens[token]
	return ok, nil
}

type memStore struct {
	objects map[string][]byte
}

func (s *memStore) Bucket() string { return "halocat-queries" }

func (s *memStore) PutList(_ context.Context, name string, body []byte) error {
	s.objects[name] = body
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		LBox:        400,
		NSub:        4,
		Snapnum:     "48",
		Table:       "SMDPL.Rockstar",
		IDColumn:    "rockstarId",
		FetchOutput: "halocat_queries_list.txt",
		CountOutput: "count_queries_list.txt",
		Format:      "fixed",
		JWTSecret:   testSecret,
	}
}

func newRouter(t *testing.T, opts repository.Options) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterHandlers(router, repository.NewRepositoryWith(opts), testConfig())
	return router
}

func do(router *gin.Engine, method, target, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func mintToken(t *testing.T, canPublish bool) string {
	t.Helper()
	token, _, err := utils.GenerateAccessToken("tester", canPublish, testSecret, time.Hour)
	require.NoError(t, err)
	return token
}

func TestHealth(t *testing.T) {
	router := newRouter(t, repository.Options{})
	w := do(router, http.MethodGet, "/api/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestGetPartition(t *testing.T) {
	router := newRouter(t, repository.Options{})

	w := do(router, http.MethodGet, "/api/partition", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp ds.PartitionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 64, resp.Total)
	require.Len(t, resp.SubVolumes, 64)
	assert.Equal(t, ds.SubVolumeIndex{I: 3, J: 3, K: 3}, resp.SubVolumes[63].Index)
	assert.False(t, resp.SubVolumes[63].Inclusion.X.LowerInclusive)

	w = do(router, http.MethodGet, "/api/partition?nsub=2&lbox=10", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 8, resp.Total)
	assert.Equal(t, 5.0, resp.SubVolumes[0].Bounds.XMax)
}

func TestGetPartition_InvalidConfiguration(t *testing.T) {
	router := newRouter(t, repository.Options{})

	for _, target := range []string{
		"/api/partition?nsub=0",
		"/api/partition?lbox=-5",
		"/api/partition?nsub=four",
		"/api/partition?nsub=2000",
		"/api/partition?nsub=2097152",
	} {
		w := do(router, http.MethodGet, target, "", "")
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
		assert.Contains(t, w.Body.String(), "invalid configuration", target)
	}
}

func TestGetQueries_JSON(t *testing.T) {
	router := newRouter(t, repository.Options{})

	w := do(router, http.MethodGet, "/api/queries/count?snapnum=36", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Kind    string `json:"kind"`
		Format  string `json:"format"`
		Total   int    `json:"total"`
		Records []struct {
			Index    int    `json:"index"`
			Query    string `json:"query"`
			Filename string `json:"filename"`
		} `json:"records"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "count", resp.Kind)
	assert.Equal(t, "fixed", resp.Format)
	assert.Equal(t, 64, resp.Total)
	assert.Equal(t, 1, resp.Records[0].Index)
	assert.Equal(t, "subvol_N_0_0_0_snapnum_36.csv", resp.Records[0].Filename)
	assert.True(t, strings.HasPrefix(resp.Records[0].Query, "SELECT COUNT(rockstarId) FROM SMDPL.Rockstar WHERE snapnum=36"))
}

func TestGetQueries_Text(t *testing.T) {
	router := newRouter(t, repository.Options{})

	w := do(router, http.MethodGet, "/api/queries/fetch?as=text&nsub=1&format=legacy", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t,
		"#index      query     filename\n"+
			"  1     \"SELECT * FROM SMDPL.Rockstar WHERE snapnum=48"+
			" AND x >= 0.0000 AND x <= 400.00"+
			" AND y >= 0.0000 AND y <= 400.00"+
			" AND z >= 0.0000 AND z <= 400.00\"     subvol_0_0_0_snapnum_48.csv\n",
		w.Body.String())
}

func TestGetQueries_BadInput(t *testing.T) {
	router := newRouter(t, repository.Options{})

	w := do(router, http.MethodGet, "/api/queries/delete", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(router, http.MethodGet, "/api/queries/fetch?format=hex", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(router, http.MethodGet, "/api/queries/fetch?as=text&nsub=-1", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(router, http.MethodGet, "/api/queries/count?nsub=2000", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPublish_Auth(t *testing.T) {
	store := &memStore{objects: map[string][]byte{}}
	router := newRouter(t, repository.Options{Store: store})

	w := do(router, http.MethodPost, "/api/queries/publish", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(router, http.MethodPost, "/api/queries/publish", "garbage", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(router, http.MethodPost, "/api/queries/publish", mintToken(t, false), "")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, store.objects)
}

func TestPublish(t *testing.T) {
	store := &memStore{objects: map[string][]byte{}}
	router := newRouter(t, repository.Options{Store: store})

	w := do(router, http.MethodPost, "/api/queries/publish", mintToken(t, true), `{"nsub": 2, "snapnum": "36"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp ds.PublishResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "halocat-queries", resp.Bucket)
	assert.Equal(t, []string{
		"snapnum_36/halocat_queries_list.txt",
		"snapnum_36/count_queries_list.txt",
	}, resp.Objects)

	fetch := string(store.objects["snapnum_36/halocat_queries_list.txt"])
	assert.Len(t, strings.Split(strings.TrimSuffix(fetch, "\n"), "\n"), 9)
}

func TestPublish_Errors(t *testing.T) {
	router := newRouter(t, repository.Options{})
	token := mintToken(t, true)

	w := do(router, http.MethodPost, "/api/queries/publish", token, "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = do(router, http.MethodPost, "/api/queries/publish", token, `{"nsub": 0}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(router, http.MethodPost, "/api/queries/publish", token, `{"nsub": `)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRevokeToken(t *testing.T) {
	blacklist := &memBlacklist{tokens: map[string]time.Duration{}}
	store := &memStore{objects: map[string][]byte{}}
	router := newRouter(t, repository.Options{Blacklist: blacklist, Store: store})
	token := mintToken(t, true)

	w := do(router, http.MethodPost, "/api/tokens/revoke", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, blacklist.tokens, token)
	assert.Greater(t, blacklist.tokens[token], 50*time.Minute)

	w = do(router, http.MethodPost, "/api/queries/publish", token, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalidated")
}

func TestRevokeToken_NoBlacklist(t *testing.T) {
	router := newRouter(t, repository.Options{})

	w := do(router, http.MethodPost, "/api/tokens/revoke", mintToken(t, true), "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
