package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_SendsIdentityAndParams(t *testing.T) {
	var gotPath, gotQuery, gotViewer, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotViewer = r.Header.Get("X-Viewer-ID")
		gotAuth = r.Header.Get("Authorization")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"id":"p1","owner_id":"bob","rank":1}],` +
			`"metadata":{"page":1,"page_size":5,"total":1,"has_more":false,"seed":9}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", "token", "alice")
	feed, err := c.ExploreFeed(context.Background(), "reel", 9, PageOptions{PageSize: 5})
	require.NoError(t, err)

	assert.Equal(t, "/v1/feeds/explore", gotPath)
	assert.Equal(t, "category=reel&page_size=5&seed=9", gotQuery)
	assert.Equal(t, "alice", gotViewer)
	assert.Equal(t, "Bearer token", gotAuth)

	require.Len(t, feed.Data, 1)
	assert.Equal(t, "p1", feed.Data[0].ID)
	assert.Equal(t, uint64(9), feed.Metadata.Seed)
}

func TestClient_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"message":"temporarily unavailable, retry later"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "", "alice").RecommendHashtags(context.Background(), 5)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 503")
}
