package youtube

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ytapi "google.golang.org/api/youtube/v3"

	"github.com/feral-file/ff-video-warehouse/internal/domain"
)

const videoJSON = `{
  "items": [{
    "id": "abc12345678",
    "snippet": {
      "title": "Live at Wembley",
      "publishedAt": "2023-06-01T15:30:00Z",
      "categoryId": "10",
      "tags": ["music", "live"]
    },
    "statistics": {"viewCount": "150", "likeCount": "12", "commentCount": "3"},
    "contentDetails": {"duration": "PT4M13S"}
  }]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) MetadataFetcher {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(context.Background(), Config{
		APIKey:   "test-key",
		Endpoint: server.URL + "/",
	})
	require.NoError(t, err)
	return client
}

func writeAPIError(w http.ResponseWriter, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = fmt.Fprintf(w, `{"error": {"code": %d, "message": "%s"}}`, code, http.StatusText(code))
}

func TestClient_FetchVideo(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/youtube/v3/videos", r.URL.Path)
		assert.Equal(t, "abc12345678", r.URL.Query().Get("id"))
		assert.Equal(t, DefaultParts, r.URL.Query()["part"])
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(videoJSON))
	})

	md, err := client.FetchVideo(context.Background(), "abc12345678")
	require.NoError(t, err)
	assert.Equal(t, domain.VideoID("abc12345678"), md.VideoID)
	assert.Equal(t, "Live at Wembley", md.Title)
	assert.Equal(t, "2023-06-01T15:30:00Z", md.PublishedAt)
	require.NotNil(t, md.CategoryID)
	assert.Equal(t, 10, *md.CategoryID)
	assert.Equal(t, []string{"music", "live"}, md.Tags)
	assert.Equal(t, "PT4M13S", md.Duration)
	assert.Equal(t, int64(150), md.Views)
	assert.Equal(t, int64(12), md.Likes)
	assert.Equal(t, int64(3), md.Comments)
}

func TestClient_FetchVideo_NotFound(t *testing.T) {
	t.Run("empty item list", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"items": []}`))
		})

		_, err := client.FetchVideo(context.Background(), "abc12345678")
		assert.ErrorIs(t, err, domain.ErrVideoNotFound)
		assert.Equal(t, domain.ErrorKindNotFound, domain.Classify(err))
	})

	t.Run("404 response", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeAPIError(w, http.StatusNotFound)
		})

		_, err := client.FetchVideo(context.Background(), "abc12345678")
		assert.ErrorIs(t, err, domain.ErrVideoNotFound)
	})
}

func TestClient_FetchVideo_ServerError(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeAPIError(w, http.StatusForbidden)
	})

	_, err := client.FetchVideo(context.Background(), "abc12345678")
	assert.ErrorIs(t, err, domain.ErrUnavailable)
	assert.Equal(t, domain.ErrorKindConnectivity, domain.Classify(err))
	// Only rate limiting is retried
	assert.Equal(t, int32(1), calls.Load())
}

func TestToMetadata_AbsentParts(t *testing.T) {
	md := toMetadata("abc12345678", &ytapi.Video{Id: "abc12345678"})
	assert.Equal(t, domain.VideoID("abc12345678"), md.VideoID)
	assert.NotNil(t, md.Tags)
	assert.Empty(t, md.Tags)
	assert.Nil(t, md.CategoryID)
	assert.Equal(t, int64(0), md.Views)

	md = toMetadata("abc12345678", &ytapi.Video{Snippet: &ytapi.VideoSnippet{CategoryId: "music"}})
	assert.Nil(t, md.CategoryID)
}
