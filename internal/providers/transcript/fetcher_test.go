package transcript

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-video-warehouse/internal/adapter"
	"github.com/feral-file/ff-video-warehouse/internal/domain"
	"github.com/feral-file/ff-video-warehouse/internal/mocks"
)

const timedTextXML = `<?xml version="1.0" encoding="utf-8" ?>
<transcript>
  <text start="0.5" dur="2.1">Hello   everyone</text>
  <text start="2.6" dur="1.9">it&amp;#39;s   a
  great day</text>
  <text start="4.5" dur="1.0">   </text>
</transcript>`

func TestFetcher_FetchTranscript(t *testing.T) {
	ctx := context.Background()

	t.Run("first language with a track wins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		httpClient := mocks.NewMockHTTPClient(ctrl)

		gomock.InOrder(
			httpClient.EXPECT().GetRaw(ctx, "https://captions.test/timedtext?lang=es&v=abc12345678").
				Return(nil, &adapter.StatusError{StatusCode: http.StatusNotFound}),
			httpClient.EXPECT().GetRaw(ctx, "https://captions.test/timedtext?lang=de&v=abc12345678").
				Return([]byte(""), nil),
			httpClient.EXPECT().GetRaw(ctx, "https://captions.test/timedtext?lang=en&v=abc12345678").
				Return([]byte(timedTextXML), nil),
		)

		fetcher := NewFetcher(Config{BaseURL: "https://captions.test/timedtext", Languages: []string{"es", "de", "en"}}, httpClient)
		text, err := fetcher.FetchTranscript(ctx, "abc12345678")
		require.NoError(t, err)
		require.NotNil(t, text)
		assert.Equal(t, "Hello everyone it's a great day", *text)
	})

	t.Run("no track is not an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		httpClient := mocks.NewMockHTTPClient(ctrl)

		httpClient.EXPECT().GetRaw(ctx, DefaultBaseURL+"?lang=en&v=abc12345678").Return([]byte("  \n"), nil)

		text, err := NewFetcher(Config{}, httpClient).FetchTranscript(ctx, "abc12345678")
		require.NoError(t, err)
		assert.Nil(t, text)
	})

	t.Run("server error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		httpClient := mocks.NewMockHTTPClient(ctrl)

		httpClient.EXPECT().GetRaw(ctx, gomock.Any()).Return(nil, &adapter.StatusError{StatusCode: http.StatusBadGateway})

		text, err := NewFetcher(Config{}, httpClient).FetchTranscript(ctx, "abc12345678")
		assert.Error(t, err)
		assert.True(t, adapter.IsStatus(err, http.StatusBadGateway))
		assert.Nil(t, text)
	})

	t.Run("malformed document", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		httpClient := mocks.NewMockHTTPClient(ctrl)

		httpClient.EXPECT().GetRaw(ctx, gomock.Any()).Return([]byte("<transcript><text>"), nil)

		_, err := NewFetcher(Config{}, httpClient).FetchTranscript(ctx, domain.VideoID("abc12345678"))
		assert.Error(t, err)
	})

	t.Run("transport error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		httpClient := mocks.NewMockHTTPClient(ctrl)
		netErr := errors.New("dial tcp: i/o timeout")

		httpClient.EXPECT().GetRaw(ctx, gomock.Any()).Return(nil, netErr)

		_, err := NewFetcher(Config{}, httpClient).FetchTranscript(ctx, "abc12345678")
		assert.ErrorIs(t, err, netErr)
	})
}

func TestParseTimedText(t *testing.T) {
	text, err := parseTimedText([]byte(`<transcript><text>one</text><text>two &amp;amp; three</text></transcript>`))
	require.NoError(t, err)
	assert.Equal(t, "one two & three", text)

	text, err = parseTimedText([]byte(`<transcript></transcript>`))
	require.NoError(t, err)
	assert.Equal(t, "", text)
}
