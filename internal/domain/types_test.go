package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVideoID(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{name: "valid id", raw: "abc12345678"},
		{name: "valid id with dash and underscore", raw: "a-b_c123456"},
		{name: "too short", raw: "abc123", wantErr: true},
		{name: "too long", raw: "abc123456789", wantErr: true},
		{name: "file extension", raw: "abc1234.mp4", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
		{name: "11 bytes with invalid char", raw: "abc 2345678", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ParseVideoID(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidVideoID)
				assert.Empty(t, id)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, VideoID(tt.raw), id)
		})
	}
}

func TestParsePublishedAt(t *testing.T) {
	got, err := ParsePublishedAt("2024-03-05T17:04:05Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 5, 17, 4, 5, 0, time.UTC), got)

	for _, raw := range []string{"", "N/A", "2024-03-05", "2024-13-05T17:04:05Z"} {
		_, err := ParsePublishedAt(raw)
		assert.ErrorIs(t, err, ErrInvalidPublishedAt, raw)
	}
}

func TestPopularityFromCode(t *testing.T) {
	class, err := PopularityFromCode(1)
	require.NoError(t, err)
	assert.Equal(t, PopularityPopular, class)

	class, err = PopularityFromCode(0)
	require.NoError(t, err)
	assert.Equal(t, PopularityNotPopular, class)

	_, err = PopularityFromCode(2)
	assert.ErrorIs(t, err, ErrUnknownModelCode)
}

func TestSentimentFromCode(t *testing.T) {
	class, err := SentimentFromCode(1)
	require.NoError(t, err)
	assert.Equal(t, SentimentPositive, class)

	class, err = SentimentFromCode(0)
	require.NoError(t, err)
	assert.Equal(t, SentimentNegative, class)

	_, err = SentimentFromCode(-1)
	assert.ErrorIs(t, err, ErrUnknownModelCode)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		err  error
		want ErrorKind
	}{
		{fmt.Errorf("wrap: %w", ErrInvalidVideoID), ErrorKindValidation},
		{fmt.Errorf("wrap: %w", ErrInvalidPublishedAt), ErrorKindValidation},
		{fmt.Errorf("wrap: %w", ErrCalendarKeyNotFound), ErrorKindValidation},
		{ErrUndefinedFeature, ErrorKindValidation},
		{fmt.Errorf("wrap: %w", ErrVideoNotFound), ErrorKindNotFound},
		{ErrUnavailable, ErrorKindConnectivity},
		{errors.New("dial tcp: connection refused"), ErrorKindConnectivity},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.err), tt.err.Error())
	}
}

func TestIngestReport_SkippedByKind(t *testing.T) {
	report := IngestReport{
		Skipped: []SkippedItem{
			{VideoID: "a", Kind: ErrorKindValidation},
			{VideoID: "b", Kind: ErrorKindValidation},
			{VideoID: "c", Kind: ErrorKindNotFound},
		},
	}

	counts := report.SkippedByKind()
	assert.Equal(t, 2, counts[ErrorKindValidation])
	assert.Equal(t, 1, counts[ErrorKindNotFound])
	assert.Equal(t, 0, counts[ErrorKindConnectivity])
}
