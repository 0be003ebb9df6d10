package model

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-video-warehouse/internal/mocks"
)

const popularityArtifact = `
features: [likes_to_views, title_length, days_since_published, published_year]
scaler:
  mean: [0.05, 40, 300, 2020]
  scale: [0.02, 10, 100, 2]
centroids:
  - [-1, 0, 0, 0]
  - [3, 0, 0, 0]
`

const sentimentArtifact = `
vocabulary:
  great: 0
  love: 1
  awful: 2
coef: [1.5, 2.0, -3.0]
intercept: -0.1
`

func TestLoader_LoadPopularity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	fs := mocks.NewMockFileSystem(ctrl)

	fs.EXPECT().ReadFile("popularity.yaml").Return([]byte(popularityArtifact), nil)

	m, err := NewLoader(fs).LoadPopularity("popularity.yaml")
	require.NoError(t, err)
	assert.Len(t, m.Features, 4)
	assert.Len(t, m.Centroids, 2)

	codes, err := m.Predict([][]float64{
		{0.03, 40, 300, 2020}, // standardized ratio -1
		{0.11, 40, 300, 2020}, // standardized ratio 3
	})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, codes)
}

func TestLoader_LoadPopularity_JSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	fs := mocks.NewMockFileSystem(ctrl)

	fs.EXPECT().ReadFile("popularity.json").Return([]byte(`{"features": ["a"], "scaler": {"mean": [0], "scale": [1]}, "centroids": [[0], [10]]}`), nil)

	m, err := NewLoader(fs).LoadPopularity("popularity.json")
	require.NoError(t, err)

	codes, err := m.Predict([][]float64{{1}, {9}})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, codes)
}

func TestLoader_LoadPopularity_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		artifact string
	}{
		{"no features", "centroids: [[1]]"},
		{"scaler mismatch", "features: [a, b]\nscaler: {mean: [0], scale: [1]}\ncentroids: [[0, 0]]"},
		{"no centroids", "features: [a]\nscaler: {mean: [0], scale: [1]}"},
		{"centroid dimension", "features: [a]\nscaler: {mean: [0], scale: [1]}\ncentroids: [[0, 1]]"},
		{"not yaml", "features: [a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			fs := mocks.NewMockFileSystem(ctrl)
			fs.EXPECT().ReadFile("m.yaml").Return([]byte(tt.artifact), nil)

			m, err := NewLoader(fs).LoadPopularity("m.yaml")
			assert.Error(t, err)
			assert.Nil(t, m)
		})
	}
}

func TestLoader_ReadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	fs := mocks.NewMockFileSystem(ctrl)

	readErr := errors.New("no such file")
	fs.EXPECT().ReadFile("missing.yaml").Return(nil, readErr).Times(2)

	_, err := NewLoader(fs).LoadPopularity("missing.yaml")
	assert.ErrorIs(t, err, readErr)

	_, err = NewLoader(fs).LoadSentiment("missing.yaml")
	assert.ErrorIs(t, err, readErr)
}

func TestCentroidModel_Predict(t *testing.T) {
	m := &CentroidModel{
		Features:  []string{"a", "b"},
		Scaler:    Scaler{Mean: []float64{0, 0}, Scale: []float64{1, 0}},
		Centroids: [][]float64{{0, 0}, {5, 5}},
	}

	t.Run("zero scale passes the value through", func(t *testing.T) {
		codes, err := m.Predict([][]float64{{4, 6}, {1, -1}})
		require.NoError(t, err)
		assert.Equal(t, []int{1, 0}, codes)
	})

	t.Run("empty input", func(t *testing.T) {
		codes, err := m.Predict(nil)
		require.NoError(t, err)
		assert.Empty(t, codes)
	})

	t.Run("wrong width", func(t *testing.T) {
		_, err := m.Predict([][]float64{{1}})
		assert.Error(t, err)
	})
}

func TestLoader_LoadSentiment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	fs := mocks.NewMockFileSystem(ctrl)

	fs.EXPECT().ReadFile("sentiment.yaml").Return([]byte(sentimentArtifact), nil)

	m, err := NewLoader(fs).LoadSentiment("sentiment.yaml")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, m.Classes)

	codes, err := m.Predict([]string{
		"i love this great song",
		"awful",
		"unrelated words only",
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 0}, codes)
}

func TestLoader_LoadSentiment_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		artifact string
	}{
		{"empty vocabulary", "coef: [1]"},
		{"no coefficients", "vocabulary: {a: 0}"},
		{"index out of range", "vocabulary: {a: 3}\ncoef: [1]"},
		{"idf mismatch", "vocabulary: {a: 0}\ncoef: [1]\nidf: [1, 2]"},
		{"three classes", "vocabulary: {a: 0}\ncoef: [1]\nclasses: [0, 1, 2]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			fs := mocks.NewMockFileSystem(ctrl)
			fs.EXPECT().ReadFile("m.yaml").Return([]byte(tt.artifact), nil)

			m, err := NewLoader(fs).LoadSentiment("m.yaml")
			assert.Error(t, err)
			assert.Nil(t, m)
		})
	}
}

func TestLinearTextModel_IDF(t *testing.T) {
	m := &LinearTextModel{
		Vocabulary: map[string]int{"good": 0, "bad": 1},
		IDF:        []float64{1, 4},
		Coef:       []float64{1, -1},
		Classes:    []int{0, 1},
	}

	// IDF weighting lets one "bad" outweigh three "good"
	codes, err := m.Predict([]string{"good good good bad", "good"})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, codes)
}
