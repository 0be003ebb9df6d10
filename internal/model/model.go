package model

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/feral-file/ff-video-warehouse/internal/adapter"
)

// PopularityModel is the black-box clusterer for the popularity pass
//
//go:generate mockgen -source=model.go -destination=../mocks/model.go -package=mocks -mock_names=PopularityModel=MockPopularityModel,SentimentModel=MockSentimentModel
type PopularityModel interface {
	// Predict returns one cluster code per feature row
	Predict(features [][]float64) ([]int, error)
}

// SentimentModel is the black-box classifier for the sentiment pass
type SentimentModel interface {
	// Predict returns one class code per cleaned text
	Predict(texts []string) ([]int, error)
}

// Loader reads model artifacts from disk. Artifacts are YAML documents;
// JSON artifacts load as well.
type Loader struct {
	fs adapter.FileSystem
}

// NewLoader creates a new artifact loader
func NewLoader(fs adapter.FileSystem) *Loader {
	return &Loader{fs: fs}
}

// LoadPopularity loads and validates a centroid clusterer artifact
func (l *Loader) LoadPopularity(path string) (*CentroidModel, error) {
	var m CentroidModel
	if err := l.decode(path, &m); err != nil {
		return nil, err
	}
	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("invalid popularity artifact %s: %w", path, err)
	}
	return &m, nil
}

// LoadSentiment loads and validates a linear text classifier artifact
func (l *Loader) LoadSentiment(path string) (*LinearTextModel, error) {
	var m LinearTextModel
	if err := l.decode(path, &m); err != nil {
		return nil, err
	}
	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("invalid sentiment artifact %s: %w", path, err)
	}
	return &m, nil
}

func (l *Loader) decode(path string, out any) error {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read model artifact: %w", err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode model artifact %s: %w", path, err)
	}
	return nil
}
