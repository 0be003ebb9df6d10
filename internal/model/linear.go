package model

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// LinearTextModel is a bag-of-words linear classifier.
// Term counts are optionally IDF weighted and L2 normalized before scoring;
// a positive score selects Classes[1], otherwise Classes[0].
type LinearTextModel struct {
	Vocabulary map[string]int `yaml:"vocabulary"`
	IDF        []float64      `yaml:"idf"`
	Coef       []float64      `yaml:"coef"`
	Intercept  float64        `yaml:"intercept"`
	Classes    []int          `yaml:"classes"`
}

func (m *LinearTextModel) validate() error {
	if len(m.Vocabulary) == 0 {
		return errors.New("empty vocabulary")
	}
	if len(m.Coef) == 0 {
		return errors.New("no coefficients")
	}
	for term, idx := range m.Vocabulary {
		if idx < 0 || idx >= len(m.Coef) {
			return fmt.Errorf("term %q has index %d outside %d coefficients", term, idx, len(m.Coef))
		}
	}
	if len(m.IDF) != 0 && len(m.IDF) != len(m.Coef) {
		return fmt.Errorf("idf has %d weights for %d coefficients", len(m.IDF), len(m.Coef))
	}
	if len(m.Classes) == 0 {
		m.Classes = []int{0, 1}
	}
	if len(m.Classes) != 2 {
		return fmt.Errorf("binary classifier needs 2 classes, got %d", len(m.Classes))
	}
	return nil
}

// Predict returns the class code for every text
func (m *LinearTextModel) Predict(texts []string) ([]int, error) {
	codes := make([]int, len(texts))
	for i, text := range texts {
		if m.score(text) > 0 {
			codes[i] = m.Classes[1]
		} else {
			codes[i] = m.Classes[0]
		}
	}
	return codes, nil
}

func (m *LinearTextModel) score(text string) float64 {
	weights := make(map[int]float64)
	for _, term := range strings.Fields(text) {
		if idx, ok := m.Vocabulary[term]; ok {
			weights[idx]++
		}
	}

	var norm float64
	for idx, w := range weights {
		if len(m.IDF) != 0 {
			w *= m.IDF[idx]
			weights[idx] = w
		}
		norm += w * w
	}
	norm = math.Sqrt(norm)

	score := m.Intercept
	for idx, w := range weights {
		if norm > 0 {
			w /= norm
		}
		score += w * m.Coef[idx]
	}
	return score
}
