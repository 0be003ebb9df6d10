package model

import (
	"errors"
	"fmt"
	"math"
)

// CentroidModel standardizes each feature row and assigns it to the nearest centroid.
// The centroid index is the cluster code.
type CentroidModel struct {
	Features  []string    `yaml:"features"`
	Scaler    Scaler      `yaml:"scaler"`
	Centroids [][]float64 `yaml:"centroids"`
}

// Scaler holds per-feature standardization parameters
type Scaler struct {
	Mean  []float64 `yaml:"mean"`
	Scale []float64 `yaml:"scale"`
}

func (m *CentroidModel) validate() error {
	n := len(m.Features)
	if n == 0 {
		return errors.New("no features declared")
	}
	if len(m.Scaler.Mean) != n || len(m.Scaler.Scale) != n {
		return fmt.Errorf("scaler has %d means and %d scales for %d features", len(m.Scaler.Mean), len(m.Scaler.Scale), n)
	}
	if len(m.Centroids) == 0 {
		return errors.New("no centroids")
	}
	for i, c := range m.Centroids {
		if len(c) != n {
			return fmt.Errorf("centroid %d has %d dimensions, want %d", i, len(c), n)
		}
	}
	return nil
}

// Predict returns the nearest-centroid code for every row
func (m *CentroidModel) Predict(features [][]float64) ([]int, error) {
	codes := make([]int, len(features))
	for i, row := range features {
		if len(row) != len(m.Features) {
			return nil, fmt.Errorf("row %d has %d features, want %d", i, len(row), len(m.Features))
		}

		best, bestDist := 0, math.Inf(1)
		for c, centroid := range m.Centroids {
			var dist float64
			for j, x := range row {
				scale := m.Scaler.Scale[j]
				if scale == 0 {
					scale = 1
				}
				d := (x-m.Scaler.Mean[j])/scale - centroid[j]
				dist += d * d
			}
			if dist < bestDist {
				best, bestDist = c, dist
			}
		}
		codes[i] = best
	}
	return codes, nil
}
