package enrichment

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/feral-file/ff-video-warehouse/internal/domain"
	"github.com/feral-file/ff-video-warehouse/internal/store"
)

// PopularityFeatureNames is the column order of a popularity feature row
var PopularityFeatureNames = []string{"likes_to_views", "title_length", "days_since_published", "published_year"}

// PopularityFeatures derives the popularity feature row of a fact as of now.
// Zero views leave the like ratio undefined; an age of zero days counts as one.
func PopularityFeatures(c store.PopularityCandidate, now time.Time) ([]float64, error) {
	if c.TotalViews <= 0 {
		return nil, fmt.Errorf("%w: total_views is %d", domain.ErrUndefinedFeature, c.TotalViews)
	}

	published := c.PublishedAt.UTC()
	days := int(now.UTC().Sub(published).Hours() / 24)
	if days == 0 {
		days = 1
	}

	return []float64{
		float64(c.TotalLikes) / float64(c.TotalViews),
		float64(utf8.RuneCountInString(c.Title)),
		float64(days),
		float64(published.Year()),
	}, nil
}

// CleanTranscript lowercases text, replaces everything but letters with spaces
// and collapses runs of whitespace
func CleanTranscript(text string) string {
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, text)
	return strings.Join(strings.Fields(mapped), " ")
}

// SentimentFeatures returns the cleaned transcript of a video.
// A missing or letter-free transcript leaves the input undefined.
func SentimentFeatures(c store.SentimentCandidate) (string, error) {
	if c.Transcript == nil {
		return "", fmt.Errorf("%w: no transcript", domain.ErrUndefinedFeature)
	}
	cleaned := CleanTranscript(*c.Transcript)
	if cleaned == "" {
		return "", fmt.Errorf("%w: transcript has no words", domain.ErrUndefinedFeature)
	}
	return cleaned, nil
}
