// Package sentiment defines the classifier collaborator used for the climate
// sentiment delta, its deterministic lexical fallback, and two remote
// implementations.
package sentiment

import (
	"context"
	"fmt"
	"math"
	"strings"

	"synapse-go/internal/lexicon"
)

type Label string

const (
	Positive Label = "POSITIVE"
	Negative Label = "NEGATIVE"
	Neutral  Label = "NEUTRAL"
)

// Classification is the classifier verdict for one utterance. Score is the
// confidence in [0,1].
type Classification struct {
	Label Label   `json:"label"`
	Score float64 `json:"score"`
}

// Validate rejects unknown labels and scores outside [0,1].
func (c Classification) Validate() error {
	switch c.Label {
	case Positive, Negative, Neutral:
	default:
		return fmt.Errorf("unknown sentiment label %q", c.Label)
	}
	if math.IsNaN(c.Score) || c.Score < 0 || c.Score > 1 {
		return fmt.Errorf("sentiment score %v outside [0,1]", c.Score)
	}
	return nil
}

// Classifier labels the sentiment of a text. Implementations may fail;
// callers go through Resolve, which falls back to Lexical.
type Classifier interface {
	Classify(ctx context.Context, text string) (Classification, error)
}

// Polarity maps a classification to [-1,1]: POSITIVE +score, NEGATIVE −score, NEUTRAL 0.
func Polarity(c Classification) float64 {
	switch c.Label {
	case Positive:
		return c.Score
	case Negative:
		return -c.Score
	default:
		return 0
	}
}

// Lexical is the deterministic fallback classifier: (positive − negative) /
// max(1, positive + negative) word matches gives the polarity, its sign the
// label and its magnitude the score.
func Lexical(text string, loc *lexicon.Locale) Classification {
	txt := lexicon.NewText(text)
	pos := txt.CountAll(loc.PositiveWords)
	neg := txt.CountAll(loc.NegativeWords)
	total := pos + neg
	if total < 1 {
		total = 1
	}
	p := float64(pos-neg) / float64(total)
	switch {
	case p > 0:
		return Classification{Label: Positive, Score: p}
	case p < 0:
		return Classification{Label: Negative, Score: -p}
	default:
		return Classification{Label: Neutral, Score: 0}
	}
}

// LexicalClassifier exposes Lexical as a Classifier. It never fails.
type LexicalClassifier struct {
	Locale *lexicon.Locale
}

func (l LexicalClassifier) Classify(_ context.Context, text string) (Classification, error) {
	loc := l.Locale
	if loc == nil {
		loc = lexicon.Default()
	}
	return Lexical(text, loc), nil
}

func normalizeLabel(l Label) Label {
	return Label(strings.ToUpper(strings.TrimSpace(string(l))))
}
