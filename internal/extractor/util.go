// Package extractor derives numeric signals from one conversation. Every
// function is pure and total: empty input returns the documented fallback
// instead of dividing by zero.
package extractor

import (
	"math"
	"regexp"

	"synapse-go/internal/lexicon"
	"synapse-go/internal/types"
)

var (
	sentenceSplit = regexp.MustCompile(`[.!?]+`)
	datePattern   = regexp.MustCompile(`\b\d{1,2}/\d{1,2}(?:/\d{2,4})?\b`)
	dayPattern    = regexp.MustCompile(`\b(?:dia|day) \d{1,2}\b`)
	numberPattern = regexp.MustCompile(`\d+(?:[.,]\d+)*%?`)
)

// Round2 rounds to two decimals and maps NaN/Inf to 0.
func Round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Round(v*100) / 100
}

// Clamp limits v to [lo, hi]; NaN becomes lo.
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func wordCount(s string) int {
	return len(lexicon.Tokens(s))
}

func userTexts(conv types.Conversation) []string {
	var out []string
	for _, t := range conv.UserTurns() {
		out = append(out, t.Content)
	}
	return out
}

// userTokens tokenizes every user turn separately so phrases never span two turns.
func userTokens(conv types.Conversation) []lexicon.Text {
	var out []lexicon.Text
	for _, s := range userTexts(conv) {
		out = append(out, lexicon.NewText(s))
	}
	return out
}

func countAll(texts []lexicon.Text, phrases []string) int {
	n := 0
	for _, t := range texts {
		n += t.CountAll(phrases)
	}
	return n
}

func hasAny(texts []lexicon.Text, phrases []string) bool {
	for _, t := range texts {
		if t.HasAny(phrases) {
			return true
		}
	}
	return false
}

func stdev(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	mean := 0.0
	for _, x := range xs {
		mean += x
	}
	mean /= float64(len(xs))
	ss := 0.0
	for _, x := range xs {
		ss += (x - mean) * (x - mean)
	}
	return math.Sqrt(ss / float64(len(xs)))
}

// hasDate reports a date-like reference: 15/03, "dia 15", a weekday, a
// relative day or a month name.
func hasDate(raw string, txt lexicon.Text, loc *lexicon.Locale) bool {
	if datePattern.MatchString(raw) || dayPattern.MatchString(lexicon.Normalize(raw)) {
		return true
	}
	return txt.HasAny(loc.DateMarkers) || txt.HasAny(loc.MonthNames)
}
