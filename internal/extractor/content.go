package extractor

import (
	"synapse-go/internal/lexicon"
	"synapse-go/internal/types"
)

// Content computes topic coverage and evidence density. Criterion scores are
// added by the aggregator.
func Content(conv types.Conversation, area types.Area, loc *lexicon.Locale) types.ContentMetrics {
	return types.ContentMetrics{
		TopicCoverage:   TopicCoverage(conv, area, loc),
		EvidenceDensity: EvidenceDensity(conv, loc),
	}
}

// TopicCoverage is the percentage of the area's expected topics mentioned in
// any user turn. An area without topics covers 0.
func TopicCoverage(conv types.Conversation, area types.Area, loc *lexicon.Locale) float64 {
	topics := loc.Area(area).Topics
	if len(topics) == 0 {
		return 0
	}
	texts := userTokens(conv)
	hit := 0
	for _, tp := range topics {
		if hasAny(texts, tp.Keywords) {
			hit++
		}
	}
	return Round2(float64(hit) / float64(len(topics)) * 100)
}

// EvidenceDensity averages, over user turns, the count of numbers, dates,
// month names, relative days and example markers. 0 without user turns.
func EvidenceDensity(conv types.Conversation, loc *lexicon.Locale) float64 {
	users := conv.UserTurns()
	if len(users) == 0 {
		return 0
	}
	total := 0
	for _, t := range users {
		total += EvidenceCount(t.Content, loc)
	}
	return Round2(float64(total) / float64(len(users)))
}

// EvidenceCount counts evidence markers in one utterance. A numeric date
// counts once, not once per number.
func EvidenceCount(s string, loc *lexicon.Locale) int {
	n := len(datePattern.FindAllStringIndex(s, -1))
	rest := datePattern.ReplaceAllString(s, " ")
	n += len(numberPattern.FindAllStringIndex(rest, -1))

	txt := lexicon.NewText(s)
	n += txt.CountAll(loc.ExampleMarkers)
	n += txt.CountAll(loc.MonthNames)
	n += txt.CountAll(loc.DateMarkers)
	return n
}
