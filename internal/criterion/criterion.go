// Package criterion scores user turns against one rubric criterion using the
// area's keyword table.
package criterion

import (
	"synapse-go/internal/extractor"
	"synapse-go/internal/lexicon"
	"synapse-go/internal/types"
)

const (
	// NeutralScore is returned for a criterion key without a keyword table.
	NeutralScore = 6.0
	// NoEvidenceScore is returned when no user turn matches any keyword.
	NoEvidenceScore = 3.0

	baseTurnScore = 6.0
	perMatchBonus = 0.5
	contextAdjust = 1.0
)

// Score returns the 0–10 score of c. Each user turn with at least one
// keyword scores 6 + 0.5 × distinct keywords matched, +1 with positive
// context, −1 with negative context (both cancel out), clamped to [0,10];
// the result is the mean over matching turns.
func Score(userTurns []types.Turn, c types.Criterion, area types.Area, loc *lexicon.Locale) float64 {
	keywords := loc.Area(area).Criteria[c.Key]
	if len(keywords) == 0 {
		return NeutralScore
	}

	sum, matched := 0.0, 0
	for _, t := range userTurns {
		txt := lexicon.NewText(t.Content)
		n := txt.Distinct(keywords)
		if n == 0 {
			continue
		}
		s := baseTurnScore + perMatchBonus*float64(n) + contextAdjustment(txt, loc)
		sum += extractor.Clamp(s, 0, 10)
		matched++
	}
	if matched == 0 {
		return NoEvidenceScore
	}
	return extractor.Round2(extractor.Clamp(sum/float64(matched), 0, 10))
}

func contextAdjustment(txt lexicon.Text, loc *lexicon.Locale) float64 {
	adj := 0.0
	if txt.HasAny(loc.PositiveContext) {
		adj += contextAdjust
	}
	if txt.HasAny(loc.NegativeContext) {
		adj -= contextAdjust
	}
	return adj
}

// ScoreAll scores every criterion of the scenario, in rubric order.
func ScoreAll(userTurns []types.Turn, sc types.Scenario, loc *lexicon.Locale) []types.CriterionScore {
	out := make([]types.CriterionScore, 0, len(sc.Criteria))
	for _, c := range sc.Criteria {
		out = append(out, types.CriterionScore{
			Key:    c.Key,
			Label:  c.Label,
			Weight: c.Weight,
			Score:  Score(userTurns, c, sc.Area, loc),
		})
	}
	return out
}
