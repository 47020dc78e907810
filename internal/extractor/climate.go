package extractor

import (
	"synapse-go/internal/lexicon"
	"synapse-go/internal/types"
)

// ClimateMarkers counts empathy, politeness and compliance-risk terms in
// user turns. SentimentDelta is left at 0; it needs the classifier.
func ClimateMarkers(conv types.Conversation, loc *lexicon.Locale) types.ClimateMetrics {
	texts := userTokens(conv)
	return types.ClimateMetrics{
		EmpathyMarkers:    countAll(texts, loc.EmpathyMarkers),
		PolitenessMarkers: countAll(texts, loc.PolitenessMarkers),
		ComplianceFlags:   countAll(texts, loc.ComplianceRiskTerms),
	}
}

// SentimentEndpoints returns the first and last user utterances. single is
// true when they are the same turn; ok is false without user turns.
func SentimentEndpoints(conv types.Conversation) (first, last string, single, ok bool) {
	users := conv.UserTurns()
	if len(users) == 0 {
		return "", "", false, false
	}
	return users[0].Content, users[len(users)-1].Content, len(users) == 1, true
}
