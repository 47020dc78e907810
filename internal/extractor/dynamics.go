package extractor

import (
	"math"
	"strings"
	"unicode/utf8"

	"synapse-go/internal/lexicon"
	"synapse-go/internal/types"
)

// Dynamics computes question technique and turn-taking metrics.
func Dynamics(conv types.Conversation, loc *lexicon.Locale, k lexicon.Constants) types.ConversationMetrics {
	var m types.ConversationMetrics
	m.OpenQuestionRate = OpenQuestionRate(conv, loc)
	m.FollowUpRate = FollowUpRate(conv, loc, k)
	m.TurnBalance = TurnBalance(conv, k)

	empathy := countAll(userTokens(conv), loc.EmpathyMarkers)
	m.EmpathyScore = Round2(math.Min(10, k.EmpathyMultiplier*float64(empathy)))
	return m
}

// OpenQuestionRate is the share of user turns containing "?" that also
// contain an open-question marker, as a percentage. 0 when no user turn asks.
func OpenQuestionRate(conv types.Conversation, loc *lexicon.Locale) float64 {
	questions, open := 0, 0
	for _, t := range conv.UserTurns() {
		if !strings.Contains(t.Content, "?") {
			continue
		}
		questions++
		if lexicon.NewText(t.Content).HasAny(loc.OpenQuestionMarkers) {
			open++
		}
	}
	if questions == 0 {
		return 0
	}
	return Round2(float64(open) / float64(questions) * 100)
}

// FollowUpRate is the share of user turns that reuse one of the leading
// keywords of the AI turn right before them, as a percentage. A user turn
// with no AI turn right before it counts as not following up.
func FollowUpRate(conv types.Conversation, loc *lexicon.Locale, k lexicon.Constants) float64 {
	users, follows := 0, 0
	for i, t := range conv.Turns {
		if t.Speaker != types.SpeakerUser {
			continue
		}
		users++
		if i == 0 || conv.Turns[i-1].Speaker != types.SpeakerAI {
			continue
		}
		kws := LeadingKeywords(conv.Turns[i-1].Content, loc, k)
		if lexicon.NewText(t.Content).HasAny(kws) {
			follows++
		}
	}
	if users == 0 {
		return 0
	}
	return Round2(float64(follows) / float64(users) * 100)
}

// LeadingKeywords returns the first FollowUpKeywords distinct non-stopword
// tokens of s that have at least FollowUpMinWordLength runes.
func LeadingKeywords(s string, loc *lexicon.Locale, k lexicon.Constants) []string {
	var out []string
	seen := map[string]bool{}
	for _, tok := range lexicon.Tokens(s) {
		if len(out) >= k.FollowUpKeywords {
			break
		}
		if utf8.RuneCountInString(tok) < k.FollowUpMinWordLength || seen[tok] || loc.IsStopword(tok) {
			continue
		}
		seen[tok] = true
		out = append(out, tok)
	}
	return out
}

// TurnBalance is 10 − min(10, stdev(turn lengths in runes) / TurnBalanceDivisor)
// over all turns. Fewer than two turns have no spread and score 10.
func TurnBalance(conv types.Conversation, k lexicon.Constants) float64 {
	lengths := make([]float64, 0, len(conv.Turns))
	for _, t := range conv.Turns {
		lengths = append(lengths, float64(utf8.RuneCountInString(strings.TrimSpace(t.Content))))
	}
	sd := stdev(lengths)
	return Round2(10 - math.Min(10, sd/k.TurnBalanceDivisor))
}
