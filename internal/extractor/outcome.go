package extractor

import (
	"synapse-go/internal/lexicon"
	"synapse-go/internal/types"
)

// Next-step quality ordinals.
const (
	NextStepNone     = 0
	NextStepVague    = 1
	NextStepSpecific = 2
	NextStepSMART    = 3
)

// Outcome derives next-step quality from the last user turn and counts
// resolution, decision and action-item keywords over all user turns.
func Outcome(conv types.Conversation, area types.Area, loc *lexicon.Locale) types.OutcomeMetrics {
	tbl := loc.Area(area)
	texts := userTokens(conv)

	m := types.OutcomeMetrics{
		Resolutions: countAll(texts, tbl.Resolution),
		Decisions:   countAll(texts, tbl.Decision),
		ActionItems: countAll(texts, tbl.ActionItems),
	}
	users := conv.UserTurns()
	if len(users) > 0 {
		m.NextStepQuality = NextStepQuality(users[len(users)-1].Content, loc)
	}
	return m
}

// NextStepQuality grades one closing utterance:
// 3 specific action with a date, 2 specific action, 1 vague commitment or a
// bare date, 0 nothing.
func NextStepQuality(s string, loc *lexicon.Locale) int {
	txt := lexicon.NewText(s)
	specific := txt.HasAny(loc.SpecificNextStep)
	dated := hasDate(s, txt, loc)
	switch {
	case specific && dated:
		return NextStepSMART
	case specific:
		return NextStepSpecific
	case dated || txt.HasAny(loc.VagueNextStep):
		return NextStepVague
	default:
		return NextStepNone
	}
}
