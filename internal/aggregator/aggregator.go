// Package aggregator runs the feature extractors and the criterion scorer
// over one conversation and folds the results into five normalized category
// scores and one weighted overall score.
package aggregator

import (
	"math"

	"synapse-go/internal/criterion"
	"synapse-go/internal/extractor"
	"synapse-go/internal/lexicon"
	"synapse-go/internal/types"
)

const (
	// ContentNeutralScore is the content score of a scenario without criteria.
	ContentNeutralScore = 5.0
	// NoSpeechOverallScore is the overall score of a conversation in which the
	// user never spoke.
	NoSpeechOverallScore = 0.0
)

// Weights of the five categories in the overall score. They sum to 1.
type Weights struct {
	Speech       float64 `toml:"speech"`
	Conversation float64 `toml:"conversation"`
	Content      float64 `toml:"content"`
	Outcome      float64 `toml:"outcome"`
	Climate      float64 `toml:"climate"`
}

var DefaultWeights = Weights{
	Speech:       0.20,
	Conversation: 0.25,
	Content:      0.30,
	Outcome:      0.15,
	Climate:      0.10,
}

// Band is an ideal interval of a speech metric. Values outside it lose
// Decay points per unit of distance from the nearest edge.
type Band struct {
	Min, Max float64
	Decay    float64
}

// Score maps v to [0,10].
func (b Band) Score(v float64) float64 {
	var dist float64
	switch {
	case v < b.Min:
		dist = b.Min - v
	case v > b.Max:
		dist = v - b.Max
	}
	return extractor.Clamp(10-dist*b.Decay, 0, 10)
}

// SpeechBands are the ideal intervals of the four banded speech metrics.
type SpeechBands struct {
	Rate, Talk, Silence, Filler Band
}

// DefaultSpeechBands derives the bands from the extractor constants.
func DefaultSpeechBands(k lexicon.Constants) SpeechBands {
	return SpeechBands{
		Rate:    Band{Min: k.IdealSpeechRateMin, Max: k.IdealSpeechRateMax, Decay: 0.1},
		Talk:    Band{Min: k.IdealTalkRatioMin, Max: k.IdealTalkRatioMax, Decay: 0.25},
		Silence: Band{Min: k.SilenceMin, Max: k.IdealSilenceMax, Decay: 0.25},
		Filler:  Band{Min: 0, Max: k.FillerThreshold, Decay: 1},
	}
}

// Sentiment is the classifier verdict on the first and last user turns.
type Sentiment struct {
	Delta    float64
	Fallback bool
}

type Aggregator struct {
	locale    *lexicon.Locale
	constants lexicon.Constants
	weights   Weights
	bands     SpeechBands
}

func New(loc *lexicon.Locale, k lexicon.Constants, w Weights) *Aggregator {
	if loc == nil {
		loc = lexicon.Default()
	}
	return &Aggregator{locale: loc, constants: k, weights: w, bands: DefaultSpeechBands(k)}
}

// Aggregate builds the full metrics result. conv must already be a snapshot;
// the aggregator never mutates it.
func (a *Aggregator) Aggregate(conv types.Conversation, sc types.Scenario, s Sentiment) types.MetricsResult {
	users := conv.UserTurns()

	m := types.MetricsResult{
		Speech:       extractor.Speech(conv, a.locale, a.constants),
		Conversation: extractor.Dynamics(conv, a.locale, a.constants),
		Content:      extractor.Content(conv, sc.Area, a.locale),
		Outcome:      extractor.Outcome(conv, sc.Area, a.locale),
		Climate:      extractor.ClimateMarkers(conv, a.locale),
	}
	m.Content.CriteriaScores = criterion.ScoreAll(users, sc, a.locale)
	m.Climate.SentimentDelta = extractor.Round2(extractor.Clamp(s.Delta, -2, 2))
	m.Climate.SentimentFallback = s.Fallback

	m.CategoryScores = types.CategoryScores{
		Speech:       SpeechScore(m.Speech, a.bands),
		Conversation: ConversationScore(m.Conversation),
		Content:      ContentScore(m.Content.CriteriaScores),
		Outcome:      OutcomeScore(m.Outcome),
		Climate:      ClimateScore(m.Climate),
	}
	if len(users) == 0 {
		m.OverallScore = NoSpeechOverallScore
	} else {
		m.OverallScore = Overall(m.CategoryScores, a.weights)
	}
	return m
}

// SpeechScore is the mean of the five speech band scores.
func SpeechScore(sm types.SpeechMetrics, b SpeechBands) float64 {
	sum := b.Rate.Score(sm.SpeechRate) +
		b.Talk.Score(sm.TalkRatio) +
		b.Silence.Score(sm.SilenceRatio) +
		b.Filler.Score(sm.FillerDensity) +
		extractor.Clamp(sm.Clarity, 0, 10)
	return extractor.Round2(sum / 5)
}

// ConversationScore is the mean of open-question rate and follow-up rate
// (both rescaled to 0–10), turn balance and empathy score.
func ConversationScore(cm types.ConversationMetrics) float64 {
	sum := cm.OpenQuestionRate/10 + cm.FollowUpRate/10 + cm.TurnBalance + cm.EmpathyScore
	return extractor.Round2(extractor.Clamp(sum/4, 0, 10))
}

// ContentScore is the weighted mean of the criterion scores. All-zero
// weights fall back to the plain mean, no criteria to ContentNeutralScore.
func ContentScore(scores []types.CriterionScore) float64 {
	if len(scores) == 0 {
		return ContentNeutralScore
	}
	var sum, wsum, plain float64
	for _, c := range scores {
		sum += c.Score * c.Weight
		wsum += c.Weight
		plain += c.Score
	}
	if wsum <= 0 {
		return extractor.Round2(extractor.Clamp(plain/float64(len(scores)), 0, 10))
	}
	return extractor.Round2(extractor.Clamp(sum/wsum, 0, 10))
}

// OutcomeScore is 50 % next-step quality, 20 % resolutions, 15 % decisions
// and 15 % action items, each rescaled to 0–10.
func OutcomeScore(om types.OutcomeMetrics) float64 {
	quality := float64(om.NextStepQuality) / 3 * 10
	s := 0.5*quality +
		0.2*math.Min(10, 2*float64(om.Resolutions)) +
		0.15*math.Min(10, 2.5*float64(om.Decisions)) +
		0.15*math.Min(10, 2.5*float64(om.ActionItems))
	return extractor.Round2(extractor.Clamp(s, 0, 10))
}

// ClimateScore is 40 % sentiment trend, 30 % empathy and 30 % politeness
// markers, minus 1.5 per compliance-risk flag.
func ClimateScore(cm types.ClimateMetrics) float64 {
	trend := extractor.Clamp(5+2.5*cm.SentimentDelta, 0, 10)
	s := 0.4*trend +
		0.3*math.Min(10, 2*float64(cm.EmpathyMarkers)) +
		0.3*math.Min(10, 2*float64(cm.PolitenessMarkers)) -
		1.5*float64(cm.ComplianceFlags)
	return extractor.Round2(extractor.Clamp(s, 0, 10))
}

// Overall is the weighted sum of the category scores, clamped to [0,10].
func Overall(cs types.CategoryScores, w Weights) float64 {
	s := cs.Speech*w.Speech +
		cs.Conversation*w.Conversation +
		cs.Content*w.Content +
		cs.Outcome*w.Outcome +
		cs.Climate*w.Climate
	return extractor.Round2(extractor.Clamp(s, 0, 10))
}
