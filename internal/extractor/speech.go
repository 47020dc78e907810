package extractor

import (
	"synapse-go/internal/lexicon"
	"synapse-go/internal/types"
)

// Speech computes pacing and delivery metrics for the user side.
//
//   - SpeechRate: user words / (user turns × SecondsPerTurn) in words per minute; 0 without words.
//   - TalkRatio: user words / all words × 100; 0 without words.
//   - SilenceRatio: SilenceMax − SilenceDecayPerWord × average user turn words, clamped to [SilenceMin, SilenceMax].
//   - FillerDensity: filler matches per 100 user words; 0 without words.
//   - Clarity: see Clarity.
func Speech(conv types.Conversation, loc *lexicon.Locale, k lexicon.Constants) types.SpeechMetrics {
	users := conv.UserTurns()
	userWords, aiWords := 0, 0
	fillers := 0
	var sentences []int
	for _, t := range conv.Turns {
		n := wordCount(t.Content)
		if t.Speaker != types.SpeakerUser {
			aiWords += n
			continue
		}
		userWords += n
		fillers += lexicon.NewText(t.Content).CountAll(loc.Fillers)
		sentences = append(sentences, SentenceLengths(t.Content)...)
	}

	var m types.SpeechMetrics
	if userWords > 0 && len(users) > 0 {
		minutes := float64(len(users)) * k.SecondsPerTurn / 60
		m.SpeechRate = float64(userWords) / minutes
		m.FillerDensity = float64(fillers) / float64(userWords) * 100
	}
	if total := userWords + aiWords; total > 0 {
		m.TalkRatio = float64(userWords) / float64(total) * 100
	}

	avgTurn := 0.0
	if len(users) > 0 {
		avgTurn = float64(userWords) / float64(len(users))
	}
	m.SilenceRatio = Clamp(k.SilenceMax-k.SilenceDecayPerWord*avgTurn, k.SilenceMin, k.SilenceMax)
	m.Clarity = Clarity(sentences, k)

	m.SpeechRate = Round2(m.SpeechRate)
	m.TalkRatio = Round2(Clamp(m.TalkRatio, 0, 100))
	m.SilenceRatio = Round2(m.SilenceRatio)
	m.FillerDensity = Round2(m.FillerDensity)
	m.Clarity = Round2(m.Clarity)
	return m
}

// SentenceLengths splits s on sentence punctuation and returns the word
// count of every non-empty sentence.
func SentenceLengths(s string) []int {
	var out []int
	for _, part := range sentenceSplit.Split(s, -1) {
		if n := wordCount(part); n > 0 {
			out = append(out, n)
		}
	}
	return out
}

// Clarity is 10 while the average sentence length stays within
// ClarityTolerance of ClarityTargetSentence and loses ClarityDecayPerWord per
// word outside that band. No sentences gives ClarityNoSpeech.
func Clarity(sentenceLengths []int, k lexicon.Constants) float64 {
	if len(sentenceLengths) == 0 {
		return k.ClarityNoSpeech
	}
	sum := 0
	for _, n := range sentenceLengths {
		sum += n
	}
	avg := float64(sum) / float64(len(sentenceLengths))
	off := avg - k.ClarityTargetSentence
	if off < 0 {
		off = -off
	}
	off -= k.ClarityTolerance
	if off <= 0 {
		return 10
	}
	return Clamp(10-off*k.ClarityDecayPerWord, 0, 10)
}
