package lexicon

// Constants are the numeric thresholds of the feature extractors.
type Constants struct {
	// SecondsPerTurn is the assumed speaking time of one user turn.
	SecondsPerTurn float64

	IdealSpeechRateMin float64 // words per minute
	IdealSpeechRateMax float64
	IdealTalkRatioMin  float64 // percent
	IdealTalkRatioMax  float64

	SilenceMin          float64
	SilenceMax          float64
	SilenceDecayPerWord float64
	IdealSilenceMax     float64

	FillerThreshold float64 // per 100 words

	ClarityTargetSentence float64 // words per sentence
	ClarityTolerance      float64
	ClarityDecayPerWord   float64
	ClarityNoSpeech       float64

	FollowUpKeywords      int
	FollowUpMinWordLength int

	TurnBalanceDivisor float64
	EmpathyMultiplier  float64
}

func DefaultConstants() Constants {
	return Constants{
		SecondsPerTurn: 20,

		IdealSpeechRateMin: 120,
		IdealSpeechRateMax: 160,
		IdealTalkRatioMin:  40,
		IdealTalkRatioMax:  60,

		SilenceMin:          5,
		SilenceMax:          40,
		SilenceDecayPerWord: 0.5,
		IdealSilenceMax:     20,

		FillerThreshold: 3,

		ClarityTargetSentence: 15,
		ClarityTolerance:      5,
		ClarityDecayPerWord:   0.4,
		ClarityNoSpeech:       0,

		FollowUpKeywords:      5,
		FollowUpMinWordLength: 4,

		TurnBalanceDivisor: 50,
		EmpathyMultiplier:  2,
	}
}
