package aggregator

import (
	"math"
	"testing"

	"synapse-go/internal/lexicon"
	"synapse-go/internal/types"
)

var salesScenario = types.Scenario{
	ID:    "sales-discovery",
	Area:  types.AreaCommercial,
	Title: "Descoberta de necessidades",
	Criteria: []types.Criterion{
		{Key: "rapport", Label: "Rapport", Weight: 1},
		{Key: "needs_discovery", Label: "Descoberta", Weight: 2},
		{Key: "closing", Label: "Fechamento", Weight: 1},
		{Key: "storytelling", Label: "Storytelling", Weight: 1},
	},
}

func salesConversation() types.Conversation {
	texts := []struct {
		sp types.Speaker
		s  string
	}{
		{types.SpeakerUser, "Bom dia! Prazer em conhecer. Como funciona o processo atual de vendas de vocês?"},
		{types.SpeakerAI, "Hoje usamos planilhas e o time perde muito tempo com isso."},
		{types.SpeakerUser, "Entendo. Qual é o maior desafio com as planilhas hoje?"},
		{types.SpeakerAI, "Erros de digitação e falta de visibilidade do funil."},
		{types.SpeakerUser, "Faz sentido. Nossa ferramenta reduziu 30% dos erros em clientes parecidos, por exemplo."},
		{types.SpeakerAI, "Interessante, mas o orçamento está apertado."},
		{types.SpeakerUser, "Compreendo a preocupação. Vou enviar a proposta até sexta-feira e agendamos uma reunião, combinado?"},
	}
	var conv types.Conversation
	for i, t := range texts {
		conv.Turns = append(conv.Turns, types.Turn{Speaker: t.sp, Content: t.s, Timestamp: int64(i * 1000)})
	}
	return conv
}

func inRange(t *testing.T, name string, v, lo, hi float64) {
	t.Helper()
	if math.IsNaN(v) || v < lo || v > hi {
		t.Errorf("%s = %v, want within [%v, %v]", name, v, lo, hi)
	}
}

func checkRanges(t *testing.T, m types.MetricsResult) {
	t.Helper()
	inRange(t, "speech rate", m.Speech.SpeechRate, 0, math.MaxFloat64)
	inRange(t, "talk ratio", m.Speech.TalkRatio, 0, 100)
	inRange(t, "silence ratio", m.Speech.SilenceRatio, 5, 40)
	inRange(t, "filler density", m.Speech.FillerDensity, 0, math.MaxFloat64)
	inRange(t, "clarity", m.Speech.Clarity, 0, 10)
	inRange(t, "open question rate", m.Conversation.OpenQuestionRate, 0, 100)
	inRange(t, "follow-up rate", m.Conversation.FollowUpRate, 0, 100)
	inRange(t, "turn balance", m.Conversation.TurnBalance, 0, 10)
	inRange(t, "empathy", m.Conversation.EmpathyScore, 0, 10)
	inRange(t, "topic coverage", m.Content.TopicCoverage, 0, 100)
	for _, c := range m.Content.CriteriaScores {
		inRange(t, "criterion "+c.Key, c.Score, 0, 10)
	}
	inRange(t, "next step quality", float64(m.Outcome.NextStepQuality), 0, 3)
	inRange(t, "sentiment delta", m.Climate.SentimentDelta, -2, 2)
	cs := m.CategoryScores
	for name, v := range map[string]float64{
		"speech": cs.Speech, "conversation": cs.Conversation, "content": cs.Content,
		"outcome": cs.Outcome, "climate": cs.Climate, "overall": m.OverallScore,
	} {
		inRange(t, name, v, 0, 10)
	}
}

func TestAggregateRanges(t *testing.T) {
	a := New(lexicon.Default(), lexicon.DefaultConstants(), DefaultWeights)
	convs := map[string]types.Conversation{
		"sales":   salesConversation(),
		"empty":   {},
		"ai only": {Turns: []types.Turn{{Speaker: types.SpeakerAI, Content: "Olá?"}}},
		"silent":  {Turns: []types.Turn{{Speaker: types.SpeakerUser, Content: ""}}},
	}
	for name, conv := range convs {
		t.Run(name, func(t *testing.T) {
			m := a.Aggregate(conv, salesScenario, Sentiment{Delta: 5})
			checkRanges(t, m)
		})
	}
}

func TestAggregateSalesConversation(t *testing.T) {
	a := New(lexicon.Default(), lexicon.DefaultConstants(), DefaultWeights)
	m := a.Aggregate(salesConversation(), salesScenario, Sentiment{Delta: 0.5, Fallback: true})

	if len(m.Content.CriteriaScores) != len(salesScenario.Criteria) {
		t.Fatalf("expected %d criterion scores, got %d", len(salesScenario.Criteria), len(m.Content.CriteriaScores))
	}
	for i, c := range salesScenario.Criteria {
		if m.Content.CriteriaScores[i].Key != c.Key {
			t.Errorf("criterion %d = %s, want %s", i, m.Content.CriteriaScores[i].Key, c.Key)
		}
	}
	if got := m.Content.CriteriaScores[3].Score; got != 6.0 {
		t.Errorf("unmapped criterion = %v, want 6.0", got)
	}
	if m.Outcome.NextStepQuality != 3 {
		t.Errorf("next step quality = %d, want 3", m.Outcome.NextStepQuality)
	}
	if !m.Climate.SentimentFallback || m.Climate.SentimentDelta != 0.5 {
		t.Errorf("climate sentiment = %+v", m.Climate)
	}
	if m.OverallScore <= 0 {
		t.Errorf("overall = %v, want > 0", m.OverallScore)
	}
	if want := Overall(m.CategoryScores, DefaultWeights); m.OverallScore != want {
		t.Errorf("overall = %v, want weighted sum %v", m.OverallScore, want)
	}
}

func TestAggregateNoUserTurns(t *testing.T) {
	a := New(nil, lexicon.DefaultConstants(), DefaultWeights)
	m := a.Aggregate(types.Conversation{}, types.Scenario{ID: "x", Area: types.AreaHR}, Sentiment{})
	if m.OverallScore != NoSpeechOverallScore {
		t.Errorf("overall = %v, want %v", m.OverallScore, NoSpeechOverallScore)
	}
	if m.CategoryScores.Content != ContentNeutralScore {
		t.Errorf("content = %v, want %v", m.CategoryScores.Content, ContentNeutralScore)
	}
}

func TestOverallUniformScores(t *testing.T) {
	cs := types.CategoryScores{Speech: 9.5, Conversation: 9.5, Content: 9.5, Outcome: 9.5, Climate: 9.5}
	if got := Overall(cs, DefaultWeights); got != 9.5 {
		t.Errorf("overall = %v, want 9.5", got)
	}
}

func TestBandScore(t *testing.T) {
	b := Band{Min: 120, Max: 160, Decay: 0.1}
	tests := []struct {
		v, want float64
	}{
		{140, 10}, {120, 10}, {160, 10}, {60, 4}, {200, 6}, {0, 0},
	}
	for _, tc := range tests {
		if got := b.Score(tc.v); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Score(%v) = %v, want %v", tc.v, got, tc.want)
		}
	}
}

func TestSpeechScore(t *testing.T) {
	bands := DefaultSpeechBands(lexicon.DefaultConstants())
	ideal := types.SpeechMetrics{SpeechRate: 140, TalkRatio: 50, SilenceRatio: 15, FillerDensity: 1, Clarity: 10}
	if got := SpeechScore(ideal, bands); got != 10 {
		t.Errorf("ideal speech = %v, want 10", got)
	}
	silent := types.SpeechMetrics{SilenceRatio: 40}
	// rate 0, talk 0, silence 5, filler 10, clarity 0
	if got := SpeechScore(silent, bands); got != 3 {
		t.Errorf("silent speech = %v, want 3", got)
	}
}

func TestConversationScore(t *testing.T) {
	got := ConversationScore(types.ConversationMetrics{OpenQuestionRate: 100, FollowUpRate: 50, TurnBalance: 10, EmpathyScore: 6})
	if got != 7.75 {
		t.Errorf("got %v, want 7.75", got)
	}
}

func TestContentScore(t *testing.T) {
	tests := []struct {
		name   string
		scores []types.CriterionScore
		want   float64
	}{
		{"weighted", []types.CriterionScore{{Score: 8, Weight: 2}, {Score: 5, Weight: 1}}, 7},
		{"zero weights", []types.CriterionScore{{Score: 8}, {Score: 4}}, 6},
		{"empty", nil, ContentNeutralScore},
	}
	for _, tc := range tests {
		if got := ContentScore(tc.scores); got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestOutcomeScore(t *testing.T) {
	tests := []struct {
		m    types.OutcomeMetrics
		want float64
	}{
		{types.OutcomeMetrics{}, 0},
		{types.OutcomeMetrics{NextStepQuality: 3, Resolutions: 5, Decisions: 4, ActionItems: 4}, 10},
		{types.OutcomeMetrics{NextStepQuality: 2, Resolutions: 1, ActionItems: 2}, 4.48},
	}
	for _, tc := range tests {
		if got := OutcomeScore(tc.m); got != tc.want {
			t.Errorf("OutcomeScore(%+v) = %v, want %v", tc.m, got, tc.want)
		}
	}
}

func TestClimateScore(t *testing.T) {
	tests := []struct {
		m    types.ClimateMetrics
		want float64
	}{
		{types.ClimateMetrics{}, 2},
		{types.ClimateMetrics{SentimentDelta: 2, EmpathyMarkers: 5, PolitenessMarkers: 5}, 10},
		{types.ClimateMetrics{SentimentDelta: -2, ComplianceFlags: 2}, 0},
		{types.ClimateMetrics{SentimentDelta: 1, EmpathyMarkers: 1, PolitenessMarkers: 2, ComplianceFlags: 1}, 3.3},
	}
	for _, tc := range tests {
		if got := ClimateScore(tc.m); got != tc.want {
			t.Errorf("ClimateScore(%+v) = %v, want %v", tc.m, got, tc.want)
		}
	}
}
