package extractor

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"synapse-go/internal/lexicon"
	"synapse-go/internal/types"
)

func conversation(turns ...types.Turn) types.Conversation {
	for i := range turns {
		turns[i].Timestamp = int64(i * 1000)
	}
	return types.Conversation{Turns: turns}
}

func user(s string) types.Turn { return types.Turn{Speaker: types.SpeakerUser, Content: s} }
func ai(s string) types.Turn   { return types.Turn{Speaker: types.SpeakerAI, Content: s} }

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("palavra ", n))
}

func TestSpeech(t *testing.T) {
	conv := conversation(user(words(10)), ai(words(10)), user(words(10)))
	got := Speech(conv, lexicon.Default(), lexicon.DefaultConstants())
	want := types.SpeechMetrics{
		SpeechRate:    30,
		TalkRatio:     66.67,
		SilenceRatio:  35,
		FillerDensity: 0,
		Clarity:       10,
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestSpeechFillers(t *testing.T) {
	conv := conversation(user("Tipo assim, eu acho, né"))
	got := Speech(conv, lexicon.Default(), lexicon.DefaultConstants())
	if got.FillerDensity != 60 {
		t.Errorf("filler density = %v, want 60", got.FillerDensity)
	}
}

func TestSpeechZeroWordTurn(t *testing.T) {
	conv := conversation(user("..."))
	got := Speech(conv, lexicon.Default(), lexicon.DefaultConstants())
	if got.SpeechRate != 0 || got.Clarity != 0 || got.FillerDensity != 0 || got.TalkRatio != 0 {
		t.Errorf("expected zero fallbacks, got %+v", got)
	}
	if got.SilenceRatio != 40 {
		t.Errorf("silence = %v, want 40", got.SilenceRatio)
	}
}

func TestEmptyConversation(t *testing.T) {
	var conv types.Conversation
	loc, k := lexicon.Default(), lexicon.DefaultConstants()

	sp := Speech(conv, loc, k)
	if sp.SpeechRate != 0 || sp.TalkRatio != 0 || sp.Clarity != 0 || sp.SilenceRatio != 40 {
		t.Errorf("speech = %+v", sp)
	}
	dyn := Dynamics(conv, loc, k)
	if dyn.OpenQuestionRate != 0 || dyn.FollowUpRate != 0 || dyn.EmpathyScore != 0 || dyn.TurnBalance != 10 {
		t.Errorf("dynamics = %+v", dyn)
	}
	ct := Content(conv, types.AreaCommercial, loc)
	if ct.TopicCoverage != 0 || ct.EvidenceDensity != 0 {
		t.Errorf("content = %+v", ct)
	}
	if out := Outcome(conv, types.AreaCommercial, loc); out != (types.OutcomeMetrics{}) {
		t.Errorf("outcome = %+v", out)
	}
	if cl := ClimateMarkers(conv, loc); cl != (types.ClimateMetrics{}) {
		t.Errorf("climate = %+v", cl)
	}
	if _, _, _, ok := SentimentEndpoints(conv); ok {
		t.Error("expected no sentiment endpoints")
	}
}

func TestClarity(t *testing.T) {
	k := lexicon.DefaultConstants()
	tests := []struct {
		lengths []int
		want    float64
	}{
		{nil, 0},
		{[]int{15}, 10},
		{[]int{10, 20}, 10},
		{[]int{30}, 6},
		{[]int{50}, 0},
	}
	for _, tc := range tests {
		if got := Clarity(tc.lengths, k); got != tc.want {
			t.Errorf("Clarity(%v) = %v, want %v", tc.lengths, got, tc.want)
		}
	}
}

func TestSentenceLengths(t *testing.T) {
	got := SentenceLengths("Bom dia. Tudo bem?! Vamos começar...")
	want := []int{2, 2, 2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestOpenQuestionRate(t *testing.T) {
	loc := lexicon.Default()
	all := conversation(user("Qual o prazo?"), ai("Seis meses."), user("Como isso impacta o ROI?"))
	if got := OpenQuestionRate(all, loc); got != 100 {
		t.Errorf("rate = %v, want 100", got)
	}
	mixed := conversation(user("Qual o prazo?"), user("Vocês usam CRM?"), user("Como funciona?"))
	if got := OpenQuestionRate(mixed, loc); got != 66.67 {
		t.Errorf("rate = %v, want 66.67", got)
	}
	none := conversation(user("Entendi."))
	if got := OpenQuestionRate(none, loc); got != 0 {
		t.Errorf("rate = %v, want 0", got)
	}
}

func TestLeadingKeywords(t *testing.T) {
	got := LeadingKeywords("Nosso orçamento anual está comprometido com outra ferramenta.", lexicon.Default(), lexicon.DefaultConstants())
	want := []string{"orcamento", "anual", "comprometido", "outra", "ferramenta"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFollowUpRate(t *testing.T) {
	conv := conversation(
		user("Olá!"),
		ai("Nosso orçamento anual está comprometido com outra ferramenta."),
		user("Entendo, qual ferramenta vocês usam hoje?"),
		ai("Usamos planilhas."),
		user("Certo."),
	)
	got := FollowUpRate(conv, lexicon.Default(), lexicon.DefaultConstants())
	if got != 33.33 {
		t.Errorf("rate = %v, want 33.33", got)
	}
}

func TestTurnBalance(t *testing.T) {
	k := lexicon.DefaultConstants()
	tests := []struct {
		name string
		conv types.Conversation
		want float64
	}{
		{"equal", conversation(user("abcd"), ai("abcd")), 10},
		{"slight", conversation(user(strings.Repeat("a", 100)), ai("")), 9},
		{"lopsided", conversation(user(strings.Repeat("a", 1000)), ai("")), 0},
		{"single", conversation(user("oi")), 10},
	}
	for _, tc := range tests {
		if got := TurnBalance(tc.conv, k); got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestDynamicsEmpathy(t *testing.T) {
	conv := conversation(user("Entendo, compreendo e imagino como é"))
	got := Dynamics(conv, lexicon.Default(), lexicon.DefaultConstants())
	if got.EmpathyScore != 6 {
		t.Errorf("empathy = %v, want 6", got.EmpathyScore)
	}
}

func TestTopicCoverage(t *testing.T) {
	conv := conversation(user("Qual o prazo e o orçamento?"))
	if got := TopicCoverage(conv, types.AreaCommercial, lexicon.Default()); got != 33.33 {
		t.Errorf("coverage = %v, want 33.33", got)
	}
	if got := TopicCoverage(conv, types.Area("unknown"), lexicon.Default()); got != 0 {
		t.Errorf("unknown area coverage = %v", got)
	}
}

func TestEvidenceCount(t *testing.T) {
	loc := lexicon.Default()
	tests := []struct {
		in   string
		want int
	}{
		{"Reduzimos 30% dos custos em 15/03, por exemplo", 3},
		{"Na próxima semana, em março", 2},
		{"Sem dados", 0},
	}
	for _, tc := range tests {
		if got := EvidenceCount(tc.in, loc); got != tc.want {
			t.Errorf("EvidenceCount(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestNextStepQuality(t *testing.T) {
	loc := lexicon.Default()
	tests := []struct {
		in   string
		want int
	}{
		{"Vou enviar a proposta até sexta-feira", NextStepSMART},
		{"Reunião dia 15/03", NextStepSMART},
		{"Marcamos para o dia 12", NextStepSMART},
		{"Vou enviar a proposta", NextStepSpecific},
		{"Vamos ver depois", NextStepVague},
		{"Até segunda", NextStepVague},
		{"Obrigado pela conversa", NextStepNone},
	}
	for _, tc := range tests {
		if got := NextStepQuality(tc.in, loc); got != tc.want {
			t.Errorf("NextStepQuality(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestOutcome(t *testing.T) {
	conv := conversation(
		user("Vamos resolver isso juntos"),
		ai("Ótimo."),
		user("Decidimos seguir, vou enviar a proposta amanhã"),
	)
	got := Outcome(conv, types.AreaCommercial, lexicon.Default())
	want := types.OutcomeMetrics{NextStepQuality: NextStepSMART, Resolutions: 1, Decisions: 1, ActionItems: 2}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestClimateMarkers(t *testing.T) {
	conv := conversation(
		user("Garanto que é sem risco, por favor confie"),
		ai("Entendo."),
		user("Entendo sua preocupação"),
	)
	got := ClimateMarkers(conv, lexicon.Default())
	want := types.ClimateMetrics{EmpathyMarkers: 1, PolitenessMarkers: 1, ComplianceFlags: 2}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestSentimentEndpoints(t *testing.T) {
	conv := conversation(user("primeira"), ai("meio"), user("última"))
	first, last, single, ok := SentimentEndpoints(conv)
	if !ok || single || first != "primeira" || last != "última" {
		t.Errorf("got %q %q single=%v ok=%v", first, last, single, ok)
	}
	_, _, single, _ = SentimentEndpoints(conversation(user("só")))
	if !single {
		t.Error("expected single turn")
	}
}

func TestRound2AndClamp(t *testing.T) {
	if got := Round2(2.0 / 3.0); got != 0.67 {
		t.Errorf("Round2(2/3) = %v", got)
	}
	if got := Round2(math.NaN()); got != 0 {
		t.Errorf("Round2(NaN) = %v", got)
	}
	if Clamp(-1, 0, 10) != 0 || Clamp(11, 0, 10) != 10 || Clamp(5, 0, 10) != 5 {
		t.Error("Clamp out of bounds")
	}
}
