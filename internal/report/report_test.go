package report

import (
	"reflect"
	"strings"
	"testing"

	"synapse-go/internal/lexicon"
	"synapse-go/internal/types"
)

var scenario = types.Scenario{
	ID:    "objection-price",
	Area:  types.AreaCommercial,
	Title: "Objeção de preço",
	Criteria: []types.Criterion{
		{Key: "objection_handling", Label: "Contorno de objeções", Weight: 2},
		{Key: "closing", Label: "Fechamento", Weight: 1},
	},
}

func synthesizer() *Synthesizer {
	return NewSynthesizer(lexicon.Default(), lexicon.DefaultConstants())
}

func TestLevel(t *testing.T) {
	tests := []struct {
		score float64
		want  types.ScoreLevel
	}{
		{10, types.LevelExcellent},
		{9, types.LevelExcellent},
		{8.99, types.LevelGood},
		{7.5, types.LevelGood},
		{6, types.LevelSatisfactory},
		{5.99, types.LevelNeedsImprovement},
		{0, types.LevelNeedsImprovement},
	}
	for _, tc := range tests {
		if got := Level(tc.score); got != tc.want {
			t.Errorf("Level(%v) = %s, want %s", tc.score, got, tc.want)
		}
	}
}

func TestPercentile(t *testing.T) {
	tests := []struct {
		score float64
		want  int
	}{
		{9.5, 95}, {8.8, 95}, {8.5, 80}, {8.0, 80}, {7.2, 60}, {6.5, 40}, {6.0, 40}, {5.9, 20}, {0, 20},
	}
	for _, tc := range tests {
		if got := Percentile(tc.score); got != tc.want {
			t.Errorf("Percentile(%v) = %d, want %d", tc.score, got, tc.want)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name          string
		value, target float64
		dir           Direction
		want          types.Status
	}{
		{"above target", 10, 8, HigherIsBetter, types.StatusExcellent},
		{"just under", 7.8, 8, HigherIsBetter, types.StatusExcellent},
		{"good", 7, 8, HigherIsBetter, types.StatusGood},
		{"warning", 5, 8, HigherIsBetter, types.StatusWarning},
		{"poor", 4, 8, HigherIsBetter, types.StatusPoor},
		{"at ceiling", 3, 3, LowerIsBetter, types.StatusExcellent},
		{"under ceiling", 1, 3, LowerIsBetter, types.StatusExcellent},
		{"zero target", 1, 0, LowerIsBetter, types.StatusPoor},
		{"zero target met", 0, 0, LowerIsBetter, types.StatusExcellent},
		{"on target", 140, 140, ClosestIsBetter, types.StatusExcellent},
		{"band edge", 120, 140, ClosestIsBetter, types.StatusGood},
		{"far", 60, 140, ClosestIsBetter, types.StatusPoor},
	}
	for _, tc := range tests {
		if got := Classify(tc.value, tc.target, tc.dir, DefaultBands); got != tc.want {
			t.Errorf("%s: Classify(%v, %v) = %s, want %s", tc.name, tc.value, tc.target, got, tc.want)
		}
	}
}

func findCard(t *testing.T, groups []types.CategoryMetrics, name string) types.MetricCard {
	t.Helper()
	for _, g := range groups {
		for _, c := range g.Metrics {
			if c.Name == name {
				return c
			}
		}
	}
	t.Fatalf("card %q not found", name)
	return types.MetricCard{}
}

func TestStatusConsistentAcrossCategories(t *testing.T) {
	m := types.MetricsResult{
		Outcome: types.OutcomeMetrics{ActionItems: 1},
		Climate: types.ClimateMetrics{PolitenessMarkers: 1, EmpathyMarkers: 1},
	}
	groups := DetailedMetrics(m, DefaultBands)
	action := findCard(t, groups, "Itens de ação")
	polite := findCard(t, groups, "Cortesia")
	empathy := findCard(t, groups, "Marcadores de empatia")
	if action.Status != polite.Status || polite.Status != empathy.Status {
		t.Errorf("statuses differ: %s %s %s", action.Status, polite.Status, empathy.Status)
	}
}

func TestDetailedMetricsOrder(t *testing.T) {
	m := types.MetricsResult{Content: types.ContentMetrics{CriteriaScores: []types.CriterionScore{
		{Key: "closing", Label: "Fechamento", Weight: 1, Score: 8},
		{Key: "rapport", Weight: 1, Score: 3},
	}}}
	groups := DetailedMetrics(m, DefaultBands)
	var keys []string
	for _, g := range groups {
		keys = append(keys, g.Category)
		if len(g.Metrics) == 0 {
			t.Errorf("category %s has no cards", g.Category)
		}
	}
	want := []string{CategorySpeech, CategoryConversation, CategoryContent, CategoryOutcome, CategoryClimate}
	if !reflect.DeepEqual(keys, want) {
		t.Fatalf("categories = %v, want %v", keys, want)
	}
	content := groups[2].Metrics
	if n := len(content); n != 4 {
		t.Fatalf("content cards = %d, want 4", n)
	}
	if content[2].Name != "Fechamento" || content[2].Status != types.StatusExcellent {
		t.Errorf("criterion card = %+v", content[2])
	}
	if content[3].Name != "rapport" || content[3].Status != types.StatusPoor {
		t.Errorf("unlabelled criterion card = %+v", content[3])
	}
}

func TestSynthesizeExcellent(t *testing.T) {
	m := types.MetricsResult{
		CategoryScores: types.CategoryScores{Speech: 9.5, Conversation: 9.5, Content: 9.5, Outcome: 9.5, Climate: 9.5},
		OverallScore:   9.5,
	}
	r := synthesizer().Synthesize(m, scenario, "vendedor")
	if r.ScoreLevel != types.LevelExcellent {
		t.Errorf("level = %s, want excellent", r.ScoreLevel)
	}
	if r.BenchmarkComparison.Percentile != 95 {
		t.Errorf("percentile = %d, want 95", r.BenchmarkComparison.Percentile)
	}
	if r.BenchmarkComparison.YourScore != 9.5 || r.BenchmarkComparison.AverageScore != AverageScore {
		t.Errorf("benchmark = %+v", r.BenchmarkComparison)
	}
	if !strings.Contains(r.Summary, "vendedor") || !strings.Contains(r.Summary, "Comercial") || !strings.Contains(r.Summary, "Objeção de preço") {
		t.Errorf("summary not parameterised: %q", r.Summary)
	}
}

func TestSynthesizeEmptyMetrics(t *testing.T) {
	r := synthesizer().Synthesize(types.MetricsResult{}, scenario, "")
	if r.OverallScore != 0 || r.ScoreLevel != types.LevelNeedsImprovement {
		t.Errorf("score = %v level = %s", r.OverallScore, r.ScoreLevel)
	}
	if len(r.Highlights) == 0 || len(r.Improvements) == 0 || len(r.NextSteps) == 0 {
		t.Fatalf("empty lists: %+v", r)
	}
	if r.Highlights[0] != fallbackHighlight {
		t.Errorf("highlight = %q, want fallback", r.Highlights[0])
	}
	if len(r.NextSteps) != 4 {
		t.Errorf("next steps = %v, want 2 level + 2 area steps", r.NextSteps)
	}
	if !strings.Contains(r.Summary, DefaultUserRole) {
		t.Errorf("summary lacks default role: %q", r.Summary)
	}
	last := r.Recommendations[len(r.Recommendations)-1]
	if last.Title != "Planeje seu próximo treino" || last.Priority != types.PriorityLow {
		t.Errorf("last recommendation = %+v", last)
	}
}

func TestRecommendationPriorities(t *testing.T) {
	m := types.MetricsResult{
		Conversation:   types.ConversationMetrics{OpenQuestionRate: 80},
		Outcome:        types.OutcomeMetrics{NextStepQuality: 3},
		Climate:        types.ClimateMetrics{ComplianceFlags: 2, EmpathyMarkers: 2},
		CategoryScores: types.CategoryScores{Speech: 8},
		OverallScore:   7,
	}
	r := synthesizer().Synthesize(m, scenario, "vendedor")
	var titles []string
	for _, rec := range r.Recommendations {
		titles = append(titles, rec.Title)
	}
	want := []string{"Conformidade", "Planeje seu próximo treino"}
	if !reflect.DeepEqual(titles, want) {
		t.Fatalf("recommendations = %v, want %v", titles, want)
	}
	if r.Recommendations[0].Priority != types.PriorityHigh {
		t.Errorf("compliance priority = %s", r.Recommendations[0].Priority)
	}
}

func TestWeakCriteriaRecommendation(t *testing.T) {
	m := types.MetricsResult{
		Content: types.ContentMetrics{CriteriaScores: []types.CriterionScore{
			{Key: "closing", Label: "Fechamento", Score: 3},
			{Key: "rapport", Label: "Rapport", Score: 8},
		}},
	}
	r := synthesizer().Synthesize(m, scenario, "")
	for _, rec := range r.Recommendations {
		if rec.Category != CategoryContent {
			continue
		}
		if len(rec.ActionItems) != 1 || !strings.Contains(rec.ActionItems[0], "Fechamento") {
			t.Errorf("action items = %v", rec.ActionItems)
		}
		return
	}
	t.Fatal("no content recommendation")
}

func TestWeakCriteriaSharedLabel(t *testing.T) {
	m := types.MetricsResult{
		Content: types.ContentMetrics{CriteriaScores: []types.CriterionScore{
			{Key: "closing_call", Label: "Fechamento", Score: 2},
			{Key: "closing_mail", Label: "Fechamento", Score: 4.5},
		}},
	}
	r := synthesizer().Synthesize(m, scenario, "")
	for _, rec := range r.Recommendations {
		if rec.Category != CategoryContent {
			continue
		}
		want := []string{
			`Reforce o critério "Fechamento" (nota 2.0)`,
			`Reforce o critério "Fechamento" (nota 4.5)`,
		}
		if !reflect.DeepEqual(rec.ActionItems, want) {
			t.Errorf("action items = %v, want %v", rec.ActionItems, want)
		}
		return
	}
	t.Fatal("no content recommendation")
}

func TestSynthesizeDeterministic(t *testing.T) {
	m := types.MetricsResult{
		Speech:       types.SpeechMetrics{SpeechRate: 130, TalkRatio: 55, SilenceRatio: 20, FillerDensity: 4, Clarity: 7},
		Conversation: types.ConversationMetrics{OpenQuestionRate: 50, FollowUpRate: 60, TurnBalance: 8, EmpathyScore: 4},
		OverallScore: 6.8,
	}
	s := synthesizer()
	a := s.Synthesize(m, scenario, "vendedor")
	b := s.Synthesize(m, scenario, "vendedor")
	if !reflect.DeepEqual(a, b) {
		t.Error("two calls produced different reports")
	}
}
