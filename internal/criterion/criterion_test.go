package criterion

import (
	"testing"

	"synapse-go/internal/lexicon"
	"synapse-go/internal/types"
)

func userTurns(texts ...string) []types.Turn {
	var out []types.Turn
	for i, s := range texts {
		out = append(out, types.Turn{Speaker: types.SpeakerUser, Content: s, Timestamp: int64(i * 1000)})
	}
	return out
}

var valueProp = types.Criterion{Key: "value_proposition", Label: "Proposta de valor", Weight: 1}

func TestScoreUnmappedCriterionIsNeutral(t *testing.T) {
	c := types.Criterion{Key: "storytelling", Label: "Storytelling", Weight: 2}
	got := Score(userTurns("Nosso ROI é alto"), c, types.AreaCommercial, lexicon.Default())
	if got != NeutralScore {
		t.Errorf("expected %v, got %v", NeutralScore, got)
	}
}

func TestScoreNoMatchIsLow(t *testing.T) {
	got := Score(userTurns("Olá, tudo certo?"), valueProp, types.AreaCommercial, lexicon.Default())
	if got != NoEvidenceScore {
		t.Errorf("expected %v, got %v", NoEvidenceScore, got)
	}
}

func TestScoreNoTurns(t *testing.T) {
	got := Score(nil, valueProp, types.AreaCommercial, lexicon.Default())
	if got != NoEvidenceScore {
		t.Errorf("expected %v, got %v", NoEvidenceScore, got)
	}
}

func TestScoreMeanOverMatchedTurns(t *testing.T) {
	turns := userTurns(
		"O retorno e a economia são claros", // retorno, economia = 7.0, "claros" is not "claro"
		"Vamos falar do resultado",          // resultado = 6.5
		"Bom dia",                           // no match, excluded
	)
	got := Score(turns, valueProp, types.AreaCommercial, lexicon.Default())
	if got != 6.75 {
		t.Errorf("expected 6.75, got %v", got)
	}
}

func TestScoreContextAdjustment(t *testing.T) {
	loc := lexicon.Default()
	pos := Score(userTurns("Exatamente, o retorno é alto"), valueProp, types.AreaCommercial, loc)
	neg := Score(userTurns("Talvez o retorno seja alto"), valueProp, types.AreaCommercial, loc)
	plain := Score(userTurns("O retorno é alto"), valueProp, types.AreaCommercial, loc)
	if pos != 7.5 || plain != 6.5 || neg != 5.5 {
		t.Errorf("pos=%v plain=%v neg=%v, want 7.5 6.5 5.5", pos, plain, neg)
	}
}

func TestScoreClamped(t *testing.T) {
	turn := "Exatamente: benefício, valor, retorno, ROI, economia, resultado, diferencial, ganho e produtividade"
	got := Score(userTurns(turn), valueProp, types.AreaCommercial, lexicon.Default())
	if got != 10 {
		t.Errorf("expected clamp to 10, got %v", got)
	}
}

func TestScoreMonotonicInDistinctKeywords(t *testing.T) {
	loc := lexicon.Default()
	fewer := userTurns("O retorno é bom", "Falamos do valor")
	more := userTurns("O retorno e o ROI são bons", "Falamos do valor e da economia")
	a := Score(more, valueProp, types.AreaCommercial, loc)
	b := Score(fewer, valueProp, types.AreaCommercial, loc)
	if a < b {
		t.Errorf("more keywords scored %v < fewer keywords %v", a, b)
	}
}

func TestScoreAllKeepsRubricOrder(t *testing.T) {
	sc := types.Scenario{
		ID:   "s1",
		Area: types.AreaCommercial,
		Criteria: []types.Criterion{
			{Key: "closing", Label: "Fechamento", Weight: 1},
			{Key: "rapport", Label: "Rapport", Weight: 2},
			{Key: "unknown", Label: "?", Weight: 0},
		},
	}
	got := ScoreAll(userTurns("Bom dia! Vamos agendar a reunião"), sc, lexicon.Default())
	if len(got) != 3 {
		t.Fatalf("expected 3 scores, got %d", len(got))
	}
	if got[0].Key != "closing" || got[1].Key != "rapport" || got[2].Key != "unknown" {
		t.Errorf("order changed: %+v", got)
	}
	if got[2].Score != NeutralScore {
		t.Errorf("unknown criterion = %v", got[2].Score)
	}
}
