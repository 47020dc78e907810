package report

import (
	"synapse-go/internal/extractor"
	"synapse-go/internal/types"
)

// Category keys, in display order.
const (
	CategorySpeech       = "speech"
	CategoryConversation = "conversation"
	CategoryContent      = "content"
	CategoryOutcome      = "outcome"
	CategoryClimate      = "climate"
)

// CriterionTarget is the target of every per-criterion card.
const CriterionTarget = 7.0

type cardSpec struct {
	name   string
	desc   string
	target float64
	dir    Direction
	value  func(types.MetricsResult) float64
}

type categorySpec struct {
	key   string
	title string
	cards []cardSpec
}

var categories = []categorySpec{
	{
		key:   CategorySpeech,
		title: "Comunicação verbal",
		cards: []cardSpec{
			{"Velocidade da fala", "Palavras por minuto; ideal entre 120 e 160", 140, ClosestIsBetter,
				func(m types.MetricsResult) float64 { return m.Speech.SpeechRate }},
			{"Tempo de fala", "Percentual das palavras ditas por você", 50, ClosestIsBetter,
				func(m types.MetricsResult) float64 { return m.Speech.TalkRatio }},
			{"Pausas", "Estimativa de silêncio entre falas (%)", 20, LowerIsBetter,
				func(m types.MetricsResult) float64 { return m.Speech.SilenceRatio }},
			{"Vícios de linguagem", "Ocorrências a cada 100 palavras", 3, LowerIsBetter,
				func(m types.MetricsResult) float64 { return m.Speech.FillerDensity }},
			{"Clareza", "Tamanho médio das frases (0 a 10)", 8, HigherIsBetter,
				func(m types.MetricsResult) float64 { return m.Speech.Clarity }},
		},
	},
	{
		key:   CategoryConversation,
		title: "Dinâmica da conversa",
		cards: []cardSpec{
			{"Perguntas abertas", "Percentual de perguntas abertas", 60, HigherIsBetter,
				func(m types.MetricsResult) float64 { return m.Conversation.OpenQuestionRate }},
			{"Aprofundamento", "Respostas que retomam a fala anterior (%)", 50, HigherIsBetter,
				func(m types.MetricsResult) float64 { return m.Conversation.FollowUpRate }},
			{"Equilíbrio de turnos", "Regularidade do tamanho das falas (0 a 10)", 8, HigherIsBetter,
				func(m types.MetricsResult) float64 { return m.Conversation.TurnBalance }},
			{"Empatia", "Expressões de empatia (0 a 10)", 6, HigherIsBetter,
				func(m types.MetricsResult) float64 { return m.Conversation.EmpathyScore }},
		},
	},
	{
		key:   CategoryContent,
		title: "Conteúdo",
		cards: []cardSpec{
			{"Cobertura de tópicos", "Tópicos essenciais mencionados (%)", 70, HigherIsBetter,
				func(m types.MetricsResult) float64 { return m.Content.TopicCoverage }},
			{"Evidências", "Números, datas e exemplos por fala", 1, HigherIsBetter,
				func(m types.MetricsResult) float64 { return m.Content.EvidenceDensity }},
		},
	},
	{
		key:   CategoryOutcome,
		title: "Resultados",
		cards: []cardSpec{
			{"Próximos passos", "0 nenhum, 1 vago, 2 específico, 3 com data", 3, HigherIsBetter,
				func(m types.MetricsResult) float64 { return float64(m.Outcome.NextStepQuality) }},
			{"Resoluções", "Problemas encaminhados", 1, HigherIsBetter,
				func(m types.MetricsResult) float64 { return float64(m.Outcome.Resolutions) }},
			{"Decisões", "Decisões registradas", 1, HigherIsBetter,
				func(m types.MetricsResult) float64 { return float64(m.Outcome.Decisions) }},
			{"Itens de ação", "Compromissos assumidos", 2, HigherIsBetter,
				func(m types.MetricsResult) float64 { return float64(m.Outcome.ActionItems) }},
		},
	},
	{
		key:   CategoryClimate,
		title: "Clima da conversa",
		cards: []cardSpec{
			{"Evolução do sentimento", "Variação entre a primeira e a última fala (-2 a 2)", 0.5, HigherIsBetter,
				func(m types.MetricsResult) float64 { return m.Climate.SentimentDelta }},
			{"Marcadores de empatia", "Expressões de empatia", 2, HigherIsBetter,
				func(m types.MetricsResult) float64 { return float64(m.Climate.EmpathyMarkers) }},
			{"Cortesia", "Expressões de cortesia", 2, HigherIsBetter,
				func(m types.MetricsResult) float64 { return float64(m.Climate.PolitenessMarkers) }},
			{"Alertas de conformidade", "Promessas ou termos de risco", 0, LowerIsBetter,
				func(m types.MetricsResult) float64 { return float64(m.Climate.ComplianceFlags) }},
		},
	},
}

// DetailedMetrics builds the card groups of all five categories in fixed
// order. Criterion cards follow the content cards, in rubric order.
func DetailedMetrics(m types.MetricsResult, b Bands) []types.CategoryMetrics {
	out := make([]types.CategoryMetrics, 0, len(categories))
	for _, c := range categories {
		group := types.CategoryMetrics{Category: c.key, Title: c.title}
		for _, cs := range c.cards {
			group.Metrics = append(group.Metrics, card(cs.name, cs.desc, cs.value(m), cs.target, cs.dir, b))
		}
		if c.key == CategoryContent {
			for _, cr := range m.Content.CriteriaScores {
				group.Metrics = append(group.Metrics, card(criterionName(cr), "Critério do cenário (0 a 10)", cr.Score, CriterionTarget, HigherIsBetter, b))
			}
		}
		out = append(out, group)
	}
	return out
}

func card(name, desc string, value, target float64, dir Direction, b Bands) types.MetricCard {
	value = extractor.Round2(value)
	return types.MetricCard{
		Name:        name,
		Value:       value,
		Target:      target,
		Status:      Classify(value, target, dir, b),
		Description: desc,
	}
}
