package report

import (
	"fmt"
	"strings"

	"synapse-go/internal/actionable"
	"synapse-go/internal/types"
)

// Thresholds shared by highlight and improvement rules. Each improvement
// fires on the complement of the matching highlight.
const (
	GoodOpenQuestionRate = 60.0
	GoodFollowUpRate     = 50.0
	GoodEmpathyScore     = 6.0
	GoodTopicCoverage    = 70.0
	GoodNextStepQuality  = 2
	GoodClarity          = 6.0
	GoodContentScore     = 7.5
	WeakCategoryScore    = 6.0
)

// Subject is what the rules look at.
type Subject struct {
	Metrics   types.MetricsResult
	Scenario  types.Scenario
	RateMin   float64
	RateMax   float64
	FillerMax float64
}

func (s Subject) spoke() bool { return s.Metrics.Speech.SpeechRate > 0 }

const (
	fallbackHighlight   = "Sessão concluída: continue praticando para evidenciar seus pontos fortes"
	fallbackImprovement = "Mantenha a consistência e experimente cenários mais desafiadores"
)

var highlightRules = []actionable.Rule[Subject, string]{
	{
		Name: "speech-rate-in-band",
		When: func(s Subject) bool {
			r := s.Metrics.Speech.SpeechRate
			return s.spoke() && r >= s.RateMin && r <= s.RateMax
		},
		Then: func(s Subject) string {
			return fmt.Sprintf("Ritmo de fala dentro da faixa ideal (%.0f a %.0f palavras por minuto)", s.RateMin, s.RateMax)
		},
	},
	actionable.Text("few-fillers", func(s Subject) bool {
		return s.spoke() && s.Metrics.Speech.FillerDensity <= s.FillerMax
	}, "Uso controlado de vícios de linguagem"),
	actionable.Text("open-questions", func(s Subject) bool {
		return s.Metrics.Conversation.OpenQuestionRate >= GoodOpenQuestionRate
	}, "Bom uso de perguntas abertas para explorar o contexto"),
	actionable.Text("follow-up", func(s Subject) bool {
		return s.Metrics.Conversation.FollowUpRate >= GoodFollowUpRate
	}, "Aprofundou os temas trazidos pelo interlocutor"),
	actionable.Text("empathy", func(s Subject) bool {
		return s.Metrics.Conversation.EmpathyScore >= GoodEmpathyScore
	}, "Demonstrou empatia de forma consistente"),
	actionable.Text("topic-coverage", func(s Subject) bool {
		return s.Metrics.Content.TopicCoverage >= GoodTopicCoverage
	}, "Cobriu os principais tópicos do cenário"),
	actionable.Text("criteria", func(s Subject) bool {
		return len(s.Metrics.Content.CriteriaScores) > 0 && s.Metrics.CategoryScores.Content >= GoodContentScore
	}, "Atendeu bem aos critérios de avaliação do cenário"),
	actionable.Text("next-steps", func(s Subject) bool {
		return s.Metrics.Outcome.NextStepQuality >= GoodNextStepQuality
	}, "Encerrou com próximos passos concretos"),
	actionable.Text("climate-improved", func(s Subject) bool {
		return s.Metrics.Climate.SentimentDelta > 0
	}, "O clima da conversa melhorou ao longo da sessão"),
}

var improvementRules = []actionable.Rule[Subject, string]{
	{
		Name: "speech-rate-slow",
		When: func(s Subject) bool { return s.spoke() && s.Metrics.Speech.SpeechRate < s.RateMin },
		Then: func(s Subject) string {
			return fmt.Sprintf("Acelere um pouco o ritmo: busque ao menos %.0f palavras por minuto", s.RateMin)
		},
	},
	{
		Name: "speech-rate-fast",
		When: func(s Subject) bool { return s.Metrics.Speech.SpeechRate > s.RateMax },
		Then: func(s Subject) string {
			return fmt.Sprintf("Fale mais devagar: o ideal é até %.0f palavras por minuto", s.RateMax)
		},
	},
	actionable.Text("fillers", func(s Subject) bool {
		return s.Metrics.Speech.FillerDensity > s.FillerMax
	}, "Reduza o uso de vícios de linguagem como \"tipo\" e \"né\""),
	actionable.Text("clarity", func(s Subject) bool {
		return s.spoke() && s.Metrics.Speech.Clarity < GoodClarity
	}, "Prefira frases mais curtas e objetivas"),
	actionable.Text("open-questions", func(s Subject) bool {
		return s.Metrics.Conversation.OpenQuestionRate < GoodOpenQuestionRate
	}, "Faça mais perguntas abertas (como, por que, o que)"),
	actionable.Text("follow-up", func(s Subject) bool {
		return s.Metrics.Conversation.FollowUpRate < GoodFollowUpRate
	}, "Retome o que o interlocutor acabou de dizer antes de mudar de assunto"),
	actionable.Text("empathy", func(s Subject) bool {
		return s.Metrics.Conversation.EmpathyScore < GoodEmpathyScore
	}, "Demonstre mais empatia reconhecendo o ponto de vista do outro"),
	actionable.Text("topic-coverage", func(s Subject) bool {
		return s.Metrics.Content.TopicCoverage < GoodTopicCoverage
	}, "Aborde mais tópicos essenciais do cenário"),
	actionable.Text("next-steps", func(s Subject) bool {
		return s.Metrics.Outcome.NextStepQuality < GoodNextStepQuality
	}, "Defina próximos passos específicos, com responsável e data"),
	actionable.Text("compliance", func(s Subject) bool {
		return s.Metrics.Climate.ComplianceFlags > 0
	}, "Evite promessas absolutas e termos que geram risco de conformidade"),
}

var recommendationRules = []actionable.Rule[Subject, types.Recommendation]{
	{
		Name: "speech",
		When: func(s Subject) bool { return s.Metrics.CategoryScores.Speech < WeakCategoryScore },
		Then: func(s Subject) types.Recommendation {
			return types.Recommendation{
				Category:    CategorySpeech,
				Priority:    types.PriorityMedium,
				Title:       "Ritmo e clareza da fala",
				Description: "Sua comunicação verbal ficou abaixo do esperado para o cenário.",
				ActionItems: []string{
					fmt.Sprintf("Grave-se e ajuste o ritmo para %.0f a %.0f palavras por minuto", s.RateMin, s.RateMax),
					"Substitua vícios de linguagem por pausas curtas",
					"Divida ideias longas em frases de até 20 palavras",
				},
			}
		},
	},
	{
		Name: "questions",
		When: func(s Subject) bool { return s.Metrics.Conversation.OpenQuestionRate < GoodOpenQuestionRate },
		Then: func(Subject) types.Recommendation {
			return types.Recommendation{
				Category:    CategoryConversation,
				Priority:    types.PriorityHigh,
				Title:       "Técnica de perguntas",
				Description: "Perguntas abertas revelam necessidades e mantêm o interlocutor engajado.",
				ActionItems: []string{
					"Prepare três perguntas abertas antes da conversa",
					"Comece as perguntas com como, por que ou o que",
					"Após cada resposta, faça uma pergunta de aprofundamento",
				},
			}
		},
	},
	{
		Name: "criteria",
		When: func(s Subject) bool { return len(weakCriteria(s)) > 0 },
		Then: func(s Subject) types.Recommendation {
			var items []string
			for _, c := range weakCriteria(s) {
				items = append(items, fmt.Sprintf("Reforce o critério \"%s\" (nota %.1f)", criterionName(c), c.Score))
			}
			return types.Recommendation{
				Category:    CategoryContent,
				Priority:    types.PriorityHigh,
				Title:       "Critérios do cenário",
				Description: "Alguns critérios de avaliação tiveram pouca evidência na conversa.",
				ActionItems: items,
			}
		},
	},
	{
		Name: "outcome",
		When: func(s Subject) bool { return s.Metrics.Outcome.NextStepQuality < GoodNextStepQuality },
		Then: func(Subject) types.Recommendation {
			return types.Recommendation{
				Category:    CategoryOutcome,
				Priority:    types.PriorityMedium,
				Title:       "Fechamento e próximos passos",
				Description: "A conversa terminou sem um compromisso claro.",
				ActionItems: []string{
					"Resuma o que foi combinado antes de encerrar",
					"Proponha uma ação concreta com data",
				},
			}
		},
	},
	{
		Name: "compliance",
		When: func(s Subject) bool { return s.Metrics.Climate.ComplianceFlags > 0 },
		Then: func(s Subject) types.Recommendation {
			return types.Recommendation{
				Category:    CategoryClimate,
				Priority:    types.PriorityHigh,
				Title:       "Conformidade",
				Description: fmt.Sprintf("Foram detectados %d termos de risco na sua fala.", s.Metrics.Climate.ComplianceFlags),
				ActionItems: []string{
					"Evite garantias absolutas e promessas sem respaldo",
					"Revise a política interna antes da próxima sessão",
				},
			}
		},
	},
	{
		Name: "rapport",
		When: func(s Subject) bool {
			return s.Metrics.Climate.EmpathyMarkers+s.Metrics.Climate.PolitenessMarkers < 2
		},
		Then: func(Subject) types.Recommendation {
			return types.Recommendation{
				Category:    CategoryClimate,
				Priority:    types.PriorityLow,
				Title:       "Empatia e cortesia",
				Description: "Pequenos gestos de cortesia aproximam o interlocutor.",
				ActionItems: []string{
					"Cumprimente e agradeça de forma explícita",
					"Reconheça sentimentos antes de argumentar",
				},
			}
		},
	},
}

// weakCriteria lists the criteria scored below the category threshold, in rubric order.
func weakCriteria(s Subject) []types.CriterionScore {
	var out []types.CriterionScore
	for _, c := range s.Metrics.Content.CriteriaScores {
		if c.Score < WeakCategoryScore {
			out = append(out, c)
		}
	}
	return out
}

func criterionName(c types.CriterionScore) string {
	if strings.TrimSpace(c.Label) == "" {
		return c.Key
	}
	return c.Label
}
