package scenario

import "synapse-go/internal/types"

// Builtin returns the sample catalog used when no catalog file is configured.
func Builtin() *Catalog {
	c, err := NewCatalog(builtinScenarios...)
	if err != nil {
		panic("scenario: invalid builtin catalog: " + err.Error())
	}
	return c
}

var builtinScenarios = []types.Scenario{
	{
		ID:          "commercial-discovery",
		Area:        types.AreaCommercial,
		Title:       "Reunião de descoberta com cliente",
		Description: "Primeira conversa com um gestor de operações interessado em automatizar o processo de vendas.",
		Criteria: []types.Criterion{
			{Key: "rapport", Label: "Rapport", Weight: 1},
			{Key: "needs_discovery", Label: "Descoberta de necessidades", Weight: 3},
			{Key: "value_proposition", Label: "Proposta de valor", Weight: 2},
			{Key: "closing", Label: "Fechamento", Weight: 2},
		},
	},
	{
		ID:          "commercial-price-objection",
		Area:        types.AreaCommercial,
		Title:       "Objeção de preço",
		Description: "O cliente gostou da solução, mas considera o investimento alto.",
		Criteria: []types.Criterion{
			{Key: "objection_handling", Label: "Contorno de objeções", Weight: 3},
			{Key: "value_proposition", Label: "Proposta de valor", Weight: 2},
			{Key: "closing", Label: "Fechamento", Weight: 1},
		},
	},
	{
		ID:          "hr-feedback",
		Area:        types.AreaHR,
		Title:       "Feedback de desempenho",
		Description: "Conversa de feedback com um colaborador que perdeu prazos nas últimas semanas.",
		Criteria: []types.Criterion{
			{Key: "active_listening", Label: "Escuta ativa", Weight: 2},
			{Key: "feedback", Label: "Feedback estruturado", Weight: 3},
			{Key: "empathy", Label: "Empatia", Weight: 2},
			{Key: "clarity", Label: "Clareza de expectativas", Weight: 1},
		},
	},
	{
		ID:          "educational-concept",
		Area:        types.AreaEducational,
		Title:       "Explicação de conceito",
		Description: "Explicar juros compostos para um aluno com dificuldade em matemática.",
		Criteria: []types.Criterion{
			{Key: "explanation", Label: "Explicação", Weight: 3},
			{Key: "checking_understanding", Label: "Verificação de entendimento", Weight: 2},
			{Key: "encouragement", Label: "Encorajamento", Weight: 1},
		},
	},
	{
		ID:          "management-delegation",
		Area:        types.AreaManagement,
		Title:       "Delegação de projeto",
		Description: "Delegar a condução de um projeto a um analista sênior.",
		Criteria: []types.Criterion{
			{Key: "delegation", Label: "Delegação", Weight: 3},
			{Key: "goal_setting", Label: "Definição de metas", Weight: 2},
			{Key: "motivation", Label: "Motivação", Weight: 1},
		},
	},
}
