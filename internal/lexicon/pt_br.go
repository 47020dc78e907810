package lexicon

import "synapse-go/internal/types"

// Phrases are matched after Normalize, so accents are optional here.
func portuguese() *Locale {
	return &Locale{
		Code: "pt-BR",

		Fillers: []string{
			"tipo", "né", "então", "assim", "sabe", "ahn", "hum", "hmm", "eh", "ah",
			"basicamente", "na verdade", "meio que",
		},
		OpenQuestionMarkers: []string{
			"como", "por que", "porque", "qual", "quais", "o que", "quando", "onde",
			"quanto", "quantos", "de que forma", "me conte", "me fale", "explique",
		},
		EmpathyMarkers: []string{
			"entendo", "compreendo", "imagino", "faz sentido", "sinto muito", "lamento",
			"percebo", "deve ser difícil", "estou aqui para ajudar", "é normal",
		},
		PolitenessMarkers: []string{
			"por favor", "obrigado", "obrigada", "agradeço", "com licença", "desculpe",
			"perdão", "gentileza", "prazer", "bom dia", "boa tarde", "boa noite",
		},
		ComplianceRiskTerms: []string{
			"garanto", "garantido", "sem risco", "prometo", "nunca falha",
			"informação confidencial", "por fora", "sem nota", "ninguém vai saber",
			"burlar", "jeitinho", "propina", "grávida", "religião",
		},

		PositiveWords: []string{
			"ótimo", "excelente", "bom", "boa", "perfeito", "satisfeito", "feliz", "gostei",
			"adorei", "interessante", "concordo", "obrigado", "maravilha", "sucesso",
			"confiante", "tranquilo", "resolvido", "positivo",
		},
		NegativeWords: []string{
			"ruim", "péssimo", "problema", "difícil", "insatisfeito", "chateado", "frustrado",
			"caro", "preocupado", "impossível", "reclamação", "erro", "falha", "atraso",
			"negativo", "infelizmente",
		},
		PositiveContext: []string{
			"claro", "certamente", "exatamente", "com prazer", "perfeito", "ótimo", "excelente",
		},
		NegativeContext: []string{
			"não sei", "talvez", "acho que não", "sem ideia", "impossível", "não posso", "não consigo",
		},

		VagueNextStep: []string{
			"depois", "vamos ver", "qualquer coisa", "em breve", "vou pensar", "pensar",
			"mais para frente", "a gente se fala", "entramos em contato", "quem sabe",
		},
		SpecificNextStep: []string{
			"vou enviar", "enviarei", "agendar", "agendamos", "marcar", "marcamos", "reunião",
			"proposta", "ligar", "encaminhar", "apresentação", "contrato", "próximo passo",
			"próximos passos",
		},
		ExampleMarkers: []string{
			"exemplo", "como no caso", "caso de", "imagine que", "digamos que",
		},
		DateMarkers: []string{
			"amanhã", "hoje", "segunda", "terça", "quarta", "quinta", "sexta", "sábado", "domingo",
			"semana que vem", "próxima semana", "próximo mês", "fim do mês",
		},
		MonthNames: []string{
			"janeiro", "fevereiro", "março", "abril", "maio", "junho", "julho", "agosto",
			"setembro", "outubro", "novembro", "dezembro",
		},
		Stopwords: []string{
			"para", "como", "você", "vocês", "isso", "esse", "essa", "este", "esta", "mais",
			"muito", "qual", "quais", "sobre", "então", "quando", "onde", "porque", "pelo",
			"pela", "também", "ainda", "seus", "suas", "nosso", "nossa", "aqui", "fazer",
			"pode", "seria", "estou", "temos", "tenho", "dele", "dela", "cada", "mesmo",
			"todo", "toda", "todos", "agora", "olá", "certo",
		},

		Areas: map[types.Area]AreaTable{
			types.AreaCommercial: {
				Topics: []Topic{
					{Name: "necessidades", Keywords: []string{"necessidade", "problema", "desafio", "dor", "dificuldade"}},
					{Name: "orçamento", Keywords: []string{"orçamento", "preço", "investimento", "custo", "valor"}},
					{Name: "prazo", Keywords: []string{"prazo", "cronograma", "quando"}},
					{Name: "decisores", Keywords: []string{"decisor", "diretor", "aprovação", "responsável"}},
					{Name: "retorno", Keywords: []string{"roi", "retorno", "resultado", "benefício"}},
					{Name: "concorrência", Keywords: []string{"concorrente", "concorrência", "alternativa"}},
				},
				Criteria: map[string][]string{
					"rapport":            {"prazer", "bom dia", "boa tarde", "como vai", "tudo bem", "obrigado", "conhecer"},
					"needs_discovery":    {"necessidade", "desafio", "problema", "objetivo", "como funciona", "processo atual", "dificuldade", "prioridade"},
					"value_proposition":  {"benefício", "valor", "retorno", "roi", "economia", "resultado", "diferencial", "ganho", "produtividade"},
					"objection_handling": {"entendo", "compreendo", "preocupação", "objeção", "comparado", "alternativa", "garantia", "caso de sucesso", "investimento"},
					"closing":            {"próximo passo", "proposta", "contrato", "fechar", "agendar", "reunião", "assinatura", "implementação", "prazo"},
				},
				Resolution:  []string{"resolver", "solução", "resolvido", "atende", "acordo", "fechado"},
				Decision:    []string{"decidimos", "decisão", "vamos seguir", "aprovado", "combinado", "fechamos"},
				ActionItems: []string{"vou enviar", "enviar", "agendar", "marcar", "preparar", "encaminhar", "retornar", "ligar"},
				NextSteps: []string{
					"Pratique perguntas de implicação para aprofundar a descoberta de necessidades",
					"Prepare respostas para as três objeções mais comuns do seu mercado",
				},
			},
			types.AreaHR: {
				Topics: []Topic{
					{Name: "desempenho", Keywords: []string{"desempenho", "performance", "meta", "resultado"}},
					{Name: "desenvolvimento", Keywords: []string{"desenvolvimento", "carreira", "treinamento", "crescimento"}},
					{Name: "comportamento", Keywords: []string{"comportamento", "atitude", "postura"}},
					{Name: "bem-estar", Keywords: []string{"bem estar", "saúde", "equilíbrio", "estresse"}},
					{Name: "expectativas", Keywords: []string{"expectativa", "objetivo", "alinhamento"}},
				},
				Criteria: map[string][]string{
					"active_listening":  {"entendo", "se eu entendi", "você disse", "me conta", "conte mais", "percebo", "compreendo", "faz sentido"},
					"feedback":          {"feedback", "observei", "percebi", "exemplo", "impacto", "comportamento", "resultado", "melhorar", "ponto forte"},
					"empathy":           {"sinto muito", "imagino", "deve ser", "compreendo", "estou aqui", "apoio", "acolher", "entendo"},
					"clarity":           {"objetivo", "expectativa", "claro", "especificamente", "ou seja", "em resumo", "resumindo", "combinado"},
					"policy_compliance": {"política", "norma", "regra", "código de conduta", "compliance", "procedimento", "confidencial", "sigilo"},
				},
				Resolution:  []string{"resolver", "solução", "resolvido", "acordo", "esclarecido"},
				Decision:    []string{"decidimos", "decisão", "combinado", "definimos", "aprovado"},
				ActionItems: []string{"plano de ação", "acompanhar", "agendar", "marcar", "registrar", "enviar", "conversar novamente"},
				NextSteps: []string{
					"Use o modelo situação-comportamento-impacto no próximo feedback",
					"Treine perguntas de escuta ativa antes de propor soluções",
				},
			},
			types.AreaEducational: {
				Topics: []Topic{
					{Name: "objetivo de aprendizagem", Keywords: []string{"objetivo", "aprender", "aprendizagem"}},
					{Name: "conceito", Keywords: []string{"conceito", "definição", "teoria"}},
					{Name: "exemplo prático", Keywords: []string{"exemplo", "prática", "caso"}},
					{Name: "avaliação", Keywords: []string{"avaliação", "exercício", "prova", "teste"}},
					{Name: "dúvidas", Keywords: []string{"dúvida", "pergunta", "entendeu"}},
				},
				Criteria: map[string][]string{
					"explanation":            {"conceito", "significa", "definição", "por exemplo", "ou seja", "funciona", "passo", "etapa"},
					"engagement":             {"o que você acha", "vamos", "tente", "prática", "atividade", "exercício", "participar", "desafio"},
					"checking_understanding": {"entendeu", "ficou claro", "alguma dúvida", "pode explicar", "resuma", "com suas palavras", "faz sentido"},
					"encouragement":          {"muito bem", "parabéns", "ótimo", "excelente", "continue", "progresso", "você consegue", "bom trabalho"},
				},
				Resolution:  []string{"entendi", "ficou claro", "esclarecido", "resolvido", "aprendeu"},
				Decision:    []string{"combinado", "vamos fazer", "decidimos", "definimos"},
				ActionItems: []string{"exercício", "tarefa", "revisar", "estudar", "praticar", "entregar"},
				NextSteps: []string{
					"Planeje uma verificação de entendimento a cada novo conceito",
					"Inclua um exemplo prático ligado ao cotidiano do aluno",
				},
			},
			types.AreaManagement: {
				Topics: []Topic{
					{Name: "metas", Keywords: []string{"meta", "objetivo", "indicador", "kpi"}},
					{Name: "prioridades", Keywords: []string{"prioridade", "urgente", "foco"}},
					{Name: "recursos", Keywords: []string{"recurso", "equipe", "orçamento", "ferramenta"}},
					{Name: "prazos", Keywords: []string{"prazo", "entrega", "cronograma"}},
					{Name: "responsabilidades", Keywords: []string{"responsável", "responsabilidade", "dono", "delegar"}},
				},
				Criteria: map[string][]string{
					"delegation":          {"delegar", "responsável", "autonomia", "confio", "você fica", "ficar com", "dono", "encarregado"},
					"goal_setting":        {"meta", "objetivo", "indicador", "kpi", "prazo", "mensurar", "resultado", "entrega"},
					"conflict_resolution": {"conflito", "divergência", "ponto de vista", "acordo", "mediar", "solução", "consenso", "ouvir os dois"},
					"motivation":          {"reconheço", "parabéns", "orgulho", "confio", "crescimento", "oportunidade", "desenvolvimento", "valorizo"},
				},
				Resolution:  []string{"resolver", "solução", "resolvido", "acordo", "consenso"},
				Decision:    []string{"decidimos", "decisão", "definimos", "aprovado", "vamos seguir"},
				ActionItems: []string{"plano de ação", "responsável", "entregar", "acompanhar", "agendar", "revisar"},
				NextSteps: []string{
					"Defina metas com indicador, responsável e prazo em cada conversa",
					"Pratique a mediação ouvindo os dois lados antes de decidir",
				},
			},
		},
	}
}
