// Package report turns a metrics result into the feedback report shown to
// the trainee. Every output is a deterministic function of its inputs.
package report

import (
	"fmt"
	"strings"

	"synapse-go/internal/actionable"
	"synapse-go/internal/extractor"
	"synapse-go/internal/lexicon"
	"synapse-go/internal/types"
)

// DefaultUserRole names the trainee when the caller gives no role.
const DefaultUserRole = "participante"

func summaryTemplate(level types.ScoreLevel) string {
	switch level {
	case types.LevelExcellent:
		return "Desempenho excelente como %[2]s na área %[1]s. No cenário \"%[3]s\" você conduziu a conversa com segurança e atingiu os principais objetivos."
	case types.LevelGood:
		return "Bom desempenho como %[2]s na área %[1]s. No cenário \"%[3]s\" você demonstrou domínio da maior parte das competências, com alguns pontos a refinar."
	case types.LevelSatisfactory:
		return "Desempenho satisfatório como %[2]s na área %[1]s. No cenário \"%[3]s\" a base está construída, mas há oportunidades claras de evolução."
	default:
		return "Desempenho abaixo do esperado como %[2]s na área %[1]s. No cenário \"%[3]s\" vale revisar os fundamentos e praticar novamente."
	}
}

var levelNextSteps = map[types.ScoreLevel][]string{
	types.LevelExcellent: {
		"Experimente um cenário de maior dificuldade",
		"Compartilhe suas boas práticas com a equipe",
	},
	types.LevelGood: {
		"Repita este cenário focando nos pontos de melhoria",
		"Faça uma nova simulação em até uma semana",
	},
	types.LevelSatisfactory: {
		"Revise os critérios do cenário antes da próxima tentativa",
		"Pratique perguntas abertas em uma nova sessão",
	},
	types.LevelNeedsImprovement: {
		"Estude o material de apoio do cenário",
		"Refaça a simulação nos próximos dias com foco nos fundamentos",
	},
}

// maxAreaSteps bounds the area-specific next steps.
const maxAreaSteps = 2

type Synthesizer struct {
	locale    *lexicon.Locale
	constants lexicon.Constants
	bands     Bands
}

func NewSynthesizer(loc *lexicon.Locale, k lexicon.Constants) *Synthesizer {
	if loc == nil {
		loc = lexicon.Default()
	}
	return &Synthesizer{locale: loc, constants: k, bands: DefaultBands}
}

// Synthesize builds the report. Highlights, improvements, next steps and
// recommendations are never empty.
func (s *Synthesizer) Synthesize(m types.MetricsResult, sc types.Scenario, userRole string) types.SimulationReport {
	score := extractor.Round2(extractor.Clamp(m.OverallScore, 0, 10))
	level := Level(score)
	subj := Subject{
		Metrics:   m,
		Scenario:  sc,
		RateMin:   s.constants.IdealSpeechRateMin,
		RateMax:   s.constants.IdealSpeechRateMax,
		FillerMax: s.constants.FillerThreshold,
	}

	return types.SimulationReport{
		OverallScore:        score,
		ScoreLevel:          level,
		Summary:             Summary(level, sc, userRole),
		Highlights:          actionable.Fire(highlightRules, subj, fallbackHighlight),
		Improvements:        actionable.Fire(improvementRules, subj, fallbackImprovement),
		NextSteps:           s.nextSteps(level, sc.Area),
		DetailedMetrics:     DetailedMetrics(m, s.bands),
		BenchmarkComparison: Benchmark(score),
		Recommendations:     s.recommendations(subj),
	}
}

// Summary fills the level's template with area, role and scenario title.
func Summary(level types.ScoreLevel, sc types.Scenario, userRole string) string {
	role := strings.TrimSpace(userRole)
	if role == "" {
		role = DefaultUserRole
	}
	title := strings.TrimSpace(sc.Title)
	if title == "" {
		title = sc.ID
	}
	return fmt.Sprintf(summaryTemplate(level), sc.Area.DisplayName(), role, title)
}

func (s *Synthesizer) nextSteps(level types.ScoreLevel, area types.Area) []string {
	steps := append([]string(nil), levelNextSteps[level]...)
	areaSteps := s.locale.Area(area).NextSteps
	if len(areaSteps) > maxAreaSteps {
		areaSteps = areaSteps[:maxAreaSteps]
	}
	return append(steps, areaSteps...)
}

func (s *Synthesizer) recommendations(subj Subject) []types.Recommendation {
	recs := actionable.Collect(recommendationRules, subj)
	return append(recs, s.planNextTraining(subj.Scenario.Area))
}

// planNextTraining is appended to every report.
func (s *Synthesizer) planNextTraining(area types.Area) types.Recommendation {
	items := []string{"Agende a próxima simulação para os próximos sete dias"}
	items = append(items, s.locale.Area(area).NextSteps...)
	return types.Recommendation{
		Category:    "training",
		Priority:    types.PriorityLow,
		Title:       "Planeje seu próximo treino",
		Description: "A prática frequente consolida as competências trabalhadas nesta sessão.",
		ActionItems: items,
	}
}
