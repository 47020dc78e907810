// Package export renders a finished report as a spreadsheet workbook with
// one sheet per page. It draws only values already present on the report.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"synapse-go/internal/lexicon"
	"synapse-go/internal/logger"
	"synapse-go/internal/types"
)

// Sheet names, one per page.
const (
	SheetSummary         = "Resumo"
	SheetMetrics         = "Métricas"
	SheetRecommendations = "Recomendações"
)

// Placeholder fills a section whose list is empty.
const Placeholder = "—"

// Meta identifies the session a report belongs to.
type Meta struct {
	Product   string
	Scenario  types.Scenario
	UserRole  string
	Timestamp time.Time
}

var levelLabels = map[types.ScoreLevel]string{
	types.LevelExcellent:        "Excelente",
	types.LevelGood:             "Bom",
	types.LevelSatisfactory:     "Satisfatório",
	types.LevelNeedsImprovement: "Precisa melhorar",
}

var statusLabels = map[types.Status]string{
	types.StatusExcellent: "Excelente",
	types.StatusGood:      "Bom",
	types.StatusWarning:   "Atenção",
	types.StatusPoor:      "Crítico",
}

var priorityLabels = map[types.Priority]string{
	types.PriorityHigh:   "Alta",
	types.PriorityMedium: "Média",
	types.PriorityLow:    "Baixa",
}

// Fill colours per level, status and priority.
var (
	levelColors = map[types.ScoreLevel]string{
		types.LevelExcellent:        "1E8449",
		types.LevelGood:             "2874A6",
		types.LevelSatisfactory:     "D68910",
		types.LevelNeedsImprovement: "C0392B",
	}
	statusColors = map[types.Status]string{
		types.StatusExcellent: "D5F5E3",
		types.StatusGood:      "D6EAF8",
		types.StatusWarning:   "FCF3CF",
		types.StatusPoor:      "FADBD8",
	}
	priorityColors = map[types.Priority]string{
		types.PriorityHigh:   "C0392B",
		types.PriorityMedium: "D68910",
		types.PriorityLow:    "2874A6",
	}
)

func label[K comparable](m map[K]string, k K) string {
	if s, ok := m[k]; ok {
		return s
	}
	return fmt.Sprint(k)
}

// Render builds the workbook. Every failure, including a panic inside the
// spreadsheet library, comes back as *GenerationError.
func Render(r types.SimulationReport, meta Meta) (out []byte, err error) {
	log := logger.New().WithField("component", "export").WithField("scenario", meta.Scenario.ID)

	defer func() {
		if p := recover(); p != nil {
			err = &GenerationError{Op: "render", Err: fmt.Errorf("panic: %v", p)}
		}
		if err != nil {
			log.WithError(err).Error("report generation failed")
			out = nil
		}
	}()

	f := excelize.NewFile()
	defer f.Close()

	st, err := newStyles(f)
	if err != nil {
		return nil, &GenerationError{Op: "styles", Err: err}
	}
	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return nil, &GenerationError{Op: "sheet " + SheetSummary, Err: err}
	}
	for _, name := range []string{SheetMetrics, SheetRecommendations} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, &GenerationError{Op: "sheet " + name, Err: err}
		}
	}

	pages := []struct {
		name  string
		write func(*sheet)
	}{
		{SheetSummary, func(s *sheet) { writeSummary(s, r, meta) }},
		{SheetMetrics, func(s *sheet) { writeMetrics(s, r) }},
		{SheetRecommendations, func(s *sheet) { writeRecommendations(s, r) }},
	}
	for _, p := range pages {
		s := &sheet{f: f, name: p.name, styles: st}
		p.write(s)
		if s.err != nil {
			return nil, &GenerationError{Op: "sheet " + p.name, Err: s.err}
		}
	}

	if err := f.SetDocProps(&excelize.DocProperties{
		Title:   meta.Scenario.Title,
		Subject: "Relatório de simulação",
		Creator: productName(meta.Product),
	}); err != nil {
		return nil, &GenerationError{Op: "properties", Err: err}
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, &GenerationError{Op: "write", Err: err}
	}
	log.WithField("bytes", buf.Len()).Info("report workbook rendered")
	return buf.Bytes(), nil
}

func writeSummary(s *sheet, r types.SimulationReport, meta Meta) {
	s.width("A", 22)
	s.width("B", 60)
	s.width("C", 20)

	s.title("Relatório de simulação")
	s.blank()
	s.pair("Cenário", meta.Scenario.Title)
	s.pair("Área", meta.Scenario.Area.DisplayName())
	s.pair("Função", meta.UserRole)
	s.pair("Data", meta.Timestamp.Format("02/01/2006 15:04"))
	s.blank()

	s.row("Nota geral", r.OverallScore, label(levelLabels, r.ScoreLevel))
	s.style("B", s.styles.level[r.ScoreLevel])
	s.style("C", s.styles.level[r.ScoreLevel])
	s.blank()

	s.heading("Resumo executivo")
	s.row(r.Summary)
	s.style("A", s.styles.wrap)
	s.merge("A", "C")
	s.blank()

	s.heading("Destaques")
	s.bullets(r.Highlights)
}

func writeMetrics(s *sheet, r types.SimulationReport) {
	s.width("A", 28)
	s.width("B", 12)
	s.width("C", 12)
	s.width("D", 14)
	s.width("E", 50)

	s.title("Métricas detalhadas")
	s.blank()
	s.heading("Comparativo")
	b := r.BenchmarkComparison
	s.row("Sua nota", b.YourScore)
	s.row("Média", b.AverageScore)
	s.row("Melhores desempenhos", b.TopPerformers)
	s.row("Percentil", b.Percentile)
	s.blank()

	if len(r.DetailedMetrics) == 0 {
		s.row(Placeholder)
	}
	for _, g := range r.DetailedMetrics {
		s.heading(g.Title)
		s.row("Métrica", "Valor", "Meta", "Status", "Descrição")
		s.style("A", s.styles.header)
		s.style("E", s.styles.header)
		if len(g.Metrics) == 0 {
			s.row(Placeholder)
		}
		for _, c := range g.Metrics {
			s.row(c.Name, c.Value, c.Target, label(statusLabels, c.Status), c.Description)
			s.style("D", s.styles.status[c.Status])
		}
		s.blank()
	}

	s.heading("Pontos de melhoria")
	s.bullets(r.Improvements)
}

func writeRecommendations(s *sheet, r types.SimulationReport) {
	s.width("A", 6)
	s.width("B", 70)
	s.width("C", 14)

	s.title("Recomendações")
	s.blank()
	if len(r.Recommendations) == 0 {
		s.row("", Placeholder)
	}
	for i, rec := range r.Recommendations {
		s.row(i+1, rec.Title, label(priorityLabels, rec.Priority))
		s.style("B", s.styles.bold)
		s.style("C", s.styles.priority[rec.Priority])
		s.row("", rec.Description)
		s.style("B", s.styles.wrap)
		for _, item := range rec.ActionItems {
			s.row("•", item)
		}
		s.blank()
	}

	s.heading("Próximos passos")
	s.bullets(r.NextSteps)
}

func productName(p string) string {
	if strings.TrimSpace(p) == "" {
		return "synapse"
	}
	return p
}

// Filename follows {product}_{area}_{sanitized-title}_{YYYYMMDD-HHMMSS}.xlsx.
func Filename(product string, area types.Area, title string, at time.Time) string {
	slug := strings.ReplaceAll(lexicon.Normalize(title), " ", "-")
	if slug == "" {
		slug = "relatorio"
	}
	prod := strings.ReplaceAll(lexicon.Normalize(productName(product)), " ", "-")
	return fmt.Sprintf("%s_%s_%s_%s.xlsx", prod, area, slug, at.Format("20060102-150405"))
}
