package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"synapse-go/internal/types"
)

type styles struct {
	title, heading, bold, header, wrap int

	level    map[types.ScoreLevel]int
	status   map[types.Status]int
	priority map[types.Priority]int
}

func newStyles(f *excelize.File) (*styles, error) {
	st := &styles{
		level:    map[types.ScoreLevel]int{},
		status:   map[types.Status]int{},
		priority: map[types.Priority]int{},
	}
	var err error
	add := func(s *excelize.Style) int {
		if err != nil {
			return 0
		}
		var id int
		id, err = f.NewStyle(s)
		return id
	}

	st.title = add(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 16}})
	st.heading = add(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 12, Color: "2874A6"}})
	st.bold = add(&excelize.Style{Font: &excelize.Font{Bold: true}})
	st.header = add(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"EAECEE"}},
	})
	st.wrap = add(&excelize.Style{Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"}})

	// fixed order keeps style ids stable between renders
	for _, lvl := range []types.ScoreLevel{types.LevelExcellent, types.LevelGood, types.LevelSatisfactory, types.LevelNeedsImprovement} {
		st.level[lvl] = add(badge(levelColors[lvl]))
	}
	for _, s := range []types.Status{types.StatusExcellent, types.StatusGood, types.StatusWarning, types.StatusPoor} {
		st.status[s] = add(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{statusColors[s]}},
		})
	}
	for _, p := range []types.Priority{types.PriorityHigh, types.PriorityMedium, types.PriorityLow} {
		st.priority[p] = add(badge(priorityColors[p]))
	}
	return st, err
}

// badge is white bold text on a solid fill.
func badge(color string) *excelize.Style {
	return &excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	}
}

// sheet writes rows top to bottom and keeps the first error; later calls
// become no-ops once an error is recorded.
type sheet struct {
	f      *excelize.File
	name   string
	styles *styles
	n      int // current row, 1-based
	err    error
}

func (s *sheet) row(values ...any) {
	s.n++
	if s.err != nil {
		return
	}
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, s.n)
		if err != nil {
			s.err = err
			return
		}
		if err := s.f.SetCellValue(s.name, cell, v); err != nil {
			s.err = fmt.Errorf("cell %s: %w", cell, err)
			return
		}
	}
}

func (s *sheet) blank() { s.n++ }

func (s *sheet) cell(col string) string { return fmt.Sprintf("%s%d", col, s.n) }

// style applies id to column col of the current row. A zero id is ignored.
func (s *sheet) style(col string, id int) {
	if s.err != nil || id == 0 {
		return
	}
	c := s.cell(col)
	s.err = s.f.SetCellStyle(s.name, c, c, id)
}

func (s *sheet) merge(from, to string) {
	if s.err != nil {
		return
	}
	s.err = s.f.MergeCell(s.name, s.cell(from), s.cell(to))
}

func (s *sheet) width(col string, w float64) {
	if s.err != nil {
		return
	}
	s.err = s.f.SetColWidth(s.name, col, col, w)
}

func (s *sheet) title(text string) {
	s.row(text)
	s.style("A", s.styles.title)
}

func (s *sheet) heading(text string) {
	s.row(text)
	s.style("A", s.styles.heading)
}

func (s *sheet) pair(key string, value string) {
	s.row(key, value)
	s.style("A", s.styles.bold)
}

// bullets writes one "•" row per item, or one placeholder row.
func (s *sheet) bullets(items []string) {
	if len(items) == 0 {
		s.row("•", Placeholder)
		return
	}
	for _, it := range items {
		s.row("•", it)
	}
}
