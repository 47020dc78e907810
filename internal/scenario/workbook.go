package scenario

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"synapse-go/internal/logger"
	"synapse-go/internal/types"
)

// LoadWorkbook reads scenarios from the first sheet of an XLSX file. Columns
// are found by header heuristics; the criteria cell holds
// "key:label:weight; key:label:weight".
func LoadWorkbook(path string) (*Catalog, error) {
	log := logger.New().WithField("component", "scenario.workbook").WithField("path", path)

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) <= 1 {
		return nil, fmt.Errorf("no data rows")
	}

	cols := detectColumns(rows[0])
	if cols.id == -1 || cols.area == -1 {
		return nil, fmt.Errorf("header needs id and area columns")
	}
	log.WithFields(map[string]interface{}{
		"idIdx":       cols.id,
		"areaIdx":     cols.area,
		"titleIdx":    cols.title,
		"descIdx":     cols.desc,
		"criteriaIdx": cols.criteria,
	}).Debug("detected scenario column indices")

	var out []types.Scenario
	for i, r := range rows {
		if i == 0 {
			continue
		}
		id := strings.TrimSpace(cell(r, cols.id))
		if id == "" {
			// blank spacer rows are common in hand-edited sheets
			continue
		}
		area, err := parseArea(cell(r, cols.area))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		criteria, err := ParseCriteria(cell(r, cols.criteria))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		out = append(out, types.Scenario{
			ID:          id,
			Area:        area,
			Title:       strings.TrimSpace(cell(r, cols.title)),
			Description: strings.TrimSpace(cell(r, cols.desc)),
			Criteria:    criteria,
		})
	}
	log.WithField("scenarios", len(out)).Info("scenario workbook loaded")
	return NewCatalog(out...)
}

type columns struct {
	id, area, title, desc, criteria int
}

func detectColumns(header []string) columns {
	c := columns{-1, -1, -1, -1, -1}
	for i, h := range header {
		l := strings.ToLower(strings.TrimSpace(h))
		switch {
		case strings.Contains(l, "crit") || strings.Contains(l, "rubric"):
			if c.criteria == -1 {
				c.criteria = i
			}
		case strings.Contains(l, "desc"):
			if c.desc == -1 {
				c.desc = i
			}
		case strings.Contains(l, "area") || strings.Contains(l, "área") || strings.Contains(l, "track") || strings.Contains(l, "trilha"):
			if c.area == -1 {
				c.area = i
			}
		case strings.Contains(l, "title") || strings.Contains(l, "título") || strings.Contains(l, "titulo") || strings.Contains(l, "name") || strings.Contains(l, "nome"):
			if c.title == -1 {
				c.title = i
			}
		case l == "id" || strings.Contains(l, "scenario") || strings.Contains(l, "cenário") || strings.Contains(l, "cenario"):
			if c.id == -1 {
				c.id = i
			}
		}
	}
	return c
}

func cell(r []string, idx int) string {
	if idx < 0 || idx >= len(r) {
		return ""
	}
	return r[idx]
}

// ParseCriteria reads "key:label:weight; key:label". Label defaults to the
// key and weight to 1.
func ParseCriteria(s string) ([]types.Criterion, error) {
	var out []types.Criterion
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		fields := strings.Split(part, ":")
		c := types.Criterion{Key: strings.TrimSpace(fields[0]), Weight: 1}
		c.Label = c.Key
		if len(fields) > 1 && strings.TrimSpace(fields[1]) != "" {
			c.Label = strings.TrimSpace(fields[1])
		}
		if len(fields) > 2 {
			w, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(fields[2]), ",", "."), 64)
			if err != nil {
				return nil, fmt.Errorf("criterion %q: bad weight %q", c.Key, fields[2])
			}
			c.Weight = w
		}
		out = append(out, c)
	}
	return out, nil
}
