package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"synapse-go/internal/types"
)

type yamlScenario struct {
	ID          string            `yaml:"id"`
	Area        string            `yaml:"area"`
	Title       string            `yaml:"title"`
	Description string            `yaml:"description"`
	Criteria    []types.Criterion `yaml:"criteria"`
}

type yamlCatalog struct {
	Scenarios []yamlScenario `yaml:"scenarios"`
}

// LoadYAML reads a catalog of the form
//
//	scenarios:
//	  - id: price-objection
//	    area: commercial
//	    title: Objeção de preço
//	    criteria:
//	      - {key: objection_handling, label: Contorno de objeções, weight: 2}
func LoadYAML(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario catalog: %w", err)
	}
	return ParseYAML(data)
}

func ParseYAML(data []byte) (*Catalog, error) {
	var doc yamlCatalog
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse scenario catalog: %w", err)
	}
	out := make([]types.Scenario, 0, len(doc.Scenarios))
	for _, s := range doc.Scenarios {
		area, err := parseArea(s.Area)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", s.ID, err)
		}
		for i := range s.Criteria {
			if s.Criteria[i].Label == "" {
				s.Criteria[i].Label = s.Criteria[i].Key
			}
		}
		out = append(out, types.Scenario{
			ID:          s.ID,
			Area:        area,
			Title:       s.Title,
			Description: s.Description,
			Criteria:    s.Criteria,
		})
	}
	return NewCatalog(out...)
}
