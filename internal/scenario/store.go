// Package scenario supplies the read-only scenario rubrics the scorer runs
// against, loaded from YAML or spreadsheet catalogs.
package scenario

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"synapse-go/internal/types"
)

var ErrNotFound = errors.New("scenario not found")

// Store is the scenario collaborator.
type Store interface {
	Get(ctx context.Context, id string) (types.Scenario, error)
	List(ctx context.Context) ([]types.Scenario, error)
}

// Catalog is an immutable in-memory Store.
type Catalog struct {
	byID map[string]types.Scenario
	ids  []string
}

// NewCatalog validates every scenario and rejects duplicate ids.
func NewCatalog(scenarios ...types.Scenario) (*Catalog, error) {
	c := &Catalog{byID: make(map[string]types.Scenario, len(scenarios))}
	for _, s := range scenarios {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.byID[s.ID]; dup {
			return nil, fmt.Errorf("duplicate scenario %q", s.ID)
		}
		c.byID[s.ID] = s
		c.ids = append(c.ids, s.ID)
	}
	sort.Strings(c.ids)
	return c, nil
}

func (c *Catalog) Get(_ context.Context, id string) (types.Scenario, error) {
	s, ok := c.byID[id]
	if !ok {
		return types.Scenario{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return s, nil
}

// List returns every scenario ordered by id.
func (c *Catalog) List(_ context.Context) ([]types.Scenario, error) {
	out := make([]types.Scenario, 0, len(c.ids))
	for _, id := range c.ids {
		out = append(out, c.byID[id])
	}
	return out, nil
}

func (c *Catalog) Len() int { return len(c.ids) }

// Load reads a catalog, choosing the format by file extension.
func Load(path string) (*Catalog, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(path)
	case ".xlsx":
		return LoadWorkbook(path)
	default:
		return nil, fmt.Errorf("scenario catalog %s: unsupported format", path)
	}
}

var areaAliases = map[string]types.Area{
	"commercial":  types.AreaCommercial,
	"comercial":   types.AreaCommercial,
	"vendas":      types.AreaCommercial,
	"sales":       types.AreaCommercial,
	"hr":          types.AreaHR,
	"rh":          types.AreaHR,
	"educational": types.AreaEducational,
	"educacional": types.AreaEducational,
	"education":   types.AreaEducational,
	"management":  types.AreaManagement,
	"gestao":      types.AreaManagement,
	"gestão":      types.AreaManagement,
	"lideranca":   types.AreaManagement,
	"liderança":   types.AreaManagement,
}

// parseArea accepts the canonical area names and their common aliases.
func parseArea(s string) (types.Area, error) {
	if a, ok := areaAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return a, nil
	}
	return types.ParseArea(s)
}
