// Package session persists scored sessions: the transcript that was scored,
// the metrics and the report.
package session

import (
	"context"
	"errors"
	"time"

	"synapse-go/internal/types"
)

var ErrNotFound = errors.New("session not found")

// Record is one scored session.
type Record struct {
	ID           string                 `json:"id"`
	ScenarioID   string                 `json:"scenario_id"`
	Area         types.Area             `json:"area"`
	UserRole     string                 `json:"user_role"`
	Conversation types.Conversation     `json:"conversation"`
	Metrics      types.MetricsResult    `json:"metrics"`
	Report       types.SimulationReport `json:"report"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

// Score is the overall score the report was built from.
func (r Record) Score() float64 { return r.Report.OverallScore }

// Store is the session collaborator. Save upserts on ID.
type Store interface {
	Save(ctx context.Context, r *Record) error
	Get(ctx context.Context, id string) (*Record, error)
	List(ctx context.Context, limit int) ([]Record, error)
}
