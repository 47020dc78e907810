package processor

import (
	"context"
	"math"
	"sort"

	"synapse-go/internal/session"
	"synapse-go/internal/types"
)

// Summary aggregates stored sessions for the dashboard.
type Summary struct {
	TotalSessions  int                      `json:"total_sessions"`
	AverageScore   float64                  `json:"average_score"`
	ByArea         map[types.Area]int       `json:"by_area"`
	AverageByArea  map[types.Area]float64   `json:"average_by_area"`
	ByLevel        map[types.ScoreLevel]int `json:"by_level"`
	TopScenarios   []string                 `json:"top_scenarios"`
	RecentSessions []string                 `json:"recent_sessions"`
}

const (
	topScenarios   = 3
	recentSessions = 5
)

// Summarize aggregates records. Records are expected newest first, the
// order session.Store.List returns.
func Summarize(records []session.Record) Summary {
	s := Summary{
		TotalSessions: len(records),
		ByArea:        map[types.Area]int{},
		AverageByArea: map[types.Area]float64{},
		ByLevel:       map[types.ScoreLevel]int{},
	}
	if len(records) == 0 {
		return s
	}

	total := 0.0
	areaTotal := map[types.Area]float64{}
	byScenario := map[string]int{}
	for _, r := range records {
		total += r.Score()
		s.ByArea[r.Area]++
		areaTotal[r.Area] += r.Score()
		s.ByLevel[r.Report.ScoreLevel]++
		byScenario[r.ScenarioID]++
		if len(s.RecentSessions) < recentSessions {
			s.RecentSessions = append(s.RecentSessions, r.ID)
		}
	}
	s.AverageScore = round2(total / float64(len(records)))
	for a, n := range s.ByArea {
		s.AverageByArea[a] = round2(areaTotal[a] / float64(n))
	}

	type sc struct {
		id string
		n  int
	}
	var arr []sc
	for id, n := range byScenario {
		arr = append(arr, sc{id, n})
	}
	sort.Slice(arr, func(i, j int) bool {
		if arr[i].n != arr[j].n {
			return arr[i].n > arr[j].n
		}
		return arr[i].id < arr[j].id
	})
	for i := 0; i < len(arr) && i < topScenarios; i++ {
		s.TopScenarios = append(s.TopScenarios, arr[i].id)
	}
	return s
}

// Summary summarizes the most recent limit sessions; limit <= 0 means all.
func (s *Service) Summary(ctx context.Context, limit int) (Summary, error) {
	records, err := s.d.Sessions.List(ctx, limit)
	if err != nil {
		return Summary{}, err
	}
	sum := Summarize(records)
	s.d.Log.WithField("total_sessions", sum.TotalSessions).WithField("areas", len(sum.ByArea)).Debug("session summary complete")
	return sum, nil
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
