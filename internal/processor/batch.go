package processor

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/xuri/excelize/v2"
)

// LoadBatch reads scoring requests from the first sheet of an XLSX file.
// Columns are found by header heuristics. Rows without a scenario or a
// transcript source are skipped.
func LoadBatch(path string) ([]Request, error) {
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

	sessionIdx, scenarioIdx, roleIdx, textIdx, urlIdx, recordingIdx := -1, -1, -1, -1, -1, -1
	for i, h := range rows[0] {
		l := strings.ToLower(strings.TrimSpace(h))
		switch {
		case strings.Contains(l, "record") || strings.Contains(l, "audio") || strings.Contains(l, "grava"):
			if recordingIdx == -1 {
				recordingIdx = i
			}
		case strings.Contains(l, "url") || strings.Contains(l, "link"):
			if urlIdx == -1 {
				urlIdx = i
			}
		case strings.Contains(l, "scenario") || strings.Contains(l, "cenário") || strings.Contains(l, "cenario"):
			if scenarioIdx == -1 {
				scenarioIdx = i
			}
		case strings.Contains(l, "session") || strings.Contains(l, "sessão") || strings.Contains(l, "sessao") || l == "id":
			if sessionIdx == -1 {
				sessionIdx = i
			}
		case strings.Contains(l, "role") || strings.Contains(l, "papel") || strings.Contains(l, "cargo"):
			if roleIdx == -1 {
				roleIdx = i
			}
		case strings.Contains(l, "transcri") || strings.Contains(l, "text"):
			if textIdx == -1 {
				textIdx = i
			}
		}
	}
	if scenarioIdx == -1 {
		return nil, fmt.Errorf("header needs a scenario column")
	}

	var out []Request
	for i, r := range rows {
		if i == 0 {
			continue
		}
		req := Request{
			SessionID:  strings.TrimSpace(cell(r, sessionIdx)),
			ScenarioID: strings.TrimSpace(cell(r, scenarioIdx)),
			UserRole:   strings.TrimSpace(cell(r, roleIdx)),
			Transcript: cell(r, textIdx),
		}
		if u := strings.TrimSpace(cell(r, urlIdx)); isHTTP(u) {
			req.TranscriptURL = u
		}
		if u := strings.TrimSpace(cell(r, recordingIdx)); isHTTP(u) {
			req.RecordingURL = u
		}
		if req.ScenarioID == "" {
			continue
		}
		if strings.TrimSpace(req.Transcript) == "" && req.TranscriptURL == "" && req.RecordingURL == "" {
			continue
		}
		out = append(out, req)
	}
	return out, nil
}

func cell(r []string, idx int) string {
	if idx < 0 || idx >= len(r) {
		return ""
	}
	return r[idx]
}

func isHTTP(s string) bool {
	l := strings.ToLower(s)
	return strings.HasPrefix(l, "http://") || strings.HasPrefix(l, "https://")
}

// ScoreBatch scores reqs with at most workers sessions in flight. Results
// keep the order of reqs; a failed session carries its error in Error.
func (s *Service) ScoreBatch(ctx context.Context, reqs []Request, workers int) []Result {
	if workers < 1 {
		workers = 1
	}
	out := make([]Result, len(reqs))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i, req := range reqs {
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			res, err := s.ScoreSession(ctx, req)
			if err != nil {
				s.d.Log.WithField("session_id", req.SessionID).WithField("error", err.Error()).Warn("batch session failed")
				out[i] = Result{SessionID: req.SessionID, ScenarioID: req.ScenarioID, Error: err.Error()}
				return
			}
			out[i] = *res
		}()
	}
	wg.Wait()
	return out
}
