// Package processor runs the session workflow around the scoring pipeline:
// claim the session, resolve scenario and transcript, score, persist.
package processor

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"synapse-go/internal/claim"
	"synapse-go/internal/export"
	"synapse-go/internal/logger"
	"synapse-go/internal/pipeline"
	"synapse-go/internal/scenario"
	"synapse-go/internal/session"
	"synapse-go/internal/transcript"
	"synapse-go/internal/types"
)

var (
	ErrNoTranscript     = errors.New("request carries no transcript")
	ErrNoTranscriber    = errors.New("no transcription service configured")
	ErrAmbiguousRequest = errors.New("request carries more than one transcript source")
	ErrBadTranscript    = errors.New("transcript cannot be parsed")
)

// Scorer is the scoring pipeline as seen by the service.
type Scorer interface {
	Score(ctx context.Context, conv types.Conversation, sc types.Scenario, userRole string) (*pipeline.Result, error)
}

// Transcriber turns a session recording into transcript text.
type Transcriber interface {
	Transcribe(ctx context.Context, recordingURL string) (string, error)
}

// Request names the session, its scenario and exactly one transcript source.
type Request struct {
	SessionID     string       `json:"session_id"`
	ScenarioID    string       `json:"scenario_id"`
	UserRole      string       `json:"user_role,omitempty"`
	Turns         []types.Turn `json:"turns,omitempty"`
	Transcript    string       `json:"transcript,omitempty"`
	TranscriptURL string       `json:"transcript_url,omitempty"`
	RecordingURL  string       `json:"recording_url,omitempty"`
}

type Result struct {
	SessionID  string                 `json:"session_id"`
	ScenarioID string                 `json:"scenario_id"`
	Metrics    types.MetricsResult    `json:"metrics"`
	Report     types.SimulationReport `json:"report"`
	DurationMs int64                  `json:"duration_ms"`
	Error      string                 `json:"error,omitempty"`
}

// Deps are the collaborators of a Service. Transcriber and HTTP are optional.
type Deps struct {
	Scorer      Scorer
	Scenarios   scenario.Store
	Sessions    session.Store
	Claims      claim.Claimer
	Transcriber Transcriber
	HTTP        *http.Client
	Product     string
	Log         *logrus.Entry
}

type Service struct {
	d   Deps
	now func() time.Time
}

func New(d Deps) *Service {
	if d.Claims == nil {
		d.Claims = claim.NewLocal()
	}
	if d.HTTP == nil {
		d.HTTP = &http.Client{Timeout: 15 * time.Second}
	}
	if d.Log == nil {
		d.Log = logger.New().WithComponent("processor")
	}
	return &Service{d: d, now: time.Now}
}

// ScoreSession scores one session and stores the outcome. A session id is
// generated when the request has none. A second request for a session
// that is still being scored fails with claim.ErrInFlight.
func (s *Service) ScoreSession(ctx context.Context, req Request) (*Result, error) {
	start := s.now()
	if req.SessionID == "" {
		req.SessionID = uuid.New().String()
	}
	log := s.d.Log.WithField("session_id", req.SessionID).WithField("scenario", req.ScenarioID)

	release, err := s.d.Claims.Claim(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}
	defer release()

	sc, err := s.d.Scenarios.Get(ctx, req.ScenarioID)
	if err != nil {
		return nil, err
	}
	conv, err := s.conversation(ctx, req)
	if err != nil {
		return nil, err
	}

	res, err := s.d.Scorer.Score(ctx, conv, sc, req.UserRole)
	if err != nil {
		return nil, err
	}

	rec := &session.Record{
		ID:           req.SessionID,
		ScenarioID:   sc.ID,
		Area:         sc.Area,
		UserRole:     req.UserRole,
		Conversation: conv,
		Metrics:      res.Metrics,
		Report:       res.Report,
	}
	if err := s.d.Sessions.Save(ctx, rec); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}

	out := &Result{
		SessionID:  req.SessionID,
		ScenarioID: sc.ID,
		Metrics:    res.Metrics,
		Report:     res.Report,
		DurationMs: s.now().Sub(start).Milliseconds(),
	}
	log.WithField("overall", out.Report.OverallScore).WithField("duration_ms", out.DurationMs).Info("session processed")
	return out, nil
}

func (s *Service) conversation(ctx context.Context, req Request) (types.Conversation, error) {
	sources := 0
	for _, set := range []bool{len(req.Turns) > 0, req.Transcript != "", req.TranscriptURL != "", req.RecordingURL != ""} {
		if set {
			sources++
		}
	}
	switch {
	case sources == 0:
		return types.Conversation{}, ErrNoTranscript
	case sources > 1:
		return types.Conversation{}, ErrAmbiguousRequest
	}

	text := req.Transcript
	switch {
	case len(req.Turns) > 0:
		conv := types.Conversation{Turns: req.Turns}
		if err := transcript.Validate(conv); err != nil {
			return types.Conversation{}, fmt.Errorf("%w: %w", ErrBadTranscript, err)
		}
		return conv, nil
	case req.TranscriptURL != "":
		var err error
		if text, err = transcript.Fetch(ctx, s.d.HTTP, req.TranscriptURL); err != nil {
			return types.Conversation{}, err
		}
	case req.RecordingURL != "":
		if s.d.Transcriber == nil {
			return types.Conversation{}, ErrNoTranscriber
		}
		var err error
		if text, err = s.d.Transcriber.Transcribe(ctx, req.RecordingURL); err != nil {
			return types.Conversation{}, fmt.Errorf("transcribe recording: %w", err)
		}
	}
	conv, err := transcript.Parse(text)
	if err != nil {
		return types.Conversation{}, fmt.Errorf("%w: %w", ErrBadTranscript, err)
	}
	return conv, nil
}

// Session returns a stored session.
func (s *Service) Session(ctx context.Context, id string) (*session.Record, error) {
	return s.d.Sessions.Get(ctx, id)
}

// Export renders the stored report of a session as a workbook and returns
// it with its download filename.
func (s *Service) Export(ctx context.Context, sessionID string) (string, []byte, error) {
	rec, err := s.d.Sessions.Get(ctx, sessionID)
	if err != nil {
		return "", nil, err
	}
	sc, err := s.d.Scenarios.Get(ctx, rec.ScenarioID)
	if err != nil {
		// the catalog may have dropped the scenario since the session was scored
		sc = types.Scenario{ID: rec.ScenarioID, Area: rec.Area, Title: rec.ScenarioID}
	}

	data, err := export.Render(rec.Report, export.Meta{
		Product:   s.d.Product,
		Scenario:  sc,
		UserRole:  rec.UserRole,
		Timestamp: rec.UpdatedAt,
	})
	if err != nil {
		return "", nil, err
	}
	return export.Filename(s.d.Product, sc.Area, sc.Title, rec.UpdatedAt), data, nil
}
