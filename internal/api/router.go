// Package api exposes the scoring service over HTTP.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"synapse-go/internal/logger"
	"synapse-go/internal/processor"
	"synapse-go/internal/scenario"
	"synapse-go/internal/session"
)

// Sessions is the session workflow behind the handlers.
type Sessions interface {
	ScoreSession(ctx context.Context, req processor.Request) (*processor.Result, error)
	Session(ctx context.Context, id string) (*session.Record, error)
	Export(ctx context.Context, id string) (string, []byte, error)
	Summary(ctx context.Context, limit int) (processor.Summary, error)
}

// Container holds all dependencies for the router.
type Container struct {
	Scenarios scenario.Store
	Sessions  Sessions
	Log       *logger.Logger
}

// NewRouter creates the API router with all endpoints.
func NewRouter(c *Container) http.Handler {
	if c.Log == nil {
		c.Log = logger.New()
	}
	h := &handler{scenarios: c.Scenarios, sessions: c.Sessions, log: c.Log}

	r := mux.NewRouter()
	r.Use(h.requestLog)

	r.HandleFunc("/healthz", h.health).Methods(http.MethodGet)

	v1 := r.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/scenarios", h.listScenarios).Methods(http.MethodGet)
	v1.HandleFunc("/scenarios/{id}", h.getScenario).Methods(http.MethodGet)
	v1.HandleFunc("/sessions/{id}/score", h.score).Methods(http.MethodPost)
	v1.HandleFunc("/sessions/{id}", h.getSession).Methods(http.MethodGet)
	v1.HandleFunc("/sessions/{id}/export", h.export).Methods(http.MethodGet)
	v1.HandleFunc("/summary", h.summary).Methods(http.MethodGet)

	return r
}

// requestLog tags each request with an id and logs its outcome.
func (h *handler) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		entry := h.log.WithRequest(r)
		w.Header().Set("X-Request-ID", entry.Data["req_id"].(string))

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r.WithContext(withLog(r.Context(), entry)))

		entry.WithField("status", sw.status).
			WithField("duration_ms", time.Since(start).Milliseconds()).
			Info("request handled")
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
