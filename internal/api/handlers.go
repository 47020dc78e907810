package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"synapse-go/internal/claim"
	"synapse-go/internal/export"
	"synapse-go/internal/logger"
	"synapse-go/internal/pipeline"
	"synapse-go/internal/processor"
	"synapse-go/internal/scenario"
	"synapse-go/internal/session"
	"synapse-go/internal/types"
)

// maxBody caps a score request; transcripts are text.
const maxBody = 4 << 20

type handler struct {
	scenarios scenario.Store
	sessions  Sessions
	log       *logger.Logger
}

type ctxKey struct{}

func withLog(ctx context.Context, e *logrus.Entry) context.Context {
	return context.WithValue(ctx, ctxKey{}, e)
}

func logFrom(r *http.Request, h *handler) *logrus.Entry {
	if e, ok := r.Context().Value(ctxKey{}).(*logrus.Entry); ok {
		return e
	}
	return h.log.WithRequest(r)
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// listScenarios handles GET /v1/scenarios
func (h *handler) listScenarios(w http.ResponseWriter, r *http.Request) {
	list, err := h.scenarios.List(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if list == nil {
		list = []types.Scenario{}
	}
	writeJSON(w, http.StatusOK, list)
}

// getScenario handles GET /v1/scenarios/{id}
func (h *handler) getScenario(w http.ResponseWriter, r *http.Request) {
	sc, err := h.scenarios.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sc)
}

// score handles POST /v1/sessions/{id}/score
func (h *handler) score(w http.ResponseWriter, r *http.Request) {
	var req processor.Request
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid body: %v", err))
		return
	}
	req.SessionID = mux.Vars(r)["id"]
	if req.ScenarioID == "" {
		writeError(w, http.StatusBadRequest, "missing scenario_id")
		return
	}

	res, err := h.sessions.ScoreSession(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// getSession handles GET /v1/sessions/{id}
func (h *handler) getSession(w http.ResponseWriter, r *http.Request) {
	rec, err := h.sessions.Session(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// export handles GET /v1/sessions/{id}/export
func (h *handler) export(w http.ResponseWriter, r *http.Request) {
	name, data, err := h.sessions.Export(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// summary handles GET /v1/summary?limit=N
func (h *handler) summary(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}
	sum, err := h.sessions.Summary(r.Context(), limit)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

// fail maps service errors onto status codes.
func (h *handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := statusFor(err)
	entry := logFrom(r, h).WithField("status", status).WithField("error", err.Error())
	if status >= http.StatusInternalServerError {
		entry.Error("request failed")
	} else {
		entry.Warn("request rejected")
	}
	writeError(w, status, msg)
}

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, scenario.ErrNotFound), errors.Is(err, session.ErrNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, claim.ErrInFlight):
		return http.StatusConflict, err.Error()
	case errors.Is(err, processor.ErrNoTranscript),
		errors.Is(err, processor.ErrAmbiguousRequest),
		errors.Is(err, processor.ErrBadTranscript):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, processor.ErrNoTranscriber):
		return http.StatusNotImplemented, err.Error()
	case errors.Is(err, export.ErrReportGeneration):
		return http.StatusInternalServerError, export.ErrReportGeneration.Error()
	case errors.Is(err, pipeline.ErrAborted), errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable, "scoring aborted"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
