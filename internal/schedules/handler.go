package schedules

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"spawn-scheduler/internal/platform/metrics"
	"spawn-scheduler/internal/spawn"

	"github.com/go-chi/chi/v5"
)

const (
	scheduleContentType = "text/plain; charset=utf-8"
	jsonContentType     = "application/json"
	maxBodyBytes        = 1 << 20
)

// Handler exposes schedule HTTP endpoints using go-chi.
type Handler struct {
	svc     *Service
	log     *slog.Logger
	metrics *metrics.Metrics
}

// NewHandler returns a Handler that uses the given Service, Logger, and optional Metrics.
// Metrics may be nil to disable metric recording (e.g. in tests).
func NewHandler(svc *Service, log *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{svc: svc, log: log, metrics: m}
}

// Routes mounts the schedule endpoints on r.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/schedules", h.ListSchedules)
	r.Route("/schedules/{name}", func(r chi.Router) {
		r.Put("/", h.PutSchedule)
		r.Get("/", h.GetSchedule)
		r.Delete("/", h.DeleteSchedule)
		r.Get("/stages", h.GetStages)
		r.Get("/remaining", h.GetRemaining)
	})
	r.Post("/markers/parse", h.ParseMarkers)
}

// PutSchedule handles PUT /schedules/{name}.
// Body: { "enemy": "kudzu", "stages": [8], "waves": [[2,2,4]], "wave_gap": 15, "enemy_delay": 2, "first_wave_time": 5 }.
func (h *Handler) PutSchedule(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var plan spawn.Plan
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&plan); err != nil {
		h.log.Debug("invalid plan body", slog.String("error", err.Error()))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := plan.Validate(); errors.Is(err, spawn.ErrStageCountMismatch) {
		h.log.Warn("plan stage counts differ, unpaired stages ignored",
			slog.String("name", name),
			slog.Int("stages", len(plan.Stages)),
			slog.Int("wave_distributions", len(plan.Waves)))
	}

	rec, err := h.svc.Generate(name, plan)
	if err != nil {
		switch {
		case errors.Is(err, spawn.ErrWaveSumMismatch):
			h.log.Info("plan rejected",
				slog.String("name", name),
				slog.String("error", err.Error()))
			if h.metrics != nil {
				h.metrics.IncValidationFailures()
			}
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		case errors.Is(err, ErrCapacityReached):
			h.log.Warn("schedule rejected, repository full", slog.String("name", name))
			http.Error(w, err.Error(), http.StatusInsufficientStorage)
			return
		default:
			h.log.Error("generate schedule failed", slog.String("name", name), slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
	}

	h.log.Debug("schedule generated",
		slog.String("name", name),
		slog.String("enemy", plan.Enemy),
		slog.Int("events", len(rec.Events)))
	if h.metrics != nil {
		h.metrics.ObserveSchedule(len(rec.Events))
	}
	h.writeSchedule(w, rec, http.StatusCreated)
}

// GetSchedule handles GET /schedules/{name}.
func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	rec, ok := h.svc.Schedule(chi.URLParam(r, "name"))
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	if etagMatches(r.Header.Get("If-None-Match"), rec.ETag()) {
		w.Header().Set("ETag", rec.ETag())
		w.WriteHeader(http.StatusNotModified)
		return
	}
	h.writeSchedule(w, rec, http.StatusOK)
}

// GetStages handles GET /schedules/{name}/stages.
func (h *Handler) GetStages(w http.ResponseWriter, r *http.Request) {
	stages, ok := h.svc.Stages(chi.URLParam(r, "name"))
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	h.writeJSON(w, stages)
}

// remainingResponse is the body of GET /schedules/{name}/remaining.
type remainingResponse struct {
	After     float64 `json:"after"`
	Remaining int     `json:"remaining"`
}

// GetRemaining handles GET /schedules/{name}/remaining?t=12.5.
// t defaults to 0.
func (h *Handler) GetRemaining(w http.ResponseWriter, r *http.Request) {
	t := 0.0
	if raw := r.URL.Query().Get("t"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			http.Error(w, "invalid t: "+raw, http.StatusBadRequest)
			return
		}
		t = v
	}

	n, ok := h.svc.Remaining(chi.URLParam(r, "name"), t)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	h.writeJSON(w, remainingResponse{After: t, Remaining: n})
}

// ListSchedules handles GET /schedules.
func (h *Handler) ListSchedules(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, h.svc.Names())
}

// DeleteSchedule handles DELETE /schedules/{name}.
func (h *Handler) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := h.svc.Delete(name); err != nil {
		h.log.Error("delete schedule failed", slog.String("name", name), slog.String("error", err.Error()))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	h.log.Info("schedule deleted", slog.String("name", name))
	w.WriteHeader(http.StatusNoContent)
}

// ParseMarkers handles POST /markers/parse. Body: raw marker text.
func (h *Handler) ParseMarkers(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	events, err := h.svc.ParseMarkers(string(body))
	if err != nil {
		h.log.Debug("invalid marker text", slog.String("error", err.Error()))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if events == nil {
		events = []spawn.Event{}
	}
	if h.metrics != nil {
		h.metrics.IncMarkersParsed()
	}
	h.writeJSON(w, events)
}

// etagMatches reports whether an If-None-Match header selects etag.
// The header may be "*" or a comma-separated list; weak tags compare by
// their opaque value.
func etagMatches(header, etag string) bool {
	for _, tag := range strings.Split(header, ",") {
		tag = strings.TrimSpace(tag)
		if tag == "*" || strings.TrimPrefix(tag, "W/") == etag {
			return true
		}
	}
	return false
}

func (h *Handler) writeSchedule(w http.ResponseWriter, rec *Record, status int) {
	w.Header().Set("Content-Type", scheduleContentType)
	w.Header().Set("ETag", rec.ETag())
	w.WriteHeader(status)
	w.Write([]byte(rec.Text))
}

func (h *Handler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", jsonContentType)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Error("encode response failed", slog.String("error", err.Error()))
	}
}
