package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *Metrics, update func()) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler(update).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ObserveSchedule(8)
	m.ObserveSchedule(12)
	m.IncValidationFailures()
	m.IncMarkersParsed()

	body := scrape(t, m, func() { m.SetStoredSchedules(2) })
	require.Contains(t, body, "spawn_schedules_generated_total 2")
	require.Contains(t, body, "spawn_events_generated_total 20")
	require.Contains(t, body, "spawn_validation_failures_total 1")
	require.Contains(t, body, "spawn_markers_parsed_total 1")
	require.Contains(t, body, "spawn_stored_schedules 2")
}

func TestRequestMiddleware(t *testing.T) {
	m := New()
	r := chi.NewRouter()
	r.Use(RequestMiddleware(m))
	r.Get("/ok", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/bad", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusUnprocessableEntity) })

	for _, path := range []string{"/ok", "/bad", "/bad"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	body := scrape(t, m, nil)
	require.Contains(t, body, "spawn_requests_total 3")
	require.Contains(t, body, "spawn_errors_total 2")
}
