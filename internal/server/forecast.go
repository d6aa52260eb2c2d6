package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	forecast "github.com/eugener/forecast/internal"
	"github.com/eugener/forecast/internal/conditional"
)

// Resource names used for metric labels, span attributes and cache keys.
// Single forecasts share one metric label to keep cardinality bounded.
const (
	resourceCollection = "forecasts"
	labelForecast      = "forecast"
)

func resourceForecast(id int) string {
	return "forecast/" + strconv.Itoa(id)
}

// forecastView is the client representation of a forecast.
type forecastView struct {
	Date         time.Time `json:"date"`
	TemperatureC int       `json:"temperatureC"`
	TemperatureF int       `json:"temperatureF"`
	Summary      string    `json:"summary"`
	LastModified time.Time `json:"lastModified"`
}

func newForecastView(f forecast.Forecast) forecastView {
	return forecastView{
		Date:         f.Date,
		TemperatureC: f.TemperatureC,
		TemperatureF: f.TemperatureF(),
		Summary:      f.Summary,
		LastModified: f.LastModified,
	}
}

// parseID reads the {id} route parameter. Anything that is not an integer
// cannot index the collection and is reported as not found.
func parseID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0, forecast.ErrNotFound
	}
	return id, nil
}

func (s *server) handleGetForecast(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	// Lookup happens before the gate: a missing forecast has no token.
	f, err := s.deps.Forecasts.Lookup(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resource := resourceForecast(id)
	token := conditional.Token(f.LastModified)
	if s.evaluate(w, r, labelForecast, token) == conditional.NotModified {
		conditional.WriteNotModified(w)
		return
	}
	s.writeFull(w, r, resource, token, newForecastView(*f))
}

func (s *server) handleListForecasts(w http.ResponseWriter, r *http.Request) {
	fs, err := s.deps.Forecasts.LookupAll(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	token := conditional.CollectionToken(fs)
	if s.evaluate(w, r, resourceCollection, token) == conditional.NotModified {
		conditional.WriteNotModified(w)
		return
	}

	views := make([]forecastView, len(fs))
	for i, f := range fs {
		views[i] = newForecastView(f)
	}
	s.writeFull(w, r, resourceCollection, token, views)
}

// handleTouchForecast updates LastModified. It never consults the gate.
func (s *server) handleTouchForecast(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := s.deps.Forecasts.Touch(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// evaluate runs the conditional gate and records the outcome.
func (s *server) evaluate(w http.ResponseWriter, r *http.Request, resource, token string) conditional.Decision {
	d := conditional.Evaluate(token, w, r)
	if m := s.deps.Metrics; m != nil {
		m.ConditionalDecisions.WithLabelValues(resource, d.String()).Inc()
	}
	return d
}

// writeFull produces the 200 response for a Proceed decision: the slow load
// (unless the body for this exact token is cached), then the encoded view.
func (s *server) writeFull(w http.ResponseWriter, r *http.Request, resource, token string, view any) {
	ctx := r.Context()
	if body, ok := s.cachedBody(ctx, resource, token); ok {
		writeBody(w, http.StatusOK, body)
		return
	}
	if err := s.deps.Forecasts.Load(ctx, resource); err != nil {
		writeError(w, r, err)
		return
	}
	body, err := json.Marshal(view)
	if err != nil {
		writeError(w, r, err)
		return
	}
	s.storeBody(ctx, resource, token, body)
	writeBody(w, http.StatusOK, body)
}
