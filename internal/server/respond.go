package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	forecast "github.com/eugener/forecast/internal"
	"github.com/eugener/forecast/internal/conditional"
)

type apiError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

func errorResponse(msg string) apiError {
	var e apiError
	e.Error.Message = msg
	e.Error.Type = "server_error"
	return e
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, forecast.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, forecast.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, forecast.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// jsonCT is a pre-allocated header value slice. Direct map assignment
// (w.Header()["Content-Type"] = jsonCT) avoids the []string{v} alloc
// that Header.Set creates on every call.
var jsonCT = []string{"application/json; charset=utf-8"}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header()["Content-Type"] = jsonCT
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// writeBody writes an already encoded JSON body.
func writeBody(w http.ResponseWriter, status int, body []byte) {
	w.Header()["Content-Type"] = jsonCT
	w.WriteHeader(status)
	w.Write(body)
}

// writeError maps err to a status. Not-found responses carry no body.
// Any ETag set before the failure is dropped: it describes a body that
// was never sent.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	delete(w.Header(), conditional.ETag)
	status := errorStatus(err)
	switch status {
	case http.StatusNotFound:
		w.WriteHeader(status)
	case http.StatusServiceUnavailable:
		slog.LogAttrs(r.Context(), slog.LevelWarn, "request interrupted",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeJSON(w, status, errorResponse("request interrupted"))
	default:
		slog.LogAttrs(r.Context(), slog.LevelError, "request failed",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeJSON(w, status, errorResponse("internal error"))
	}
}
