package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"log/slog"
)

func writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encode response", slog.Any("err", err))
	}
}

type errorBody struct {
	Detail string `json:"detail"`
}

// writeNotFound renders the standard 404 body for an id lookup that missed.
func writeNotFound(w http.ResponseWriter, kind, id string) {
	writeJSON(w, errorBody{Detail: fmt.Sprintf("%s with ID %s not found", kind, id)}, http.StatusNotFound)
}

func writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, errorBody{Detail: msg}, http.StatusBadRequest)
}

// parseDateParam accepts RFC 3339 timestamps or bare YYYY-MM-DD dates.
func parseDateParam(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected RFC 3339 or YYYY-MM-DD", value)
	}

	return t, nil
}
