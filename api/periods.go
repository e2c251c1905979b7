package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/garnizeh/timetrack/internal/models"
	"github.com/garnizeh/timetrack/internal/store"
)

type PeriodsHandler struct {
	store *store.Store
}

func NewPeriodsHandler(s *store.Store) *PeriodsHandler {
	return &PeriodsHandler{store: s}
}

// List returns every payment period, optionally narrowed by ?status=<status>.
func (h *PeriodsHandler) List(w http.ResponseWriter, r *http.Request) {
	f := store.PeriodFilter{Status: r.URL.Query().Get("status")}

	writeJSON(w, h.store.FilterPeriods(f), http.StatusOK)
}

func (h *PeriodsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	p, ok := h.store.Period(id)
	if !ok {
		writeNotFound(w, "Payment period", id)
		return
	}

	writeJSON(w, p, http.StatusOK)
}

// TimeEntries returns the entries embedded in one period, post-filtered by
// ?specialist_id and ?project_id.
func (h *PeriodsHandler) TimeEntries(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	p, ok := h.store.Period(id)
	if !ok {
		writeNotFound(w, "Payment period", id)
		return
	}

	q := r.URL.Query()
	specialistID := q.Get("specialist_id")
	projectID := q.Get("project_id")

	entries := []models.TimeEntry{}
	for _, e := range p.TimeEntries {
		if specialistID != "" && e.SpecialistID != specialistID {
			continue
		}
		if projectID != "" && e.ProjectID != projectID {
			continue
		}
		entries = append(entries, e)
	}

	writeJSON(w, entries, http.StatusOK)
}
