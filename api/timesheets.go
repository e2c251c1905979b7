package api

import (
	"net/http"

	"github.com/garnizeh/timetrack/internal/store"
)

type TimesheetsHandler struct {
	store *store.Store
}

func NewTimesheetsHandler(s *store.Store) *TimesheetsHandler {
	return &TimesheetsHandler{store: s}
}

// TimeEntries returns time entries drawn from every payment period,
// narrowed by ?specialist_id, ?project_id and the inclusive
// ?start_date / ?end_date range.
func (h *TimesheetsHandler) TimeEntries(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	f := store.EntryFilter{
		SpecialistID: q.Get("specialist_id"),
		ProjectID:    q.Get("project_id"),
	}
	if v := q.Get("start_date"); v != "" {
		t, err := parseDateParam(v)
		if err != nil {
			writeBadRequest(w, err.Error())
			return
		}
		f.From = &t
	}
	if v := q.Get("end_date"); v != "" {
		t, err := parseDateParam(v)
		if err != nil {
			writeBadRequest(w, err.Error())
			return
		}
		f.To = &t
	}

	writeJSON(w, h.store.TimeEntries(f), http.StatusOK)
}
