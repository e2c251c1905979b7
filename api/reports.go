package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/garnizeh/timetrack/internal/report"
)

type ReportsHandler struct {
	reports *report.Service
}

func NewReportsHandler(svc *report.Service) *ReportsHandler {
	return &ReportsHandler{reports: svc}
}

// Specialists returns accumulated hours and amounts per specialist,
// optionally scoped to one period by ?period_id.
func (h *ReportsHandler) Specialists(w http.ResponseWriter, r *http.Request) {
	periodID := r.URL.Query().Get("period_id")

	rows, err := h.reports.Specialists(r.Context(), periodID)
	if err != nil {
		if errors.Is(err, report.ErrPeriodNotFound) {
			writeNotFound(w, "Payment period", periodID)
			return
		}
		http.Error(w, fmt.Sprintf("specialist report: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, rows, http.StatusOK)
}

// Projects returns accumulated hours and distinct specialist counts per
// project, optionally scoped to one period by ?period_id.
func (h *ReportsHandler) Projects(w http.ResponseWriter, r *http.Request) {
	periodID := r.URL.Query().Get("period_id")

	rows, err := h.reports.Projects(r.Context(), periodID)
	if err != nil {
		if errors.Is(err, report.ErrPeriodNotFound) {
			writeNotFound(w, "Payment period", periodID)
			return
		}
		http.Error(w, fmt.Sprintf("project report: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, rows, http.StatusOK)
}
