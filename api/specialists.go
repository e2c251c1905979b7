package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/garnizeh/timetrack/internal/store"
)

type SpecialistsHandler struct {
	store *store.Store
}

func NewSpecialistsHandler(s *store.Store) *SpecialistsHandler {
	return &SpecialistsHandler{store: s}
}

// List returns the specialist catalog, optionally narrowed by
// ?active=<bool> and ?role=<role>.
func (h *SpecialistsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var f store.SpecialistFilter
	if v := q.Get("active"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			writeBadRequest(w, fmt.Sprintf("invalid active value %q", v))
			return
		}
		f.Active = &active
	}
	f.Role = q.Get("role")

	writeJSON(w, h.store.FilterSpecialists(f), http.StatusOK)
}

func (h *SpecialistsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	sp, ok := h.store.Specialist(id)
	if !ok {
		writeNotFound(w, "Specialist", id)
		return
	}

	writeJSON(w, sp, http.StatusOK)
}
