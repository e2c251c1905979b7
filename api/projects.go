package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/garnizeh/timetrack/internal/store"
)

type ProjectsHandler struct {
	store *store.Store
}

func NewProjectsHandler(s *store.Store) *ProjectsHandler {
	return &ProjectsHandler{store: s}
}

// List returns the project catalog, optionally narrowed by
// ?status=<status> and ?project_type=<type>.
func (h *ProjectsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := store.ProjectFilter{
		Status: q.Get("status"),
		Type:   q.Get("project_type"),
	}

	writeJSON(w, h.store.FilterProjects(f), http.StatusOK)
}

func (h *ProjectsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	p, ok := h.store.Project(id)
	if !ok {
		writeNotFound(w, "Project", id)
		return
	}

	writeJSON(w, p, http.StatusOK)
}
