package api

import (
	"github.com/gorilla/mux"

	"github.com/garnizeh/timetrack/internal/report"
	"github.com/garnizeh/timetrack/internal/store"
)

func SetupRoutes(version, buildTime string, st *store.Store) *mux.Router {
	r := mux.NewRouter().StrictSlash(true)

	// Middleware chain
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware)
	r.Use(RecoveryMiddleware)

	// Create handlers
	systemHandler := &SystemHandler{}
	specialistsHandler := NewSpecialistsHandler(st)
	projectsHandler := NewProjectsHandler(st)
	periodsHandler := NewPeriodsHandler(st)
	timesheetsHandler := NewTimesheetsHandler(st)
	reportsHandler := NewReportsHandler(report.NewService(st, nil))

	r.HandleFunc("/", systemHandler.RootHandler).Methods("GET")
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")

	apiRouter := r.PathPrefix("/api").Subrouter()

	apiRouter.HandleFunc("/specialists", specialistsHandler.List).Methods("GET")
	apiRouter.HandleFunc("/specialists/{id}", specialistsHandler.Get).Methods("GET")

	apiRouter.HandleFunc("/projects", projectsHandler.List).Methods("GET")
	apiRouter.HandleFunc("/projects/{id}", projectsHandler.Get).Methods("GET")

	apiRouter.HandleFunc("/periods", periodsHandler.List).Methods("GET")
	apiRouter.HandleFunc("/periods/{id}", periodsHandler.Get).Methods("GET")
	apiRouter.HandleFunc("/periods/{id}/time-entries", periodsHandler.TimeEntries).Methods("GET")

	apiRouter.HandleFunc("/timesheets/time-entries", timesheetsHandler.TimeEntries).Methods("GET")

	apiRouter.HandleFunc("/reports/specialists", reportsHandler.Specialists).Methods("GET")
	apiRouter.HandleFunc("/reports/projects", reportsHandler.Projects).Methods("GET")

	return r
}
