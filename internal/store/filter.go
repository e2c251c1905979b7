package store

import (
	"time"

	"github.com/garnizeh/timetrack/internal/models"
)

// Filter criteria are small typed structs, one per collection. Every set
// field is an independent predicate and all set fields must match (AND); the
// zero value of a filter matches everything.

type SpecialistFilter struct {
	Active *bool
	Role   string
}

type ProjectFilter struct {
	Status string
	Type   string
}

type PeriodFilter struct {
	Status string
}

// EntryFilter selects time entries by equality on the reference ids and an
// inclusive date range.
type EntryFilter struct {
	SpecialistID string
	ProjectID    string
	From         *time.Time
	To           *time.Time
}

func (f EntryFilter) matches(e models.TimeEntry) bool {
	if f.SpecialistID != "" && e.SpecialistID != f.SpecialistID {
		return false
	}
	if f.ProjectID != "" && e.ProjectID != f.ProjectID {
		return false
	}
	if f.From != nil && e.Date.Before(*f.From) {
		return false
	}
	if f.To != nil && e.Date.After(*f.To) {
		return false
	}

	return true
}

// FilterSpecialists returns the specialists matching every set criterion.
func (s *Store) FilterSpecialists(f SpecialistFilter) []models.Specialist {
	out := []models.Specialist{}
	for _, sp := range s.specialists {
		if f.Active != nil && sp.Active != *f.Active {
			continue
		}
		if f.Role != "" && string(sp.Role) != f.Role {
			continue
		}
		out = append(out, sp)
	}

	return out
}

// FilterProjects returns the projects matching every set criterion.
func (s *Store) FilterProjects(f ProjectFilter) []models.Project {
	out := []models.Project{}
	for _, p := range s.projects {
		if f.Status != "" && string(p.Status) != f.Status {
			continue
		}
		if f.Type != "" && string(p.ProjectType) != f.Type {
			continue
		}
		out = append(out, p)
	}

	return out
}

// FilterPeriods returns the payment periods matching every set criterion.
func (s *Store) FilterPeriods(f PeriodFilter) []models.PaymentPeriod {
	out := []models.PaymentPeriod{}
	for _, p := range s.periods {
		if f.Status != "" && string(p.Status) != f.Status {
			continue
		}
		out = append(out, p)
	}

	return out
}

// TimeEntries flattens the entries embedded in every payment period and
// returns those matching the filter.
func (s *Store) TimeEntries(f EntryFilter) []models.TimeEntry {
	out := []models.TimeEntry{}
	for _, p := range s.periods {
		for _, e := range p.TimeEntries {
			if f.matches(e) {
				out = append(out, e)
			}
		}
	}

	return out
}
