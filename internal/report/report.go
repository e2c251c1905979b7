// Package report derives aggregate views from payment-period totals joined
// against the specialist and project catalogs.
package report

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"github.com/garnizeh/timetrack/internal/models"
	"github.com/garnizeh/timetrack/internal/store"
)

// ErrPeriodNotFound is returned when a report is scoped to a period id that
// does not resolve. Nothing is aggregated in that case.
var ErrPeriodNotFound = errors.New("payment period not found")

// SpecialistRow is one line of the per-specialist report.
type SpecialistRow struct {
	SpecialistID string  `json:"specialist_id"`
	FullName     string  `json:"full_name"`
	Role         string  `json:"role"`
	TotalHours   float64 `json:"total_hours"`
	HourlyRate   float64 `json:"hourly_rate"`
	TotalAmount  float64 `json:"total_amount"`
}

// ProjectRow is one line of the per-project report.
type ProjectRow struct {
	ProjectID       string  `json:"project_id"`
	Name            string  `json:"name"`
	ClientName      string  `json:"client_name"`
	TotalHours      float64 `json:"total_hours"`
	SpecialistCount int     `json:"specialist_count"`
}

// Service computes reports over the store's payment periods.
type Service struct {
	store *store.Store
	log   *slog.Logger
}

func NewService(s *store.Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}

	return &Service{store: s, log: logger}
}

// scope resolves the periods a report covers: one period when periodID is
// set, every period otherwise.
func (s *Service) scope(periodID string) ([]models.PaymentPeriod, error) {
	if periodID == "" {
		return s.store.Periods(), nil
	}
	p, ok := s.store.Period(periodID)
	if !ok {
		return nil, ErrPeriodNotFound
	}

	return []models.PaymentPeriod{p}, nil
}

// Specialists reports accumulated hours and billed amount per specialist
// across the scoped periods. Specialist ids in the period totals that are
// missing from the catalog are dropped, not reported as errors.
func (s *Service) Specialists(ctx context.Context, periodID string) ([]SpecialistRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	periods, err := s.scope(periodID)
	if err != nil {
		return nil, err
	}

	rows := make(map[string]*SpecialistRow)
	for _, period := range periods {
		for specialistID, hours := range period.SpecialistTotals {
			sp, ok := s.store.Specialist(specialistID)
			if !ok {
				s.log.Debug("skipping specialist missing from catalog",
					slog.String("specialist_id", specialistID),
					slog.String("period_id", period.ID))
				continue
			}
			row, ok := rows[specialistID]
			if !ok {
				row = &SpecialistRow{
					SpecialistID: sp.ID,
					FullName:     sp.FullName,
					Role:         string(sp.Role),
					HourlyRate:   sp.HourlyRate,
				}
				rows[specialistID] = row
			}
			row.TotalHours += hours
			row.TotalAmount = row.TotalHours * row.HourlyRate
		}
	}

	return sortedRows(rows, func(r *SpecialistRow) string { return r.SpecialistID }), nil
}

// Projects reports accumulated hours and the distinct specialist head count
// per project across the scoped periods. Distinct specialists are unioned
// over every period in scope.
func (s *Service) Projects(ctx context.Context, periodID string) ([]ProjectRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	periods, err := s.scope(periodID)
	if err != nil {
		return nil, err
	}

	rows := make(map[string]*ProjectRow)
	seen := make(map[string]map[string]struct{}) // project id -> specialist ids
	for _, period := range periods {
		perProject := make(map[string]map[string]struct{})
		for _, e := range period.TimeEntries {
			if perProject[e.ProjectID] == nil {
				perProject[e.ProjectID] = make(map[string]struct{})
			}
			perProject[e.ProjectID][e.SpecialistID] = struct{}{}
		}

		for projectID, hours := range period.ProjectTotals {
			p, ok := s.store.Project(projectID)
			if !ok {
				s.log.Debug("skipping project missing from catalog",
					slog.String("project_id", projectID),
					slog.String("period_id", period.ID))
				continue
			}
			row, ok := rows[projectID]
			if !ok {
				row = &ProjectRow{
					ProjectID:  p.ID,
					Name:       p.Name,
					ClientName: p.ClientName,
				}
				rows[projectID] = row
				seen[projectID] = make(map[string]struct{})
			}
			row.TotalHours += hours
			for specialistID := range perProject[projectID] {
				seen[projectID][specialistID] = struct{}{}
			}
			row.SpecialistCount = len(seen[projectID])
		}
	}

	return sortedRows(rows, func(r *ProjectRow) string { return r.ProjectID }), nil
}

func sortedRows[T any](rows map[string]*T, key func(*T) string) []T {
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return key(&out[i]) < key(&out[j]) })

	return out
}
