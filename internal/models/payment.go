package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PeriodStatus is the lifecycle state of a payment period.
type PeriodStatus string

const (
	PeriodOpen   PeriodStatus = "Open"
	PeriodClosed PeriodStatus = "Closed"
	PeriodLocked PeriodStatus = "Locked"
)

func ParsePeriodStatus(s string) (PeriodStatus, error) {
	switch v := PeriodStatus(s); v {
	case PeriodOpen, PeriodClosed, PeriodLocked:
		return v, nil
	}

	return "", fmt.Errorf("unknown period status %q", s)
}

// TimeEntry is one record of billable work by a specialist on a project.
// The specialist and project ids are plain references; nothing checks them
// against the catalogs.
type TimeEntry struct {
	ID           string    `json:"id"`
	SpecialistID string    `json:"specialist_id"`
	ProjectID    string    `json:"project_id"`
	Date         time.Time `json:"date"`
	Hours        float64   `json:"hours"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewTimeEntry builds a time entry with a generated id and current timestamps.
func NewTimeEntry(specialistID, projectID string, date time.Time, hours float64, description string) TimeEntry {
	now := time.Now().UTC()
	return TimeEntry{
		ID:           uuid.NewString(),
		SpecialistID: specialistID,
		ProjectID:    projectID,
		Date:         date,
		Hours:        hours,
		Description:  description,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// PaymentPeriod is a date-bounded bucket of time entries. The three derived
// aggregates (TotalHours, SpecialistTotals, ProjectTotals) are maintained on
// every mutation and are never allowed to drift from the entry list.
type PaymentPeriod struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	StartDate        time.Time          `json:"start_date"`
	EndDate          time.Time          `json:"end_date"`
	Status           PeriodStatus       `json:"status"`
	ReportID         string             `json:"report_id,omitempty"`
	TimeEntries      []TimeEntry        `json:"time_entries"`
	SpecialistTotals map[string]float64 `json:"specialist_totals"`
	ProjectTotals    map[string]float64 `json:"project_totals"`
	TotalHours       float64            `json:"total_hours"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

// NewPaymentPeriod builds an open period covering [start, end], derives a
// display name from the range, and folds any initial entries into the totals.
func NewPaymentPeriod(start, end time.Time, entries ...TimeEntry) PaymentPeriod {
	now := time.Now().UTC()
	p := PaymentPeriod{
		ID:        uuid.NewString(),
		Name:      FormatDateRange(start, end),
		StartDate: start,
		EndDate:   end,
		Status:    PeriodOpen,
		CreatedAt: now,
		UpdatedAt: now,
	}
	p.recomputeTotals()
	for _, e := range entries {
		p.TimeEntries = append(p.TimeEntries, e)
		p.foldEntry(e)
	}

	return p
}

// AddTimeEntry appends an entry and folds its hours into the period total,
// the specialist's total and the project's total in the same step.
func (p *PaymentPeriod) AddTimeEntry(e TimeEntry) {
	p.TimeEntries = append(p.TimeEntries, e)
	p.foldEntry(e)
	p.UpdatedAt = time.Now().UTC()
}

func (p *PaymentPeriod) foldEntry(e TimeEntry) {
	if p.SpecialistTotals == nil {
		p.SpecialistTotals = make(map[string]float64)
	}
	if p.ProjectTotals == nil {
		p.ProjectTotals = make(map[string]float64)
	}
	p.SpecialistTotals[e.SpecialistID] += e.Hours
	p.ProjectTotals[e.ProjectID] += e.Hours
	p.TotalHours += e.Hours
}

func (p *PaymentPeriod) recomputeTotals() {
	p.SpecialistTotals = make(map[string]float64)
	p.ProjectTotals = make(map[string]float64)
	p.TotalHours = 0
	for _, e := range p.TimeEntries {
		p.foldEntry(e)
	}
}

// UnmarshalJSON recomputes the derived totals from the decoded entry list so
// a data file can never introduce stale aggregates, and derives the name when
// the file omits it.
func (p *PaymentPeriod) UnmarshalJSON(b []byte) error {
	type alias PaymentPeriod
	if err := json.Unmarshal(b, (*alias)(p)); err != nil {
		return err
	}
	p.recomputeTotals()
	if p.Name == "" {
		p.Name = FormatDateRange(p.StartDate, p.EndDate)
	}
	if p.Status == "" {
		p.Status = PeriodOpen
	}

	return nil
}

func (p PaymentPeriod) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("payment period: id is required")
	}
	if _, err := ParsePeriodStatus(string(p.Status)); err != nil {
		return fmt.Errorf("payment period %s: %w", p.ID, err)
	}

	return nil
}

// FormatDateRange renders a period's date range for display: "Jun 2023" when
// start and end share a month, "Jun - Jul 2023" when they share a year, and
// "Dec 2022 - Jan 2023" otherwise.
func FormatDateRange(start, end time.Time) string {
	switch {
	case start.Year() == end.Year() && start.Month() == end.Month():
		return start.Format("Jan 2006")
	case start.Year() == end.Year():
		return fmt.Sprintf("%s - %s", start.Format("Jan"), end.Format("Jan 2006"))
	default:
		return fmt.Sprintf("%s - %s", start.Format("Jan 2006"), end.Format("Jan 2006"))
	}
}
