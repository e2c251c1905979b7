package models

import (
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// ProjectStatus is the lifecycle state of a client project.
type ProjectStatus string

const (
	ProjectPlanning  ProjectStatus = "Planning"
	ProjectActive    ProjectStatus = "Active"
	ProjectOnHold    ProjectStatus = "On Hold"
	ProjectCompleted ProjectStatus = "Completed"
	ProjectCancelled ProjectStatus = "Cancelled"
)

// ProjectType is the billing arrangement for a project.
type ProjectType string

const (
	TypeFixedPrice       ProjectType = "Fixed Price"
	TypeTimeAndMaterials ProjectType = "Time and Materials"
	TypeRetainer         ProjectType = "Retainer"
)

func ParseProjectStatus(s string) (ProjectStatus, error) {
	switch v := ProjectStatus(s); v {
	case ProjectPlanning, ProjectActive, ProjectOnHold, ProjectCompleted, ProjectCancelled:
		return v, nil
	}

	return "", fmt.Errorf("unknown project status %q", s)
}

func ParseProjectType(s string) (ProjectType, error) {
	switch v := ProjectType(s); v {
	case TypeFixedPrice, TypeTimeAndMaterials, TypeRetainer:
		return v, nil
	}

	return "", fmt.Errorf("unknown project type %q", s)
}

type Project struct {
	ID                 string        `json:"id"`
	Name               string        `json:"name"`
	Description        string        `json:"description"`
	ClientName         string        `json:"client_name"`
	ClientContactEmail string        `json:"client_contact_email,omitempty"`
	ClientContactPhone string        `json:"client_contact_phone,omitempty"`
	Status             ProjectStatus `json:"status"`
	ProjectType        ProjectType   `json:"project_type"`
	TimesheetID        string        `json:"timesheet_id,omitempty"`
	StartDate          time.Time     `json:"start_date"`
	EndDate            *time.Time    `json:"end_date,omitempty"`
	Budget             *float64      `json:"budget,omitempty"`
	RepositoryURL      string        `json:"repository_url,omitempty"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
	SpecialistIDs      []string      `json:"specialist_ids"`
}

// NewProject builds a project with a generated id and default
// Planning / Time and Materials classification.
func NewProject(name, description, clientName string, startDate time.Time) Project {
	now := time.Now().UTC()
	return Project{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		ClientName:  clientName,
		Status:      ProjectPlanning,
		ProjectType: TypeTimeAndMaterials,
		StartDate:   startDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// UnmarshalJSON fills in the default status and billing type when the
// fields are absent.
func (p *Project) UnmarshalJSON(b []byte) error {
	type alias Project
	if err := json.Unmarshal(b, (*alias)(p)); err != nil {
		return err
	}
	if p.Status == "" {
		p.Status = ProjectPlanning
	}
	if p.ProjectType == "" {
		p.ProjectType = TypeTimeAndMaterials
	}

	return nil
}

func (p Project) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("project: id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("project %s: name is required", p.ID)
	}
	if p.ClientName == "" {
		return fmt.Errorf("project %s: client_name is required", p.ID)
	}
	if _, err := ParseProjectStatus(string(p.Status)); err != nil {
		return fmt.Errorf("project %s: %w", p.ID, err)
	}
	if _, err := ParseProjectType(string(p.ProjectType)); err != nil {
		return fmt.Errorf("project %s: %w", p.ID, err)
	}
	if p.RepositoryURL != "" {
		u, err := url.Parse(p.RepositoryURL)
		if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
			return fmt.Errorf("project %s: invalid repository_url %q", p.ID, p.RepositoryURL)
		}
	}

	return nil
}
