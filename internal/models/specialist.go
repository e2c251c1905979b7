package models

import (
	"encoding/json"
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
)

// Role classifies what a specialist is billed as.
type Role string

const (
	RoleDeveloper      Role = "Developer"
	RoleQA             Role = "QA"
	RoleDesigner       Role = "Designer"
	RoleProjectManager Role = "Project Manager"
	RoleDevOps         Role = "DevOps"
)

// Roles returns every known role value.
func Roles() []Role {
	return []Role{RoleDeveloper, RoleQA, RoleDesigner, RoleProjectManager, RoleDevOps}
}

// ParseRole maps a string onto a known Role.
func ParseRole(s string) (Role, error) {
	for _, r := range Roles() {
		if string(r) == s {
			return r, nil
		}
	}

	return "", fmt.Errorf("unknown role %q", s)
}

type Specialist struct {
	ID         string     `json:"id"`
	FullName   string     `json:"full_name"`
	Email      string     `json:"email"`
	Role       Role       `json:"role"`
	HourlyRate float64    `json:"hourly_rate"`
	Active     bool       `json:"active"`
	HireDate   time.Time  `json:"hire_date"`
	LeaveDate  *time.Time `json:"leave_date,omitempty"`
}

// NewSpecialist builds an active specialist with a generated id.
func NewSpecialist(fullName, email string, role Role, hourlyRate float64, hireDate time.Time) Specialist {
	return Specialist{
		ID:         uuid.NewString(),
		FullName:   fullName,
		Email:      email,
		Role:       role,
		HourlyRate: hourlyRate,
		Active:     true,
		HireDate:   hireDate,
	}
}

// UnmarshalJSON defaults active to true when the field is absent.
func (s *Specialist) UnmarshalJSON(b []byte) error {
	type alias Specialist
	aux := struct {
		Active *bool `json:"active"`
		*alias
	}{alias: (*alias)(s)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	s.Active = aux.Active == nil || *aux.Active

	return nil
}

func (s Specialist) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("specialist: id is required")
	}
	if s.FullName == "" {
		return fmt.Errorf("specialist %s: full_name is required", s.ID)
	}
	if _, err := mail.ParseAddress(s.Email); err != nil {
		return fmt.Errorf("specialist %s: invalid email %q: %w", s.ID, s.Email, err)
	}
	if _, err := ParseRole(string(s.Role)); err != nil {
		return fmt.Errorf("specialist %s: %w", s.ID, err)
	}

	return nil
}
