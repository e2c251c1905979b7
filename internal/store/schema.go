package store

import (
	"encoding/json"
	"fmt"

	"github.com/qri-io/jsonschema"
)

// JSON Schemas applied to each mock data file before decoding. They gate the
// structural shape; enum and format rules live on the model Validate methods.

const specialistsSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "full_name", "email", "role", "hourly_rate", "hire_date"],
    "properties": {
      "id": {"type": "string", "minLength": 1},
      "full_name": {"type": "string"},
      "email": {"type": "string"},
      "role": {"type": "string"},
      "hourly_rate": {"type": "number"},
      "active": {"type": "boolean"},
      "hire_date": {"type": "string"},
      "leave_date": {"type": ["string", "null"]}
    }
  }
}`

const projectsSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "name", "description", "client_name", "start_date"],
    "properties": {
      "id": {"type": "string", "minLength": 1},
      "name": {"type": "string"},
      "description": {"type": "string"},
      "client_name": {"type": "string"},
      "status": {"type": "string"},
      "project_type": {"type": "string"},
      "timesheet_id": {"type": "string"},
      "start_date": {"type": "string"},
      "end_date": {"type": ["string", "null"]},
      "budget": {"type": ["number", "null"]},
      "repository_url": {"type": "string"},
      "specialist_ids": {"type": "array", "items": {"type": "string"}}
    }
  }
}`

const periodsSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "start_date", "end_date"],
    "properties": {
      "id": {"type": "string", "minLength": 1},
      "name": {"type": "string"},
      "start_date": {"type": "string"},
      "end_date": {"type": "string"},
      "status": {"type": "string"},
      "report_id": {"type": "string"},
      "time_entries": {
        "type": "array",
        "items": {
          "type": "object",
          "required": ["id", "specialist_id", "project_id", "date", "hours"],
          "properties": {
            "id": {"type": "string", "minLength": 1},
            "specialist_id": {"type": "string"},
            "project_id": {"type": "string"},
            "date": {"type": "string"},
            "hours": {"type": "number"},
            "description": {"type": "string"}
          }
        }
      },
      "total_hours": {"type": "number"}
    }
  }
}`

type schemaSet struct {
	specialists *jsonschema.Schema
	projects    *jsonschema.Schema
	periods     *jsonschema.Schema
}

func compileSchemas() (*schemaSet, error) {
	compile := func(name, src string) (*jsonschema.Schema, error) {
		rs := &jsonschema.Schema{}
		if err := json.Unmarshal([]byte(src), rs); err != nil {
			return nil, fmt.Errorf("compile %s schema: %w", name, err)
		}
		return rs, nil
	}

	var (
		ss  schemaSet
		err error
	)
	if ss.specialists, err = compile("specialists", specialistsSchema); err != nil {
		return nil, err
	}
	if ss.projects, err = compile("projects", projectsSchema); err != nil {
		return nil, err
	}
	if ss.periods, err = compile("payment_periods", periodsSchema); err != nil {
		return nil, err
	}

	return &ss, nil
}
