package domain

import "time"

// Task is a unit of work inside a project. IsOverdue is a computed field
// owned by the backend.
type Task struct {
	ID                 int       `json:"id"`
	ProjectID          int       `json:"project_id"`
	Name               string    `json:"name"`
	Description        string    `json:"description,omitempty"`
	Status             string    `json:"status"`
	Priority           string    `json:"priority"`
	StartDate          string    `json:"start_date,omitempty"`
	PlannedEndDate     string    `json:"planned_end_date,omitempty"`
	ActualEndDate      string    `json:"actual_end_date,omitempty"`
	ProgressPercentage float64   `json:"progress_percentage"`
	AssignedTo         string    `json:"assigned_to,omitempty"`
	IsOverdue          bool      `json:"is_overdue"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// TaskInput is the writable subset sent on create/update.
type TaskInput struct {
	ProjectID          int     `json:"project_id" validate:"required,gt=0"`
	Name               string  `json:"name" validate:"required"`
	Description        string  `json:"description,omitempty"`
	Status             string  `json:"status,omitempty" validate:"omitempty,oneof=pending in_progress completed blocked"`
	Priority           string  `json:"priority,omitempty" validate:"omitempty,oneof=low medium high critical"`
	StartDate          string  `json:"start_date,omitempty"`
	PlannedEndDate     string  `json:"planned_end_date,omitempty"`
	ProgressPercentage float64 `json:"progress_percentage,omitempty" validate:"gte=0,lte=100"`
	AssignedTo         string  `json:"assigned_to,omitempty"`
}

// TaskFilter narrows list queries; zero values mean "no filter".
type TaskFilter struct {
	ProjectID int
	Status    string
}
