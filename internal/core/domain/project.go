package domain

import "time"

// ProjectStatus is the lifecycle state the backend reports for a project.
// The client renders it verbatim; transitions are computed server-side.
type ProjectStatus string

const (
	ProjectPlanning  ProjectStatus = "planning"
	ProjectActive    ProjectStatus = "active"
	ProjectOnHold    ProjectStatus = "on_hold"
	ProjectCompleted ProjectStatus = "completed"
	ProjectCancelled ProjectStatus = "cancelled"
)

// Project is a construction project as returned by the API. The budget
// figures (utilization, remaining) are computed fields owned by the backend.
type Project struct {
	ID                int           `json:"id"`
	Name              string        `json:"name"`
	Description       string        `json:"description,omitempty"`
	Status            ProjectStatus `json:"status"`
	StartDate         string        `json:"start_date,omitempty"`
	PlannedEndDate    string        `json:"planned_end_date,omitempty"`
	ActualEndDate     string        `json:"actual_end_date,omitempty"`
	TotalBudget       float64       `json:"total_budget"`
	SpentAmount       float64       `json:"spent_amount"`
	BudgetUtilization float64       `json:"budget_utilization"`
	RemainingBudget   float64       `json:"remaining_budget"`
	Location          string        `json:"location,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

// ProjectInput is the writable subset sent on create/update.
type ProjectInput struct {
	Name           string  `json:"name" validate:"required"`
	Description    string  `json:"description,omitempty"`
	Status         string  `json:"status,omitempty" validate:"omitempty,oneof=planning active on_hold completed cancelled"`
	StartDate      string  `json:"start_date,omitempty"`
	PlannedEndDate string  `json:"planned_end_date,omitempty"`
	TotalBudget    float64 `json:"total_budget" validate:"gte=0"`
	Location       string  `json:"location,omitempty"`
}
