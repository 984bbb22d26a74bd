package domain

import "time"

// Budget is a per-category budget line. Variance figures are computed
// fields owned by the backend.
type Budget struct {
	ID                 int       `json:"id"`
	ProjectID          int       `json:"project_id"`
	Category           string    `json:"category"`
	Description        string    `json:"description,omitempty"`
	PlannedAmount      float64   `json:"planned_amount"`
	ActualAmount       float64   `json:"actual_amount"`
	Variance           float64   `json:"variance"`
	VariancePercentage float64   `json:"variance_percentage"`
	BudgetDate         string    `json:"budget_date"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// BudgetInput is the writable subset sent on create/update.
type BudgetInput struct {
	ProjectID     int     `json:"project_id" validate:"required,gt=0"`
	Category      string  `json:"category" validate:"required"`
	Description   string  `json:"description,omitempty"`
	PlannedAmount float64 `json:"planned_amount" validate:"gte=0"`
	ActualAmount  float64 `json:"actual_amount" validate:"gte=0"`
	BudgetDate    string  `json:"budget_date,omitempty"`
}

// BudgetFilter narrows list queries; zero values mean "no filter".
type BudgetFilter struct {
	ProjectID int
	Category  string
}
