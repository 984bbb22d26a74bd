package domain

import "time"

// Resource is material, equipment or labor allocated to a project.
// TotalCost is computed server-side from quantity and unit cost.
type Resource struct {
	ID            int       `json:"id"`
	ProjectID     int       `json:"project_id"`
	Name          string    `json:"name"`
	ResourceType  string    `json:"resource_type"`
	Status        string    `json:"status"`
	Quantity      float64   `json:"quantity"`
	Unit          string    `json:"unit,omitempty"`
	UnitCost      float64   `json:"unit_cost"`
	TotalCost     float64   `json:"total_cost"`
	Supplier      string    `json:"supplier,omitempty"`
	AllocatedDate string    `json:"allocated_date"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ResourceInput is the writable subset sent on create/update.
type ResourceInput struct {
	ProjectID    int     `json:"project_id" validate:"required,gt=0"`
	Name         string  `json:"name" validate:"required"`
	ResourceType string  `json:"resource_type" validate:"required,oneof=material equipment labor"`
	Status       string  `json:"status,omitempty"`
	Quantity     float64 `json:"quantity" validate:"gt=0"`
	Unit         string  `json:"unit,omitempty"`
	UnitCost     float64 `json:"unit_cost" validate:"gte=0"`
	Supplier     string  `json:"supplier,omitempty"`
}

// ResourceFilter narrows list queries; zero values mean "no filter".
type ResourceFilter struct {
	ProjectID    int
	ResourceType string
}
