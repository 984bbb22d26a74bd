package domain

// DashboardStats is the aggregate snapshot behind every role's dashboard.
type DashboardStats struct {
	TotalProjects      int     `json:"total_projects"`
	ActiveProjects     int     `json:"active_projects"`
	CompletedProjects  int     `json:"completed_projects"`
	TotalBudget        float64 `json:"total_budget"`
	TotalSpent         float64 `json:"total_spent"`
	BudgetUtilization  float64 `json:"budget_utilization"`
	TotalTasks         int     `json:"total_tasks"`
	CompletedTasks     int     `json:"completed_tasks"`
	OverdueTasks       int     `json:"overdue_tasks"`
	TaskCompletionRate float64 `json:"task_completion_rate"`
}

// TeamPerformance aggregates one worker's task record.
type TeamPerformance struct {
	WorkerName     string  `json:"worker_name"`
	TotalTasks     int     `json:"total_tasks"`
	CompletedTasks int     `json:"completed_tasks"`
	AvgProgress    float64 `json:"avg_progress"`
	CompletionRate float64 `json:"completion_rate"`
}

// TeamPerformanceReport is the envelope returned by the team-performance
// endpoint.
type TeamPerformanceReport struct {
	TeamMembers int               `json:"team_members"`
	Performance []TeamPerformance `json:"performance"`
}
