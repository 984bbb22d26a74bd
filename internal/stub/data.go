package stub

import (
	"math"
	"sort"
	"sync"
	"time"

	"github.com/buildflow/client/internal/core/domain"
)

// dataset is the stub's in-memory state. The real backend owns persistence
// and the computed fields; the stub recomputes them on every read so the
// client sees realistic values.
type dataset struct {
	mu        sync.Mutex
	projects  map[int]*domain.Project
	tasks     map[int]*domain.Task
	resources map[int]*domain.Resource
	budgets   map[int]*domain.Budget
	activity  []domain.ActivityLog
	nextID    int
}

func newDataset() *dataset {
	d := &dataset{
		projects:  make(map[int]*domain.Project),
		tasks:     make(map[int]*domain.Task),
		resources: make(map[int]*domain.Resource),
		budgets:   make(map[int]*domain.Budget),
		nextID:    1,
	}
	d.seed()
	return d
}

func (d *dataset) id() int {
	id := d.nextID
	d.nextID++
	return id
}

// seed loads a small demo portfolio resembling the real seed data.
func (d *dataset) seed() {
	now := time.Now().UTC()

	d.addProject(domain.ProjectInput{
		Name:           "Residential Complex Alpha",
		Description:    "Modern 10-story residential building with 120 apartments",
		Status:         string(domain.ProjectActive),
		StartDate:      "2025-09-01",
		PlannedEndDate: "2026-12-31",
		TotalBudget:    8500000,
		Location:       "Astana, Esil District",
	}, 3200000)
	d.addProject(domain.ProjectInput{
		Name:           "Business Center Omega",
		Description:    "15-story office building with retail on ground floor",
		Status:         string(domain.ProjectActive),
		StartDate:      "2025-07-15",
		PlannedEndDate: "2027-06-30",
		TotalBudget:    15000000,
		Location:       "Almaty, Bostandyk District",
	}, 4500000)
	d.addProject(domain.ProjectInput{
		Name:           "Shopping Mall Gamma",
		Description:    "3-story shopping center with parking",
		Status:         string(domain.ProjectPlanning),
		StartDate:      "2025-12-01",
		PlannedEndDate: "2027-03-31",
		TotalBudget:    12000000,
		Location:       "Shymkent, City Center",
	}, 0)

	d.addTask(domain.TaskInput{
		ProjectID: 1, Name: "Foundation work", Status: "completed",
		Priority: "high", PlannedEndDate: now.AddDate(0, -2, 0).Format("2006-01-02"),
		ProgressPercentage: 100, AssignedTo: "Mike Construction",
	})
	d.addTask(domain.TaskInput{
		ProjectID: 1, Name: "Structural frame floors 1-5", Status: "in_progress",
		Priority: "high", PlannedEndDate: now.AddDate(0, 1, 0).Format("2006-01-02"),
		ProgressPercentage: 60, AssignedTo: "Mike Construction",
	})
	d.addTask(domain.TaskInput{
		ProjectID: 2, Name: "Facade glazing", Status: "pending",
		Priority: "medium", PlannedEndDate: now.AddDate(0, -1, 0).Format("2006-01-02"),
		ProgressPercentage: 0, AssignedTo: "Lisa Field",
	})

	d.addResource(domain.ResourceInput{
		ProjectID: 1, Name: "Concrete M400", ResourceType: "material",
		Quantity: 500, Unit: "m3", UnitCost: 120, Supplier: "KazBeton",
	})
	d.addResource(domain.ResourceInput{
		ProjectID: 2, Name: "Tower crane", ResourceType: "equipment",
		Quantity: 2, Unit: "unit", UnitCost: 8500,
	})

	d.addBudget(domain.BudgetInput{
		ProjectID: 1, Category: "materials", PlannedAmount: 3000000,
		ActualAmount: 2700000, BudgetDate: "2025-10-01",
	})
	d.addBudget(domain.BudgetInput{
		ProjectID: 1, Category: "labor", PlannedAmount: 1500000,
		ActualAmount: 1650000, BudgetDate: "2025-10-01",
	})
}

func (d *dataset) logActivity(user, action, details string) {
	d.activity = append(d.activity, domain.ActivityLog{
		ID:        len(d.activity) + 1,
		User:      user,
		Action:    action,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Details:   details,
	})
}

// ── Projects ──

func (d *dataset) addProject(in domain.ProjectInput, spent float64) *domain.Project {
	now := time.Now().UTC()
	status := domain.ProjectStatus(in.Status)
	if status == "" {
		status = domain.ProjectPlanning
	}
	p := &domain.Project{
		ID:             d.id(),
		Name:           in.Name,
		Description:    in.Description,
		Status:         status,
		StartDate:      in.StartDate,
		PlannedEndDate: in.PlannedEndDate,
		TotalBudget:    in.TotalBudget,
		SpentAmount:    spent,
		Location:       in.Location,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	d.projects[p.ID] = p
	return p
}

// projectView recomputes the derived budget figures.
func projectView(p *domain.Project) domain.Project {
	v := *p
	v.RemainingBudget = v.TotalBudget - v.SpentAmount
	if v.TotalBudget > 0 {
		v.BudgetUtilization = round2(v.SpentAmount / v.TotalBudget * 100)
	}
	return v
}

func (d *dataset) listProjects() []domain.Project {
	out := make([]domain.Project, 0, len(d.projects))
	for _, p := range d.projects {
		out = append(out, projectView(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ── Tasks ──

func (d *dataset) addTask(in domain.TaskInput) *domain.Task {
	now := time.Now().UTC()
	status := in.Status
	if status == "" {
		status = "pending"
	}
	priority := in.Priority
	if priority == "" {
		priority = "medium"
	}
	t := &domain.Task{
		ID:                 d.id(),
		ProjectID:          in.ProjectID,
		Name:               in.Name,
		Description:        in.Description,
		Status:             status,
		Priority:           priority,
		StartDate:          in.StartDate,
		PlannedEndDate:     in.PlannedEndDate,
		ProgressPercentage: in.ProgressPercentage,
		AssignedTo:         in.AssignedTo,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	d.tasks[t.ID] = t
	return t
}

// taskView recomputes the overdue flag.
func taskView(t *domain.Task) domain.Task {
	v := *t
	if v.Status != "completed" && v.PlannedEndDate != "" {
		if end, err := time.Parse("2006-01-02", v.PlannedEndDate); err == nil {
			v.IsOverdue = end.Before(time.Now().UTC())
		}
	}
	return v
}

func (d *dataset) listTasks(filter domain.TaskFilter) []domain.Task {
	out := make([]domain.Task, 0, len(d.tasks))
	for _, t := range d.tasks {
		if filter.ProjectID > 0 && t.ProjectID != filter.ProjectID {
			continue
		}
		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		out = append(out, taskView(t))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ── Resources ──

func (d *dataset) addResource(in domain.ResourceInput) *domain.Resource {
	now := time.Now().UTC()
	status := in.Status
	if status == "" {
		status = "allocated"
	}
	r := &domain.Resource{
		ID:            d.id(),
		ProjectID:     in.ProjectID,
		Name:          in.Name,
		ResourceType:  in.ResourceType,
		Status:        status,
		Quantity:      in.Quantity,
		Unit:          in.Unit,
		UnitCost:      in.UnitCost,
		Supplier:      in.Supplier,
		AllocatedDate: now.Format("2006-01-02"),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	d.resources[r.ID] = r
	return r
}

func resourceView(r *domain.Resource) domain.Resource {
	v := *r
	v.TotalCost = round2(v.Quantity * v.UnitCost)
	return v
}

func (d *dataset) listResources(filter domain.ResourceFilter) []domain.Resource {
	out := make([]domain.Resource, 0, len(d.resources))
	for _, r := range d.resources {
		if filter.ProjectID > 0 && r.ProjectID != filter.ProjectID {
			continue
		}
		if filter.ResourceType != "" && r.ResourceType != filter.ResourceType {
			continue
		}
		out = append(out, resourceView(r))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ── Budgets ──

func (d *dataset) addBudget(in domain.BudgetInput) *domain.Budget {
	now := time.Now().UTC()
	date := in.BudgetDate
	if date == "" {
		date = now.Format("2006-01-02")
	}
	b := &domain.Budget{
		ID:            d.id(),
		ProjectID:     in.ProjectID,
		Category:      in.Category,
		Description:   in.Description,
		PlannedAmount: in.PlannedAmount,
		ActualAmount:  in.ActualAmount,
		BudgetDate:    date,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	d.budgets[b.ID] = b
	return b
}

func budgetView(b *domain.Budget) domain.Budget {
	v := *b
	v.Variance = round2(v.ActualAmount - v.PlannedAmount)
	if v.PlannedAmount > 0 {
		v.VariancePercentage = round2(v.Variance / v.PlannedAmount * 100)
	}
	return v
}

func (d *dataset) listBudgets(filter domain.BudgetFilter) []domain.Budget {
	out := make([]domain.Budget, 0, len(d.budgets))
	for _, b := range d.budgets {
		if filter.ProjectID > 0 && b.ProjectID != filter.ProjectID {
			continue
		}
		if filter.Category != "" && b.Category != filter.Category {
			continue
		}
		out = append(out, budgetView(b))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ── Analytics ──

func (d *dataset) dashboardStats() domain.DashboardStats {
	var stats domain.DashboardStats
	stats.TotalProjects = len(d.projects)
	for _, p := range d.projects {
		switch p.Status {
		case domain.ProjectActive:
			stats.ActiveProjects++
		case domain.ProjectCompleted:
			stats.CompletedProjects++
		}
		stats.TotalBudget += p.TotalBudget
		stats.TotalSpent += p.SpentAmount
	}
	if stats.TotalBudget > 0 {
		stats.BudgetUtilization = round2(stats.TotalSpent / stats.TotalBudget * 100)
	}

	stats.TotalTasks = len(d.tasks)
	for _, t := range d.tasks {
		if t.Status == "completed" {
			stats.CompletedTasks++
		} else if taskView(t).IsOverdue {
			stats.OverdueTasks++
		}
	}
	if stats.TotalTasks > 0 {
		stats.TaskCompletionRate = round2(float64(stats.CompletedTasks) / float64(stats.TotalTasks) * 100)
	}
	return stats
}

func (d *dataset) teamPerformance(projectID int) domain.TeamPerformanceReport {
	type agg struct {
		total, completed int
		progress         float64
	}
	byWorker := make(map[string]*agg)
	for _, t := range d.tasks {
		if projectID > 0 && t.ProjectID != projectID {
			continue
		}
		if t.AssignedTo == "" {
			continue
		}
		a := byWorker[t.AssignedTo]
		if a == nil {
			a = &agg{}
			byWorker[t.AssignedTo] = a
		}
		a.total++
		a.progress += t.ProgressPercentage
		if t.Status == "completed" {
			a.completed++
		}
	}

	report := domain.TeamPerformanceReport{TeamMembers: len(byWorker)}
	names := make([]string, 0, len(byWorker))
	for name := range byWorker {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		a := byWorker[name]
		report.Performance = append(report.Performance, domain.TeamPerformance{
			WorkerName:     name,
			TotalTasks:     a.total,
			CompletedTasks: a.completed,
			AvgProgress:    round2(a.progress / float64(a.total)),
			CompletionRate: round2(float64(a.completed) / float64(a.total) * 100),
		})
	}
	return report
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
