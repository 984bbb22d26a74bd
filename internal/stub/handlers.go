package stub

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/buildflow/client/internal/core/domain"
)

// ── Auth ──

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        *domain.User `json:"user"`
}

func (s *Server) handleLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, ok := s.authenticate(req.Username, req.Password)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Incorrect username or password")
	}

	token, err := s.issueToken(user)
	if err != nil {
		return fmt.Errorf("issue token: %w", err)
	}

	s.data.mu.Lock()
	s.data.logActivity(user.Username, "login", "signed in")
	s.data.mu.Unlock()

	return c.JSON(http.StatusOK, loginResponse{AccessToken: token, TokenType: "bearer", User: user})
}

func (s *Server) handleMe(c echo.Context) error {
	return c.JSON(http.StatusOK, currentUser(c))
}

func (s *Server) handleDemoUsers(c echo.Context) error {
	usernames := make([]string, 0, len(s.accounts))
	for name := range s.accounts {
		usernames = append(usernames, name)
	}
	sort.Strings(usernames)

	out := make([]domain.DemoUser, 0, len(usernames))
	for _, name := range usernames {
		acct := s.accounts[name]
		out = append(out, domain.DemoUser{
			Username: acct.user.Username,
			Role:     string(acct.user.Role),
			Name:     acct.user.Name,
			Hint:     "Password: " + acct.password,
		})
	}
	return c.JSON(http.StatusOK, out)
}

// ── Projects ──

func (s *Server) handleListProjects(c echo.Context) error {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	return c.JSON(http.StatusOK, s.data.listProjects())
}

func (s *Server) handleGetProject(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	p, ok := s.data.projects[id]
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "project not found")
	}
	return c.JSON(http.StatusOK, projectView(p))
}

func (s *Server) handleCreateProject(c echo.Context) error {
	var in domain.ProjectInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&in); err != nil {
		return err
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	p := s.data.addProject(in, 0)
	s.data.logActivity(currentUser(c).Username, "create_project", p.Name)
	return c.JSON(http.StatusCreated, projectView(p))
}

func (s *Server) handleUpdateProject(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var in domain.ProjectInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&in); err != nil {
		return err
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	p, ok := s.data.projects[id]
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "project not found")
	}
	p.Name = in.Name
	p.Description = in.Description
	if in.Status != "" {
		p.Status = domain.ProjectStatus(in.Status)
	}
	p.StartDate = in.StartDate
	p.PlannedEndDate = in.PlannedEndDate
	p.TotalBudget = in.TotalBudget
	p.Location = in.Location
	p.UpdatedAt = time.Now().UTC()
	s.data.logActivity(currentUser(c).Username, "update_project", p.Name)
	return c.JSON(http.StatusOK, projectView(p))
}

func (s *Server) handleDeleteProject(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	if _, ok := s.data.projects[id]; !ok {
		return echo.NewHTTPError(http.StatusNotFound, "project not found")
	}
	delete(s.data.projects, id)
	s.data.logActivity(currentUser(c).Username, "delete_project", strconv.Itoa(id))
	return c.NoContent(http.StatusNoContent)
}

// ── Tasks ──

func (s *Server) handleListTasks(c echo.Context) error {
	filter := domain.TaskFilter{Status: c.QueryParam("status")}
	if v := c.QueryParam("project_id"); v != "" {
		filter.ProjectID, _ = strconv.Atoi(v)
	}
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	return c.JSON(http.StatusOK, s.data.listTasks(filter))
}

func (s *Server) handleGetTask(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	t, ok := s.data.tasks[id]
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "task not found")
	}
	return c.JSON(http.StatusOK, taskView(t))
}

func (s *Server) handleCreateTask(c echo.Context) error {
	var in domain.TaskInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&in); err != nil {
		return err
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	if _, ok := s.data.projects[in.ProjectID]; !ok {
		return echo.NewHTTPError(http.StatusNotFound, "project not found")
	}
	t := s.data.addTask(in)
	s.data.logActivity(currentUser(c).Username, "create_task", t.Name)
	return c.JSON(http.StatusCreated, taskView(t))
}

func (s *Server) handleUpdateTask(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var in domain.TaskInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&in); err != nil {
		return err
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	t, ok := s.data.tasks[id]
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "task not found")
	}
	t.Name = in.Name
	t.Description = in.Description
	if in.Status != "" {
		t.Status = in.Status
	}
	if in.Priority != "" {
		t.Priority = in.Priority
	}
	t.StartDate = in.StartDate
	t.PlannedEndDate = in.PlannedEndDate
	t.ProgressPercentage = in.ProgressPercentage
	t.AssignedTo = in.AssignedTo
	t.UpdatedAt = time.Now().UTC()
	s.data.logActivity(currentUser(c).Username, "update_task", t.Name)
	return c.JSON(http.StatusOK, taskView(t))
}

func (s *Server) handleDeleteTask(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	if _, ok := s.data.tasks[id]; !ok {
		return echo.NewHTTPError(http.StatusNotFound, "task not found")
	}
	delete(s.data.tasks, id)
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleOverdueTasks(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	var out []domain.Task
	for _, t := range s.data.listTasks(domain.TaskFilter{ProjectID: id}) {
		if t.IsOverdue {
			out = append(out, t)
		}
	}
	return c.JSON(http.StatusOK, out)
}

// ── Resources ──

func (s *Server) handleListResources(c echo.Context) error {
	filter := domain.ResourceFilter{ResourceType: c.QueryParam("resource_type")}
	if v := c.QueryParam("project_id"); v != "" {
		filter.ProjectID, _ = strconv.Atoi(v)
	}
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	return c.JSON(http.StatusOK, s.data.listResources(filter))
}

func (s *Server) handleGetResource(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	r, ok := s.data.resources[id]
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "resource not found")
	}
	return c.JSON(http.StatusOK, resourceView(r))
}

func (s *Server) handleCreateResource(c echo.Context) error {
	var in domain.ResourceInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&in); err != nil {
		return err
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	if _, ok := s.data.projects[in.ProjectID]; !ok {
		return echo.NewHTTPError(http.StatusNotFound, "project not found")
	}
	r := s.data.addResource(in)
	s.data.logActivity(currentUser(c).Username, "create_resource", r.Name)
	return c.JSON(http.StatusCreated, resourceView(r))
}

func (s *Server) handleUpdateResource(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var in domain.ResourceInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&in); err != nil {
		return err
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	r, ok := s.data.resources[id]
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "resource not found")
	}
	r.Name = in.Name
	r.ResourceType = in.ResourceType
	if in.Status != "" {
		r.Status = in.Status
	}
	r.Quantity = in.Quantity
	r.Unit = in.Unit
	r.UnitCost = in.UnitCost
	r.Supplier = in.Supplier
	r.UpdatedAt = time.Now().UTC()
	return c.JSON(http.StatusOK, resourceView(r))
}

func (s *Server) handleDeleteResource(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	if _, ok := s.data.resources[id]; !ok {
		return echo.NewHTTPError(http.StatusNotFound, "resource not found")
	}
	delete(s.data.resources, id)
	return c.NoContent(http.StatusNoContent)
}

// ── Budgets ──

func (s *Server) handleListBudgets(c echo.Context) error {
	filter := domain.BudgetFilter{Category: c.QueryParam("category")}
	if v := c.QueryParam("project_id"); v != "" {
		filter.ProjectID, _ = strconv.Atoi(v)
	}
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	return c.JSON(http.StatusOK, s.data.listBudgets(filter))
}

func (s *Server) handleGetBudget(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	b, ok := s.data.budgets[id]
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "budget not found")
	}
	return c.JSON(http.StatusOK, budgetView(b))
}

func (s *Server) handleCreateBudget(c echo.Context) error {
	var in domain.BudgetInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&in); err != nil {
		return err
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	if _, ok := s.data.projects[in.ProjectID]; !ok {
		return echo.NewHTTPError(http.StatusNotFound, "project not found")
	}
	b := s.data.addBudget(in)
	s.data.logActivity(currentUser(c).Username, "create_budget", b.Category)
	return c.JSON(http.StatusCreated, budgetView(b))
}

func (s *Server) handleUpdateBudget(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var in domain.BudgetInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&in); err != nil {
		return err
	}

	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	b, ok := s.data.budgets[id]
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "budget not found")
	}
	b.Category = in.Category
	b.Description = in.Description
	b.PlannedAmount = in.PlannedAmount
	b.ActualAmount = in.ActualAmount
	if in.BudgetDate != "" {
		b.BudgetDate = in.BudgetDate
	}
	b.UpdatedAt = time.Now().UTC()
	return c.JSON(http.StatusOK, budgetView(b))
}

func (s *Server) handleDeleteBudget(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	if _, ok := s.data.budgets[id]; !ok {
		return echo.NewHTTPError(http.StatusNotFound, "budget not found")
	}
	delete(s.data.budgets, id)
	return c.NoContent(http.StatusNoContent)
}

// ── Analytics ──

func (s *Server) handleDashboard(c echo.Context) error {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	return c.JSON(http.StatusOK, s.data.dashboardStats())
}

func (s *Server) handleTeamPerformance(c echo.Context) error {
	projectID := 0
	if v := c.QueryParam("project_id"); v != "" {
		projectID, _ = strconv.Atoi(v)
	}
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	return c.JSON(http.StatusOK, s.data.teamPerformance(projectID))
}

// ── Users ──

func (s *Server) handleGetProfile(c echo.Context) error {
	return c.JSON(http.StatusOK, currentUser(c))
}

func (s *Server) handleUpdateProfile(c echo.Context) error {
	var in domain.ProfileUpdate
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&in); err != nil {
		return err
	}

	acct, ok := s.accounts[currentUser(c).Username]
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "user not found")
	}
	if in.Name != "" {
		acct.user.Name = in.Name
	}
	if in.Email != "" {
		acct.user.Email = in.Email
	}
	user := acct.user
	return c.JSON(http.StatusOK, &user)
}

func (s *Server) handleTeam(c echo.Context) error {
	usernames := make([]string, 0, len(s.accounts))
	for name := range s.accounts {
		usernames = append(usernames, name)
	}
	sort.Strings(usernames)

	team := make([]domain.User, 0, len(usernames))
	for _, name := range usernames {
		team = append(team, s.accounts[name].user)
	}
	return c.JSON(http.StatusOK, team)
}

func (s *Server) handleActivityLog(c echo.Context) error {
	limit := 50
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	entries := s.data.activity
	if len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	return c.JSON(http.StatusOK, entries)
}

// ── Import ──

// handleImportCSV ingests task rows: name,project_id[,status,priority].
func (s *Server) handleImportCSV(c echo.Context) error {
	file, header, err := formFile(c)
	if err != nil {
		return err
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed CSV")
	}

	report := domain.ImportReport{Filename: header}
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	for i, row := range rows {
		if i == 0 {
			continue // header row
		}
		if len(row) < 2 {
			report.Skipped++
			continue
		}
		projectID, err := strconv.Atoi(row[1])
		if err != nil {
			report.Skipped++
			report.Errors = append(report.Errors, fmt.Sprintf("row %d: bad project_id", i+1))
			continue
		}
		if _, ok := s.data.projects[projectID]; !ok {
			report.Skipped++
			report.Errors = append(report.Errors, fmt.Sprintf("row %d: unknown project", i+1))
			continue
		}
		in := domain.TaskInput{Name: row[0], ProjectID: projectID}
		if len(row) > 2 {
			in.Status = row[2]
		}
		if len(row) > 3 {
			in.Priority = row[3]
		}
		s.data.addTask(in)
		report.Imported++
	}
	s.data.logActivity(currentUser(c).Username, "import_csv", header)
	return c.JSON(http.StatusOK, report)
}

// handleImportExcel accepts the upload but does no sheet parsing; the real
// backend owns that. Rows are reported as skipped.
func (s *Server) handleImportExcel(c echo.Context) error {
	file, header, err := formFile(c)
	if err != nil {
		return err
	}
	defer file.Close()
	_, _ = io.Copy(io.Discard, file)

	s.data.mu.Lock()
	s.data.logActivity(currentUser(c).Username, "import_excel", header)
	s.data.mu.Unlock()

	return c.JSON(http.StatusOK, domain.ImportReport{
		Filename: header,
		Errors:   []string{"excel parsing is not implemented by the stub"},
	})
}

// ── Helpers ──

func pathID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

func formFile(c echo.Context) (io.ReadCloser, string, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return nil, "", echo.NewHTTPError(http.StatusBadRequest, "missing file")
	}
	f, err := fh.Open()
	if err != nil {
		return nil, "", fmt.Errorf("open upload: %w", err)
	}
	return f, fh.Filename, nil
}
