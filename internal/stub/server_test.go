package stub

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/buildflow/client/internal/core/domain"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(New(Options{JWTSecret: "test-secret", Logger: zerolog.Nop()}).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func login(t *testing.T, srv *httptest.Server, username, password string) string {
	t.Helper()
	body := fmt.Sprintf(`{"username":%q,"password":%q}`, username, password)
	resp, err := http.Post(srv.URL+"/api/auth/login", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("login request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login %s: status %d", username, resp.StatusCode)
	}
	var out loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if out.AccessToken == "" || out.TokenType != "bearer" || out.User == nil {
		t.Fatalf("incomplete login response: %+v", out)
	}
	return out.AccessToken
}

func do(t *testing.T, srv *httptest.Server, method, path, token string, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, srv.URL+path, strings.NewReader(body))
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func decodeInto(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestLoginAndMe(t *testing.T) {
	srv := newTestServer(t)
	token := login(t, srv, "admin", "admin123")

	resp := do(t, srv, http.MethodGet, "/api/auth/me", token, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("me: status %d", resp.StatusCode)
	}
	var user domain.User
	decodeInto(t, resp, &user)
	if user.Username != "admin" || user.Role != domain.RoleAdmin || user.Name != "John Admin" {
		t.Fatalf("unexpected identity: %+v", user)
	}
}

func TestLoginRejected(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/auth/login", "application/json",
		strings.NewReader(`{"username":"admin","password":"wrong"}`))
	if err != nil {
		t.Fatalf("login request: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
	var envelope errorResponse
	decodeInto(t, resp, &envelope)
	if envelope.Detail != "Incorrect username or password" {
		t.Fatalf("unexpected detail %q", envelope.Detail)
	}
}

func TestMissingAuthHeader(t *testing.T) {
	srv := newTestServer(t)

	resp := do(t, srv, http.MethodGet, "/api/projects/", "", "")
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	srv := newTestServer(t)
	token := login(t, srv, "admin", "admin123")

	resp := do(t, srv, http.MethodGet, "/api/auth/me", token+"x", "")
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for a tampered token, got %d", resp.StatusCode)
	}
}

func TestDemoUsers(t *testing.T) {
	srv := newTestServer(t)

	resp := do(t, srv, http.MethodGet, "/api/auth/demo-users", "", "")
	var users []domain.DemoUser
	decodeInto(t, resp, &users)
	if len(users) != 5 {
		t.Fatalf("expected 5 demo accounts, got %d", len(users))
	}
	if users[0].Username != "admin" || users[0].Hint != "Password: admin123" {
		t.Fatalf("unexpected first account: %+v", users[0])
	}
}

func TestRBACImportForbiddenForManager(t *testing.T) {
	srv := newTestServer(t)
	token := login(t, srv, "manager1", "manager123")

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, _ := mw.CreateFormFile("file", "tasks.csv")
	part.Write([]byte("name,project_id\nPour foundation,1\n"))
	mw.Close()

	req, _ := http.NewRequest(http.MethodPost, srv.URL+"/api/import/csv", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for manager, got %d", resp.StatusCode)
	}
}

func TestCSVImport(t *testing.T) {
	srv := newTestServer(t)
	token := login(t, srv, "admin", "admin123")

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, _ := mw.CreateFormFile("file", "tasks.csv")
	part.Write([]byte("name,project_id,status,priority\n" +
		"Pour foundation,1,in_progress,high\n" +
		"Paint walls,999,,\n" +
		"Wire electrics,not-a-number,,\n"))
	mw.Close()

	req, _ := http.NewRequest(http.MethodPost, srv.URL+"/api/import/csv", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var report domain.ImportReport
	decodeInto(t, resp, &report)
	if report.Imported != 1 || report.Skipped != 2 {
		t.Fatalf("expected 1 imported / 2 skipped, got %+v", report)
	}
	if len(report.Errors) != 2 {
		t.Fatalf("expected 2 row errors, got %v", report.Errors)
	}
}

func TestProjectCRUD(t *testing.T) {
	srv := newTestServer(t)
	token := login(t, srv, "admin", "admin123")

	resp := do(t, srv, http.MethodPost, "/api/projects/", token,
		`{"name":"Bridge Delta","description":"River crossing","status":"planning","total_budget":1000000}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: status %d", resp.StatusCode)
	}
	var created domain.Project
	decodeInto(t, resp, &created)
	if created.ID == 0 || created.Name != "Bridge Delta" {
		t.Fatalf("unexpected created project: %+v", created)
	}
	if created.RemainingBudget != 1000000 {
		t.Fatalf("remaining budget not derived: %+v", created)
	}

	resp = do(t, srv, http.MethodGet, fmt.Sprintf("/api/projects/%d", created.ID), token, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get: status %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = do(t, srv, http.MethodDelete, fmt.Sprintf("/api/projects/%d", created.ID), token, "")
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete: status %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = do(t, srv, http.MethodGet, fmt.Sprintf("/api/projects/%d", created.ID), token, "")
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", resp.StatusCode)
	}
}

func TestValidationRejectsIncompleteTask(t *testing.T) {
	srv := newTestServer(t)
	token := login(t, srv, "admin", "admin123")

	resp := do(t, srv, http.MethodPost, "/api/tasks/", token, `{"description":"no name or project"}`)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.StatusCode)
	}
}

func TestDashboardStats(t *testing.T) {
	srv := newTestServer(t)
	token := login(t, srv, "manager1", "manager123")

	resp := do(t, srv, http.MethodGet, "/api/analytics/dashboard", token, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("dashboard: status %d", resp.StatusCode)
	}
	var stats domain.DashboardStats
	decodeInto(t, resp, &stats)
	if stats.TotalProjects != 3 {
		t.Fatalf("expected the 3 seeded projects, got %d", stats.TotalProjects)
	}
	if stats.TotalBudget <= 0 || stats.TotalTasks == 0 {
		t.Fatalf("stats not derived from seed data: %+v", stats)
	}
}
