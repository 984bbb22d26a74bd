package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.APIBaseURL != "http://localhost:8000" {
		t.Fatalf("unexpected default base URL %q", cfg.APIBaseURL)
	}
	if cfg.HTTPTimeoutSeconds != 15 {
		t.Fatalf("unexpected default timeout %d", cfg.HTTPTimeoutSeconds)
	}
	if cfg.Stub.Port != "8000" || cfg.Stub.TokenTTL != 480 {
		t.Fatalf("unexpected stub defaults: %+v", cfg.Stub)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("BUILDFLOW_API_URL", "https://api.buildflow.example")
	t.Setenv("BUILDFLOW_HTTP_TIMEOUT", "30")
	t.Setenv("BUILDFLOW_SESSION_FILE", "/tmp/bf-session.json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.APIBaseURL != "https://api.buildflow.example" {
		t.Fatalf("env override ignored: %q", cfg.APIBaseURL)
	}
	if cfg.HTTPTimeoutSeconds != 30 {
		t.Fatalf("env override ignored: %d", cfg.HTTPTimeoutSeconds)
	}
	if cfg.SessionFile != "/tmp/bf-session.json" {
		t.Fatalf("env override ignored: %q", cfg.SessionFile)
	}
}
