package config

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	// APIBaseURL selects the BuildFlow backend. Read once at startup, not
	// hot-reloadable.
	APIBaseURL string `env:"BUILDFLOW_API_URL, default=http://localhost:8000"`
	Env        string `env:"BUILDFLOW_ENV,     default=development"`
	LogLevel   string `env:"LOG_LEVEL,         default=info"`

	// HTTPTimeoutSeconds bounds every gateway call; a hung request
	// surfaces as a transport error instead of pending forever.
	HTTPTimeoutSeconds int `env:"BUILDFLOW_HTTP_TIMEOUT, default=15"`

	// SessionFile overrides the durable credential storage location.
	// Empty selects the per-user default.
	SessionFile string `env:"BUILDFLOW_SESSION_FILE"`

	Stub StubConfig
}

// StubConfig drives the bundled development API server.
type StubConfig struct {
	Port      string `env:"BUILDFLOW_STUB_PORT,       default=8000"`
	JWTSecret string `env:"BUILDFLOW_STUB_JWT_SECRET, default=buildflow-dev-secret"`
	TokenTTL  int    `env:"BUILDFLOW_STUB_TOKEN_TTL,  default=480"` // minutes
}

// Load reads configuration from environment variables using go-envconfig.
// In development a .env file in the working directory is honoured first.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
