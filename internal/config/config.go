package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// DefaultBackendRelPath is where the DNA backend lives relative to the
// gateway binary when no explicit path is configured. The layout mirrors
// how the backend is mounted into the gateway container.
const DefaultBackendRelPath = "dna/experimental/spi/note_assistant_v2/backend"

// Config holds all environment backed configuration for the gateway.
type Config struct {
	// HTTP Server
	HTTPPort    int `env:"HTTP_PORT" envDefault:"8080"`
	MetricsPort int `env:"METRICS_PORT" envDefault:"9091"`

	// DNA backend integration
	DNABackendPath string `env:"DNA_BACKEND_PATH"`

	// Observability / Logging
	OTLPEndpoint     string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTLPHeaders      string `env:"OTEL_EXPORTER_OTLP_HEADERS"`
	ServiceName      string `env:"SERVICE_NAME" envDefault:"api-gateway"`
	ServiceNamespace string `env:"SERVICE_NAMESPACE" envDefault:"vexa"`
	Environment      string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat        string `env:"LOG_FORMAT" envDefault:"console"`
}

// Load parses environment variables into Config and performs minimal validation.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.DNABackendPath == "" {
		cfg.DNABackendPath = filepath.Join(baseDir(), filepath.FromSlash(DefaultBackendRelPath))
	}
	abs, err := filepath.Abs(cfg.DNABackendPath)
	if err != nil {
		return nil, fmt.Errorf("resolve DNA backend path: %w", err)
	}
	cfg.DNABackendPath = abs

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	return cfg, nil
}

// baseDir anchors the default backend path next to the gateway binary,
// falling back to the working directory when the executable path is
// unknown (go test binaries in temp dirs).
func baseDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

var Version = "dev"

func IsDev() bool {
	return strings.HasPrefix(Version, "dev")
}
