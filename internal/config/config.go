// Package config handles application configuration from environment variables
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Upstream Chainfulness API
	APIKey     string // X-Api-Key header value (required)
	BaseURL    string // API host, no trailing slash
	APIVersion string // URL path version segment, e.g. "v01"
	DemoWallet string // sample wallet used in resource listings

	// Reference data
	PoolDataFile string // semicolon-delimited pool table

	// Server settings
	LogLevel    string // "debug", "info", "warn", "error"
	LogFormat   string // "text" or "json"
	MetricsAddr string // diagnostics listener (metrics + health); empty disables
	HTTPAddr    string // streamable HTTP transport; empty means stdio
	OTLPAddr    string // OTLP trace exporter endpoint; empty disables tracing

	// Steering decoration applied to tool payloads
	DisableSteering    bool
	SteeringPromptFile string // optional override for the embedded prompt
}

const (
	DefaultBaseURL    = "https://api.chainfulness.com"
	DefaultAPIVersion = "v01"
	DefaultDemoWallet = "0xe3a1ef6f21a3a1df2dbcc7039739b241eb59a46e"
	DefaultPoolFile   = "./markets-data.csv"
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "text"
)

// Load reads configuration from environment variables
// It loads .env file if present (for local development)
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not present)
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:             os.Getenv("API_KEY"), // Required, no default
		BaseURL:            getEnv("BASE_URL", DefaultBaseURL),
		APIVersion:         getEnv("API_VERSION", DefaultAPIVersion),
		DemoWallet:         getEnv("DEMO_WALLET", DefaultDemoWallet),
		PoolDataFile:       getEnv("POOL_DATA_FILE", DefaultPoolFile),
		LogLevel:           getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:          getEnv("LOG_FORMAT", DefaultLogFormat),
		MetricsAddr:        os.Getenv("METRICS_ADDR"),
		HTTPAddr:           os.Getenv("MCP_HTTP_ADDR"),
		OTLPAddr:           os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		DisableSteering:    getEnvBool("DISABLE_STEERING", false),
		SteeringPromptFile: os.Getenv("STEERING_PROMPT_FILE"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that all required configuration is present
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("API_KEY is required")
	}
	if c.BaseURL == "" {
		return fmt.Errorf("BASE_URL must not be empty")
	}
	if len(c.BaseURL) > 0 && c.BaseURL[len(c.BaseURL)-1] == '/' {
		c.BaseURL = c.BaseURL[:len(c.BaseURL)-1]
	}
	return nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	switch os.Getenv(key) {
	case "1", "true", "TRUE", "yes":
		return true
	case "0", "false", "FALSE", "no":
		return false
	}
	return defaultValue
}
