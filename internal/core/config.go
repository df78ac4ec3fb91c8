package core

import (
	"os"
)

// Config holds the application configuration.
type Config struct {
	LogLevel  string // debug, info, warn, error
	DataDir   string // Directory the demo harness reads dataset files from
	ExportDir string // Directory cleaned files and the rules config are written to
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	logLevel := getEnvOrDefault("LOG_LEVEL", "info")

	// DEBUG flag overrides log level
	if os.Getenv("DEBUG") == "1" {
		logLevel = "debug"
	}

	cfg := &Config{
		LogLevel:  logLevel,
		DataDir:   getEnvOrDefault("CLEANROOM_DATA_DIR", "testdata"),
		ExportDir: getEnvOrDefault("CLEANROOM_EXPORT_DIR", "export"),
	}

	return cfg, nil
}

// getEnvOrDefault returns the value of an environment variable or a default value.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
