package core

import (
	"os"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	// Save original env vars
	origLogLevel := os.Getenv("LOG_LEVEL")
	origDebug := os.Getenv("DEBUG")
	origDataDir := os.Getenv("CLEANROOM_DATA_DIR")
	origExportDir := os.Getenv("CLEANROOM_EXPORT_DIR")

	// Restore after test
	defer func() {
		os.Setenv("LOG_LEVEL", origLogLevel)
		os.Setenv("DEBUG", origDebug)
		os.Setenv("CLEANROOM_DATA_DIR", origDataDir)
		os.Setenv("CLEANROOM_EXPORT_DIR", origExportDir)
	}()

	tests := []struct {
		name          string
		envVars       map[string]string
		expectedLevel string
		expectedData  string
	}{
		{
			name:          "default values",
			envVars:       map[string]string{},
			expectedLevel: "info",
			expectedData:  "testdata",
		},
		{
			name: "custom log level",
			envVars: map[string]string{
				"LOG_LEVEL": "warn",
			},
			expectedLevel: "warn",
			expectedData:  "testdata",
		},
		{
			name: "debug flag overrides log level",
			envVars: map[string]string{
				"LOG_LEVEL": "error",
				"DEBUG":     "1",
			},
			expectedLevel: "debug",
			expectedData:  "testdata",
		},
		{
			name: "custom directories",
			envVars: map[string]string{
				"CLEANROOM_DATA_DIR":   "/srv/datasets",
				"CLEANROOM_EXPORT_DIR": "/srv/exports",
			},
			expectedLevel: "info",
			expectedData:  "/srv/datasets",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Unsetenv("LOG_LEVEL")
			os.Unsetenv("DEBUG")
			os.Unsetenv("CLEANROOM_DATA_DIR")
			os.Unsetenv("CLEANROOM_EXPORT_DIR")
			for k, v := range tt.envVars {
				os.Setenv(k, v)
			}

			cfg, err := LoadConfig()
			if err != nil {
				t.Fatalf("LoadConfig failed: %v", err)
			}
			if cfg.LogLevel != tt.expectedLevel {
				t.Errorf("LogLevel = %s, want %s", cfg.LogLevel, tt.expectedLevel)
			}
			if cfg.DataDir != tt.expectedData {
				t.Errorf("DataDir = %s, want %s", cfg.DataDir, tt.expectedData)
			}
			if want, ok := tt.envVars["CLEANROOM_EXPORT_DIR"]; ok && cfg.ExportDir != want {
				t.Errorf("ExportDir = %s, want %s", cfg.ExportDir, want)
			}
		})
	}
}
