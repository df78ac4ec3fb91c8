package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"cleanroom/internal/core"
)

// SaveConfig writes the configuration document to path, as JSON or YAML
// depending on the file extension.
func SaveConfig(cfg *Config, path string) error {
	var data []byte
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		data, err = json.MarshalIndent(cfg, "", "  ")
	case ".yaml", ".yml":
		data, err = yaml.Marshal(cfg)
	default:
		return &core.ExportError{Path: path, Message: "unsupported config format"}
	}
	if err != nil {
		return &core.ExportError{Path: path, Message: "marshal config", Err: err}
	}

	if err := writeFileAtomic(path, data); err != nil {
		return &core.ExportError{Path: path, Message: "write config", Err: err}
	}
	return nil
}

// LoadConfig reads a previously saved configuration document, so a session's
// rule set and weights can be restored.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &core.ExportError{Path: path, Message: "read config", Err: err}
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return nil, &core.ExportError{Path: path, Message: "unsupported config format"}
	}
	if err != nil {
		return nil, &core.ExportError{Path: path, Message: "parse config", Err: err}
	}

	return &cfg, nil
}
