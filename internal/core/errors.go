package core

import (
	"fmt"

	"cleanroom/pkg/schema"
)

// Data-quality problems (duplicate IDs, bad ranges, malformed structured
// text, dangling references) are never represented as errors: the engine
// reports them as findings and keeps going. The error types here cover the
// operational layer around the engine.

// IngestError represents a failure decoding an uploaded dataset file.
type IngestError struct {
	Path    string
	Message string
	Err     error
}

func (e *IngestError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("ingest %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("ingest: %s", e.Message)
}

func (e *IngestError) Unwrap() error {
	return e.Err
}

// ExportError represents a failure writing the cleaned dataset or the rules
// configuration document.
type ExportError struct {
	Path    string
	Message string
	Err     error
}

func (e *ExportError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("export %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("export: %s", e.Message)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// CorrectionError represents a correction request for a category that has no
// registered transform.
type CorrectionError struct {
	Category schema.FindingCategory
	Message  string
}

func (e *CorrectionError) Error() string {
	return fmt.Sprintf("correction %s: %s", e.Category, e.Message)
}

// RuleError represents a rule repository operation failure.
type RuleError struct {
	ID      string
	Message string
}

func (e *RuleError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("rule %s: %s", e.ID, e.Message)
	}
	return fmt.Sprintf("rule: %s", e.Message)
}
