// Package export writes the cleaned dataset (one flat tabular file per
// entity kind) and the rules configuration document.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"cleanroom/internal/core"
	"cleanroom/pkg/schema"
)

// ExportMetadata captures when and from what an export was produced.
type ExportMetadata struct {
	ExportID          string    `json:"export_id" yaml:"export_id"`
	ExportDate        time.Time `json:"export_date" yaml:"export_date"`
	TotalRequesters   int       `json:"total_requesters" yaml:"total_requesters"`
	TotalResources    int       `json:"total_resources" yaml:"total_resources"`
	TotalWorkItems    int       `json:"total_work_items" yaml:"total_work_items"`
	RemainingFindings int       `json:"remaining_findings" yaml:"remaining_findings"`
}

// Config is the structured configuration document bundled with an export:
// the active rule set, the full priority weight vector, and metadata.
type Config struct {
	Rules      []schema.Rule           `json:"rules" yaml:"rules"`
	Priorities []schema.PriorityWeight `json:"priorities" yaml:"priorities"`
	Metadata   ExportMetadata          `json:"metadata" yaml:"metadata"`
}

// Exporter writes export packages.
type Exporter struct {
	logger core.Logger
}

// NewExporter creates an exporter. logger may be nil.
func NewExporter(logger core.Logger) *Exporter {
	return &Exporter{logger: logger}
}

// Export writes the three cleaned CSV files and rules_config.json into dir.
func (e *Exporter) Export(state *core.SessionState, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &core.ExportError{Path: dir, Message: "create export directory", Err: err}
	}

	files := map[string]string{
		"requesters_cleaned.csv": requestersCSV(state.Requesters),
		"resources_cleaned.csv":  resourcesCSV(state.Resources),
		"workitems_cleaned.csv":  workItemsCSV(state.WorkItems),
	}

	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := writeFileAtomic(path, []byte(content)); err != nil {
			return &core.ExportError{Path: path, Message: "write cleaned file", Err: err}
		}
	}

	cfg := BuildConfig(state)
	cfgPath := filepath.Join(dir, "rules_config.json")
	if err := SaveConfig(cfg, cfgPath); err != nil {
		return err
	}

	if e.logger != nil {
		e.logger.Info("export complete",
			"dir", dir,
			"export_id", cfg.Metadata.ExportID,
			"remaining_findings", cfg.Metadata.RemainingFindings)
	}
	return nil
}

// BuildConfig assembles the configuration document for a session: active
// rules only, but the complete priority vector.
func BuildConfig(state *core.SessionState) *Config {
	return &Config{
		Rules:      state.Rules.Active(),
		Priorities: state.Priorities.List(),
		Metadata: ExportMetadata{
			ExportID:          uuid.NewString(),
			ExportDate:        time.Now().UTC(),
			TotalRequesters:   len(state.Requesters),
			TotalResources:    len(state.Resources),
			TotalWorkItems:    len(state.WorkItems),
			RemainingFindings: len(state.Findings),
		},
	}
}

// List-valued fields are serialized as one quoted, comma-joined cell; plain
// strings are quoted only when they contain a comma.

func requestersCSV(requesters []schema.Requester) string {
	lines := []string{"ClientID,ClientName,PriorityLevel,RequestedTaskIDs,GroupTag,AttributesJSON"}
	for _, r := range requesters {
		lines = append(lines, strings.Join([]string{
			cell(r.ClientID),
			cell(r.Name),
			fmt.Sprintf("%d", r.PriorityLevel),
			listCell(r.RequestedWorkItemIDs),
			cell(r.GroupTag),
			cell(r.AttributesText),
		}, ","))
	}
	return strings.Join(lines, "\n")
}

func resourcesCSV(resources []schema.Resource) string {
	lines := []string{"WorkerID,WorkerName,Skills,AvailableSlots,MaxLoadPerPhase,WorkerGroup,QualificationLevel"}
	for _, r := range resources {
		lines = append(lines, strings.Join([]string{
			cell(r.WorkerID),
			cell(r.Name),
			listCell(r.Skills),
			intListCell(r.AvailableSlots),
			fmt.Sprintf("%d", r.MaxLoadPerPhase),
			cell(r.GroupTag),
			fmt.Sprintf("%d", r.QualificationLevel),
		}, ","))
	}
	return strings.Join(lines, "\n")
}

func workItemsCSV(items []schema.WorkItem) string {
	lines := []string{"TaskID,TaskName,Category,Duration,RequiredSkills,PreferredPhases,MaxConcurrent"}
	for _, item := range items {
		lines = append(lines, strings.Join([]string{
			cell(item.TaskID),
			cell(item.Name),
			cell(item.Category),
			fmt.Sprintf("%d", item.Duration),
			listCell(item.RequiredSkills),
			intListCell(item.PreferredPhases),
			fmt.Sprintf("%d", item.MaxConcurrent),
		}, ","))
	}
	return strings.Join(lines, "\n")
}

func cell(value string) string {
	if strings.Contains(value, ",") {
		return `"` + value + `"`
	}
	return value
}

func listCell(values []string) string {
	return `"` + strings.Join(values, ", ") + `"`
}

func intListCell(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return `"` + strings.Join(parts, ", ") + `"`
}

// writeFileAtomic writes to a temp file in the target directory and renames
// it into place, so a crash mid-write never leaves a half-written export.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename into place: %w", err)
	}
	return nil
}
