package validate

import (
	"fmt"

	"cleanroom/pkg/schema"
)

// ValidateWorkItems checks the work item collection record by record.
func ValidateWorkItems(items []schema.WorkItem) []schema.Finding {
	findings := []schema.Finding{}
	seen := make(map[string]bool)

	for i, item := range items {
		if seen[item.TaskID] {
			findings = append(findings, schema.Finding{
				ID:       schema.FindingID(schema.EntityWorkItem, i, schema.FindingDuplicateID),
				Category: schema.FindingDuplicateID,
				Message:  fmt.Sprintf("Task ID %s is duplicated", item.TaskID),
				Entity:   schema.EntityWorkItem,
				Field:    "TaskID",
				Severity: schema.SeverityError,
			})
		}
		seen[item.TaskID] = true

		if item.TaskID == "" {
			findings = append(findings, schema.Finding{
				ID:       schema.FindingID(schema.EntityWorkItem, i, schema.FindingMissingField) + "-TaskID",
				Category: schema.FindingMissingField,
				Message:  "Task ID is required",
				Entity:   schema.EntityWorkItem,
				Field:    "TaskID",
				Severity: schema.SeverityError,
			})
		}

		if item.Name == "" {
			findings = append(findings, schema.Finding{
				ID:       schema.FindingID(schema.EntityWorkItem, i, schema.FindingMissingField) + "-TaskName",
				Category: schema.FindingMissingField,
				Message:  "Task Name is required",
				Entity:   schema.EntityWorkItem,
				Field:    "TaskName",
				Severity: schema.SeverityError,
			})
		}

		if item.Duration < schema.DurationMin {
			findings = append(findings, schema.Finding{
				ID:       schema.FindingID(schema.EntityWorkItem, i, schema.FindingDurationOutOfRange),
				Category: schema.FindingDurationOutOfRange,
				Message:  "Duration must be at least 1 phase",
				Entity:   schema.EntityWorkItem,
				Field:    "Duration",
				Severity: schema.SeverityError,
			})
		}

		if item.MaxConcurrent < schema.MaxConcurrentMin {
			findings = append(findings, schema.Finding{
				ID:       schema.FindingID(schema.EntityWorkItem, i, schema.FindingOutOfRange) + "-MaxConcurrent",
				Category: schema.FindingOutOfRange,
				Message:  "Max Concurrent must be at least 1",
				Entity:   schema.EntityWorkItem,
				Field:    "MaxConcurrent",
				Severity: schema.SeverityError,
			})
		}

		if len(item.RequiredSkills) == 0 {
			findings = append(findings, schema.Finding{
				ID:       schema.FindingID(schema.EntityWorkItem, i, schema.FindingMissingField) + "-RequiredSkills",
				Category: schema.FindingMissingField,
				Message:  "Task must specify at least one required skill",
				Entity:   schema.EntityWorkItem,
				Field:    "RequiredSkills",
				Severity: schema.SeverityWarning,
			})
		}

		if len(item.PreferredPhases) == 0 {
			findings = append(findings, schema.Finding{
				ID:       schema.FindingID(schema.EntityWorkItem, i, schema.FindingMissingField) + "-PreferredPhases",
				Category: schema.FindingMissingField,
				Message:  "Task must specify preferred phases",
				Entity:   schema.EntityWorkItem,
				Field:    "PreferredPhases",
				Severity: schema.SeverityWarning,
			})
		}
	}

	return findings
}
