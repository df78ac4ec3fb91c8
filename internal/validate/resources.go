package validate

import (
	"fmt"
	"strings"

	"cleanroom/pkg/schema"
)

// ValidateResources checks the resource collection record by record.
func ValidateResources(resources []schema.Resource) []schema.Finding {
	findings := []schema.Finding{}
	seen := make(map[string]bool)

	for i, r := range resources {
		if seen[r.WorkerID] {
			findings = append(findings, schema.Finding{
				ID:       schema.FindingID(schema.EntityResource, i, schema.FindingDuplicateID),
				Category: schema.FindingDuplicateID,
				Message:  fmt.Sprintf("Worker ID %s is duplicated", r.WorkerID),
				Entity:   schema.EntityResource,
				Field:    "WorkerID",
				Severity: schema.SeverityError,
			})
		}
		seen[r.WorkerID] = true

		if r.WorkerID == "" {
			findings = append(findings, schema.Finding{
				ID:       schema.FindingID(schema.EntityResource, i, schema.FindingMissingField) + "-WorkerID",
				Category: schema.FindingMissingField,
				Message:  "Worker ID is required",
				Entity:   schema.EntityResource,
				Field:    "WorkerID",
				Severity: schema.SeverityError,
			})
		}

		if r.Name == "" {
			findings = append(findings, schema.Finding{
				ID:       schema.FindingID(schema.EntityResource, i, schema.FindingMissingField) + "-WorkerName",
				Category: schema.FindingMissingField,
				Message:  "Worker Name is required",
				Entity:   schema.EntityResource,
				Field:    "WorkerName",
				Severity: schema.SeverityError,
			})
		}

		if len(r.AvailableSlots) == 0 {
			// A resource without any slot is unusable, so this is an error
			// rather than the warning used for empty skill lists.
			findings = append(findings, schema.Finding{
				ID:       schema.FindingID(schema.EntityResource, i, schema.FindingMissingField) + "-AvailableSlots",
				Category: schema.FindingMissingField,
				Message:  "Worker must have at least one available slot",
				Entity:   schema.EntityResource,
				Field:    "AvailableSlots",
				Severity: schema.SeverityError,
			})
		} else {
			var invalid []string
			for _, slot := range r.AvailableSlots {
				if slot < schema.SlotMin || slot > schema.SlotMax {
					invalid = append(invalid, fmt.Sprintf("%d", slot))
				}
			}
			// Out-of-range slots flag the record without blocking it.
			if len(invalid) > 0 {
				findings = append(findings, schema.Finding{
					ID:       schema.FindingID(schema.EntityResource, i, schema.FindingOutOfRange) + "-AvailableSlots",
					Category: schema.FindingOutOfRange,
					Message:  fmt.Sprintf("Invalid slot numbers: %s", strings.Join(invalid, ", ")),
					Entity:   schema.EntityResource,
					Field:    "AvailableSlots",
					Severity: schema.SeverityWarning,
				})
			}
		}

		if r.MaxLoadPerPhase < schema.MaxLoadPerPhaseMin {
			findings = append(findings, schema.Finding{
				ID:       schema.FindingID(schema.EntityResource, i, schema.FindingOutOfRange) + "-MaxLoadPerPhase",
				Category: schema.FindingOutOfRange,
				Message:  "Max Load Per Phase must be at least 1",
				Entity:   schema.EntityResource,
				Field:    "MaxLoadPerPhase",
				Severity: schema.SeverityError,
			})
		}

		if r.MaxLoadPerPhase > len(r.AvailableSlots) {
			findings = append(findings, schema.Finding{
				ID:       schema.FindingID(schema.EntityResource, i, schema.FindingResourceOverload),
				Category: schema.FindingResourceOverload,
				Message: fmt.Sprintf("MaxLoadPerPhase (%d) exceeds available slots (%d)",
					r.MaxLoadPerPhase, len(r.AvailableSlots)),
				Entity:   schema.EntityResource,
				Field:    "MaxLoadPerPhase",
				Severity: schema.SeverityError,
			})
		}
	}

	return findings
}
