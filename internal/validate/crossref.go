package validate

import (
	"fmt"
	"strings"

	"cleanroom/pkg/schema"
)

// ValidateCrossReferences checks consistency across the three collections:
// requester references to work items that do not exist, and required skills
// no resource can cover. It always completes and returns findings; bad data
// is reported, never raised.
func ValidateCrossReferences(
	requesters []schema.Requester,
	resources []schema.Resource,
	items []schema.WorkItem,
) []schema.Finding {
	findings := []schema.Finding{}

	validIDs := make(map[string]bool, len(items))
	for _, item := range items {
		validIDs[item.TaskID] = true
	}

	for i, r := range requesters {
		var invalid []string
		for _, id := range r.RequestedWorkItemIDs {
			if !validIDs[id] || schema.SuspectWorkItemID(id) {
				invalid = append(invalid, id)
			}
		}
		// One batched finding per requester, listing every invalid ID.
		if len(invalid) > 0 {
			findings = append(findings, schema.Finding{
				ID:       schema.FindingID(schema.EntityRequester, i, schema.FindingUnknownReference),
				Category: schema.FindingUnknownReference,
				Message:  fmt.Sprintf("Client references non-existent tasks: %s", strings.Join(invalid, ", ")),
				Entity:   schema.EntityRequester,
				Field:    "RequestedTaskIDs",
				Severity: schema.SeverityError,
			})
		}
	}

	offered := make(map[string]bool)
	for _, res := range resources {
		for _, skill := range res.Skills {
			offered[skill] = true
		}
	}

	// Collect uncovered skills in first-seen order so the message is stable
	// across passes over identical inputs.
	seen := make(map[string]bool)
	var uncovered []string
	for _, item := range items {
		for _, skill := range item.RequiredSkills {
			if seen[skill] {
				continue
			}
			seen[skill] = true
			if !offered[skill] {
				uncovered = append(uncovered, skill)
			}
		}
	}

	if len(uncovered) > 0 {
		findings = append(findings, schema.Finding{
			ID:       string(schema.FindingSkillCoverageGap),
			Category: schema.FindingSkillCoverageGap,
			Message:  fmt.Sprintf("No workers available with skills: %s", strings.Join(uncovered, ", ")),
			Entity:   schema.EntityWorkItem,
			Severity: schema.SeverityWarning,
		})
	}

	return findings
}
