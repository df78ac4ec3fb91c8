package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"cleanroom/pkg/schema"
)

// ValidateRequesters checks the requester collection record by record. Every
// problem on a record is reported; nothing short-circuits on the first hit.
func ValidateRequesters(requesters []schema.Requester) []schema.Finding {
	findings := []schema.Finding{}
	seen := make(map[string]bool)

	for i, r := range requesters {
		// The earliest record with a given ID is treated as canonical; only
		// later occurrences are flagged.
		if seen[r.ClientID] {
			findings = append(findings, schema.Finding{
				ID:       schema.FindingID(schema.EntityRequester, i, schema.FindingDuplicateID),
				Category: schema.FindingDuplicateID,
				Message:  fmt.Sprintf("Client ID %s is duplicated", r.ClientID),
				Entity:   schema.EntityRequester,
				Field:    "ClientID",
				Severity: schema.SeverityError,
			})
		}
		seen[r.ClientID] = true

		if r.ClientID == "" {
			findings = append(findings, schema.Finding{
				ID:       schema.FindingID(schema.EntityRequester, i, schema.FindingMissingField) + "-ClientID",
				Category: schema.FindingMissingField,
				Message:  "Client ID is required",
				Entity:   schema.EntityRequester,
				Field:    "ClientID",
				Severity: schema.SeverityError,
			})
		}

		if r.Name == "" {
			findings = append(findings, schema.Finding{
				ID:       schema.FindingID(schema.EntityRequester, i, schema.FindingMissingField) + "-ClientName",
				Category: schema.FindingMissingField,
				Message:  "Client Name is required",
				Entity:   schema.EntityRequester,
				Field:    "ClientName",
				Severity: schema.SeverityError,
			})
		}

		if r.PriorityLevel < schema.PriorityLevelMin || r.PriorityLevel > schema.PriorityLevelMax {
			findings = append(findings, schema.Finding{
				ID:       schema.FindingID(schema.EntityRequester, i, schema.FindingPriorityOutOfRange),
				Category: schema.FindingPriorityOutOfRange,
				Message: fmt.Sprintf("Priority Level must be between %d and %d",
					schema.PriorityLevelMin, schema.PriorityLevelMax),
				Entity:   schema.EntityRequester,
				Field:    "PriorityLevel",
				Severity: schema.SeverityError,
			})
		}

		if f, ok := checkAttributesText(r.AttributesText, i); ok {
			findings = append(findings, f)
		}
	}

	return findings
}

// checkAttributesText validates the structured-text attribute. Text that was
// clearly never meant to be JSON is a warning; text that looks like JSON but
// has broken syntax is an error.
func checkAttributesText(text string, index int) (schema.Finding, bool) {
	if text == "" || json.Valid([]byte(text)) {
		return schema.Finding{}, false
	}

	if !strings.HasPrefix(text, "{") && !strings.HasPrefix(text, `"`) {
		return schema.Finding{
			ID:       schema.FindingID(schema.EntityRequester, index, schema.FindingMalformedText),
			Category: schema.FindingMalformedText,
			Message:  fmt.Sprintf("AttributesJSON contains plain text instead of JSON: %q", truncate(text, 30)),
			Entity:   schema.EntityRequester,
			Field:    "AttributesJSON",
			Severity: schema.SeverityWarning,
		}, true
	}

	return schema.Finding{
		ID:       schema.FindingID(schema.EntityRequester, index, schema.FindingMalformedText),
		Category: schema.FindingMalformedText,
		Message:  "AttributesJSON contains invalid JSON syntax",
		Entity:   schema.EntityRequester,
		Field:    "AttributesJSON",
		Severity: schema.SeverityError,
	}, true
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
