// Package validate implements the per-collection validators, the
// cross-reference validator, and the orchestrator that composes them into a
// single findings list. Validation is a pure function of the three
// collections: it mutates nothing and can be called freely.
package validate

import "cleanroom/pkg/schema"

// Revalidate recomputes the full findings list for the three collections.
// There is no incremental mode; every call is a complete recompute and the
// result replaces whatever findings list the caller held before. Callers must
// invoke it after every mutation that could affect validity.
func Revalidate(
	requesters []schema.Requester,
	resources []schema.Resource,
	items []schema.WorkItem,
) []schema.Finding {
	findings := ValidateRequesters(requesters)
	findings = append(findings, ValidateResources(resources)...)
	findings = append(findings, ValidateWorkItems(items)...)
	findings = append(findings, ValidateCrossReferences(requesters, resources, items)...)
	return findings
}
