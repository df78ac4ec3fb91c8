// Package correct maps finding categories to whole-collection repair
// transforms. Each transform is pure and idempotent: it rebuilds the
// collection in one pass, fixing every record in violation, and leaves
// everything else (including records lacking the expected shape) unchanged.
// Re-running a transform against a clean collection is a no-op.
package correct

import (
	"encoding/json"
	"strings"

	"cleanroom/internal/core"
	"cleanroom/pkg/schema"
)

// Apply runs the transform registered for category against the session's
// collections. The session setters re-run validation, so the findings list is
// fresh by the time Apply returns; callers never see stale findings.
func Apply(category schema.FindingCategory, state *core.SessionState) error {
	switch category {
	case schema.FindingUnknownReference:
		state.SetRequesters(FixUnknownReferences(state.Requesters))
	case schema.FindingMalformedText:
		state.SetRequesters(FixMalformedAttributes(state.Requesters))
	case schema.FindingResourceOverload:
		state.SetResources(FixResourceOverload(state.Resources))
	case schema.FindingDurationOutOfRange:
		state.SetWorkItems(FixDurations(state.WorkItems))
	case schema.FindingPriorityOutOfRange:
		state.SetRequesters(FixPriorities(state.Requesters))
	default:
		return &core.CorrectionError{Category: category, Message: "no transform registered"}
	}
	return nil
}

// FixUnknownReferences drops every requested work item ID that does not
// follow the canonical T<number> convention.
func FixUnknownReferences(requesters []schema.Requester) []schema.Requester {
	out := make([]schema.Requester, len(requesters))
	for i, r := range requesters {
		kept := make([]string, 0, len(r.RequestedWorkItemIDs))
		for _, id := range r.RequestedWorkItemIDs {
			if schema.CanonicalWorkItemID(id) {
				kept = append(kept, id)
			}
		}
		r.RequestedWorkItemIDs = kept
		out[i] = r
	}
	return out
}

// FixMalformedAttributes wraps plain-text attribute values in a minimal JSON
// envelope so they parse. Text that already parses, or that looks like broken
// JSON rather than plain text, passes through unchanged.
func FixMalformedAttributes(requesters []schema.Requester) []schema.Requester {
	out := make([]schema.Requester, len(requesters))
	for i, r := range requesters {
		if r.AttributesText != "" &&
			!json.Valid([]byte(r.AttributesText)) &&
			!strings.HasPrefix(r.AttributesText, "{") &&
			!strings.HasPrefix(r.AttributesText, `"`) {
			wrapped, err := json.Marshal(map[string]string{"value": r.AttributesText})
			if err == nil {
				r.AttributesText = string(wrapped)
			}
		}
		out[i] = r
	}
	return out
}

// FixResourceOverload clamps MaxLoadPerPhase down to the number of available
// slots.
func FixResourceOverload(resources []schema.Resource) []schema.Resource {
	out := make([]schema.Resource, len(resources))
	for i, r := range resources {
		if r.MaxLoadPerPhase > len(r.AvailableSlots) {
			r.MaxLoadPerPhase = len(r.AvailableSlots)
		}
		out[i] = r
	}
	return out
}

// FixDurations clamps work item durations up to the minimum of one phase.
func FixDurations(items []schema.WorkItem) []schema.WorkItem {
	out := make([]schema.WorkItem, len(items))
	for i, item := range items {
		if item.Duration < schema.DurationMin {
			item.Duration = schema.DurationMin
		}
		out[i] = item
	}
	return out
}

// FixPriorities clamps requester priority levels into the valid range.
func FixPriorities(requesters []schema.Requester) []schema.Requester {
	out := make([]schema.Requester, len(requesters))
	for i, r := range requesters {
		if r.PriorityLevel < schema.PriorityLevelMin {
			r.PriorityLevel = schema.PriorityLevelMin
		}
		if r.PriorityLevel > schema.PriorityLevelMax {
			r.PriorityLevel = schema.PriorityLevelMax
		}
		out[i] = r
	}
	return out
}
