package correct

import "cleanroom/pkg/schema"

// OfferKind distinguishes applicable fixes from advisory suggestions.
type OfferKind string

const (
	OfferFix        OfferKind = "fix"        // has a transform, can be applied
	OfferSuggestion OfferKind = "suggestion" // advisory only, acknowledged not applied
)

// Offer is one correction offer derived from the findings list. Because a
// transform repairs the whole collection, one offer covers every finding of
// its category.
type Offer struct {
	ID             string
	Category       schema.FindingCategory
	Kind           OfferKind
	Title          string
	Description    string
	Action         string
	Confidence     int
	AutoApplicable bool
}

type offerTemplate struct {
	title       string
	description string
	action      string
	confidence  int
}

var fixTemplates = map[schema.FindingCategory]offerTemplate{
	schema.FindingUnknownReference: {
		title:       "Remove Unknown Work Item References",
		description: "Remove work item IDs that do not exist in the dataset from requester requests",
		action:      "Auto-remove invalid work item references",
		confidence:  95,
	},
	schema.FindingMalformedText: {
		title:       "Convert Text to JSON",
		description: "Convert plain text attribute values to proper JSON format",
		action:      `Wrap in JSON: {"value": "text content"}`,
		confidence:  98,
	},
	schema.FindingResourceOverload: {
		title:       "Fix Resource Overload",
		description: "Adjust MaxLoadPerPhase to match available slots",
		action:      "Reduce MaxLoadPerPhase to available slots count",
		confidence:  90,
	},
	schema.FindingDurationOutOfRange: {
		title:       "Fix Invalid Duration",
		description: "Set minimum work item duration to 1 phase",
		action:      "Set duration to 1 for invalid values",
		confidence:  100,
	},
	schema.FindingPriorityOutOfRange: {
		title:       "Fix Invalid Priority Level",
		description: "Adjust priority levels to the valid 1-5 range",
		action:      "Clamp priority values to 1-5 range",
		confidence:  100,
	},
}

// Offers derives correction offers from a findings list, deduplicated by
// (title, category). requesterCount > 0 additionally yields one advisory
// suggestion with no transform attached.
func Offers(findings []schema.Finding, requesterCount int) []Offer {
	offers := []Offer{}
	seen := make(map[string]bool)

	for _, f := range findings {
		tmpl, ok := fixTemplates[f.Category]
		if !ok {
			continue
		}
		key := tmpl.title + "|" + string(f.Category)
		if seen[key] {
			continue
		}
		seen[key] = true

		offers = append(offers, Offer{
			ID:             "offer-" + string(f.Category),
			Category:       f.Category,
			Kind:           OfferFix,
			Title:          tmpl.title,
			Description:    tmpl.description,
			Action:         tmpl.action,
			Confidence:     tmpl.confidence,
			AutoApplicable: true,
		})
	}

	if requesterCount > 0 {
		offers = append(offers, Offer{
			ID:             "offer-priority-distribution",
			Kind:           OfferSuggestion,
			Title:          "Optimize Requester Priority Distribution",
			Description:    "Current priority distribution may cause resource conflicts",
			Action:         "Consider priority rebalancing for better allocation",
			Confidence:     70,
			AutoApplicable: false,
		})
	}

	return offers
}
