package schema

import "fmt"

// Finding is a single validation result. Findings are ephemeral: every
// validation pass regenerates the full list, nothing is patched in place.
type Finding struct {
	ID       string          `json:"id" yaml:"id"`
	Category FindingCategory `json:"category" yaml:"category"`
	Message  string          `json:"message" yaml:"message"`
	Entity   EntityKind      `json:"entity" yaml:"entity"`
	Field    string          `json:"field,omitempty" yaml:"field,omitempty"`
	Severity Severity        `json:"severity" yaml:"severity"`
}

// FindingID derives a stable finding identifier from the entity kind, the
// record index, and the category. Identical inputs always yield the same ID.
func FindingID(entity EntityKind, index int, category FindingCategory) string {
	return fmt.Sprintf("%s-%d-%s", entity, index, category)
}
