package schema

// Rule is a user-defined or keyword-derived allocation constraint. Rules live
// only in session memory; they are exported as part of the config document.
type Rule struct {
	ID          string         `json:"id" yaml:"id"`
	Kind        RuleKind       `json:"type" yaml:"kind"`
	Name        string         `json:"name" yaml:"name"`
	Description string         `json:"description" yaml:"description"`
	Parameters  map[string]any `json:"parameters" yaml:"parameters"`
	Active      bool           `json:"active" yaml:"active"`
}

// PriorityWeight is one allocation criterion with its weight in [0,1].
type PriorityWeight struct {
	ID          string  `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Weight      float64 `json:"weight" yaml:"weight"`
	Description string  `json:"description" yaml:"description"`
}

// DefaultPriorityWeights returns the five canonical allocation criteria. The
// collection is fixed for the life of a session; only the weights change.
func DefaultPriorityWeights() []PriorityWeight {
	return []PriorityWeight{
		{ID: "1", Name: "Priority Level", Weight: 0.3, Description: "Requester priority importance"},
		{ID: "2", Name: "Task Fulfillment", Weight: 0.25, Description: "Requested work items completion"},
		{ID: "3", Name: "Worker Fairness", Weight: 0.2, Description: "Equal workload distribution"},
		{ID: "4", Name: "Skill Matching", Weight: 0.15, Description: "Optimal skill utilization"},
		{ID: "5", Name: "Phase Efficiency", Weight: 0.1, Description: "Timeline optimization"},
	}
}
