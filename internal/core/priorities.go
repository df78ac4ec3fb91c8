package core

import (
	"fmt"
	"math"

	"cleanroom/pkg/schema"
)

// PrioritySet holds the session's allocation criteria weights. The criteria
// themselves are fixed for the session; only the weights move, per-criterion
// or via a preset profile.
type PrioritySet struct {
	weights []schema.PriorityWeight
}

// NewPrioritySet creates a priority set with the canonical default weights.
func NewPrioritySet() *PrioritySet {
	return &PrioritySet{weights: schema.DefaultPriorityWeights()}
}

// SetWeight sets one criterion's weight, clamped to [0,1].
func (p *PrioritySet) SetWeight(id string, weight float64) error {
	weight = math.Max(0, math.Min(1, weight))
	for i, w := range p.weights {
		if w.ID == id {
			p.weights[i].Weight = weight
			return nil
		}
	}
	return fmt.Errorf("unknown priority criterion: %s", id)
}

// ApplyPreset bulk-applies a criterion-ID to weight mapping. IDs absent from
// the mapping keep their current weight.
func (p *PrioritySet) ApplyPreset(weights map[string]float64) {
	for id, weight := range weights {
		// Unknown IDs in a preset are skipped rather than rejected.
		_ = p.SetWeight(id, weight)
	}
}

// List returns a copy of the weight vector.
func (p *PrioritySet) List() []schema.PriorityWeight {
	out := make([]schema.PriorityWeight, len(p.weights))
	copy(out, p.weights)
	return out
}

// Total returns the sum of all weights.
func (p *PrioritySet) Total() float64 {
	total := 0.0
	for _, w := range p.weights {
		total += w.Weight
	}
	return total
}

// Balanced reports whether the weights sum to 1 within tolerance. This is a
// display signal only; the engine never rejects an unbalanced vector.
func (p *PrioritySet) Balanced() bool {
	return math.Abs(p.Total()-1.0) < schema.BalancedTolerance
}

func (p *PrioritySet) clone() *PrioritySet {
	clone := &PrioritySet{weights: make([]schema.PriorityWeight, len(p.weights))}
	copy(clone.weights, p.weights)
	return clone
}

// PresetProfile is a named weight distribution the user can apply in one step.
type PresetProfile struct {
	Name        string
	Description string
	Weights     map[string]float64
}

// PresetProfiles returns the built-in allocation strategy profiles.
func PresetProfiles() []PresetProfile {
	return []PresetProfile{
		{
			Name:        "Task Completion Focus",
			Description: "Emphasize completing the maximum number of assignments",
			Weights:     map[string]float64{"1": 0.1, "2": 0.4, "3": 0.2, "4": 0.2, "5": 0.1},
		},
		{
			Name:        "Workload Equity",
			Description: "Ensure balanced task distribution across team members",
			Weights:     map[string]float64{"1": 0.2, "2": 0.2, "3": 0.4, "4": 0.1, "5": 0.1},
		},
		{
			Name:        "High Priority Emphasis",
			Description: "Focus on critical assignments above all else",
			Weights:     map[string]float64{"1": 0.5, "2": 0.2, "3": 0.1, "4": 0.1, "5": 0.1},
		},
		{
			Name:        "Skill Alignment",
			Description: "Optimize for matching tasks with specialist capabilities",
			Weights:     map[string]float64{"1": 0.1, "2": 0.2, "3": 0.2, "4": 0.4, "5": 0.1},
		},
	}
}
