package core

import (
	"strings"

	"cleanroom/pkg/schema"
)

// RuleSet is the in-memory rule repository for one session. Rules never
// outlive the session except through the exported config document.
type RuleSet struct {
	rules []schema.Rule
}

// NewRuleSet creates an empty rule set.
func NewRuleSet() *RuleSet {
	return &RuleSet{rules: []schema.Rule{}}
}

// RulePatch carries a partial-field rule update. Nil fields are untouched.
type RulePatch struct {
	Name        *string
	Description *string
	Parameters  map[string]any
	Active      *bool
}

// Create builds a rule with a fresh ID and adds it to the set.
func (rs *RuleSet) Create(kind schema.RuleKind, name, description string, parameters map[string]any) (schema.Rule, error) {
	id, err := schema.NewRuleID()
	if err != nil {
		return schema.Rule{}, &RuleError{Message: "generate id: " + err.Error()}
	}
	if parameters == nil {
		parameters = map[string]any{}
	}
	rule := schema.Rule{
		ID:          id,
		Kind:        kind,
		Name:        name,
		Description: description,
		Parameters:  parameters,
		Active:      true,
	}
	rs.rules = append(rs.rules, rule)
	return rule, nil
}

// Add appends an already-built rule to the set.
func (rs *RuleSet) Add(rule schema.Rule) {
	rs.rules = append(rs.rules, rule)
}

// Update applies a partial-field update to the rule with the given ID.
func (rs *RuleSet) Update(id string, patch RulePatch) error {
	for i, rule := range rs.rules {
		if rule.ID != id {
			continue
		}
		if patch.Name != nil {
			rule.Name = *patch.Name
		}
		if patch.Description != nil {
			rule.Description = *patch.Description
		}
		if patch.Parameters != nil {
			rule.Parameters = patch.Parameters
		}
		if patch.Active != nil {
			rule.Active = *patch.Active
		}
		rs.rules[i] = rule
		return nil
	}
	return &RuleError{ID: id, Message: "not found"}
}

// Remove deletes the rule with the given ID.
func (rs *RuleSet) Remove(id string) error {
	for i, rule := range rs.rules {
		if rule.ID == id {
			rs.rules = append(rs.rules[:i], rs.rules[i+1:]...)
			return nil
		}
	}
	return &RuleError{ID: id, Message: "not found"}
}

// List returns a copy of all rules in insertion order.
func (rs *RuleSet) List() []schema.Rule {
	out := make([]schema.Rule, len(rs.rules))
	copy(out, rs.rules)
	return out
}

// Active returns a copy of the rules currently switched on.
func (rs *RuleSet) Active() []schema.Rule {
	out := []schema.Rule{}
	for _, rule := range rs.rules {
		if rule.Active {
			out = append(out, rule)
		}
	}
	return out
}

func (rs *RuleSet) clone() *RuleSet {
	clone := NewRuleSet()
	for _, rule := range rs.rules {
		params := make(map[string]any, len(rule.Parameters))
		for k, v := range rule.Parameters {
			params[k] = v
		}
		rule.Parameters = params
		clone.rules = append(clone.rules, rule)
	}
	return clone
}

// DraftRuleFromText derives a rule seed from free text using a fixed keyword
// table. This is a deterministic heuristic, not language understanding: the
// parameters it fills in are placeholders the user is expected to edit before
// relying on the rule.
func DraftRuleFromText(text string) (schema.Rule, error) {
	id, err := schema.NewRuleID()
	if err != nil {
		return schema.Rule{}, &RuleError{Message: "generate id: " + err.Error()}
	}

	rule := schema.Rule{
		ID:          id,
		Kind:        schema.RuleCoRun,
		Name:        "AI Generated Rule",
		Description: text,
		Parameters:  map[string]any{},
		Active:      true,
	}

	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "together") || strings.Contains(lower, "co-run"):
		rule.Kind = schema.RuleCoRun
		rule.Name = "Co-run Rule"
		rule.Parameters = map[string]any{"tasks": []string{"T1", "T2"}}
	case strings.Contains(lower, "limit") || strings.Contains(lower, "maximum"):
		rule.Kind = schema.RuleLoadLimit
		rule.Name = "Load Limit Rule"
		rule.Parameters = map[string]any{"workerGroup": "All", "maxSlots": 5}
	case strings.Contains(lower, "phase"):
		rule.Kind = schema.RulePhaseWindow
		rule.Name = "Phase Window Rule"
		rule.Parameters = map[string]any{"taskId": "T1", "allowedPhases": []int{1, 2, 3}}
	}

	return rule, nil
}
