package core

import (
	"fmt"

	"github.com/google/uuid"

	"cleanroom/internal/validate"
	"cleanroom/pkg/schema"
)

// SessionState owns every collection for one cleaning session: the three
// record collections, the current findings, the rule set, and the priority
// weights. Mutation is always whole-collection replacement or whole-record
// replacement at an index, never partial field mutation of a record in
// place. Access is single-threaded and cooperative: callers must not issue a
// second mutation for a collection while one is in flight; a later call
// simply overwrites the outcome of an earlier one.
type SessionState struct {
	ID         string
	Requesters []schema.Requester
	Resources  []schema.Resource
	WorkItems  []schema.WorkItem
	Findings   []schema.Finding
	Rules      *RuleSet
	Priorities *PrioritySet
}

// NewSessionState creates an empty session.
func NewSessionState() *SessionState {
	return &SessionState{
		ID:         uuid.NewString(),
		Requesters: []schema.Requester{},
		Resources:  []schema.Resource{},
		WorkItems:  []schema.WorkItem{},
		Findings:   []schema.Finding{},
		Rules:      NewRuleSet(),
		Priorities: NewPrioritySet(),
	}
}

// Revalidate recomputes the findings list from the current collections and
// replaces it wholesale.
func (s *SessionState) Revalidate() {
	s.Findings = validate.Revalidate(s.Requesters, s.Resources, s.WorkItems)
}

// SetRequesters replaces the requester collection and refreshes findings.
func (s *SessionState) SetRequesters(requesters []schema.Requester) {
	s.Requesters = requesters
	s.Revalidate()
}

// SetResources replaces the resource collection and refreshes findings.
func (s *SessionState) SetResources(resources []schema.Resource) {
	s.Resources = resources
	s.Revalidate()
}

// SetWorkItems replaces the work item collection and refreshes findings.
func (s *SessionState) SetWorkItems(items []schema.WorkItem) {
	s.WorkItems = items
	s.Revalidate()
}

// ReplaceRequester replaces the record at index with a whole new record and
// refreshes findings.
func (s *SessionState) ReplaceRequester(index int, r schema.Requester) error {
	if index < 0 || index >= len(s.Requesters) {
		return fmt.Errorf("requester index %d out of range", index)
	}
	updated := make([]schema.Requester, len(s.Requesters))
	copy(updated, s.Requesters)
	updated[index] = r
	s.SetRequesters(updated)
	return nil
}

// ReplaceResource replaces the record at index with a whole new record and
// refreshes findings.
func (s *SessionState) ReplaceResource(index int, r schema.Resource) error {
	if index < 0 || index >= len(s.Resources) {
		return fmt.Errorf("resource index %d out of range", index)
	}
	updated := make([]schema.Resource, len(s.Resources))
	copy(updated, s.Resources)
	updated[index] = r
	s.SetResources(updated)
	return nil
}

// ReplaceWorkItem replaces the record at index with a whole new record and
// refreshes findings.
func (s *SessionState) ReplaceWorkItem(index int, item schema.WorkItem) error {
	if index < 0 || index >= len(s.WorkItems) {
		return fmt.Errorf("work item index %d out of range", index)
	}
	updated := make([]schema.WorkItem, len(s.WorkItems))
	copy(updated, s.WorkItems)
	updated[index] = item
	s.SetWorkItems(updated)
	return nil
}

// FindingCounts returns how many findings carry each severity.
func (s *SessionState) FindingCounts() (errors, warnings int) {
	for _, f := range s.Findings {
		switch f.Severity {
		case schema.SeverityError:
			errors++
		case schema.SeverityWarning:
			warnings++
		}
	}
	return errors, warnings
}

// Clone creates a deep copy of the session state.
func (s *SessionState) Clone() *SessionState {
	clone := &SessionState{
		ID:         s.ID,
		Requesters: make([]schema.Requester, len(s.Requesters)),
		Resources:  make([]schema.Resource, len(s.Resources)),
		WorkItems:  make([]schema.WorkItem, len(s.WorkItems)),
		Findings:   make([]schema.Finding, len(s.Findings)),
		Rules:      s.Rules.clone(),
		Priorities: s.Priorities.clone(),
	}

	for i, r := range s.Requesters {
		r.RequestedWorkItemIDs = append([]string(nil), r.RequestedWorkItemIDs...)
		clone.Requesters[i] = r
	}
	for i, r := range s.Resources {
		r.Skills = append([]string(nil), r.Skills...)
		r.AvailableSlots = append([]int(nil), r.AvailableSlots...)
		clone.Resources[i] = r
	}
	for i, item := range s.WorkItems {
		item.RequiredSkills = append([]string(nil), item.RequiredSkills...)
		item.PreferredPhases = append([]int(nil), item.PreferredPhases...)
		clone.WorkItems[i] = item
	}
	copy(clone.Findings, s.Findings)

	return clone
}
