package schema

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestNewRuleID(t *testing.T) {
	id, err := NewRuleID()
	if err != nil {
		t.Fatalf("Failed to generate rule ID: %v", err)
	}
	if !strings.HasPrefix(id, "RULE-") {
		t.Errorf("Rule ID should start with RULE-, got %s", id)
	}
	if len(strings.TrimPrefix(id, "RULE-")) != 10 {
		t.Errorf("Nanoid portion should be 10 characters, got %s", id)
	}
}

func TestRuleIDCollisionResistance(t *testing.T) {
	ids := make(map[string]bool)
	for i := 0; i < 10000; i++ {
		id, err := NewRuleID()
		if err != nil {
			t.Fatalf("Failed to generate ID: %v", err)
		}
		if ids[id] {
			t.Fatalf("Collision detected after %d iterations: %s", i, id)
		}
		ids[id] = true
	}
}

func TestFindingIDStable(t *testing.T) {
	a := FindingID(EntityRequester, 3, FindingDuplicateID)
	b := FindingID(EntityRequester, 3, FindingDuplicateID)
	if a != b {
		t.Errorf("Finding IDs for identical inputs differ: %s vs %s", a, b)
	}
	if a != "requester-3-duplicate-id" {
		t.Errorf("Unexpected finding ID: %s", a)
	}
	if FindingID(EntityResource, 3, FindingDuplicateID) == a {
		t.Error("Finding IDs should differ across entities")
	}
}

func TestCanonicalWorkItemID(t *testing.T) {
	cases := []struct {
		id   string
		want bool
	}{
		{"T1", true},
		{"T50", true},
		{"T51", false},
		{"T99", false},
		{"TX", false},
		{"T1X", false},
		{"W5", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := CanonicalWorkItemID(tc.id); got != tc.want {
			t.Errorf("CanonicalWorkItemID(%q) = %v, want %v", tc.id, got, tc.want)
		}
	}
}

func TestSuspectWorkItemID(t *testing.T) {
	cases := []struct {
		id   string
		want bool
	}{
		{"T1", false},
		{"T50", false},
		{"TX", true},
		{"T99", true},
		{"T60", true},
		{"T51", true},
		{"ITEM-7", false},
	}
	for _, tc := range cases {
		if got := SuspectWorkItemID(tc.id); got != tc.want {
			t.Errorf("SuspectWorkItemID(%q) = %v, want %v", tc.id, got, tc.want)
		}
	}
}

func TestDefaultPriorityWeights(t *testing.T) {
	weights := DefaultPriorityWeights()
	if len(weights) != 5 {
		t.Fatalf("Expected 5 canonical criteria, got %d", len(weights))
	}

	total := 0.0
	for _, w := range weights {
		if w.Weight < 0 || w.Weight > 1 {
			t.Errorf("Weight %s out of [0,1]: %f", w.ID, w.Weight)
		}
		total += w.Weight
	}
	if math.Abs(total-1.0) >= BalancedTolerance {
		t.Errorf("Default weights should be balanced, total %f", total)
	}
}

func TestRequesterMarshaling(t *testing.T) {
	requester := Requester{
		ClientID:             "C1",
		Name:                 "Acme",
		PriorityLevel:        3,
		RequestedWorkItemIDs: []string{"T1", "T2"},
		GroupTag:             "Premium",
		AttributesText:       `{"region": "North"}`,
	}

	jsonData, err := json.Marshal(requester)
	if err != nil {
		t.Fatalf("Failed to marshal requester to JSON: %v", err)
	}
	// JSON keys keep the original tabular column names.
	if !strings.Contains(string(jsonData), `"RequestedTaskIDs"`) {
		t.Errorf("JSON should use RequestedTaskIDs column name, got %s", jsonData)
	}

	var fromJSON Requester
	if err := json.Unmarshal(jsonData, &fromJSON); err != nil {
		t.Fatalf("Failed to unmarshal requester from JSON: %v", err)
	}
	if fromJSON.ClientID != requester.ClientID {
		t.Errorf("ClientID mismatch: got %s, want %s", fromJSON.ClientID, requester.ClientID)
	}

	yamlData, err := yaml.Marshal(requester)
	if err != nil {
		t.Fatalf("Failed to marshal requester to YAML: %v", err)
	}
	var fromYAML Requester
	if err := yaml.Unmarshal(yamlData, &fromYAML); err != nil {
		t.Fatalf("Failed to unmarshal requester from YAML: %v", err)
	}
	if len(fromYAML.RequestedWorkItemIDs) != 2 {
		t.Errorf("RequestedWorkItemIDs lost in YAML round trip: %v", fromYAML.RequestedWorkItemIDs)
	}
}

func TestRuleMarshaling(t *testing.T) {
	rule := Rule{
		ID:          "RULE-abc123",
		Kind:        RuleLoadLimit,
		Name:        "Load Limit Rule",
		Description: "Limit worker group load",
		Parameters:  map[string]any{"workerGroup": "All", "maxSlots": 5},
		Active:      true,
	}

	data, err := json.Marshal(rule)
	if err != nil {
		t.Fatalf("Failed to marshal rule: %v", err)
	}

	var decoded Rule
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal rule: %v", err)
	}
	if decoded.Kind != RuleLoadLimit {
		t.Errorf("Kind mismatch: got %s, want %s", decoded.Kind, RuleLoadLimit)
	}
	if decoded.Parameters["workerGroup"] != "All" {
		t.Errorf("Parameters lost in round trip: %v", decoded.Parameters)
	}
}
