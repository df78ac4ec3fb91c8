package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cleanroom/internal/core"
	"cleanroom/pkg/schema"
)

func sampleState(t *testing.T) *core.SessionState {
	t.Helper()
	state := core.NewSessionState()
	state.SetWorkItems([]schema.WorkItem{
		{TaskID: "T1", Name: "Weld frame", Category: "build", Duration: 2,
			RequiredSkills: []string{"welding"}, PreferredPhases: []int{1, 2}, MaxConcurrent: 1},
	})
	state.SetResources([]schema.Resource{
		{WorkerID: "W1", Name: "Ann", Skills: []string{"welding", "rigging"},
			AvailableSlots: []int{1, 2, 3}, MaxLoadPerPhase: 2, GroupTag: "Alpha", QualificationLevel: 4},
	})
	state.SetRequesters([]schema.Requester{
		{ClientID: "C1", Name: "Acme, Inc", PriorityLevel: 3,
			RequestedWorkItemIDs: []string{"T1"}, GroupTag: "Premium"},
	})
	return state
}

func TestExportWritesPackage(t *testing.T) {
	state := sampleState(t)
	_, err := state.Rules.Create(schema.RuleCoRun, "Pair", "", nil)
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "out")
	exporter := NewExporter(nil)
	require.NoError(t, exporter.Export(state, dir))

	for _, name := range []string{
		"requesters_cleaned.csv",
		"resources_cleaned.csv",
		"workitems_cleaned.csv",
		"rules_config.json",
	} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, "expected %s in export package", name)
	}
}

func TestCSVListFieldsAreQuoted(t *testing.T) {
	state := sampleState(t)
	dir := t.TempDir()
	require.NoError(t, NewExporter(nil).Export(state, dir))

	data, err := os.ReadFile(filepath.Join(dir, "resources_cleaned.csv"))
	require.NoError(t, err)
	lines := strings.Split(string(data), "\n")
	require.Len(t, lines, 2)

	assert.Equal(t, "WorkerID,WorkerName,Skills,AvailableSlots,MaxLoadPerPhase,WorkerGroup,QualificationLevel", lines[0])
	assert.Equal(t, `W1,Ann,"welding, rigging","1, 2, 3",2,Alpha,4`, lines[1])
}

func TestCSVQuotesCommaValues(t *testing.T) {
	state := sampleState(t)
	dir := t.TempDir()
	require.NoError(t, NewExporter(nil).Export(state, dir))

	data, err := os.ReadFile(filepath.Join(dir, "requesters_cleaned.csv"))
	require.NoError(t, err)
	// A plain string cell containing a comma gets quoted.
	assert.Contains(t, string(data), `"Acme, Inc"`)
}

func TestBuildConfig(t *testing.T) {
	state := sampleState(t)
	active, err := state.Rules.Create(schema.RuleCoRun, "Keep", "", nil)
	require.NoError(t, err)
	dropped, err := state.Rules.Create(schema.RuleLoadLimit, "Drop", "", nil)
	require.NoError(t, err)
	off := false
	require.NoError(t, state.Rules.Update(dropped.ID, core.RulePatch{Active: &off}))

	cfg := BuildConfig(state)

	// Only active rules are exported; the priority vector is complete.
	require.Len(t, cfg.Rules, 1)
	assert.Equal(t, active.ID, cfg.Rules[0].ID)
	assert.Len(t, cfg.Priorities, 5)

	assert.NotEmpty(t, cfg.Metadata.ExportID)
	assert.False(t, cfg.Metadata.ExportDate.IsZero())
	assert.Equal(t, 1, cfg.Metadata.TotalRequesters)
	assert.Equal(t, 1, cfg.Metadata.TotalResources)
	assert.Equal(t, 1, cfg.Metadata.TotalWorkItems)
	assert.Equal(t, len(state.Findings), cfg.Metadata.RemainingFindings)
}

func TestConfigRoundTripJSONAndYAML(t *testing.T) {
	state := sampleState(t)
	_, err := state.Rules.Create(schema.RulePhaseWindow, "Window", "phases 1-3", nil)
	require.NoError(t, err)
	cfg := BuildConfig(state)

	dir := t.TempDir()
	for _, name := range []string{"config.json", "config.yaml"} {
		path := filepath.Join(dir, name)
		require.NoError(t, SaveConfig(cfg, path))

		loaded, err := LoadConfig(path)
		require.NoError(t, err)
		require.Len(t, loaded.Rules, 1)
		assert.Equal(t, cfg.Rules[0].ID, loaded.Rules[0].ID)
		assert.Equal(t, cfg.Metadata.ExportID, loaded.Metadata.ExportID)
		assert.Len(t, loaded.Priorities, 5)
	}
}

func TestSaveConfigUnsupportedFormat(t *testing.T) {
	cfg := BuildConfig(core.NewSessionState())
	err := SaveConfig(cfg, filepath.Join(t.TempDir(), "config.toml"))

	var eerr *core.ExportError
	require.ErrorAs(t, err, &eerr)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))

	var eerr *core.ExportError
	require.ErrorAs(t, err, &eerr)
}
