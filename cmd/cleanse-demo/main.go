package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"

	"cleanroom/internal/core"
	"cleanroom/internal/correct"
	"cleanroom/internal/export"
	"cleanroom/internal/ingest"
)

func main() {
	cfg, err := core.LoadConfig()
	if err != nil {
		fmt.Printf("❌ Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger := core.NewLogger(cfg.LogLevel)

	dataDir := cfg.DataDir
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}
	exportDir := cfg.ExportDir
	if len(os.Args) > 2 {
		exportDir = os.Args[2]
	}

	fmt.Println("🧹 cleanroom Dataset Cleaning Demo")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println()

	state := core.NewSessionState()
	if err := loadDataset(state, dataDir); err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	logger.Info("dataset loaded",
		"requesters", len(state.Requesters),
		"resources", len(state.Resources),
		"work_items", len(state.WorkItems))

	fmt.Printf("📋 Validation: %d findings\n", len(state.Findings))
	printFindings(state)
	fmt.Println()

	offers := correct.Offers(state.Findings, len(state.Requesters))
	applied := 0
	for _, offer := range offers {
		if !offer.AutoApplicable {
			fmt.Printf("💡 %s (advisory, not applied)\n", offer.Title)
			continue
		}
		if err := correct.Apply(offer.Category, state); err != nil {
			fmt.Printf("❌ %s: %v\n", offer.Title, err)
			continue
		}
		fmt.Printf("🔧 Applied: %s (%d%% confidence)\n", offer.Title, offer.Confidence)
		applied++
	}
	fmt.Println()

	fmt.Printf("📋 After %d corrections: %d findings\n", applied, len(state.Findings))
	printFindings(state)
	fmt.Println()

	exporter := export.NewExporter(logger)
	if err := exporter.Export(state, exportDir); err != nil {
		fmt.Printf("❌ Export failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✨ Export written to %s\n", exportDir)
}

func loadDataset(state *core.SessionState, dir string) error {
	requesters, err := ingest.LoadRequestersFile(filepath.Join(dir, "requesters.csv"))
	if err != nil {
		return err
	}
	resources, err := ingest.LoadResourcesFile(filepath.Join(dir, "resources.csv"))
	if err != nil {
		return err
	}
	items, err := ingest.LoadWorkItemsFile(filepath.Join(dir, "workitems.csv"))
	if err != nil {
		return err
	}

	state.SetRequesters(requesters)
	state.SetResources(resources)
	state.SetWorkItems(items)
	return nil
}

func printFindings(state *core.SessionState) {
	if len(state.Findings) == 0 {
		fmt.Println("   (clean)")
		return
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"Severity", "Entity", "Category", "Message"})
	for _, f := range state.Findings {
		tw.AppendRow(table.Row{f.Severity, f.Entity, f.Category, f.Message})
	}
	tw.Render()

	errors, warnings := state.FindingCounts()
	fmt.Printf("   %d errors, %d warnings\n", errors, warnings)
}
