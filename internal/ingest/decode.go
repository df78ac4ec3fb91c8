package ingest

import "cleanroom/pkg/schema"

// The decode helpers map coerced rows onto typed records. Column names follow
// the upload format's headers (ClientID, WorkerName, ...), which differ from
// the Go field names.

// DecodeRequesters converts coerced rows into requester records.
func DecodeRequesters(rows []Row) []schema.Requester {
	out := make([]schema.Requester, 0, len(rows))
	for _, row := range rows {
		out = append(out, schema.Requester{
			ClientID:             stringAt(row, "ClientID"),
			Name:                 stringAt(row, "ClientName"),
			PriorityLevel:        intAt(row, "PriorityLevel"),
			RequestedWorkItemIDs: stringsAt(row, "RequestedTaskIDs"),
			GroupTag:             stringAt(row, "GroupTag"),
			AttributesText:       stringAt(row, "AttributesJSON"),
		})
	}
	return out
}

// DecodeResources converts coerced rows into resource records.
func DecodeResources(rows []Row) []schema.Resource {
	out := make([]schema.Resource, 0, len(rows))
	for _, row := range rows {
		out = append(out, schema.Resource{
			WorkerID:           stringAt(row, "WorkerID"),
			Name:               stringAt(row, "WorkerName"),
			Skills:             stringsAt(row, "Skills"),
			AvailableSlots:     intsAt(row, "AvailableSlots"),
			MaxLoadPerPhase:    intAt(row, "MaxLoadPerPhase"),
			GroupTag:           stringAt(row, "WorkerGroup"),
			QualificationLevel: intAt(row, "QualificationLevel"),
		})
	}
	return out
}

// DecodeWorkItems converts coerced rows into work item records.
func DecodeWorkItems(rows []Row) []schema.WorkItem {
	out := make([]schema.WorkItem, 0, len(rows))
	for _, row := range rows {
		out = append(out, schema.WorkItem{
			TaskID:          stringAt(row, "TaskID"),
			Name:            stringAt(row, "TaskName"),
			Category:        stringAt(row, "Category"),
			Duration:        intAt(row, "Duration"),
			RequiredSkills:  stringsAt(row, "RequiredSkills"),
			PreferredPhases: intsAt(row, "PreferredPhases"),
			MaxConcurrent:   intAt(row, "MaxConcurrent"),
		})
	}
	return out
}

// LoadRequestersFile parses and decodes a requester dataset file.
func LoadRequestersFile(path string) ([]schema.Requester, error) {
	rows, err := ParseFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeRequesters(rows), nil
}

// LoadResourcesFile parses and decodes a resource dataset file.
func LoadResourcesFile(path string) ([]schema.Resource, error) {
	rows, err := ParseFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeResources(rows), nil
}

// LoadWorkItemsFile parses and decodes a work item dataset file.
func LoadWorkItemsFile(path string) ([]schema.WorkItem, error) {
	rows, err := ParseFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeWorkItems(rows), nil
}

func stringAt(row Row, key string) string {
	if v, ok := row[key].(string); ok {
		return v
	}
	return ""
}

func intAt(row Row, key string) int {
	if v, ok := row[key].(int); ok {
		return v
	}
	return 0
}

func stringsAt(row Row, key string) []string {
	if v, ok := row[key].([]string); ok {
		return v
	}
	return []string{}
}

func intsAt(row Row, key string) []int {
	if v, ok := row[key].([]int); ok {
		return v
	}
	return []int{}
}
