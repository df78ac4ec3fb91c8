// Package ingest decodes tabular dataset files into typed records. It is the
// coercion boundary: loosely-typed cell text is converted per column header
// here, so nothing downstream ever sees an untyped value.
package ingest

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"cleanroom/internal/core"
)

// Row is one decoded record: column header to coerced value. Values are one
// of string, int, []string, or []int depending on the header.
type Row map[string]any

// Column headers that coerce to lists of strings.
var stringListColumns = map[string]bool{
	"RequestedTaskIDs": true,
	"Skills":           true,
	"RequiredSkills":   true,
}

// Column headers that coerce to lists of ints. Accepts comma-separated,
// bracketed ("[1,2,3]"), and hyphen-range ("1-3") forms.
var intListColumns = map[string]bool{
	"AvailableSlots":  true,
	"PreferredPhases": true,
}

// Column headers that coerce to ints, defaulting to 0 on parse failure.
var intColumns = map[string]bool{
	"PriorityLevel":      true,
	"MaxLoadPerPhase":    true,
	"Duration":           true,
	"MaxConcurrent":      true,
	"QualificationLevel": true,
}

// ParseFile reads a tabular dataset file and returns its coerced rows. Only
// CSV is supported; any other extension is an operational error.
func ParseFile(path string) ([]Row, error) {
	if strings.ToLower(filepath.Ext(path)) != ".csv" {
		return nil, &core.IngestError{Path: path, Message: "unsupported file format"}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &core.IngestError{Path: path, Message: "open file", Err: err}
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, &core.IngestError{Path: path, Message: "decode csv", Err: err}
	}

	if len(records) < 2 {
		return nil, &core.IngestError{Path: path, Message: "file must contain headers and at least one data row"}
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
	}

	rows := []Row{}
	for _, record := range records[1:] {
		// Rows with a mismatched column count are skipped, not fatal.
		if len(record) != len(headers) {
			continue
		}
		row := Row{}
		for i, header := range headers {
			row[header] = coerceValue(strings.TrimSpace(record[i]), header)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// coerceValue converts one cell's text per its column header.
func coerceValue(value, header string) any {
	switch {
	case stringListColumns[header]:
		return splitStrings(value)
	case intListColumns[header]:
		return parseIntList(value)
	case intColumns[header]:
		n, err := strconv.Atoi(value)
		if err != nil {
			return 0
		}
		return n
	default:
		return value
	}
}

func splitStrings(value string) []string {
	if value == "" {
		return []string{}
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

// parseIntList handles "[1,2,3]", "1-3", and "1,2,3" forms. Unparseable
// entries are dropped rather than failing the row.
func parseIntList(value string) []int {
	if strings.HasPrefix(value, "[") && strings.HasSuffix(value, "]") {
		return splitInts(value[1 : len(value)-1])
	}

	if strings.Contains(value, "-") {
		bounds := strings.SplitN(value, "-", 2)
		start, errA := strconv.Atoi(strings.TrimSpace(bounds[0]))
		end, errB := strconv.Atoi(strings.TrimSpace(bounds[1]))
		if errA == nil && errB == nil {
			out := []int{}
			for n := start; n <= end; n++ {
				out = append(out, n)
			}
			return out
		}
	}

	return splitInts(value)
}

func splitInts(value string) []int {
	out := []int{}
	if value == "" {
		return out
	}
	for _, p := range strings.Split(value, ",") {
		if n, err := strconv.Atoi(strings.TrimSpace(p)); err == nil {
			out = append(out, n)
		}
	}
	return out
}
