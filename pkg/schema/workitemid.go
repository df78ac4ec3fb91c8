package schema

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	workItemIDPattern = regexp.MustCompile(`^T\d+$`)
	digitRun          = regexp.MustCompile(`\d+`)
)

// CanonicalWorkItemID reports whether id follows the dataset's "T" + digits
// convention with a numeric suffix no greater than MaxKnownWorkItemNumber.
// The numeric cap is an artifact of the sample dataset, not a portable
// business rule; the authoritative check is membership in the work item
// collection.
func CanonicalWorkItemID(id string) bool {
	if !workItemIDPattern.MatchString(id) {
		return false
	}
	n, err := strconv.Atoi(id[1:])
	return err == nil && n <= MaxKnownWorkItemNumber
}

// SuspectWorkItemID reports whether id trips the malformed-reference
// heuristic: a literal "X" token, or any digit run above
// MaxKnownWorkItemNumber. Same dataset-specific caveat as
// CanonicalWorkItemID.
func SuspectWorkItemID(id string) bool {
	if strings.Contains(id, "X") {
		return true
	}
	if run := digitRun.FindString(id); run != "" {
		if n, err := strconv.Atoi(run); err == nil && n > MaxKnownWorkItemNumber {
			return true
		}
	}
	return false
}
