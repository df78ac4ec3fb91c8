package schema

// EntityKind identifies which of the three record collections a value belongs to.
type EntityKind string

const (
	EntityRequester EntityKind = "requester" // entities requesting work items
	EntityResource  EntityKind = "resource"  // entities with skills and capacity slots
	EntityWorkItem  EntityKind = "workitem"  // units of work with duration and skill needs
)

// Severity represents how serious a finding is. Severity is advisory to the
// user; nothing in the engine blocks on it.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// FindingCategory classifies a validation finding.
type FindingCategory string

const (
	FindingDuplicateID        FindingCategory = "duplicate-id"
	FindingMissingField       FindingCategory = "missing-field"
	FindingOutOfRange         FindingCategory = "out-of-range"
	FindingPriorityOutOfRange FindingCategory = "priority-out-of-range"
	FindingDurationOutOfRange FindingCategory = "duration-out-of-range"
	FindingMalformedText      FindingCategory = "malformed-structured-text"
	FindingResourceOverload   FindingCategory = "resource-overload"
	FindingUnknownReference   FindingCategory = "unknown-reference"
	FindingSkillCoverageGap   FindingCategory = "skill-coverage-gap"
)

// RuleKind represents the kind of an allocation rule.
type RuleKind string

const (
	RuleCoRun           RuleKind = "co-run"           // work items that must run together
	RuleSlotRestriction RuleKind = "slot-restriction" // limit common slots for groups
	RuleLoadLimit       RuleKind = "load-limit"       // maximum slots per phase for resources
	RulePhaseWindow     RuleKind = "phase-window"     // allowed phases for specific work items
	RulePatternMatch    RuleKind = "pattern-match"    // regex-based rule matching
	RulePrecedence      RuleKind = "precedence"       // rule priority ordering
)

// ValidationLimits defines the constraints for various fields.
const (
	PriorityLevelMin       = 1
	PriorityLevelMax       = 5
	SlotMin                = 1
	SlotMax                = 10
	DurationMin            = 1
	MaxConcurrentMin       = 1
	MaxLoadPerPhaseMin     = 1
	MaxKnownWorkItemNumber = 50
	BalancedTolerance      = 0.01
)
