package domain

// Severity represents the importance level of a finding
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// RuleID identifies which heuristic produced a finding
type RuleID string

const (
	RuleMissingDirectory    RuleID = "missing-directory"
	RuleMissingBarrel       RuleID = "missing-barrel"
	RuleMissingTest         RuleID = "missing-test"
	RuleLogicInComponent    RuleID = "logic-in-component"
	RuleDependencyViolation RuleID = "dependency-violation"
)

// RuleOrder lists all rules in report order
func RuleOrder() []RuleID {
	return []RuleID{
		RuleMissingDirectory,
		RuleMissingBarrel,
		RuleMissingTest,
		RuleLogicInComponent,
		RuleDependencyViolation,
	}
}

// Finding is one reported issue. Findings are ephemeral, produced fresh
// each run and never persisted.
type Finding struct {
	// Severity is error or warning
	Severity Severity `json:"severity" yaml:"severity"`

	// RuleID identifies the heuristic that produced this finding
	RuleID RuleID `json:"rule_id" yaml:"rule_id"`

	// TargetPath is the offending unit or directory, relative to the
	// components root
	TargetPath string `json:"target_path" yaml:"target_path"`

	// Message is a human-readable explanation
	Message string `json:"message" yaml:"message"`
}

// IsError returns true for error-severity findings
func (f Finding) IsError() bool {
	return f.Severity == SeverityError
}

// ScanSummary provides aggregate statistics for one scan
type ScanSummary struct {
	ComponentsFound int `json:"components_found" yaml:"components_found"`
	WithTests       int `json:"with_tests" yaml:"with_tests"`
	WithBarrels     int `json:"with_barrels" yaml:"with_barrels"`
	Errors          int `json:"errors" yaml:"errors"`
	Warnings        int `json:"warnings" yaml:"warnings"`
}

// ScanResponse is the complete result of one scan
type ScanResponse struct {
	Units    []ComponentUnit `json:"units" yaml:"units"`
	Findings []Finding       `json:"findings" yaml:"findings"`
	Summary  ScanSummary     `json:"summary" yaml:"summary"`

	// Metadata
	GeneratedAt string `json:"generated_at,omitempty" yaml:"generated_at,omitempty"`
	Version     string `json:"version,omitempty" yaml:"version,omitempty"`
}

// HasErrors reports whether any error-severity finding exists
func (r *ScanResponse) HasErrors() bool {
	for _, f := range r.Findings {
		if f.IsError() {
			return true
		}
	}
	return false
}

// CountBySeverity returns the number of error and warning findings
func CountBySeverity(findings []Finding) (errors, warnings int) {
	for _, f := range findings {
		if f.IsError() {
			errors++
		} else {
			warnings++
		}
	}
	return errors, warnings
}

// GroupByRule groups findings by rule, preserving the order within each
// rule. Iterate with RuleOrder for stable output.
func GroupByRule(findings []Finding) map[RuleID][]Finding {
	grouped := make(map[RuleID][]Finding)
	for _, f := range findings {
		grouped[f.RuleID] = append(grouped[f.RuleID], f)
	}
	return grouped
}
