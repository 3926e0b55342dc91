package domain

import (
	"context"
	"io"
)

// OutputFormat represents the supported output formats
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
	OutputFormatDOT  OutputFormat = "dot"
)

// ScanRequest represents a request for a structure scan
type ScanRequest struct {
	// Path is the source root to scan, expected to contain components/
	Path string

	// Output configuration
	OutputFormat OutputFormat
	OutputWriter io.Writer

	// SelectRules restricts evaluation to the named rules (empty = all)
	SelectRules []RuleID

	// ConfigPath is an explicit config file path (empty = discover)
	ConfigPath string
}

// StructureScanner walks a source root and produces the structure facts.
// The unit sequence is ordered lexicographically by path so repeated runs
// on an unchanged tree yield identical reports.
type StructureScanner interface {
	Scan(ctx context.Context, root string) (*StructureFacts, error)
}

// RuleEvaluator applies the heuristic rules to the collected facts.
// Rules are independent and accumulate; no rule suppresses another.
type RuleEvaluator interface {
	Evaluate(facts *StructureFacts) []Finding
}

// ReportWriter renders a scan response in the requested format
type ReportWriter interface {
	Write(response *ScanResponse, format OutputFormat, writer io.Writer) error
}

// ProgressManager manages progress reporting for long scans
type ProgressManager interface {
	// StartTask creates a new progress task with a description and total count
	StartTask(description string, total int) TaskProgress

	// IsInteractive returns true if progress bars are shown
	IsInteractive() bool

	// Close cleans up all tasks
	Close()
}

// TaskProgress tracks progress of a single task
type TaskProgress interface {
	// Increment adds n to the current progress
	Increment(n int)

	// Describe updates the current item description
	Describe(description string)

	// Complete marks the task as finished
	Complete()
}
