package service

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ludo-technologies/atomscan/domain"
)

// ReportWriterImpl renders scan responses. The text format is free of
// timestamps and machine state, so scanning an unchanged tree twice
// produces byte-identical output.
type ReportWriterImpl struct {
	showDetails bool
}

// NewReportWriter creates a report writer. showDetails additionally lists
// per-unit facts in text output.
func NewReportWriter(showDetails bool) *ReportWriterImpl {
	return &ReportWriterImpl{showDetails: showDetails}
}

// WriteJSON writes data as indented JSON to the writer
func WriteJSON(writer io.Writer, data interface{}) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// Write renders the response in the specified format
func (f *ReportWriterImpl) Write(response *domain.ScanResponse, format domain.OutputFormat, writer io.Writer) error {
	switch format {
	case domain.OutputFormatJSON:
		return WriteJSON(writer, response)
	case domain.OutputFormatYAML:
		return f.writeYAML(response, writer)
	case domain.OutputFormatText:
		return f.writeText(response, writer)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func (f *ReportWriterImpl) writeYAML(response *domain.ScanResponse, writer io.Writer) error {
	data, err := yaml.Marshal(response)
	if err != nil {
		return err
	}
	_, err = writer.Write(data)
	return err
}

// ruleSectionTitles maps rules to their text report section headers
var ruleSectionTitles = map[domain.RuleID]string{
	domain.RuleMissingDirectory:    "Structure Issues",
	domain.RuleMissingBarrel:       "Missing Barrels",
	domain.RuleMissingTest:         "Missing Tests",
	domain.RuleLogicInComponent:    "Logic in Components",
	domain.RuleDependencyViolation: "Dependency Violations",
}

func severityIcon(s domain.Severity) string {
	if s == domain.SeverityError {
		return "✖"
	}
	return "⚠"
}

func (f *ReportWriterImpl) writeText(response *domain.ScanResponse, writer io.Writer) error {
	banner := strings.Repeat("=", 60)
	rule := strings.Repeat("-", 60)

	fmt.Fprintf(writer, "\n%s\n", banner)
	fmt.Fprintln(writer, "  ATOMIC DESIGN ANALYSIS REPORT")
	fmt.Fprintf(writer, "%s\n\n", banner)

	summary := response.Summary
	fmt.Fprintf(writer, "Components found: %d\n", summary.ComponentsFound)
	fmt.Fprintf(writer, "With tests: %d/%d\n", summary.WithTests, summary.ComponentsFound)
	fmt.Fprintf(writer, "With barrels: %d/%d\n\n", summary.WithBarrels, summary.ComponentsFound)

	if f.showDetails && len(response.Units) > 0 {
		fmt.Fprintln(writer, "Components:")
		for _, u := range response.Units {
			fmt.Fprintf(writer, "  %s [%s/%s] hooks: %d, functions: %d, imports: %d\n",
				u.Path, u.Category, u.Scope, u.HookCount, u.FunctionCount, len(u.ImportedModules))
		}
		fmt.Fprintln(writer)
	}

	if len(response.Findings) == 0 {
		fmt.Fprintf(writer, "No violations found. Your structure looks good.\n\n")
	} else {
		grouped := domain.GroupByRule(response.Findings)
		for _, ruleID := range domain.RuleOrder() {
			findings := grouped[ruleID]
			if len(findings) == 0 {
				continue
			}
			fmt.Fprintf(writer, "%s (%d)\n", ruleSectionTitles[ruleID], len(findings))
			fmt.Fprintln(writer, strings.Repeat("-", 40))
			for _, finding := range findings {
				fmt.Fprintf(writer, "  %s %s\n", severityIcon(finding.Severity), finding.TargetPath)
				fmt.Fprintf(writer, "     %s\n", finding.Message)
			}
			fmt.Fprintln(writer)
		}
	}

	fmt.Fprintf(writer, "%s\n", rule)
	fmt.Fprintf(writer, "%d error(s), %d warning(s)\n", summary.Errors, summary.Warnings)

	return nil
}
