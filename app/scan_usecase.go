// Package app contains the use cases wiring scanner, evaluator and report
// writer together.
package app

import (
	"context"
	"time"

	"github.com/ludo-technologies/atomscan/domain"
	"github.com/ludo-technologies/atomscan/internal/version"
)

// ScanUseCase orchestrates one scan: Scanner → Evaluator → Renderer,
// executed once per invocation with no state across runs.
type ScanUseCase struct {
	scanner    domain.StructureScanner
	evaluator  domain.RuleEvaluator
	writer     domain.ReportWriter
	fileHelper *FileHelper
}

// NewScanUseCase creates a new scan use case
func NewScanUseCase(
	scanner domain.StructureScanner,
	evaluator domain.RuleEvaluator,
	writer domain.ReportWriter,
) *ScanUseCase {
	return &ScanUseCase{
		scanner:    scanner,
		evaluator:  evaluator,
		writer:     writer,
		fileHelper: NewFileHelper(),
	}
}

// Execute scans the requested root, evaluates the rules and, when the
// request carries an output writer, renders the report. The response is
// returned either way so callers can derive the exit code.
func (uc *ScanUseCase) Execute(ctx context.Context, req domain.ScanRequest) (*domain.ScanResponse, error) {
	if req.Path == "" {
		return nil, domain.NewInvalidInputError("no scan path specified", nil)
	}

	exists, err := uc.fileHelper.DirExists(req.Path)
	if err != nil {
		return nil, domain.NewScanError("cannot access scan path", err)
	}
	if !exists {
		return nil, domain.NewFileNotFoundError(req.Path, nil)
	}

	facts, err := uc.scanner.Scan(ctx, req.Path)
	if err != nil {
		return nil, err
	}

	findings := uc.evaluator.Evaluate(facts)

	response := &domain.ScanResponse{
		Units:       facts.Units,
		Findings:    findings,
		Summary:     buildSummary(facts.Units, findings),
		GeneratedAt: time.Now().Format(time.RFC3339),
		Version:     version.Version,
	}

	if req.OutputWriter != nil {
		format := req.OutputFormat
		if format == "" {
			format = domain.OutputFormatText
		}
		if err := uc.writer.Write(response, format, req.OutputWriter); err != nil {
			return nil, domain.NewOutputError("failed to write report", err)
		}
	}

	return response, nil
}

func buildSummary(units []domain.ComponentUnit, findings []domain.Finding) domain.ScanSummary {
	summary := domain.ScanSummary{
		ComponentsFound: len(units),
	}
	for _, u := range units {
		if u.HasTest {
			summary.WithTests++
		}
		if u.HasBarrel {
			summary.WithBarrels++
		}
	}
	summary.Errors, summary.Warnings = domain.CountBySeverity(findings)
	return summary
}
