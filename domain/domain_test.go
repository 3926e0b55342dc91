package domain

import (
	"errors"
	"testing"
)

// Error tests

func TestDomainError_Error(t *testing.T) {
	// Without cause
	err := DomainError{
		Code:    "TEST_ERROR",
		Message: "Test message",
	}
	expected := "[TEST_ERROR] Test message"
	if err.Error() != expected {
		t.Errorf("Expected '%s', got '%s'", expected, err.Error())
	}

	// With cause
	cause := errors.New("underlying error")
	errWithCause := DomainError{
		Code:    "TEST_ERROR",
		Message: "Test message",
		Cause:   cause,
	}
	expectedWithCause := "[TEST_ERROR] Test message: underlying error"
	if errWithCause.Error() != expectedWithCause {
		t.Errorf("Expected '%s', got '%s'", expectedWithCause, errWithCause.Error())
	}
}

func TestDomainError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := DomainError{
		Code:    "TEST_ERROR",
		Message: "Test message",
		Cause:   cause,
	}

	if err.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}

	errNoCause := DomainError{
		Code:    "TEST_ERROR",
		Message: "Test message",
	}
	if errNoCause.Unwrap() != nil {
		t.Error("Unwrap should return nil when no cause")
	}
}

func TestNewDomainError(t *testing.T) {
	cause := errors.New("cause")
	err := NewDomainError("CODE", "message", cause)

	domainErr, ok := err.(DomainError)
	if !ok {
		t.Fatal("Should return DomainError type")
	}
	if domainErr.Code != "CODE" {
		t.Errorf("Expected code 'CODE', got '%s'", domainErr.Code)
	}
	if domainErr.Message != "message" {
		t.Errorf("Expected message 'message', got '%s'", domainErr.Message)
	}
	if domainErr.Cause != cause {
		t.Error("Cause should be set")
	}
}

func TestNewFileNotFoundError(t *testing.T) {
	err := NewFileNotFoundError("/path/to/src", nil)

	domainErr := err.(DomainError)
	if domainErr.Code != ErrCodeFileNotFound {
		t.Errorf("Expected code '%s', got '%s'", ErrCodeFileNotFound, domainErr.Code)
	}
	if domainErr.Message != "file not found: /path/to/src" {
		t.Errorf("Unexpected message: %s", domainErr.Message)
	}
}

func TestNewScanError(t *testing.T) {
	err := NewScanError("scan failed", nil)

	domainErr := err.(DomainError)
	if domainErr.Code != ErrCodeScanError {
		t.Errorf("Expected code '%s', got '%s'", ErrCodeScanError, domainErr.Code)
	}
}

func TestNewConfigError(t *testing.T) {
	err := NewConfigError("invalid config", nil)

	domainErr := err.(DomainError)
	if domainErr.Code != ErrCodeConfigError {
		t.Errorf("Expected code '%s', got '%s'", ErrCodeConfigError, domainErr.Code)
	}
}

// Finding tests

func TestCountBySeverity(t *testing.T) {
	findings := []Finding{
		{Severity: SeverityError, RuleID: RuleDependencyViolation},
		{Severity: SeverityWarning, RuleID: RuleMissingBarrel},
		{Severity: SeverityWarning, RuleID: RuleMissingTest},
	}

	errorCount, warningCount := CountBySeverity(findings)
	if errorCount != 1 {
		t.Errorf("Expected 1 error, got %d", errorCount)
	}
	if warningCount != 2 {
		t.Errorf("Expected 2 warnings, got %d", warningCount)
	}
}

func TestCountBySeverity_Empty(t *testing.T) {
	errorCount, warningCount := CountBySeverity(nil)
	if errorCount != 0 || warningCount != 0 {
		t.Errorf("Expected 0/0, got %d/%d", errorCount, warningCount)
	}
}

func TestScanResponse_HasErrors(t *testing.T) {
	resp := &ScanResponse{
		Findings: []Finding{
			{Severity: SeverityWarning, RuleID: RuleMissingTest},
		},
	}
	if resp.HasErrors() {
		t.Error("Warnings alone should not count as errors")
	}

	resp.Findings = append(resp.Findings, Finding{Severity: SeverityError, RuleID: RuleMissingDirectory})
	if !resp.HasErrors() {
		t.Error("Error finding should be detected")
	}
}

func TestGroupByRule(t *testing.T) {
	findings := []Finding{
		{RuleID: RuleMissingBarrel, TargetPath: "atoms/Button"},
		{RuleID: RuleMissingTest, TargetPath: "atoms/Button"},
		{RuleID: RuleMissingBarrel, TargetPath: "atoms/Input"},
	}

	grouped := GroupByRule(findings)
	if len(grouped[RuleMissingBarrel]) != 2 {
		t.Errorf("Expected 2 missing-barrel findings, got %d", len(grouped[RuleMissingBarrel]))
	}
	if len(grouped[RuleMissingTest]) != 1 {
		t.Errorf("Expected 1 missing-test finding, got %d", len(grouped[RuleMissingTest]))
	}

	// Order within a rule is preserved
	if grouped[RuleMissingBarrel][0].TargetPath != "atoms/Button" {
		t.Error("Grouping should preserve finding order within a rule")
	}
}

func TestStructureFacts_UnitsInCategory(t *testing.T) {
	facts := &StructureFacts{
		Units: []ComponentUnit{
			{Name: "Button", Category: CategoryAtom},
			{Name: "SearchBar", Category: CategoryMolecule},
			{Name: "Input", Category: CategoryAtom},
		},
	}

	atoms := facts.UnitsInCategory(CategoryAtom)
	if len(atoms) != 2 {
		t.Fatalf("Expected 2 atoms, got %d", len(atoms))
	}
	if atoms[0].Name != "Button" || atoms[1].Name != "Input" {
		t.Error("UnitsInCategory should preserve unit order")
	}
}
