package domain

import "fmt"

// Error codes for domain errors
const (
	ErrCodeInvalidInput = "INVALID_INPUT"
	ErrCodeFileNotFound = "FILE_NOT_FOUND"
	ErrCodeScanError    = "SCAN_ERROR"
	ErrCodeConfigError  = "CONFIG_ERROR"
	ErrCodeOutputError  = "OUTPUT_ERROR"
)

// DomainError represents a structured error with a code and optional cause
type DomainError struct {
	Code    string
	Message string
	Cause   error
}

// Error implements the error interface
func (e DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility
func (e DomainError) Unwrap() error {
	return e.Cause
}

// NewDomainError creates a new domain error with the given code
func NewDomainError(code, message string, cause error) error {
	return DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewInvalidInputError creates an error for invalid user input
func NewInvalidInputError(message string, cause error) error {
	return NewDomainError(ErrCodeInvalidInput, message, cause)
}

// NewFileNotFoundError creates an error for a missing file or directory
func NewFileNotFoundError(path string, cause error) error {
	return NewDomainError(ErrCodeFileNotFound, fmt.Sprintf("file not found: %s", path), cause)
}

// NewScanError creates an error for scan failures
func NewScanError(message string, cause error) error {
	return NewDomainError(ErrCodeScanError, message, cause)
}

// NewConfigError creates an error for configuration problems
func NewConfigError(message string, cause error) error {
	return NewDomainError(ErrCodeConfigError, message, cause)
}

// NewOutputError creates an error for report writing failures
func NewOutputError(message string, cause error) error {
	return NewDomainError(ErrCodeOutputError, message, cause)
}
