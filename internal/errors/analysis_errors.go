package errors

import "fmt"

// ErrorCategory represents different types of errors that can occur
type ErrorCategory string

const (
	// Fatal to the run: no partial report is produced
	ErrorCategoryIngestion  ErrorCategory = "INGESTION"
	ErrorCategoryValidation ErrorCategory = "VALIDATION"
	ErrorCategoryConfig     ErrorCategory = "CONFIG"

	// Output-side failures; the computed report itself is intact
	ErrorCategoryReport ErrorCategory = "REPORT"
)

// AnalysisError represents a categorized error with pipeline context
type AnalysisError struct {
	Category   ErrorCategory
	Component  string
	Operation  string
	Message    string
	Underlying error
}

// Error implements the error interface
func (e *AnalysisError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("[%s:%s] %s: %s: %v", e.Category, e.Component, e.Operation, e.Message, e.Underlying)
	}
	return fmt.Sprintf("[%s:%s] %s: %s", e.Category, e.Component, e.Operation, e.Message)
}

// Unwrap returns the underlying error for error unwrapping
func (e *AnalysisError) Unwrap() error {
	return e.Underlying
}

// IsFatal returns whether this error aborts the run before a report exists
func (e *AnalysisError) IsFatal() bool {
	return e.Category == ErrorCategoryIngestion ||
		e.Category == ErrorCategoryValidation ||
		e.Category == ErrorCategoryConfig
}

// New creates a new categorized analysis error
func New(category ErrorCategory, component, operation, message string) *AnalysisError {
	return &AnalysisError{
		Category:  category,
		Component: component,
		Operation: operation,
		Message:   message,
	}
}

// Wrap wraps an existing error with analysis error context
func Wrap(err error, category ErrorCategory, component, operation string) *AnalysisError {
	if err == nil {
		return nil
	}
	return &AnalysisError{
		Category:   category,
		Component:  component,
		Operation:  operation,
		Message:    "operation failed",
		Underlying: err,
	}
}
