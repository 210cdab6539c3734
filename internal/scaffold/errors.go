package scaffold

import "fmt"

// ScaffoldErrorType represents the type of scaffold error.
type ScaffoldErrorType int

const (
	// ValidationFailed indicates the run inputs were invalid.
	ValidationFailed ScaffoldErrorType = iota
	// WorkspaceFailed indicates the temporary workspace could not be created.
	WorkspaceFailed
	// GenerateFailed indicates the external generator failed.
	GenerateFailed
	// AugmentFailed indicates the dependency merge failed.
	AugmentFailed
	// ProvisionFailed indicates package installation failed.
	ProvisionFailed
	// CaptureFailed indicates the generated tree could not be captured.
	CaptureFailed
)

// ScaffoldError represents a scaffold-run error.
type ScaffoldError struct {
	// Type is the error type.
	Type ScaffoldErrorType
	// Message is the error message.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error returns the error message.
func (e *ScaffoldError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ScaffoldError) Unwrap() error {
	return e.Cause
}

// NewScaffoldError creates a new ScaffoldError.
func NewScaffoldError(errType ScaffoldErrorType, message string, cause error) *ScaffoldError {
	return &ScaffoldError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// NewValidationError creates a validation error.
func NewValidationError(message string, cause error) *ScaffoldError {
	return NewScaffoldError(ValidationFailed, message, cause)
}

// NewWorkspaceError creates a workspace error.
func NewWorkspaceError(message string, cause error) *ScaffoldError {
	return NewScaffoldError(WorkspaceFailed, message, cause)
}

// NewGenerateError creates a generate error.
func NewGenerateError(message string, cause error) *ScaffoldError {
	return NewScaffoldError(GenerateFailed, message, cause)
}

// NewAugmentError creates an augment error.
func NewAugmentError(message string, cause error) *ScaffoldError {
	return NewScaffoldError(AugmentFailed, message, cause)
}

// NewProvisionError creates a provision error.
func NewProvisionError(message string, cause error) *ScaffoldError {
	return NewScaffoldError(ProvisionFailed, message, cause)
}

// NewCaptureError creates a capture error.
func NewCaptureError(message string, cause error) *ScaffoldError {
	return NewScaffoldError(CaptureFailed, message, cause)
}
