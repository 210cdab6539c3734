package manifest

import "fmt"

// ManifestErrorType represents the type of manifest error.
type ManifestErrorType int

const (
	// ManifestParseFailed indicates the manifest is not valid JSON.
	ManifestParseFailed ManifestErrorType = iota
	// ManifestReadFailed indicates the manifest exists but could not be read.
	ManifestReadFailed
	// ManifestWriteFailed indicates the merged manifest could not be written.
	ManifestWriteFailed
)

// ManifestError represents a dependency-manifest error.
type ManifestError struct {
	// Type is the error type.
	Type ManifestErrorType
	// Message is the error message.
	Message string
	// File is the manifest file path.
	File string
	// Cause is the underlying error if any.
	Cause error
}

// Error implements the error interface.
func (e *ManifestError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("manifest error in %s: %s: %v", e.File, e.Message, e.Cause)
	}
	return fmt.Sprintf("manifest error in %s: %s", e.File, e.Message)
}

// Unwrap returns the underlying cause error.
func (e *ManifestError) Unwrap() error {
	return e.Cause
}

// NewManifestError creates a new ManifestError.
func NewManifestError(typ ManifestErrorType, file, message string, cause error) *ManifestError {
	return &ManifestError{
		Type:    typ,
		File:    file,
		Message: message,
		Cause:   cause,
	}
}
