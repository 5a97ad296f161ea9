// Package perrors provides custom error types for Pathvana.
// These error types enable better error handling and more informative error
// messages throughout the completion engine.
package perrors

import (
	"fmt"
)

// PathvanaError is the base interface for all Pathvana errors
type PathvanaError interface {
	error
	// Code returns a unique error code for programmatic error handling
	Code() string
}

// baseError provides common functionality for all Pathvana errors
type baseError struct {
	code    string
	message string
	cause   error
}

func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *baseError) Code() string {
	return e.code
}

func (e *baseError) Unwrap() error {
	return e.cause
}

// ScanError represents errors while listing a directory's entries
type ScanError struct {
	baseError
	Dir string
}

// NewScanError creates a new scan error
func NewScanError(dir string, message string, cause error) *ScanError {
	return &ScanError{
		baseError: baseError{
			code:    "SCAN_ERROR",
			message: message,
			cause:   cause,
		},
		Dir: dir,
	}
}

// PreviewError represents errors while building a file preview
type PreviewError struct {
	baseError
	Path string
}

// NewPreviewError creates a new preview error
func NewPreviewError(path string, message string, cause error) *PreviewError {
	return &PreviewError{
		baseError: baseError{
			code:    "PREVIEW_ERROR",
			message: message,
			cause:   cause,
		},
		Path: path,
	}
}

// ConfigurationError represents a malformed caller-supplied configuration.
// This is the one error class that fails loudly: it indicates host
// misconfiguration rather than user input.
type ConfigurationError struct {
	baseError
	Field string
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(field string, message string, cause error) *ConfigurationError {
	return &ConfigurationError{
		baseError: baseError{
			code:    "CONFIG_ERROR",
			message: message,
			cause:   cause,
		},
		Field: field,
	}
}

// MappingError represents errors with a path-mapping alias entry
type MappingError struct {
	baseError
	Alias string
}

// NewMappingError creates a new mapping error
func NewMappingError(alias string, message string, cause error) *MappingError {
	return &MappingError{
		baseError: baseError{
			code:    "MAPPING_ERROR",
			message: message,
			cause:   cause,
		},
		Alias: alias,
	}
}
