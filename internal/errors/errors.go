package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrTypeNotFound ErrorType = "NOT_FOUND"
	ErrTypeSchema   ErrorType = "SCHEMA"
	ErrTypeConfig   ErrorType = "CONFIG"
	ErrTypeParsing  ErrorType = "PARSING"
	ErrTypeStorage  ErrorType = "STORAGE"
)

// AppError represents an application-specific error
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to work with AppError
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewAppError creates a new application error
func NewAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// Helper functions for common error types

// NewNotFoundError reports a missing source file or directory.
// The path identifies exactly which input is absent.
func NewNotFoundError(path string) *AppError {
	return NewAppError(ErrTypeNotFound, fmt.Sprintf("%s not found", path), nil).
		WithContext("path", path)
}

// NewSchemaError reports a required column absent from a loaded table.
func NewSchemaError(table, column string) *AppError {
	return NewAppError(ErrTypeSchema, fmt.Sprintf("required column %s missing in %s", column, table), nil).
		WithContext("table", table).
		WithContext("column", column)
}

// NewConfigError creates a configuration error
func NewConfigError(message string, cause error) *AppError {
	return NewAppError(ErrTypeConfig, message, cause)
}

// NewParsingError creates a parsing-related error
func NewParsingError(message string, cause error) *AppError {
	return NewAppError(ErrTypeParsing, message, cause)
}

// NewStorageError creates a storage-related error
func NewStorageError(message string, cause error) *AppError {
	return NewAppError(ErrTypeStorage, message, cause)
}

// IsType checks whether err is (or wraps) an AppError of the given type.
func IsType(err error, errType ErrorType) bool {
	var appErr *AppError
	if !stderrors.As(err, &appErr) {
		return false
	}
	return appErr.Type == errType
}
