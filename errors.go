package autoroute

import (
	"errors"
	"fmt"
)

// ErrorCategory classifies an error reported by the plugin
type ErrorCategory string

const (
	// CategoryConfig is a missing `pages` or `pageName`, raised by New
	CategoryConfig ErrorCategory = "config"
	// CategoryShape is an options value that is neither a record nor a sequence
	CategoryShape ErrorCategory = "shape"
	// CategorySynthesis is an error returned by the Synthesizer
	CategorySynthesis ErrorCategory = "synthesis"
	// CategoryFileSystem is a failed read, stat or write of an output file
	CategoryFileSystem ErrorCategory = "filesystem"
)

// ContextFields carries structured context for an Error
type ContextFields map[string]any

// Error is a structured error with a category and optional context
type Error struct {
	Category ErrorCategory
	Message  string
	Cause    error
	Context  ContextFields
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Category, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Category, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// WithContext adds a context field to the error
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

func newError(category ErrorCategory, message string) *Error {
	return &Error{Category: category, Message: message}
}

func wrapError(err error, category ErrorCategory, message string) *Error {
	return &Error{Category: category, Message: message, Cause: err}
}

// IsCategory reports whether err, or any error it wraps, is an *Error of the given category
func IsCategory(err error, category ErrorCategory) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Category == category
	}
	return false
}

// GetCategory returns the category of err, or an empty category if err is not an *Error
func GetCategory(err error) ErrorCategory {
	var e *Error
	if errors.As(err, &e) {
		return e.Category
	}
	return ""
}

func configRequired(field string, index int) *Error {
	err := newError(CategoryConfig, fmt.Sprintf("`%s` is required", field)).
		WithContext("field", field)
	if index >= 0 {
		err.WithContext("index", index)
	}
	return err
}

func configInvalid(field string, index int, reason string) *Error {
	return newError(CategoryConfig, fmt.Sprintf("`%s` is invalid: %s", field, reason)).
		WithContext("field", field).
		WithContext("index", index)
}

func shapeInvalid() *Error {
	return newError(CategoryShape, "options must be an object or an array")
}

func synthesisFailed(page string, cause error) *Error {
	return wrapError(cause, CategorySynthesis, "route synthesis failed").
		WithContext("page", page)
}

func fileSystemFailed(operation, path string, cause error) *Error {
	return wrapError(cause, CategoryFileSystem, operation+" failed").
		WithContext("path", path)
}
