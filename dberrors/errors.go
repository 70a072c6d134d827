package dberrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrParse indicates a file could not be read or parsed.
	ErrParse = errors.New("parse error")

	// ErrHeader indicates a missing or malformed database header.
	ErrHeader = errors.New("header error")

	// ErrVersion indicates an unsupported database schema version.
	ErrVersion = errors.New("version error")

	// ErrVersionTooNew indicates a database newer than the consumer supports.
	ErrVersionTooNew = errors.New("version too new")

	// ErrVersionTooOld indicates a database older than the minimum supported version.
	ErrVersionTooOld = errors.New("version too old")

	// ErrField indicates a field-level extraction failure.
	ErrField = errors.New("field error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ParseError represents a failure to read or parse a database file.
// This includes I/O errors and YAML deserialization errors.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Column is the column number where the error occurred (0 if unknown)
	Column int
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// HeaderError represents a missing or malformed database header.
// This covers a missing Header block, a missing or non-string Type field,
// a type that does not match the consumer's expectation, and a Version
// field that cannot be coerced to an unsigned integer.
type HeaderError struct {
	// Database is the schema type the consumer expected (e.g., "ITEM_DB")
	Database string
	// Field is the header field at fault ("Header", "Type", or "Version")
	Field string
	// Actual is the declared type found in the document, when it differs
	// from the expected one
	Actual string
	// Message describes the header fault
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *HeaderError) Error() string {
	msg := "header error"
	if e.Database != "" {
		msg += " for " + e.Database + " database"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Actual != "" {
		msg += fmt.Sprintf(": %s != %s", e.Database, e.Actual)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *HeaderError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *HeaderError) Is(target error) bool {
	return target == ErrHeader
}

// VersionError represents a database schema version outside the window the
// consumer supports. Versions between the minimum supported version and the
// current version are tolerated (with a staleness warning) and never produce
// a VersionError.
type VersionError struct {
	// Database is the schema type of the database being loaded
	Database string
	// Version is the version declared in the document header
	Version uint16
	// Current is the version the consumer is built against
	Current uint16
	// Minimum is the oldest version the consumer still accepts
	Minimum uint16
	// TooNew is true when the document is newer than Current,
	// false when it is older than Minimum
	TooNew bool
}

// Error returns a human-readable error message.
func (e *VersionError) Error() string {
	if e.TooNew {
		return fmt.Sprintf("database version %d is not supported: maximum version is %d", e.Version, e.Current)
	}
	return fmt.Sprintf("database version %d is not supported anymore: minimum version is %d", e.Version, e.Minimum)
}

// Unwrap returns nil as VersionError has no underlying cause.
func (e *VersionError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
// Matches ErrVersion, and also ErrVersionTooNew or ErrVersionTooOld
// depending on which bound was violated.
func (e *VersionError) Is(target error) bool {
	if target == ErrVersion {
		return true
	}
	if target == ErrVersionTooNew && e.TooNew {
		return true
	}
	if target == ErrVersionTooOld && !e.TooNew {
		return true
	}
	return false
}

// FieldError represents a failure to extract a typed field from an entry.
// This includes required fields that are absent and values that cannot be
// coerced to the requested type.
type FieldError struct {
	// Field is the name of the field at fault
	Field string
	// Line is the source line of the field, or of its parent node when the
	// field is absent (0 if unknown)
	Line int
	// Missing is true when the field was absent, false when it was present
	// but could not be coerced
	Missing bool
	// Critical is true for programmer faults (nil output destination)
	// rather than data faults
	Critical bool
	// Cause is the underlying coercion error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *FieldError) Error() string {
	if e.Critical {
		return fmt.Sprintf("no output destination was given for field %q", e.Field)
	}
	var msg string
	if e.Missing {
		msg = fmt.Sprintf("missing field %q", e.Field)
	} else {
		msg = fmt.Sprintf("unable to parse field %q", e.Field)
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" in line %d", e.Line)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *FieldError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *FieldError) Is(target error) bool {
	return target == ErrField
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required arguments, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
