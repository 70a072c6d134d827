// Package severity provides severity level constants for issues reported while
// loading and verifying database documents.
//
// The levels are ordered from least to most severe:
// Info < Warning < Error < Critical
package severity

// Severity indicates the severity level of an issue encountered while loading,
// verifying, or extracting fields from a database document.
type Severity int

const (
	// SeverityError indicates a data fault that aborts the current operation:
	// unreadable files, malformed documents, failed header checks, or required
	// fields that are missing or unparseable.
	SeverityError Severity = iota

	// SeverityWarning indicates a degraded-but-continuing condition: an
	// outdated-but-supported schema version, or an unparseable field that was
	// replaced by its default value.
	SeverityWarning

	// SeverityInfo indicates informational status, such as per-file entry
	// counts after a successful parse.
	SeverityInfo

	// SeverityCritical indicates a programmer fault rather than a data fault,
	// such as a nil output destination passed to a field accessor.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}
