// Package severity provides severity level constants for findings reported
// by the checker package.
//
// The severity levels are ordered from most to least actionable:
//   - SeverityError: a hard compatibility mismatch that fails the run
//   - SeverityWarning: a divergence worth review that does not fail the run
//   - SeverityInfo: informational notices (tracked gaps, skipped entries)
package severity

// Severity indicates the severity level of a compatibility finding.
type Severity int

const (
	// SeverityError indicates a hard compatibility mismatch. Any finding at
	// this level fails the whole check run.
	SeverityError Severity = iota

	// SeverityWarning indicates a divergence that should be reviewed but does
	// not fail the run.
	SeverityWarning

	// SeverityInfo indicates informational notices, such as open-side type
	// names absent from the hosted document (a tracked relaxation, not a
	// failure).
	SeverityInfo
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}
