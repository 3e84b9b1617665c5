package core

import "fmt"

// DiagnosticCode classifies a non-fatal processing failure for reporting
type DiagnosticCode string

// Diagnostic codes produced during model building.
const (
	CodeNilLogEntry     DiagnosticCode = "nil_log_entry"
	CodeMediaUnresolved DiagnosticCode = "media_unresolved"
	CodeRenderFailed    DiagnosticCode = "render_failed"
	CodeWriteFailed     DiagnosticCode = "write_failed"
)

// Diagnostic records a non-fatal failure encountered while converting one
// unit of a report (a log entry, a media attachment, the output write).
// Builders collect diagnostics and substitute fallback values instead of
// aborting, so a single bad unit never blocks the rest of the report.
type Diagnostic struct {
	Scope   string         // Unit the failure belongs to, e.g. "test TC001"
	Code    DiagnosticCode // Machine-readable classification
	Message string         // Human-readable explanation
	Cause   error          // Underlying error, if any
}

// Error implements the error interface
func (d Diagnostic) Error() string {
	if d.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", d.Scope, d.Message, d.Cause)
	}
	return fmt.Sprintf("%s: %s", d.Scope, d.Message)
}

// Unwrap returns the underlying error for errors.Is/As support
func (d Diagnostic) Unwrap() error {
	return d.Cause
}
