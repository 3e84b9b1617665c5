package core

import "strings"

// Status represents the outcome of a log entry or a test case
type Status int

const (
	StatusUnknown Status = iota // Zero value, never valid for logging
	StatusPass                  // Verification succeeded
	StatusFail                  // Assertion failed or an error was captured
	StatusSkip                  // Step or test was deliberately not executed
	StatusInfo                  // Contextual message, does not affect the outcome
)

// String returns the string representation of Status
func (s Status) String() string {
	switch s {
	case StatusPass:
		return "PASS"
	case StatusFail:
		return "FAIL"
	case StatusSkip:
		return "SKIP"
	case StatusInfo:
		return "INFO"
	default:
		return "UNKNOWN"
	}
}

// IsValid returns true if the status is one of the four loggable values
func (s Status) IsValid() bool {
	switch s {
	case StatusPass, StatusFail, StatusSkip, StatusInfo:
		return true
	default:
		return false
	}
}

// ParseStatus maps free text to a Status. Matching is case-insensitive;
// blank or unrecognized input falls back to StatusInfo so that a bad status
// string never aborts report generation.
func ParseStatus(text string) Status {
	switch strings.ToUpper(strings.TrimSpace(text)) {
	case "PASS":
		return StatusPass
	case "FAIL":
		return StatusFail
	case "SKIP":
		return StatusSkip
	case "INFO":
		return StatusInfo
	default:
		return StatusInfo
	}
}

// Derive computes the aggregate status for a sequence of entry statuses.
// Precedence is FAIL over SKIP over PASS; INFO entries never change the
// outcome, so a sequence containing only INFO derives PASS. An empty
// sequence derives SKIP: a test with no logged steps is reported skipped,
// not passed.
func Derive(statuses []Status) Status {
	if len(statuses) == 0 {
		return StatusSkip
	}

	hasSkip := false
	for _, s := range statuses {
		switch s {
		case StatusFail:
			return StatusFail
		case StatusSkip:
			hasSkip = true
		}
	}

	if hasSkip {
		return StatusSkip
	}
	return StatusPass
}
