package report

import (
	"strings"
	"time"

	"github.com/visionlab-dev/vision-report/pkg/core"
)

// Placeholders substituted for blank log fields.
const (
	unnamedStepName      = "[Unnamed Step]"
	noDetailsPlaceholder = "[No details provided]"
)

const logTimestampLayout = "03:04:05 PM"

// Log is one immutable recorded step within a test case. Instances are
// created exclusively by Test's logging methods and never mutated after
// creation.
type Log struct {
	timestamp string // Time of day at creation, "03:04:05 PM"
	status    core.Status
	name      string
	details   string
	media     *Media
	err       error
	stack     string // Formatted stack captured when err was recorded
}

func newLog(status core.Status, name, details string, media *Media, err error, stack string) *Log {
	if !status.IsValid() {
		status = core.StatusInfo
	}
	return &Log{
		timestamp: time.Now().Format(logTimestampLayout),
		status:    status,
		name:      defaultIfBlank(name, unnamedStepName),
		details:   defaultIfBlank(details, noDetailsPlaceholder),
		media:     media,
		err:       err,
		stack:     stack,
	}
}

// Timestamp returns the formatted time of day this entry was recorded.
func (l *Log) Timestamp() string { return l.timestamp }

// Status returns the entry's status.
func (l *Log) Status() core.Status { return l.status }

// Name returns the step name, guaranteed non-empty.
func (l *Log) Name() string { return l.name }

// Details returns the step details, guaranteed non-empty.
func (l *Log) Details() string { return l.details }

// Media returns the attached media reference, or nil.
func (l *Log) Media() *Media { return l.media }

// Err returns the captured error, or nil.
func (l *Log) Err() error { return l.err }

// Stack returns the formatted stack trace captured with the error.
func (l *Log) Stack() string { return l.stack }

// defaultIfBlank trims the input and substitutes fallback when nothing is left.
func defaultIfBlank(s, fallback string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}
