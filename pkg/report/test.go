package report

import (
	"runtime/debug"
	"time"

	"github.com/visionlab-dev/vision-report/pkg/core"
)

// Placeholders used by error logging.
const (
	untitledTestName   = "Untitled Test"
	nilErrorStepName   = "Nil error passed"
	nilErrorDetails    = "[A nil error was passed to LogError]"
	blankErrorStepName = "Error Occurred"
)

// Test is a mutable accumulator for one test case: metadata plus an ordered,
// append-only sequence of log entries. Logging methods return the receiver
// for fluent chaining. The aggregate status is not maintained here; it is
// derived once, at build time, from the recorded entries.
//
// A Test is not safe for concurrent mutation; the library assumes each Test
// is populated by one logical caller at a time.
type Test struct {
	id          string
	name        string
	description string
	authors     []string
	categories  []string
	logs        []*Log
	startTime   time.Time
	endTime     time.Time
}

func newTest(id, name string) *Test {
	now := time.Now()
	return &Test{
		id:        id,
		name:      defaultIfBlank(name, untitledTestName),
		startTime: now,
		endTime:   now,
	}
}

// Description sets the test's descriptive text.
func (t *Test) Description(description string) *Test {
	t.description = defaultIfBlank(description, "")
	return t
}

// AssignAuthor adds one or more authors. Blank entries are ignored;
// duplicates are kept in order.
func (t *Test) AssignAuthor(authors ...string) *Test {
	for _, a := range authors {
		if trimmed := defaultIfBlank(a, ""); trimmed != "" {
			t.authors = append(t.authors, trimmed)
		}
	}
	return t
}

// AssignCategory adds one or more categories (tags). Blank entries are
// ignored; duplicates are kept in order.
func (t *Test) AssignCategory(categories ...string) *Test {
	for _, c := range categories {
		if trimmed := defaultIfBlank(c, ""); trimmed != "" {
			t.categories = append(t.categories, trimmed)
		}
	}
	return t
}

// Log records a step with the given status, name and details. A blank name
// becomes "[Unnamed Step]" and blank details become "[No details provided]".
// The status is required: passing StatusUnknown (or any out-of-range value)
// panics, because silently guessing a status would corrupt the report's
// aggregate results.
func (t *Test) Log(status core.Status, name, details string) *Test {
	return t.LogWithMedia(status, name, details, nil)
}

// LogWithMedia records a step with an optional media attachment. A nil
// media reference is allowed and simply attaches nothing.
func (t *Test) LogWithMedia(status core.Status, name, details string, media *Media) *Test {
	if !status.IsValid() {
		panic("visionreport: a valid status is required for log entries")
	}

	t.endTime = time.Now()
	t.logs = append(t.logs, newLog(status, name, details, media, nil, ""))
	return t
}

// LogError records a failure caused by err, capturing the current stack
// trace. The entry's status is always FAIL: captured errors are
// unconditionally failures. A nil err still produces a FAIL entry with a
// placeholder message rather than panicking.
func (t *Test) LogError(err error) *Test {
	return t.LogErrorWithMedia(err, nil)
}

// LogErrorWithMedia records a failure caused by err with an optional media
// attachment.
func (t *Test) LogErrorWithMedia(err error, media *Media) *Test {
	t.endTime = time.Now()

	if err == nil {
		t.logs = append(t.logs, newLog(core.StatusFail, nilErrorStepName, nilErrorDetails, media, nil, ""))
		return t
	}

	name := defaultIfBlank(err.Error(), blankErrorStepName)
	t.logs = append(t.logs, newLog(core.StatusFail, name, "", media, err, string(debug.Stack())))
	return t
}

// ID returns the unique test identifier.
func (t *Test) ID() string { return t.id }

// Name returns the display name.
func (t *Test) Name() string { return t.name }

// GetDescription returns the descriptive text, possibly empty.
func (t *Test) GetDescription() string { return t.description }

// Authors returns a copy of the assigned authors.
func (t *Test) Authors() []string {
	return append([]string(nil), t.authors...)
}

// Categories returns a copy of the assigned categories.
func (t *Test) Categories() []string {
	return append([]string(nil), t.categories...)
}

// Logs returns a copy of the ordered log entries.
func (t *Test) Logs() []*Log {
	return append([]*Log(nil), t.logs...)
}

// StartTime returns the creation time of the test.
func (t *Test) StartTime() time.Time { return t.startTime }

// EndTime returns the time of the most recent log call. It is never before
// StartTime.
func (t *Test) EndTime() time.Time { return t.endTime }
