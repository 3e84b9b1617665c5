// Package report implements the vision-report test reporting library.
//
// Architecture:
//   - Report/Test/Log: the mutable, caller-facing recording API
//   - Builder: converts a populated Report into the immutable presentation
//     Model, deriving statuses bottom-up and aggregating chart data
//   - MediaResolver: turns media references into embeddable data URIs
//   - Renderer: renders the Model into one self-contained HTML document
//
// A flush call walks that pipeline left to right and writes the result to
// disk. Each flush builds a fresh model tree; no state is shared between
// report generations.
package report

import (
	"html/template"

	"github.com/visionlab-dev/vision-report/pkg/core"
)

// Model is the immutable, render-ready report tree handed to the Renderer.
// All free-text log fields have been normalized and HTML-escaped by the
// Builder; nothing in a Model is mutated after Build returns.
type Model struct {
	Title         string
	GeneratedDate string // "02 Jan, 2006"
	GeneratedTime string // "03:04:05 PM MST"
	SystemInfo    []SystemInfoModel
	Tests         []TestModel
	PassCount     int
	FailCount     int
	SkipCount     int
	TotalTests    int
	Chart         ChartData
}

// SystemInfoModel is one environment metadata pair shown in the report header.
type SystemInfoModel struct {
	Key   string
	Value string
}

// TestModel is the rendered view of one test case.
type TestModel struct {
	ID          string
	Name        string
	Description string
	StartTime   string // "03:04:05 PM"
	EndTime     string
	Duration    string // "HH:MM:SS", zero-padded
	Authors     []string
	Categories  []string
	Logs        []LogModel
	Status      core.Status
}

// LogModel is the rendered view of one log entry. Name and Details are
// pre-escaped by the Builder and therefore typed template.HTML; the
// renderer must not escape them again (stack traces arrive wrapped in a
// pre block that has to survive rendering).
type LogModel struct {
	Timestamp string
	Status    core.Status
	Name      template.HTML
	Details   template.HTML
	Media     *MediaModel
}

// HasMedia reports whether a resolved attachment is present.
func (l LogModel) HasMedia() bool {
	return l.Media != nil && l.Media.HasMedia()
}

// MediaModel is a resolved, embeddable media attachment.
// MediaModel is a resolved attachment ready for embedding. Data is typed
// template.URL because it is always a builder-produced data URI, never
// caller-controlled markup; html/template would otherwise rewrite a data:
// src attribute to an inert placeholder and break every embedded image.
type MediaModel struct {
	Data  template.URL // data-URI payload, or empty
	Title string
}

// HasMedia reports whether the payload is non-empty.
func (m *MediaModel) HasMedia() bool {
	return m != nil && m.Data != ""
}

// ChartData holds the aggregates behind the report's two charts.
type ChartData struct {
	StatusSummary   []ChartItem // Non-zero status buckets only
	TagDistribution []ChartItem // One bucket per distinct category
}

// ChartItem is one labeled bucket with an optional CSS color hint.
type ChartItem struct {
	Label string
	Value int64
	Color string
}
