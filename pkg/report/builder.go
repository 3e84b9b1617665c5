package report

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/visionlab-dev/vision-report/pkg/core"
	"github.com/visionlab-dev/vision-report/pkg/logger"
)

// Placeholders substituted during model building.
const (
	noDescriptionPlaceholder = "[No description provided]"
	invalidLogName           = "[Invalid Log Entry]"
	invalidLogDetails        = "[Log entry could not be processed]"
)

// Chart color hints resolved against the template's CSS variables.
const (
	colorPass = "var(--success-color)"
	colorFail = "var(--danger-color)"
	colorSkip = "var(--warning-color)"
)

// htmlEscaper escapes the five characters that can corrupt markup. Applied
// by the builder so that escaped text lands in the model itself, not just in
// one renderer's output.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// Builder converts a populated Report into an immutable Model. Conversion
// is total: bad units degrade to fallback values and are reported as
// diagnostics rather than aborting the build.
type Builder struct {
	resolver *MediaResolver
}

// NewBuilder creates a Builder. A nil resolver means a default MediaResolver.
func NewBuilder(resolver *MediaResolver) *Builder {
	if resolver == nil {
		resolver = &MediaResolver{}
	}
	return &Builder{resolver: resolver}
}

// Build walks the report tree bottom-up: log entries are converted and
// escaped, each test's final status is derived from its entries, then
// report-level counts and chart aggregates are computed. Building the same
// frozen report twice yields identical counts and chart buckets.
func (b *Builder) Build(r *Report) (*Model, []core.Diagnostic) {
	var diags []core.Diagnostic

	now := time.Now()
	model := &Model{
		Title:         defaultIfBlank(r.Title(), DefaultTitle),
		GeneratedDate: now.Format("02 Jan, 2006"),
		GeneratedTime: now.Format("03:04:05 PM MST"),
	}

	for _, info := range r.SystemInfo() {
		model.SystemInfo = append(model.SystemInfo, SystemInfoModel{Key: info.Key, Value: info.Value})
	}

	for _, t := range r.Tests() {
		model.Tests = append(model.Tests, b.buildTest(t, &diags))
	}

	for _, tm := range model.Tests {
		switch tm.Status {
		case core.StatusPass:
			model.PassCount++
		case core.StatusFail:
			model.FailCount++
		case core.StatusSkip:
			model.SkipCount++
		}
	}
	model.TotalTests = len(model.Tests)
	model.Chart = buildChart(model)

	return model, diags
}

func (b *Builder) buildTest(t *Test, diags *[]core.Diagnostic) TestModel {
	tm := TestModel{
		ID:          t.ID(),
		Name:        t.Name(),
		Description: defaultIfBlank(t.GetDescription(), noDescriptionPlaceholder),
		StartTime:   t.StartTime().Format(logTimestampLayout),
		EndTime:     t.EndTime().Format(logTimestampLayout),
		Duration:    formatElapsed(t.EndTime().Sub(t.StartTime())),
		Authors:     t.Authors(),
		Categories:  t.Categories(),
	}

	logs := t.Logs()
	statuses := make([]core.Status, 0, len(logs))
	for _, l := range logs {
		lm := b.buildLog(t.ID(), l, diags)
		tm.Logs = append(tm.Logs, lm)
		statuses = append(statuses, lm.Status)
	}

	tm.Status = core.Derive(statuses)
	return tm
}

// buildLog converts one log entry. A broken entry never aborts the report:
// it is replaced by a FAIL fallback describing the processing problem, and
// a diagnostic is recorded.
func (b *Builder) buildLog(testID string, l *Log, diags *[]core.Diagnostic) LogModel {
	if l == nil {
		d := core.Diagnostic{
			Scope:   "test " + testID,
			Code:    core.CodeNilLogEntry,
			Message: "log entry was nil, substituted a FAIL fallback",
		}
		*diags = append(*diags, d)
		logger.Warn("%s", d.Error())

		return LogModel{
			Timestamp: "00:00:00",
			Status:    core.StatusFail,
			Name:      template.HTML(escapeHTML(invalidLogName)),
			Details:   template.HTML(escapeHTML(invalidLogDetails)),
		}
	}

	name := escapeHTML(l.Name())
	details := escapeHTML(l.Details())

	// A captured error replaces the details entirely: the formatted stack
	// trace, escaped and wrapped as a preformatted block, takes precedence
	// over any manually supplied text.
	if l.Err() != nil {
		trace := l.Err().Error()
		if l.Stack() != "" {
			trace += "\n\n" + l.Stack()
		}
		details = `<pre class="stack-trace">` + escapeHTML(trace) + `</pre>`
	}

	lm := LogModel{
		Timestamp: l.Timestamp(),
		Status:    l.Status(),
		Name:      template.HTML(name),
		Details:   template.HTML(details),
	}

	if ref := l.Media(); ref != nil {
		resolved, err := b.resolver.Resolve(ref)
		if err != nil {
			d := core.Diagnostic{
				Scope:   "test " + testID,
				Code:    core.CodeMediaUnresolved,
				Message: "media attachment dropped",
				Cause:   err,
			}
			*diags = append(*diags, d)
			logger.Warn("%s", d.Error())
		} else {
			lm.Media = resolved
		}
	}

	return lm
}

// buildChart aggregates the status and tag buckets. Zero-count statuses are
// omitted; tag buckets keep first-seen order so that repeated builds of the
// same report produce identical chart contents.
func buildChart(m *Model) ChartData {
	var chart ChartData

	if m.PassCount > 0 {
		chart.StatusSummary = append(chart.StatusSummary, ChartItem{Label: "Pass", Value: int64(m.PassCount), Color: colorPass})
	}
	if m.FailCount > 0 {
		chart.StatusSummary = append(chart.StatusSummary, ChartItem{Label: "Fail", Value: int64(m.FailCount), Color: colorFail})
	}
	if m.SkipCount > 0 {
		chart.StatusSummary = append(chart.StatusSummary, ChartItem{Label: "Skip", Value: int64(m.SkipCount), Color: colorSkip})
	}

	counts := make(map[string]int64)
	var order []string
	for _, t := range m.Tests {
		for _, c := range t.Categories {
			if _, seen := counts[c]; !seen {
				order = append(order, c)
			}
			counts[c]++
		}
	}
	for _, tag := range order {
		chart.TagDistribution = append(chart.TagDistribution, ChartItem{Label: tag, Value: counts[tag]})
	}

	return chart
}

// formatElapsed renders a duration as zero-padded hours:minutes:seconds.
func formatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d.Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}
