package report

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/visionlab-dev/vision-report/pkg/logger"
)

// Defaults applied when the caller provides nothing.
const (
	DefaultTitle     = "Automation Test Report"
	DefaultOutputDir = "vision-reports"

	// Substituted for a blank system-info value.
	noValuePlaceholder = "Not provided"
)

// Report is the central container for one reporting session. Callers
// configure metadata, create tests and log steps against them, then call
// Flush (or FlushTo) to render everything into a single self-contained
// HTML file.
//
// Each Report owns its own id counter, so multiple sessions in one process
// never share id space. Test ids are unique within a session, not across
// processes.
type Report struct {
	title      string
	systemInfo []SystemInfo
	tests      []*Test

	nextID   atomic.Int64
	flushing bool

	// Overridable collaborators; nil means package defaults.
	renderer *Renderer
	sink     Sink
	resolver *MediaResolver
}

// SystemInfo is one environment metadata pair attached to the report.
type SystemInfo struct {
	Key   string
	Value string
}

// New creates an empty report with the default title.
func New() *Report {
	return &Report{title: DefaultTitle}
}

// Config returns the fluent configuration handle for report metadata.
func (r *Report) Config() *Config {
	return &Config{report: r}
}

// CreateTest creates a test case with an auto-generated sequential id
// (TC001, TC002, ...). A blank name is replaced with a placeholder rather
// than rejected, so report population never fails mid-run.
func (r *Report) CreateTest(name string) *Test {
	return r.CreateTestWithID("", name)
}

// CreateTestWithID creates a test case with a caller-supplied id. A blank
// id falls back to the generated sequence.
func (r *Report) CreateTestWithID(id, name string) *Test {
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		trimmed = fmt.Sprintf("TC%03d", r.nextID.Add(1))
	}

	t := newTest(trimmed, name)
	r.tests = append(r.tests, t)
	return t
}

// Title returns the report title.
func (r *Report) Title() string { return r.title }

// SystemInfo returns a copy of the recorded metadata pairs.
func (r *Report) SystemInfo() []SystemInfo {
	return append([]SystemInfo(nil), r.systemInfo...)
}

// Tests returns a copy of the test list. The tests themselves are shared
// handles; callers may continue logging against them until flush time.
func (r *Report) Tests() []*Test {
	return append([]*Test(nil), r.tests...)
}

// SetRenderer overrides the renderer used at flush time.
func (r *Report) SetRenderer(renderer *Renderer) { r.renderer = renderer }

// SetSink overrides the output sink used at flush time.
func (r *Report) SetSink(sink Sink) { r.sink = sink }

// SetMediaResolver overrides the media resolver used at flush time.
func (r *Report) SetMediaResolver(resolver *MediaResolver) { r.resolver = resolver }

func (r *Report) setTitle(title string) {
	if trimmed := strings.TrimSpace(title); trimmed != "" {
		r.title = trimmed
	}
}

func (r *Report) addSystemInfo(key, value string) {
	trimmedKey := strings.TrimSpace(key)
	if trimmedKey == "" {
		return
	}
	r.systemInfo = append(r.systemInfo, SystemInfo{
		Key:   trimmedKey,
		Value: defaultIfBlank(value, noValuePlaceholder),
	})
}

// Flush renders the report into the default output directory with a
// timestamped file name.
func (r *Report) Flush() error {
	return r.FlushTo(DefaultOutputDir)
}

// FlushTo renders the report to the given target. A target ending in .html
// or .htm is an exact file path; anything else is treated as a directory
// that receives a synthesized, timestamped file name. A blank target means
// the default output directory.
//
// Generation failures are logged and returned, never panicked; when the
// primary target fails, one guarded fallback attempt is made against the
// default output directory.
func (r *Report) FlushTo(pathOrFile string) error {
	if r.flushing {
		return nil
	}
	r.flushing = true
	defer func() { r.flushing = false }()

	return r.flush(pathOrFile, false)
}

func (r *Report) flush(pathOrFile string, isFallback bool) error {
	target := strings.TrimSpace(pathOrFile)
	if target == "" {
		target = DefaultOutputDir
	}

	dir, file := ResolveTarget(target, r.title)
	if err := r.generate(dir, file); err != nil {
		logger.Error("failed to generate report at %q: %v", filepath.Join(dir, file), err)
		if !isFallback && target != DefaultOutputDir {
			logger.Warn("retrying in default output directory %q", DefaultOutputDir)
			return r.flush(DefaultOutputDir, true)
		}
		return err
	}
	return nil
}

// generate runs the full pipeline: build the immutable model, render it,
// and hand the bytes to the sink.
func (r *Report) generate(dir, file string) error {
	model, diags := NewBuilder(r.resolver).Build(r)
	if n := len(diags); n > 0 {
		logger.Warn("report built with %d degraded unit(s)", n)
	}

	renderer := r.renderer
	if renderer == nil {
		var err error
		if renderer, err = DefaultRenderer(); err != nil {
			return fmt.Errorf("renderer: %w", err)
		}
	}

	html, err := renderer.Render(model)
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	sink := r.sink
	if sink == nil {
		sink = FileSink{}
	}

	path := filepath.Join(dir, file)
	if err := sink.Write(path, []byte(html)); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	logger.Info("Report generated at: %s", abs)
	return nil
}
