package report

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/visionlab-dev/vision-report/pkg/core"
)

func TestReport_CreateTestSequentialIDs(t *testing.T) {
	r := New()
	a := r.CreateTest("first")
	b := r.CreateTest("second")
	c := r.CreateTest("third")

	if a.ID() != "TC001" || b.ID() != "TC002" || c.ID() != "TC003" {
		t.Errorf("ids = %s, %s, %s, want TC001, TC002, TC003", a.ID(), b.ID(), c.ID())
	}
}

func TestReport_IDCountersAreIndependent(t *testing.T) {
	r1 := New()
	r2 := New()
	r1.CreateTest("a")

	if got := r2.CreateTest("b").ID(); got != "TC001" {
		t.Errorf("second report's first id = %s, want TC001", got)
	}
}

func TestReport_CreateTestWithID(t *testing.T) {
	r := New()
	custom := r.CreateTestWithID("LOGIN-42", "custom")
	generated := r.CreateTestWithID("  ", "blank id")

	if custom.ID() != "LOGIN-42" {
		t.Errorf("ID() = %s, want LOGIN-42", custom.ID())
	}
	if generated.ID() != "TC001" {
		t.Errorf("ID() = %s, want generated TC001", generated.ID())
	}
}

func TestReport_ConfigFluent(t *testing.T) {
	r := New()
	r.Config().
		SetTitle("Nightly Regression").
		SetProjectName("Storefront").
		SetEnvironment("staging").
		AddCustomInfo("Build", "1.2.3")

	if got := r.Title(); got != "Nightly Regression" {
		t.Errorf("Title() = %q, want Nightly Regression", got)
	}

	info := r.SystemInfo()
	if len(info) != 3 {
		t.Fatalf("len(SystemInfo()) = %d, want 3", len(info))
	}
	if info[0].Key != "Project Name" || info[0].Value != "Storefront" {
		t.Errorf("info[0] = %+v", info[0])
	}
	if info[2].Key != "Build" || info[2].Value != "1.2.3" {
		t.Errorf("info[2] = %+v", info[2])
	}
}

func TestReport_SystemInfoBlankValuePlaceholder(t *testing.T) {
	r := New()
	r.Config().AddCustomInfo("Branch", "  ")

	info := r.SystemInfo()
	if len(info) != 1 || info[0].Value != noValuePlaceholder {
		t.Errorf("SystemInfo() = %v, want placeholder value", info)
	}
}

func TestReport_SystemInfoBlankKeyDropped(t *testing.T) {
	r := New()
	r.Config().AddCustomInfo("", "orphan")

	if got := len(r.SystemInfo()); got != 0 {
		t.Errorf("len(SystemInfo()) = %d, want 0", got)
	}
}

func TestReport_BlankTitleKept(t *testing.T) {
	r := New()
	r.Config().SetTitle("Real Title").SetTitle("  ")

	if got := r.Title(); got != "Real Title" {
		t.Errorf("Title() = %q, want Real Title", got)
	}
}

func TestReport_FlushToFile(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "run.html")

	r := New()
	r.Config().SetTitle("Flush Test")
	r.CreateTest("case").Log(core.StatusPass, "step", "details")

	if err := r.FlushTo(target); err != nil {
		t.Fatalf("FlushTo: %v", err)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	html := string(data)
	if !strings.Contains(html, "Flush Test") {
		t.Error("output missing report title")
	}
	if !strings.Contains(html, "TC001") {
		t.Error("output missing test id")
	}
}

func TestReport_FlushToDirectory(t *testing.T) {
	dir := t.TempDir()

	r := New()
	r.CreateTest("case").Log(core.StatusPass, "step", "details")

	if err := r.FlushTo(dir); err != nil {
		t.Fatalf("FlushTo: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1", len(entries))
	}
	name := entries[0].Name()
	if !strings.HasPrefix(name, "VR - ") || !strings.HasSuffix(name, ".html") {
		t.Errorf("file name = %q, want timestamped VR name", name)
	}
}

func TestReport_FlushEmptyReport(t *testing.T) {
	target := filepath.Join(t.TempDir(), "empty.html")

	if err := New().FlushTo(target); err != nil {
		t.Fatalf("FlushTo: %v", err)
	}
	if _, err := os.Stat(target); err != nil {
		t.Errorf("report file not written: %v", err)
	}
}

type failingSink struct{ calls int }

func (s *failingSink) Write(path string, data []byte) error {
	s.calls++
	return errors.New("disk full")
}

func TestReport_FlushSinkFailureReturnsError(t *testing.T) {
	r := New()
	r.SetSink(&failingSink{})
	r.CreateTest("case").Log(core.StatusPass, "step", "details")

	if err := r.FlushTo(filepath.Join(t.TempDir(), "run.html")); err == nil {
		t.Error("FlushTo = nil error, want sink failure surfaced")
	}
}

type capturingSink struct {
	paths []string
}

func (s *capturingSink) Write(path string, data []byte) error {
	s.paths = append(s.paths, path)
	return nil
}

func TestReport_FlushBlankTargetUsesDefaultDir(t *testing.T) {
	sink := &capturingSink{}
	r := New()
	r.SetSink(sink)
	r.CreateTest("case").Log(core.StatusPass, "step", "details")

	if err := r.FlushTo("   "); err != nil {
		t.Fatalf("FlushTo: %v", err)
	}
	if len(sink.paths) != 1 || !strings.HasPrefix(sink.paths[0], DefaultOutputDir) {
		t.Errorf("paths = %v, want under %q", sink.paths, DefaultOutputDir)
	}
}
