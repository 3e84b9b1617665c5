package report

import (
	"strings"
	"testing"

	"github.com/visionlab-dev/vision-report/pkg/core"
)

func buildTestModel(t *testing.T) *Model {
	t.Helper()

	r := New()
	r.Config().
		SetTitle("Render Test").
		SetEnvironment("staging")
	r.CreateTest("Login Flow").
		AssignCategory("Smoke").
		Log(core.StatusPass, "open page", "navigated")
	r.CreateTest("Broken Flow").
		Log(core.StatusFail, "assert", "mismatch")

	model, diags := NewBuilder(nil).Build(r)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	return model
}

func TestRenderer_Render(t *testing.T) {
	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	html, err := renderer.Render(buildTestModel(t))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>Render Test</title>",
		"Login Flow",
		"Broken Flow",
		"staging",
		"conic-gradient(",
		"TC001",
		"TC002",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered output missing %q", want)
		}
	}
}

func TestRenderer_EscapedFieldsNotDoubleEscaped(t *testing.T) {
	r := New()
	r.CreateTest("escape").Log(core.StatusPass, "a & b", "x < y")
	model, _ := NewBuilder(nil).Build(r)

	renderer, err := NewRenderer()
	if err != nil {
		t.Fatal(err)
	}
	html, err := renderer.Render(model)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(html, "a &amp; b") {
		t.Error("output missing singly escaped step name")
	}
	if strings.Contains(html, "a &amp;amp; b") {
		t.Error("step name was escaped twice")
	}
}

func TestRenderer_EmbedsMediaDataURI(t *testing.T) {
	r := New()
	tc := r.CreateTest("with screenshot")
	m, err := MediaFromBytes([]byte{0x89, 0x50, 0x4e, 0x47})
	if err != nil {
		t.Fatalf("MediaFromBytes: %v", err)
	}
	tc.LogWithMedia(core.StatusPass, "capture", "after click", m)

	model, diags := NewBuilder(nil).Build(r)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	renderer, err := NewRenderer()
	if err != nil {
		t.Fatal(err)
	}
	html, err := renderer.Render(model)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if !strings.Contains(html, `src="data:image/png;base64,`) {
		t.Error("rendered output does not embed the media data URI")
	}
	if strings.Contains(html, "ZgotmplZ") {
		t.Error("data URI was sanitized away by the template engine")
	}
}

func TestRenderer_EmptyReport(t *testing.T) {
	model, _ := NewBuilder(nil).Build(New())

	renderer, err := NewRenderer()
	if err != nil {
		t.Fatal(err)
	}
	html, err := renderer.Render(model)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(html, "No test cases recorded") {
		t.Error("empty report missing empty state")
	}
}

func TestDefaultRenderer_SharedInstance(t *testing.T) {
	a, err := DefaultRenderer()
	if err != nil {
		t.Fatal(err)
	}
	b, err := DefaultRenderer()
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("DefaultRenderer returned different instances")
	}
}

func TestPieGradient(t *testing.T) {
	m := &Model{
		Chart: ChartData{
			StatusSummary: []ChartItem{
				{Label: "Pass", Value: 3, Color: colorPass},
				{Label: "Fail", Value: 1, Color: colorFail},
			},
		},
	}

	got := string(pieGradient(m))
	if !strings.Contains(got, "var(--success-color) 0.00% 75.00%") {
		t.Errorf("gradient = %q, want pass segment 0-75%%", got)
	}
	if !strings.Contains(got, "var(--danger-color) 75.00% 100.00%") {
		t.Errorf("gradient = %q, want fail segment 75-100%%", got)
	}
}

func TestPieGradient_Empty(t *testing.T) {
	got := string(pieGradient(&Model{}))
	if !strings.Contains(got, "var(--border-color)") {
		t.Errorf("gradient = %q, want neutral circle", got)
	}
}

func TestStatusClass(t *testing.T) {
	tests := []struct {
		status   core.Status
		expected string
	}{
		{core.StatusPass, "pass"},
		{core.StatusFail, "fail"},
		{core.StatusSkip, "skip"},
		{core.StatusInfo, "info"},
	}

	for _, tt := range tests {
		if got := statusClass(tt.status); got != tt.expected {
			t.Errorf("statusClass(%s) = %q, want %q", tt.status, got, tt.expected)
		}
	}
}
