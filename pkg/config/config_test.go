package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/visionlab-dev/vision-report/pkg/report"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vision-report.yaml")
	content := `title: Nightly Run
output: ./reports
project: Storefront
environment: staging
tester: QA Bot
customInfo:
  - key: Build
    value: "1.2.3"
  - key: Branch
    value: main
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Title != "Nightly Run" {
		t.Errorf("Title = %q, want Nightly Run", cfg.Title)
	}
	if cfg.Output != "./reports" {
		t.Errorf("Output = %q, want ./reports", cfg.Output)
	}
	if len(cfg.CustomInfo) != 2 || cfg.CustomInfo[0].Key != "Build" {
		t.Errorf("CustomInfo = %v", cfg.CustomInfo)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load(missing) = nil error, want error")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("title: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load(invalid) = nil error, want error")
	}
}

func TestLoadFromDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "vision-report.yml"), []byte("title: From Yml"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromDir(dir)
	if err != nil {
		t.Fatalf("LoadFromDir: %v", err)
	}
	if cfg.Title != "From Yml" {
		t.Errorf("Title = %q, want From Yml", cfg.Title)
	}
}

func TestLoadFromDir_NoConfig(t *testing.T) {
	cfg, err := LoadFromDir(t.TempDir())
	if err != nil {
		t.Fatalf("LoadFromDir: %v", err)
	}
	if cfg.Title != "" {
		t.Errorf("Title = %q, want empty config", cfg.Title)
	}
}

func TestConfig_Apply(t *testing.T) {
	cfg := &Config{
		Title:       "Applied Title",
		Project:     "Storefront",
		Environment: "staging",
		CustomInfo:  []InfoEntry{{Key: "Build", Value: "9"}},
	}

	r := report.New()
	cfg.Apply(r)

	if got := r.Title(); got != "Applied Title" {
		t.Errorf("Title() = %q, want Applied Title", got)
	}

	info := r.SystemInfo()
	if len(info) != 3 {
		t.Fatalf("len(SystemInfo()) = %d, want 3", len(info))
	}
	if info[0].Key != "Project Name" || info[0].Value != "Storefront" {
		t.Errorf("info[0] = %+v", info[0])
	}
}

func TestConfig_ApplySkipsBlankFields(t *testing.T) {
	r := report.New()
	(&Config{}).Apply(r)

	if got := r.Title(); got != report.DefaultTitle {
		t.Errorf("Title() = %q, want default kept", got)
	}
	if got := len(r.SystemInfo()); got != 0 {
		t.Errorf("len(SystemInfo()) = %d, want 0", got)
	}
}
