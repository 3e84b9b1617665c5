// Package config handles file-based configuration for vision-report.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/visionlab-dev/vision-report/pkg/report"
)

// Config represents the report configuration (vision-report.yaml).
type Config struct {
	// Report settings
	Title  string `yaml:"title"`  // Report title
	Output string `yaml:"output"` // Output directory or .html file

	// System info
	Project     string `yaml:"project"`     // Project name
	Application string `yaml:"application"` // Application under test
	Environment string `yaml:"environment"` // Execution environment
	Tester      string `yaml:"tester"`      // Tester name
	Browser     string `yaml:"browser"`     // Browser

	CustomInfo []InfoEntry `yaml:"customInfo"` // Additional key/value pairs
}

// InfoEntry is one custom system-info pair.
type InfoEntry struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

// Load loads configuration from a file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- user-provided config file
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadFromDir looks for vision-report.yaml or vision-report.yml in the
// directory.
func LoadFromDir(dir string) (*Config, error) {
	configPath := filepath.Join(dir, "vision-report.yaml")
	if _, err := os.Stat(configPath); err == nil {
		return Load(configPath)
	}

	configPath = filepath.Join(dir, "vision-report.yml")
	if _, err := os.Stat(configPath); err == nil {
		return Load(configPath)
	}

	// No config file found, return empty config
	return &Config{}, nil
}

// Apply copies the configured metadata onto a report. Blank fields are
// skipped so file config composes with programmatic configuration.
func (c *Config) Apply(r *report.Report) {
	rc := r.Config()
	if c.Title != "" {
		rc.SetTitle(c.Title)
	}
	if c.Project != "" {
		rc.SetProjectName(c.Project)
	}
	if c.Application != "" {
		rc.SetApplicationName(c.Application)
	}
	if c.Environment != "" {
		rc.SetEnvironment(c.Environment)
	}
	if c.Tester != "" {
		rc.SetTesterName(c.Tester)
	}
	if c.Browser != "" {
		rc.SetBrowser(c.Browser)
	}
	for _, entry := range c.CustomInfo {
		rc.AddCustomInfo(entry.Key, entry.Value)
	}
}
