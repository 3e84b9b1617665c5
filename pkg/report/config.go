package report

// Standard system-info keys written by the named Config setters. Custom
// pairs added via AddCustomInfo use the caller's key verbatim.
const (
	keyProjectName     = "Project Name"
	keyApplicationName = "Application Name"
	keyEnvironment     = "Environment"
	keyTesterName      = "Tester Name"
	keyBrowser         = "Browser"
)

// Config is a fluent handle for report metadata. Every setter returns the
// handle so calls chain:
//
//	r.Config().
//		SetTitle("Nightly Regression").
//		SetEnvironment("staging").
//		SetTesterName("QA Bot")
type Config struct {
	report *Report
}

// SetTitle sets the report title. Blank titles are ignored and the current
// title is kept.
func (c *Config) SetTitle(title string) *Config {
	c.report.setTitle(title)
	return c
}

// SetProjectName records the project name as system info.
func (c *Config) SetProjectName(name string) *Config {
	c.report.addSystemInfo(keyProjectName, name)
	return c
}

// SetApplicationName records the application under test as system info.
func (c *Config) SetApplicationName(name string) *Config {
	c.report.addSystemInfo(keyApplicationName, name)
	return c
}

// SetEnvironment records the execution environment as system info.
func (c *Config) SetEnvironment(env string) *Config {
	c.report.addSystemInfo(keyEnvironment, env)
	return c
}

// SetTesterName records the tester as system info.
func (c *Config) SetTesterName(name string) *Config {
	c.report.addSystemInfo(keyTesterName, name)
	return c
}

// SetBrowser records the browser as system info.
func (c *Config) SetBrowser(browser string) *Config {
	c.report.addSystemInfo(keyBrowser, browser)
	return c
}

// AddCustomInfo records an arbitrary key/value pair as system info. Pairs
// render in insertion order; a blank key drops the pair, a blank value is
// replaced with a placeholder.
func (c *Config) AddCustomInfo(key, value string) *Config {
	c.report.addSystemInfo(key, value)
	return c
}
