package report

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

const fileTimestampLayout = "02 Jan 2006 - 03-04-05 PM"

// Characters that are unsafe in file names on at least one supported
// platform, each replaced with an underscore.
var illegalFileChars = strings.NewReplacer(
	"\\", "_",
	"/", "_",
	":", "_",
	"*", "_",
	"?", "_",
	"\"", "_",
	"<", "_",
	">", "_",
	"|", "_",
)

// ResolveTarget splits a flush target into directory and file name. A
// target ending in .html or .htm names the output file exactly; any other
// target is a directory that gets a timestamped file name derived from the
// report title.
func ResolveTarget(pathOrFile, title string) (dir, file string) {
	lower := strings.ToLower(pathOrFile)
	if strings.HasSuffix(lower, ".html") || strings.HasSuffix(lower, ".htm") {
		return filepath.Dir(pathOrFile), filepath.Base(pathOrFile)
	}
	return pathOrFile, timestampedFileName(title, time.Now())
}

func timestampedFileName(title string, at time.Time) string {
	name := "VR - " + defaultIfBlank(title, DefaultTitle) + " - " + at.Format(fileTimestampLayout) + ".html"
	return illegalFileChars.Replace(name)
}

// Sink writes a finished report to its destination.
type Sink interface {
	Write(path string, data []byte) error
}

// FileSink writes reports to the local filesystem, creating parent
// directories as needed.
type FileSink struct{}

func (FileSink) Write(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
