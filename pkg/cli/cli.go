// Package cli provides the command-line interface for vision-report.
package cli

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/visionlab-dev/vision-report/pkg/logger"
)

// Version is set at build time.
var Version = "dev"

// GlobalFlags are available to all commands.
var GlobalFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "out",
		Aliases: []string{"o"},
		Usage:   "Output directory or .html file for generated reports",
		EnvVars: []string{"VISION_REPORT_OUT"},
	},
	&cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to vision-report.yaml",
		EnvVars: []string{"VISION_REPORT_CONFIG"},
	},
	&cli.StringFlag{
		Name:    "title",
		Aliases: []string{"t"},
		Usage:   "Report title",
		EnvVars: []string{"VISION_REPORT_TITLE"},
	},
	&cli.BoolFlag{
		Name:    "verbose",
		Usage:   "Enable verbose logging",
		EnvVars: []string{"VISION_REPORT_VERBOSE"},
	},
}

// Execute runs the CLI.
func Execute() {
	app := &cli.App{
		Name:    "vision-report",
		Usage:   "Self-contained HTML reports for test automation",
		Version: Version,
		Description: `Vision Report renders test-automation results into a single
self-contained HTML file with status aggregation, charts and
embedded screenshots.

Examples:
  vision-report demo
  vision-report demo --out ./reports
  vision-report demo --config vision-report.yaml --title "Nightly Run"`,
		Flags: GlobalFlags,
		Before: func(c *cli.Context) error {
			logger.Init(c.Bool("verbose"))
			return nil
		},
		Commands: []*cli.Command{
			demoCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
