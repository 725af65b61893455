package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ChainSafe/lifo/renderer"
	"github.com/ChainSafe/lifo/runner"
	"github.com/ChainSafe/lifo/script"
	"github.com/urfave/cli/v2"
)

var (
	FormatFlag = &cli.StringFlag{
		Name:  "format",
		Usage: "format of the output. Options: json, text",
		Value: "text",
	}
	ReportOutputPathFlag = &cli.PathFlag{
		Name:     "report-output-path",
		Usage:    "output file path for report. Default: stdout",
		Required: false,
	}
)

func CreateRunCommand(action cli.ActionFunc) *cli.Command {
	return &cli.Command{
		Name:        "run",
		Usage:       "Runs a stack script and reports every step",
		Description: "Runs the operations of a YAML or JSON script against a fresh stack",
		ArgsUsage:   "SCRIPT",
		Action:      action,
		Flags: []cli.Flag{
			FormatFlag,
			ReportOutputPathFlag,
		},
	}
}

var RunCommand = CreateRunCommand(RunScript)

func RunScript(ctx *cli.Context) error {
	path := ctx.Args().First()
	if path == "" {
		return fmt.Errorf("missing script path")
	}
	sc, err := script.LoadScript(path)
	if err != nil {
		return fmt.Errorf("error loading script: %w", err)
	}

	rend, err := renderer.NewRenderer(ctx.String(FormatFlag.Name))
	if err != nil {
		return err
	}

	report, runErr := runner.NewRunner().Run(sc)
	if report != nil {
		if err := writeReport(report, rend, ctx.Path(ReportOutputPathFlag.Name), ctx.App.Writer); err != nil {
			return fmt.Errorf("unable to write report: %w", err)
		}
	}
	if runErr != nil {
		return fmt.Errorf("run failed: %w", runErr)
	}
	return nil
}

// writeReport outputs the report to outputPath, or to stdout when it is empty.
func writeReport(report *runner.Report, rend renderer.Renderer, outputPath string, stdout io.Writer) error {
	output := stdout
	if outputPath != "" {
		absPath, err := filepath.Abs(outputPath)
		if err != nil {
			return fmt.Errorf("unable to determine absolute path: %w", err)
		}
		file, err := os.OpenFile(absPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("unable to open output file: %w", err)
		}
		defer func() {
			_ = file.Close()
		}()
		output = file
	}
	return rend.Render(report, output)
}
