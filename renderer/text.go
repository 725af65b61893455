// Package renderer provides a way to render run reports in different formats.
package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/ChainSafe/lifo/runner"
	"github.com/samber/lo"
)

// TextRenderer formats the run report in a structured text format.
type TextRenderer struct{}

// NewTextRenderer creates a new instance of TextRenderer.
func NewTextRenderer() Renderer {
	return &TextRenderer{}
}

// Render formats and writes the run report.
func (r *TextRenderer) Render(report *runner.Report, output io.Writer) error {
	var b strings.Builder

	// Header Section
	b.WriteString("==============================\n")
	b.WriteString(fmt.Sprintf("Stack Script: %s\n", report.Script))
	b.WriteString("==============================\n\n")

	// Steps Section
	width := len(fmt.Sprint(len(report.Steps)))
	for _, step := range report.Steps {
		b.WriteString(fmt.Sprintf("%*d. [%s] %s\n", width, step.Index, step.Severity, describe(step)))
	}

	// Summary Section
	b.WriteString("\n------------------------------\n")
	b.WriteString(fmt.Sprintf("Steps: %d\n", len(report.Steps)))
	b.WriteString(fmt.Sprintf("Failed: %d\n", report.Failed))
	if report.Failed > 0 {
		failed := lo.FilterMap(report.Steps, func(s *runner.Step, _ int) (string, bool) {
			return fmt.Sprint(s.Index), s.Severity == runner.SeverityError
		})
		b.WriteString(fmt.Sprintf("Failed steps: %s\n", strings.Join(failed, ", ")))
	}
	if report.Aborted {
		b.WriteString("Run aborted (strict mode)\n")
	}
	b.WriteString(fmt.Sprintf("Size: %d\n", report.Size))
	b.WriteString(fmt.Sprintf("Stack: %s\n", report.Final))

	_, err := output.Write([]byte(b.String()))
	return err
}

func describe(step *runner.Step) string {
	s := step.Op
	if step.Value != "" {
		s += " " + step.Value
	}
	switch {
	case step.Error != "":
		s += ": " + step.Error
	case step.Result != "":
		s += " => " + step.Result
	}
	return fmt.Sprintf("%s (size %d)", s, step.Size)
}

// Format returns the format type.
func (r *TextRenderer) Format() string {
	return "text"
}
