package renderer

import (
	"fmt"
	"io"

	"github.com/ChainSafe/lifo/runner"
)

// Renderer defines the interface for rendering run reports in different formats.
type Renderer interface {
	// Render takes a run report and outputs it in the desired format to the provided writer.
	Render(report *runner.Report, output io.Writer) error

	// Format returns the name of the output format (e.g., "json", "text").
	Format() string
}

// NewRenderer returns the renderer for the given format name.
func NewRenderer(format string) (Renderer, error) {
	switch format {
	case "", "text":
		return NewTextRenderer(), nil
	case "json":
		return NewJSONRenderer(), nil
	}
	return nil, fmt.Errorf("invalid format: %s", format)
}
