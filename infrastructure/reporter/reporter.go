package reporter

import (
	"fmt"
	"io"

	"github.com/taladar/dotnet-parser/domain"
)

// Format selects the output representation.
type Format string

const (
	// FormatText renders a tabular plain-text report.
	FormatText Format = "text"
	// FormatJSON re-serializes the report as indented JSON.
	FormatJSON Format = "json"
)

// ParseFormat validates a format name from flags or config.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown output format %q (expected text or json)", name)
	}
}

// Renderer writes a report representation to an output stream.
type Renderer interface {
	Render(w io.Writer, report *domain.Report) error
}

// New returns the renderer for the given format.
func New(format Format) Renderer {
	if format == FormatJSON {
		return &JSONRenderer{}
	}
	return &TextRenderer{}
}
