package reporter

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/taladar/dotnet-parser/domain"
)

// JSONRenderer re-serializes the (possibly filtered) report as indented
// JSON using the same PascalCase keys as the dotnet-outdated input, so the
// output can be fed back into any consumer of the original format.
type JSONRenderer struct{}

// Render implements Renderer.
func (r *JSONRenderer) Render(w io.Writer, report *domain.Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("failed to serialize report: %w", err)
	}
	return nil
}
