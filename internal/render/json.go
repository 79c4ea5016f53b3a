package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/hiveden/hwprobe/internal/report"
)

// JSON writes r as indented JSON.
func JSON(w io.Writer, r *report.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
