package benchmark

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteReport persists the full result list and summary as one indented
// JSON document.
func WriteReport(path string, report Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("json.MarshalIndent > %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("os.WriteFile(%s) > %w", path, err)
	}
	return nil
}
