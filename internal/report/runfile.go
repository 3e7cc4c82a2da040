// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/keyword-discovery/pkg/types"
)

// WriteRunFile saves run as YAML so it can be re-rendered later without
// querying the suggestion service again.
func WriteRunFile(path string, run types.Run) error {
	data, err := yaml.Marshal(&run)
	if err != nil {
		return fmt.Errorf("marshaling run file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadRunFile loads a run saved by WriteRunFile. The tally is recomputed
// from the keywords when the file omits it.
func ReadRunFile(path string) (*types.Run, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run file: %w", err)
	}
	var run types.Run
	if err := yaml.Unmarshal(data, &run); err != nil {
		return nil, fmt.Errorf("parsing run file: %w", err)
	}
	if run.Tally.Total() == 0 && len(run.Keywords) > 0 {
		for _, k := range run.Keywords {
			run.Tally.Add(k.Intent)
		}
	}
	return &run, nil
}
