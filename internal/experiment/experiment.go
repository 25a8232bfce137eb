// Package experiment handles naming and on-disk bookkeeping for training
// runs: an experiment name encodes the method and hyperparameters, and
// the per-epoch metrics are serialized to a JSON file under a results
// directory.
package experiment

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Metrics holds per-epoch measurements of a training run. Slices are
// indexed by epoch and grow as the driver appends.
type Metrics struct {
	TrainLoss []float64 `json:"train_loss"`
	TrainAcc  []float64 `json:"train_acc,omitempty"`
	TestLoss  []float64 `json:"test_loss,omitempty"`
	TestAcc   []float64 `json:"test_acc,omitempty"`
}

// Name builds an experiment name by joining the string forms of the
// given values with underscores, e.g. Name("fwl1", 300, 250) returns
// "fwl1_300_250".
func Name(parts ...any) string {
	strs := make([]string, len(parts))
	for i, p := range parts {
		strs[i] = fmt.Sprint(p)
	}
	return strings.Join(strs, "_")
}

// Save writes m as JSON to <dir>/<name>.json, creating dir if needed.
func Save(dir, name string, m *Metrics) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating results dir: %w", err)
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding metrics: %w", err)
	}
	path := filepath.Join(dir, name+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing metrics: %w", err)
	}
	return nil
}

// Load reads metrics previously written by Save.
func Load(dir, name string) (*Metrics, error) {
	path := filepath.Join(dir, name+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading metrics: %w", err)
	}
	var m Metrics
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding metrics %s: %w", path, err)
	}
	return &m, nil
}
