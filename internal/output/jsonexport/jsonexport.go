// Package jsonexport serializes the aggregate to a JSON file for
// downstream tooling that does not want to re-parse the log.
package jsonexport

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/hexwatch/acelens/internal/model"
)

// Sink writes the whole ScanStats as pretty-printed JSON.
type Sink struct {
	path string
}

// New creates a JSON sink writing to path.
func New(path string) *Sink {
	return &Sink{path: path}
}

func (s *Sink) Write(_ context.Context, stats *model.ScanStats) error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("json export: create %s: %w", s.path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(stats); err != nil {
		return fmt.Errorf("json export: encode: %w", err)
	}
	return f.Close()
}

func (s *Sink) Close() error { return nil }
