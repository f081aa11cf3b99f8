// Package pipeline runs one analysis end to end: load the log, verify its
// format, parse it, and hand the aggregate to every configured sink.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hexwatch/acelens/internal/engine"
	"github.com/hexwatch/acelens/internal/input"
	"github.com/hexwatch/acelens/internal/model"
	"github.com/hexwatch/acelens/internal/output"
)

// ErrNoEntries reports a well-formed log in which the segmentation filter
// found nothing to count. Distinct from a missing file and from a failed
// signature check so the CLI can explain each case differently.
var ErrNoEntries = errors.New("no valid ACE scan entries found")

// Pipeline ties the input loader, the parse engine, and the sinks together.
type Pipeline struct {
	sink output.Sink
}

// New creates a Pipeline delivering results to sink (usually a multi sink).
func New(sink output.Sink) *Pipeline {
	return &Pipeline{sink: sink}
}

// Run analyzes the log file at path. I/O happens only at the edges: the
// file is read once up front and the sinks write once at the end.
func (p *Pipeline) Run(ctx context.Context, path string) (*model.ScanStats, error) {
	raw, err := input.Load(path)
	if err != nil {
		return nil, err
	}
	if err := input.DetectFormat(raw); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	slog.Info("analyzing log", "path", path, "bytes", len(raw))

	stats := engine.Parse(raw)
	if stats.TotalAttempts == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoEntries)
	}

	slog.Debug("parse complete",
		"attempts", stats.TotalAttempts,
		"blocked", stats.BlockedAttempts,
		"unique_files", len(stats.UniqueFiles))

	if err := p.sink.Write(ctx, stats); err != nil {
		return nil, fmt.Errorf("pipeline output: %w", err)
	}
	return stats, nil
}

// Close shuts down the sink.
func (p *Pipeline) Close() error {
	return p.sink.Close()
}
