package multi

import (
	"context"
	"errors"

	"github.com/hexwatch/acelens/internal/model"
	"github.com/hexwatch/acelens/internal/output"
)

// Multi fans the aggregate out to several output.Sink implementations
// sequentially. If one sink fails, the remaining sinks still run.
type Multi struct {
	sinks []output.Sink
}

// New creates a Multi that fans out to the given sinks.
func New(sinks ...output.Sink) *Multi {
	return &Multi{sinks: sinks}
}

// Write delivers the stats to every wrapped sink. Errors are collected
// but do not prevent delivery to subsequent sinks.
func (m *Multi) Write(ctx context.Context, stats *model.ScanStats) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.Write(ctx, stats); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close calls Close on every wrapped sink, collecting errors.
func (m *Multi) Close() error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
