package output

import (
	"context"

	"github.com/hexwatch/acelens/internal/model"
)

// Sink consumes one completed aggregate. Sinks only read the stats; the
// parse pass that produced them has already finished.
type Sink interface {
	Write(ctx context.Context, stats *model.ScanStats) error
	Close() error
}
