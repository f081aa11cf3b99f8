// Package csvexport writes the most-scanned targets to a CSV file for
// spreadsheet triage and for pasting paths back into protection rules.
package csvexport

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/hexwatch/acelens/internal/model"
)

// utf8BOM keeps Excel and WPS from mis-decoding CJK paths.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var header = []string{"rank", "scan_count", "file_path", "risk_level", "file_type", "full_path"}

// Sink exports the unique-files ranking to one CSV file.
type Sink struct {
	path  string
	limit int
}

// New creates a CSV sink. limit caps the number of exported rows;
// values <= 0 fall back to 200.
func New(path string, limit int) *Sink {
	if limit <= 0 {
		limit = 200
	}
	return &Sink{path: path, limit: limit}
}

// Write creates (or truncates) the target file and writes the ranking,
// count descending, path ascending on ties.
func (s *Sink) Write(_ context.Context, stats *model.ScanStats) error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("csv export: create %s: %w", s.path, err)
	}
	defer f.Close()

	if _, err := f.Write(utf8BOM); err != nil {
		return fmt.Errorf("csv export: write BOM: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("csv export: header: %w", err)
	}

	files := model.SortedByCount(stats.UniqueFiles)
	if len(files) > s.limit {
		files = files[:s.limit]
	}
	for i, file := range files {
		row := []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(file.Count),
			file.Key,
			riskLevel(file.Count),
			model.Extension(file.Key),
			file.Key,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("csv export: row %d: %w", i+1, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("csv export: flush: %w", err)
	}
	return f.Close()
}

func (s *Sink) Close() error { return nil }

func riskLevel(count int) string {
	switch {
	case count > 30:
		return "high"
	case count > 10:
		return "medium"
	default:
		return "low"
	}
}
