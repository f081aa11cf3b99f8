// Package engine segments a raw Huorong log blob into scan-attempt entries
// and aggregates them into ScanStats.
//
// Parsing is heuristic by design: entries are split on a fixed separator
// and validated only by the presence of two anchor substrings. An entry
// that happens to contain both markers inside a quoted value would be
// admitted; that false-positive risk is accepted, since a stricter check
// could silently drop real entries with unusual formatting.
package engine

import (
	"strings"

	"github.com/hexwatch/acelens/internal/engine/category"
	"github.com/hexwatch/acelens/internal/engine/extract"
	"github.com/hexwatch/acelens/internal/model"
)

// Terminator sets per field. Each list holds the labels that may follow
// the field plus raw line breaks, because the producer guarantees neither.
var (
	filePathTerms = []string{MarkerResult, MarkerOpType, "\r\n", "\n"}
	processTerms  = []string{MarkerCmdline, MarkerOpType, "\r\n", "\n"}
	ruleTerms     = []string{MarkerOpType, "\r\n", "\n"}
)

// Parse splits raw on the entry separator, drops segments that are blank
// or missing either anchor marker, and folds every surviving entry into a
// fresh ScanStats. Single pass, no I/O, no retained state.
func Parse(raw string) *model.ScanStats {
	stats := model.NewScanStats()
	for _, entry := range strings.Split(raw, Separator) {
		if !validEntry(entry) {
			continue
		}
		stats.Apply(parseEntry(entry))
	}
	return stats
}

// validEntry is the permissive segmentation filter: two anchor substrings,
// nothing more.
func validEntry(entry string) bool {
	return strings.TrimSpace(entry) != "" &&
		strings.Contains(entry, MarkerProduct) &&
		strings.Contains(entry, MarkerFileOp)
}

// parseEntry attempts each field independently; a field that fails to
// extract leaves its Record slot zero and costs nothing else.
func parseEntry(entry string) model.Record {
	var rec model.Record

	if raw, ok := extract.Field(entry, MarkerFileOp, filePathTerms); ok {
		if path := strings.TrimSpace(raw); path != "" {
			rec.FilePath = path
			rec.Category = category.Categorize(path)
		}
	}

	if raw, ok := extract.Field(entry, MarkerProcess, processTerms); ok {
		rec.ProcessName = model.ProcessName(raw)
	}

	if raw, ok := extract.Field(entry, MarkerCustomRule, ruleTerms); ok {
		rec.RuleName = strings.TrimSpace(raw)
	}

	rec.Blocked = strings.Contains(entry, MarkerBlocked)
	rec.Hour, rec.HourOK = extract.Hour(entry)

	return rec
}
