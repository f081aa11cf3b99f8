// Package report renders the human-readable analysis report. Layout is
// display-width aware: file paths, rule names, and category values in
// these logs mix ASCII and CJK runes, and CJK runes occupy two terminal
// cells.
package report

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/hexwatch/acelens/internal/model"
)

const (
	bannerWidth = 76
	ruleWidth   = 74
	pathColumn  = 50
	barCells    = 40
)

// Config controls how much of each ranking the report shows.
type Config struct {
	TopProcesses  int
	TopFiles      int
	TopExtensions int
	TopHours      int
	NoColor       bool
}

// Sink writes the report to w on Write.
type Sink struct {
	w      io.Writer
	cfg    Config
	styles styles
}

// New creates a report sink writing to w.
func New(w io.Writer, cfg Config) *Sink {
	return &Sink{w: w, cfg: cfg, styles: newStyles(cfg.NoColor)}
}

// Write renders the full report. The stats are only read.
func (s *Sink) Write(_ context.Context, stats *model.ScanStats) error {
	var b strings.Builder
	s.header(&b, stats)
	s.coreMetrics(&b, stats)
	s.processes(&b, stats)
	s.topFiles(&b, stats)
	s.categories(&b, stats)
	s.extensions(&b, stats)
	s.timeDistribution(&b, stats)
	s.advice(&b)
	fmt.Fprintf(&b, "\n%s\n", strings.Repeat("=", bannerWidth))

	if _, err := io.WriteString(s.w, b.String()); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	return nil
}

func (s *Sink) Close() error { return nil }

func (s *Sink) header(b *strings.Builder, stats *model.ScanStats) {
	line := strings.Repeat("=", bannerWidth)
	fmt.Fprintf(b, "\n%s\n", line)
	b.WriteString(s.styles.title.Render(center("ACE Anti-Cheat Disk Scan Behavior Report", bannerWidth)) + "\n")
	b.WriteString(center(fmt.Sprintf("(based on %d valid log entries)", stats.TotalAttempts), bannerWidth) + "\n")
	fmt.Fprintf(b, "%s\n", line)
}

func (s *Sink) coreMetrics(b *strings.Builder, stats *model.ScanStats) {
	b.WriteString("\n" + s.styles.section.Render("[ Core Metrics ]") + "\n")
	fmt.Fprintf(b, "  Total scan attempts:  %10d\n", stats.TotalAttempts)
	fmt.Fprintf(b, "  Blocked attempts:     %10d (block rate: %.1f%%)\n",
		stats.BlockedAttempts, stats.BlockRate())
	fmt.Fprintf(b, "  Unique target files:  %10d\n", len(stats.UniqueFiles))
	fmt.Fprintf(b, "  Active processes:     %10d\n", len(stats.Processes))
}

func (s *Sink) processes(b *strings.Builder, stats *model.ScanStats) {
	b.WriteString("\n" + s.styles.section.Render("[ Process Behavior ]") + "\n")
	for i, p := range top(model.SortedByCount(stats.Processes), s.cfg.TopProcesses) {
		tier := s.styles.tier(p.Count, 500, 200)
		fmt.Fprintf(b, "  %2d. %s %8d hits  %s\n", i+1, padToWidth(p.Key, 28), p.Count, tier)
	}
}

func (s *Sink) topFiles(b *strings.Builder, stats *model.ScanStats) {
	fmt.Fprintf(b, "\n%s\n", s.styles.section.Render(fmt.Sprintf("[ Top Scan Targets (Top %d) ]", s.cfg.TopFiles)))
	fmt.Fprintf(b, "  %4s  %s %8s  %s\n", "rank", padToWidth("file path", pathColumn), "count", "risk")
	fmt.Fprintf(b, "  %s\n", strings.Repeat("-", ruleWidth))

	for i, f := range top(model.SortedByCount(stats.UniqueFiles), s.cfg.TopFiles) {
		dot := s.styles.dot(f.Count, 30, 10)
		fmt.Fprintf(b, "  %3d. %s %8d  %s\n", i+1, padToWidth(middleTruncate(f.Key, pathColumn), pathColumn), f.Count, dot)
	}
}

func (s *Sink) categories(b *strings.Builder, stats *model.ScanStats) {
	b.WriteString("\n" + s.styles.section.Render("[ Target Category Breakdown ]") + "\n")
	fmt.Fprintf(b, "  %s %12s %8s  %s\n", padToWidth("category", 20), "count", "share", "risk")
	fmt.Fprintf(b, "  %s\n", strings.Repeat("-", ruleWidth))

	for _, c := range model.SortedByCount(stats.TargetCategories) {
		percent := 0.0
		if stats.TotalAttempts > 0 {
			percent = float64(c.Count) / float64(stats.TotalAttempts) * 100
		}
		dot := s.styles.dot(c.Count, 1000, 300)
		fmt.Fprintf(b, "  %s %10d x (%5.1f%%)  %s\n", padToWidth(c.Key, 20), c.Count, percent, dot)
	}
}

func (s *Sink) extensions(b *strings.Builder, stats *model.ScanStats) {
	b.WriteString("\n" + s.styles.section.Render("[ File Type Distribution ]") + "\n")
	for _, e := range top(model.SortedByCount(stats.FileExtensions), s.cfg.TopExtensions) {
		percent := 0.0
		if stats.TotalAttempts > 0 {
			percent = float64(e.Count) / float64(stats.TotalAttempts) * 100
		}
		fmt.Fprintf(b, "  .%-12s %8d x (%5.1f%%)\n", e.Key, e.Count, percent)
	}
}

func (s *Sink) timeDistribution(b *strings.Builder, stats *model.ScanStats) {
	buckets := stats.HourBuckets()
	if len(buckets) == 0 {
		return
	}

	peak := buckets[0]
	for _, bk := range buckets {
		if bk.Count > peak.Count {
			peak = bk
		}
	}

	b.WriteString("\n" + s.styles.section.Render("[ Scan Time Distribution ]") + "\n")
	fmt.Fprintf(b, "  peak window: %s (%d hits)\n", peak.Range, peak.Count)

	for _, bk := range top(buckets, s.cfg.TopHours) {
		cells := int(float64(bk.Count)/float64(peak.Count)*barCells + 0.5)
		fmt.Fprintf(b, "  %s %6d %s\n", bk.Range, bk.Count, s.styles.bar.Render(strings.Repeat("█", cells)))
	}
}

func (s *Sink) advice(b *strings.Builder) {
	b.WriteString("\n" + s.styles.section.Render("[ Hardening Advice ]") + "\n")
	b.WriteString("  1. Driver layer: storage drivers (storqosflt.sys, storvsp.sys) draw\n")
	b.WriteString("     frequent scans; prefer monitor-only over block for System32\\drivers.\n")
	b.WriteString("  2. Virtualization probes: scans of hvhostsvc.dll or vmms.exe usually\n")
	b.WriteString("     mean VM detection; consider allowing those paths.\n")
	b.WriteString("  3. Rule tuning: a 100% block rate can break game startup. Allow the\n")
	b.WriteString("     anti-cheat's own directory and prompt on driver directories.\n")
}

// top bounds a ranking to its configured length.
func top[T any](items []T, n int) []T {
	if n > 0 && len(items) > n {
		return items[:n]
	}
	return items
}
