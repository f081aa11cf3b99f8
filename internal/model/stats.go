package model

import (
	"fmt"
	"sort"
	"strings"
)

// ExtNone is the bucket for file paths that carry no extension.
const ExtNone = "no-extension"

// ProcessUnknown is the bucket for process paths with no usable last segment.
const ProcessUnknown = "unknown"

// ScanStats accumulates everything derived from one log file. A single
// instance is populated during one parse pass and read-only afterwards.
type ScanStats struct {
	TotalAttempts    int            `json:"total_attempts"`
	BlockedAttempts  int            `json:"blocked_attempts"`
	UniqueFiles      map[string]int `json:"unique_files"`
	Processes        map[string]int `json:"processes"`
	RulesTriggered   map[string]int `json:"rules_triggered"`
	FileExtensions   map[string]int `json:"file_extensions"`
	TargetCategories map[string]int `json:"target_categories"`
	TimeDistribution map[string]int `json:"time_distribution"`
}

// NewScanStats returns an empty accumulator with all maps allocated.
func NewScanStats() *ScanStats {
	return &ScanStats{
		UniqueFiles:      make(map[string]int),
		Processes:        make(map[string]int),
		RulesTriggered:   make(map[string]int),
		FileExtensions:   make(map[string]int),
		TargetCategories: make(map[string]int),
		TimeDistribution: make(map[string]int),
	}
}

// Apply folds one record into the aggregate. Absent fields skip only their
// own updates; no map ever receives an empty key.
func (s *ScanStats) Apply(r Record) {
	s.TotalAttempts++
	if r.Blocked {
		s.BlockedAttempts++
	}
	if r.FilePath != "" {
		s.UniqueFiles[r.FilePath]++
		s.FileExtensions[Extension(r.FilePath)]++
		if r.Category != "" {
			s.TargetCategories[r.Category]++
		}
	}
	if r.ProcessName != "" {
		s.Processes[r.ProcessName]++
	}
	if r.RuleName != "" {
		s.RulesTriggered[r.RuleName]++
	}
	if r.HourOK {
		s.TimeDistribution[HourKey(r.Hour)]++
	}
}

// BlockRate returns blocked attempts as a percentage of total attempts.
func (s *ScanStats) BlockRate() float64 {
	if s.TotalAttempts == 0 {
		return 0
	}
	return float64(s.BlockedAttempts) / float64(s.TotalAttempts) * 100
}

// HourBucket is one row of the time distribution.
type HourBucket struct {
	Range string
	Count int
}

// HourBuckets returns the time distribution sorted by hour-range key,
// giving deterministic iteration order across runs.
func (s *ScanStats) HourBuckets() []HourBucket {
	keys := make([]string, 0, len(s.TimeDistribution))
	for k := range s.TimeDistribution {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	buckets := make([]HourBucket, len(keys))
	for i, k := range keys {
		buckets[i] = HourBucket{Range: k, Count: s.TimeDistribution[k]}
	}
	return buckets
}

// HourKey formats an hour of day as its distribution bucket label,
// e.g. 5 -> "05:00-05:59".
func HourKey(hour int) string {
	return fmt.Sprintf("%02d:00-%02d:59", hour, hour)
}

// Extension returns the lowercased suffix after the last '.' in path,
// or ExtNone when path has no dot or nothing follows it.
func Extension(path string) string {
	i := strings.LastIndexByte(path, '.')
	if i < 0 || i == len(path)-1 {
		return ExtNone
	}
	return strings.ToLower(path[i+1:])
}

// ProcessName returns the trimmed last backslash-separated segment of a
// process path, or ProcessUnknown when that segment is empty.
func ProcessName(path string) string {
	parts := strings.Split(path, `\`)
	name := strings.TrimSpace(parts[len(parts)-1])
	if name == "" {
		return ProcessUnknown
	}
	return name
}

// Count is a (key, count) pair produced by SortedByCount.
type Count struct {
	Key   string
	Count int
}

// SortedByCount flattens a counter map ordered by count descending,
// with key ascending as tie-break so output is deterministic.
func SortedByCount(m map[string]int) []Count {
	out := make([]Count, 0, len(m))
	for k, v := range m {
		out = append(out, Count{Key: k, Count: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Key < out[j].Key
	})
	return out
}
