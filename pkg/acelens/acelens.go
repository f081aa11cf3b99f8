package acelens

import (
	"fmt"

	"github.com/hexwatch/acelens/internal/engine"
	"github.com/hexwatch/acelens/internal/input"
	"github.com/hexwatch/acelens/internal/model"
	"github.com/hexwatch/acelens/internal/pipeline"
)

// Sentinel errors, matchable with errors.Is.
var (
	// ErrNotHuorongLog reports text failing the format signature check.
	ErrNotHuorongLog = input.ErrNotHuorongLog
	// ErrNoEntries reports a log in which nothing passed the entry filter.
	ErrNoEntries = pipeline.ErrNoEntries
)

type options struct {
	skipSignatureCheck bool
}

// Option configures an analysis call.
type Option func(*options)

// WithoutSignatureCheck skips the Huorong format signature check. Use it
// for synthetic or pre-validated blobs; the entry filter still applies.
func WithoutSignatureCheck() Option {
	return func(o *options) { o.skipSignatureCheck = true }
}

// Analyze parses one in-memory log blob into a Result.
func Analyze(text string, opts ...Option) (*Result, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if !o.skipSignatureCheck {
		if err := input.DetectFormat(text); err != nil {
			return nil, err
		}
	}

	stats := engine.Parse(text)
	if stats.TotalAttempts == 0 {
		return nil, ErrNoEntries
	}
	return resultFromStats(stats), nil
}

// AnalyzeFile reads path and analyzes its contents.
func AnalyzeFile(path string, opts ...Option) (*Result, error) {
	text, err := input.Load(path)
	if err != nil {
		return nil, err
	}
	result, err := Analyze(text, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return result, nil
}

func resultFromStats(stats *model.ScanStats) *Result {
	buckets := stats.HourBuckets()
	hours := make([]HourBucket, len(buckets))
	for i, b := range buckets {
		hours[i] = HourBucket{Range: b.Range, Count: b.Count}
	}
	return &Result{
		TotalAttempts:    stats.TotalAttempts,
		BlockedAttempts:  stats.BlockedAttempts,
		UniqueFiles:      cloneMap(stats.UniqueFiles),
		Processes:        cloneMap(stats.Processes),
		RulesTriggered:   cloneMap(stats.RulesTriggered),
		FileExtensions:   cloneMap(stats.FileExtensions),
		TargetCategories: cloneMap(stats.TargetCategories),
		HourBuckets:      hours,
	}
}

func cloneMap(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
