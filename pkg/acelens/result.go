package acelens

import "github.com/hexwatch/acelens/internal/model"

// Result is the stable public aggregate. Internal representations may
// evolve independently without breaking consumers.
type Result struct {
	TotalAttempts    int            `json:"total_attempts"`
	BlockedAttempts  int            `json:"blocked_attempts"`
	UniqueFiles      map[string]int `json:"unique_files"`
	Processes        map[string]int `json:"processes"`
	RulesTriggered   map[string]int `json:"rules_triggered"`
	FileExtensions   map[string]int `json:"file_extensions"`
	TargetCategories map[string]int `json:"target_categories"`
	HourBuckets      []HourBucket   `json:"time_distribution"`
}

// HourBucket is one hour-of-day slot of the time distribution, sorted by
// range label.
type HourBucket struct {
	Range string `json:"range"`
	Count int    `json:"count"`
}

// Count is a (key, count) ranking row.
type Count struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// BlockRate returns blocked attempts as a percentage of total attempts.
func (r *Result) BlockRate() float64 {
	if r.TotalAttempts == 0 {
		return 0
	}
	return float64(r.BlockedAttempts) / float64(r.TotalAttempts) * 100
}

// TopFiles returns the n most-scanned file paths, count descending.
func (r *Result) TopFiles(n int) []Count {
	return topN(r.UniqueFiles, n)
}

// TopProcesses returns the n most active processes, count descending.
func (r *Result) TopProcesses(n int) []Count {
	return topN(r.Processes, n)
}

func topN(m map[string]int, n int) []Count {
	sorted := model.SortedByCount(m)
	if n > 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	out := make([]Count, len(sorted))
	for i, c := range sorted {
		out[i] = Count{Key: c.Key, Count: c.Count}
	}
	return out
}
