package engine

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/hexwatch/acelens/internal/engine/testdata"
	"github.com/hexwatch/acelens/internal/model"
)

// entry builds a well-formed log entry. Timestamp leads the first line so
// the hour heuristic can see it.
func entry(ts, filePath, process, rule, result string) string {
	return ts + " 文件防护\r\n" +
		"操作进程：" + process + "\r\n" +
		"操作进程命令行：\"" + process + "\"\r\n" +
		"操作类型：文件访问\r\n" +
		"操作文件：" + filePath + "\r\n" +
		"操作结果：" + result + "\r\n" +
		"触犯规则：" + rule + "\r\n" +
		"SGuard64.exe\r\n"
}

// Each entry already ends with a line break, so joining on the bare
// separator leaves the next entry's timestamp on its own first line.
func blob(entries ...string) string {
	return strings.Join(entries, Separator)
}

func TestParseEndToEnd(t *testing.T) {
	driver := `C:\Windows\System32\drivers\storqosflt.sys`
	raw := blob(
		entry("2024-01-04 03:15:00", driver, `D:\Games\SGuard64.exe`, "ACE扫盘拦截", "已阻止"),
		entry("2024-01-04 03:45:00", driver, `D:\Games\SGuard64.exe`, "ACE扫盘拦截", "已放行"),
	)

	stats := Parse(raw)

	if stats.TotalAttempts != 2 {
		t.Fatalf("expected 2 attempts, got %d", stats.TotalAttempts)
	}
	if stats.BlockedAttempts != 1 {
		t.Fatalf("expected 1 blocked, got %d", stats.BlockedAttempts)
	}
	if stats.UniqueFiles[driver] != 2 {
		t.Fatalf("expected file counted twice, got %d (%v)", stats.UniqueFiles[driver], stats.UniqueFiles)
	}
	if stats.TargetCategories["System Driver"] != 2 {
		t.Fatalf("expected System Driver=2, got %v", stats.TargetCategories)
	}
	if stats.TimeDistribution["03:00-03:59"] != 2 {
		t.Fatalf("expected 03:00-03:59=2, got %v", stats.TimeDistribution)
	}
	if stats.Processes["SGuard64.exe"] != 2 {
		t.Fatalf("expected SGuard64.exe=2, got %v", stats.Processes)
	}
	if stats.RulesTriggered["ACE扫盘拦截"] != 2 {
		t.Fatalf("expected rule counted twice, got %v", stats.RulesTriggered)
	}
	if stats.FileExtensions["sys"] != 2 {
		t.Fatalf("expected sys=2, got %v", stats.FileExtensions)
	}
}

func TestParseRoundTrip(t *testing.T) {
	const n = 10
	entries := make([]string, n)
	for i := 0; i < n; i++ {
		result := "已放行"
		if i%2 == 0 {
			result = "已阻止"
		}
		entries[i] = entry(
			fmt.Sprintf("2024-01-04 %02d:10:00", i),
			fmt.Sprintf(`C:\Windows\System32\file%d.dll`, i),
			fmt.Sprintf(`C:\proc\proc%d.exe`, i),
			fmt.Sprintf("rule-%d", i),
			result,
		)
	}

	stats := Parse(blob(entries...))

	if stats.TotalAttempts != n {
		t.Fatalf("expected %d attempts, got %d", n, stats.TotalAttempts)
	}
	if stats.BlockedAttempts != n/2 {
		t.Fatalf("expected %d blocked, got %d", n/2, stats.BlockedAttempts)
	}
	if len(stats.UniqueFiles) != n {
		t.Fatalf("expected %d unique files, got %d", n, len(stats.UniqueFiles))
	}
	if len(stats.Processes) != n {
		t.Fatalf("expected %d processes, got %d", n, len(stats.Processes))
	}
	if len(stats.TimeDistribution) != n {
		t.Fatalf("expected %d hour buckets, got %d", n, len(stats.TimeDistribution))
	}
}

func TestParseFiltersInvalidEntries(t *testing.T) {
	valid := entry("2024-01-04 03:15:00", `C:\a.sys`, `C:\p.exe`, "r", "已阻止")
	noProduct := strings.ReplaceAll(valid, "SGuard64.exe", "other.exe")
	noFileOp := strings.ReplaceAll(valid, "操作文件：", "别的字段：")

	stats := Parse(blob(valid, noProduct, noFileOp, "   \r\n  ", ""))

	if stats.TotalAttempts != 1 {
		t.Fatalf("expected only the valid entry, got %d", stats.TotalAttempts)
	}
	for path := range stats.UniqueFiles {
		if path != `C:\a.sys` {
			t.Fatalf("filtered entry leaked into mappings: %q", path)
		}
	}
}

func TestParseBlockedNeverExceedsTotal(t *testing.T) {
	raws := []string{
		"",
		blob(entry("2024-01-04 03:15:00", `C:\a.sys`, `C:\p.exe`, "r", "已阻止")),
		blob(
			entry("bad-first-line", `C:\a.sys`, ``, "", "已阻止"),
			entry("2024-01-04 99:00:00", `C:\b.sys`, `C:\p.exe`, "r", "已阻止"),
		),
	}
	for _, raw := range raws {
		stats := Parse(raw)
		if stats.BlockedAttempts > stats.TotalAttempts {
			t.Fatalf("blocked %d > total %d", stats.BlockedAttempts, stats.TotalAttempts)
		}
	}
}

// A malformed entry still contributes whatever fields did extract.
func TestParseMaximalSalvage(t *testing.T) {
	partial := "not-a-timestamp\r\n" +
		"操作文件：  \r\n" + // blank path after trim
		"操作进程：C:\\proc\\scan.exe\r\n" +
		"SGuard64.exe\r\n"

	stats := Parse(partial)

	if stats.TotalAttempts != 1 {
		t.Fatalf("expected entry to count, got %d", stats.TotalAttempts)
	}
	if len(stats.UniqueFiles) != 0 {
		t.Fatalf("blank path must not enter mappings: %v", stats.UniqueFiles)
	}
	if stats.Processes["scan.exe"] != 1 {
		t.Fatalf("expected salvaged process, got %v", stats.Processes)
	}
	if len(stats.TimeDistribution) != 0 {
		t.Fatalf("unparsable hour must be dropped: %v", stats.TimeDistribution)
	}
}

func TestParseNoEmptyKeys(t *testing.T) {
	// Process path ending in a backslash has no usable last segment.
	raw := "2024-01-04 03:15:00 x\r\n" +
		"操作文件：C:\\a.sys\r\n" +
		"操作进程：C:\\dir\\\r\n" +
		"SGuard64.exe\r\n"

	stats := Parse(raw)

	if stats.Processes[model.ProcessUnknown] != 1 {
		t.Fatalf("expected unknown process bucket, got %v", stats.Processes)
	}
	for _, m := range []map[string]int{
		stats.UniqueFiles, stats.Processes, stats.RulesTriggered,
		stats.FileExtensions, stats.TargetCategories, stats.TimeDistribution,
	} {
		for k := range m {
			if strings.TrimSpace(k) == "" {
				t.Fatalf("empty key in mapping: %v", m)
			}
		}
	}
}

func TestParseSampleLog(t *testing.T) {
	stats := Parse(testdata.Sample())

	if stats.TotalAttempts != testdata.SampleEntries {
		t.Fatalf("expected %d attempts, got %d", testdata.SampleEntries, stats.TotalAttempts)
	}
	if stats.BlockedAttempts != testdata.SampleBlocked {
		t.Fatalf("expected %d blocked, got %d", testdata.SampleBlocked, stats.BlockedAttempts)
	}
	if len(stats.UniqueFiles) != 4 {
		t.Fatalf("expected 4 unique files, got %v", stats.UniqueFiles)
	}
	if stats.UniqueFiles[`C:\Windows\System32\drivers\storqosflt.sys`] != 2 {
		t.Fatalf("driver count wrong: %v", stats.UniqueFiles)
	}

	wantCategories := map[string]int{
		"System Driver":        2,
		"System32 Core":        1,
		"Anti-Cheat Component": 1,
		"Other System File":    1,
	}
	if !reflect.DeepEqual(stats.TargetCategories, wantCategories) {
		t.Fatalf("categories = %v, expected %v", stats.TargetCategories, wantCategories)
	}

	wantHours := []model.HourBucket{
		{Range: "03:00-03:59", Count: 2},
		{Range: "11:00-11:59", Count: 1},
		{Range: "22:00-22:59", Count: 2},
	}
	if !reflect.DeepEqual(stats.HourBuckets(), wantHours) {
		t.Fatalf("hours = %v, expected %v", stats.HourBuckets(), wantHours)
	}

	if stats.Processes["SGuard64.exe"] != 3 || stats.Processes["SGuardSvc64.exe"] != 2 {
		t.Fatalf("processes = %v", stats.Processes)
	}
	if stats.RulesTriggered["禁止ACE扫盘"] != 4 || stats.RulesTriggered["自定义规则2"] != 1 {
		t.Fatalf("rules = %v", stats.RulesTriggered)
	}
}

func TestParseIdempotent(t *testing.T) {
	raw := blob(
		entry("2024-01-04 03:15:00", `C:\Windows\System32\drivers\a.sys`, `C:\p.exe`, "r1", "已阻止"),
		entry("2024-01-04 11:45:00", `C:\ProgramData\b`, `C:\q.exe`, "r2", "已放行"),
		entry("2024-01-04 23:05:00", `C:\Windows\WinSxS\c.dll`, `C:\p.exe`, "r1", "已阻止"),
	)

	first := Parse(raw)
	second := Parse(raw)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("two parses differ:\n%+v\n%+v", first, second)
	}
	if !reflect.DeepEqual(first.HourBuckets(), second.HourBuckets()) {
		t.Fatalf("hour bucket order differs across runs")
	}
}
