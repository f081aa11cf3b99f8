package jsonexport

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/hexwatch/acelens/internal/model"
)

func TestExportRoundTrip(t *testing.T) {
	stats := model.NewScanStats()
	stats.Apply(model.Record{
		FilePath: `C:\Windows\System32\a.sys`,
		Category: "System32 Core",
		Blocked:  true,
		Hour:     3,
		HourOK:   true,
	})

	path := filepath.Join(t.TempDir(), "stats.json")
	if err := New(path).Write(context.Background(), stats); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var decoded model.ScanStats
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.TotalAttempts != 1 || decoded.BlockedAttempts != 1 {
		t.Fatalf("counts lost: %+v", decoded)
	}
	if decoded.UniqueFiles[`C:\Windows\System32\a.sys`] != 1 {
		t.Fatalf("files lost: %+v", decoded.UniqueFiles)
	}
	if decoded.TimeDistribution["03:00-03:59"] != 1 {
		t.Fatalf("hours lost: %+v", decoded.TimeDistribution)
	}
}

func TestExportUnwritablePath(t *testing.T) {
	stats := model.NewScanStats()
	err := New(filepath.Join(t.TempDir(), "missing", "stats.json")).Write(context.Background(), stats)
	if err == nil {
		t.Fatal("expected error for unwritable path")
	}
}
